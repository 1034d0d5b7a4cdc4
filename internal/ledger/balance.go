package ledger

import (
	"github.com/budgetflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Balance derives the current account balance from the initial balance
// and the confirmed transactions. Planned and skipped transactions do
// not move money and are ignored.
func Balance(initial decimal.Decimal, transactions []models.Transaction) decimal.Decimal {
	balance := initial

	for _, t := range transactions {
		if t.CountsTowardsBalance() {
			balance = balance.Add(t.Amount)
		}
	}

	return balance
}

// BackSolveInitial returns the initial balance that makes the derived
// balance equal to target, given the current initial and derived values.
// The confirmed transaction sum (balance - initial) stays fixed, so the
// new initial is target minus that sum.
func BackSolveInitial(target, balance, initial decimal.Decimal) decimal.Decimal {
	return target.Sub(balance.Sub(initial))
}
