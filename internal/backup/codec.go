// Package backup implements encrypted full-state exports and their
// restoration.
//
// A backup is the JSON export of every registered model, compressed with
// gzip and encrypted with AES-256-GCM. The encryption key is the SHA-256
// hash of a user supplied secret, so the same secret always opens the
// same backup. The blob layout is IV (16 bytes), then the GCM auth tag
// (16 bytes), then the ciphertext.
package backup

import (
	"bytes"
	"compress/gzip"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
)

const (
	ivSize  = 16
	tagSize = 16
)

var (
	// ErrBackupTruncated is returned when a blob is too short to even hold
	// the IV and auth tag.
	ErrBackupTruncated = errors.New("the backup data is truncated")

	// ErrBackupDecrypt is returned when decryption fails, which means the
	// secret is wrong or the data was tampered with.
	ErrBackupDecrypt = errors.New("the backup could not be decrypted with this secret")
)

func derivedKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// Encode compresses the payload and encrypts it with a key derived from
// the secret.
func Encode(payload []byte, secret string) ([]byte, error) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(derivedKey(secret))
	if err != nil {
		return nil, err
	}

	// GCM with the 16 byte IV the blob layout mandates, not the 12 byte
	// default.
	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}

	// Seal appends the auth tag after the ciphertext, the blob layout
	// wants it before.
	sealed := gcm.Seal(nil, iv, compressed.Bytes(), nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	blob := make([]byte, 0, ivSize+tagSize+len(ciphertext))
	blob = append(blob, iv...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return blob, nil
}

// Decode reverses Encode. Any modification of the blob, including bit
// flips in the ciphertext or a swapped auth tag, fails authentication
// and returns ErrBackupDecrypt.
func Decode(blob []byte, secret string) ([]byte, error) {
	if len(blob) < ivSize+tagSize {
		return nil, ErrBackupTruncated
	}

	iv := blob[:ivSize]
	tag := blob[ivSize : ivSize+tagSize]
	ciphertext := blob[ivSize+tagSize:]

	block, err := aes.NewCipher(derivedKey(secret))
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	compressed, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrBackupDecrypt
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}
