package registration

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// MinPasswordLength is the floor for generated temporary passwords.
const MinPasswordLength = 12

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*-_=+?"

// GeneratePassword returns a random password of the given length, drawing
// each character uniformly from a mixed alphanumeric-plus-symbol alphabet.
// Lengths below MinPasswordLength are raised to it.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength {
		length = MinPasswordLength
	}

	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		password[i] = passwordAlphabet[n.Int64()]
	}

	return string(password), nil
}
