// File: random.go
// Title: Random Identifier Generation
// Description: Generates unique IDs, numeric PINs and random strings.
//              IDs and PINs use math/rand/v2; RandomString and its variants
//              use crypto/rand.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with secure random generation
// - 2026-10-14 v0.1.1: Added GenerateUniqueID and GeneratePin

package stringx

import (
	crand "crypto/rand"
	"math"
	"math/big"
	mrand "math/rand/v2"
	"strings"

	huerror "github.com/msto63/helperutil/core/error"
	huerrors "github.com/msto63/helperutil/core/errors"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// URLSafe characters for tokens embedded in URLs and filenames
	URLSafe = Alphanumeric + "-_"

	// HumanReadable excludes visually similar characters like 0, O, l, 1
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

const (
	// DefaultUniqueIDLength is the ID length the CLI uses when none is given
	DefaultUniqueIDLength = 9

	// DefaultPinDigits is the PIN length the CLI uses when none is given
	DefaultPinDigits = 6
)

// GenerateUniqueID returns a string of exactly length bytes that starts
// with prefix and continues with random alphanumerics. The random part is
// lower-cased unless caseSensitive is set; prefix is never altered.
// It fails with VALUE_OUT_OF_RANGE when length < len(prefix).
func GenerateUniqueID(length int, caseSensitive bool, prefix string) (string, error) {
	return uniqueID("generate_unique_id", length, caseSensitive, prefix, func(n int) (string, error) {
		b := make([]byte, n)
		for i := range b {
			b[i] = Alphanumeric[mrand.IntN(len(Alphanumeric))]
		}
		return string(b), nil
	})
}

// GenerateSecureUniqueID behaves like GenerateUniqueID but draws the random
// part from crypto/rand.
func GenerateSecureUniqueID(length int, caseSensitive bool, prefix string) (string, error) {
	return uniqueID("generate_secure_unique_id", length, caseSensitive, prefix, RandomAlphanumeric)
}

func uniqueID(op string, length int, caseSensitive bool, prefix string, random func(int) (string, error)) (string, error) {
	if length < len(prefix) {
		return "", huerrors.OutOfRange(huerrors.ModuleStringx, op, length, len(prefix), math.MaxInt).
			WithDetail("prefix", prefix)
	}

	tail, err := random(length - len(prefix))
	if err != nil {
		return "", huerrors.OperationFailed(huerrors.ModuleStringx, op, err)
	}
	if !caseSensitive {
		tail = strings.ToLower(tail)
	}

	return prefix + tail, nil
}

// GeneratePin returns digits independent decimal digits, or "" when
// digits <= 0.
func GeneratePin(digits int) string {
	if digits <= 0 {
		return ""
	}

	b := make([]byte, digits)
	for i := range b {
		b[i] = Digits[mrand.IntN(10)]
	}
	return string(b)
}

// RandomString generates a cryptographically secure random string of the
// specified length from charset. An empty charset means Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := range result {
		idx, err := crand.Int(crand.Reader, charsetLen)
		if err != nil {
			return "", huerror.Wrap(err, "reading random source").WithCode(huerror.CodeInternal)
		}
		result[i] = charset[idx.Int64()]
	}

	return string(result), nil
}

// RandomAlphanumeric generates a secure random alphanumeric string
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomHex generates a secure random lowercase hexadecimal string
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}

// RandomURLSafe generates a secure random string safe for URLs and filenames
func RandomURLSafe(length int) (string, error) {
	return RandomString(length, URLSafe)
}

// RandomHumanReadable generates a secure random string without look-alike
// characters
func RandomHumanReadable(length int) (string, error) {
	return RandomString(length, HumanReadable)
}
