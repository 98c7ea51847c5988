package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Account numbers have the form PREFIX##########, e.g. SIX0532013000.
const (
	NumericBodyLength = 10
	UnmaskedLength    = 4
	MinMaskableLength = 6
	MaskChar          = '*'
)

// ErrRandomSource is returned when the secure random source cannot be read.
var ErrRandomSource = errors.New("secure random source unavailable")

var (
	numericBodyPattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, NumericBodyLength))
	digitBound         = big.NewInt(10)
)

// Generator draws account number digits from Rand. A zero Generator uses
// crypto/rand.Reader, which is safe for concurrent use.
type Generator struct {
	Rand io.Reader
}

var defaultGenerator Generator

// GenerateAccountNumber appends a random 10-digit body to prefix.
// Uniqueness is not checked; callers enforce it where the number is stored.
func GenerateAccountNumber(prefix string) (string, error) {
	return defaultGenerator.Generate(prefix)
}

// Generate appends NumericBodyLength digits, each uniform over 0-9, to prefix.
func (g Generator) Generate(prefix string) (string, error) {
	src := g.Rand
	if src == nil {
		src = rand.Reader
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + NumericBodyLength)
	sb.WriteString(prefix)
	for i := 0; i < NumericBodyLength; i++ {
		n, err := rand.Int(src, digitBound)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// IsValidAccountNumber reports whether accountNumber is prefix followed by
// exactly NumericBodyLength ASCII digits. It never fails on malformed input.
func IsValidAccountNumber(accountNumber, prefix string) bool {
	if len(accountNumber) != len(prefix)+NumericBodyLength {
		return false
	}
	if !strings.HasPrefix(accountNumber, prefix) {
		return false
	}
	return numericBodyPattern.MatchString(accountNumber[len(prefix):])
}

// ExtractNumericPart returns the 10-digit body of a valid account number.
// The boolean is false when accountNumber is not valid for prefix.
func ExtractNumericPart(accountNumber, prefix string) (string, bool) {
	if !IsValidAccountNumber(accountNumber, prefix) {
		return "", false
	}
	return accountNumber[len(prefix):], true
}

// MaskAccountNumber replaces every character but the last four with '*'.
// Inputs shorter than MinMaskableLength characters are returned as is.
func MaskAccountNumber(accountNumber string) string {
	n := utf8.RuneCountInString(accountNumber)
	if n < MinMaskableLength {
		return accountNumber
	}

	tail := len(accountNumber)
	for i := 0; i < UnmaskedLength; i++ {
		_, size := utf8.DecodeLastRuneInString(accountNumber[:tail])
		tail -= size
	}
	return strings.Repeat(string(MaskChar), n-UnmaskedLength) + accountNumber[tail:]
}
