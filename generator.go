package passcheck

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator length bounds. Below MinGenerateLength no candidate can reach
// the Strong band.
const (
	MinGenerateLength = 12
	MaxGenerateLength = 128
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}|;:',.<>?/`~"
)

// Generate creates a random password of the given length that uses every
// character class and evaluates as Strong with no findings.
func (e *Evaluator) Generate(length int) (string, error) {
	if length < MinGenerateLength || length > MaxGenerateLength {
		return "", fmt.Errorf("%w: %d (want %d-%d)", ErrGenerateLength, length, MinGenerateLength, MaxGenerateLength)
	}

	const maxAttempts = 1000
	for i := 0; i < maxAttempts; i++ {
		pwd, err := generateCandidate(length)
		if err != nil {
			return "", err
		}
		r, err := e.Evaluate(pwd)
		if err != nil {
			return "", err
		}
		if r.Strength == StrengthStrong && len(r.Patterns) == 0 && !r.IsCommon {
			return pwd, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrGenerateExhausted, maxAttempts)
}

// Generate creates a strong password using the embedded dictionary.
func Generate(length int) (string, error) {
	return defaultEvaluator.Generate(length)
}

func generateCandidate(length int) (string, error) {
	required := []string{lowerChars, upperChars, digitChars, symbolChars}
	charset := lowerChars + upperChars + digitChars + symbolChars

	// Shuffle positions so required characters land anywhere.
	positions := make([]int, length)
	for i := range positions {
		positions[i] = i
	}
	for i := len(positions) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return "", err
		}
		positions[i], positions[j] = positions[j], positions[i]
	}

	pwd := make([]byte, length)
	pos := 0
	for _, set := range required {
		n, err := randIntn(len(set))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = set[n]
		pos++
	}
	for ; pos < length; pos++ {
		n, err := randIntn(len(charset))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = charset[n]
	}

	return string(pwd), nil
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
