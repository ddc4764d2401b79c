package passcheck

import (
	"math"
	"unicode/utf8"
)

// Alphabet sizes contributed to the pool by each class present.
const (
	poolLower  = 26
	poolUpper  = 26
	poolDigit  = 10
	poolSymbol = 32 // printable ASCII punctuation and space
)

// Entropy estimates the bit strength of a password from its length and the
// character pool it draws from:
//
//	entropy = length * log2(poolSize)
//
// A password built from one distinct character carries no uncertainty and
// scores 0, as does the empty string.
func Entropy(password string) float64 {
	length := utf8.RuneCountInString(password)
	if length == 0 || singleRune(password) {
		return 0
	}

	poolSize := effectivePoolSize(AnalyzeComposition(password))
	if poolSize <= 1 {
		return 0
	}

	return float64(length) * math.Log2(float64(poolSize))
}

// effectivePoolSize sums the alphabet sizes of the classes actually present.
func effectivePoolSize(c Composition) int {
	pool := 0
	if c.HasLower {
		pool += poolLower
	}
	if c.HasUpper {
		pool += poolUpper
	}
	if c.HasDigit {
		pool += poolDigit
	}
	if c.HasSymbol {
		pool += poolSymbol
	}
	return pool
}

// ShannonEntropy computes the Shannon entropy, in bits per symbol, of the
// observed rune distribution.
func ShannonEntropy(password string) float64 {
	if password == "" {
		return 0
	}

	freq := make(map[rune]int)
	var order []rune
	total := 0
	for _, r := range password {
		if freq[r] == 0 {
			order = append(order, r)
		}
		freq[r]++
		total++
	}

	// Summed in first-seen order so the result is bit-for-bit stable.
	var entropy float64
	for _, r := range order {
		p := float64(freq[r]) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// singleRune reports whether every rune of s is the same.
func singleRune(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}
