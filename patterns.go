package passcheck

import "strings"

// keyboardPatterns lists keyboard-row runs matched case-insensitively
// anywhere in a password.
var keyboardPatterns = []string{
	"qwerty",
	"asdfg",
	"asdf",
	"qwer",
	"qwert",
	"hjkl",
	"zxcv",
	"azerty",
	"qazwsx",
}

// KeyboardPatterns returns a copy of the keyboard-row table.
func KeyboardPatterns() []string {
	out := make([]string, len(keyboardPatterns))
	copy(out, keyboardPatterns)
	return out
}

// DetectPatterns runs the repetition, sequence and keyboard checks and
// returns one finding per check that fired, in that order. The result is
// never nil.
func DetectPatterns(password string) []Pattern {
	patterns := []Pattern{}

	if HasRepetition(password) {
		patterns = append(patterns, PatternRepetition)
	}
	if HasSequence(password) {
		patterns = append(patterns, PatternSequence)
	}
	if HasKeyboardPattern(password) {
		patterns = append(patterns, PatternKeyboard)
	}

	return patterns
}

// HasRepetition reports whether any character occurs three or more times in
// a row, e.g. "111" or "xxx".
func HasRepetition(password string) bool {
	runes := []rune(password)
	if len(runes) < 3 {
		return false
	}

	count := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			count++
			if count > 2 {
				return true
			}
		} else {
			count = 1
		}
	}
	return false
}

// HasSequence reports whether any three consecutive characters ascend or
// descend by exactly one code point ("abc", "321").
//
// The comparison is on raw code points and is not alphabet aware, so runs
// that cross class boundaries ("89:", "@AB") also count, while "xYz" does
// not.
func HasSequence(password string) bool {
	runes := []rune(password)
	if len(runes) < 3 {
		return false
	}

	for i := 0; i+2 < len(runes); i++ {
		a, b, c := runes[i], runes[i+1], runes[i+2]
		if a+1 == b && b+1 == c {
			return true
		}
		if c+1 == b && b+1 == a {
			return true
		}
	}
	return false
}

// HasKeyboardPattern reports whether password contains one of the
// keyboard-row runs, ignoring case.
func HasKeyboardPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range keyboardPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
