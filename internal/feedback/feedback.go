// Package feedback turns an evaluation report into user-facing warnings and
// recommendations. It is a pure mapping; nothing here sees the password.
package feedback

import (
	"fmt"
	"strings"

	"github.com/fernandezvara/passcheck"
)

// Length and entropy levels below which advice is given.
const (
	minLength         = 7
	recommendedLength = 11
	minEntropyBits    = 29
	goodEntropyBits   = 52
)

// Feedback is the advice attached to a report.
type Feedback struct {
	Warnings        []string `json:"warnings" yaml:"warnings"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

var patternWarnings = map[passcheck.Pattern]string{
	passcheck.PatternRepetition: "contains a character repeated three or more times",
	passcheck.PatternSequence:   "contains a run of consecutive characters such as abc or 321",
	passcheck.PatternKeyboard:   "contains a keyboard row such as qwerty or asdf",
	passcheck.PatternLeetCommon: "is a common password with letters swapped for look-alike symbols",
}

// PatternWarning describes a finding in plain words.
func PatternWarning(p passcheck.Pattern) string {
	if w, ok := patternWarnings[p]; ok {
		return w
	}
	return fmt.Sprintf("matches the %q pattern", string(p))
}

// EntropyRating labels an entropy estimate in bits: Excellent above 52,
// Good above 29, Weak otherwise.
func EntropyRating(bits float64) string {
	switch {
	case bits > goodEntropyBits:
		return "Excellent"
	case bits > minEntropyBits:
		return "Good"
	default:
		return "Weak"
	}
}

// For builds the feedback for r. Both slices are non-nil.
func For(r *passcheck.Report) Feedback {
	fb := Feedback{Warnings: []string{}, Recommendations: []string{}}
	if r == nil || r.Length == 0 {
		fb.Recommendations = append(fb.Recommendations, "Enter a password to evaluate.")
		return fb
	}

	if r.IsCommon {
		fb.Warnings = append(fb.Warnings, "This is one of the most commonly used passwords.")
		fb.Recommendations = append(fb.Recommendations, "Choose a password that does not appear in common password lists.")
	}
	for _, p := range r.Patterns {
		fb.Warnings = append(fb.Warnings, "Password "+PatternWarning(p)+".")
	}

	switch {
	case r.Length < minLength:
		fb.Recommendations = append(fb.Recommendations, "Use at least 7 characters (11+ recommended).")
	case r.Length < recommendedLength:
		fb.Recommendations = append(fb.Recommendations, "Consider using 11 or more characters.")
	}

	var missing []string
	if !r.HasUpper {
		missing = append(missing, "uppercase letters")
	}
	if !r.HasLower {
		missing = append(missing, "lowercase letters")
	}
	if !r.HasDigit {
		missing = append(missing, "digits")
	}
	if !r.HasSymbol {
		missing = append(missing, "special characters")
	}
	for _, m := range missing {
		fb.Recommendations = append(fb.Recommendations, "Add "+m+".")
	}

	if r.Entropy < minEntropyBits {
		fb.Recommendations = append(fb.Recommendations, "Increase variety: mix more character types and avoid predictable choices.")
	}
	if len(r.Patterns) > 0 {
		names := make([]string, len(r.Patterns))
		for i, p := range r.Patterns {
			names[i] = string(p)
		}
		fb.Recommendations = append(fb.Recommendations, "Avoid predictable patterns: "+strings.Join(names, ", ")+".")
	}

	return fb
}
