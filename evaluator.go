package passcheck

import (
	"fmt"
	"unicode/utf8"
)

// Evaluator scores passwords against a dictionary. It holds only immutable
// data and is safe for concurrent use.
type Evaluator struct {
	dict *Dictionary
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDictionary replaces the embedded common-password dictionary.
func WithDictionary(d *Dictionary) Option {
	return func(e *Evaluator) {
		if d != nil {
			e.dict = d
		}
	}
}

// New creates an evaluator. Without options it uses the embedded dictionary.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{dict: defaultDict}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dictionary returns the dictionary used for common-password checks.
func (e *Evaluator) Dictionary() *Dictionary {
	return e.dict
}

// Evaluate analyses password and returns its report. The empty string yields
// a zero report; only text that is not valid UTF-8 is rejected.
func (e *Evaluator) Evaluate(password string) (*Report, error) {
	if !utf8.ValidString(password) {
		return nil, &InputError{Reason: "password is not valid UTF-8"}
	}

	composition := AnalyzeComposition(password)
	patterns := DetectPatterns(password)
	isCommon := e.dict.Contains(password)
	if !isCommon && isLeetCommon(password, e.dict) {
		patterns = append(patterns, PatternLeetCommon)
	}

	r := &Report{
		Length:      utf8.RuneCountInString(password),
		Entropy:     Entropy(password),
		Composition: composition,
		IsCommon:    isCommon,
		Patterns:    patterns,
	}
	r.Score = Score(ScoreInput{
		Length:      r.Length,
		Entropy:     r.Entropy,
		Composition: r.Composition,
		IsCommon:    r.IsCommon,
		Patterns:    r.Patterns,
	})
	r.Strength = StrengthFor(r.Score)

	return r, nil
}

// EvaluateValue evaluates an untyped value, as produced by decoding JSON or
// reading from an interface. Only string and non-nil *string are accepted;
// nil and every other type, []byte included, fail with ErrInvalidInput.
func (e *Evaluator) EvaluateValue(v any) (*Report, error) {
	switch p := v.(type) {
	case string:
		return e.Evaluate(p)
	case *string:
		if p == nil {
			return nil, &InputError{Reason: "password is null"}
		}
		return e.Evaluate(*p)
	case nil:
		return nil, &InputError{Reason: "password is null"}
	default:
		return nil, &InputError{Reason: fmt.Sprintf("password must be a string, got %T", v)}
	}
}

var defaultEvaluator = New()

// Evaluate analyses password with the embedded dictionary.
func Evaluate(password string) (*Report, error) {
	return defaultEvaluator.Evaluate(password)
}

// EvaluateValue evaluates an untyped value with the embedded dictionary.
func EvaluateValue(v any) (*Report, error) {
	return defaultEvaluator.EvaluateValue(v)
}
