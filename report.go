package passcheck

// Strength is the qualitative band derived from a score.
type Strength string

const (
	StrengthWeak   Strength = "Weak"
	StrengthMedium Strength = "Medium"
	StrengthStrong Strength = "Strong"
)

// Band thresholds. A score below MediumThreshold is Weak, a score at or
// above StrongThreshold is Strong.
const (
	MediumThreshold = 30
	StrongThreshold = 70
)

// Pattern names a weakness found in a password.
type Pattern string

const (
	PatternRepetition Pattern = "repetition"
	PatternSequence   Pattern = "sequence"
	PatternKeyboard   Pattern = "keyboard_pattern"
	PatternLeetCommon Pattern = "leet_common"
)

// Composition records which character classes a password uses.
type Composition struct {
	HasUpper  bool `json:"has_upper" yaml:"has_upper"`
	HasLower  bool `json:"has_lower" yaml:"has_lower"`
	HasDigit  bool `json:"has_digit" yaml:"has_digit"`
	HasSymbol bool `json:"has_symbol" yaml:"has_symbol"`
}

// Classes returns how many of the four classes are present.
func (c Composition) Classes() int {
	n := 0
	for _, ok := range []bool{c.HasUpper, c.HasLower, c.HasDigit, c.HasSymbol} {
		if ok {
			n++
		}
	}
	return n
}

// Report is the result of one evaluation. It never contains the password.
type Report struct {
	Length      int      `json:"length" yaml:"length"`
	Score       int      `json:"score" yaml:"score"`
	Strength    Strength `json:"strength" yaml:"strength"`
	Entropy     float64  `json:"entropy" yaml:"entropy"`
	Composition `yaml:",inline"`
	IsCommon    bool      `json:"is_common" yaml:"is_common"`
	Patterns    []Pattern `json:"patterns" yaml:"patterns"`
}

// HasPattern reports whether p is among the report's findings.
func (r *Report) HasPattern(p Pattern) bool {
	for _, f := range r.Patterns {
		if f == p {
			return true
		}
	}
	return false
}
