package passcheck

import "math"

// Scoring weights.
const (
	pointsPerChar    = 2.5
	lengthSaturation = 16 // characters; max 40 points

	pointsPerBit      = 0.3
	entropySaturation = 100.0 // bits; max 30 points

	pointsPerClass = 7.5 // max 30 points

	patternPenalty = 15.0

	// A common password keeps a tenth of its length and entropy points and
	// one point per class, which caps it at 11.
	commonFactor      = 0.1
	commonClassPoints = 1.0
)

// ScoreInput carries everything the score depends on.
type ScoreInput struct {
	Length      int
	Entropy     float64
	Composition Composition
	IsCommon    bool
	Patterns    []Pattern
}

// Score combines length, entropy, composition, findings and the common
// password flag into an integer in [0, 100].
//
// Length and entropy each contribute linearly up to a saturation point.
// Each finding subtracts a fixed penalty from that sum, which stops at zero.
// Class points are added last so that a missing class always costs at least
// one point, even after the penalty floor or the common-password factor. A
// common password keeps only a tenth of its length and entropy points,
// which pins it in the Weak band.
func Score(in ScoreInput) int {
	length := math.Min(float64(max(in.Length, 0)), lengthSaturation)
	entropy := math.Min(math.Max(in.Entropy, 0), entropySaturation)
	classes := float64(in.Composition.Classes())

	score := length*pointsPerChar + entropy*pointsPerBit
	score -= float64(len(in.Patterns)) * patternPenalty
	if score < 0 {
		score = 0
	}

	if in.IsCommon {
		score = score*commonFactor + classes*commonClassPoints
	} else {
		score += classes * pointsPerClass
	}

	s := int(math.Round(score))
	if s > 100 {
		s = 100
	}
	if s < 0 {
		s = 0
	}
	return s
}

// StrengthFor maps a score to its band.
func StrengthFor(score int) Strength {
	switch {
	case score < MediumThreshold:
		return StrengthWeak
	case score < StrongThreshold:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
