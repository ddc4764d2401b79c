package passcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRepetition(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"aa", false},
		{"aaa", true},
		{"abaa", false},
		{"xx111", true},
		{"ab1aab", false},
		{"ééé", true},
		{"zzz top", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasRepetition(tt.password), "HasRepetition(%q)", tt.password)
	}
}

func TestHasSequence(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"ab", false},
		{"abcXYZ", true},
		{"321", true},
		{"cba", true},
		{"135", false},
		{"xYz", false},
		{"aZb", false},
		{"89:", true}, // crosses from digits into punctuation
		{"@AB", true},
		{"q9r8", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasSequence(tt.password), "HasSequence(%q)", tt.password)
	}
}

func TestHasKeyboardPattern(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"myqwertypass", true},
		{"MyQWERTYpass", true},
		{"xxZXCVxx", true},
		{"hjk", false},
		{"vimhjkl", true},
		{"asd", false},
		{"Tr0ub4dor&3XyZ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasKeyboardPattern(tt.password), "HasKeyboardPattern(%q)", tt.password)
	}
}

func TestDetectPatterns(t *testing.T) {
	t.Run("all three in detection order", func(t *testing.T) {
		got := DetectPatterns("aaabcqwer")
		assert.Equal(t, []Pattern{PatternRepetition, PatternSequence, PatternKeyboard}, got)
	})

	t.Run("none", func(t *testing.T) {
		got := DetectPatterns("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("short inputs", func(t *testing.T) {
		assert.Contains(t, DetectPatterns("aaa"), PatternRepetition)
		assert.NotContains(t, DetectPatterns("aa"), PatternRepetition)
		assert.Contains(t, DetectPatterns("abcXYZ"), PatternSequence)
		assert.NotContains(t, DetectPatterns("ab"), PatternSequence)
		assert.Contains(t, DetectPatterns("myqwertypass"), PatternKeyboard)
	})
}

func TestKeyboardPatternsIsCopy(t *testing.T) {
	got := KeyboardPatterns()
	assert.Contains(t, got, "qwerty")

	got[0] = "mutated"
	assert.Equal(t, "qwerty", KeyboardPatterns()[0])
	assert.True(t, HasKeyboardPattern("qwerty"))
}
