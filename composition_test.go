package passcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeComposition(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Composition
	}{
		{"empty", "", Composition{}},
		{"all classes", "Ab1!", Composition{HasUpper: true, HasLower: true, HasDigit: true, HasSymbol: true}},
		{"lower only", "abc", Composition{HasLower: true}},
		{"space is symbol", "a b", Composition{HasLower: true, HasSymbol: true}},
		{"control char ignored", "a\tb", Composition{HasLower: true}},
		{"non-ascii letters ignored", "ünï", Composition{HasLower: true}},
		{"non-ascii digit ignored", "١٢٣", Composition{}},
		{"non-ascii symbol", "€", Composition{HasSymbol: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeComposition(tt.password))
		})
	}
}

func TestCompositionClasses(t *testing.T) {
	assert.Equal(t, 0, Composition{}.Classes())
	assert.Equal(t, 2, Composition{HasUpper: true, HasDigit: true}.Classes())
	assert.Equal(t, 4, AnalyzeComposition("aB3!").Classes())
}
