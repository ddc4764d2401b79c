package passcheck

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for _, n := range []int{MinGenerateLength, 16, 32} {
		pwd, err := Generate(n)
		require.NoError(t, err)
		assert.Equal(t, n, utf8.RuneCountInString(pwd))

		r, err := Evaluate(pwd)
		require.NoError(t, err)
		assert.Equal(t, StrengthStrong, r.Strength, "generated %d chars", n)
		assert.Empty(t, r.Patterns)
		assert.Equal(t, 4, r.Classes())
	}
}

func TestGenerate_Length(t *testing.T) {
	_, err := Generate(MinGenerateLength - 1)
	assert.ErrorIs(t, err, ErrGenerateLength)

	_, err = Generate(MaxGenerateLength + 1)
	assert.ErrorIs(t, err, ErrGenerateLength)
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Generate(16)
	}
}
