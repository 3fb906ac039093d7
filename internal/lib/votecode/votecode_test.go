package votecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	gen := NewGenerator(DefaultAlphabet, DefaultLength)

	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, code, DefaultLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(DefaultAlphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestGenerate_CustomAlphabet(t *testing.T) {
	gen := NewGenerator("AB", 16)

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, code, 16)
	assert.Empty(t, strings.Trim(code, "AB"))
}

func TestGenerate_CollisionsAreRare(t *testing.T) {
	gen := NewGenerator(DefaultAlphabet, DefaultLength)

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
}

func TestNewGenerator_Defaults(t *testing.T) {
	gen := NewGenerator("", 0)

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}
