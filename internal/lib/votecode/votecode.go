package votecode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultLength   = 7
)

// Generator draws single-use vote codes from a fixed alphabet. Codes are not
// checked for global uniqueness; the alphabet and length are configurable so
// deployments can raise the entropy.
type Generator struct {
	alphabet string
	length   int
}

func NewGenerator(alphabet string, length int) *Generator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{alphabet: alphabet, length: length}
}

func (g *Generator) Generate() (string, error) {
	const op = "votecode.Generate"

	max := big.NewInt(int64(len(g.alphabet)))

	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		buf[i] = g.alphabet[n.Int64()]
	}

	return string(buf), nil
}
