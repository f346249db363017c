// Package tracking generates public tracking codes.
package tracking

import (
	"crypto/rand"
	"math/big"
	"strings"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"

	"github.com/pkg/errors"
)

type randomGenerator struct {
	prefix   string
	alphabet string
	length   int
}

// NewGenerator returns a generator of TKS-XXXXXXXX codes drawn uniformly
// from the upper-case alphanumeric alphabet.
func NewGenerator() service.TrackingCodeGenerator {
	return &randomGenerator{
		prefix:   entity.TrackingCodePrefix,
		alphabet: entity.TrackingCodeAlphabet,
		length:   entity.TrackingCodeLength,
	}
}

func (g *randomGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(len(g.prefix) + 1 + g.length)
	b.WriteString(g.prefix)
	b.WriteByte('-')

	limit := big.NewInt(int64(len(g.alphabet)))
	for range g.length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "read random tracking code")
		}
		b.WriteByte(g.alphabet[n.Int64()])
	}

	return b.String(), nil
}
