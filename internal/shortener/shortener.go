package shortener

import (
	"math/rand/v2"

	"github.com/sqids/sqids-go"
)

// idSpace bounds the random ids fed to sqids. 40 bits encode to seven or
// eight characters with the default alphabet.
const idSpace = 1 << 40

type Shortener struct {
	sqids *sqids.Sqids
}

func New() (*Shortener, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &Shortener{sqids: s}, nil
}

// Encode is deterministic for a given id.
func (s *Shortener) Encode(id uint64) (string, error) {
	return s.sqids.Encode([]uint64{id})
}

// Generate returns a code for a random id. Collisions are possible and are
// reported by the store as a duplicate code.
func (s *Shortener) Generate() (string, error) {
	return s.Encode(rand.Uint64N(idSpace))
}
