package format

import (
	"math/rand"
	"time"
)

// RandomSource supplies the integers used when synthesizing numeric ranges
// for padded content. Injecting it keeps padding reproducible under test:
// pass NewSeededSource there and DefaultRandom in production.
type RandomSource interface {
	IntBetween(min, max int) int
}

type mathSource struct {
	r *rand.Rand
}

func (s mathSource) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// DefaultRandom returns a time-seeded RandomSource.
func DefaultRandom() RandomSource {
	return mathSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSource returns a deterministic RandomSource for reproducible
// synthesis.
func NewSeededSource(seed int64) RandomSource {
	return mathSource{r: rand.New(rand.NewSource(seed))}
}
