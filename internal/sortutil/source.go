package sortutil

import "math/rand/v2"

// Source picks pivot indexes. IntN returns a uniform value in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-global generator.
var DefaultSource Source = globalSource{}

// NewSeededSource returns a deterministic source. PCG keeps runs reproducible
// across platforms.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
