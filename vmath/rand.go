package vmath

import "math/rand/v2"

// RandomSource abstracts the integer draws used by gameplay rolls
// Tests inject fixed sequences; the game seeds from the clock or a flag
type RandomSource interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator, cheap and reproducible for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// seededRand wraps a PCG stream for uniform draws without modulo bias
type seededRand struct {
	r *rand.Rand
}

// NewSeededRand returns a replicable uniform source
func NewSeededRand(seed uint64) RandomSource {
	return &seededRand{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}
