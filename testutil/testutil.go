package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/dimgo/dimension"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Exponent returns a pseudo-random integer in [-maxAbs, maxAbs].
func (r *RNG) Exponent(maxAbs int) int {
	return r.Intn(2*maxAbs+1) - maxAbs
}

// Vector returns a random dimension with at most maxTerms terms drawn from
// the registered base dimensions, exponents in [-maxAbs, maxAbs].
func (r *RNG) Vector(maxTerms, maxAbs int) dimension.Vector {
	bases := dimension.Bases()

	r.mu.Lock()
	r.rand.Shuffle(len(bases), func(i, j int) { bases[i], bases[j] = bases[j], bases[i] })
	n := r.rand.Intn(min(maxTerms, len(bases)) + 1)
	terms := make([]dimension.Term, n)
	for i := range terms {
		terms[i] = bases[i].Exp(r.rand.Intn(2*maxAbs+1) - maxAbs)
	}
	r.mu.Unlock()

	return dimension.MustReduce(terms...)
}

// Declaration returns the terms of v in random order, padded with explicit
// zero-exponent terms for bases v does not use.
func (r *RNG) Declaration(v dimension.Vector) []dimension.Term {
	terms := v.Terms()
	for _, b := range dimension.Bases() {
		if v.Exponent(b) == 0 && r.Intn(4) == 0 {
			terms = append(terms, b.Exp(0))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(terms), func(i, j int) { terms[i], terms[j] = terms[j], terms[i] })
	return terms
}

// Float64s returns n random values in [-1, 1) followed by the edge values
// 0, -0, +Inf, -Inf, NaN and the smallest subnormals.
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	out := make([]float64, 0, n+7)
	for range n {
		out = append(out, 2*r.rand.Float64()-1)
	}
	r.mu.Unlock()

	return append(out,
		0, math.Copysign(0, -1),
		math.Inf(1), math.Inf(-1), math.NaN(),
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	)
}

// Int64s returns n random values in [-1000, 1000] followed by 0 and the
// extreme int64 values.
func (r *RNG) Int64s(n int) []int64 {
	r.mu.Lock()
	out := make([]int64, 0, n+3)
	for range n {
		out = append(out, r.rand.Int63n(2001)-1000)
	}
	r.mu.Unlock()

	return append(out, 0, math.MinInt64, math.MaxInt64)
}
