package push

import "math/rand"

// randSource is the deterministic pseudorandom source carried inside
// every State. There is no ecosystem library in the pack for
// deterministic, non-cryptographic PRNG sequences (the one curve
// library present, filippo.io/edwards25519, implements elliptic-curve
// field arithmetic, not a general seedable generator), so this wraps
// the standard library's math/rand, which is exactly what a seeded,
// reproducible-by-construction generator needs.
type randSource struct {
	r *rand.Rand
}

func newRandSource(seed int64) *randSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (rs *randSource) Bool() bool { return rs.r.Intn(2) == 1 }

// Int returns a uniform sample in [lo, hi]. Returns lo if hi <= lo.
func (rs *randSource) Int(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := hi - lo + 1
	return lo + rs.r.Int63n(span)
}

func (rs *randSource) Float() float64 { return rs.r.Float64() }

func (rs *randSource) Normal(mean, std float64) float64 {
	return rs.r.NormFloat64()*std + mean
}

// Positions returns k distinct indices drawn uniformly from [0, n),
// used by BOOLVECTOR.RAND to place its true bits.
func (rs *randSource) Positions(n, k int) []int {
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	idx := rs.r.Perm(n)
	return idx[:k]
}
