package brushd

import "golang.org/x/exp/constraints"

// Epsilon is the absolute tolerance, in world units, below which a signed
// distance or determinant is treated as zero.
const Epsilon = 1e-5

// A Tolerance compares floating point values, treating any two values within
// Epsilon of each other as equal.
type Tolerance[F constraints.Float] struct {
	Epsilon F
}

// DefaultTolerance is used by every geometric predicate in this package.
var DefaultTolerance = Tolerance[float64]{Epsilon: Epsilon}

// Cmp returns -1 if a < b, 1 if a > b, and 0 if the two values are within
// the tolerance of each other.
func (t Tolerance[F]) Cmp(a, b F) int {
	d := a - b
	if d > t.Epsilon {
		return 1
	} else if d < -t.Epsilon {
		return -1
	}
	return 0
}

// Eq checks if a and b are within the tolerance of each other.
func (t Tolerance[F]) Eq(a, b F) bool {
	return t.Cmp(a, b) == 0
}

// Sign is like Cmp(x, 0).
func (t Tolerance[F]) Sign(x F) int {
	return t.Cmp(x, 0)
}

// Clamp restricts x to the range [min, max].
func Clamp[F constraints.Float](x, min, max F) F {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}
