// Package bigint implements arbitrary-precision signed integers.
//
// Fibonacci numbers grow exponentially (roughly 0.694*n bits for F(n)), so
// any fixed-width integer type silently overflows after a few dozen terms.
// This package provides the exact scalar arithmetic the matrix-power engine
// is built on: a sign-and-magnitude representation over base-2^32 limbs with
// carry-propagating addition and schoolbook multiplication.
//
// Values are immutable: every operation allocates and returns a new Int, and
// no operation ever modifies its receiver or its operands. This eliminates
// aliasing surprises in the matrix code, where the same value routinely
// appears as several operands of one multiplication.
package bigint

// limbBits is the width of a single limb. Limbs are stored least-significant
// first, which keeps carry propagation a simple forward scan.
const limbBits = 32

// Int is an arbitrary-precision signed integer.
//
// The zero value represents 0 and is ready to use. Invariants: the limb
// slice carries no superfluous most-significant zero limbs, and zero is
// never negative. All exported operations preserve these invariants.
type Int struct {
	neg   bool
	limbs []uint32
}

// Zero returns the integer 0.
func Zero() *Int { return &Int{} }

// One returns the integer 1.
func One() *Int { return &Int{limbs: []uint32{1}} }

// FromUint64 returns the integer with the given non-negative value.
func FromUint64(v uint64) *Int {
	return &Int{limbs: norm([]uint32{uint32(v), uint32(v >> limbBits)})}
}

// FromInt64 returns the integer with the given value, any sign.
func FromInt64(v int64) *Int {
	u := uint64(v)
	if v < 0 {
		// Two's complement negation is correct even for math.MinInt64,
		// where -v would overflow int64.
		u = -u
	}
	z := FromUint64(u)
	z.neg = v < 0 && u != 0
	return z
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero, or
// positive.
func (x *Int) Sign() int {
	if len(x.limbs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool { return len(x.limbs) == 0 }

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.IsZero() {
		return Zero()
	}
	return &Int{neg: !x.neg, limbs: x.limbs}
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, and +1 if
// x > y. This is an exact value comparison.
func (x *Int) Cmp(y *Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := cmpMag(x.limbs, y.limbs)
	if xs < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same integer.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Add returns x + y. The result is exact for any sign combination, and the
// cost is proportional to the limb count of the larger operand.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		z := &Int{neg: x.neg, limbs: addMag(x.limbs, y.limbs)}
		if len(z.limbs) == 0 {
			z.neg = false
		}
		return z
	}
	switch cmpMag(x.limbs, y.limbs) {
	case 1:
		return &Int{neg: x.neg, limbs: subMag(x.limbs, y.limbs)}
	case -1:
		return &Int{neg: y.neg, limbs: subMag(y.limbs, x.limbs)}
	default:
		return Zero()
	}
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return x.Add(y.Neg()) }

// Mul returns x * y using schoolbook multiplication, with cost proportional
// to (limbs of x) * (limbs of y). The matrix entries stay far below the
// sizes where subquadratic algorithms pay off, so no Karatsuba or FFT path
// exists here; correctness holds for operands of unbounded size regardless.
func (x *Int) Mul(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	return &Int{neg: x.neg != y.neg, limbs: mulMag(x.limbs, y.limbs)}
}

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x *Int) BitLen() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}
	top := x.limbs[n-1]
	bits := (n - 1) * limbBits
	for top != 0 {
		bits++
		top >>= 1
	}
	return bits
}

// norm trims superfluous most-significant zero limbs.
func norm(l []uint32) []uint32 {
	n := len(l)
	for n > 0 && l[n-1] == 0 {
		n--
	}
	return l[:n]
}

// cmpMag compares two normalized magnitudes.
func cmpMag(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMag returns the magnitude sum x + y.
func addMag(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]uint32, len(x)+1)
	var carry uint64
	for i := range x {
		s := uint64(x[i]) + carry
		if i < len(y) {
			s += uint64(y[i])
		}
		z[i] = uint32(s)
		carry = s >> limbBits
	}
	z[len(x)] = uint32(carry)
	return norm(z)
}

// subMag returns the magnitude difference x - y. Requires x >= y.
func subMag(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow uint64
	for i := range x {
		var yi uint64
		if i < len(y) {
			yi = uint64(y[i])
		}
		d := uint64(x[i]) - yi - borrow
		z[i] = uint32(d)
		borrow = (d >> limbBits) & 1
	}
	return norm(z)
}

// mulMag returns the magnitude product x * y via the schoolbook algorithm.
// Each partial product plus carry plus accumulator fits in a uint64, so no
// intermediate overflow is possible.
func mulMag(x, y []uint32) []uint32 {
	z := make([]uint32, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		xv := uint64(xi)
		for j, yj := range y {
			t := uint64(z[i+j]) + xv*uint64(yj) + carry
			z[i+j] = uint32(t)
			carry = t >> limbBits
		}
		z[i+len(y)] = uint32(carry)
	}
	return norm(z)
}
