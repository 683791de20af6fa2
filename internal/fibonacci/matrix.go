// Package fibonacci provides implementations for calculating Fibonacci
// numbers. It exposes a Calculator interface that abstracts the underlying
// algorithm, allowing the matrix-power engine and the iterative reference to
// be used interchangeably by the orchestration, service and server layers.
package fibonacci

import "github.com/agbru/fibmatrix/internal/bigint"

// symMatrix is a symmetric 2x2 matrix with the off-diagonal entries shared:
//
//	[ a b ]
//	[ b c ]
//
// Only three scalars are stored, which halves the distinct values tracked
// compared to a dense 2x2 representation. This representation is valid
// precisely because every matrix the engine handles is a product of powers
// of the generator [[1,1],[1,0]], and such products are always symmetric
// (powers of the same matrix commute).
//
// Values are immutable: new instances are produced only by times and power.
type symMatrix struct {
	a, b, c *bigint.Int
}

// generatorMatrix returns the Fibonacci generator Q = [[1,1],[1,0]].
// Its k-th power encodes three consecutive Fibonacci numbers:
//
//	Q^k = [ F(k+1) F(k)   ]
//	      [ F(k)   F(k-1) ]
func generatorMatrix() symMatrix {
	return symMatrix{a: bigint.One(), b: bigint.One(), c: bigint.Zero()}
}

// identityMatrix returns [[1,0],[0,1]], the multiplicative identity and the
// accumulator seed for the power loop.
func identityMatrix() symMatrix {
	return symMatrix{a: bigint.One(), b: bigint.Zero(), c: bigint.One()}
}

// times returns the matrix product of its factors, folding strictly left to
// right: times(m1, m2, m3) = times(times(m1, m2), m3). A single factor is
// returned unchanged. Calling times with no factors is not supported; the
// engine never does so.
func times(factors ...symMatrix) symMatrix {
	result := factors[0]
	for _, f := range factors[1:] {
		result = mulSym(result, f)
	}
	return result
}

// mulSym multiplies two symmetric matrices (a,b,c) and (d,e,f):
//
//	result.a = a*d + b*e
//	result.b = a*e + b*f
//	result.c = b*e + c*f
//
// This is the algebraic simplification of the dense 2x2 product for
// symmetric operands: 6 multiplications and 3 additions instead of 8 and 4,
// and the redundant fourth entry is never materialized.
func mulSym(l, r symMatrix) symMatrix {
	return symMatrix{
		a: l.a.Mul(r.a).Add(l.b.Mul(r.b)),
		b: l.a.Mul(r.b).Add(l.b.Mul(r.c)),
		c: l.b.Mul(r.b).Add(l.c.Mul(r.c)),
	}
}
