package fibonacci

import (
	"math/rand"
	"testing"

	"github.com/agbru/fibmatrix/internal/bigint"
)

// denseMatrix is a full 2x2 matrix used only as a test oracle for the
// symmetry-optimized multiplication.
type denseMatrix struct {
	a, b, c, d *bigint.Int
}

func (m symMatrix) dense() denseMatrix {
	return denseMatrix{a: m.a, b: m.b, c: m.b, d: m.c}
}

// mulDense is the textbook 8-multiplication 2x2 product.
func mulDense(l, r denseMatrix) denseMatrix {
	return denseMatrix{
		a: l.a.Mul(r.a).Add(l.b.Mul(r.c)),
		b: l.a.Mul(r.b).Add(l.b.Mul(r.d)),
		c: l.c.Mul(r.a).Add(l.d.Mul(r.c)),
		d: l.c.Mul(r.b).Add(l.d.Mul(r.d)),
	}
}

func randomSymMatrix(rng *rand.Rand) symMatrix {
	return symMatrix{
		a: bigint.FromInt64(rng.Int63n(1_000_000)),
		b: bigint.FromInt64(rng.Int63n(1_000_000)),
		c: bigint.FromInt64(rng.Int63n(1_000_000)),
	}
}

// TestMulSymMatchesDenseMultiply cross-checks the 6-multiplication symmetric
// product against the dense 8-multiplication oracle on random symmetric
// inputs, entry by entry, including the off-diagonal pair that the
// optimized representation never materializes twice.
func TestMulSymMatchesDenseMultiply(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		l, r := randomSymMatrix(rng), randomSymMatrix(rng)

		got := mulSym(l, r)
		want := mulDense(l.dense(), r.dense())

		if !got.a.Equal(want.a) {
			t.Fatalf("iteration %d: entry a = %s, dense oracle says %s", i, got.a, want.a)
		}
		if !got.b.Equal(want.b) {
			t.Fatalf("iteration %d: entry b = %s, dense oracle says %s", i, got.b, want.b)
		}
		if !got.c.Equal(want.d) {
			t.Fatalf("iteration %d: entry c = %s, dense oracle says %s", i, got.c, want.d)
		}
		// The two off-diagonal entries of the dense product must agree,
		// otherwise the symmetric representation would be silently lossy.
		if !want.b.Equal(want.c) {
			t.Fatalf("iteration %d: dense product is asymmetric: %s vs %s", i, want.b, want.c)
		}
	}
}

func TestTimes(t *testing.T) {
	t.Parallel()

	t.Run("single factor is returned unchanged", func(t *testing.T) {
		t.Parallel()
		m := symMatrix{a: bigint.FromInt64(3), b: bigint.FromInt64(5), c: bigint.FromInt64(7)}
		got := times(m)
		if !got.a.Equal(m.a) || !got.b.Equal(m.b) || !got.c.Equal(m.c) {
			t.Errorf("times(m) changed the matrix")
		}
	})

	t.Run("identity is neutral on both sides", func(t *testing.T) {
		t.Parallel()
		m := symMatrix{a: bigint.FromInt64(3), b: bigint.FromInt64(5), c: bigint.FromInt64(7)}
		for _, got := range []symMatrix{times(identityMatrix(), m), times(m, identityMatrix())} {
			if !got.a.Equal(m.a) || !got.b.Equal(m.b) || !got.c.Equal(m.c) {
				t.Errorf("identity product altered the matrix: got (%s,%s,%s)", got.a, got.b, got.c)
			}
		}
	})

	t.Run("variadic product folds left to right", func(t *testing.T) {
		t.Parallel()
		q := generatorMatrix()
		chained := times(q, q, q)
		nested := times(times(q, q), q)
		if !chained.a.Equal(nested.a) || !chained.b.Equal(nested.b) || !chained.c.Equal(nested.c) {
			t.Errorf("times(q,q,q) != times(times(q,q),q)")
		}
		// Q^3 = [[3,2],[2,1]].
		if chained.a.String() != "3" || chained.b.String() != "2" || chained.c.String() != "1" {
			t.Errorf("Q^3 = (%s,%s,%s), want (3,2,1)", chained.a, chained.b, chained.c)
		}
	})
}

func TestGeneratorMatrix(t *testing.T) {
	t.Parallel()

	q := generatorMatrix()
	if q.a.String() != "1" || q.b.String() != "1" || q.c.String() != "0" {
		t.Errorf("generator = (%s,%s,%s), want (1,1,0)", q.a, q.b, q.c)
	}
}
