package bigint

import (
	"math"
	"testing"
)

func TestFromInt64(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0"},
		{"one", 1, "1"},
		{"negative one", -1, "-1"},
		{"single limb boundary", 4294967295, "4294967295"},
		{"two limbs", 4294967296, "4294967296"},
		{"max int64", math.MaxInt64, "9223372036854775807"},
		{"min int64", math.MinInt64, "-9223372036854775808"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FromInt64(tc.in).String(); got != tc.want {
				t.Errorf("FromInt64(%d).String() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		x, y    int64
		want    string
		wantCmp int
	}{
		{"both positive", 7, 5, "12", 1},
		{"both negative", -7, -5, "-12", -1},
		{"mixed positive result", 7, -5, "2", 1},
		{"mixed negative result", -7, 5, "-2", -1},
		{"cancellation to zero", 7, -7, "0", 0},
		{"zero identity", 0, 42, "42", 1},
		{"carry across limb boundary", 4294967295, 1, "4294967296", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			z := FromInt64(tc.x).Add(FromInt64(tc.y))
			if got := z.String(); got != tc.want {
				t.Errorf("%d + %d = %q, want %q", tc.x, tc.y, got, tc.want)
			}
			if got := z.Sign(); got != tc.wantCmp {
				t.Errorf("Sign(%d + %d) = %d, want %d", tc.x, tc.y, got, tc.wantCmp)
			}
		})
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x, y int64
		want string
	}{
		{"small", 6, 7, "42"},
		{"sign rules negative", -6, 7, "-42"},
		{"sign rules positive", -6, -7, "42"},
		{"zero absorbs", 0, 12345, "0"},
		{"zero absorbs negative", -12345, 0, "0"},
		{"limb overflow", 4294967295, 4294967295, "18446744065119617025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FromInt64(tc.x).Mul(FromInt64(tc.y)).String(); got != tc.want {
				t.Errorf("%d * %d = %q, want %q", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestMulLargeOperands(t *testing.T) {
	t.Parallel()

	// 2^128 * 2^128 = 2^256, well beyond native word width.
	x, err := ParseDecimal("340282366920938463463374607431768211456")
	if err != nil {
		t.Fatalf("ParseDecimal failed: %v", err)
	}
	want := "115792089237316195423570985008687907853269984665640564039457584007913129639936"
	if got := x.Mul(x).String(); got != want {
		t.Errorf("2^128 squared = %q, want %q", got, want)
	}
}

func TestCmp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x, y int64
		want int
	}{
		{"less", 3, 5, -1},
		{"equal", 5, 5, 0},
		{"greater", 8, 5, 1},
		{"negative less than positive", -1, 1, -1},
		{"negative ordering", -8, -5, -1},
		{"zero vs negative", 0, -5, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FromInt64(tc.x).Cmp(FromInt64(tc.y)); got != tc.want {
				t.Errorf("Cmp(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
			}
			if gotEq := FromInt64(tc.x).Equal(FromInt64(tc.y)); gotEq != (tc.want == 0) {
				t.Errorf("Equal(%d, %d) = %v, want %v", tc.x, tc.y, gotEq, tc.want == 0)
			}
		})
	}
}

// TestImmutability verifies the value semantics the matrix engine relies on:
// an operation must never modify its operands, even when the same value is
// passed on both sides.
func TestImmutability(t *testing.T) {
	t.Parallel()

	x := FromInt64(1234567890123)
	y := FromInt64(-987654321)
	before, beforeY := x.String(), y.String()

	_ = x.Add(y)
	_ = x.Mul(y)
	_ = x.Sub(y)
	_ = x.Mul(x)
	_ = x.Neg()

	if got := x.String(); got != before {
		t.Errorf("operand x mutated: got %q, want %q", got, before)
	}
	if got := y.String(); got != beforeY {
		t.Errorf("operand y mutated: got %q, want %q", got, beforeY)
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{
			"0", "1", "-1", "999999999", "1000000000",
			"354224848179261915075", "-354224848179261915075",
		} {
			z, err := ParseDecimal(s)
			if err != nil {
				t.Fatalf("ParseDecimal(%q) failed: %v", s, err)
			}
			if got := z.String(); got != s {
				t.Errorf("round trip of %q gave %q", s, got)
			}
		}
	})

	t.Run("leading plus is accepted", func(t *testing.T) {
		t.Parallel()
		z, err := ParseDecimal("+42")
		if err != nil {
			t.Fatalf("ParseDecimal(+42) failed: %v", err)
		}
		if got := z.String(); got != "42" {
			t.Errorf("ParseDecimal(+42) = %q, want %q", got, "42")
		}
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "-", "+", "12a3", "1.5", " 1"} {
			if _, err := ParseDecimal(s); err == nil {
				t.Errorf("ParseDecimal(%q) succeeded, want error", s)
			}
		}
	})
}

func TestBitLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{255, 8},
		{256, 9},
		{4294967296, 33},
	}
	for _, tc := range cases {
		if got := FromInt64(tc.in).BitLen(); got != tc.want {
			t.Errorf("BitLen(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
