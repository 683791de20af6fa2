package bigint

import (
	"fmt"
	"strings"
)

// decimalBase is the largest power of ten that fits in a limb. Conversion to
// and from decimal works in chunks of this size (9 digits at a time) rather
// than digit by digit.
const (
	decimalBase   = 1_000_000_000
	decimalDigits = 9
)

// String returns the decimal representation of x, with a leading '-' for
// negative values. The conversion performs repeated division of the limb
// magnitude by 10^9, so its cost is quadratic in the limb count; that is
// acceptable because formatting happens once per result, not inside the
// arithmetic hot path.
func (x *Int) String() string {
	if x.IsZero() {
		return "0"
	}

	// Collect 9-digit groups, least significant first.
	mag := make([]uint32, len(x.limbs))
	copy(mag, x.limbs)
	var groups []uint32
	for len(mag) > 0 {
		var rem uint32
		mag, rem = divmodSmall(mag, decimalBase)
		groups = append(groups, rem)
	}

	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	// The most significant group is printed without zero padding.
	fmt.Fprintf(&sb, "%d", groups[len(groups)-1])
	for i := len(groups) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", groups[i])
	}
	return sb.String()
}

// ParseDecimal parses a base-10 integer literal, with an optional leading
// '-' or '+' sign.
func ParseDecimal(s string) (*Int, error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("bigint: cannot parse %q as a decimal integer", s)
	}

	z := Zero()
	scale := FromUint64(decimalBase)
	for len(digits) > 0 {
		n := len(digits) % decimalDigits
		if n == 0 {
			n = decimalDigits
		}
		var chunk uint64
		for _, ch := range []byte(digits[:n]) {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("bigint: invalid digit %q in %q", ch, s)
			}
			chunk = chunk*10 + uint64(ch-'0')
		}
		if !z.IsZero() {
			z = z.Mul(scale)
		}
		z = z.Add(FromUint64(chunk))
		digits = digits[n:]
	}
	if neg {
		z = z.Neg()
	}
	return z, nil
}

// divmodSmall divides a magnitude by a single-limb divisor, returning the
// normalized quotient and the remainder.
func divmodSmall(l []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(l))
	var rem uint64
	for i := len(l) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(l[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return norm(q), uint32(rem)
}
