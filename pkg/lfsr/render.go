package lfsr

import (
	"fmt"
	"strings"
)

// StateString renders the current state as exactly width characters of
// '0'/'1', most-significant bit first.
func (r *LFSR) StateString() string {
	var sb strings.Builder
	sb.Grow(r.width)
	for i := r.width - 1; i >= 0; i-- {
		if r.state&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// PolynomialString renders the feedback polynomial in conventional form,
// e.g. "x^8 + x^4 + x^3 + x^2 + 1" for an 8-bit register. The leading
// x^width term is implicit in the register width; the remaining terms are
// the tap positions in descending order, with bit 1 written as "x" and
// bit 0 as the constant term "1".
func (r *LFSR) PolynomialString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "x^%d", r.width)
	for i := r.width - 1; i >= 0; i-- {
		if r.taps&(1<<i) == 0 {
			continue
		}
		switch i {
		case 0:
			sb.WriteString(" + 1")
		case 1:
			sb.WriteString(" + x")
		default:
			fmt.Fprintf(&sb, " + x^%d", i)
		}
	}
	return sb.String()
}

// String summarizes the register for diagnostics.
func (r *LFSR) String() string {
	return fmt.Sprintf("LFSR(width=%d, state=%s, poly=%s, steps=%d/%d)",
		r.width, r.StateString(), r.PolynomialString(), r.steps, r.maxPeriod)
}
