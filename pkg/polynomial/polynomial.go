// Package polynomial parses and analyzes LFSR feedback polynomial
// expressions in the tap-mask convention used by the lfsr package: the
// leading x^degree term is implicit in the register width, and every other
// term x^k marks tap bit k of the feedback mask (the constant 1 is tap
// bit 0).
//
// It completes the round trip with the engine's PolynomialString rendering:
// parsing a rendered polynomial recovers the register's degree and feedback
// mask exactly.
package polynomial

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/OpenTraceLab/OpenTraceLFSR/pkg/lfsr"
)

// ErrDegreeRange is returned for polynomials whose degree cannot be encoded
// in a 16-bit tap mask.
var ErrDegreeRange = errors.New("polynomial: degree out of range")

// ErrTermOrder is returned when terms are not in strictly descending order.
var ErrTermOrder = errors.New("polynomial: terms must be strictly descending")

// ErrBadConstant is returned for a constant term other than 1.
var ErrBadConstant = errors.New("polynomial: constant term must be 1")

// Polynomial is a feedback polynomial in tap-mask form.
type Polynomial struct {
	Degree int    // exponent of the implicit leading term
	Mask   uint16 // tap bits below the leading term
}

// fromExpression validates a parsed expression and converts it to a
// Polynomial. The leading term fixes the degree; the remaining terms must be
// strictly descending and become mask bits.
func fromExpression(e *Expression) (Polynomial, error) {
	terms := e.Terms()

	for _, t := range terms {
		if t.Constant != nil && *t.Constant != 1 {
			return Polynomial{}, fmt.Errorf("%w: got %d", ErrBadConstant, *t.Constant)
		}
	}

	degree := terms[0].Exponent()
	if degree < 1 || degree > 16 {
		return Polynomial{}, fmt.Errorf("%w: %d", ErrDegreeRange, degree)
	}

	var mask uint16
	prev := degree
	for _, t := range terms[1:] {
		exp := t.Exponent()
		if exp >= prev {
			return Polynomial{}, fmt.Errorf("%w: x^%d after x^%d", ErrTermOrder, exp, prev)
		}
		mask |= 1 << exp
		prev = exp
	}

	return Polynomial{Degree: degree, Mask: mask}, nil
}

// Shipped returns the built-in primitive polynomial for the given register
// width, or false if the width is outside the supported range.
func Shipped(width int) (Polynomial, bool) {
	mask, ok := lfsr.TapsForWidth(width)
	if !ok {
		return Polynomial{}, false
	}
	return Polynomial{Degree: width, Mask: mask}, true
}

// String renders the polynomial the same way the engine does: leading
// x^degree, then each mask bit in descending order, bit 1 as "x" and bit 0
// as the constant "1".
func (p Polynomial) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "x^%d", p.Degree)
	for i := p.Degree - 1; i >= 0; i-- {
		if p.Mask&(1<<i) == 0 {
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

// TapCount returns the number of feedback taps.
func (p Polynomial) TapCount() int {
	return bits.OnesCount16(p.Mask)
}

// primitiveSlack bounds the cycle walk so a degenerate mask cannot loop
// forever.
const primitiveSlack = 100

// Primitive reports whether the polynomial's taps produce a maximal-length
// cycle, by walking a register of the polynomial's degree from state 1 and
// checking that the state recurs after exactly 2^degree − 1 steps. The walk
// is bounded, so masks that fall into the all-zero fixed point or a short
// sub-cycle are reported as non-primitive rather than looping.
func (p Polynomial) Primitive() bool {
	if p.Degree < 2 || p.Degree > 16 {
		return false
	}

	maxPeriod := uint32(1)<<p.Degree - 1
	var state uint16 = 1
	var walked uint32
	for {
		feedback := uint16(bits.OnesCount16(state&p.Mask) & 1)
		state = (state >> 1) | (feedback << (p.Degree - 1))
		walked++
		if state == 1 {
			break
		}
		if walked > maxPeriod+primitiveSlack {
			return false
		}
	}
	return walked == maxPeriod
}
