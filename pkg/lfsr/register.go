package lfsr

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidWidth is returned by New for widths outside [MinWidth, MaxWidth].
var ErrInvalidWidth = errors.New("lfsr: register width out of range")

// ErrZeroState is returned by SetState when the caller supplies zero. The
// all-zero state is a fixed point of the feedback rule and would leave the
// register stuck emitting zeros forever.
var ErrZeroState = errors.New("lfsr: all-zero state is invalid")

// LFSR is a maximal-length linear feedback shift register of a fixed width
// between MinWidth and MaxWidth bits. The zero value is not usable; create
// registers with New.
type LFSR struct {
	state uint16 // current register contents, never zero
	taps  uint16 // feedback tap mask from the primitive table
	width int

	maxPeriod uint32 // 2^width − 1
	steps     uint32 // bits generated since construction or last reset
}

// New creates a register of the given width. A zero seed selects the default
// state 1; any other seed is masked to the low width bits, with a masked-zero
// result coerced to 1 so the register never starts degenerate.
func New(width int, seed uint16) (*LFSR, error) {
	taps, ok := TapsForWidth(width)
	if !ok {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidWidth, width, MinWidth, MaxWidth)
	}

	r := &LFSR{
		taps:      taps,
		width:     width,
		maxPeriod: (1 << width) - 1,
	}
	r.Reset(seed)
	return r, nil
}

// NextBit advances the register one step and returns the output bit.
//
// The feedback bit is the parity of the tapped state bits; the register
// shifts right by one and the feedback enters at bit width-1.
func (r *LFSR) NextBit() Bit {
	feedback := uint16(bits.OnesCount16(r.state&r.taps) & 1)
	r.state = (r.state >> 1) | (feedback << (r.width - 1))
	r.steps++
	return feedback == 1
}

// NextByte generates eight bits and packs them LSB-first: the first bit
// generated lands in bit 0 of the result.
func (r *LFSR) NextByte() byte {
	var b byte
	for i := 0; i < 8; i++ {
		if r.NextBit() {
			b |= 1 << i
		}
	}
	return b
}

// NextWord generates sixteen bits packed LSB-first.
func (r *LFSR) NextWord() uint16 {
	var w uint16
	for i := 0; i < 16; i++ {
		if r.NextBit() {
			w |= 1 << i
		}
	}
	return w
}

// SetState replaces the register contents. Unlike New and Reset, a literal
// zero is an explicit caller error and is rejected with ErrZeroState, leaving
// the register untouched. On success the value is masked to the register
// width, with a masked-zero result substituted by 1 to keep the nonzero
// invariant, and the step counter restarts at zero.
func (r *LFSR) SetState(state uint16) error {
	if state == 0 {
		return ErrZeroState
	}
	s := state & uint16(r.maxPeriod)
	if s == 0 {
		s = 1
	}
	r.state = s
	r.steps = 0
	return nil
}

// Reset reseeds the register with constructor semantics: zero (or a seed that
// masks to zero) selects state 1. The step counter restarts at zero.
func (r *LFSR) Reset(seed uint16) {
	s := seed & uint16(r.maxPeriod)
	if s == 0 {
		s = 1
	}
	r.state = s
	r.steps = 0
}

// State returns the current register contents.
func (r *LFSR) State() uint16 { return r.state }

// Width returns the register width in bits.
func (r *LFSR) Width() int { return r.width }

// FeedbackMask returns the tap mask selected at construction.
func (r *LFSR) FeedbackMask() uint16 { return r.taps }

// StepCounter returns the number of bits generated since construction or the
// last reset.
func (r *LFSR) StepCounter() uint32 { return r.steps }

// MaxPeriod returns 2^width − 1, the cycle length of a maximal-length
// register.
func (r *LFSR) MaxPeriod() uint32 { return r.maxPeriod }

// PeriodComplete reports whether at least one full period of bits has been
// generated since the last reset.
func (r *LFSR) PeriodComplete() bool { return r.steps >= r.maxPeriod }
