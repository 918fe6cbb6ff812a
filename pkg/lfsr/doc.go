// Package lfsr implements a Fibonacci-style Linear Feedback Shift Register
// for deterministic pseudorandom bit, byte, and word generation.
//
// The register shifts toward the least-significant bit and feeds the parity
// of the tapped bits back into the most-significant position. Tap positions
// are chosen automatically from a built-in table of primitive polynomials,
// so every register is maximal-length: it visits all 2^width − 1 nonzero
// states exactly once before repeating.
//
// # Usage
//
//	reg, err := lfsr.New(8, 0xAB)
//	if err != nil {
//		return err
//	}
//
//	bit := reg.NextBit()   // one output bit, advances the register
//	b := reg.NextByte()    // eight bits packed LSB-first
//	w := reg.NextWord()    // sixteen bits packed LSB-first
//
//	seq := reg.GenerateSequence(0) // one full period of output bits
//
//	if !reg.SelfTest() {
//		// register is misconfigured; state is untouched either way
//	}
//
// The all-zero state is a fixed point of the feedback rule and is never
// reachable: constructors and Reset coerce a zero seed to 1, and SetState
// rejects a literal zero outright.
//
// Registers are not safe for concurrent use; callers needing parallel
// generation should use one register per goroutine.
package lfsr
