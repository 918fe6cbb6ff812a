package lfsr

// selfTestSlack bounds the period search beyond the expected cycle length so
// a misconfigured tap mask cannot loop forever.
const selfTestSlack = 100

// SelfTest verifies the register is operating correctly: it must never reach
// the all-zero state, and a full walk from the current state must return to
// it after exactly MaxPeriod steps. The register's state and step counter
// are restored before returning, on success and failure alike.
func (r *LFSR) SelfTest() bool {
	savedState := r.state
	savedSteps := r.steps
	defer func() {
		r.state = savedState
		r.steps = savedSteps
	}()

	// Stuck-zero check: a healthy register never leaves the nonzero cycle.
	for i := 0; i < 10; i++ {
		r.NextBit()
		if r.state == 0 {
			return false
		}
	}

	// Period check: walk until the start state recurs. A non-primitive mask
	// produces a shorter sub-cycle or never returns within the bound.
	r.state = savedState
	start := r.state
	var walked uint32
	for {
		r.NextBit()
		walked++
		if r.state == start {
			break
		}
		if walked > r.maxPeriod+selfTestSlack {
			return false
		}
	}

	return walked == r.maxPeriod
}
