package lfsr

// GenerateSequence produces maxBits output bits, capped at one full period.
// A maxBits of zero requests exactly one full period (2^width − 1 bits).
// The register advances as a side effect, exactly as with repeated NextBit
// calls.
func (r *LFSR) GenerateSequence(maxBits int) Bits {
	limit := r.maxPeriod
	if maxBits > 0 && uint32(maxBits) < limit {
		limit = uint32(maxBits)
	}

	seq := make(Bits, 0, limit)
	for i := uint32(0); i < limit; i++ {
		seq = append(seq, r.NextBit())
	}
	return seq
}
