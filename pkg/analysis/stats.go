// Package analysis provides quality diagnostics for LFSR output streams:
// bit balance, a monobit chi-square test, run counting, serial correlation,
// and byte-level entropy. These are statistical sanity checks for generated
// test patterns, not a cryptographic test battery.
package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/OpenTraceLab/OpenTraceLFSR/pkg/lfsr"
)

// ErrEmptySequence is returned when there are no bits to analyze.
var ErrEmptySequence = errors.New("analysis: empty bit sequence")

// Stats summarizes a bit sequence.
type Stats struct {
	Bits  int
	Ones  int
	Zeros int

	// OnesRatio is Ones/Bits; 0.5 for a balanced stream.
	OnesRatio float64

	// ChiSquare is the monobit statistic (ones − zeros)²/n, with PValue the
	// probability of seeing a statistic at least this large under the
	// balanced-stream hypothesis.
	ChiSquare float64
	PValue    float64

	// Runs counts maximal blocks of identical bits.
	Runs int

	// SerialCorrelation is the lag-1 correlation between adjacent bits;
	// near zero for a well-behaved generator. NaN when one symbol never
	// occurs.
	SerialCorrelation float64
}

// Analyze computes Stats over the given sequence.
func Analyze(bits lfsr.Bits) (Stats, error) {
	n := len(bits)
	if n == 0 {
		return Stats{}, ErrEmptySequence
	}

	s := Stats{Bits: n, Runs: 1}
	for i, b := range bits {
		if b {
			s.Ones++
		}
		if i > 0 && bits[i] != bits[i-1] {
			s.Runs++
		}
	}
	s.Zeros = n - s.Ones
	s.OnesRatio = float64(s.Ones) / float64(n)

	diff := float64(s.Ones - s.Zeros)
	s.ChiSquare = diff * diff / float64(n)
	chi2 := distuv.ChiSquared{K: 1}
	s.PValue = 1 - chi2.CDF(s.ChiSquare)

	s.SerialCorrelation = serialCorrelation(bits)
	return s, nil
}

func serialCorrelation(bits lfsr.Bits) float64 {
	if len(bits) < 3 {
		return 0
	}
	x := make([]float64, len(bits)-1)
	y := make([]float64, len(bits)-1)
	for i := 0; i < len(bits)-1; i++ {
		if bits[i] {
			x[i] = 1
		}
		if bits[i+1] {
			y[i] = 1
		}
	}
	return stat.Correlation(x, y, nil)
}

// ByteHistogram counts byte value occurrences.
func ByteHistogram(data []byte) [256]int {
	var hist [256]int
	for _, b := range data {
		hist[b]++
	}
	return hist
}

// Entropy returns the Shannon entropy of a byte histogram in bits per byte,
// between 0 and 8.
func Entropy(hist [256]int) float64 {
	total := 0
	for _, c := range hist {
		total += c
	}
	if total == 0 {
		return 0
	}

	p := make([]float64, 0, 256)
	for _, c := range hist {
		if c > 0 {
			p = append(p, float64(c)/float64(total))
		}
	}
	return stat.Entropy(p) / math.Ln2
}
