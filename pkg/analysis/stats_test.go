package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLFSR/pkg/lfsr"
)

func TestAnalyzeEmpty(t *testing.T) {
	if _, err := Analyze(nil); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("Analyze(nil) error = %v, want ErrEmptySequence", err)
	}
}

func TestAnalyzeFullPeriodBalance(t *testing.T) {
	// One full period of a width-10 register: 512 ones, 511 zeros.
	reg, err := lfsr.New(10, 0x2A7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s, err := Analyze(reg.GenerateSequence(0))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if s.Bits != 1023 {
		t.Fatalf("Bits = %d, want 1023", s.Bits)
	}
	if s.Ones != 512 || s.Zeros != 511 {
		t.Fatalf("ones/zeros = %d/%d, want 512/511", s.Ones, s.Zeros)
	}
	if s.OnesRatio < 0.49 || s.OnesRatio > 0.51 {
		t.Fatalf("OnesRatio = %f, want ~0.5", s.OnesRatio)
	}

	// Monobit statistic for a one-bit excess: 1/1023.
	if math.Abs(s.ChiSquare-1.0/1023.0) > 1e-12 {
		t.Fatalf("ChiSquare = %g, want %g", s.ChiSquare, 1.0/1023.0)
	}
	if s.PValue < 0.9 {
		t.Fatalf("PValue = %f, want > 0.9 for a balanced stream", s.PValue)
	}

	// A maximal-length sequence shows little adjacent-bit correlation.
	if math.Abs(s.SerialCorrelation) > 0.1 {
		t.Fatalf("SerialCorrelation = %f, want ~0", s.SerialCorrelation)
	}
}

func TestAnalyzeConstantStream(t *testing.T) {
	bits := make(lfsr.Bits, 64)
	for i := range bits {
		bits[i] = lfsr.One
	}
	s, err := Analyze(bits)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if s.Runs != 1 {
		t.Fatalf("Runs = %d, want 1", s.Runs)
	}
	if s.ChiSquare != 64 {
		t.Fatalf("ChiSquare = %f, want 64", s.ChiSquare)
	}
	if s.PValue > 0.001 {
		t.Fatalf("PValue = %f, want ~0 for a stuck stream", s.PValue)
	}
}

func TestAnalyzeRuns(t *testing.T) {
	// 1 1 0 1 0 0 0 1 → five runs.
	bits := lfsr.Bits{
		lfsr.One, lfsr.One, lfsr.Zero, lfsr.One,
		lfsr.Zero, lfsr.Zero, lfsr.Zero, lfsr.One,
	}
	s, err := Analyze(bits)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if s.Runs != 5 {
		t.Fatalf("Runs = %d, want 5", s.Runs)
	}
}

func TestByteHistogramAndEntropy(t *testing.T) {
	uniform := make([]byte, 256)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	hist := ByteHistogram(uniform)
	for v, c := range hist {
		if c != 1 {
			t.Fatalf("hist[%d] = %d, want 1", v, c)
		}
	}
	if got := Entropy(hist); math.Abs(got-8) > 1e-9 {
		t.Fatalf("uniform entropy = %f, want 8", got)
	}

	constant := ByteHistogram([]byte{7, 7, 7, 7})
	if got := Entropy(constant); got != 0 {
		t.Fatalf("constant entropy = %f, want 0", got)
	}

	if got := Entropy(ByteHistogram(nil)); got != 0 {
		t.Fatalf("empty entropy = %f, want 0", got)
	}
}

func TestLFSRByteStreamEntropy(t *testing.T) {
	reg, err := lfsr.New(16, 0xACE1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	data := make([]byte, 4096)
	for i := range data {
		data[i] = reg.NextByte()
	}
	if got := Entropy(ByteHistogram(data)); got < 7.5 {
		t.Fatalf("LFSR byte-stream entropy = %f, want > 7.5", got)
	}
}
