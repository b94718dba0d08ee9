package welle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type SampleType string // SampleType is the numeric representation of each sample.

const (
	Double    SampleType = "double"    // Double - float64 samples centred on zero
	Integer16 SampleType = "integer16" // Integer16 - unsigned 16-bit samples in [0, peakToPeak]
)

// SampleTypes lists every known SampleType.
var SampleTypes = []SampleType{Double, Integer16}

// ParseSampleType converts a string to a SampleType, returning
// ErrUnknownSampleType when s does not name one.
func ParseSampleType(s string) (SampleType, error) {
	for _, t := range SampleTypes {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownSampleType, s, joinNames(SampleTypes))
}

func (t SampleType) String() string {
	return string(t)
}

// Set implements pflag.Value.
func (t *SampleType) Set(value string) error {
	typ, err := ParseSampleType(value)
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

// Type implements pflag.Value.
func (t *SampleType) Type() string {
	return "type"
}

// Sample is the set of element types a generator can produce.
type Sample interface {
	float64 | uint16
}

// Samples is a read-only view over a generated sample sequence,
// independent of its element type.
type Samples interface {
	// Len returns the number of samples.
	Len() int
	// Value returns sample i widened to float64.
	Value(i int) float64
	// Format returns sample i in its textual form.
	Format(i int) string
}

// Sequence is an ordered run of samples of a single element type.
type Sequence[T Sample] []T

var (
	_ Samples = Sequence[float64]{}
	_ Samples = Sequence[uint16]{}
)

func (s Sequence[T]) Len() int {
	return len(s)
}

func (s Sequence[T]) Value(i int) float64 {
	return float64(s[i])
}

func (s Sequence[T]) Format(i int) string {
	switch v := any(s[i]).(type) {
	case float64:
		return FormatDouble(v)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	}
	return fmt.Sprint(s[i])
}

// FormatDouble formats v in its shortest round-trip form, always keeping
// a fractional part for integral values (1 -> "1.0") and switching to
// exponent notation for very small or very large magnitudes.
func FormatDouble(v float64) string {
	if abs := math.Abs(v); abs != 0 && !math.IsInf(v, 0) && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".nN") {
		s += ".0"
	}
	return s
}
