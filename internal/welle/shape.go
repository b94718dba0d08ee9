package welle

import (
	"fmt"
	"strings"
)

type Shape string // Shape is the waveform family to synthesize.

const (
	Sine     Shape = "sine"     // Sine - sinusoid, the only shape affected by phase shift
	Square   Shape = "square"   // Square - high for the first half period, zero after
	Saw      Shape = "saw"      // Saw - linear ramp restarting at half period
	Triangle Shape = "triangle" // Triangle - symmetric linear rise and fall
)

// Shapes lists every known Shape in the order they are presented
// to the user.
var Shapes = []Shape{Sine, Square, Saw, Triangle}

// ParseShape converts a string to a Shape, returning ErrUnknownShape
// when s does not name one.
func ParseShape(s string) (Shape, error) {
	for _, shape := range Shapes {
		if string(shape) == s {
			return shape, nil
		}
	}

	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownShape, s, joinNames(Shapes))
}

func (s Shape) String() string {
	return string(s)
}

// Title returns the shape name with its first letter upper-cased,
// e.g. "Sine".
func (s Shape) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Set implements pflag.Value.
func (s *Shape) Set(value string) error {
	shape, err := ParseShape(value)
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// Type implements pflag.Value.
func (s *Shape) Type() string {
	return "shape"
}

func joinNames[T ~string](names []T) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, "|")
}
