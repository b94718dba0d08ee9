package welle

import "errors"

var (
	// ErrUnknownShape is returned when parsing a wave shape that is not
	// one of Shapes.
	ErrUnknownShape = errors.New("unknown wave shape")
	// ErrUnknownSampleType is returned when parsing a sample type that is
	// not one of SampleTypes.
	ErrUnknownSampleType = errors.New("unknown sample type")
	// ErrUnresolved is returned by a Registry when no generator is
	// installed for a (Shape, SampleType) pair.
	ErrUnresolved = errors.New("unresolved generation capability")

	ErrInvalidSamplingRate = errors.New("samplingRate must be >= 1")
	ErrInvalidFrequency    = errors.New("frequency must be >= 1")
	ErrAboveNyquist        = errors.New("frequency must be <= samplingRate / 2 (Nyquist frequency)")
	ErrInvalidAmplitude    = errors.New("peak-to-peak amplitude must be >= 1")
)
