package welle

import (
	"fmt"
	"math"
)

// sigma nudges sine samples away from zero crossings, upwards in the
// first half period and downwards in the second, so that exact peaks
// survive integer truncation.
const sigma = 1e-5

const minAmplitude = 1

// NyquistFrequency returns the highest frequency (Hz) that can be
// captured at samplingRate.
func NyquistFrequency(samplingRate int) (int, error) {
	if samplingRate < 1 {
		return 0, ErrInvalidSamplingRate
	}
	return samplingRate / 2, nil
}

// PeriodSamples returns how many samples a single period of a wave with
// the given frequency takes at samplingRate.
func PeriodSamples(samplingRate, frequency int) (int, error) {
	nyquist, err := NyquistFrequency(samplingRate)
	if err != nil {
		return 0, err
	}
	if frequency < 1 {
		return 0, ErrInvalidFrequency
	}
	if frequency > nyquist {
		return 0, fmt.Errorf("%w: %dHz > %dHz", ErrAboveNyquist, frequency, nyquist)
	}

	return int(math.Ceil(float64(samplingRate) / float64(frequency))), nil
}

// kernel computes the value of sample i within one period, before
// quantization to the sample type.
type kernel func(i int, p period) float64

type period struct {
	length     int
	peakToPeak float64
	phaseShift float64
	dcOffset   float64
}

var kernels = map[Shape]kernel{
	Sine:     sineSample,
	Square:   squareSample,
	Saw:      sawSample,
	Triangle: triangleSample,
}

func sineSample(i int, p period) float64 {
	v := (math.Sin(2*math.Pi*float64(i)/float64(p.length)+p.phaseShift) + p.dcOffset) * p.peakToPeak / 2
	if i < p.length/2 {
		return v + sigma
	}
	return v - sigma
}

func squareSample(i int, p period) float64 {
	if i < p.length/2 {
		return p.peakToPeak
	}
	return 0
}

func sawSample(i int, p period) float64 {
	return p.peakToPeak / float64(p.length) * float64(modulo(i-p.length/2, p.length))
}

func triangleSample(i int, p period) float64 {
	return 2 * p.peakToPeak / float64(p.length) * math.Abs(float64(modulo(i-p.length/4, p.length)-p.length/2))
}

func modulo(x, n int) int {
	return ((x % n) + n) % n
}

// Wave generates exactly one period of Shape per call, with samples
// of type T. Wave[uint16] is shifted up by half the amplitude so that
// its samples span [0, peakToPeak].
type Wave[T Sample] struct {
	Shape Shape
}

var (
	_ Generator = Wave[float64]{}
	_ Generator = Wave[uint16]{}
)

func (w Wave[T]) Generate(samplingRate, frequency int, peakToPeak, phaseShift float64) (Samples, error) {
	if samplingRate < 1 {
		return nil, ErrInvalidSamplingRate
	}
	if frequency < 1 {
		return nil, ErrInvalidFrequency
	}
	if !(peakToPeak >= minAmplitude) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAmplitude, peakToPeak)
	}
	length, err := PeriodSamples(samplingRate, frequency)
	if err != nil {
		return nil, err
	}

	calculate, ok := kernels[w.Shape]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, w.Shape)
	}

	p := period{
		length:     length,
		peakToPeak: peakToPeak,
		phaseShift: phaseShift,
	}
	if unsigned[T]() {
		p.dcOffset = 1
	}

	samples := make(Sequence[T], length)
	for i := range samples {
		samples[i] = quantize[T](calculate(i, p))
	}
	return samples, nil
}

func unsigned[T Sample]() bool {
	var zero T
	_, ok := any(zero).(uint16)
	return ok
}

// quantize converts v to T, truncating toward zero and saturating to
// the range of integer types.
func quantize[T Sample](v float64) T {
	if !unsigned[T]() {
		return T(v)
	}

	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint16:
		return T(uint16(math.MaxUint16))
	}
	return T(uint16(v))
}
