package welle

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(s Samples) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.Value(i)
	}
	return out
}

func minMax(v []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range v {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

func TestPeriodSamples(t *testing.T) {
	for _, tt := range []struct {
		samplingRate, frequency, want int
	}{
		{1000, 10, 100},
		{24000, 440, 55},
		{1000, 32, 32},
		{8000, 440, 19},
		{1000, 500, 2},
	} {
		got, err := PeriodSamples(tt.samplingRate, tt.frequency)
		if err != nil {
			t.Errorf("PeriodSamples(%d, %d) returned error: %v", tt.samplingRate, tt.frequency, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PeriodSamples(%d, %d) = %d, want %d", tt.samplingRate, tt.frequency, got, tt.want)
		}
	}
}

func TestGenerateLength(t *testing.T) {
	for _, shape := range Shapes {
		for _, g := range []Generator{Wave[float64]{shape}, Wave[uint16]{shape}} {
			s, err := g.Generate(48000, 440, 1, 0)
			require.NoError(t, err)
			assert.Equal(t, 110, s.Len(), "%s %T", shape, g)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	for _, tt := range []struct {
		name                    string
		samplingRate, frequency int
		peakToPeak              float64
		want                    error
	}{
		{"zero sampling rate", 0, 10, 1, ErrInvalidSamplingRate},
		{"negative sampling rate", -10, 10, 1, ErrInvalidSamplingRate},
		{"zero frequency", 1000, 0, 1, ErrInvalidFrequency},
		{"above nyquist", 1000, 501, 1, ErrAboveNyquist},
		{"negative amplitude", 1000, 10, -1, ErrInvalidAmplitude},
		{"amplitude below one", 1000, 10, 0.5, ErrInvalidAmplitude},
		{"nan amplitude", 1000, 10, math.NaN(), ErrInvalidAmplitude},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wave[float64]{Sine}.Generate(tt.samplingRate, tt.frequency, tt.peakToPeak, 0)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	// the Nyquist frequency itself is allowed
	_, err := Wave[uint16]{Sine}.Generate(1000, 500, 1, 0)
	assert.NoError(t, err)
	_, err = Wave[uint16]{Sine}.Generate(1, 1, 1, 0)
	assert.ErrorIs(t, err, ErrAboveNyquist)
}

func TestGenerateUnknownShape(t *testing.T) {
	_, err := Wave[float64]{Shape("sawtooth")}.Generate(1000, 10, 1, 0)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestSineAmplitude(t *testing.T) {
	const tolerance = 0.02

	for _, tt := range []struct {
		g                       Generator
		samplingRate, frequency int
		peakToPeak, phaseShift  float64
		wantMin, wantMax        float64
	}{
		{Wave[uint16]{Sine}, 1000, 10, 1, 0, 0, 1},
		{Wave[uint16]{Sine}, 1000, 10, 1024, 0, 0, 1024},
		{Wave[float64]{Sine}, 1000, 20, 1, 0, -0.5, 0.5},
		{Wave[float64]{Sine}, 1000, 32, 1, 0, -0.5, 0.5},
		{Wave[float64]{Sine}, 1000, 15, 200, 0, -100, 100},
		{Wave[float64]{Sine}, 1000, 500, 2, math.Pi / 2, -1, 1},
	} {
		s, err := tt.g.Generate(tt.samplingRate, tt.frequency, tt.peakToPeak, tt.phaseShift)
		require.NoError(t, err)

		lo, hi := minMax(values(s))
		if math.Abs(tt.wantMax-hi) > tt.wantMax*tolerance {
			t.Errorf("%T(%d, %d, %v): max = %v, want %v", tt.g, tt.samplingRate, tt.frequency, tt.peakToPeak, hi, tt.wantMax)
		}
		if math.Abs(tt.wantMin-lo) > tt.wantMax*tolerance {
			t.Errorf("%T(%d, %d, %v): min = %v, want %v", tt.g, tt.samplingRate, tt.frequency, tt.peakToPeak, lo, tt.wantMin)
		}
	}
}

func TestShapeRanges(t *testing.T) {
	for _, shape := range []Shape{Square, Saw, Triangle} {
		s, err := Wave[float64]{shape}.Generate(1000, 10, 8, 0)
		require.NoError(t, err)

		lo, hi := minMax(values(s))
		assert.Equal(t, 0.0, lo, "%s min", shape)
		assert.InDelta(t, 8.0, hi, 8*0.02, "%s max", shape)
	}
}

func TestSquareHalves(t *testing.T) {
	s, err := Wave[uint16]{Square}.Generate(100, 10, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, Sequence[uint16]{10, 10, 10, 10, 10, 0, 0, 0, 0, 0}, s)
}

func TestDominantFrequency(t *testing.T) {
	const tolerance = 0.05

	cases := []struct {
		samplingRate, frequency int
		peakToPeak              float64
	}{
		{1000, 10, 10},
		{1000, 10, 1024},
		{24000, 440, 256},
		{24000, 440, 2048},
		{48000, 440, 4095},
	}

	for _, shape := range Shapes {
		for _, g := range []Generator{Wave[float64]{shape}, Wave[uint16]{shape}} {
			for _, tt := range cases {
				s, err := g.Generate(tt.samplingRate, tt.frequency, tt.peakToPeak, 0)
				require.NoError(t, err)

				// repeat the period to fill (roughly) one second
				period := values(s)
				var second []float64
				for i := 0; i < tt.samplingRate/len(period); i++ {
					second = append(second, period...)
				}

				spectrum := fft.FFTReal(second)
				dominant := 1
				for i := 1; i < len(spectrum)/2; i++ { // skip DC
					if cmplx.Abs(spectrum[i]) > cmplx.Abs(spectrum[dominant]) {
						dominant = i
					}
				}

				if math.Abs(float64(dominant-tt.frequency)) > float64(tt.frequency)*tolerance {
					t.Errorf("%s %T(%d, %d): dominant frequency %dHz", shape, g, tt.samplingRate, tt.frequency, dominant)
				}
			}
		}
	}
}

func TestPhaseShift(t *testing.T) {
	const tolerance = 1e-4

	for _, tt := range []struct {
		g          Generator
		phaseShift float64
		want       float64
	}{
		{Wave[float64]{Sine}, 0, 0},
		{Wave[float64]{Sine}, math.Pi / 2, 0.5},
		{Wave[float64]{Sine}, math.Pi, 0},
		{Wave[float64]{Sine}, 3 * math.Pi / 2, -0.5},
		{Wave[float64]{Sine}, 2 * math.Pi, 0},

		{Wave[uint16]{Sine}, 0, 0},
		{Wave[uint16]{Sine}, math.Pi / 2, 1},
		{Wave[uint16]{Sine}, math.Pi, 0},
		{Wave[uint16]{Sine}, 3 * math.Pi / 2, 0},
		{Wave[uint16]{Sine}, 2 * math.Pi, 0},
	} {
		s, err := tt.g.Generate(100, 10, 1, tt.phaseShift)
		require.NoError(t, err)
		require.NotZero(t, s.Len())

		if got := s.Value(0); math.Abs(got-tt.want) > tolerance {
			t.Errorf("%T phase %.4f: first sample %v, want %v", tt.g, tt.phaseShift, got, tt.want)
		}
	}
}

func TestSineNudge(t *testing.T) {
	s, err := Wave[float64]{Sine}.Generate(100, 10, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 10, s.Len())

	// zero crossings are pushed up in the first half, down in the second
	assert.Equal(t, sigma, s.Value(0))
	assert.Equal(t, "1e-05", s.Format(0))
	assert.InDelta(t, -sigma, s.Value(5), 1e-12)

	u, err := Wave[uint16]{Sine}.Generate(100, 10, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, u.Value(0))
	assert.Equal(t, 0.0, u.Value(5))
}

func TestPhaseShiftIgnoredByLinearShapes(t *testing.T) {
	for _, shape := range []Shape{Square, Saw, Triangle} {
		a, err := Wave[float64]{shape}.Generate(1000, 10, 4, 0)
		require.NoError(t, err)
		b, err := Wave[float64]{shape}.Generate(1000, 10, 4, math.Pi/3)
		require.NoError(t, err)
		assert.Equal(t, a, b, shape.String())
	}
}

func TestQuantizeSaturates(t *testing.T) {
	assert.Equal(t, uint16(0), quantize[uint16](-3.5))
	assert.Equal(t, uint16(0), quantize[uint16](math.NaN()))
	assert.Equal(t, uint16(65535), quantize[uint16](1e9))
	assert.Equal(t, uint16(41), quantize[uint16](41.999))
	assert.Equal(t, -3.5, quantize[float64](-3.5))
}
