package audio

import (
	"math"
	"time"

	"github.com/thelolagemann/welle/internal/welle"
)

const (
	// MaxDuration is the longest a sequence is looped for.
	MaxDuration = 10 * time.Minute
	// MaxSamples bounds the buffer for very high sampling rates.
	MaxSamples = 1 << 26
)

// Buffer loops samples to fill d at samplingRate, normalized to
// [-1, 1] around the midpoint of their range. A constant sequence
// yields silence. d is capped at MaxDuration and the buffer at
// MaxSamples.
func Buffer(samples welle.Samples, samplingRate int, d time.Duration) []float32 {
	n := samples.Len()
	if n == 0 || d <= 0 || samplingRate <= 0 {
		return nil
	}
	if d > MaxDuration {
		d = MaxDuration
	}
	total := int(math.Min(d.Seconds()*float64(samplingRate), MaxSamples))
	if total <= 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		lo = math.Min(lo, samples.Value(i))
		hi = math.Max(hi, samples.Value(i))
	}
	mid, half := (hi+lo)/2, (hi-lo)/2

	period := make([]float32, n)
	if half > 0 {
		for i := range period {
			period[i] = float32((samples.Value(i) - mid) / half)
		}
	}

	buf := make([]float32, total)
	for i := range buf {
		buf[i] = period[i%n]
	}
	return buf
}
