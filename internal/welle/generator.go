package welle

// Generator is the interface that wraps the single operation of a
// generation capability: synthesize one sample sequence.
type Generator interface {
	// Generate synthesizes a waveform sampled at samplingRate (Hz)
	// with the given frequency (Hz), peak-to-peak amplitude and
	// phase shift (radians).
	Generate(samplingRate, frequency int, peakToPeak, phaseShift float64) (Samples, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(samplingRate, frequency int, peakToPeak, phaseShift float64) (Samples, error)

func (f GeneratorFunc) Generate(samplingRate, frequency int, peakToPeak, phaseShift float64) (Samples, error) {
	return f(samplingRate, frequency, peakToPeak, phaseShift)
}

const (
	DefaultPeakToPeak = 10.0 // DefaultPeakToPeak is used when no amplitude is supplied.
	DefaultPhaseShift = 0.0  // DefaultPhaseShift is used when no phase shift is supplied.
)

// Request is one validated set of generation parameters. It is a value
// type: copies never alias.
type Request struct {
	Wave         Shape
	Type         SampleType
	SamplingRate int     // samples per second
	Frequency    int     // Hz
	PeakToPeak   float64 // peak-to-peak amplitude
	PhaseShift   float64 // radians
}

// NewRequest returns a Request for the given shape with every optional
// parameter at its default.
func NewRequest(wave Shape, samplingRate, frequency int) Request {
	return Request{
		Wave:         wave,
		Type:         Double,
		SamplingRate: samplingRate,
		Frequency:    frequency,
		PeakToPeak:   DefaultPeakToPeak,
		PhaseShift:   DefaultPhaseShift,
	}
}

// CapabilityName returns the name of the capability serving r.
func (r Request) CapabilityName() string {
	return CapabilityName(r.Wave, r.Type)
}

// Generate invokes g with the parameters of r, in positional order.
func (r Request) Generate(g Generator) (Samples, error) {
	return g.Generate(r.SamplingRate, r.Frequency, r.PeakToPeak, r.PhaseShift)
}
