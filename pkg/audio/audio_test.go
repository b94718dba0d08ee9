package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/welle/internal/welle"
)

func TestBufferLoopsAndNormalizes(t *testing.T) {
	samples := welle.Sequence[uint16]{10, 10, 0, 0}

	buf := Buffer(samples, 1000, 10*time.Millisecond)
	assert.Equal(t, []float32{1, 1, -1, -1, 1, 1, -1, -1, 1, 1}, buf)
}

func TestBufferCentresDouble(t *testing.T) {
	samples := welle.Sequence[float64]{0, 5, 10, 5}

	buf := Buffer(samples, 4, time.Second)
	assert.Equal(t, []float32{-1, 0, 1, 0}, buf)
}

func TestBufferEdgeCases(t *testing.T) {
	assert.Nil(t, Buffer(welle.Sequence[float64]{}, 1000, time.Second))
	assert.Nil(t, Buffer(welle.Sequence[float64]{1, 2}, 1000, 0))

	// a flat line plays as silence
	assert.Equal(t, []float32{0, 0, 0}, Buffer(welle.Sequence[float64]{3, 3}, 3, time.Second))
}

func TestBufferCaps(t *testing.T) {
	assert.Len(t, Buffer(welle.Sequence[float64]{0, 1}, 1000, 1000*time.Hour), 600000)

	// an overflowed duration is negative and plays nothing
	assert.Nil(t, Buffer(welle.Sequence[float64]{0, 1}, 1000, -time.Hour))
	assert.Nil(t, Buffer(welle.Sequence[float64]{0, 1}, -8000, time.Second))
}
