//go:build !test

package audio

import (
	"time"
	"unsafe"

	"github.com/thelolagemann/welle/internal/welle"
	"github.com/veandco/go-sdl2/sdl"
)

const bufferSize = 4096

// SDL plays samples through the default SDL2 audio device.
type SDL struct{}

// Play loops samples for d and blocks until the device has drained.
func (SDL) Play(samples welle.Samples, samplingRate int, d time.Duration) error {
	buf := Buffer(samples, samplingRate, d)
	if len(buf) == 0 {
		return nil
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.QuitSubSystem(sdl.INIT_AUDIO)

	audioDeviceID, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     int32(samplingRate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  bufferSize,
	}, nil, 0)
	if err != nil {
		return err
	}
	defer sdl.CloseAudioDevice(audioDeviceID)

	data := unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*4)
	if err := sdl.QueueAudio(audioDeviceID, data); err != nil {
		return err
	}

	sdl.PauseAudioDevice(audioDeviceID, false)
	for sdl.GetQueuedAudioSize(audioDeviceID) > 0 {
		sdl.Delay(10)
	}

	return nil
}
