package fixture

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// bufferStreamer adapts a rendered sample buffer to beep.Streamer so it can
// be fed straight into the WAV encoder.
type bufferStreamer struct {
	buf [][2]float64
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := copy(samples, b.buf[b.pos:])
	b.pos += n
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}

// WriteWAV quantizes a floating-point stereo buffer to 16-bit PCM and
// writes it as a WAV file. This is the only place samples leave the
// floating-point domain.
func WriteWAV(buf [][2]float64, sampleRate, channels int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: channels,
		Precision:   2, // 16-bit
	}
	if err := wav.Encode(f, &bufferStreamer{buf: buf}, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
