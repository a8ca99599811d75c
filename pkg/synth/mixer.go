package synth

import "math"

// centerPan is the per-channel gain of an equal-power center pan.
const centerPan = math.Sqrt2 / 2

// tailSeconds of silence appended after the last note so the final decay
// is captured in full.
const tailSeconds = 1.0

// Mixer drives one Voice per track of a composition and folds their
// outputs into stereo frames.
type Mixer struct {
	voices []*Voice
	frames int
}

// NewMixer creates a mixer with a fresh voice per track, all scaled by the
// same tempo multiplier. The output length is fixed at construction time:
// the longest scaled track plus a one second decay tail.
func NewMixer(c Composition, tempo float64) *Mixer {
	voices := make([]*Voice, len(c))
	for i, t := range c {
		voices[i] = NewVoice(t, tempo)
	}
	return &Mixer{
		voices: voices,
		frames: int(SampleRate * (c.MaxScaledDuration(tempo) + tailSeconds)),
	}
}

// Frames returns the number of stereo frames Render will produce.
func (m *Mixer) Frames() int {
	return m.frames
}

// Step advances every voice exactly once, in track declaration order, and
// returns the summed output panned to center. Summation is commutative but
// the fixed order keeps renders reproducible.
func (m *Mixer) Step() [2]float64 {
	var mixed float64
	for _, v := range m.voices {
		mixed += v.Advance()
	}
	return [2]float64{mixed * centerPan, mixed * centerPan}
}

// Render synthesizes the whole composition into a pre-sized stereo buffer.
func (m *Mixer) Render() [][2]float64 {
	buf := make([][2]float64, m.frames)
	for i := range buf {
		buf[i] = m.Step()
	}
	return buf
}
