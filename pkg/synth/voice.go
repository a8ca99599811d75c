package synth

import "math"

// NumHarmonics is the size of the oscillator bank driving each voice.
const NumHarmonics = 10

// harmonicGains holds the relative volume of the first ten harmonics of a
// sampled piano note. The table is not monotonic; it must stay exactly as
// authored or the timbre drifts from the reference clips.
var harmonicGains = [NumHarmonics]float64{
	0.700, 0.243, 0.229, 0.095, 0.139, 0.087, 0.288, 0.199, 0.124, 0.090,
}

const (
	attackTime = 0.01 // seconds of linear attack ramp
	decayRate  = 3.0  // exponential decay constant after the attack
	outputGain = 0.25 // keeps a ten-harmonic sum well inside [-1, 1]
)

// oscillator is a single phase-accumulator sine oscillator.
// The zero value starts at zero phase.
type oscillator struct {
	phase float64
}

// step emits the current sample and advances the phase by one step of the
// given frequency. Phase stays in [0, 1) to avoid precision loss on long
// notes.
func (o *oscillator) step(freq float64) float64 {
	v := math.Sin(2 * math.Pi * o.phase)
	o.phase += freq / SampleRate
	o.phase -= math.Floor(o.phase)
	return v
}

// Voice synthesizes a single track one sample at a time. Advance must be
// called exactly once per output sample, strictly in order.
type Voice struct {
	oscs    [NumHarmonics]oscillator
	counter int
	noteIdx int
	track   Track
	tempo   float64
}

// NewVoice creates a voice over an independent copy of track. All note
// durations are scaled by the tempo multiplier.
func NewVoice(track Track, tempo float64) *Voice {
	return &Voice{
		noteIdx: -1,
		track:   track.Clone(),
		tempo:   tempo,
	}
}

// Advance resolves the active note for the current sample counter and
// returns its amplitude. Samples past the end of the track are silence.
//
// The active note is found by rescanning the track from the start and
// rounding each cumulative boundary independently, which keeps note spans
// contiguous regardless of how durations accumulate in floating point.
func (v *Voice) Advance() float64 {
	var (
		cursor  float64
		active  Note
		elapsed float64
		found   bool
		idx     int
	)
	for i, n := range v.track {
		dur := n.Dur * v.tempo
		start := int(math.Round(cursor * SampleRate))
		end := int(math.Round((cursor + dur) * SampleRate))
		if v.counter >= start && v.counter < end {
			active = n
			// Derive elapsed time from the sample offset, not from the
			// float cursor, so the envelope is jitter-free.
			elapsed = float64(v.counter-start) / SampleRate
			found = true
			idx = i
			break
		}
		cursor += dur
	}

	v.counter++

	if !found {
		return 0
	}

	// Fresh attack on every note change: reset the whole bank to zero
	// phase. This happens for rests too, so the note after a rest still
	// starts from a clean phase.
	if idx != v.noteIdx {
		v.noteIdx = idx
		v.oscs = [NumHarmonics]oscillator{}
	}

	if active.Rest() {
		return 0
	}

	var mixed float64
	for k := range v.oscs {
		mixed += v.oscs[k].step(active.Freq*float64(k+1)) * harmonicGains[k]
	}

	return mixed * envelope(elapsed) * outputGain
}

// envelope shapes a percussive piano hit: a linear ramp to full volume over
// the first 10ms, then exponential decay.
func envelope(elapsed float64) float64 {
	if elapsed < attackTime {
		return elapsed / attackTime
	}
	return math.Exp(-decayRate * (elapsed - attackTime))
}
