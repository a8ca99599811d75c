package synth

import "math"

const (
	// SampleRate is the fixed synthesis sample rate in Hz.
	SampleRate = 48000

	// Channels is the number of output channels.
	Channels = 2
)

// Note is a single musical event: a fundamental frequency and a duration.
// A frequency of zero (or below) denotes a rest.
type Note struct {
	Freq float64 // Frequency in Hz (0 for a rest)
	Dur  float64 // Duration in seconds
}

// Rest reports whether the note is silence.
func (n Note) Rest() bool {
	return n.Freq <= 0
}

// Track is an ordered sequence of notes played back to back.
// Insertion order is playback order.
type Track []Note

// Clone returns an independent copy of the track.
func (t Track) Clone() Track {
	out := make(Track, len(t))
	copy(out, t)
	return out
}

// ScaledDuration returns the total duration of the track in seconds with
// every note duration multiplied by tempo.
func (t Track) ScaledDuration(tempo float64) float64 {
	var total float64
	for _, n := range t {
		total += n.Dur * tempo
	}
	return total
}

// SampleSpan returns the [start, end) sample range of note i at the given
// tempo multiplier. Each boundary is rounded independently from the
// accumulated time cursor, so adjacent spans are always contiguous: the end
// of note i equals the start of note i+1.
func (t Track) SampleSpan(i int, tempo float64) (start, end int) {
	var cursor float64
	for j := 0; j < i; j++ {
		cursor += t[j].Dur * tempo
	}
	start = int(math.Round(cursor * SampleRate))
	end = int(math.Round((cursor + t[i].Dur*tempo) * SampleRate))
	return start, end
}

// Composition is a set of tracks played concurrently, one voice per track.
// Tracks are independent and may have different total durations.
type Composition []Track

// Clone returns a deep copy of the composition.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for i, t := range c {
		out[i] = t.Clone()
	}
	return out
}

// MaxScaledDuration returns the duration in seconds of the longest track at
// the given tempo multiplier.
func (c Composition) MaxScaledDuration(tempo float64) float64 {
	var maxDur float64
	for _, t := range c {
		if d := t.ScaledDuration(tempo); d > maxDur {
			maxDur = d
		}
	}
	return maxDur
}

// Playable returns the number of non-rest notes across all tracks.
func (c Composition) Playable() int {
	count := 0
	for _, t := range c {
		for _, n := range t {
			if !n.Rest() {
				count++
			}
		}
	}
	return count
}
