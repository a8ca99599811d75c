package fixture

import (
	"github.com/pianofix/pianofix/pkg/synth"
	"github.com/pianofix/pianofix/pkg/synth/songs"
)

// Tempo multipliers for the timing variants. The fast clip plays 15%
// quicker than the original, the slow clip 10% slower.
const (
	TempoFast = 1 / 1.15
	TempoSlow = 1 / 0.90
)

// Indices of the melody notes silenced by the missed-notes variant.
const (
	missedIdxA = 4
	missedIdxB = 11

	// minMissedTrackLen is the melody length required before any note is
	// silenced.
	minMissedTrackLen = 13
)

// Variant is one renderable transformation of a composition together with
// its expected analyzer scores.
type Variant struct {
	Filename      string
	Tempo         float64
	Tracks        synth.Composition
	TempoAccuracy float64
	PitchAccuracy float64
}

// Record builds the ground-truth record for the variant, naming ideal as
// the comparison target.
func (v Variant) Record(ideal string) Record {
	notes := make([][]NoteDesc, len(v.Tracks))
	for i, track := range v.Tracks {
		notes[i] = make([]NoteDesc, len(track))
		for j, n := range track {
			notes[i][j] = NoteDesc{
				Name:      songs.Name(n.Freq),
				Frequency: Fixed2(n.Freq),
				Duration:  Fixed3(n.Dur * v.Tempo),
			}
		}
	}
	return Record{
		Filename:      v.Filename,
		IdealFilename: ideal,
		TempoAccuracy: Fixed2(v.TempoAccuracy),
		PitchAccuracy: Fixed2(v.PitchAccuracy),
		Notes:         notes,
	}
}

// Variants expands a composition into its four fixture variants. Every
// variant owns an independent copy of the tracks, so renders never share
// state.
func Variants(baseName string, tracks synth.Composition) []Variant {
	variants := []Variant{
		{
			Filename:      baseName + ".wav",
			Tempo:         1.0,
			Tracks:        tracks.Clone(),
			TempoAccuracy: 1.0,
			PitchAccuracy: 1.0,
		},
		{
			Filename:      baseName + "_fast.wav",
			Tempo:         TempoFast,
			Tracks:        tracks.Clone(),
			TempoAccuracy: 0.85,
			PitchAccuracy: 1.0,
		},
		{
			Filename:      baseName + "_slow.wav",
			Tempo:         TempoSlow,
			Tracks:        tracks.Clone(),
			TempoAccuracy: 0.90,
			PitchAccuracy: 1.0,
		},
	}

	if len(tracks) > 0 {
		missed, missedCount := missNotes(tracks)
		variants = append(variants, Variant{
			Filename:      baseName + "_missed_notes.wav",
			Tempo:         1.0,
			Tracks:        missed,
			TempoAccuracy: 1.0,
			PitchAccuracy: pitchAccuracy(tracks.Playable(), missedCount),
		})
	}

	return variants
}

// missNotes silences the melody notes at the fixed miss indices, skipping
// any that are already rests or out of range. It returns the mutated copy
// and the number of mutations actually applied.
func missNotes(tracks synth.Composition) (synth.Composition, int) {
	out := tracks.Clone()
	missed := 0
	melody := out[0]
	if len(melody) >= minMissedTrackLen {
		for _, idx := range []int{missedIdxA, missedIdxB} {
			if idx < len(melody) && !melody[idx].Rest() {
				melody[idx].Freq = 0
				missed++
			}
		}
	}
	return out, missed
}

// pitchAccuracy is the share of playable notes an ideal analyzer should
// still recognize. A composition with no playable notes is fully correct:
// nothing could be missed.
func pitchAccuracy(playable, missed int) float64 {
	if playable == 0 {
		return 1.0
	}
	return float64(playable-missed) / float64(playable)
}
