package fixture

import (
	"math"
	"testing"

	"github.com/pianofix/pianofix/pkg/synth"
	"github.com/pianofix/pianofix/pkg/synth/songs"
)

// melody13 has 13 notes, all playable.
func melody13() synth.Track {
	t := make(synth.Track, 13)
	for i := range t {
		t[i] = synth.Note{Freq: 440, Dur: 0.22}
	}
	return t
}

func TestVariantsTable(t *testing.T) {
	tracks := synth.Composition{melody13()}
	variants := Variants("demo", tracks)

	if len(variants) != 4 {
		t.Fatalf("got %d variants, want 4", len(variants))
	}

	tests := []struct {
		filename string
		tempo    float64
		tempoAcc float64
		pitchAcc float64
	}{
		{"demo.wav", 1.0, 1.0, 1.0},
		{"demo_fast.wav", 1 / 1.15, 0.85, 1.0},
		{"demo_slow.wav", 1 / 0.90, 0.90, 1.0},
		{"demo_missed_notes.wav", 1.0, 1.0, 11.0 / 13.0},
	}

	for i, tt := range tests {
		v := variants[i]
		if v.Filename != tt.filename {
			t.Errorf("variant %d: filename %q, want %q", i, v.Filename, tt.filename)
		}
		if v.Tempo != tt.tempo {
			t.Errorf("variant %d: tempo %v, want %v", i, v.Tempo, tt.tempo)
		}
		if v.TempoAccuracy != tt.tempoAcc {
			t.Errorf("variant %d: tempo accuracy %v, want %v", i, v.TempoAccuracy, tt.tempoAcc)
		}
		if math.Abs(v.PitchAccuracy-tt.pitchAcc) > 1e-12 {
			t.Errorf("variant %d: pitch accuracy %v, want %v", i, v.PitchAccuracy, tt.pitchAcc)
		}
	}
}

func TestVariantsMissedNotesMutation(t *testing.T) {
	tracks := synth.Composition{melody13()}
	variants := Variants("demo", tracks)
	missed := variants[3]

	for i, n := range missed.Tracks[0] {
		wantRest := i == 4 || i == 11
		if n.Rest() != wantRest {
			t.Errorf("note %d: rest = %v, want %v", i, n.Rest(), wantRest)
		}
	}

	// The source composition is untouched.
	for i, n := range tracks[0] {
		if n.Rest() {
			t.Errorf("original note %d was mutated", i)
		}
	}
}

func TestVariantsMissedNotesSkipsShortTrack(t *testing.T) {
	short := synth.Composition{melody13()[:12]}
	variants := Variants("short", short)

	missed := variants[3]
	for i, n := range missed.Tracks[0] {
		if n.Rest() {
			t.Errorf("note %d zeroed on a 12-note track", i)
		}
	}
	if missed.PitchAccuracy != 1.0 {
		t.Errorf("pitch accuracy = %v, want 1.0 when no mutation applies", missed.PitchAccuracy)
	}
}

func TestVariantsMissedNotesSkipsRests(t *testing.T) {
	melody := melody13()
	melody[4].Freq = 0 // already a rest: only index 11 can be missed
	tracks := synth.Composition{melody}

	variants := Variants("rests", tracks)
	missed := variants[3]

	// 12 playable notes before mutation, one actually missed.
	want := 11.0 / 12.0
	if math.Abs(missed.PitchAccuracy-want) > 1e-12 {
		t.Errorf("pitch accuracy = %v, want %v", missed.PitchAccuracy, want)
	}
}

func TestVariantsPlayableCountSpansAllTracks(t *testing.T) {
	harmony := synth.Track{
		{Freq: 110, Dur: 0.44},
		{Freq: 0, Dur: 0.44},
		{Freq: 165, Dur: 0.44},
	}
	tracks := synth.Composition{melody13(), harmony}

	variants := Variants("poly", tracks)
	missed := variants[3]

	// 13 melody + 2 playable harmony notes, 2 missed.
	want := 13.0 / 15.0
	if math.Abs(missed.PitchAccuracy-want) > 1e-12 {
		t.Errorf("pitch accuracy = %v, want %v", missed.PitchAccuracy, want)
	}
}

func TestVariantsZeroPlayable(t *testing.T) {
	silent := synth.Composition{{
		{Freq: 0, Dur: 0.5},
		{Freq: 0, Dur: 0.5},
	}}

	variants := Variants("silent", silent)
	if got := variants[3].PitchAccuracy; got != 1.0 {
		t.Errorf("pitch accuracy for all-rest composition = %v, want 1.0", got)
	}
}

func TestRecordScaledDurationsAndNames(t *testing.T) {
	tracks := synth.Composition{{
		{Freq: songs.A4, Dur: 0.5},
		{Freq: 0, Dur: 0.25},
	}}
	variants := Variants("scale", tracks)

	rec := variants[1].Record("scale.wav") // fast
	if rec.IdealFilename != "scale.wav" {
		t.Errorf("ideal filename = %q", rec.IdealFilename)
	}
	if len(rec.Notes) != 1 || len(rec.Notes[0]) != 2 {
		t.Fatalf("unexpected notes shape: %v", rec.Notes)
	}

	first := rec.Notes[0][0]
	if first.Name != "A4" {
		t.Errorf("note name = %q, want A4", first.Name)
	}
	if want := Fixed3(0.5 / 1.15); math.Abs(float64(first.Duration-want)) > 1e-12 {
		t.Errorf("scaled duration = %v, want %v", first.Duration, want)
	}

	second := rec.Notes[0][1]
	if second.Name != "Rest" {
		t.Errorf("rest name = %q, want Rest", second.Name)
	}
}

func TestVariantsOnRealSongs(t *testing.T) {
	// The authored Für Elise melody satisfies the missed-notes
	// preconditions: 35 notes, indices 4 and 11 playable.
	song := songs.ByID("fur_elise")
	if song == nil {
		t.Fatal("fur_elise not in catalog")
	}

	variants := Variants(song.ID, song.Tracks)
	missed := variants[3]

	playable := song.Tracks.Playable()
	want := float64(playable-2) / float64(playable)
	if math.Abs(missed.PitchAccuracy-want) > 1e-12 {
		t.Errorf("pitch accuracy = %v, want %v", missed.PitchAccuracy, want)
	}
	if !missed.Tracks[0][4].Rest() || !missed.Tracks[0][11].Rest() {
		t.Error("melody notes 4 and 11 were not silenced")
	}
}
