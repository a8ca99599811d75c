// Package songs provides the built-in compositions used to generate test
// fixtures, plus a frequency-to-name mapping for ground-truth readability.
// All songs are defined as ordered (frequency, duration) note tables.
package songs

import "github.com/pianofix/pianofix/pkg/synth"

// Note frequencies (Hz), equal temperament. Only pitches referenced by the
// authored songs are listed.
const (
	E2  = 82.41
	A2  = 110.00
	C3  = 130.81
	E3  = 164.81
	G3  = 196.00
	Gs3 = 207.65 // G#3
	A3  = 220.00
	C4  = 261.63
	D4  = 293.66
	E4  = 329.63
	F4  = 349.23
	G4  = 392.00
	Gs4 = 415.30 // G#4
	A4  = 440.00
	B4  = 493.88
	C5  = 523.25
	D5  = 587.33
	Ds5 = 622.25 // D#5
	E5  = 659.25

	Rest = 0.0
)

// Note durations in seconds.
const (
	Sixteenth = 0.22
	Eighth    = 0.44
)

// N is a shorthand constructor for synth.Note.
func N(freq, dur float64) synth.Note {
	return synth.Note{Freq: freq, Dur: dur}
}

// Song is a named composition from the built-in catalog.
type Song struct {
	ID     string // Unique identifier, used in fixture filenames
	Name   string // Display name
	Tracks synth.Composition
}

// furElise is the Für Elise main theme.
var furElise = synth.Track{
	// Phrase 1
	N(E5, Sixteenth), N(Ds5, Sixteenth), N(E5, Sixteenth), N(Ds5, Sixteenth),
	N(E5, Sixteenth), N(B4, Sixteenth), N(D5, Sixteenth), N(C5, Sixteenth), N(A4, Eighth),
	N(C4, Sixteenth), N(E4, Sixteenth), N(A4, Sixteenth), N(B4, Eighth),
	N(E4, Sixteenth), N(Gs4, Sixteenth), N(B4, Sixteenth), N(C5, Eighth),
	N(E4, Sixteenth),
	// Phrase 1 repeat, variation at the end
	N(E5, Sixteenth), N(Ds5, Sixteenth), N(E5, Sixteenth), N(Ds5, Sixteenth),
	N(E5, Sixteenth), N(B4, Sixteenth), N(D5, Sixteenth), N(C5, Sixteenth), N(A4, Eighth),
	N(C4, Sixteenth), N(E4, Sixteenth), N(A4, Sixteenth), N(B4, Eighth),
	N(E4, Sixteenth), N(C5, Sixteenth), N(B4, Sixteenth), N(A4, Eighth),
}

// furEliseHarmony is the left-hand arpeggio line under the main theme.
var furEliseHarmony = synth.Track{
	// Intro
	N(Rest, 1.76),
	// Am arpeggio
	N(A2, Sixteenth), N(E3, Sixteenth), N(A3, 3*Sixteenth),
	// E major arpeggio
	N(E2, Sixteenth), N(E3, Sixteenth), N(Gs3, 3*Sixteenth),
	// Am arpeggio (turnaround)
	N(A2, Sixteenth), N(E3, Sixteenth), N(A3, 3*Sixteenth),
	// Repeat intro
	N(Rest, 1.76-3*Sixteenth),
	// Am arpeggio
	N(A2, Sixteenth), N(E3, Sixteenth), N(A3, 3*Sixteenth),
	// Ending phrase
	N(E2, Sixteenth), N(E3, Sixteenth), N(Gs3, 3*Sixteenth), N(A2, Eighth),
}

var odeToJoy = synth.Track{
	N(E4, Eighth), N(E4, Eighth), N(F4, Eighth), N(G4, Eighth),
	N(G4, Eighth), N(F4, Eighth), N(E4, Eighth), N(D4, Eighth),
	N(C4, Eighth), N(C4, Eighth), N(D4, Eighth), N(E4, Eighth),
	N(E4, 0.66), N(D4, 0.22), N(D4, 0.88),
}

var odeToJoyHarmony = synth.Track{
	N(C3, Eighth*4), N(G3, Eighth*4), N(C3, Eighth*4), N(G3, Eighth*4),
}

// All contains every built-in song, in fixture generation order.
var All = []Song{
	{ID: "fur_elise", Name: "Für Elise", Tracks: synth.Composition{furElise}},
	{ID: "ode_to_joy", Name: "Ode to Joy", Tracks: synth.Composition{odeToJoy}},
	{ID: "fur_elise_harmony", Name: "Für Elise (polyphonic)", Tracks: synth.Composition{furElise, furEliseHarmony}},
	{ID: "ode_to_joy_harmony", Name: "Ode to Joy (polyphonic)", Tracks: synth.Composition{odeToJoy, odeToJoyHarmony}},
}

// ByID returns the song with the given ID, or nil if not found.
func ByID(id string) *Song {
	for i := range All {
		if All[i].ID == id {
			return &All[i]
		}
	}
	return nil
}

// IDs returns all song IDs.
func IDs() []string {
	ids := make([]string, len(All))
	for i, s := range All {
		ids[i] = s.ID
	}
	return ids
}
