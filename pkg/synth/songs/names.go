package songs

import (
	"fmt"
	"math"
)

// nameTolerance is the absolute frequency tolerance for matching a pitch to
// its name.
const nameTolerance = 0.1

// pitchNames maps the catalog's pitches to display labels, in ascending
// order. The first entry within tolerance wins.
var pitchNames = []struct {
	freq float64
	name string
}{
	{E2, "E2"},
	{A2, "A2"},
	{C3, "C3"},
	{E3, "E3"},
	{G3, "G3"},
	{Gs3, "G#3"},
	{A3, "A3"},
	{C4, "C4"},
	{D4, "D4"},
	{E4, "E4"},
	{F4, "F4"},
	{G4, "G4"},
	{Gs4, "G#4"},
	{A4, "A4"},
	{B4, "B4"},
	{C5, "C5"},
	{D5, "D5"},
	{Ds5, "D#5"},
	{E5, "E5"},
}

// Name returns the display label for a frequency. Frequencies below 1 Hz
// are rests; frequencies not in the catalog are formatted in Hz.
func Name(freq float64) string {
	if freq < 1 {
		return "Rest"
	}
	for _, p := range pitchNames {
		if math.Abs(freq-p.freq) < nameTolerance {
			return p.name
		}
	}
	return fmt.Sprintf("%.2f Hz", freq)
}
