package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ManifestName is the fixed filename of the aggregated ground-truth
// manifest, relative to the output directory.
const ManifestName = "available_tests.json"

// Fixed2 is a float64 that marshals to JSON with exactly two decimals.
// Accuracy scores and frequencies use it so the manifest is stable across
// runs and trivially diffable.
type Fixed2 float64

// MarshalJSON implements json.Marshaler.
func (f Fixed2) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(f), 'f', 2, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Fixed2) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Fixed2(v)
	return nil
}

// Fixed3 is a float64 that marshals to JSON with exactly three decimals.
// Note durations use it.
type Fixed3 float64

// MarshalJSON implements json.Marshaler.
func (f Fixed3) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(f), 'f', 3, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Fixed3) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Fixed3(v)
	return nil
}

// NoteDesc describes one note of one track as the analyzer should hear it:
// display name, fundamental frequency, and tempo-scaled duration.
type NoteDesc struct {
	Name      string `json:"name"`
	Frequency Fixed2 `json:"frequency"`
	Duration  Fixed3 `json:"duration"`
}

// Record is the ground truth for a single generated clip.
type Record struct {
	// Filename of the clip, relative to the output directory.
	Filename string `json:"filename"`

	// IdealFilename names the original (unmodified) variant this clip
	// should be compared against. The original references itself.
	IdealFilename string `json:"ideal_filename"`

	// Expected accuracy scores in [0, 1] for an ideal analyzer.
	TempoAccuracy Fixed2 `json:"expected_tempo_accuracy"`
	PitchAccuracy Fixed2 `json:"expected_pitch_accuracy"`

	// Notes holds one ordered note list per track, reflecting the
	// variant's actual scaled durations and possibly zeroed frequencies.
	Notes [][]NoteDesc `json:"notes"`
}

// WriteManifest writes the aggregated ground-truth manifest for a run.
func WriteManifest(records []Record, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
