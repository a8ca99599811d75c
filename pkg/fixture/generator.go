package fixture

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pianofix/pianofix/pkg/synth"
	"github.com/pianofix/pianofix/pkg/synth/songs"
)

// Generator renders songs into WAV fixtures under OutDir and accumulates
// their ground-truth records.
type Generator struct {
	// OutDir is the directory all artifacts are written to. It must exist.
	OutDir string

	// Log receives per-artifact progress. Defaults to slog.Default().
	Log *slog.Logger
}

func (g *Generator) logger() *slog.Logger {
	if g.Log != nil {
		return g.Log
	}
	return slog.Default()
}

// Song renders all four variants of a song and returns their ground-truth
// records, in variant order. The first failed write aborts the song.
func (g *Generator) Song(song songs.Song) ([]Record, error) {
	variants := Variants(song.ID, song.Tracks)
	ideal := variants[0].Filename

	records := make([]Record, 0, len(variants))
	for _, v := range variants {
		buf := synth.NewMixer(v.Tracks, v.Tempo).Render()
		path := filepath.Join(g.OutDir, v.Filename)
		if err := WriteWAV(buf, synth.SampleRate, synth.Channels, path); err != nil {
			return nil, fmt.Errorf("song %s: %w", song.ID, err)
		}
		g.logger().Info("wrote clip",
			"song", song.ID,
			"file", v.Filename,
			"frames", len(buf),
			"tempo", v.Tempo)
		records = append(records, v.Record(ideal))
	}
	return records, nil
}
