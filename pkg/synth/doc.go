// Package synth implements deterministic additive-harmonic piano synthesis.
//
// The package is built around three types:
//
//   - Track: an ordered sequence of (frequency, duration) notes
//   - Voice: a single-track synthesizer advanced one sample at a time
//   - Mixer: one Voice per track, summed and panned to two channels
//
// Synthesis is fully synchronous and sample-accurate: a Voice resolves the
// active note from an absolute sample counter, so the same inputs always
// produce bit-identical output buffers.
//
// Example usage:
//
//	mix := synth.NewMixer(synth.Composition{track}, 1.0)
//	buf := mix.Render()
package synth
