// Package fixture turns compositions into test fixtures for pitch/tempo
// analyzers: each song is rendered as four deterministic WAV variants
// (original, fast, slow, missed notes) together with a ground-truth record
// describing the expected tempo and pitch accuracy of each clip.
//
// The aggregated ground truth for a run is written once, at the end, as a
// JSON manifest (see WriteManifest).
package fixture
