package synth

import (
	"testing"
)

func TestMixerRenderLength(t *testing.T) {
	c := Composition{
		{{Freq: 440, Dur: 0.5}},
		{{Freq: 220, Dur: 0.25}, {Freq: 0, Dur: 0.5}},
	}

	// 0.25 and 0.5 are exact in binary, so the expectation is exact too:
	// longest track is 0.75s plus the one second tail.
	m := NewMixer(c, 1.0)
	if want := int(SampleRate * 1.75); m.Frames() != want {
		t.Errorf("Frames() = %d, want %d", m.Frames(), want)
	}
	if buf := m.Render(); len(buf) != m.Frames() {
		t.Errorf("len(Render()) = %d, want %d", len(buf), m.Frames())
	}

	// Scaled tempos size the buffer from the scaled duration.
	slow := NewMixer(c, 1/0.90)
	if want := int(SampleRate * (c.MaxScaledDuration(1/0.90) + 1.0)); slow.Frames() != want {
		t.Errorf("slow Frames() = %d, want %d", slow.Frames(), want)
	}
	if slow.Frames() <= m.Frames() {
		t.Errorf("slow render (%d frames) not longer than original (%d)", slow.Frames(), m.Frames())
	}
}

func TestMixerSumsAndPansCenter(t *testing.T) {
	t1 := Track{{Freq: 440, Dur: 0.1}}
	t2 := Track{{Freq: 220, Dur: 0.1}}

	m := NewMixer(Composition{t1, t2}, 1.0)
	v1 := NewVoice(t1, 1.0)
	v2 := NewVoice(t2, 1.0)

	for i := 0; i < 4800; i++ {
		frame := m.Step()
		want := (v1.Advance() + v2.Advance()) * centerPan
		if frame[0] != want || frame[1] != want {
			t.Fatalf("frame %d = %v, want both channels %v", i, frame, want)
		}
	}
}

func TestMixerDeterministic(t *testing.T) {
	c := Composition{
		{{Freq: 659.25, Dur: 0.22}, {Freq: 622.25, Dur: 0.22}},
		{{Freq: 110, Dur: 0.44}},
	}

	a := NewMixer(c, 1.0).Render()
	b := NewMixer(c, 1.0).Render()
	if len(a) != len(b) {
		t.Fatalf("render lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("renders diverge at frame %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCompositionPlayable(t *testing.T) {
	c := Composition{
		{{Freq: 440, Dur: 0.1}, {Freq: 0, Dur: 0.1}, {Freq: 220, Dur: 0.1}},
		{{Freq: 0, Dur: 0.5}},
	}
	if got := c.Playable(); got != 2 {
		t.Errorf("Playable() = %d, want 2", got)
	}
}

func TestCompositionCloneIndependent(t *testing.T) {
	c := Composition{{{Freq: 440, Dur: 0.1}}}
	clone := c.Clone()
	clone[0][0].Freq = 0
	if c[0][0].Freq != 440 {
		t.Error("mutating a clone changed the original composition")
	}
	if clone[0][0].Freq != 0 {
		t.Error("clone mutation lost")
	}
}
