package gbase

import "testing"

func TestPaletteFromString(t *testing.T) {
	if PaletteFromString("dark") != DarkPalette {
		t.Errorf("dark palette not selected")
	}
	for _, name := range []string{"light", "", "neon"} {
		if PaletteFromString(name) != LightPalette {
			t.Errorf("PaletteFromString(%q) is not the light palette", name)
		}
	}
}

func TestRingLifetime(t *testing.T) {
	r := Ring{}
	if r.Done() || r.Progress() != 0 {
		t.Fatalf("fresh ring: done=%v progress=%v", r.Done(), r.Progress())
	}
	r.Age = RingTicks / 2
	if got := r.Progress(); got != 0.5 {
		t.Errorf("Progress at half life = %v; want 0.5", got)
	}
	r.Age = RingTicks + 5
	if !r.Done() || r.Progress() != 1 {
		t.Errorf("expired ring: done=%v progress=%v", r.Done(), r.Progress())
	}
}
