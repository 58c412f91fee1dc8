package gconf

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	w, err := NewGUIConfigWorker(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("NewGUIConfigWorker: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), w.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCorrectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	body := `{"theme":"neon","window_w":100,"window_h":100,"pitch":-3,"sound":false,"debug":true}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewGUIConfigWorker(path)
	if err != nil {
		t.Fatalf("NewGUIConfigWorker: %v", err)
	}
	want := DefaultConfig()
	want.Sound = false
	want.Debug = true
	if diff := cmp.Diff(want, w.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	w, err := NewGUIConfigWorker(path)
	if err != nil {
		t.Fatal(err)
	}
	w.Config.Theme = "dark"
	w.Config.Pitch = 2.5
	w.Config.WindowW = 1000
	if err := w.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := NewGUIConfigWorker(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := cmp.Diff(w.Config, again.Config); diff != "" {
		t.Errorf("reloaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfigWorker(path); err == nil {
		t.Errorf("broken JSON accepted")
	}
}

func TestDirectoryRejected(t *testing.T) {
	if _, err := NewGUIConfigWorker(t.TempDir()); err == nil {
		t.Errorf("directory accepted as config")
	}
}

func TestCorrectNonFinitePitch(t *testing.T) {
	for _, pitch := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0} {
		c := DefaultConfig()
		c.Pitch = pitch
		correctableConfig(&c)
		if c.Pitch != DefaultConfig().Pitch {
			t.Errorf("pitch %v corrected to %v", pitch, c.Pitch)
		}
	}
}
