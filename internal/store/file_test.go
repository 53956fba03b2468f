package store

import (
	"os"
	"path/filepath"
	"testing"

	"oceanhunter/internal/config"
	"oceanhunter/internal/sim"
)

var _ sim.ScalarStore = (*File)(nil)

func TestMissingFileReadsZero(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "none.json"))
	v, err := f.Get(config.HighScoreKey)
	if err != nil || v != 0 {
		t.Fatalf("got %g, %v", v, err)
	}
}

func TestSetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	f := NewFile(path)
	if err := f.Set(config.HighScoreKey, 420); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := f.Set("other", 3); err != nil {
		t.Fatalf("set other: %v", err)
	}

	again := NewFile(path)
	if v, err := again.Get(config.HighScoreKey); err != nil || v != 420 {
		t.Fatalf("reopened high score: %g, %v", v, err)
	}
	if v, _ := again.Get("other"); v != 3 {
		t.Fatalf("second key lost: %g", v)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := NewFile(path)
	if _, err := f.Get(config.HighScoreKey); err == nil {
		t.Fatalf("expected decode error")
	}
	if err := f.Set(config.HighScoreKey, 1); err == nil {
		t.Fatalf("set must not clobber an unreadable file")
	}
}

func TestNullFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "null.json")
	if err := os.WriteFile(path, []byte("null"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := NewFile(path)
	if v, err := f.Get(config.HighScoreKey); err != nil || v != 0 {
		t.Fatalf("null file: %g, %v", v, err)
	}
	if err := f.Set(config.HighScoreKey, 5); err != nil {
		t.Fatalf("set over null: %v", err)
	}
	if v, _ := NewFile(path).Get(config.HighScoreKey); v != 5 {
		t.Fatalf("high score=%g want 5", v)
	}
}

func TestGameKeepsHighScoreAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	cfg := config.Default()
	cfg.Seed = 3

	g, err := sim.New(cfg, sim.WithStore(NewFile(path)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if g.Stats().HighScore != 0 {
		t.Fatalf("fresh store should start at 0")
	}
	if err := NewFile(path).Set(config.HighScoreKey, 250); err != nil {
		t.Fatal(err)
	}
	g2, err := sim.New(cfg, sim.WithStore(NewFile(path)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if g2.Stats().HighScore != 250 {
		t.Fatalf("high score=%d want 250", g2.Stats().HighScore)
	}
}
