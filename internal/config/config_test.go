package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// implicit config locations do not leak in from the machine running the tests.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeBreakout(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded config should parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded config differs from hardcoded defaults:\n got  %+v\n want %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Paddle.WidenFrames != 600 {
		t.Errorf("expected embedded defaults, got lives=%d widen=%d", cfg.Gameplay.Lives, cfg.Paddle.WidenFrames)
	}
}

func TestLoadBreakoutSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "breakout.yaml"), "gameplay:\n  lives: 7\n")
	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("local config should be used, lives = %d", cfg.Gameplay.Lives)
	}

	writeFile(t, filepath.Join(home, ".breaker", "configs", "breakout.yaml"), "gameplay:\n  lives: 9\n")
	cfg, err = LoadBreakout("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config should win over local config, lives = %d", cfg.Gameplay.Lives)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "gameplay:\n  lives: 1\n")
	cfg, err = LoadBreakout(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 1 {
		t.Errorf("custom path should win, lives = %d", cfg.Gameplay.Lives)
	}
}

func TestLoadBreakoutPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, custom, "ball:\n  speed: 4.5\n")

	cfg, err := LoadBreakout(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ball.Speed != 4.5 {
		t.Errorf("ball speed = %g, expected 4.5", cfg.Ball.Speed)
	}
	if cfg.Ball.Size != 8 || cfg.Playfield.Width != 240 {
		t.Errorf("unset keys should keep defaults, got size=%g width=%g", cfg.Ball.Size, cfg.Playfield.Width)
	}
}

func TestLoadBreakoutSkipsBrokenImplicitFiles(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", "breakout.yaml"), "gameplay: [not, a, map\n")

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("broken implicit file should be skipped, got %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("expected embedded defaults, lives = %d", cfg.Gameplay.Lives)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "playfield: {width: [1]}\n")
	if _, err := LoadBreakout(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("malformed custom file should report a parse error, got %v", err)
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "gameplay:\n  lives: 0\nlayout:\n  min_rows: 4\n  max_rows: 2\n")
	_, err := LoadBreakout(invalid)
	if err == nil {
		t.Fatal("invalid values should be rejected")
	}
	for _, want := range []string{"lives", "min_rows"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || !cfg.Difficulty.Enabled {
		t.Errorf("easy preset: lives=%d enabled=%v", cfg.Gameplay.Lives, cfg.Difficulty.Enabled)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Difficulty.InitialLevel != 0.5 {
		t.Errorf("hard preset: lives=%d initial=%g", cfg.Gameplay.Lives, cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DefaultBreakoutConfig().Difficulty)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 0.0},
		{4, 1.0 / 3.0},
		{10, 1.0},
		{15, 1.0}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.level, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.level, got, tc.expected)
		}
	}
}

func TestDifficultyInitialLevelAndDisabled(t *testing.T) {
	cfg := DefaultBreakoutConfig().Difficulty
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(1, 0); got != 0.5 {
		t.Errorf("Level(1) = %f, expected initial 0.5", got)
	}
	if got := d.Level(10, 0); got != 1.0 {
		t.Errorf("Level(10) = %f, expected 1.0", got)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(10, 0); got != 0.5 {
		t.Errorf("disabled manager should stay at initial level, got %f", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Level(1, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at half time = %f, expected 0.5", got)
	}
	if got := d.Speed(3, 1, 600); math.Abs(got-6) > 1e-9 {
		t.Errorf("Speed at max difficulty = %f, expected 6", got)
	}
}

func TestDifficultySpeedDefaultIsConstant(t *testing.T) {
	d := NewDifficultyManager(DefaultBreakoutConfig().Difficulty)
	for level := 1; level <= 10; level++ {
		if got := d.Speed(3, level, 0); got != 3 {
			t.Errorf("Speed(level %d) = %f, expected the base speed", level, got)
		}
	}
}

func TestDifficultySturdiness(t *testing.T) {
	d := NewDifficultyManager(DefaultBreakoutConfig().Difficulty)
	if got := d.Sturdiness(1); got != 0 {
		t.Errorf("Sturdiness(1) = %f, expected 0", got)
	}
	if got := d.Sturdiness(10); got != 1 {
		t.Errorf("Sturdiness(10) = %f, expected 1", got)
	}
}

func TestWriteYAMLLoadsBack(t *testing.T) {
	isolate(t)
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}
	got, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if got != cfg {
		t.Errorf("dumped config did not load back:\n got  %+v\n want %+v", got, cfg)
	}
}

func TestWriteYAMLBadPath(t *testing.T) {
	err := DefaultBreakoutConfig().WriteYAML(filepath.Join(t.TempDir(), "missing", "dump.yaml"))
	if err == nil || !strings.Contains(err.Error(), "writing config file") {
		t.Errorf("expected a write error, got %v", err)
	}
}
