package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"elevatorsim/src/logger"
)

func TestMain(m *testing.M) {
	logger.GetLeveled(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	cfg := Config{
		Floors:      1,
		Elevators:   0,
		Capacity:    -2,
		Duration:    0,
		ArrivalProb: 1.5,
		Structures:  "rope",
	}
	cfg.validate()

	if cfg.Floors != DefaultFloors {
		t.Errorf("Expected floors clamped to %d, got %d", DefaultFloors, cfg.Floors)
	}
	if cfg.Elevators != DefaultElevators {
		t.Errorf("Expected elevators clamped to %d, got %d", DefaultElevators, cfg.Elevators)
	}
	if cfg.Capacity != DefaultCapacity {
		t.Errorf("Expected capacity clamped to %d, got %d", DefaultCapacity, cfg.Capacity)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("Expected duration clamped to %d, got %d", DefaultDuration, cfg.Duration)
	}
	if cfg.ArrivalProb != DefaultArrivalProb {
		t.Errorf("Expected arrival probability clamped to %v, got %v", DefaultArrivalProb, cfg.ArrivalProb)
	}
	if cfg.Structures != StructLinked {
		t.Errorf("Expected structures clamped to linked, got %s", cfg.Structures)
	}
}

func TestValidateKeepsInRangeValues(t *testing.T) {
	cfg := Config{
		Floors:      8,
		Elevators:   3,
		Capacity:    6,
		Duration:    100,
		ArrivalProb: 0.5,
		Structures:  StructArray,
	}
	cfg.validate()
	if cfg.Floors != 8 || cfg.Elevators != 3 || cfg.Capacity != 6 || cfg.Duration != 100 || cfg.ArrivalProb != 0.5 || cfg.Structures != StructArray {
		t.Errorf("Expected valid config untouched, got %+v", cfg)
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte("floors: 16\nelevators: 2\nelevatorCapacity: 8\nduration: 50\npassengers: 0.1\nstructures: array\nseed: 1234\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Floors != 16 || cfg.Elevators != 2 || cfg.Capacity != 8 || cfg.Duration != 50 {
		t.Errorf("Unexpected loaded config: %+v", cfg)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.Structures != StructArray {
		t.Errorf("Expected array structures, got %s", cfg.Structures)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected fallback without error, got %v", err)
	}
	if cfg.Floors != DefaultFloors || cfg.Duration != DefaultDuration {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("floors: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a malformed config file")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Default()
	cfg.applyEnv(map[string]string{
		"SIM_FLOORS":     "20",
		"SIM_ELEVATORS":  "4",
		"SIM_PASSENGERS": "0.2",
		"SIM_SEED":       "77",
		"SIM_DURATION":   "not-a-number", // ignored
	})

	if cfg.Floors != 20 || cfg.Elevators != 4 {
		t.Errorf("Expected env overrides applied, got %+v", cfg)
	}
	if cfg.ArrivalProb != 0.2 {
		t.Errorf("Expected arrival probability 0.2, got %v", cfg.ArrivalProb)
	}
	if cfg.Seed != 77 {
		t.Errorf("Expected seed 77, got %d", cfg.Seed)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("Expected unparseable duration ignored, got %d", cfg.Duration)
	}
}

func TestLevelParsesWithFallback(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", cfg.Level())
	}
	cfg.LogLevel = "nonsense"
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Expected fallback to info, got %v", cfg.Level())
	}
}
