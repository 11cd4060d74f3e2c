package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"elevatorsim/src/logger"
)

// Defaults applied when a parameter is missing or out of range.
const (
	DefaultFloors      = 32
	DefaultElevators   = 1
	DefaultCapacity    = 10
	DefaultDuration    = 500
	DefaultArrivalProb = 0.03
)

// Structures selects the queue backend used by floors. It has no observable
// effect on simulation results.
type Structures string

const (
	StructLinked Structures = "linked"
	StructArray  Structures = "array"
)

type Config struct {
	Floors      int        `yaml:"floors"`
	Elevators   int        `yaml:"elevators"`
	Capacity    int        `yaml:"elevatorCapacity"`
	Duration    int        `yaml:"duration"`
	ArrivalProb float64    `yaml:"passengers"`
	Structures  Structures `yaml:"structures"`
	Seed        int64      `yaml:"seed"`
	LogLevel    string     `yaml:"logLevel"`
}

func Default() Config {
	return Config{
		Floors:      DefaultFloors,
		Elevators:   DefaultElevators,
		Capacity:    DefaultCapacity,
		Duration:    DefaultDuration,
		ArrivalProb: DefaultArrivalProb,
		Structures:  StructLinked,
		LogLevel:    "info",
	}
}

// Load reads the config file at path, applies .env overrides and clamps
// out-of-range values to their defaults. A missing or unreadable file falls
// back to defaults; only a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Get().Warn().Err(err).Str("path", path).Msg("Config file unreadable, using defaults")
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if env, err := godotenv.Read(); err == nil {
		cfg.applyEnv(env)
	}

	cfg.validate()
	return cfg, nil
}

// applyEnv overrides config fields from a .env map, deployment-style.
// Unparseable values are ignored with a warning.
func (c *Config) applyEnv(env map[string]string) {
	intVar := func(key string, dst *int) {
		raw, ok := env[key]
		if !ok {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			logger.Get().Warn().Str("key", key).Str("value", raw).Msg("Ignoring non-integer env override")
			return
		}
		*dst = v
	}

	intVar("SIM_FLOORS", &c.Floors)
	intVar("SIM_ELEVATORS", &c.Elevators)
	intVar("SIM_CAPACITY", &c.Capacity)
	intVar("SIM_DURATION", &c.Duration)

	if raw, ok := env["SIM_PASSENGERS"]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			c.ArrivalProb = v
		} else {
			logger.Get().Warn().Str("key", "SIM_PASSENGERS").Str("value", raw).Msg("Ignoring non-numeric env override")
		}
	}
	if raw, ok := env["SIM_SEED"]; ok {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			c.Seed = v
		}
	}
	if raw, ok := env["SIM_STRUCTURES"]; ok {
		c.Structures = Structures(raw)
	}
	if raw, ok := env["SIM_LOG_LEVEL"]; ok {
		c.LogLevel = raw
	}
}

// validate clamps each out-of-range parameter to its default. The core
// assumes parameters are valid and never re-checks them.
func (c *Config) validate() {
	clampInt := func(name string, dst *int, minValue, def int) {
		if *dst < minValue {
			logger.Get().Warn().Str("param", name).Int("value", *dst).Int("default", def).Msg("Out of range, using default")
			*dst = def
		}
	}

	clampInt("floors", &c.Floors, 2, DefaultFloors)
	clampInt("elevators", &c.Elevators, 1, DefaultElevators)
	clampInt("elevatorCapacity", &c.Capacity, 1, DefaultCapacity)
	clampInt("duration", &c.Duration, 1, DefaultDuration)

	if c.ArrivalProb <= 0 || c.ArrivalProb >= 1 {
		logger.Get().Warn().Float64("value", c.ArrivalProb).Float64("default", DefaultArrivalProb).Msg("Arrival probability out of range, using default")
		c.ArrivalProb = DefaultArrivalProb
	}
	if c.Structures != StructLinked && c.Structures != StructArray {
		c.Structures = StructLinked
	}
}

// Level parses the configured log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// LogEffective prints the parameters the simulation will actually run with.
func (c Config) LogEffective() {
	logger.Get().Info().
		Int("floors", c.Floors).
		Int("elevators", c.Elevators).
		Int("elevatorCapacity", c.Capacity).
		Int("duration", c.Duration).
		Float64("passengers", c.ArrivalProb).
		Str("structures", string(c.Structures)).
		Int64("seed", c.Seed).
		Msg("Effective configuration")
}
