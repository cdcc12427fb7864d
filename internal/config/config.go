package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the game reads,
// e.g. MERRYMATH_ROUND_SIZE.
const EnvPrefix = "MERRYMATH"

// MaxRoundSize is the largest round a mixed challenge can serve without
// repeating a pair.
const MaxRoundSize = 132

// InMemoryDSN keeps the round log for the lifetime of the process only.
const InMemoryDSN = "file:merrymath?mode=memory&cache=shared"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	RoundSize     int           `mapstructure:"round_size" yaml:"round_size"`         // questions per round
	FeedbackDelay time.Duration `mapstructure:"feedback_delay" yaml:"feedback_delay"` // pause after each answer
	Seed          uint64        `mapstructure:"seed" yaml:"seed"`                     // RNG seed, 0 for time-based
	LogFile       string        `mapstructure:"log_file" yaml:"log_file"`             // debug log path, empty disables logging
	DBDSN         string        `mapstructure:"db_dsn" yaml:"db_dsn"`                 // round log database
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		RoundSize:     20,
		FeedbackDelay: 1500 * time.Millisecond,
		DBDSN:         InMemoryDSN,
	}
}

// Validate checks that the configuration can drive a round.
func (c Config) Validate() error {
	if c.RoundSize < 1 || c.RoundSize > MaxRoundSize {
		return fmt.Errorf("%w: round_size %d outside 1..%d", ErrInvalidConfig, c.RoundSize, MaxRoundSize)
	}
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("%w: feedback_delay %s is negative", ErrInvalidConfig, c.FeedbackDelay)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("%w: db_dsn is empty", ErrInvalidConfig)
	}
	return nil
}

// Load reads configuration from an optional YAML file and the environment.
// A .env file in the working directory is loaded first when present. An
// empty path looks for merrymath.yaml in the working directory.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("merrymath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	def := DefaultConfig()
	v.SetDefault("round_size", def.RoundSize)
	v.SetDefault("feedback_delay", def.FeedbackDelay.String())
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("db_dsn", def.DBDSN)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MarshalYAML writes FeedbackDelay in duration notation ("1.5s") so the
// output can be read back by Load.
func (c Config) MarshalYAML() (any, error) {
	return struct {
		RoundSize     int    `yaml:"round_size"`
		FeedbackDelay string `yaml:"feedback_delay"`
		Seed          uint64 `yaml:"seed"`
		LogFile       string `yaml:"log_file"`
		DBDSN         string `yaml:"db_dsn"`
	}{c.RoundSize, c.FeedbackDelay.String(), c.Seed, c.LogFile, c.DBDSN}, nil
}
