package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds the genetic-search parameters. Adjust these to trade speed for
// solution quality.
type Config struct {
	// Size is the population size; the population is fully replaced each
	// generation, so it must be even.
	Size int `mapstructure:"size"`
	// Iterations is the number of generations to run.
	Iterations int `mapstructure:"iterations"`
	// TournamentK is the number of chromosomes sampled per tournament.
	TournamentK int `mapstructure:"tournamentK"`
	// Mutations is the number of boundary-swap attempts per chromosome per
	// generation.
	Mutations int `mapstructure:"mutations"`
	// Workers caps the goroutines used by each parallel phase.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the stock parameters.
func DefaultConfig() Config {
	return Config{
		Size:        32,
		Iterations:  20,
		TournamentK: 4,
		Mutations:   5,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// Validate checks for parameter combinations the engine cannot run with.
func (c Config) Validate() error {
	if c.Size < 2 || c.Size%2 != 0 {
		return fmt.Errorf("size must be even and >= 2, got %d", c.Size)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be >= 0, got %d", c.Iterations)
	}
	if c.TournamentK < 1 || c.TournamentK > c.Size {
		return fmt.Errorf("tournamentK must be in [1, size], got %d with size %d", c.TournamentK, c.Size)
	}
	if c.Mutations < 0 {
		return fmt.Errorf("mutations must be >= 0, got %d", c.Mutations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

// LoadConfig layers an optional YAML config file and BOOKSCAN_* environment
// variables over the defaults. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("size", def.Size)
	v.SetDefault("iterations", def.Iterations)
	v.SetDefault("tournamentK", def.TournamentK)
	v.SetDefault("mutations", def.Mutations)
	v.SetDefault("workers", def.Workers)
	v.SetEnvPrefix("BOOKSCAN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
