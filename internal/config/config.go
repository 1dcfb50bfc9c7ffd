package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/fadedpez/highcard/internal/logging"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/games/highcard"
	"github.com/joho/godotenv"
)

// Storage backends for match results
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Match settings
	Rounds      int
	HandSize    int
	PlayedCards string
	// Seed fixes the shuffle order; zero means a random shuffle
	Seed uint64

	// Resources
	StorageType string
	RosterPath  string

	// Logging
	LogLevel string
}

// Load reads the configuration from the environment, falling back to a
// .env file in the working directory
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads the configuration from the environment, falling back to
// values from envFile. A missing envFile is not an error.
func LoadFrom(envFile string) (*Config, error) {
	fileValues, err := godotenv.Read(envFile)
	if err != nil {
		// Only return error if file exists but couldn't be loaded
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, types.WrapError(types.ErrInvalidArgument, fmt.Sprintf("error loading %s", envFile), err)
		}
		fileValues = map[string]string{}
	}

	env := func(key, defaultValue string) string {
		return getEnvWithDefault(key, getWithDefault(fileValues, key, defaultValue))
	}

	cfg := &Config{
		PlayedCards: env("HIGHCARD_PLAYED_CARDS", string(highcard.ReturnToDeck)),
		StorageType: env("STORAGE_TYPE", StorageMemory),
		RosterPath:  env("HIGHCARD_ROSTER", ""),
		LogLevel:    env("LOG_LEVEL", "info"),
	}

	if cfg.Rounds, err = parseInt("HIGHCARD_ROUNDS", env("HIGHCARD_ROUNDS", strconv.Itoa(highcard.DefaultRounds))); err != nil {
		return nil, err
	}
	if cfg.HandSize, err = parseInt("HIGHCARD_HAND_SIZE", env("HIGHCARD_HAND_SIZE", strconv.Itoa(highcard.DefaultHandSize))); err != nil {
		return nil, err
	}
	seed := env("HIGHCARD_SEED", "0")
	if cfg.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, types.WrapError(types.ErrInvalidArgument, fmt.Sprintf("HIGHCARD_SEED must be a non-negative integer, got %q", seed), err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that every value is one the application understands
func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory, StorageSQLite:
	default:
		return types.InvalidArgument(fmt.Sprintf("STORAGE_TYPE must be %s or %s, got %q", StorageMemory, StorageSQLite, c.StorageType))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	// Matches are always dealt from a standard deck
	return c.Settings().Validate(entities.NewStandardDeck().Size())
}

// Settings returns the match settings described by the configuration
func (c *Config) Settings() highcard.Settings {
	return highcard.Settings{
		Rounds:      c.Rounds,
		HandSize:    c.HandSize,
		PlayedCards: highcard.PlayedCardPolicy(strings.ToLower(c.PlayedCards)),
	}
}

// Level returns the configured log level
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument, fmt.Sprintf("%s must be an integer, got %q", key, value), err)
	}
	return n, nil
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getWithDefault(values map[string]string, key, defaultValue string) string {
	if value := values[key]; value != "" {
		return value
	}
	return defaultValue
}
