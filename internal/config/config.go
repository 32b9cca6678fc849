// internal/config/config.go
//
// Process configuration, read once at startup and passed explicitly to every
// component that needs it.
//
// Sources, in order of precedence:
//   1. Process environment.
//   2. The .env file (ENV_FILE, default ".env"), loaded by main via godotenv.
//
// Keys:
//   BASE_URL, PROVIDER, MODEL   LLM connection (required to play)
//   OPENAI_API_KEY              bearer token for the openai dialect
//   TEMPERATURE                 optional sampling temperature
//   LLM_TIMEOUT                 per-request timeout, Go duration (default 2m)
//   WORDS_FILE                  dictionary path (default: embedded list)
//   SCORES_FILE                 scoresheet path (default scoresheet.json)
//   SCORES_DSN                  SQLite path; when set, replaces SCORES_FILE
//   DAILY_SALT                  salt for the daily scramble word
//   NO_COLOR                    disable colored output
//   LOG_LEVEL                   zerolog level (default warn)

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultEnvFile    = ".env"
	DefaultScoresFile = "scoresheet.json"
	DefaultTimeout    = 2 * time.Minute
	DefaultLogLevel   = "warn"
)

// Config holds every setting the CLI reads from the environment.
type Config struct {
	BaseURL     string
	Provider    string
	Model       string
	APIKey      string
	Temperature *float64
	Timeout     time.Duration

	WordsFile  string
	ScoresFile string
	ScoresDSN  string
	DailySalt  string

	EnvFile  string
	NoColor  bool
	LogLevel string
}

// MissingError reports a required connection setting that is not set.
type MissingError struct {
	Key  string // environment variable
	Flag string // `wordplay config` flag that sets it
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("the %s environment variable is not set. Please run `wordplay config --%s <value>`", e.Key, e.Flag)
}

// Load reads the process environment.
func Load() Config {
	return FromLookup(os.Getenv)
}

// FromLookup builds a Config from an arbitrary key lookup.
func FromLookup(getenv func(string) string) Config {
	get := func(k string) string { return strings.TrimSpace(getenv(k)) }

	cfg := Config{
		BaseURL:    get("BASE_URL"),
		Provider:   strings.ToLower(get("PROVIDER")),
		Model:      get("MODEL"),
		APIKey:     get("OPENAI_API_KEY"),
		Timeout:    DefaultTimeout,
		WordsFile:  get("WORDS_FILE"),
		ScoresFile: getDefault(get("SCORES_FILE"), DefaultScoresFile),
		ScoresDSN:  get("SCORES_DSN"),
		DailySalt:  get("DAILY_SALT"),
		EnvFile:    getDefault(get("ENV_FILE"), DefaultEnvFile),
		NoColor:    get("NO_COLOR") != "",
		LogLevel:   getDefault(get("LOG_LEVEL"), DefaultLogLevel),
	}
	if v := get("TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = &f
		}
	}
	if v := get("LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// RequireLLM returns a *MissingError for the first absent connection setting.
func (c Config) RequireLLM() error {
	switch {
	case c.BaseURL == "":
		return &MissingError{Key: "BASE_URL", Flag: "base_url"}
	case c.Provider == "":
		return &MissingError{Key: "PROVIDER", Flag: "provider"}
	case c.Model == "":
		return &MissingError{Key: "MODEL", Flag: "model"}
	}
	return nil
}

func getDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
