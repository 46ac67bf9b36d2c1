package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment  string             `toml:"environment"` // "development" or "production"
	Server       ServerConfig       `toml:"server"`
	Storage      StorageConfig      `toml:"storage"`
	Corpus       CorpusConfig       `toml:"corpus"`
	Conversation ConversationConfig `toml:"conversation"`
	Collaborator CollaboratorConfig `toml:"collaborators"`
	Logging      LoggingConfig      `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gt=0,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`         // Delete database on startup for clean test runs
}

// CorpusConfig controls knowledge-base loading
type CorpusConfig struct {
	File string `toml:"file"` // Optional corpus.yaml path; empty = built-in default corpus
}

// Duration wraps time.Duration so TOML files can carry values like "30m"
// or "500ms"
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the wrapped time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// ConversationConfig controls session behaviour
type ConversationConfig struct {
	IdleTTL        Duration `toml:"idle_ttl"`        // Discard conversations idle longer than this
	SweepSchedule  string   `toml:"sweep_schedule"`  // Cron schedule for the idle sweeper
	SubmitInterval Duration `toml:"submit_interval"` // Minimum interval between submits per conversation
	SubmitBurst    int      `toml:"submit_burst"`    // Rate limiter burst per conversation
}

// CollaboratorConfig holds the base URLs of the external CricTourney services
type CollaboratorConfig struct {
	UserServiceURL       string   `toml:"user_service_url" validate:"required,url"`
	TournamentServiceURL string   `toml:"tournament_service_url" validate:"required,url"`
	TeamServiceURL       string   `toml:"team_service_url" validate:"required,url"`
	SchedulerServiceURL  string   `toml:"scheduler_service_url" validate:"required,url"`
	RequestTimeout       Duration `toml:"request_timeout"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"` // "debug", "info", "warn", "error"
	Output []string `toml:"output"`                                       // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings should be exposed in pavilion.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8090,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Corpus: CorpusConfig{
			File: "", // Built-in corpus unless overridden
		},
		Conversation: ConversationConfig{
			IdleTTL:        Duration(30 * time.Minute),
			SweepSchedule:  "@every 5m",
			SubmitInterval: Duration(500 * time.Millisecond),
			SubmitBurst:    5,
		},
		Collaborator: CollaboratorConfig{
			UserServiceURL:       "http://localhost:8765/api",
			TournamentServiceURL: "http://localhost:8765",
			TeamServiceURL:       "http://localhost:8765",
			SchedulerServiceURL:  "http://localhost:8765",
			RequestTimeout:       Duration(10 * time.Second),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
	}
}

// LoadFromFiles loads configuration with priority: defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PAVILION_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("PAVILION_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("PAVILION_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if badgerPath := os.Getenv("PAVILION_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	if corpusFile := os.Getenv("PAVILION_CORPUS_FILE"); corpusFile != "" {
		config.Corpus.File = corpusFile
	}

	if url := os.Getenv("PAVILION_USER_SERVICE_URL"); url != "" {
		config.Collaborator.UserServiceURL = url
	}
	if url := os.Getenv("PAVILION_TOURNAMENT_SERVICE_URL"); url != "" {
		config.Collaborator.TournamentServiceURL = url
	}
	if url := os.Getenv("PAVILION_TEAM_SERVICE_URL"); url != "" {
		config.Collaborator.TeamServiceURL = url
	}
	if url := os.Getenv("PAVILION_SCHEDULER_SERVICE_URL"); url != "" {
		config.Collaborator.SchedulerServiceURL = url
	}

	if level := os.Getenv("PAVILION_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("PAVILION_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
