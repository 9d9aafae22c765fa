package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Words   WordsConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	Host         string
	Env          string // "development" or "production"
	ClientOrigin string
	RoundSecret  string
}

// GameConfig holds round timing shared by both front-ends
type GameConfig struct {
	TickInterval time.Duration // one countdown second
	RoundTTL     time.Duration // idle HTTP rounds are dropped after this
}

// WordsConfig locates the word lists and the optional SQLite lexicon
type WordsConfig struct {
	StartFile      string
	DictionaryFile string
	LexiconDSN     string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5175"),
			Host:         getEnv("HOST", "127.0.0.1"),
			Env:          getEnv("ENV", "development"),
			ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			RoundSecret:  getEnv("ROUND_SECRET", "dev_secret_change_me"),
		},
		Game: GameConfig{
			TickInterval: time.Duration(getEnvInt("TICK_INTERVAL_MS", 1000)) * time.Millisecond,
			RoundTTL:     time.Duration(getEnvInt("ROUND_TTL_MINUTES", 24*60)) * time.Minute,
		},
		Words: WordsConfig{
			StartFile:      getEnv("WORDS_START_FILE", ""),
			DictionaryFile: getEnv("WORDS_DICTIONARY_FILE", ""),
			LexiconDSN:     getEnv("LEXICON_DSN", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// ConfigureLogger sets the global zerolog level and output format.
func (c *Config) ConfigureLogger() {
	if lvl, err := zerolog.ParseLevel(c.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Logging.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
