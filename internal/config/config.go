package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	ArchivePath string
	RemoteURL   string
	RemoteKey   string
	Tokens      map[string]string // token -> user id
	Timezone    string
}

// Load reads configuration from a local .env file (if present) and the
// environment. Environment variables win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("REFRAME_PORT", "8080"),
		DBPath:      getEnv("REFRAME_DB_PATH", ""),
		ArchivePath: getEnv("REFRAME_ARCHIVE_PATH", ""),
		RemoteURL:   getEnv("REFRAME_REMOTE_URL", ""),
		RemoteKey:   getEnv("REFRAME_REMOTE_KEY", ""),
		Tokens:      parseTokens(getEnv("REFRAME_TOKENS", "")),
		Timezone:    getEnv("REFRAME_TIMEZONE", "Europe/London"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("REFRAME_DB_PATH is required")
	}
	if len(c.Tokens) == 0 {
		return fmt.Errorf("REFRAME_TOKENS is required (token=userid pairs, comma separated)")
	}
	return nil
}

// UserFromToken resolves a bearer token to a user id.
func (c *Config) UserFromToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	userID, ok := c.Tokens[token]
	return userID, ok
}

// parseTokens parses "token1=alice,token2=bob" into a token->user map.
// Malformed pairs are skipped.
func parseTokens(raw string) map[string]string {
	tokens := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, userID, ok := strings.Cut(pair, "=")
		if !ok || token == "" || userID == "" {
			continue
		}
		tokens[token] = userID
	}
	return tokens
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
