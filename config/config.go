package config // CLI configuration file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys read by Load.
const (
	EnvFormat   = "PROT_BUDDY_FORMAT"
	EnvWorkers  = "PROT_BUDDY_WORKERS"
	EnvLogLevel = "PROT_BUDDY_LOG_LEVEL"
)

// Settings are defaults shared by every tool; command-line flags win over them.
type Settings struct {
	Format   string // text, csv or json
	Workers  int    // <= 0 means one per CPU
	LogLevel string
	EnvFile  bool // true when a .env file was found and loaded
}

func Defaults() Settings {
	return Settings{Format: "text", Workers: 0, LogLevel: "info"}
}

// Load reads the optional .env files (default ".env") into the process
// environment without overriding variables that are already set, then
// builds Settings from the environment. A missing file is not an error.
func Load(files ...string) (Settings, error) {
	s := Defaults()

	if len(files) == 0 {
		files = []string{".env"}
	}
	err := godotenv.Load(files...)
	switch {
	case err == nil:
		s.EnvFile = true
	case errors.Is(err, fs.ErrNotExist):
		// fall back to the plain environment
	default:
		return s, fmt.Errorf("failed to load env file: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		s.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		s.Workers = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = v
	}
	return s, nil
}
