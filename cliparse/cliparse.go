package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         int      `env:"PORT" env-default:"3318"`
	DatabaseURL  string   `env:"DATABASE_URL"`
	DatabaseType string   `env:"DATABASE_TYPE" env-default:"sqlite"`
	CORSOrigins  []string `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// ParseFlags builds the config from flags, the environment and an optional .env file.
// Flags win over the environment, and the environment wins over .env.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	port := fs.Int("p", 0, "Server port")
	databaseURL := fs.String("d", "", "Database URL")
	databaseType := fs.String("t", "", "Database type (sqlite or postgres)")
	corsOrigins := fs.String("cors", "", "Comma-separated origins allowed to call the JSON API")
	envFile := fs.String("env-file", ".env", "dotenv file to load if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", *envFile, err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	if *port != 0 {
		cfg.Port = *port
	}
	if *databaseURL != "" {
		cfg.DatabaseURL = *databaseURL
	}
	if *databaseType != "" {
		cfg.DatabaseType = *databaseType
	}
	if *corsOrigins != "" {
		cfg.CORSOrigins = splitList(*corsOrigins)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = "sqlite"
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	cfg.CORSOrigins = splitList(strings.Join(cfg.CORSOrigins, ","))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
