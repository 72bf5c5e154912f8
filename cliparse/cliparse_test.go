// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable ParseFlags reads and restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "CORS_ORIGINS"} {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := ParseFlags([]string{"-env-file", noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "file:polls.db")

	cfg, err := ParseFlags([]string{"-env-file", noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, 3318, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://from-env")

	cfg, err := ParseFlags([]string{
		"-env-file", noEnvFile(t),
		"-p", "8080",
		"-d", "file:test.db",
		"-t", "sqlite",
		"-cors", "https://polls.example.com",
	})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://polls.example.com"}, cfg.CORSOrigins)
}

func TestParseFlags_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=1234\nDATABASE_URL=file:dotenv.db\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := ParseFlags([]string{"-env-file", envFile})
	require.NoError(t, err)

	assert.Equal(t, "file:dotenv.db", cfg.DatabaseURL)
	// The real environment wins over .env
	assert.Equal(t, 7000, cfg.Port)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing database URL",
		},
		{
			name: "unsupported database type",
			env:  map[string]string{"DATABASE_URL": "x", "DATABASE_TYPE": "mysql"},
		},
		{
			name: "invalid port env",
			env:  map[string]string{"DATABASE_URL": "x", "PORT": "not-a-port"},
		},
		{
			name: "port out of range",
			env:  map[string]string{"DATABASE_URL": "x"},
			args: []string{"-p", "70000"},
		},
		{
			name: "unknown flag",
			env:  map[string]string{"DATABASE_URL": "x"},
			args: []string{"-admin-salt", "s1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env-file", noEnvFile(t)}, tt.args...)
			_, err := ParseFlags(args)
			assert.Error(t, err)
		})
	}
}
