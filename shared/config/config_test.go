package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t, `
port: 8080
allowed_origins: ["https://admin.example.com"]
log_level: debug
request_timeout: 5s
pool:
  max_open_conns: 7
`, `
pg:
  host: db
  port: 5433
  user: admin
  password: secret
  dbname: correos
`)

	cfg := MustLoad(dir)

	assert.Equal(t, 8080, cfg.Public.Port)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Public.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Public.ShutdownTimeout)
	assert.Equal(t, 7, cfg.Public.Pool.MaxOpenConns)
	assert.Equal(t, Pg{Host: "db", Port: 5433, User: "admin", Password: "secret", Dbname: "correos"}, cfg.Private.Pg)
}

func TestMustLoadMissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}

func TestLoadDotenv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotenv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("sets variables", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envPath, []byte("MAILADMIN_DOTENV_TEST=yes\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("MAILADMIN_DOTENV_TEST") })

		require.NoError(t, loadDotenv(envPath))
		assert.Equal(t, "yes", os.Getenv("MAILADMIN_DOTENV_TEST"))
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		// a directory exists but cannot be read as an env file
		assert.Error(t, loadDotenv(t.TempDir()))
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":              "9000",
		"FRONTEND_URL":      "https://correos.example.com",
		"DATABASE_HOST":     "pg.internal",
		"DATABASE_PORT":     "6432",
		"DATABASE_PASSWORD": "override",
		"LOG_LEVEL":         "warn",
	}
	cfg := &Config{Private: Private{Pg: Pg{Host: "localhost", User: "keep"}}}

	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, 9000, cfg.Public.Port)
	assert.Equal(t, "warn", cfg.Public.LogLevel)
	assert.Equal(t, "pg.internal", cfg.Private.Pg.Host)
	assert.Equal(t, 6432, cfg.Private.Pg.Port)
	assert.Equal(t, "keep", cfg.Private.Pg.User)
	assert.Equal(t, "override", cfg.Private.Pg.Password)
	assert.Equal(t, []string{"https://correos.example.com"}, cfg.Public.AllowedOrigins)

	t.Run("invalid port", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.applyEnv(func(k string) string {
			if k == "PORT" {
				return "abc"
			}
			return ""
		})
		assert.Error(t, err)
	})
}

func TestOrigins(t *testing.T) {
	cfg := &Config{Public: Public{AllowedOrigins: []string{"", "https://a.example.com", DevFrontendOrigin, "https://a.example.com"}}}
	assert.Equal(t, []string{DevFrontendOrigin, "https://a.example.com"}, cfg.Origins())
}

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()
	assert.Equal(t, 3000, cfg.Public.Port)
	assert.Equal(t, "info", cfg.Public.LogLevel)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
}
