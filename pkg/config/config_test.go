package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("EMAIL_USER", "me@example.com")
	t.Setenv("EMAIL_SECURE", "true")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.JWTTTL())
	assert.Equal(t, 15*time.Minute, cfg.LoginRateWindow())
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.True(t, cfg.Mail.Secure)
	assert.Equal(t, "me@example.com", cfg.Mail.From)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "8081"
storage_driver: postgres
database_url: postgres://localhost/cv
jwt_secret: from-file
mail:
  host: smtp.example.com
  port: 465
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout())
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := defaults()
	valid.JWTSecret = "s"
	valid.DatabaseURL = "postgres://localhost/cv"
	require.NoError(t, valid.Validate())

	noSecret := valid
	noSecret.JWTSecret = ""
	assert.ErrorIs(t, noSecret.Validate(), ErrMissingSigningSecret)

	cases := map[string]func(c *Config){
		"no database url":   func(c *Config) { c.DatabaseURL = "" },
		"unknown driver":    func(c *Config) { c.StorageDriver = "mongo" },
		"unknown mode":      func(c *Config) { c.LoginMode = "magic" },
		"otp without email": func(c *Config) { c.LoginMode = LoginOTP },
		"half admin seed":   func(c *Config) { c.AdminIdentifier = "harizal" },
		"zero ttl":          func(c *Config) { c.JWTTTLMinutes = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
