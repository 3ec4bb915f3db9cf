package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Zero(t, cfg.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadString(t *testing.T) {
	cfg, err := config.NewLoader().LoadString(`
workers: 3
log:
  level: debug
`)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "missing keys keep defaults")
}

func TestLoadString_Empty(t *testing.T) {
	cfg, err := config.NewLoader().LoadString("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadString_EnvExpansion(t *testing.T) {
	t.Setenv("PATROL_WORKERS", "5")

	cfg, err := config.NewLoader().LoadString("workers: ${PATROL_WORKERS}")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Workers)

	_, err = config.NewLoader(config.WithEnvExpansion(false)).LoadString("workers: ${PATROL_WORKERS}")
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadString_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{"UnknownKey", "threads: 4", config.ErrInvalidFormat},
		{"NotYAML", "workers: [", config.ErrInvalidFormat},
		{"NegativeWorkers", "workers: -2", config.ErrInvalidConfig},
		{"BadLevel", "log: {level: loud}", config.ErrInvalidConfig},
		{"BadFormat", "log: {format: xml}", config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.NewLoader().LoadString(tc.content)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patrol.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\nlog:\n  format: json\n"), 0o600))

	cfg, err := config.NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = config.NewLoader().LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}
