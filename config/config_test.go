package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopdom/config"
	"github.com/katalvlaran/hopdom/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HOPDOM_SEED", "99")
	t.Setenv("HOPDOM_FORMAT", "json")
	t.Setenv("HOPDOM_LOG_LEVEL", "debug")

	cfg, err := config.Load(config.NewViper())
	require.NoError(t, err)
	assert.EqualValues(t, 99, cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hopdom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nworkers: 4\nlog:\n  level: warn\n  file: /tmp/x.log\n"), 0o600))

	v := config.NewViper()
	require.NoError(t, config.ReadFile(v, path))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
	assert.Equal(t, logging.DefaultConfig().MaxBackups, cfg.Log.MaxBackups)
}

func TestReadFile_Missing(t *testing.T) {
	err := config.ReadFile(config.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.NoError(t, config.ReadFile(config.NewViper(), ""))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"workers": func(c *config.Config) { c.Workers = 0 },
		"format":  func(c *config.Config) { c.Format = "xml" },
		"level":   func(c *config.Config) { c.Log.Level = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, config.Default().Validate())
}
