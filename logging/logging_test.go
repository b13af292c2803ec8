package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hopdom/logging"
)

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestNew_BadLevel(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Level = "nope"
	_, closeFn, err := logging.New(cfg)
	assert.Nil(t, closeFn)
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Level = "warn"

	log, closeFn, err := logging.NewWithWriter(cfg, &buf)
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()
	log.Info("hidden")
	log.Warn("shown", zap.Int("n", 3))
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"n":3`)
}

func TestNewWithWriter_Development(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Development = true
	cfg.Level = "debug"

	log, _, err := logging.NewWithWriter(cfg, &buf)
	require.NoError(t, err)
	log.Debug("trace line")
	_ = log.Sync()

	assert.Contains(t, buf.String(), "trace line")
	assert.NotContains(t, buf.String(), `"msg"`)
}

func TestNew_RotatingFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "hopdom.log")

	log, closeFn, err := logging.NewWithWriter(cfg, &buf)
	require.NoError(t, err)
	log.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, buf.String(), "to file")
}

func TestRotator_CloseReleasesFile(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "rot.log")

	r := logging.Rotator(cfg)
	_, err := r.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	// A second Close on a released rotator is a no-op.
	require.NoError(t, r.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
