// Package logging builds the zap loggers used by the hopdom command.
// Library packages never construct loggers themselves; they accept a
// *zap.Logger and default to zap.NewNop().
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrBadLevel is returned for a level name zap does not know.
var ErrBadLevel = errors.New("logging: unknown level")

// Config selects level, encoding and an optional rotated log file.
type Config struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	// File, when set, receives a copy of every entry through lumberjack.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig logs info and above to stderr only.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// ParseLevel maps a level name to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}

	return lvl, nil
}

// CloseFunc flushes a logger and releases its log file, if any.
type CloseFunc func() error

// New builds a logger writing to stderr and, if cfg.File is set, to a
// rotated file. Call the returned CloseFunc once the logger is done.
func New(cfg Config) (*zap.Logger, CloseFunc, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with the console sink replaced by w.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, CloseFunc, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.AddSync(w), lvl)}
	var file *lumberjack.Logger
	if cfg.File != "" {
		file = Rotator(cfg)
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			lvl,
		))
	}

	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(w))}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	log := zap.New(zapcore.NewTee(cores...), opts...)
	closeFn := func() error {
		// Sync on a console sink such as stderr may fail harmlessly.
		_ = log.Sync()
		if file == nil {
			return nil
		}

		return file.Close()
	}

	return log, closeFn, nil
}

// Rotator returns the lumberjack writer for cfg.File. The caller owns it
// and must Close it.
func Rotator(cfg Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}
}
