// Package logger builds zap loggers from settings.Logger.
package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

const defaultLevel = "info"

// New creates a JSON logger writing to stdout and, when FileLogName is set,
// to a size-rotated file.
func New(cfg settings.Logger) (*zap.Logger, error) {
	if err := settings.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "logger settings")
	}

	core, err := NewCore(cfg, zapcore.AddSync(os.Stdout))
	if err != nil {
		return nil, err
	}
	return zap.New(core, zap.AddCaller()), nil
}

// NewCore builds the zap core behind New, writing to console plus the
// rotating file described by cfg.
func NewCore(cfg settings.Logger, console zapcore.WriteSyncer) (zapcore.Core, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sinks := []zapcore.WriteSyncer{console}
	if cfg.FileLogName != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}))
	}

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		s = defaultLevel
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, errors.Wrapf(err, "parse log level %q", s)
	}
	return level, nil
}
