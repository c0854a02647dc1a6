// Package logger is a simple encapsulation of the go.uber.org/zap package.
// The parser writes its diagnostic surface (the CONFIG: lines) through a
// *zap.SugaredLogger; this package builds the one used by the command line
// tools: console output, optionally duplicated to a rotated log file.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config controls log level and the optional file sink.
type Config struct {
	Level      string
	FileName   string
	MaxSize    int
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// DefaultConfig logs warnings and errors to the console only.
func DefaultConfig() *Config {
	return &Config{
		Level:      "WARN",
		MaxSize:    10,
		MaxAge:     30,
		MaxBackups: 3,
	}
}

// New builds a logger from cfg.
func New(cfg *Config) (*zap.SugaredLogger, error) {
	level := new(zapcore.Level)
	if e := level.UnmarshalText([]byte(cfg.Level)); e != nil {
		return nil, e
	}

	core := zapcore.NewCore(consoleEncoder(), zapcore.AddSync(os.Stderr), level)
	if cfg.FileName != "" {
		fileCore := zapcore.NewCore(fileEncoder(), fileWriter(cfg), level)
		core = zapcore.NewTee(core, fileCore)
	}

	return zap.New(core).Sugar(), nil
}

func consoleEncoder() zapcore.Encoder {
	encodeConfig := zap.NewDevelopmentEncoderConfig()
	encodeConfig.TimeKey = ""
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encodeConfig)
}

func fileEncoder() zapcore.Encoder {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.TimeKey = "time"
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encodeConfig)
}

func fileWriter(cfg *Config) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FileName,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	})
}
