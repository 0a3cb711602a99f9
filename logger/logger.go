// Package logger is the plugin's zap logger. protoc owns stdout, so logs go to
// stderr or to LOG_FILE; LOG_LEVEL picks the level.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type customLogger struct {
	fd *os.File
}

func (c customLogger) Write(p []byte) (n int, err error) {
	return c.fd.Write(p)
}

func (c customLogger) Sync() error {
	return c.fd.Sync()
}

var logLevel = os.Getenv("LOG_LEVEL")

func getLogLevel(logLevel string) zapcore.Level {
	if logLevel == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// getFd truncates LOG_FILE so every protoc run starts a fresh log. A file
// that cannot be opened falls back to stderr.
func getFd() *os.File {
	logPath := os.Getenv("LOG_FILE")
	if logPath == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// New builds a console logger writing to w at level.
func New(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(
		zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			NameKey:        "logger",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}), w, level)).Named("protoc-gen-go-leo")
}

var Logger = New(&customLogger{fd: getFd()}, getLogLevel(logLevel))

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}
