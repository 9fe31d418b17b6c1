// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Text or JSON output to stdout, optionally mirrored to a rotating file

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of logrus' level names (debug, info, warn, error, ...)
	Level string

	// Format is "text" or "json"
	Format string

	// File, when set, receives a copy of every entry with size-based rotation
	File string

	// Output overrides stdout, used by tests
	Output io.Writer
}

// Logger implements interfaces.Logger
type Logger struct {
	logger *logrus.Logger
	file   *lumberjack.Logger
}

// NewLogger creates a logger from opts
func NewLogger(opts Options) (*Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var formatter logrus.Formatter
	switch strings.ToLower(opts.Format) {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}

	l := &Logger{logger: logrus.New()}

	if opts.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		out = io.MultiWriter(out, l.file)
	}

	l.logger.SetLevel(level)
	l.logger.SetFormatter(formatter)
	l.logger.SetOutput(out)

	return l, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

// Logrus exposes the underlying logger for libraries that take a Printf-style logger
func (l *Logger) Logrus() *logrus.Logger {
	return l.logger
}

// Close flushes and closes the rotating file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
