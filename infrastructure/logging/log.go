// Package logging provides the process-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the global logger instance
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.WarnLevel)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetVerbosity maps a verbosity level to a log level:
// 0=warnings only, 1=debug logs, 2=raw device output, 3=debug+raw output.
// Raw output is logged at trace level, so 2 and 3 both enable everything.
func SetVerbosity(level int) {
	switch level {
	case 1:
		Logger.SetLevel(logrus.DebugLevel)
	case 2, 3:
		Logger.SetLevel(logrus.TraceLevel)
	default:
		Logger.SetLevel(logrus.WarnLevel)
	}
}

// SetLogLevel sets the logging level by name
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetLogOutput sets the log output destination
func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// SetJSONFormat enables JSON log format
func SetJSONFormat() {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
}

// WithDevice returns a logger with device context
func WithDevice(target string) *logrus.Entry {
	return Logger.WithField("device", target)
}

// WithOperation returns a logger with device and operation context
func WithOperation(target, operation string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"device":    target,
		"operation": operation,
	})
}
