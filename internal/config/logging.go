package config

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// SetupLogging configures log the way every binary in this module logs:
// colored text at debug level in development, info otherwise, and JSON
// records to a rotating file when MINES_LOG_FILE is set.
func SetupLogging(log *logrus.Logger, out io.Writer) error {
	log.SetOutput(out)

	logLevel := logrus.InfoLevel
	if Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: Development()})

	path := LogFile()
	if path == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return nil
}
