// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams controls where and how much is logged.
type SetupParams struct {
	LogLevel string
	// LogFileName, when set, sends logs to a rotated file.
	LogFileName string
	// Quiet drops console output; used while the TUI owns the terminal.
	Quiet bool
	// Stderr is the console sink. Defaults to os.Stderr.
	Stderr io.Writer
}

// Setup applies params to the standard logrus logger.
func Setup(params SetupParams) {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: params.LogFileName == "",
	})
	logrus.SetLevel(GetLevel(params.LogLevel))

	console := params.Stderr
	if console == nil {
		console = os.Stderr
	}

	if params.LogFileName == "" {
		if params.Quiet {
			logrus.SetOutput(io.Discard)
			return
		}
		logrus.SetOutput(console)
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}
	fileLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}
	if params.Quiet {
		logrus.SetOutput(fileLogger)
		return
	}
	logrus.SetOutput(io.MultiWriter(console, fileLogger))
}

// GetLevel maps a level name to a logrus level, defaulting to warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.WarnLevel
	}
}
