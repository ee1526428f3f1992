package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxSizeMB = 50

// Rotation mirrors the lumberjack knobs exposed in config.toml.
// Zero MaxBackups and MaxAgeDays keep rotated files forever.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Rotation         Rotation
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	out, fileLogger := Output(params)
	logrus.SetOutput(out)

	switch {
	case fileLogger == nil:
		logrus.Println("writing logs only to STDOUT")
	case params.LogToStdout:
		logrus.Printf("writing logs to [%s] and STDOUT", fileLogger.Filename)
	default:
		logrus.Printf("writing logs to [%s]", fileLogger.Filename)
	}
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

// Output resolves where logs go. The rotating file logger is nil when
// logs are written to stdout only.
func Output(params LoggerSetupParams) (io.Writer, *lumberjack.Logger) {
	if params.LogFileName == "" {
		return os.Stdout, nil
	}

	fileLogger := NewRotatingFile(params.LogFileName, params.Rotation)
	if params.LogToStdout {
		return pkg.NewCombinedWriter(os.Stdout, fileLogger), fileLogger
	}
	return fileLogger, fileLogger
}

func NewRotatingFile(fileName string, rotation Rotation) *lumberjack.Logger {
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	maxSize := rotation.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
		LocalTime:  false, // UTC file names
	}
}

// GetLevel falls back to trace for unknown values.
func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return lvl
}
