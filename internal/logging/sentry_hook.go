package logging

import (
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

var sentryLevels = map[logrus.Level]sentry.Level{
	logrus.PanicLevel: sentry.LevelFatal,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.WarnLevel:  sentry.LevelWarning,
	logrus.InfoLevel:  sentry.LevelInfo,
	logrus.DebugLevel: sentry.LevelDebug,
	logrus.TraceLevel: sentry.LevelDebug,
}

// SentryHook forwards logrus entries of the given levels to sentry.
type SentryHook struct {
	levels []logrus.Level
	hub    *sentry.Hub
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return NewSentryHookWithHub(sentry.CurrentHub(), levels)
}

func NewSentryHookWithHub(hub *sentry.Hub, levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
		hub:    hub,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevels[entry.Level]
	event.Message = entry.Message
	event.Timestamp = entry.Time

	if len(entry.Data) > 0 {
		event.Extra = make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			if err, ok := v.(error); ok && k == logrus.ErrorKey {
				event.Exception = append(event.Exception, sentry.Exception{
					Type:  "error",
					Value: err.Error(),
				})
				continue
			}
			event.Extra[k] = v
		}
	}

	h.hub.CaptureEvent(event)
	return nil
}
