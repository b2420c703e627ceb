package logging

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

const sentryFlushTimeout = 2 * time.Second

var sentryLevels = map[log.Level]sentry.Level{
	log.PanicLevel: sentry.LevelFatal,
	log.FatalLevel: sentry.LevelFatal,
	log.ErrorLevel: sentry.LevelError,
	log.WarnLevel:  sentry.LevelWarning,
	log.InfoLevel:  sentry.LevelInfo,
	log.DebugLevel: sentry.LevelDebug,
	log.TraceLevel: sentry.LevelDebug,
}

// SentryHook forwards log entries of the configured levels to sentry.
type SentryHook struct {
	levels []log.Level
	hub    *sentry.Hub
}

func NewSentryHook(levels []log.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
		hub:    sentry.CurrentHub(),
	}
}

func (h *SentryHook) Levels() []log.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *log.Entry) error {
	event := EventFromEntry(entry)
	if id := h.hub.CaptureEvent(event); id == nil {
		return errors.New("sentry event not captured")
	}
	if entry.Level <= log.FatalLevel {
		// fatal and panic entries end the process, so they need to be sent now
		h.hub.Flush(sentryFlushTimeout)
	}
	return nil
}

// EventFromEntry converts a logrus entry into a sentry event. An error set
// via log.WithError becomes the event exception, other fields become extras.
func EventFromEntry(entry *log.Entry) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = sentryLevels[entry.Level]
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Logger = "logrus"

	for k, v := range entry.Data {
		if k == log.ErrorKey {
			if err, ok := v.(error); ok {
				event.Exception = append(event.Exception, sentry.Exception{
					Type:  errorType(err),
					Value: err.Error(),
				})
				continue
			}
		}
		event.Extra[k] = v
	}

	return event
}

func errorType(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
