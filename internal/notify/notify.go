package notify

import (
	"go.uber.org/zap"

	"suseli-shop/internal/logger"
)

// Notifier surfaces transient user-visible messages, the toast channel of
// the storefront. Calls must never block or fail.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Log routes notifications into the structured log, the default when no
// UI feed is attached.
type Log struct {
	log *zap.Logger
}

func NewLog() *Log {
	return &Log{log: logger.Named("notify")}
}

func (l *Log) Success(msg string) {
	l.log.Info(msg, zap.String("kind", "success"))
}

func (l *Log) Error(msg string) {
	l.log.Warn(msg, zap.String("kind", "error"))
}

// Multi fans a notification out to several notifiers.
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

type multi []Notifier

func (m multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
