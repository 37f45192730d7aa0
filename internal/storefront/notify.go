package storefront

import (
	"context"

	"github.com/rs/zerolog"
)

// Notifier surfaces the outcome of shopper actions
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string, err error)
}

// LogNotifier writes notifications as structured log events
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier backed by log
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(ctx context.Context, message string) {
	n.log.Info().Ctx(ctx).Str("notification", "success").Msg(message)
}

func (n *LogNotifier) Failure(ctx context.Context, message string, err error) {
	n.log.Warn().Ctx(ctx).Err(err).Str("notification", "failure").Msg(message)
}

type nopNotifier struct{}

func (nopNotifier) Success(context.Context, string)        {}
func (nopNotifier) Failure(context.Context, string, error) {}

func orNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
