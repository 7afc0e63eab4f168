package app

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryOptions - настройки повторов при подключении к внешним сервисам на старте
type RetryOptions struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  time.Minute,
	}
}

// Retry повторяет op с экспоненциальной задержкой, пока она не пройдет,
// не истечет MaxElapsedTime или не отменится ctx
func Retry(ctx context.Context, name string, op func() error, opts RetryOptions, logger *zap.SugaredLogger) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(opts.InitialInterval),
		backoff.WithMaxInterval(opts.MaxInterval),
		backoff.WithMaxElapsedTime(opts.MaxElapsedTime),
	)

	notify := func(err error, next time.Duration) {
		logger.Warnw("retrying", "target", name, "error", err, "next", next)
	}

	return backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify)
}
