package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/webbmaffian/go-linkmem/linkmem"
)

// Binder is satisfied by *linkmem.Binding.
type Binder interface {
	Bind() error
}

// Bind calls b.Bind until it succeeds, ctx is done, or the failure is one
// that waiting cannot fix. Only a missing segment is retried, since that
// usually means the producer has not started yet. notify, if set, is called
// with every retried error.
func Bind(ctx context.Context, b Binder, maxInterval time.Duration, notify func(error, time.Duration)) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = min(bo.InitialInterval, maxInterval)
	bo.MaxInterval = maxInterval
	bo.MaxElapsedTime = 0

	return backoff.RetryNotify(func() error {
		err := b.Bind()

		if err == nil || Retryable(err) {
			return err
		}

		return backoff.Permanent(err)
	}, backoff.WithContext(bo, ctx), notify)
}

// Retryable reports whether err only means the segment does not exist yet.
func Retryable(err error) bool {
	var bindErr *linkmem.BindError
	return errors.As(err, &bindErr) && bindErr.Reason == linkmem.NotFound
}
