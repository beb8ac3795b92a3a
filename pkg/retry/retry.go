package retry

import (
	"context"
	"time"

	"github.com/medscan/medscan/pkg/provider"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds repeated calls of a fallible operation: a total attempt
// budget, a fixed delay between attempts, and a classifier deciding which
// errors are worth another try.
type Policy struct {
	Attempts int
	Delay    time.Duration

	// Retryable defaults to provider.IsTemporary.
	Retryable func(error) bool

	// Notify fires after each failed retryable attempt, before the delay.
	Notify func(err error, attempt int, delay time.Duration)
}

func Default() Policy {
	return Policy{
		Attempts: 3,
		Delay:    2 * time.Second,
	}
}

func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.Attempts

	if attempts < 1 {
		attempts = 1
	}

	retryable := p.Retryable

	if retryable == nil {
		retryable = provider.IsTemporary
	}

	attempt := 0

	op := func() error {
		attempt++

		err := fn(ctx)

		if err == nil {
			return nil
		}

		if !retryable(err) {
			return backoff.Permanent(err)
		}

		return err
	}

	notify := func(err error, delay time.Duration) {
		if p.Notify != nil {
			p.Notify(err, attempt, delay)
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), uint64(attempts-1)), ctx)

	return backoff.RetryNotify(op, policy, notify)
}
