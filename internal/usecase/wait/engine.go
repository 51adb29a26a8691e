// Package wait polls the live page until a condition holds or a
// caller-supplied timeout elapses.
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

// Probe checks the live page once. done=false asks for another poll; a
// non-nil error aborts the wait unless it was wrapped with Retry.
type Probe[T any] func(ctx context.Context) (value T, done bool, err error)

type retryable struct {
	err error
}

func (r *retryable) Error() string { return r.err.Error() }
func (r *retryable) Unwrap() error { return r.err }

// Retry marks a probe error as transient: the engine remembers it and polls
// again instead of aborting.
func Retry(err error) error {
	if err == nil {
		return nil
	}
	return &retryable{err: err}
}

type Engine struct {
	interval time.Duration
	logger   output.LoggerPort
}

type Option func(*Engine)

func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

func WithLogger(l output.LoggerPort) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		interval: entity.DefaultPollInterval,
		logger:   output.NopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) PollInterval() time.Duration {
	return e.interval
}

// Poll evaluates probe immediately and then every interval until it
// reports done, fails, or timeout elapses. Running out of time yields an
// *entity.TimeoutError; cancellation of ctx is returned as ctx.Err().
func Poll[T any](ctx context.Context, e *Engine, what string, timeout, interval time.Duration, probe Probe[T]) (T, error) {
	var zero T
	if timeout <= 0 {
		return zero, fmt.Errorf("%w: wait for %s needs a positive timeout", entity.ErrInvalidConfiguration, what)
	}
	if interval <= 0 {
		interval = e.interval
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	polls := 0
	var last error

	timedOut := func() (T, error) {
		e.logger.Debug("wait timed out", "what", what, "timeout", timeout, "polls", polls)
		return zero, &entity.TimeoutError{What: what, Timeout: timeout, Last: last}
	}

	for {
		polls++
		value, done, err := probe(waitCtx)
		switch {
		case err == nil && done:
			e.logger.Debug("wait satisfied", "what", what, "elapsed", time.Since(start), "polls", polls)
			return value, nil
		case err != nil:
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			if waitCtx.Err() != nil {
				return timedOut()
			}
			var r *retryable
			if !errors.As(err, &r) {
				return zero, err
			}
			last = r.err
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			return timedOut()
		case <-ticker.C:
		}
	}
}
