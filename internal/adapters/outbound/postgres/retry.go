package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"io"
	"math"
	"math/rand"
	"net"
	"strings"
	"time"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// retryPolicy wraps storage operations with bounded, classified retry.
// Transient failures are retried up to MaxRetries additional times with
// exponential backoff and jitter; validation and not-found failures
// propagate on the first occurrence. The final failure propagates unwrapped:
// translation into the domain hierarchy happens at the call site, not here.
type retryPolicy struct {
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	log          *zap.Logger
}

func newRetryPolicy(maxRetries int, log *zap.Logger) retryPolicy {
	return retryPolicy{
		maxRetries:   maxRetries,
		initialDelay: 50 * time.Millisecond,
		maxDelay:     2 * time.Second,
		log:          log,
	}
}

// Do executes fn, retrying transient failures up to maxRetries additional
// attempts.
func (p retryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= p.maxRetries+1; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		p.log.Debug("storage operation attempt failed",
			zap.String("operation", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if !isTransient(err) || attempt == p.maxRetries+1 {
			break
		}

		delay := backoffWithJitter(attempt, p.initialDelay, p.maxDelay)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	if isTransient(lastErr) {
		p.log.Warn("storage operation exhausted retries",
			zap.String("operation", op),
			zap.Int("max_retries", p.maxRetries),
			zap.Error(lastErr),
		)
	}
	return lastErr
}

// isTransient classifies a failure as likely to succeed on retry. Domain
// errors (validation, not-found) are structural and never retried.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if domain.IsDomainErr(err) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"53300", // too_many_connections
			"55P03", // lock_not_available
			"57P01": // admin_shutdown
			return true
		}
		// class 08: connection exceptions
		return strings.HasPrefix(pgErr.Code, "08")
	}

	return pgconn.SafeToRetry(err)
}

// backoffWithJitter computes the delay before the next attempt.
func backoffWithJitter(attempt int, initial, max time.Duration) time.Duration {
	delay := float64(initial) * math.Pow(2, float64(attempt-1))
	if delay > float64(max) {
		delay = float64(max)
	}
	// 0.8x to 1.2x jitter keeps concurrent retries from aligning
	delay *= 0.8 + rand.Float64()*0.4
	return time.Duration(delay)
}
