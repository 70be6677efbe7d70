package services

import (
	"context"
	Config "memoless-api/config"
	"memoless-api/utility/logger"
	"time"
)

// SleepFunc ... waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep ... wall clock SleepFunc
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryWithBackoff ... calls fn up to policy.MaxAttempts times, sleeping policy.Delay(n)
// before the nth retry. Returns the last error from fn.
func RetryWithBackoff(ctx context.Context, policy Config.RetryPolicy, sleep SleepFunc, fn func(attempt int) error) error {
	if sleep == nil {
		sleep = Sleep
	}
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if sleepErr := sleep(ctx, policy.Delay(attempt-1)); sleepErr != nil {
				return err
			}
		}
		if err = fn(attempt); err == nil {
			return nil
		}
		logger.Warning("Attempt %d of %d failed : %s", attempt, attempts, err)
	}
	return err
}
