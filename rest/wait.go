package rest

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ErrWaitTimeout reports that a polled condition never became true
// within its attempt budget.
var ErrWaitTimeout = errors.New("rest: condition not met in time")

// pollInterval is the fixed delay between condition checks. No backoff
// and no jitter: WaitFor exists for test and integration
// synchronization, not production retry policy.
const pollInterval = 2 * time.Second

var errConditionPending = errors.New("condition pending")

// WaitFor polls condition every two seconds until it returns true or
// the timeout's attempt budget is exhausted. The budget is
// floor(timeout/interval)+1 checks, so WaitFor(ctx, cond, 0) still
// checks once. Returns ErrWaitTimeout on exhaustion and ctx.Err() if
// the context is cancelled first.
func WaitFor(ctx context.Context, condition func() bool, timeout time.Duration) error {
	return waitFor(ctx, condition, timeout, pollInterval)
}

func waitFor(ctx context.Context, condition func() bool, timeout, interval time.Duration) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if condition() {
			return struct{}{}, nil
		}
		return struct{}{}, errConditionPending
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(interval)),
		backoff.WithMaxTries(attemptBudget(timeout, interval)),
		// Only the attempt budget bounds the loop; without this, Retry
		// caps total elapsed time at 15 minutes.
		backoff.WithMaxElapsedTime(0),
	)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrWaitTimeout
	}
	return nil
}

// attemptBudget is floor(timeout/interval)+1: one immediate check plus
// one per full interval in the timeout.
func attemptBudget(timeout, interval time.Duration) uint {
	return uint(timeout/interval) + 1
}
