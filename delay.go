package aht20

import (
	"context"
	"time"
)

// Delayer suspends the calling goroutine for a fixed duration. The sensor
// protocol has two mandatory settle points (after the calibration command and
// after the measurement trigger); running them through this capability keeps
// the driver testable with a zero-delay fake.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration) error
}

// TimerDelayer is the default Delayer backed by the runtime timer. It returns
// early with the context error if the context is cancelled first.
type TimerDelayer struct{}

func (TimerDelayer) Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
