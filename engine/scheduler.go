package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/grid-shooter/constants"
)

// Scheduler runs a step function at a fixed rate on the calling goroutine
// Tick starts are kept on a deadline grid so step duration does not accumulate as drift
type Scheduler struct {
	clock     Clock
	interval  time.Duration
	maxBehind time.Duration

	ticks   uint64
	resyncs uint64
}

// NewScheduler creates a scheduler ticking every interval
func NewScheduler(clock Clock, interval time.Duration) *Scheduler {
	return &Scheduler{
		clock:     clock,
		interval:  interval,
		maxBehind: interval * constants.MaxBehindTicks,
	}
}

// Interval returns the target tick interval
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Ticks returns the number of completed steps
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Resyncs returns how often the deadline grid was abandoned after falling behind
func (s *Scheduler) Resyncs() uint64 { return s.resyncs }

// Run calls step once per interval until step returns false or ctx is done
// The first step runs immediately; a stop from step returns nil, cancellation returns ctx.Err()
func (s *Scheduler) Run(ctx context.Context, step func() bool) error {
	deadline := s.clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !step() {
			return nil
		}
		s.ticks++

		deadline = deadline.Add(s.interval)
		now := s.clock.Now()

		// Too far behind to catch up, restart the grid from now
		if now.Sub(deadline) > s.maxBehind {
			deadline = now
			s.resyncs++
			continue
		}

		if wait := deadline.Sub(now); wait > 0 {
			if err := s.clock.Sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
}
