// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// Runner - a single cycle
type Runner interface {
	Run(ctx context.Context) Outcome
}

// Scheduler - background process running cycles back to back
type Scheduler struct {
	sync.Mutex
	log      *logger.L
	cycle    Runner
	interval time.Duration
	counts   [outcomeCount]uint64
	cycles   uint64
}

// NewScheduler - run cycle, wait interval, repeat
func NewScheduler(log *logger.L, cycle Runner, interval time.Duration) *Scheduler {
	return &Scheduler{
		log:      log,
		cycle:    cycle,
		interval: interval,
	}
}

// Run - loop until shutdown
//
// closing shutdown also cancels the cycle in progress
func (s *Scheduler) Run(args interface{}, shutdown <-chan struct{}) {

	log := s.log
	log.Infof("starting…  interval: %s", s.interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

loop:
	for {
		outcome := s.cycle.Run(ctx)
		n := s.record(outcome)
		log.Infof("cycle: %d  outcome: %s", n, outcome)

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.interval)

		select {
		case <-shutdown:
			break loop
		case <-timer.C:
		}
	}

	log.Infof("stopped after: %d cycles", s.Cycles())
}

func (s *Scheduler) record(outcome Outcome) uint64 {
	s.Lock()
	defer s.Unlock()
	s.cycles += 1
	if outcome >= 0 && outcome < outcomeCount {
		s.counts[outcome] += 1
	}
	return s.cycles
}

// Cycles - number of completed cycles
func (s *Scheduler) Cycles() uint64 {
	s.Lock()
	defer s.Unlock()
	return s.cycles
}

// Count - number of cycles that ended with outcome
func (s *Scheduler) Count(outcome Outcome) uint64 {
	s.Lock()
	defer s.Unlock()
	if outcome < 0 || outcome >= outcomeCount {
		return 0
	}
	return s.counts[outcome]
}
