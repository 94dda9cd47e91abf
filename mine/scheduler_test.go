// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashminer/background"
	"github.com/bitmark-inc/hashminer/mine"
)

type countingRunner struct {
	runs    int32
	outcome mine.Outcome
}

func (r *countingRunner) Run(ctx context.Context) mine.Outcome {
	atomic.AddInt32(&r.runs, 1)
	return r.outcome
}

// blocks until its context is cancelled
type blockingRunner struct {
	once      sync.Once
	started   chan struct{}
	cancelled int32
}

func (r *blockingRunner) Run(ctx context.Context) mine.Outcome {
	r.once.Do(func() { close(r.started) })
	<-ctx.Done()
	atomic.StoreInt32(&r.cancelled, 1)
	return mine.Cancelled
}

func TestSchedulerRepeats(t *testing.T) {
	runner := &countingRunner{outcome: mine.Rejected}
	s := mine.NewScheduler(logger.New(category), runner, 10*time.Millisecond)

	processes := background.Processes{s}
	p := background.Start(processes, nil)

	deadline := time.Now().Add(5 * time.Second)
	for s.Cycles() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	start := time.Now()
	p.Stop()
	assert.True(t, time.Since(start) < time.Second, "stop was not prompt")

	cycles := s.Cycles()
	assert.True(t, cycles >= 2, "only %d cycles", cycles)
	assert.Equal(t, uint64(atomic.LoadInt32(&runner.runs)), cycles, "cycle count mismatch")
	assert.Equal(t, cycles, s.Count(mine.Rejected), "outcome count mismatch")
	assert.Equal(t, uint64(0), s.Count(mine.Accepted), "unexpected accepted count")
}

func TestSchedulerLongInterval(t *testing.T) {
	runner := &countingRunner{outcome: mine.Accepted}
	s := mine.NewScheduler(logger.New(category), runner, time.Hour)

	p := background.Start(background.Processes{s}, nil)

	deadline := time.Now().Add(5 * time.Second)
	for s.Cycles() < 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	start := time.Now()
	p.Stop()
	assert.True(t, time.Since(start) < time.Second, "stop waited for interval")
	assert.Equal(t, uint64(1), s.Cycles(), "wrong cycle count")
	assert.Equal(t, uint64(1), s.Count(mine.Accepted), "wrong accepted count")
}

func TestSchedulerCancelsCycle(t *testing.T) {
	runner := &blockingRunner{started: make(chan struct{})}
	s := mine.NewScheduler(logger.New(category), runner, 10*time.Millisecond)

	p := background.Start(background.Processes{s}, nil)

	select {
	case <-runner.started:
	case <-time.After(5 * time.Second):
		t.Fatal("cycle did not start")
	}

	p.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&runner.cancelled), "cycle context not cancelled")
	assert.True(t, s.Count(mine.Cancelled) >= 1, "wrong cancelled count")
}
