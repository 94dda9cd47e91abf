// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived processes until told to stop
package background

import (
	"sync"
)

// Process - a long lived task; Run must return soon after shutdown is
// closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	finished []chan struct{}
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		finished := make(chan struct{})
		register.finished[i] = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes and wait for each to return
//
// safe to call more than once
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	for _, finished := range t.finished {
		<-finished
	}
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for _, finished := range t.finished {
			<-finished
		}
		close(done)
	}()
	return done
}
