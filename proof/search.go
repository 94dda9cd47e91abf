// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"
	"time"

	"github.com/bitmark-inc/hashminer/blockdigest"
	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/difficulty"
)

// CheckInterval - attempts between cancellation checks
const CheckInterval = 4096

// Status - how a search ended
type Status int

// possible outcomes
const (
	Found Status = iota
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result - outcome of a search
//
// Nonce and Digest are only valid when Status is Found
type Result struct {
	Status   Status
	Nonce    blockrecord.NonceType
	Digest   blockdigest.Digest
	Attempts uint64
	Duration time.Duration
}

// Rate - hashes per second
func (r Result) Rate() float64 {
	seconds := r.Duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(r.Attempts) / seconds
}

// Search - find the smallest nonce whose digest meets the target
//
// the header nonce is ignored and not modified; the only error is an
// unpackable transaction
func Search(ctx context.Context, header *blockrecord.Header, target difficulty.Difficulty) (Result, error) {

	template, err := header.Template()
	if nil != err {
		return Result{}, err
	}

	done := ctx.Done()
	buffer := make([]byte, 0, template.Size())
	start := time.Now()

	attempts := uint64(0)
	for nonce := blockrecord.NonceType(0); ; nonce += 1 {

		if 0 != attempts && 0 == attempts%CheckInterval {
			select {
			case <-done:
				return Result{
					Status:   Cancelled,
					Attempts: attempts,
					Duration: time.Since(start),
				}, nil
			default:
			}
		}

		buffer = template.Pack(nonce, buffer)
		digest := blockdigest.NewDigest(buffer)
		attempts += 1

		if target.IsMetBy(digest) {
			return Result{
				Status:   Found,
				Nonce:    nonce,
				Digest:   digest,
				Attempts: attempts,
				Duration: time.Since(start),
			}, nil
		}
	}
}
