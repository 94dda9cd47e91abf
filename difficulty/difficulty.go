// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - the proof-of-work target
//
// a block hash meets difficulty D when its hexadecimal form starts
// with D '0' characters
package difficulty

import (
	"math"
	"strings"

	"github.com/bitmark-inc/hashminer/blockdigest"
	"github.com/bitmark-inc/hashminer/fault"
)

// Default - leading zeros required when not configured
const Default = 4

// Maximum - every character of the digest
const Maximum = blockdigest.HexLength

// Difficulty - count of leading zero hex characters
type Difficulty int

// New - validated difficulty
func New(zeros int) (Difficulty, error) {
	if zeros < 0 || zeros > Maximum {
		return 0, fault.ErrInvalidDifficulty
	}
	return Difficulty(zeros), nil
}

// IsMetBy - true if the digest has enough leading zeros
func (d Difficulty) IsMetBy(digest blockdigest.Digest) bool {
	return digest.LeadingZeros() >= int(d)
}

// IsMetByHex - same test on a printed digest
func (d Difficulty) IsMetByHex(s string) bool {
	return strings.HasPrefix(s, d.Prefix())
}

// Prefix - the required start of a hex digest
func (d Difficulty) Prefix() string {
	return strings.Repeat("0", int(d))
}

// ExpectedAttempts - mean number of hashes to meet the target
func (d Difficulty) ExpectedAttempts() float64 {
	return math.Pow(16, float64(d))
}
