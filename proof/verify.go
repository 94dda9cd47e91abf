// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/difficulty"
	"github.com/bitmark-inc/hashminer/fault"
)

// Verify - recompute a completed block's hash and check it against
// the target
func Verify(block *blockrecord.Block, target difficulty.Difficulty) error {
	digest, err := block.Header.Digest()
	if nil != err {
		return err
	}
	if digest != block.Hash {
		return fault.ErrHashMismatch
	}
	if !target.IsMetBy(digest) {
		return fault.ErrDifficultyNotMet
	}
	return nil
}
