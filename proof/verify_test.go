// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashminer/blockdigest"
	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/proof"
)

func minedBlock(t *testing.T) *blockrecord.Block {
	digest, err := blockdigest.FromString("00421eb3324b83e5c4b3ddcce933bc24bd0ffb707015542fe1b1dde74633b930")
	if nil != err {
		t.Fatalf("hex to digest error: %s", err)
	}
	return scenarioHeader().Complete(97, digest)
}

func TestVerify(t *testing.T) {
	block := minedBlock(t)
	assert.Nil(t, proof.Verify(block, mustDifficulty(t, 2)), "valid block rejected")
	assert.Nil(t, proof.Verify(block, mustDifficulty(t, 0)), "valid block rejected at zero")
}

func TestVerifyDifficultyNotMet(t *testing.T) {
	block := minedBlock(t)
	assert.Equal(t, fault.ErrDifficultyNotMet, proof.Verify(block, mustDifficulty(t, 3)), "wrong error")
}

func TestVerifyTampered(t *testing.T) {
	tamper := []func(b *blockrecord.Block){
		func(b *blockrecord.Block) { b.Index += 1 },
		func(b *blockrecord.Block) { b.Nonce += 1 },
		func(b *blockrecord.Block) { b.Timestamp -= 1 },
		func(b *blockrecord.Block) { b.PreviousHash = "abc12" },
		func(b *blockrecord.Block) { b.Transactions = blockrecord.Transactions{json.RawMessage(`{}`)} },
		func(b *blockrecord.Block) { b.Hash[31] ^= 0x01 },
	}

	for i, modify := range tamper {
		block := minedBlock(t)
		modify(block)
		assert.Equal(t, fault.ErrHashMismatch, proof.Verify(block, mustDifficulty(t, 2)), "%d: tamper not detected", i)
	}
}
