// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hashminer/blockdigest"
	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
)

// fixtures cross-checked with a reference implementation
const (
	emptyPacked = `{"index": 5, "nonce": 0, "previous_hash": "abc123", "timestamp": 1700000000, "transactions": []}`
	emptyDigest = "f567a58118656275e796a347847d4f7b8ee0c42f2c61df861b129fd6da96e4b1"

	nestedTransaction = `{"to":"bob","from":"alice","amount":10,"memo":"café ☕ 𝄞\u007f\n\"\/","meta":{"z":1,"a":[true,null,2.5]}}`
	nestedPacked      = `{"index": 5, "nonce": 7, "previous_hash": "abc123", "timestamp": 1700000000, "transactions": [{"amount": 10, "from": "alice", "memo": "caf\u00e9 \u2615 \ud834\udd1e\u007f\n\"/", "meta": {"a": [true, null, 2.5], "z": 1}, "to": "bob"}]}`
	nestedDigest      = "e6a63da50a85a295d9b8ce5a3d837e7c0ae130f74bb9794b4c47fc53b3184cf5"
)

func emptyHeader() *blockrecord.Header {
	return &blockrecord.Header{
		Index:        5,
		Transactions: blockrecord.Transactions{},
		Timestamp:    1700000000,
		PreviousHash: "abc123",
		Nonce:        0,
	}
}

func TestPackEmptyTransactions(t *testing.T) {
	h := emptyHeader()

	packed, err := h.Pack()
	require.Nil(t, err, "pack error")
	assert.Equal(t, emptyPacked, string(packed), "wrong packing")

	digest, err := h.Digest()
	require.Nil(t, err, "digest error")
	assert.Equal(t, emptyDigest, digest.String(), "wrong digest")

	// nil and empty are the same list
	h.Transactions = nil
	packed, err = h.Pack()
	require.Nil(t, err, "pack error")
	assert.Equal(t, emptyPacked, string(packed), "nil transactions packed differently")
}

func TestPackNestedTransaction(t *testing.T) {
	h := emptyHeader()
	h.Nonce = 7
	h.Transactions = blockrecord.Transactions{json.RawMessage(nestedTransaction)}

	packed, err := h.Pack()
	require.Nil(t, err, "pack error")
	assert.Equal(t, nestedPacked, string(packed), "wrong packing")

	digest, err := h.Digest()
	require.Nil(t, err, "digest error")
	assert.Equal(t, nestedDigest, digest.String(), "wrong digest")
}

func TestPackKeyOrderIndependent(t *testing.T) {
	a := emptyHeader()
	a.Transactions = blockrecord.Transactions{json.RawMessage(`{"a":1,"b":{"y":2,"x":3}}`)}
	b := emptyHeader()
	b.Transactions = blockrecord.Transactions{json.RawMessage(`{ "b" : { "x" : 3, "y" : 2 }, "a" : 1 }`)}

	da, err := a.Digest()
	require.Nil(t, err, "digest error")
	db, err := b.Digest()
	require.Nil(t, err, "digest error")
	assert.Equal(t, da, db, "member order changed the digest")
}

func TestPackInvalidTransaction(t *testing.T) {
	for _, raw := range []string{`{"a":`, `1 2`, ``} {
		h := emptyHeader()
		h.Transactions = blockrecord.Transactions{json.RawMessage(raw)}
		_, err := h.Pack()
		assert.True(t, fault.Is(err, fault.ErrInvalidTransaction), "accepted: %q  error: %v", raw, err)
	}
}

func TestDeterminism(t *testing.T) {
	h := emptyHeader()
	h.Transactions = blockrecord.Transactions{json.RawMessage(nestedTransaction)}

	first, err := h.Digest()
	require.Nil(t, err, "digest error")
	for i := 0; i < 100; i += 1 {
		d, err := h.Digest()
		require.Nil(t, err, "digest error")
		assert.Equal(t, first, d, "%d: digest changed", i)
	}
}

func TestFieldSensitivity(t *testing.T) {
	base := emptyHeader()
	base.Transactions = blockrecord.Transactions{json.RawMessage(`{"id":1}`)}

	variants := []func(h *blockrecord.Header){
		func(h *blockrecord.Header) {},
		func(h *blockrecord.Header) { h.Index += 1 },
		func(h *blockrecord.Header) { h.Transactions = blockrecord.Transactions{} },
		func(h *blockrecord.Header) { h.Transactions = blockrecord.Transactions{json.RawMessage(`{"id":2}`)} },
		func(h *blockrecord.Header) {
			h.Transactions = blockrecord.Transactions{json.RawMessage(`{"id":1}`), json.RawMessage(`{"id":1}`)}
		},
		func(h *blockrecord.Header) { h.Timestamp += 1 },
		func(h *blockrecord.Header) { h.PreviousHash = "abc124" },
		func(h *blockrecord.Header) { h.PreviousHash = "" },
		func(h *blockrecord.Header) { h.Nonce += 1 },
	}

	seen := make(map[blockdigest.Digest]int)
	for i, modify := range variants {
		h := *base
		modify(&h)
		d, err := h.Digest()
		require.Nil(t, err, "%d: digest error", i)
		if j, ok := seen[d]; ok {
			t.Errorf("variant %d collides with variant %d: %s", i, j, d)
		}
		seen[d] = i
	}
}

func TestTemplateMatchesPack(t *testing.T) {
	h := emptyHeader()
	h.Transactions = blockrecord.Transactions{json.RawMessage(nestedTransaction)}

	template, err := h.Template()
	require.Nil(t, err, "template error")

	buffer := make([]byte, 0, template.Size())
	for _, nonce := range []blockrecord.NonceType{0, 1, 9, 10, 99999, 1<<64 - 1} {
		h.Nonce = nonce
		expected, err := h.Pack()
		require.Nil(t, err, "pack error")
		buffer = template.Pack(nonce, buffer)
		assert.Equal(t, string(expected), string(buffer), "nonce: %d", nonce)
		assert.True(t, len(buffer) <= template.Size(), "size bound exceeded for nonce: %d", nonce)
	}
}

func TestNewHeader(t *testing.T) {
	tip := blockrecord.ChainTip{
		Index: 41,
		Hash:  "0000abcd",
	}
	now := time.Unix(1700000000, 123456789)

	h := blockrecord.NewHeader(tip, nil, now)
	assert.Equal(t, uint64(42), h.Index, "wrong index")
	assert.Equal(t, "0000abcd", h.PreviousHash, "wrong previous hash")
	assert.Equal(t, int64(1700000000123), h.Timestamp, "wrong timestamp")
	assert.Equal(t, blockrecord.NonceType(0), h.Nonce, "wrong nonce")
	assert.NotNil(t, h.Transactions, "nil transactions")
	assert.Equal(t, 0, len(h.Transactions), "transactions not empty")
	assert.Equal(t, int64(1700000000123), blockrecord.Milliseconds(h.Time()), "time round trip")
}

func TestBlockJSON(t *testing.T) {
	h := emptyHeader()
	digest, err := h.Digest()
	require.Nil(t, err, "digest error")

	block := h.Complete(0, digest)
	buffer, err := json.Marshal(block)
	require.Nil(t, err, "marshal error")

	expected := `{"index":5,"transactions":[],"timestamp":1700000000,"previous_hash":"abc123","nonce":0,"hash":"` + emptyDigest + `"}`
	assert.Equal(t, expected, string(buffer), "wrong block JSON")

	var back blockrecord.Block
	err = json.Unmarshal(buffer, &back)
	require.Nil(t, err, "unmarshal error")

	d, err := back.Digest()
	require.Nil(t, err, "digest error")
	assert.Equal(t, back.Hash, d, "decoded block does not rehash")
}

func TestComplete(t *testing.T) {
	h := emptyHeader()
	block := h.Complete(97, blockdigest.Digest{})
	assert.Equal(t, blockrecord.NonceType(97), block.Nonce, "nonce not set")
	assert.Equal(t, blockrecord.NonceType(0), h.Nonce, "source header modified")
}
