// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/hashminer/blockdigest"
)

// NonceType - the proof-of-work iteration variable
type NonceType uint64

// Transactions - opaque transaction records, passed through unmodified
type Transactions []json.RawMessage

// MarshalJSON - an empty list is always "[]", never "null"
func (txs Transactions) MarshalJSON() ([]byte, error) {
	if 0 == len(txs) {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(txs))
}

// ChainTip - the fields of the last block of the remote chain needed
// to build its successor
type ChainTip struct {
	Index uint64 `json:"index"`
	Hash  string `json:"hash"`
}

// Header - the hashed fields of a block
type Header struct {
	Index        uint64       `json:"index"`
	Transactions Transactions `json:"transactions"`
	Timestamp    int64        `json:"timestamp"`
	PreviousHash string       `json:"previous_hash"`
	Nonce        NonceType    `json:"nonce"`
}

// Block - a header with the digest that satisfied the difficulty
type Block struct {
	Header
	Hash blockdigest.Digest `json:"hash"`
}

// NewHeader - candidate fields for the successor of tip
//
// the nonce starts at zero
func NewHeader(tip ChainTip, transactions Transactions, now time.Time) *Header {
	if nil == transactions {
		transactions = Transactions{}
	}
	return &Header{
		Index:        tip.Index + 1,
		Transactions: transactions,
		Timestamp:    Milliseconds(now),
		PreviousHash: tip.Hash,
		Nonce:        0,
	}
}

// Milliseconds - the timestamp encoding used by the packing
func Milliseconds(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

// Time - decode the timestamp field
func (header *Header) Time() time.Time {
	return time.Unix(0, header.Timestamp*int64(time.Millisecond))
}

// Pack - the canonical serialization of the header
func (header *Header) Pack() ([]byte, error) {
	t, err := header.Template()
	if nil != err {
		return nil, err
	}
	return t.Pack(header.Nonce, nil), nil
}

// Digest - hash of the canonical serialization
func (header *Header) Digest() (blockdigest.Digest, error) {
	packed, err := header.Pack()
	if nil != err {
		return blockdigest.Digest{}, err
	}
	return blockdigest.NewDigest(packed), nil
}

// Complete - fix the nonce and attach the digest that was found for it
func (header *Header) Complete(nonce NonceType, digest blockdigest.Digest) *Block {
	h := *header
	h.Nonce = nonce
	return &Block{
		Header: h,
		Hash:   digest,
	}
}
