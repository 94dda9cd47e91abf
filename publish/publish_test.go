// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hashminer/background"
	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/publish"
)

func testBlock(t *testing.T) *blockrecord.Block {
	header := &blockrecord.Header{
		Index:        5,
		Transactions: blockrecord.Transactions{},
		Timestamp:    1700000000,
		PreviousHash: "abc123",
		Nonce:        0,
	}
	digest, err := header.Digest()
	require.NoError(t, err, "digest")
	return header.Complete(0, digest)
}

func TestNoAddresses(t *testing.T) {
	pub, err := publish.New(&publish.Configuration{}, logger.New(category))
	assert.NoError(t, err, "unexpected error")
	assert.Nil(t, pub, "publisher created without addresses")
}

func TestNilLogger(t *testing.T) {
	_, err := publish.New(&publish.Configuration{Broadcast: []string{"inproc://nil-logger"}}, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong error")
}

func TestBadAddress(t *testing.T) {
	_, err := publish.New(&publish.Configuration{Broadcast: []string{"no-such-host-here:xyz"}}, logger.New(category))
	assert.Error(t, err, "bind did not fail")
}

func TestPublish(t *testing.T) {
	const address = "inproc://publish-test"

	pub, err := publish.New(&publish.Configuration{Broadcast: []string{address}}, logger.New(category))
	require.NoError(t, err, "new publisher")
	require.NotNil(t, pub, "nil publisher")

	p := background.Start(background.Processes{pub}, nil)
	defer p.Stop()

	sub, err := zmq.NewSocket(zmq.SUB)
	require.NoError(t, err, "sub socket")
	defer sub.Close()
	sub.SetLinger(0)
	sub.SetRcvtimeo(50 * time.Millisecond)
	require.NoError(t, sub.Connect(address), "connect")
	require.NoError(t, sub.SetSubscribe(publish.TopicRejected), "subscribe")

	block := testBlock(t)

	// subscriptions propagate asynchronously so repeat until one arrives
	var frames [][]byte
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		pub.Announce(block, true)
		pub.Announce(block, false)
		frames, err = sub.RecvMessageBytes(0)
		if nil == err {
			break
		}
	}
	require.NoError(t, err, "nothing received")
	require.Equal(t, 2, len(frames), "wrong frame count")

	assert.Equal(t, publish.TopicRejected, string(frames[0]), "wrong topic")

	var received blockrecord.Block
	require.NoError(t, json.Unmarshal(frames[1], &received), "decode block")
	assert.Equal(t, block.Index, received.Index, "wrong index")
	assert.Equal(t, block.Hash, received.Hash, "wrong hash")
	assert.Equal(t, block.PreviousHash, received.PreviousHash, "wrong previous hash")
}
