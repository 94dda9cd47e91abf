// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
)

// message topics
const (
	TopicAccepted = "block"
	TopicRejected = "rejected"
)

// announcements waiting to be sent; further blocks are dropped when full
const queueSize = 16

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

type item struct {
	topic string
	data  []byte
}

// Publisher - background process owning the PUB socket
type Publisher struct {
	log    *logger.L
	socket *zmq.Socket
	queue  chan item
}

// New - bind a PUB socket to every broadcast address
//
// returns nil, nil if there are no addresses
func New(configuration *Configuration, log *logger.L) (*Publisher, error) {

	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if 0 == len(configuration.Broadcast) {
		log.Info("no broadcast addresses: publishing disabled")
		return nil, nil
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(0)

	for i, address := range configuration.Broadcast {
		bindTo := endpoint(address)
		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			socket.Close()
			return nil, errors.Wrapf(err, "bind: %q", bindTo)
		}
		log.Infof("bind[%d]: %q", i, bindTo)
	}

	return &Publisher{
		log:    log,
		socket: socket,
		queue:  make(chan item, queueSize),
	}, nil
}

// plain host:port means tcp
func endpoint(address string) string {
	if strings.Contains(address, "://") {
		return address
	}
	return "tcp://" + address
}

// Announce - queue a block for broadcasting, never blocks
func (pub *Publisher) Announce(block *blockrecord.Block, accepted bool) {

	data, err := json.Marshal(block)
	if nil != err {
		pub.log.Errorf("encode block: %d  error: %s", block.Index, err)
		return
	}

	topic := TopicRejected
	if accepted {
		topic = TopicAccepted
	}

	select {
	case pub.queue <- item{topic: topic, data: data}:
	default:
		pub.log.Warnf("queue full: dropped block: %d", block.Index)
	}
}

// Run - send queued blocks until shutdown
//
// the socket is only used from this goroutine
func (pub *Publisher) Run(args interface{}, shutdown <-chan struct{}) {

	log := pub.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case i := <-pub.queue:
			log.Debugf("sending: %s  data: %s", i.topic, i.data)
			if err := pub.send(&i); nil != err {
				log.Errorf("send: %s  error: %s", i.topic, err)
			}
		}
	}

	pub.socket.Close()
	log.Info("stopped")
}

func (pub *Publisher) send(i *item) error {
	_, err := pub.socket.Send(i.topic, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		return err
	}
	_, err = pub.socket.SendBytes(i.data, zmq.DONTWAIT)
	return err
}
