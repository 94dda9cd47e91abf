// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/difficulty"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/proof"
)

// how long hashes of our proposals are remembered
const (
	submittedExpiry  = time.Hour
	submittedCleanup = 10 * time.Minute
)

// Outcome - how a cycle ended
type Outcome int

// possible outcomes
const (
	Aborted   Outcome = iota // chain tip not available
	Cancelled                // shutdown during the cycle
	Accepted                 // block proposed and accepted
	Rejected                 // block proposed and refused by the service
	Failed                   // block mined but could not be delivered
	outcomeCount
)

func (o Outcome) String() string {
	switch o {
	case Aborted:
		return "aborted"
	case Cancelled:
		return "cancelled"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Cycle - one attempt to extend the chain
type Cycle struct {
	ownTips   uint64 // first for 64 bit atomic alignment
	log       *logger.L
	target    difficulty.Difficulty
	chain     ChainReader
	proposer  Proposer
	announcer Announcer
	now       func() time.Time
	submitted *cache.Cache
	lastBlock *blockrecord.Block
}

// NewCycle - create a cycle using the given collaborators
func NewCycle(log *logger.L, target difficulty.Difficulty, chain ChainReader, proposer Proposer) *Cycle {
	return &Cycle{
		log:       log,
		target:    target,
		chain:     chain,
		proposer:  proposer,
		now:       time.Now,
		submitted: cache.New(submittedExpiry, submittedCleanup),
	}
}

// SetAnnouncer - receive every mined block
func (c *Cycle) SetAnnouncer(announcer Announcer) {
	c.announcer = announcer
}

// SetClock - replace the source of block timestamps
func (c *Cycle) SetClock(now func() time.Time) {
	c.now = now
}

// LastBlock - the most recently mined block, nil before the first
func (c *Cycle) LastBlock() *blockrecord.Block {
	return c.lastBlock
}

// OwnTips - number of cycles that found one of our accepted blocks at
// the chain tip
func (c *Cycle) OwnTips() uint64 {
	return atomic.LoadUint64(&c.ownTips)
}

// IsOwnBlock - true if hash belongs to a block this cycle proposed and
// the service accepted within the last hour
func (c *Cycle) IsOwnBlock(hash string) bool {
	_, ok := c.submitted.Get(hash)
	return ok
}

// Run - fetch, build, search and propose
func (c *Cycle) Run(ctx context.Context) Outcome {

	log := c.log

	chain, err := c.chain.GetChain(ctx)
	if nil != err {
		if nil != ctx.Err() {
			log.Infof("get chain cancelled: %s", err)
			return Cancelled
		}
		log.Errorf("get chain error: %s", err)
		return Aborted
	}
	if 0 == len(chain) {
		log.Errorf("get chain error: %s", fault.ErrEmptyChain)
		return Aborted
	}
	tip := chain[len(chain)-1]

	if c.IsOwnBlock(tip.Hash) {
		atomic.AddUint64(&c.ownTips, 1)
		log.Infof("chain tip: %d is our block: %s", tip.Index, tip.Hash)
	}

	// missing transactions must not stop block production
	transactions, err := c.chain.GetPendingTransactions(ctx)
	if nil != err {
		if nil != ctx.Err() {
			log.Infof("get pending transactions cancelled: %s", err)
			return Cancelled
		}
		log.Errorf("get pending transactions error: %s  continuing with none", err)
		transactions = blockrecord.Transactions{}
	}

	header := blockrecord.NewHeader(tip, transactions, c.now())

	log.Infof("mining block: %d  previous: %q  transactions: %d  difficulty: %d",
		header.Index, header.PreviousHash, len(header.Transactions), c.target)

	result, err := proof.Search(ctx, header, c.target)
	if nil != err {
		log.Errorf("proof search error: %s", err)
		return Aborted
	}

	log.Infof("search %s after: %d attempts in: %s  rate: %.0f H/s",
		result.Status, result.Attempts, result.Duration, result.Rate())

	if proof.Cancelled == result.Status {
		return Cancelled
	}

	block := header.Complete(result.Nonce, result.Digest)
	c.lastBlock = block
	log.Infof("block mined: %d  nonce: %d  hash: %s", block.Index, block.Nonce, block.Hash)

	outcome := Accepted
	err = c.proposer.ProposeBlock(ctx, block)
	if nil != err {
		if fault.Is(err, fault.ErrProposalRejected) {
			outcome = Rejected
		} else {
			outcome = Failed
		}
		log.Errorf("propose block: %d  hash: %s  error: %s", block.Index, block.Hash, err)
	} else {
		c.submitted.Set(block.Hash.String(), block.Index, cache.DefaultExpiration)
		log.Infof("proposed block: %d  hash: %s accepted", block.Index, block.Hash)
	}

	if nil != c.announcer {
		c.announcer.Announce(block, Accepted == outcome)
	}

	return outcome
}
