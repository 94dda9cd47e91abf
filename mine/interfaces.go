// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"context"

	"github.com/bitmark-inc/hashminer/blockrecord"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_mine.go -package=mocks

// ChainReader - source of the chain tip and pending transactions
type ChainReader interface {
	GetChain(ctx context.Context) ([]blockrecord.ChainTip, error)
	GetPendingTransactions(ctx context.Context) (blockrecord.Transactions, error)
}

// Proposer - destination of mined blocks
type Proposer interface {
	ProposeBlock(ctx context.Context, block *blockrecord.Block) error
}

// Announcer - optional observer of every mined block
type Announcer interface {
	Announce(block *blockrecord.Block, accepted bool)
}
