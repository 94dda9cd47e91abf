// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/proof"
)

func runMine(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := getDifficulty(c.Int("difficulty"))
	if nil != err {
		return err
	}

	var header blockrecord.Header
	if err := decodeInput(m, c.String("file"), &header); nil != err {
		return err
	}
	if nil == header.Transactions {
		header.Transactions = blockrecord.Transactions{}
	}

	ctx := context.Background()
	if timeout := c.Int("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mining block: %d  difficulty: %d  expected attempts: %.0f\n", header.Index, target, target.ExpectedAttempts())
	}

	result, err := proof.Search(ctx, &header, target)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "search %s after: %d attempts in: %s  rate: %.0f H/s\n", result.Status, result.Attempts, result.Duration, result.Rate())
	}

	if proof.Cancelled == result.Status {
		return fault.ErrSearchCancelled
	}

	return printJson(m.w, header.Complete(result.Nonce, result.Digest))
}
