// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/proof"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := getDifficulty(c.Int("difficulty"))
	if nil != err {
		return err
	}

	var block blockrecord.Block
	if err := decodeInput(m, c.String("file"), &block); nil != err {
		return err
	}

	if block.Hash.IsZero() {
		return errors.Wrap(fault.ErrInvalidDigest, "block has no hash")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "verifying block: %d  hash: %s  difficulty: %d\n", block.Index, block.Hash, target)
	}

	if err := proof.Verify(&block, target); nil != err {
		return err
	}

	out := struct {
		Index uint64 `json:"index"`
		Hash  string `json:"hash"`
		Valid bool   `json:"valid"`
	}{
		Index: block.Index,
		Hash:  block.Hash.String(),
		Valid: true,
	}
	return printJson(m.w, out)
}
