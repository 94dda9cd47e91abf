// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashminer/blockrecord"
)

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := getDifficulty(c.Int("difficulty"))
	if nil != err {
		return err
	}

	var header blockrecord.Header
	if err := decodeInput(m, c.String("file"), &header); nil != err {
		return err
	}

	packed, err := header.Pack()
	if nil != err {
		return err
	}
	digest, err := header.Digest()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "canonical: %s\n", packed)
	}

	hash := digest.String()
	out := struct {
		Canonical string `json:"canonical"`
		Hash      string `json:"hash"`
		Zeros     int    `json:"leading_zeros"`
		Target    string `json:"target_prefix"`
		Meets     bool   `json:"meets_difficulty"`
	}{
		Canonical: string(packed),
		Hash:      hash,
		Zeros:     digest.LeadingZeros(),
		Target:    target.Prefix(),
		Meets:     target.IsMetByHex(hash),
	}
	return printJson(m.w, out)
}
