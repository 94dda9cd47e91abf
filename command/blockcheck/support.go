// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/hashminer/difficulty"
)

// read the whole of a file, "-" is standard input
func readInput(m *metadata, fileName string) ([]byte, error) {
	if "" == fileName || "-" == fileName {
		return ioutil.ReadAll(m.r)
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, errors.Wrapf(err, "read: %q", fileName)
	}
	return data, nil
}

func decodeInput(m *metadata, fileName string, v interface{}) error {
	data, err := readInput(m, fileName)
	if nil != err {
		return err
	}
	if err := json.Unmarshal(data, v); nil != err {
		return errors.Wrap(err, "block JSON")
	}
	return nil
}

func getDifficulty(zeros int) (difficulty.Difficulty, error) {
	d, err := difficulty.New(zeros)
	if nil != err {
		return 0, errors.Wrapf(err, "difficulty: %d", zeros)
	}
	return d, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
