// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// environment variables that override file values
const (
	EnvAPIURL         = "BLOCKCHAIN_API_URL"
	EnvBlockTime      = "BLOCK_TIME"
	EnvDifficulty     = "MINING_DIFFICULTY"
	EnvRequestTimeout = "REQUEST_TIMEOUT"
)

type lookupFunc func(key string) (string, bool)

func (c *Configuration) applyEnvironment(lookup lookupFunc) error {

	if s, ok := lookup(EnvAPIURL); ok && "" != strings.TrimSpace(s) {
		c.API.URL = strings.TrimSpace(s)
	}

	integers := []struct {
		name  string
		value *int
	}{
		{EnvBlockTime, &c.Mining.Interval},
		{EnvDifficulty, &c.Mining.Difficulty},
		{EnvRequestTimeout, &c.API.Timeout},
	}
	for _, item := range integers {
		s, ok := lookup(item.name)
		if !ok || "" == strings.TrimSpace(s) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if nil != err {
			return errors.Wrapf(err, "environment: %s=%q", item.name, s)
		}
		*item.value = n
	}
	return nil
}
