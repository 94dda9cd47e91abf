// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - proof-of-work search and verification
//
// The search tries nonces 0, 1, 2, … in order and returns the first
// one whose block digest meets the difficulty, so any party can
// confirm that no smaller nonce was skipped.
package proof
