// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package remote - HTTP client for the blockchain service
//
// endpoints used:
//
//   GET  /chain                 {"chain": [{"index": N, "hash": "…", …}, …]}
//   GET  /pending_transactions  [ … ]
//   POST /propose_block         block JSON, 201 on acceptance
//
// every request is paced by a token bucket and bounded by a timeout
package remote
