// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Proof-of-work mining daemon
//
// This program repeatedly fetches the chain tip and pending
// transactions from a blockchain HTTP service, searches for a nonce
// whose SHA-256 block hash meets the configured difficulty and
// proposes the resulting block back to the service.
package main
