// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mine - mining cycle and its scheduler
//
// A cycle reads the chain tip and the pending transactions, builds a
// candidate block on top of the tip, searches for a nonce and proposes
// the result.  The scheduler repeats cycles at a fixed interval until
// shutdown.
package mine
