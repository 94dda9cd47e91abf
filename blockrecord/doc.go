// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - candidate block structure and its canonical
// packing
//
// The packing is a JSON object with keys in ascending order:
//
//   {"index": N, "nonce": N, "previous_hash": "...", "timestamp": N, "transactions": [...]}
//
// separators are ", " and ": ", nested object keys are also sorted,
// strings escape all non-printable and non-ASCII characters as \uXXXX
// and the timestamp is integer milliseconds since the Unix epoch.
// This packing is what is hashed, so it must never change.
package blockrecord
