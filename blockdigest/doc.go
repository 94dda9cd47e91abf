// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - implementation block hashing
//
// a SHA-256 digest over the canonical packing of a block, printed as
// lowercase hexadecimal in natural byte order
package blockdigest
