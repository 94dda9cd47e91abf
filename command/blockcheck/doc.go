// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Offline block tool
//
// Computes the canonical hash of a block, checks a block against a
// difficulty and mines a header without contacting any service.
// Input is block JSON read from a file or standard input.
package main
