// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast mined blocks on a ZeroMQ PUB socket
//
// each message has two frames:
//
//   topic: "block" if the service accepted it, otherwise "rejected"
//   data:  the block as JSON
package publish
