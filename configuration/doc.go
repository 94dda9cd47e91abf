// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - settings for the mining daemon
//
// values are taken in order from: built in defaults, an optional Lua
// configuration file, then environment variables.
//
// the Lua file must return a table; most of base Lua is available
// so getenv can be used to extract environment supplied items.
//
//   return {
//       data_directory = ".",
//       api = { url = "http://127.0.0.1:5000", timeout = 10 },
//       mining = { difficulty = 4, interval = 10 },
//       publish = { broadcast = { "127.0.0.1:2140" } },
//   }
package configuration
