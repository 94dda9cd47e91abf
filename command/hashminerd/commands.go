// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/hashminer/configuration"
)

// setup command handler
//
// returns true if the command was handled and the program should
// exit, false to continue and start mining
func processSetupCommand(program string, arguments []string, masterConfiguration *configuration.Configuration) bool {

	command := "start"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "configuration", "config":
		buffer, err := json.MarshalIndent(masterConfiguration, "", "  ")
		if nil != err {
			exitwithstatus.Message("%s: configuration encode error: %s", program, err)
		}
		fmt.Printf("%s\n", buffer)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  configuration              (config) - print the effective configuration as JSON\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("environment variables override the configuration file:\n\n")
		for _, name := range []string{
			configuration.EnvAPIURL,
			configuration.EnvBlockTime,
			configuration.EnvDifficulty,
			configuration.EnvRequestTimeout,
		} {
			fmt.Printf("  %s\n", name)
		}
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}
