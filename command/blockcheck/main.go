// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashminer/difficulty"
	hashminerVersion "github.com/bitmark-inc/hashminer/version"
)

type metadata struct {
	verbose bool
	r       io.Reader
	w       io.Writer
	e       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = hashminerVersion.Version

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "blockcheck"
	app.Usage = "hash, verify and mine blocks offline"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	fileFlag := cli.StringFlag{
		Name:  "file, f",
		Value: "-",
		Usage: " block JSON `FILE` (- for stdin)",
	}
	difficultyFlag := cli.IntFlag{
		Name:  "difficulty, d",
		Value: difficulty.Default,
		Usage: " number of leading zero hex digits `ZEROS`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "hash",
			Usage:     "print the canonical form and hash of a block",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag, difficultyFlag},
			Action:    runHash,
		},
		{
			Name:      "verify",
			Usage:     "check that a block hash matches its fields and difficulty",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag, difficultyFlag},
			Action:    runVerify,
		},
		{
			Name:      "mine",
			Usage:     "search for a nonce for a block header",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fileFlag,
				difficultyFlag,
				cli.IntFlag{
					Name:  "timeout, t",
					Value: 0,
					Usage: " give up after `SECONDS` (0 = never)",
				},
			},
			Action: runMine,
		},
		{
			Name:  "version",
			Usage: "display blockcheck version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				verbose: c.GlobalBool("verbose"),
				r:       r,
				w:       w,
				e:       e,
			},
		}
		return nil
	}

	return app
}
