// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashminer/background"
	"github.com/bitmark-inc/hashminer/configuration"
	"github.com/bitmark-inc/hashminer/difficulty"
	"github.com/bitmark-inc/hashminer/mine"
	"github.com/bitmark-inc/hashminer/publish"
	"github.com/bitmark-inc/hashminer/remote"
	hashminerVersion "github.com/bitmark-inc/hashminer/version"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = hashminerVersion.Version

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// no file means defaults plus environment
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands need the configuration but must not start mining
	if processSetupCommand(program, arguments, masterConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	target, err := difficulty.New(masterConfiguration.Mining.Difficulty)
	if nil != err {
		log.Criticalf("difficulty: %d  error: %s", masterConfiguration.Mining.Difficulty, err)
		exitwithstatus.Message("%s: difficulty: %d  error: %s", program, masterConfiguration.Mining.Difficulty, err)
	}

	client, err := remote.New(&masterConfiguration.API, logger.New("remote"))
	if nil != err {
		log.Criticalf("remote setup error: %s", err)
		exitwithstatus.Message("%s: remote setup error: %s", program, err)
	}

	log.Infof("api: %q  difficulty: %d  interval: %s", masterConfiguration.API.URL, target, masterConfiguration.Interval())

	cycle := mine.NewCycle(logger.New("cycle"), target, client, client)

	processes := background.Processes{}

	publisher, err := publish.New(&masterConfiguration.Publish, logger.New("publish"))
	if nil != err {
		log.Criticalf("publish setup error: %s", err)
		exitwithstatus.Message("%s: publish setup error: %s", program, err)
	}
	if nil != publisher {
		cycle.SetAnnouncer(publisher)
		processes = append(processes, publisher)
	}

	if "" != configurationFile {
		watcher, err := configuration.NewWatcher(configurationFile, logger.New("watcher"))
		if nil != err {
			log.Warnf("configuration file will not be watched: %s", err)
		} else {
			processes = append(processes, watcher)
		}
	}

	scheduler := mine.NewScheduler(logger.New("scheduler"), cycle, masterConfiguration.Interval())
	processes = append(processes, scheduler)

	// start background processes
	log.Info("start background…")
	bg := background.Start(processes, nil)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down...\n")
	}

	bg.Stop()

	log.Infof("cycles: %d  accepted: %d  rejected: %d  failed: %d  aborted: %d  own tips seen: %d",
		scheduler.Cycles(),
		scheduler.Count(mine.Accepted),
		scheduler.Count(mine.Rejected),
		scheduler.Count(mine.Failed),
		scheduler.Count(mine.Aborted),
		cycle.OwnTips(),
	)
}
