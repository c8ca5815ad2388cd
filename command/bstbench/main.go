// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstbench - compare lookups in degenerate, balanced and random
// trees against hash based containers
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/background"
	"github.com/bitmark-inc/bintree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

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
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// optional size argument overrides the configuration
	if len(arguments) > 0 {
		size, err := strconv.Atoi(arguments[0])
		if nil != err || size < 1 {
			usage(program, fmt.Sprintf("invalid size: %q", arguments[0]))
			exitwithstatus.Message("%s: %s", program, fault.ErrInvalidSize)
		}
		theConfiguration.Benchmark.Size = size
	}

	if _, err := theConfiguration.Benchmark.Validate(); nil != err {
		exitwithstatus.Message("%s: benchmark configuration error: %s", program, err)
	}

	quiet := len(options["quiet"]) > 0
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// stop the benchmark on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	processes := background.Processes{}

	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memstats{delay: statsDelay})
	}

	var watcher *fileWatcher
	if len(options["watch"]) > 0 {
		watcher, err = newFileWatcher(configurationFile, logger.New("watcher"))
		if nil != err {
			log.Criticalf("watcher error: %s", err)
			exitwithstatus.Message("%s: watch: %q  error: %s", program, configurationFile, err)
		}
		processes = append(processes, watcher)
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	var console io.Writer = os.Stdout
	if quiet {
		console = nil
	}

	runAndLog(ctx, log, theConfiguration, console)

	if nil == watcher {
		return
	}

	if !quiet {
		fmt.Printf("\nwaiting for changes to: %q\n", configurationFile)
	}

	// re-run whenever the configuration file is written
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down…")
			if !quiet {
				fmt.Printf("\nshutting down…\n")
			}
			return

		case <-watcher.remove:
			log.Warn("configuration file removed, stopping")
			return

		case <-watcher.change:
			// editors often write a file in several steps
			time.Sleep(100 * time.Millisecond)

			updated, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("failed to read configuration from: %q  error: %s", configurationFile, err)
				continue
			}
			updated.Logging = theConfiguration.Logging
			log.Infof("configuration changed: %v", updated.Benchmark)
			runAndLog(ctx, log, updated, console)
		}
	}
}

func runAndLog(ctx context.Context, log *logger.L, options *Configuration, console io.Writer) {
	start := time.Now()
	results, err := runBenchmark(ctx, options, console)
	if nil != err {
		log.Errorf("benchmark error: %s", err)
		if nil != console {
			fmt.Fprintf(console, "benchmark error: %s\n", err)
		}
		return
	}
	log.Infof("completed: %d workloads in: %v", len(results), time.Since(start))
}
