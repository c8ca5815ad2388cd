// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/bintree/benchmark"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "workloads", "w":
		fmt.Printf("%s\n", strings.Join(benchmark.WorkloadNames(), "\n"))

	case "help", "h", "?":
		usage(program, "")

	default:
		return false
	}

	return true
}

// configuration command handler
//
// commands that only inspect the configuration file
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to the benchmark run
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func usage(program string, message string) {
	if "" != message {
		fmt.Printf("error: %s\n", message)
	}
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--memory-stats] [--watch] --config-file=FILE [[command|size] arguments...]\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version sting\n\n")
	fmt.Printf("  workloads                  (w)      - list the available workloads\n\n")
	fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")
	fmt.Printf("  SIZE                                - run the benchmark with SIZE keys\n")
	fmt.Printf("                                        instead of the configured size\n")
	fmt.Printf("\n")
}
