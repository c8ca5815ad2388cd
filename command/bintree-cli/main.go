// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bintree-cli - load key value text into a tree and inspect it
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/fault"
)

type metadata struct {
	tree    commands
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bintree-cli"
	app.Usage = "load \"key value\" lines into a binary search tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "input, i",
			Value: "-",
			Usage: " read key value lines from `FILE`, - for stdin",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " keys are integers",
		},
		cli.BoolFlag{
			Name:  "balance, b",
			Usage: " balance the tree after loading",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "print",
			Usage:  "print (key:value) pairs in key order",
			Action: runPrint,
		},
		{
			Name:  "diagram",
			Usage: "draw the tree, right sub-trees above their parents",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "keys-only, k",
					Usage: " do not show values",
				},
			},
			Action: runDiagram,
		},
		{
			Name:      "find",
			Usage:     "look up one or more keys",
			ArgsUsage: "KEY...",
			Action:    runFind,
		},
		{
			Name:   "levels",
			Usage:  "list the keys at each depth",
			Action: runLevels,
		},
		{
			Name:   "stats",
			Usage:  "count, height and balance as JSON",
			Action: runStats,
		},
		{
			Name:   "version",
			Usage:  "display bintree-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// commands that do not need any input
		switch c.Args().Get(0) {
		case "", "help", "h", "version":
			return nil
		}

		r := stdin
		file := c.GlobalString("input")
		if "-" != file {
			if verbose {
				fmt.Fprintf(e, "reading file: %s\n", file)
			}
			f, err := os.Open(file)
			if nil != err {
				return err
			}
			defer f.Close()
			r = f
		}

		var tree commands
		var err error
		if c.GlobalBool("numeric") {
			tree, err = load[int](r, parseInteger, e)
		} else {
			tree, err = load[string](r, parseString, e)
		}
		if nil != err {
			return err
		}

		if c.GlobalBool("balance") {
			if verbose {
				fmt.Fprintf(e, "balancing\n")
			}
			tree.balance()
		}

		c.App.Metadata["config"] = &metadata{
			tree:    tree,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return m.tree.print(m.w)
}

func runDiagram(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return m.tree.diagram(m.w, !c.Bool("keys-only"))
}

func runFind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if 0 == len(c.Args()) {
		return fault.ErrMissingArguments
	}
	return m.tree.find(m.w, c.Args())
}

func runLevels(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return m.tree.levels(m.w)
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return m.tree.stats(m.w)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
