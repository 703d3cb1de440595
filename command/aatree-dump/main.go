// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aatree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// an item ordered by its string value
type stringItem string

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringItem)))
}

func (s stringItem) String() string {
	return string(s)
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "erase", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--erase=ITEM]… [item…]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	logDirectory := "."
	if len(options["log-directory"]) > 0 {
		logDirectory = options["log-directory"][0]
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "aatree-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()
	log := logger.New("aatree-dump")

	tree := aatree.New()

	add := func(s string) {
		if tree.Insert(stringItem(s)) {
			log.Infof("add: %q", s)
		} else {
			log.Infof("duplicate: %q", s)
		}
	}

	// items come from the command line, or one per line from stdin
	if len(arguments) > 0 {
		for _, s := range arguments {
			add(s)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			s := strings.TrimSpace(scanner.Text())
			if "" != s {
				add(s)
			}
		}
		if err := scanner.Err(); nil != err {
			exitwithstatus.Message("%s: read error: %s", program, err)
		}
	}

	for _, s := range options["erase"] {
		if tree.Delete(stringItem(s)) {
			log.Infof("erase: %q", s)
		} else {
			log.Warnf("erase: %q is not in the set", s)
		}
	}

	if err := tree.CheckInvariants(); nil != err {
		exitwithstatus.Message("%s: corrupt tree: %s", program, err)
	}

	fmt.Printf("items: %d\n", tree.Count())
	if !tree.IsEmpty() {
		fmt.Printf("smallest: %v\n", tree.First().Item())
		fmt.Printf("largest: %v\n", tree.Last().Item())
	}

	if !quiet {
		fmt.Printf("traversal:\n")
		for it := tree.Begin(); !it.IsEnd(); it.Next() {
			fmt.Printf("  %v\n", it.Item())
		}

		fmt.Printf("shape:\n")
		depth := tree.Print(verbose)
		log.Infof("depth: %d", depth)
	}
}
