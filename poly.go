// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "robpike.io/poly"

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"robpike.io/poly/config"
	"robpike.io/poly/demo"
	"robpike.io/poly/exec"
	"robpike.io/poly/parse"
	"robpike.io/poly/run"
)

var (
	configFile = flag.String("config", "", "YAML file holding prompt and debug settings")
	debugFlag  = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	doDemo     = flag.Bool("demo", false, "run the demo script")
	prompt     = flag.String("prompt", "", "command `prompt`, printed when input is a terminal")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("poly: ")

	flag.Usage = usage
	flag.Parse()

	if *configFile != "" {
		fd, err := os.Open(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		err = conf.Load(fd)
		fd.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	if isFlagPassed("prompt") || *configFile == "" {
		conf.SetPrompt(*prompt)
	}
	if *debugFlag != "" {
		for _, debug := range strings.Split(*debugFlag, ",") {
			if !conf.SetDebug(debug, true) {
				fmt.Fprintf(os.Stderr, "poly: unknown debug flag %q\n", debug)
				usage()
			}
		}
	}

	context := exec.NewContext(&conf)

	if *doDemo {
		runDemo(context)
		return
	}

	var in io.Reader = os.Stdin
	interactive := isTTY(os.Stdin.Fd())
	switch flag.NArg() {
	case 0:
	case 1:
		fd, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer fd.Close()
		in, interactive = fd, false
	default:
		usage()
	}

	if err := run.Run(parse.NewParser(in), context, interactive); err != nil {
		log.Fatal(err)
	}
}

// runDemo feeds the demo script to the interpreter through a pipe,
// a line at a time as the user hits return.
func runDemo(context *exec.Context) {
	reader, writer := io.Pipe()
	go func() {
		err := demo.Run(os.Stdin, writer, os.Stdout)
		writer.CloseWithError(err)
	}()
	if err := run.Run(parse.NewParser(reader), context, false); err != nil {
		log.Fatal(err)
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: poly [options] [file]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Debug names: %s\n", strings.Join(config.DebugFlags, ", "))
	os.Exit(2)
}
