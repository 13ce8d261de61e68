// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings for a poly run.
package config // import "robpike.io/poly/config"

import (
	"io"
	"os"
	"sort"
	"time"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"cpu",   // report CPU time used at end of run
	"trace", // echo each command and the resulting stack depth
}

// A Config holds the output streams and options for a run.
// The zero value writes to the standard output and error streams.
type Config struct {
	prompt    string
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
	cpuTime   time.Duration
}

// Output returns the writer for command results.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer for command results.
func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for diagnostics.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer for diagnostics.
func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the state of the named debug flag.
// It reports whether the name is one of DebugFlags.
func (c *Config) SetDebug(s string, state bool) bool {
	if !isDebugFlag(s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

// DebugSet returns the names of the debug flags that are set, sorted.
func (c *Config) DebugSet() []string {
	var names []string
	for name, on := range c.debug {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func isDebugFlag(s string) bool {
	for _, f := range DebugFlags {
		if f == s {
			return true
		}
	}
	return false
}

// Prompt returns the interactive prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

// SetPrompt sets the interactive prompt.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// CPUTime returns the CPU time recorded by the last run.
func (c *Config) CPUTime() time.Duration {
	return c.cpuTime
}

// SetCPUTime records the CPU time used by a run.
func (c *Config) SetCPUTime(d time.Duration) {
	c.cpuTime = d
}
