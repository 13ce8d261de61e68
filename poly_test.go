// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"robpike.io/poly/config"
	"robpike.io/poly/exec"
	"robpike.io/poly/run"
)

const verbose = false

// Each testdata/*.poly file holds examples. An example is a run of input
// lines followed by the tab-indented output they produce, with standard
// output and diagnostics interleaved in order. Each example starts with
// an empty stack, so line numbers in diagnostics count from its first
// input line.
func TestAll(t *testing.T) {
	names, err := filepath.Glob(filepath.Join("testdata", "*.poly"))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no test files")
	}
	for _, path := range names {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(string(data), "\n")
			// Will have a trailing empty string.
			if len(lines) > 0 && lines[len(lines)-1] == "" {
				lines = lines[:len(lines)-1]
			}
			lineNum := 1
			errCount := 0
			for len(lines) > 0 {
				input, output, length := getText(lines)
				if input == nil {
					break
				}
				if verbose {
					fmt.Printf("%s:%d: %s\n", path, lineNum, input)
				}
				if !runTest(t, path, lineNum, input, output) {
					errCount++
					if errCount > 3 {
						t.Fatal("too many errors")
					}
				}
				lines = lines[length:]
				lineNum += length
			}
		})
	}
}

func runTest(t *testing.T, name string, lineNum int, input, output []string) bool {
	in := strings.Join(input, "\n")
	out := new(bytes.Buffer)
	run.Poly(exec.NewContext(new(config.Config)), in, out, out)
	result := strings.Split(out.String(), "\n")
	// Split leaves an empty trailing line.
	if len(result) > 0 && result[len(result)-1] == "" {
		result = result[:len(result)-1]
	}
	if diff := cmp.Diff(output, result, cmp.Comparer(func(a, b string) bool {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	})); diff != "" {
		t.Errorf("\n%s:%d:\n\t%s\n(-want +got):\n%s",
			name, lineNum,
			strings.Join(input, "\n\t"),
			diff)
		return false
	}
	return true
}

// getText returns the next example in lines and the number of lines it spans.
func getText(lines []string) (input, output []string, length int) {
	// Skip blank and initial comment lines.
	for _, line := range lines {
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			break
		}
		length++
	}

	// Input ends at tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(line, "\t") {
			break
		}
		input = append(input, line)
		length++
	}

	// Output ends at non-blank, non-tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if line != "" && !strings.HasPrefix(line, "\t") {
			break
		}
		output = append(output, strings.TrimPrefix(line, "\t"))
		length++
	}
	for len(output) > 0 && output[len(output)-1] == "" {
		output = output[:len(output)-1]
	}

	return // Will return nil if no more tests exist.
}
