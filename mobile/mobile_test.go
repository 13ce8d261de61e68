// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"io"
	"testing"
)

// The interpreter is tested elsewhere. These just test that the wrapper works.

func TestEval(t *testing.T) {
	var tests = []struct {
		input  string
		output string
	}{
		{"", ""},
		{"23\nPRINT", "23\n"},
		{"(1,2)+(3,0)\nDEG", "2\n"},
		{"ZERO\nIS_ZERO\nIS_COEFF", "1\n1\n"},
		{"(2,1)\n2\nCOMPOSE 1\nPRINT", "4\n"},
	}
	for _, test := range tests {
		Reset()
		out, err := Eval(test.input)
		if err != nil {
			t.Errorf("evaluating %q: %v", test.input, err)
			continue
		}
		if out != test.output {
			t.Errorf("%q: expected %q; got %q", test.input, test.output, out)
		}
	}
}

func TestEvalError(t *testing.T) {
	var tests = []struct {
		input string
		error string
	}{
		{"ADD", "ERROR 1 STACK UNDERFLOW\n"},
		{"1\n2\nPOP\nPOP\nPOP", "ERROR 5 STACK UNDERFLOW\n"},
		{"(1,", "ERROR 1 WRONG POLY\n"},
		{"print", "ERROR 1 WRONG COMMAND\n"},
		{"DEG_BY x\nAT y\nCOMPOSE z", "ERROR 1 DEG BY WRONG VARIABLE\nERROR 2 AT WRONG VALUE\nERROR 3 COMPOSE WRONG PARAMETER\n"},
	}
	for _, test := range tests {
		Reset()
		_, err := Eval(test.input)
		if err == nil {
			t.Errorf("evaluating %q: expected %q; got nothing", test.input, test.error)
			continue
		}
		if err.Error() != test.error {
			t.Errorf("%q: expected %q; got %q", test.input, test.error, err)
		}
	}
}

func TestStackPersists(t *testing.T) {
	Reset()
	if _, err := Eval("1\n2"); err != nil {
		t.Fatal(err)
	}
	out, err := Eval("ADD\nPRINT")
	if err != nil {
		t.Fatal(err)
	}
	if out != "3\n" {
		t.Errorf("expected %q; got %q", "3\n", out)
	}
	if Depth() != 1 {
		t.Errorf("expected depth 1; got %d", Depth())
	}
}

const demoText = `# This is a demo.
(1,1)
CLONE
MUL
PRINT
ADD
DEG
`

const demoOut = `(1,2)
2
`

const demoErr = "ERROR 1 STACK UNDERFLOW\n"

func TestDemo(t *testing.T) {
	demo := NewDemo(demoText)
	results := make([]byte, 0, 100)
	errors := make([]byte, 0, 100)
	for {
		result, err := demo.Next()
		if err == io.EOF {
			break
		}
		results = append(results, result...)
		if err != nil {
			errors = append(errors, err.Error()...)
		}
	}
	if demoOut != string(results) {
		t.Fatalf("expected %q; got %q", demoOut, results)
	}
	if demoErr != string(errors) {
		t.Fatalf("expected errors %q; got %q", demoErr, errors)
	}
}
