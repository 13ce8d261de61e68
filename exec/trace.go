// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
)

// trace reports the command and the stack depth after it ran,
// if the "trace" debug flag is set.
func (c *Context) trace(cmd Command, err error) {
	if !c.config.Debug("trace") {
		return
	}
	if err != nil {
		fmt.Fprintf(c.config.ErrOutput(), "\t•> %s: %s\n", cmd, err)
		return
	}
	fmt.Fprintf(c.config.ErrOutput(), "\t•> %s: depth %d\n", cmd, len(c.Stack))
}

// StackTrace writes the stack to the diagnostic output, top first.
// Long stacks are truncated.
func (c *Context) StackTrace() {
	const max = 25
	w := c.config.ErrOutput()
	n := len(c.Stack)
	if n > max {
		fmt.Fprintf(w, "\t•> stack truncated: %d entries total; showing top %d\n", n, max)
		n = max
	}
	for i := range n {
		fmt.Fprintf(w, "\t•> %d: %s\n", i, c.peek(i))
	}
}
