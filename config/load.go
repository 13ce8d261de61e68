// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of the settings, as in
//
//	prompt: "poly> "
//	debug: [trace]
type File struct {
	Prompt *string  `yaml:"prompt"`
	Debug  []string `yaml:"debug"`
}

// Load reads YAML settings from r and applies them to c.
// Settings absent from the input are left unchanged.
func (c *Config) Load(r io.Reader) error {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("config: %w", err)
	}
	return c.Apply(&f)
}

// Apply applies the settings in f to c.
func (c *Config) Apply(f *File) error {
	if f.Prompt != nil {
		c.SetPrompt(*f.Prompt)
	}
	for _, name := range f.Debug {
		if !c.SetDebug(name, true) {
			return fmt.Errorf("config: unknown debug flag %q", name)
		}
	}
	return nil
}
