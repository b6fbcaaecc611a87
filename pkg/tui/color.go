// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds terminal presentation helpers.
package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colors used by fargs output.
var (
	ColorRed   = []color.Attribute{color.FgRed, color.Bold}
	ColorGreen = []color.Attribute{color.FgGreen}
	ColorBold  = []color.Attribute{color.Bold}
)

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in terminal color codes when Enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true
// and the environment allows color: NO_COLOR is unset and TERM is set to
// something other than "dumb".
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForWriter returns a Colorizer for output written to w. Color is only
// used when w is a terminal.
func ForWriter(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	if !ok {
		return Colorizer{}
	}
	return NewColorizer(isTerminalFn(int(f.Fd())))
}

// Wrap returns text wrapped in the given color attributes.
func (c Colorizer) Wrap(attrs []color.Attribute, text string) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	cl := color.New(attrs...)
	cl.EnableColor()
	return cl.Sprint(text)
}
