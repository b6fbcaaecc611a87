// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders usage text for a schema.
package usage

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/yeetrun/fargs/pkg/decode"
	"github.com/yeetrun/fargs/pkg/names"
	"github.com/yeetrun/fargs/pkg/schema"
	"github.com/yeetrun/fargs/pkg/tui"
)

// Input describes what to render.
type Input struct {
	// Program is the program path; only its base name is shown.
	Program string
	// Schema is the root schema.
	Schema *schema.Schema
	// Result, if set, selects the command whose usage is shown and
	// supplies the error line.
	Result *decode.Result
	// Err, if set, is shown on the error line instead of Result.Err.
	Err error
	// Color enables colored output.
	Color bool
}

// Render writes the usage text for in to w.
func Render(w io.Writer, in Input) error {
	_, err := io.WriteString(w, String(in))
	return err
}

// String returns the usage text for in.
func String(in Input) string {
	c := tui.Colorizer{Enabled: in.Color}
	var sb strings.Builder

	s := in.Schema
	var path []string
	errMsg := ""
	if in.Result != nil {
		if in.Result.Schema != nil {
			s = in.Result.Schema
		}
		path = in.Result.CommandPath
		if in.Result.Err != nil {
			errMsg = in.Result.Err.Error()
		}
	}
	if in.Err != nil {
		errMsg = strings.TrimPrefix(in.Err.Error(), "error: ")
	}
	if errMsg != "" {
		sb.WriteString(c.Wrap(tui.ColorRed, "error:"))
		sb.WriteString(" " + errMsg + "\n")
	}

	sb.WriteString(c.Wrap(tui.ColorBold, "usage:"))
	sb.WriteString(" " + filepath.Base(in.Program))
	for _, name := range path {
		sb.WriteString(" " + name)
	}
	specs := s.OptionSpecs()
	if len(specs) > 0 {
		sb.WriteString(" [options]")
	}
	var args strings.Builder
	if s != nil {
		for _, p := range s.Positionals {
			name := positionalName(p)
			sb.WriteString(" " + name)
			if p.Synopsis != "" {
				args.WriteString("  " + name + "    " + p.Synopsis + "\n")
			}
		}
	}
	sb.WriteString("\n\n")

	if s != nil && s.Synopsis != "" {
		sb.WriteString(s.Synopsis + "\n\n")
	}
	if args.Len() > 0 {
		sb.WriteString(c.Wrap(tui.ColorBold, "args:") + "\n")
		sb.WriteString(args.String() + "\n")
	}
	if len(specs) > 0 {
		sb.WriteString(c.Wrap(tui.ColorBold, "options:") + "\n")
		for _, spec := range specs {
			sb.WriteString("  " + OptionLabel(spec))
			if spec.Synopsis != "" {
				sb.WriteString("   " + spec.Synopsis)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if s.HasCommands() {
		sb.WriteString(c.Wrap(tui.ColorBold, "commands:") + "\n")
		for _, name := range s.CommandNames() {
			sb.WriteString("  " + c.Wrap(tui.ColorGreen, name))
			if sub := s.Commands[name].Schema; sub != nil && sub.Synopsis != "" {
				sb.WriteString("   " + sub.Synopsis)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func positionalName(p schema.PositionalSpec) string {
	name := names.ToExternal(p.Name)
	if p.Rest {
		name += "..."
	}
	if !p.Required {
		name = "[" + name + "]"
	}
	return name
}

// OptionLabel returns how an option is spelled in usage text, for example
// "-g, --greeting=<value>". The shorter of name and alias comes first.
func OptionLabel(spec *schema.OptionSpec) string {
	name := names.ToExternal(spec.Name)
	alias := names.ToExternal(spec.Alias)
	if len(alias) > len(name) {
		name, alias = alias, name
	}
	var sb strings.Builder
	if alias != "" {
		sb.WriteString(dashes(alias) + ", ")
	}
	sb.WriteString(dashes(name))
	if spec.TakesValue {
		sb.WriteString("=<value>")
	}
	return sb.String()
}

func dashes(name string) string {
	if len(name) > 1 {
		return "--" + name
	}
	return "-" + name
}
