// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/yeetrun/fargs/pkg/decode"
	"github.com/yeetrun/fargs/pkg/schema"
	"github.com/yeetrun/fargs/pkg/tui"
	"github.com/yeetrun/fargs/pkg/usage"
)

func handleUsage(_ context.Context, args []string) error {
	parsed, err := parseFlags[usageFlagsParsed]("usage", args)
	if err != nil {
		return err
	}
	path, s, err := loadSchema(parsed.Flags.Schema)
	if err != nil {
		return err
	}
	cmdPath := append(parsed.Args, parsed.Extra...)
	active := s
	for i, name := range cmdPath {
		cmd := active.Command(name)
		if cmd == nil {
			return fmt.Errorf("unknown command %q", strings.Join(cmdPath[:i+1], " "))
		}
		active = cmd.Schema
	}
	return usage.Render(stdout, usage.Input{
		Program: programName(parsed.Flags.Program, path),
		Schema:  s,
		Result:  &decode.Result{Schema: active, CommandPath: cmdPath},
		Color:   !globalFlags.NoColor && tui.ForWriter(stdout).Enabled,
	})
}

func handleCheck(_ context.Context, args []string) error {
	parsed, err := parseFlags[checkFlagsParsed]("check", args)
	if err != nil {
		return err
	}
	if len(parsed.Args) > 0 {
		return fmt.Errorf("check takes no arguments")
	}
	path, s, err := loadSchema(parsed.Flags.Schema)
	if err != nil {
		return err
	}
	c := tui.Colorizer{Enabled: !globalFlags.NoColor && tui.ForWriter(stdout).Enabled}
	fmt.Fprintf(stdout, "%s %s\n", c.Wrap(tui.ColorGreen, "ok"), path)
	summarize(stdout, s, "")
	return nil
}

// summarize prints one line per schema and command.
func summarize(w io.Writer, s *schema.Schema, prefix string) {
	name := prefix
	if name == "" {
		name = "(root)"
	}
	fmt.Fprintf(w, "  %s: %d positionals, %d options, %d commands\n",
		name, len(s.Positionals), len(s.OptionSpecs()), len(s.Commands))
	for _, cmd := range s.CommandNames() {
		summarize(w, s.Commands[cmd].Schema, strings.TrimSpace(prefix+" "+cmd))
	}
}

type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func handleVersion(_ context.Context, args []string) error {
	parsed, err := parseFlags[versionFlagsParsed]("version", args)
	if err != nil {
		return err
	}
	info := versionInfo{
		Version:   versionCommit(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if parsed.Flags.JSON {
		return json.NewEncoder(stdout).Encode(info)
	}
	fmt.Fprintf(stdout, "fargs %s (%s, %s)\n", info.Version, info.GoVersion, info.Platform)
	return nil
}

// versionCommit returns the commit hash of the current build.
func versionCommit() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var dirty bool
	var commit string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if commit == "" {
		return "dev"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if dirty {
		commit += "-dirty"
	}
	return commit
}
