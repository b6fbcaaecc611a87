// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromStruct(t *testing.T) {
	type RunArgs struct {
		Host     string   `pos:"0" help:"Host to connect to"`
		Port     string   `pos:"1?"`
		Files    []string `pos:"2*"`
		Verbose  bool     `flag:"verbose" short:"v" help:"Verbose output"`
		Module   string   `short:"m"`
		DryRun   *bool
		HTTPPort int `flag:"http-port"`
		internal string
	}

	s, err := FromStruct(RunArgs{})
	if err != nil {
		t.Fatalf("FromStruct() error = %v", err)
	}

	wantPos := []PositionalSpec{
		{Name: "host", Required: true, Synopsis: "Host to connect to"},
		{Name: "port"},
		{Name: "files", Rest: true},
	}
	if diff := cmp.Diff(wantPos, s.Positionals); diff != "" {
		t.Errorf("Positionals mismatch (-want +got):\n%s", diff)
	}

	verbose := &OptionSpec{Name: "verbose", Alias: "v", Synopsis: "Verbose output"}
	module := &OptionSpec{Name: "module", Alias: "m", TakesValue: true}
	wantOpts := map[string]*OptionSpec{
		"verbose":  verbose,
		"v":        verbose,
		"module":   module,
		"m":        module,
		"dryRun":   {Name: "dryRun"},
		"httpPort": {Name: "httpPort", TakesValue: true},
	}
	if diff := cmp.Diff(wantOpts, s.Options); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
	if s.OptionsSlot == nil || *s.OptionsSlot != 2 {
		t.Errorf("OptionsSlot = %v, want 2", s.OptionsSlot)
	}
}

func TestFromStructRequiredRest(t *testing.T) {
	type Args struct {
		Names []string `pos:"0+"`
	}
	s, err := FromStruct(&Args{})
	if err != nil {
		t.Fatalf("FromStruct() error = %v", err)
	}
	want := []PositionalSpec{{Name: "names", Required: true, Rest: true}}
	if diff := cmp.Diff(want, s.Positionals); diff != "" {
		t.Errorf("Positionals mismatch (-want +got):\n%s", diff)
	}
	if s.OptionsSlot != nil {
		t.Errorf("OptionsSlot = %d, want nil", *s.OptionsSlot)
	}
}

func TestFromStructErrors(t *testing.T) {
	type gap struct {
		A string `pos:"0"`
		B string `pos:"2"`
	}
	type badTag struct {
		A string `pos:"first"`
	}
	type dup struct {
		First  bool `short:"a"`
		Second bool `short:"a"`
	}
	for name, v := range map[string]any{
		"nil":          nil,
		"not a struct": 42,
		"gap":          gap{},
		"bad tag":      badTag{},
		"dup":          dup{},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := FromStruct(v); err == nil {
				t.Errorf("FromStruct(%T) error = nil, want error", v)
			}
		})
	}
}

func TestFieldKey(t *testing.T) {
	tests := map[string]string{
		"Verbose":  "verbose",
		"HTTPPort": "httpPort",
		"MyURL":    "myUrl",
		"DryRun":   "dryRun",
		"URL":      "url",
		"X":        "x",
	}
	for in, want := range tests {
		if got := fieldKey(in); got != want {
			t.Errorf("fieldKey(%q) = %q, want %q", in, got, want)
		}
	}
}
