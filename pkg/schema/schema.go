// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema describes the options, positional arguments and
// subcommands a command accepts.
//
// A Schema is immutable once built and may be shared by any number of
// concurrent decodes. Schemas can be written as struct literals, assembled
// with a Builder, derived from a tagged struct with FromStruct, or loaded
// from TOML or YAML files with LoadFile.
//
// Option keys are canonical (camelCase) names. An option with an alias is
// registered under both keys, and both keys point at the same *OptionSpec:
//
//	verbose := &schema.OptionSpec{Name: "verbose", Alias: "v"}
//	s := &schema.Schema{
//	    Options: map[string]*schema.OptionSpec{"verbose": verbose, "v": verbose},
//	    Positionals: []schema.PositionalSpec{{Name: "host", Required: true}},
//	    OptionsSlot: schema.Slot(1),
//	}
package schema

import (
	"slices"
	"strings"
)

// CommandSelector is the name of the synthetic positional that selects a
// subcommand in a schema with Commands.
const CommandSelector = "command"

// OptionSpec describes a single option.
type OptionSpec struct {
	// Name is the canonical key results are stored under.
	Name string
	// Alias is an optional second key, usually a single character.
	Alias string
	// TakesValue is true for options that consume a value and false for
	// boolean flags.
	TakesValue bool
	Synopsis   string
}

// PositionalSpec describes a positional argument.
type PositionalSpec struct {
	Name     string
	Required bool
	// Rest marks the positional that absorbs every remaining argument.
	// Only the last positional may be a rest positional.
	Rest     bool
	Synopsis string
}

// CommandSchema binds a subcommand name to the schema used for the
// arguments that follow it.
type CommandSchema struct {
	Name   string
	Schema *Schema
}

// Schema describes the arguments accepted at one command level.
type Schema struct {
	Synopsis string
	// Options maps every accepted key (canonical name or alias) to its spec.
	Options     map[string]*OptionSpec
	Positionals []PositionalSpec
	// Commands, when non-empty, makes the first positional a command
	// selector.
	Commands map[string]*CommandSchema
	// OptionsSlot is the index in the apply list where the option map is
	// inserted. Nil means the options are not passed positionally.
	OptionsSlot *int
}

// Slot returns a pointer to i, for use as Schema.OptionsSlot.
func Slot(i int) *int {
	return &i
}

// Option returns the spec registered under key, or nil.
func (s *Schema) Option(key string) *OptionSpec {
	if s == nil {
		return nil
	}
	return s.Options[key]
}

// HasCommands reports whether s dispatches to subcommands. Validate rejects
// a non-nil but empty Commands map.
func (s *Schema) HasCommands() bool {
	return s != nil && len(s.Commands) > 0
}

// Command returns the subcommand registered under name, or nil.
func (s *Schema) Command(name string) *CommandSchema {
	if s == nil {
		return nil
	}
	return s.Commands[name]
}

// OptionSpecs returns every distinct option spec in s, sorted by name.
// Specs registered under more than one key are returned once.
func (s *Schema) OptionSpecs() []*OptionSpec {
	if s == nil || len(s.Options) == 0 {
		return nil
	}
	seen := make(map[*OptionSpec]bool, len(s.Options))
	out := make([]*OptionSpec, 0, len(s.Options))
	for _, spec := range s.Options {
		if spec == nil || seen[spec] {
			continue
		}
		seen[spec] = true
		out = append(out, spec)
	}
	slices.SortFunc(out, func(a, b *OptionSpec) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// CommandNames returns the names of the subcommands of s, sorted.
func (s *Schema) CommandNames() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Commands))
	for name := range s.Commands {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Commands returns a root schema that only dispatches to the given
// subcommand schemas. The root has no options and a single required
// command selector positional.
func Commands(subs map[string]*Schema) *Schema {
	root := &Schema{
		Options:     map[string]*OptionSpec{},
		Positionals: []PositionalSpec{{Name: CommandSelector, Required: true}},
		Commands:    make(map[string]*CommandSchema, len(subs)),
	}
	for name, sub := range subs {
		root.Commands[name] = &CommandSchema{Name: name, Schema: sub}
	}
	return root
}
