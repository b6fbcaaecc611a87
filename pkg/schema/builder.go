// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"

	"github.com/yeetrun/fargs/pkg/names"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Builder assembles a Schema. The first error encountered is reported by
// Build; later calls are ignored once an error is recorded.
//
//	s, err := schema.New().
//	    Positional("host", "Host to connect to").
//	    Optional("port", "").
//	    Options().
//	    Flag("verbose", "v", "Verbose output").
//	    Value("module", "m", "Module to load").
//	    Build()
type Builder struct {
	s    Schema
	keys set.Set[string]
	err  error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{keys: make(set.Set[string])}
}

// Synopsis sets the one-line description shown in usage output.
func (b *Builder) Synopsis(synopsis string) *Builder {
	b.s.Synopsis = synopsis
	return b
}

// Positional adds a required positional.
func (b *Builder) Positional(name, synopsis string) *Builder {
	return b.positional(PositionalSpec{Name: name, Required: true, Synopsis: synopsis})
}

// Optional adds an optional positional. When it is not supplied its apply
// list slot holds nil.
func (b *Builder) Optional(name, synopsis string) *Builder {
	return b.positional(PositionalSpec{Name: name, Synopsis: synopsis})
}

// Rest adds the rest positional, which absorbs all remaining arguments.
func (b *Builder) Rest(name, synopsis string) *Builder {
	return b.positional(PositionalSpec{Name: name, Rest: true, Synopsis: synopsis})
}

func (b *Builder) positional(p PositionalSpec) *Builder {
	if b.err != nil {
		return b
	}
	if p.Name == "" {
		b.err = fmt.Errorf("positional %d has no name", len(b.s.Positionals))
		return b
	}
	b.s.Positionals = append(b.s.Positionals, p)
	return b
}

// Flag adds a boolean option. alias may be empty.
func (b *Builder) Flag(name, alias, synopsis string) *Builder {
	return b.option(name, alias, false, synopsis)
}

// Value adds an option that takes a value. alias may be empty.
func (b *Builder) Value(name, alias, synopsis string) *Builder {
	return b.option(name, alias, true, synopsis)
}

func (b *Builder) option(name, alias string, takesValue bool, synopsis string) *Builder {
	if b.err != nil {
		return b
	}
	name = names.ToCanonical(name)
	alias = names.ToCanonical(alias)
	if name == "" {
		b.err = fmt.Errorf("option has no name")
		return b
	}
	spec := &OptionSpec{Name: name, Alias: alias, TakesValue: takesValue, Synopsis: synopsis}
	for _, key := range []string{name, alias} {
		if key == "" {
			continue
		}
		if b.keys.Contains(key) {
			b.err = fmt.Errorf("duplicate option %q", key)
			return b
		}
		b.keys.Add(key)
		mak.Set(&b.s.Options, key, spec)
	}
	return b
}

// Options places the option map in the apply list after the positionals
// declared so far.
func (b *Builder) Options() *Builder {
	return b.OptionsAt(len(b.s.Positionals))
}

// OptionsAt places the option map at index i of the apply list.
func (b *Builder) OptionsAt(i int) *Builder {
	if b.err != nil {
		return b
	}
	if b.s.OptionsSlot != nil {
		b.err = fmt.Errorf("options slot already set to %d", *b.s.OptionsSlot)
		return b
	}
	b.s.OptionsSlot = Slot(i)
	return b
}

// Command registers a subcommand. The command selector positional is
// added by Build.
func (b *Builder) Command(name string, sub *Schema) *Builder {
	if b.err != nil {
		return b
	}
	if name == "" || sub == nil {
		b.err = fmt.Errorf("command %q has no schema", name)
		return b
	}
	if _, ok := b.s.Commands[name]; ok {
		b.err = fmt.Errorf("duplicate command %q", name)
		return b
	}
	mak.Set(&b.s.Commands, name, &CommandSchema{Name: name, Schema: sub})
	return b
}

// Build validates and returns the schema. The Builder must not be used
// afterwards.
func (b *Builder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := b.s
	if s.Options == nil {
		s.Options = map[string]*OptionSpec{}
	}
	if len(s.Commands) > 0 && len(s.Positionals) == 0 {
		s.Positionals = []PositionalSpec{{Name: CommandSelector, Required: true}}
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// MustBuild is like Build but panics on error. It is meant for schemas
// declared in package-level variables.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
