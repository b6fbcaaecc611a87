// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"strings"

	"github.com/yeetrun/fargs/pkg/names"
)

// ValidationError reports a schema that breaks one of the rules the
// decoder relies on.
type ValidationError struct {
	// Path is the chain of subcommand names leading to the bad schema.
	Path []string
	Msg  string
}

func (e *ValidationError) Error() string {
	if len(e.Path) == 0 {
		return "invalid schema: " + e.Msg
	}
	return fmt.Sprintf("invalid schema for command '%s': %s", strings.Join(e.Path, " "), e.Msg)
}

// Validate checks the invariants a Schema must satisfy before decoding:
//   - at most one rest positional, and it is the last positional
//   - a schema with commands has exactly one positional, the required,
//     non-rest command selector
//   - a non-nil Commands map is not empty
//   - every option key is canonical and names its spec (Name or Alias)
//   - multi-character option names survive the kebab-case round trip
//   - the options slot, when set, is not negative
//
// Subcommand schemas are validated recursively.
func Validate(s *Schema) error {
	return validate(s, nil)
}

func validate(s *Schema, path []string) error {
	fail := func(format string, args ...any) error {
		return &ValidationError{Path: path, Msg: fmt.Sprintf(format, args...)}
	}
	if s == nil {
		return fail("schema is nil")
	}

	for i, p := range s.Positionals {
		if p.Name == "" {
			return fail("positional %d has no name", i)
		}
		if p.Rest && i != len(s.Positionals)-1 {
			return fail("rest positional %q must be last", p.Name)
		}
	}

	for key, spec := range s.Options {
		if spec == nil {
			return fail("option %q has no spec", key)
		}
		if key != names.ToCanonical(key) {
			return fail("option key %q is not canonical (want %q)", key, names.ToCanonical(key))
		}
		if key != spec.Name && key != spec.Alias {
			return fail("option key %q does not match name %q or alias %q", key, spec.Name, spec.Alias)
		}
		if s.Options[spec.Name] != spec {
			return fail("option %q is not registered under its own name", spec.Name)
		}
		if spec.Alias != "" && s.Options[spec.Alias] != spec {
			return fail("alias %q of option %q is not registered", spec.Alias, spec.Name)
		}
		if !names.RoundTrips(key) {
			return fail("option %q is displayed as %q, which does not decode back to it", key, names.ToExternal(key))
		}
	}

	if s.OptionsSlot != nil && *s.OptionsSlot < 0 {
		return fail("options slot %d is negative", *s.OptionsSlot)
	}

	if s.Commands != nil && len(s.Commands) == 0 {
		return fail("commands map is empty")
	}
	if len(s.Commands) == 0 {
		return nil
	}
	if len(s.Positionals) != 1 {
		return fail("schema with commands must have exactly one positional, has %d", len(s.Positionals))
	}
	if sel := s.Positionals[0]; sel.Rest || !sel.Required {
		return fail("command selector %q must be required and not rest", sel.Name)
	}
	for _, name := range s.CommandNames() {
		cmd := s.Commands[name]
		if cmd == nil || cmd.Schema == nil {
			return fail("command %q has no schema", name)
		}
		if cmd.Name != "" && cmd.Name != name {
			return fail("command registered as %q is named %q", name, cmd.Name)
		}
		if err := validate(cmd.Schema, append(path[:len(path):len(path)], name)); err != nil {
			return err
		}
	}
	return nil
}
