// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	verbose := &OptionSpec{Name: "verbose", Alias: "v"}
	tests := []struct {
		name    string
		schema  *Schema
		wantErr string
	}{
		{
			name: "valid",
			schema: &Schema{
				Options:     map[string]*OptionSpec{"verbose": verbose, "v": verbose},
				Positionals: []PositionalSpec{{Name: "x", Required: true}, {Name: "y", Rest: true}},
				OptionsSlot: Slot(0),
			},
		},
		{name: "nil", schema: nil, wantErr: "schema is nil"},
		{
			name: "alias not registered",
			schema: &Schema{
				Options: map[string]*OptionSpec{"verbose": verbose},
			},
			wantErr: `alias "v" of option "verbose" is not registered`,
		},
		{
			name: "key not canonical",
			schema: &Schema{
				Options: map[string]*OptionSpec{"dry-run": {Name: "dry-run"}},
			},
			wantErr: "not canonical",
		},
		{
			name: "key mismatch",
			schema: &Schema{
				Options: map[string]*OptionSpec{"module": {Name: "mod"}},
			},
			wantErr: `does not match name "mod"`,
		},
		{
			name: "name does not round trip",
			schema: &Schema{
				Options: map[string]*OptionSpec{"myURL": {Name: "myURL"}},
			},
			wantErr: "does not decode back",
		},
		{
			name:    "negative slot",
			schema:  &Schema{OptionsSlot: Slot(-1)},
			wantErr: "negative",
		},
		{
			name: "selector optional",
			schema: &Schema{
				Positionals: []PositionalSpec{{Name: "command"}},
				Commands:    map[string]*CommandSchema{"a": {Name: "a", Schema: &Schema{}}},
			},
			wantErr: "must be required",
		},
		{
			name: "nested command invalid",
			schema: Commands(map[string]*Schema{
				"a": {Positionals: []PositionalSpec{{Name: "r", Rest: true}, {Name: "x"}}},
			}),
			wantErr: "command 'a'",
		},
		{
			name: "empty commands",
			schema: &Schema{
				Positionals: []PositionalSpec{{Name: "command", Required: true}},
				Commands:    map[string]*CommandSchema{},
			},
			wantErr: "commands map is empty",
		},
		{
			name: "command name mismatch",
			schema: &Schema{
				Positionals: []PositionalSpec{{Name: "command", Required: true}},
				Commands:    map[string]*CommandSchema{"a": {Name: "b", Schema: &Schema{}}},
			},
			wantErr: `registered as "a" is named "b"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
