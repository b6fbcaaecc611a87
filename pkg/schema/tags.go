// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/yeetrun/fargs/pkg/names"
)

// FromStruct derives a schema from the exported fields of a struct (or
// pointer to struct).
//
// Fields with a `pos` tag are positionals:
//
//	pos:"0"   required
//	pos:"1?"  optional
//	pos:"2*"  rest, zero or more
//	pos:"2+"  rest, one or more
//
// Every other exported field is an option. The `flag` tag sets its long
// name (default: the field name in camelCase), `short` sets the alias and
// `help` the synopsis. Bool fields are flags; all other kinds take a value.
//
//	type RunArgs struct {
//	    Host    string   `pos:"0" help:"Host to connect to"`
//	    Files   []string `pos:"1*"`
//	    Verbose bool     `flag:"verbose" short:"v"`
//	    Module  string   `short:"m"`
//	}
//
// When the struct declares options, the option map is placed in the apply
// list right after the last non-rest positional.
func FromStruct(v any) (*Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("schema: FromStruct(nil)")
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: FromStruct needs a struct, got %s", t)
	}

	type posField struct {
		index int
		spec  PositionalSpec
	}
	var positionals []posField
	b := New()
	hasOptions := false

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		helpText := field.Tag.Get("help")

		if posTag := field.Tag.Get("pos"); posTag != "" {
			spec := PositionalSpec{Name: fieldKey(field.Name), Synopsis: helpText}
			posStr := posTag
			switch {
			case strings.HasSuffix(posTag, "?"):
				posStr = strings.TrimSuffix(posTag, "?")
			case strings.HasSuffix(posTag, "*"):
				spec.Rest = true
				posStr = strings.TrimSuffix(posTag, "*")
			case strings.HasSuffix(posTag, "+"):
				spec.Rest = true
				spec.Required = true
				posStr = strings.TrimSuffix(posTag, "+")
			default:
				spec.Required = true
			}
			pos, err := strconv.Atoi(posStr)
			if err != nil {
				return nil, fmt.Errorf("schema: field %s: bad pos tag %q", field.Name, posTag)
			}
			positionals = append(positionals, posField{index: pos, spec: spec})
			continue
		}

		flagName := field.Tag.Get("flag")
		if flagName == "" {
			flagName = fieldKey(field.Name)
		}
		fieldType := field.Type
		for fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		b.option(flagName, field.Tag.Get("short"), fieldType.Kind() != reflect.Bool, helpText)
		hasOptions = true
	}

	slices.SortFunc(positionals, func(x, y posField) int {
		return x.index - y.index
	})
	slot := 0
	for i, p := range positionals {
		if p.index != i {
			return nil, fmt.Errorf("schema: positional %q has position %d, want %d", p.spec.Name, p.index, i)
		}
		b.positional(p.spec)
		if !p.spec.Rest {
			slot = i + 1
		}
	}
	if hasOptions {
		b.OptionsAt(slot)
	}
	return b.Build()
}

// fieldKey turns a Go field name into a canonical key that survives the
// kebab-case round trip: "Verbose" -> "verbose", "HTTPPort" -> "httpPort",
// "MyURL" -> "myUrl".
func fieldKey(field string) string {
	runes := []rune(field)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return names.ToCanonical(b.String())
}
