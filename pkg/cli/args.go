// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/yeetrun/fargs/pkg/decode"
	"github.com/yeetrun/fargs/pkg/names"
	"github.com/yeetrun/fargs/pkg/schema"
)

// Args are the decoded arguments passed to a Handler.
type Args struct {
	// Apply holds the arguments in call order: positionals, nil for
	// missing optional positionals, and the Options map at the schema's
	// options slot.
	Apply []any
	// Values holds positionals and options by canonical name.
	Values map[string]any
	// Options holds options only.
	Options map[string]any
	// Command is the name of the selected command, if any.
	Command string
	// CommandPath lists every command name selected, outermost first.
	CommandPath []string
}

func newArgs(res *decode.Result) Args {
	a := Args{
		Apply:       res.Apply,
		Values:      res.Values,
		Options:     res.OptionValues,
		CommandPath: res.CommandPath,
	}
	if res.Command != nil {
		a.Command = res.Command.Name
	}
	return a
}

func (a Args) value(name string) any {
	return a.Values[names.ToCanonical(name)]
}

// String returns the named value, or "" if it is missing or not a string.
// Names may be given in either spelling.
func (a Args) String(name string) string {
	s, _ := a.value(name).(string)
	return s
}

// Flag reports whether the named flag was set.
func (a Args) Flag(name string) bool {
	b, _ := a.value(name).(bool)
	return b
}

// Strings returns the named rest positional. A single string value is
// returned as a one-element slice.
func (a Args) Strings(name string) []string {
	switch v := a.value(name).(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Bind copies Values into the struct pointed to by dst. Fields match by
// their `flag` tag or field name, in either spelling, and values are
// converted to the field types ("8080" into an int, "1s" into a
// time.Duration, "a,b" into a []string).
func (a Args) Bind(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "flag",
		WeaklyTypedInput: true,
		MatchName:        matchName,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(a.Values); err != nil {
		return Usagef("%w", err)
	}
	return nil
}

func matchName(key, field string) bool {
	return key == names.ToCanonical(field) || strings.EqualFold(key, field)
}

// Typed returns a Command whose schema is derived from T with
// schema.FromStruct and whose handler receives the arguments bound into a
// T.
func Typed[T any](run func(ctx context.Context, args T) error) (*Command, error) {
	var zero T
	s, err := schema.FromStruct(&zero)
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}
	return &Command{
		Schema: s,
		Run: func(ctx context.Context, args Args) error {
			var v T
			if err := args.Bind(&v); err != nil {
				return err
			}
			return run(ctx, v)
		},
	}, nil
}
