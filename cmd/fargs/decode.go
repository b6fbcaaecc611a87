// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/kballard/go-shellquote"
	"github.com/yeetrun/fargs/pkg/cli"
	"github.com/yeetrun/fargs/pkg/decode"
	"github.com/yeetrun/fargs/pkg/tui"
	"github.com/yeetrun/fargs/pkg/usage"
	"gopkg.in/yaml.v3"
)

// decodeOutput is the printed form of a decode.Result.
type decodeOutput struct {
	Command   []string       `json:"command,omitempty" yaml:"command,omitempty"`
	Values    map[string]any `json:"values" yaml:"values"`
	Options   map[string]any `json:"options" yaml:"options"`
	Apply     []any          `json:"apply" yaml:"apply"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string         `json:"errorKind,omitempty" yaml:"errorKind,omitempty"`
}

func newDecodeOutput(res *decode.Result) decodeOutput {
	out := decodeOutput{
		Command: res.CommandPath,
		Values:  res.Values,
		Options: res.OptionValues,
		Apply:   res.Apply,
	}
	if out.Apply == nil {
		out.Apply = []any{}
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
		out.ErrorKind = res.Err.Kind.String()
	}
	return out
}

func writeDecodeOutput(w io.Writer, format string, out decodeOutput) error {
	switch format {
	case "", "json":
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}

// decodeTokens returns the tokens to decode: the split --line, or the
// positional arguments and everything after "--".
func decodeTokens(parsed parsedFlags[decodeFlagsParsed]) ([]string, error) {
	tokens := append(parsed.Args, parsed.Extra...)
	if parsed.Flags.Line == "" {
		return tokens, nil
	}
	if len(tokens) > 0 {
		return nil, fmt.Errorf("cannot use --line with TOKENS")
	}
	words, err := shellquote.Split(parsed.Flags.Line)
	if err != nil {
		return nil, fmt.Errorf("failed to split --line: %w", err)
	}
	return words, nil
}

func handleDecode(_ context.Context, args []string) error {
	parsed, err := parseFlags[decodeFlagsParsed]("decode", args)
	if err != nil {
		return err
	}
	tokens, err := decodeTokens(parsed)
	if err != nil {
		return err
	}
	path, s, err := loadSchema(parsed.Flags.Schema)
	if err != nil {
		return err
	}
	res := decode.Decode(s, tokens)
	log.Printf("decoded %d tokens: command=%v err=%v", len(tokens), res.CommandPath, res.Err)
	if err := writeDecodeOutput(stdout, parsed.Flags.Format, newDecodeOutput(res)); err != nil {
		return err
	}
	if res.Err == nil {
		return nil
	}
	if err := usage.Render(stderr, usage.Input{
		Program: programName(parsed.Flags.Program, path),
		Schema:  s,
		Result:  res,
		Color:   !globalFlags.NoColor && tui.ForWriter(stderr).Enabled,
	}); err != nil {
		return err
	}
	return cli.ErrShown
}
