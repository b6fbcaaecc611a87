// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/fargs/pkg/schema"
)

// schemaEnv names the environment variable holding the default schema path.
const schemaEnv = "FARGS_SCHEMA"

type usageFlagsParsed struct {
	Schema  string `flag:"schema" help:"Schema file (default: $FARGS_SCHEMA, else fargs.toml/.yaml/.yml in the current or a parent directory)"`
	Program string `flag:"program" help:"Program name shown in usage text (default: the schema file's directory name)"`
}

type checkFlagsParsed struct {
	Schema string `flag:"schema" help:"Schema file"`
}

type decodeFlagsParsed struct {
	Schema  string `flag:"schema" help:"Schema file"`
	Program string `flag:"program" help:"Program name shown in usage text"`
	Format  string `flag:"format" default:"json" help:"Output format (json|yaml)"`
	Line    string `flag:"line" help:"Shell-quoted command line to decode instead of TOKENS"`
}

type versionFlagsParsed struct {
	JSON bool `flag:"json" help:"Print version information as JSON"`
}

type parsedFlags[T any] struct {
	Flags T
	// Args are the positional arguments, without the command name.
	Args []string
	// Extra are the arguments after "--".
	Extra []string
}

// parseFlags parses the flags of cmd. Arguments after "--" are returned
// untouched in Extra.
func parseFlags[T any](cmd string, args []string) (parsedFlags[T], error) {
	parseArgs, extraArgs := splitArgsAtDoubleDash(args)
	if len(parseArgs) > 0 && parseArgs[0] == cmd {
		parseArgs = parseArgs[1:]
	}
	result, err := yargs.ParseFlags[T](parseArgs)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	return parsedFlags[T]{
		Flags: result.Flags,
		Args:  append([]string{}, result.Args...),
		Extra: extraArgs,
	}, nil
}

func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

// findSchemaPath resolves the schema file to use: the flag value, then
// $FARGS_SCHEMA, then a schema file found from the working directory.
func findSchemaPath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if env := os.Getenv(schemaEnv); env != "" {
		return env, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path, err := schema.Find(wd)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("no schema file found (looked for %s); use --schema or %s", strings.Join(schema.FileNames, ", "), schemaEnv)
	}
	return path, err
}

// programName returns the program name to show for the schema at path.
func programName(flagName, path string) string {
	if flagName != "" {
		return flagName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(filepath.Dir(path))
	}
	return filepath.Base(filepath.Dir(abs))
}

func loadSchema(flagPath string) (string, *schema.Schema, error) {
	path, err := findSchemaPath(flagPath)
	if err != nil {
		return "", nil, err
	}
	log.Printf("loading schema from %s", path)
	s, err := schema.LoadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, s, nil
}
