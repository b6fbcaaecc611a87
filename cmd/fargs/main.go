// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fargs decodes command lines against fargs schema files and prints
// their usage text.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shayne/yargs"
	"github.com/yeetrun/fargs/pkg/cli"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type globalFlagsParsed struct {
	LogFile string `flag:"log-file" help:"Also write logs to this file, rotated"`
	Verbose bool   `flag:"verbose" help:"Write logs to stderr"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`
}

var globalFlags globalFlagsParsed

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// setupLogging points the standard logger at the log file and, in verbose
// mode, stderr. Logs are discarded otherwise.
func setupLogging(flags globalFlagsParsed) func() {
	var writers []io.Writer
	var closer io.Closer
	if flags.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   flags.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		writers = append(writers, lj)
		closer = lj
	}
	if flags.Verbose {
		writers = append(writers, stderr)
	}
	if len(writers) == 0 {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(io.MultiWriter(writers...))
	}
	return func() {
		log.SetOutput(os.Stderr)
		if closer != nil {
			closer.Close()
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	flags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	globalFlags = flags
	defer setupLogging(flags)()

	handlers := map[string]yargs.SubcommandHandler{
		"check":   handleCheck,
		"decode":  handleDecode,
		"usage":   handleUsage,
		"version": handleVersion,
	}
	err = yargs.RunSubcommandsWithGroups(ctx, remaining, buildHelpConfig(), globalFlagsParsed{}, handlers, nil)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrShown):
		return 2
	}
	log.Printf("command failed: %v", err)
	printCLIError(stderr, err)
	return 1
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, err)
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "fargs",
			Description: "Decode command lines against a fargs schema file and show its usage text.",
			Examples: []string{
				"fargs check --schema ./fargs.toml",
				"fargs usage hello",
				"fargs decode -- hello --greeting=hi bob",
				`fargs decode --format yaml --line "hello -g 'good day' bob"`,
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"check": {
				Name:        "check",
				Description: "Validate a schema file",
				Usage:       "[--schema FILE]",
			},
			"decode": {
				Name:        "decode",
				Description: "Decode tokens and print the result",
				Usage:       "[--schema FILE] [--program NAME] [--format json|yaml] [--line LINE] [-- TOKENS...]",
				Examples: []string{
					"fargs decode -- hello --greeting=hi bob",
					`fargs decode --line "hello -g 'good day' bob"`,
				},
			},
			"usage": {
				Name:        "usage",
				Description: "Print the usage text of the schema or one of its commands",
				Usage:       "[--schema FILE] [--program NAME] [COMMAND...]",
			},
			"version": {
				Name:        "version",
				Description: "Print the fargs version",
				Usage:       "[--json]",
			},
		},
	}
}
