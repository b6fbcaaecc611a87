// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli runs handlers with arguments decoded from the command line.
//
//	s := schema.New().Positional("name", "Who to greet").MustBuild()
//	cli.Main(s, func(ctx context.Context, args cli.Args) error {
//	    fmt.Println("hello", args.String("name"))
//	    return nil
//	})
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/yeetrun/fargs/pkg/decode"
	"github.com/yeetrun/fargs/pkg/schema"
	"github.com/yeetrun/fargs/pkg/tui"
	"github.com/yeetrun/fargs/pkg/usage"
)

// ErrShown is returned by Run when usage text was written to Stderr
// instead of (or after) running a handler.
var ErrShown = errors.New("usage shown")

// Handler handles one decoded invocation.
type Handler func(ctx context.Context, args Args) error

// Command pairs a schema with the handler it feeds.
type Command struct {
	Schema *schema.Schema
	Run    Handler
}

// App is a command-line program made of a single Main command or a set of
// named Commands.
type App struct {
	// Name is shown in usage text. It defaults to the base name of
	// os.Args[0].
	Name string
	// Main handles every invocation. It is mutually exclusive with
	// Commands.
	Main *Command
	// Commands are selected by the first positional argument.
	Commands map[string]*Command
	// Stderr receives usage text. It defaults to os.Stderr.
	Stderr io.Writer
	// Color enables colored usage text when Stderr is a terminal.
	Color bool
}

// Schema returns the root schema of the app.
func (a *App) Schema() (*schema.Schema, error) {
	switch {
	case a.Main != nil && len(a.Commands) > 0:
		return nil, errors.New("cli: App has both Main and Commands")
	case a.Main != nil:
		if a.Main.Schema == nil {
			return nil, errors.New("cli: Main has no schema")
		}
		return a.Main.Schema, nil
	case len(a.Commands) > 0:
		subs := make(map[string]*schema.Schema, len(a.Commands))
		for name, cmd := range a.Commands {
			if cmd == nil || cmd.Schema == nil {
				return nil, fmt.Errorf("cli: command %q has no schema", name)
			}
			subs[name] = cmd.Schema
		}
		root := schema.Commands(subs)
		if err := schema.Validate(root); err != nil {
			return nil, err
		}
		return root, nil
	}
	return nil, errors.New("cli: App has no commands")
}

func (a *App) program() string {
	if a.Name != "" {
		return a.Name
	}
	return filepath.Base(os.Args[0])
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

// Run decodes args, which must not include the program name, and calls the
// selected handler.
//
// If decoding fails, usage text with the error is written to Stderr and Run
// returns ErrShown without calling a handler. A handler error that is or
// wraps a *UsageError, or whose message starts with "error:", is shown the
// same way. Any other handler error is returned as is.
func (a *App) Run(ctx context.Context, args []string) error {
	root, err := a.Schema()
	if err != nil {
		return err
	}
	res := decode.Decode(root, args)
	if res.Err != nil {
		a.showUsage(root, res, nil)
		return ErrShown
	}
	cmd := a.Main
	if cmd == nil {
		cmd = a.Commands[res.CommandPath[0]]
	}
	if cmd.Run == nil {
		return fmt.Errorf("cli: %s has no handler", a.commandName(res))
	}
	err = cmd.Run(ctx, newArgs(res))
	if ue := usageErr(err); ue != nil {
		a.showUsage(root, res, ue)
		return ErrShown
	}
	return err
}

func (a *App) commandName(res *decode.Result) string {
	if res.Command == nil {
		return a.program()
	}
	return fmt.Sprintf("command %q", res.Command.Name)
}

func (a *App) showUsage(root *schema.Schema, res *decode.Result, err error) {
	w := a.stderr()
	in := usage.Input{
		Program: a.program(),
		Schema:  root,
		Result:  res,
		Color:   a.Color && tui.ForWriter(w).Enabled,
	}
	if err != nil {
		in.Err = err
	}
	if err := usage.Render(w, in); err != nil {
		log.Printf("failed to write usage: %v", err)
	}
}

// Exec runs the app with the process arguments and exits. It exits with
// status 2 when usage was shown and 1 on any other error.
func (a *App) Exec() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := a.Run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode(err))
}

// Main runs a single-command program.
func Main(s *schema.Schema, run Handler) {
	(&App{Main: &Command{Schema: s, Run: run}, Color: true}).Exec()
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrShown):
		return 2
	}
	log.Printf("%v", err)
	return 1
}
