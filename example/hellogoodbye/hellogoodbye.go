// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/yeetrun/fargs/pkg/cli"
	"github.com/yeetrun/fargs/pkg/schema"
)

var stdout io.Writer = os.Stdout

type helloArgs struct {
	Name     string `pos:"0" help:"Subject of greeting, eg \"world\""`
	Greeting string `flag:"greeting" help:"Text for greeting"`
	Shout    bool   `flag:"shout" short:"s" help:"Capitalizes output"`
}

func hello(_ context.Context, args helloArgs) error {
	if strings.TrimSpace(args.Name) == "" {
		return cli.Usagef("name must not be empty")
	}
	greeting := args.Greeting
	if greeting == "" {
		greeting = "Hello"
	}
	out := fmt.Sprintf("%s %s!", greeting, args.Name)
	if args.Shout {
		out = strings.ToUpper(out)
	}
	fmt.Fprintln(stdout, out)
	return nil
}

var goodbyeSchema = schema.New().
	Synopsis("Say goodbye").
	Options().
	Flag("shout", "s", "Capitalizes output").
	MustBuild()

func goodbye(_ context.Context, args cli.Args) error {
	if args.Flag("shout") {
		fmt.Fprintln(stdout, "GOODBYE")
	} else {
		fmt.Fprintln(stdout, "Bye!")
	}
	return nil
}

func newApp() (*cli.App, error) {
	helloCmd, err := cli.Typed(hello)
	if err != nil {
		return nil, err
	}
	helloCmd.Schema.Synopsis = "Greet the day"
	return &cli.App{
		Name: "hellogoodbye",
		Commands: map[string]*cli.Command{
			"hello":   helloCmd,
			"goodbye": {Schema: goodbyeSchema, Run: goodbye},
		},
		Color: true,
	}, nil
}

func main() {
	app, err := newApp()
	if err != nil {
		log.Fatal(err)
	}
	app.Exec()
}
