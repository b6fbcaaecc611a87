// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeetrun/fargs/pkg/cli"
	"github.com/yeetrun/fargs/pkg/schema"
)

var helloSchema = schema.New().
	Synopsis("Greet someone").
	Positional("name", "Who to greet").
	Options().
	Value("greeting", "", "Greeting to use (default Hello)").
	Flag("shout", "s", "Capitalize the output").
	MustBuild()

func hello(_ context.Context, args cli.Args) error {
	greeting := args.String("greeting")
	if greeting == "" {
		greeting = "Hello"
	}
	out := fmt.Sprintf("%s %s!", greeting, args.String("name"))
	if args.Flag("shout") {
		out = strings.ToUpper(out)
	}
	fmt.Println(out)
	return nil
}

func main() {
	cli.Main(helloSchema, hello)
}
