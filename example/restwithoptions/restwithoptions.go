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

// The option map comes first in the apply list, followed by every name.
var helloSchema = schema.New().
	OptionsAt(0).
	Value("greeting", "g", "Text for greeting").
	Flag("shout", "s", "Capitalizes output").
	Rest("names", "People to greet").
	MustBuild()

func hello(_ context.Context, args cli.Args) error {
	opts := args.Apply[0].(map[string]any)
	greeting, _ := opts["greeting"].(string)
	if greeting == "" {
		greeting = "Hello"
	}
	shout, _ := opts["shout"].(bool)
	for _, name := range args.Apply[1:] {
		out := fmt.Sprintf("%s %s!", greeting, name)
		if shout {
			out = strings.ToUpper(out)
		}
		fmt.Println(out)
	}
	return nil
}

func main() {
	cli.Main(helloSchema, hello)
}
