// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode_test

import (
	"fmt"

	"github.com/yeetrun/fargs/pkg/decode"
	"github.com/yeetrun/fargs/pkg/schema"
)

func ExampleDecode() {
	s := schema.New().
		Positional("host", "Host to connect to").
		Optional("port", "Port number").
		Options().
		Flag("verbose", "v", "Print more").
		Value("module", "m", "Module to load").
		MustBuild()

	res := decode.Decode(s, []string{"example.com", "-vm", "fncli"})
	fmt.Println(res.Apply)

	res = decode.Decode(s, []string{"--module"})
	fmt.Println(res.Err)
	// Output:
	// [example.com <nil> map[module:fncli verbose:true]]
	// Missing required argument: host
}
