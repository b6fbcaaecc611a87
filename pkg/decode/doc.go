// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decode turns command-line tokens into values for a handler,
// driven by a *schema.Schema.
//
// # Token Grammar
//
// While options are allowed, tokens are classified as:
//   - "--" disables options for the rest of the line
//   - "--name" or "--name=value" is a long option; name may be written in
//     kebab-case or camelCase
//   - "-x", "-xyz", "-xvalue" or "-x value" is a short option cluster; a
//     value option takes the rest of the cluster, or the next token when
//     the cluster ends with it
//   - anything else, including a lone "-", is a positional argument
//
// After "--" every token is a positional argument.
//
// Positional arguments fill the schema's positionals in order. A rest
// positional collects every remaining argument. When the schema has
// commands, the first positional names the command and decoding continues
// with that command's schema.
//
// # Results
//
// Decode never returns an error. It records the last problem it saw on
// Result.Err and keeps going, so a Result always carries every value that
// could be decoded:
//
//	res := decode.Decode(s, os.Args[1:])
//	if res.Err != nil {
//	    // show usage
//	}
//	// res.Apply is in the handler's call shape:
//	// positionals in order, nil for missing optional ones, and the
//	// option map at the schema's options slot.
//
// Option values are strings, true for flags, or nil when a value was
// missing. The rest positional is a []string in Values and is flattened
// into Apply.
package decode
