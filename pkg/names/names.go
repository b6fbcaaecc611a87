// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package names converts between the kebab-case spelling used on the
// command line and the camelCase keys used inside schemas and results.
package names

import "strings"

// ToCanonical converts an external option spelling to its canonical key.
// Every "-x" where x is a lowercase ASCII letter becomes "X", so "dry-run"
// becomes "dryRun". Names that are already canonical, and single-character
// names, are returned unchanged.
func ToCanonical(external string) string {
	if strings.IndexByte(external, '-') < 0 {
		return external
	}
	var b strings.Builder
	b.Grow(len(external))
	for i := 0; i < len(external); i++ {
		c := external[i]
		if c == '-' && i+1 < len(external) && isLower(external[i+1]) {
			b.WriteByte(external[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ToExternal converts a canonical key to the spelling shown to users.
// Names shorter than three characters are returned unchanged so that
// single-letter options like "O" keep their case.
func ToExternal(internal string) string {
	if len(internal) < 3 {
		return internal
	}
	var b strings.Builder
	b.Grow(len(internal) + 4)
	for i := 0; i < len(internal); i++ {
		c := internal[i]
		if isUpper(c) && i > 0 && isLower(internal[i-1]) {
			b.WriteByte('-')
		}
		b.WriteByte(c)
	}
	return strings.ToLower(b.String())
}

// RoundTrips reports whether the external spelling of name decodes back to
// name. Names that do not round trip cannot be typed on the command line
// in their displayed form.
func RoundTrips(name string) bool {
	return ToCanonical(ToExternal(name)) == name
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
