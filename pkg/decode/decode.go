// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/fargs/pkg/names"
	"github.com/yeetrun/fargs/pkg/schema"
)

// Result is the outcome of decoding one command line.
type Result struct {
	// Values holds positional and option values keyed by canonical name.
	// Later occurrences overwrite earlier ones.
	Values map[string]any
	// OptionValues holds option values only. The same map is spliced into
	// Apply as the option bundle.
	OptionValues map[string]any
	// Apply is the argument list in the handler's call shape.
	Apply []any
	// Command is the deepest command selected, or nil.
	Command *schema.CommandSchema
	// CommandPath lists every command name matched, outermost first.
	CommandPath []string
	// Schema is the schema that was active when decoding finished.
	Schema *schema.Schema
	// Err is the last error detected, or nil.
	Err *Error
}

// ErrorKind returns the kind of r.Err, or None.
func (r *Result) ErrorKind() ErrorKind {
	if r.Err == nil {
		return None
	}
	return r.Err.Kind
}

// OK reports whether decoding finished without error.
func (r *Result) OK() bool {
	return r.Err == nil
}

// decoder holds the state of a single Decode call.
type decoder struct {
	args []string
	i    int // index of the next unread token

	optionsAllowed bool
	active         *schema.Schema
	pending        []schema.PositionalSpec // re-sliced, never written
	restTarget     string                  // empty until a rest positional is bound
	rest           []string

	res *Result
}

// Decode decodes args, which must not include the program name, against s.
// It never fails: problems are recorded on the returned Result, the last
// one detected winning, and decoding continues to the end of args.
//
// s is only read, so a single schema may be shared by concurrent calls. A
// nil schema accepts nothing.
func Decode(s *schema.Schema, args []string) *Result {
	if s == nil {
		s = &schema.Schema{}
	}
	d := &decoder{
		args:           args,
		optionsAllowed: true,
		active:         s,
		pending:        s.Positionals,
		res: &Result{
			Values:       map[string]any{},
			OptionValues: map[string]any{},
		},
	}
	for d.i < len(d.args) {
		tok := d.args[d.i]
		d.i++
		switch {
		case d.optionsAllowed && tok == "--":
			d.optionsAllowed = false
		case d.optionsAllowed && strings.HasPrefix(tok, "--"):
			d.longOption(tok)
		case d.optionsAllowed && isOptionLike(tok):
			d.shortCluster(tok)
		case d.restTarget != "":
			d.restRun()
		default:
			d.positional(tok)
		}
	}
	d.finish()
	return d.res
}

// isOptionLike reports whether tok would be read as an option while options
// are allowed. A lone "-" is a positional.
func isOptionLike(tok string) bool {
	return len(tok) >= 2 && tok[0] == '-'
}

func (d *decoder) fail(kind ErrorKind, arg string) {
	d.res.Err = &Error{Kind: kind, Arg: arg}
}

func (d *decoder) set(spec *schema.OptionSpec, v any) {
	d.res.OptionValues[spec.Name] = v
	d.res.Values[spec.Name] = v
}

// next consumes the following token as an option value. An empty token
// counts as no value.
func (d *decoder) next() (string, bool) {
	if d.i >= len(d.args) {
		d.i++
		return "", false
	}
	v := d.args[d.i]
	d.i++
	return v, v != ""
}

// longOption handles --name and --name=value.
func (d *decoder) longOption(tok string) {
	name, inline, _ := strings.Cut(tok[2:], "=")
	spec := d.active.Option(names.ToCanonical(name))
	if spec == nil {
		d.fail(UnknownOption, tok)
		return
	}
	if !spec.TakesValue {
		if inline != "" {
			d.fail(UnexpectedValueForFlag, tok)
		}
		d.set(spec, true)
		return
	}
	if inline != "" {
		d.set(spec, inline)
		return
	}
	d.value(spec, tok)
}

// value reads the next token as the value of spec.
func (d *decoder) value(spec *schema.OptionSpec, tok string) {
	v, ok := d.next()
	if !ok {
		d.fail(OptionMissingValue, tok)
		d.set(spec, nil)
		return
	}
	d.set(spec, v)
}

// shortCluster handles -x, -xyz, -xvalue and -x value.
func (d *decoder) shortCluster(tok string) {
	cluster := tok[1:]
	for len(cluster) > 0 {
		_, size := utf8.DecodeRuneInString(cluster)
		key := cluster[:size]
		cluster = cluster[size:]
		spec := d.active.Option(key)
		if spec == nil {
			d.fail(UnknownOption, "-"+key)
			continue
		}
		if !spec.TakesValue {
			d.set(spec, true)
			continue
		}
		if cluster != "" {
			d.set(spec, cluster)
			return
		}
		d.value(spec, "-"+key)
		return
	}
}

// restRun appends the run of tokens starting at the one just read to the
// rest positional. While options are allowed the run ends before the next
// option-like token.
func (d *decoder) restRun() {
	start := d.i - 1
	if d.optionsAllowed {
		for d.i < len(d.args) && !isOptionLike(d.args[d.i]) {
			d.i++
		}
	} else {
		d.i = len(d.args)
	}
	run := d.args[start:d.i]
	d.rest = append(d.rest, run...)
	for _, a := range run {
		d.res.Apply = append(d.res.Apply, a)
	}
	d.res.Values[d.restTarget] = d.rest
}

// positional binds tok to the next pending positional, selecting a command
// when the active schema has commands.
func (d *decoder) positional(tok string) {
	if len(d.pending) == 0 {
		d.fail(TooManyArguments, tok)
		return
	}
	spec := d.pending[0]
	d.pending = d.pending[1:]

	if d.active.HasCommands() {
		cmd := d.active.Command(tok)
		if cmd == nil {
			d.fail(CommandNotFound, tok)
			return
		}
		d.res.Command = cmd
		d.res.CommandPath = append(d.res.CommandPath, cmd.Name)
		d.active = cmd.Schema
		if d.active == nil {
			d.active = &schema.Schema{}
		}
		d.pending = d.active.Positionals
		return
	}

	d.res.Apply = append(d.res.Apply, tok)
	if spec.Rest {
		d.restTarget = spec.Name
		d.rest = []string{tok}
		d.res.Values[spec.Name] = d.rest
		return
	}
	d.res.Values[spec.Name] = tok
}

// finish checks the positionals that were never bound and splices the
// option bundle into the apply list.
func (d *decoder) finish() {
	for _, p := range d.pending {
		switch {
		case p.Required:
			d.fail(MissingRequiredArgument, names.ToExternal(p.Name))
		case !p.Rest:
			d.res.Apply = append(d.res.Apply, nil)
		}
	}
	d.res.Schema = d.active
	if d.active.OptionsSlot == nil {
		return
	}
	slot := min(max(*d.active.OptionsSlot, 0), len(d.res.Apply))
	d.res.Apply = append(d.res.Apply, nil)
	copy(d.res.Apply[slot+1:], d.res.Apply[slot:])
	d.res.Apply[slot] = d.res.OptionValues
}
