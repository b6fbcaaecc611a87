// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// FileFormat is the schema file format version written by this package.
const FileFormat = "1.0.0"

// supportedFormats is the range of file format versions Load accepts.
const supportedFormats = "^1"

// FileNames are the schema file names Find looks for, in order.
var FileNames = []string{"fargs.toml", "fargs.yaml", "fargs.yml"}

// ErrUnsupportedFormat is returned for files whose extension or format
// version is not understood.
var ErrUnsupportedFormat = errors.New("unsupported schema file format")

// document is the on-disk form of a Schema. Nested commands use the same
// shape; their format field is ignored.
type document struct {
	Format      string               `toml:"format,omitempty" yaml:"format,omitempty"`
	Synopsis    string               `toml:"synopsis,omitempty" yaml:"synopsis,omitempty"`
	OptionsSlot *int                 `toml:"options_slot,omitempty" yaml:"options_slot,omitempty"`
	Positional  []positionalDoc      `toml:"positional,omitempty" yaml:"positional,omitempty"`
	Option      []optionDoc          `toml:"option,omitempty" yaml:"option,omitempty"`
	Commands    map[string]*document `toml:"commands,omitempty" yaml:"commands,omitempty"`
}

type positionalDoc struct {
	Name     string `toml:"name" yaml:"name"`
	Required bool   `toml:"required,omitempty" yaml:"required,omitempty"`
	Rest     bool   `toml:"rest,omitempty" yaml:"rest,omitempty"`
	Synopsis string `toml:"synopsis,omitempty" yaml:"synopsis,omitempty"`
}

type optionDoc struct {
	Name     string `toml:"name" yaml:"name"`
	Alias    string `toml:"alias,omitempty" yaml:"alias,omitempty"`
	Value    bool   `toml:"value,omitempty" yaml:"value,omitempty"`
	Synopsis string `toml:"synopsis,omitempty" yaml:"synopsis,omitempty"`
}

// LoadFile reads a schema from a .toml, .yaml or .yml file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Load(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Load parses a schema document. ext selects the syntax: ".toml", ".yaml"
// or ".yml".
//
// A TOML document looks like:
//
//	format = "1.0.0"
//	synopsis = "Greet someone"
//	options_slot = 1
//
//	[[positional]]
//	name = "name"
//	required = true
//
//	[[option]]
//	name = "greeting"
//	alias = "g"
//	value = true
func Load(data []byte, ext string) (*Schema, error) {
	var doc document
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	return doc.schema()
}

func checkFormat(format string) error {
	if format == "" {
		format = FileFormat
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return fmt.Errorf("%w: bad format version %q: %v", ErrUnsupportedFormat, format, err)
	}
	c, err := semver.NewConstraint(supportedFormats)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: format %s, want %s", ErrUnsupportedFormat, v, supportedFormats)
	}
	return nil
}

func (d *document) schema() (*Schema, error) {
	b := New().Synopsis(d.Synopsis)
	for _, p := range d.Positional {
		b.positional(PositionalSpec{Name: p.Name, Required: p.Required, Rest: p.Rest, Synopsis: p.Synopsis})
	}
	for _, o := range d.Option {
		b.option(o.Name, o.Alias, o.Value, o.Synopsis)
	}
	if d.OptionsSlot != nil {
		b.OptionsAt(*d.OptionsSlot)
	}
	cmdNames := make([]string, 0, len(d.Commands))
	for name := range d.Commands {
		cmdNames = append(cmdNames, name)
	}
	slices.Sort(cmdNames)
	for _, name := range cmdNames {
		sub := d.Commands[name]
		if sub == nil {
			sub = &document{}
		}
		s, err := sub.schema()
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}
		b.Command(name, s)
	}
	return b.Build()
}

// Find looks for a schema file in startDir and each of its parents and
// returns the first path found. It returns an error satisfying
// errors.Is(err, os.ErrNotExist) when there is none.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
