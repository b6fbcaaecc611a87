// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decoding error.
type ErrorKind int

const (
	None ErrorKind = iota
	UnknownOption
	OptionMissingValue
	UnexpectedValueForFlag
	TooManyArguments
	CommandNotFound
	MissingRequiredArgument
)

// String returns the message shown to users for the kind.
func (k ErrorKind) String() string {
	switch k {
	case None:
		return ""
	case UnknownOption:
		return "Unknown option"
	case OptionMissingValue:
		return "Option missing value"
	case UnexpectedValueForFlag:
		return "Didn't expect value for flag argument"
	case TooManyArguments:
		return "Too many arguments"
	case CommandNotFound:
		return "Command not found"
	case MissingRequiredArgument:
		return "Missing required argument"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per ErrorKind. An *Error unwraps to the sentinel of
// its kind so callers can use errors.Is.
var (
	ErrUnknownOption           = errors.New("unknown option")
	ErrOptionMissingValue      = errors.New("option missing value")
	ErrUnexpectedValueForFlag  = errors.New("unexpected value for flag")
	ErrTooManyArguments        = errors.New("too many arguments")
	ErrCommandNotFound         = errors.New("command not found")
	ErrMissingRequiredArgument = errors.New("missing required argument")
)

var sentinels = map[ErrorKind]error{
	UnknownOption:           ErrUnknownOption,
	OptionMissingValue:      ErrOptionMissingValue,
	UnexpectedValueForFlag:  ErrUnexpectedValueForFlag,
	TooManyArguments:        ErrTooManyArguments,
	CommandNotFound:         ErrCommandNotFound,
	MissingRequiredArgument: ErrMissingRequiredArgument,
}

// Error is a decoding error recorded on a Result.
type Error struct {
	Kind ErrorKind
	// Arg is the token that caused the error, or the external name of the
	// missing positional for MissingRequiredArgument.
	Arg string
}

func (e *Error) Error() string {
	if e.Arg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Arg)
}

func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}
