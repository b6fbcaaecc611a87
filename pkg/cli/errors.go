// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"
)

// UsageError is a handler error caused by bad input. Run prints it
// followed by usage text.
type UsageError struct {
	Err error
}

// Usagef returns a *UsageError with a formatted message. The format may
// use %w.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string {
	msg := e.Err.Error()
	if strings.HasPrefix(msg, "error:") {
		return msg
	}
	return "error: " + msg
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// usageErr returns the error to show with usage text for a handler error:
// the *UsageError err is or wraps, or err itself when its message starts
// with "error:". It returns nil for any other error.
func usageErr(err error) error {
	if err == nil {
		return nil
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue
	}
	if strings.HasPrefix(err.Error(), "error:") {
		return err
	}
	return nil
}
