// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"
)

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole prints coloured levels and is the default.
	FormatConsole Format = iota
	// FormatText prints plain text lines, for files and tests.
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ErrFormatNotRecognised is returned by ParseFormat for
// an unknown format string.
var ErrFormatNotRecognised = errors.New("format is not recognised")

// ParseFormat parses a format string.
func ParseFormat(s string) (format Format, err error) {
	switch strings.ToLower(s) {
	case FormatConsole.String():
		return FormatConsole, nil
	case FormatText.String():
		return FormatText, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrFormatNotRecognised, s)
}
