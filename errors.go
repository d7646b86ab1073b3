/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import (
	"errors"
	"fmt"
)

// ErrNotDataLine is reported for lines that carry no kanji record, such as
// the version banner and comment lines. ParseDictionary skips such lines.
var ErrNotDataLine = errors.New("not a dictionary data line")

// ErrMalformedMorohashi is reported when the Morohashi volume/page token does
// not decompose into its expected parts. The field is left unset and the rest
// of the line still parses.
var ErrMalformedMorohashi = errors.New("malformed Morohashi reference")

// UnknownTokenError is reported for a token that matches no known field tag.
type UnknownTokenError struct {
	Token string
}

// Error implements "error" interface.
func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q", e.Token)
}

// ParseError wraps a fatal error of a whole dictionary parse with the number
// of the offending line.
type ParseError struct {
	Line int
	Err  error
}

// Error implements "error" interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap implements Wrapper interface.
func (e *ParseError) Unwrap() error {
	return e.Err
}
