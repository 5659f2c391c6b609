/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete is returned when the buffer ends before the encoding it
// starts does. The caller may retry once more bytes are available.
var ErrIncomplete = errors.New("insufficient buffered bytes")

// Kinds of DecodeError, usable with errors.Is.
var (
	ErrTypeMismatch   = errors.New("unexpected TLV type")
	ErrLengthMismatch = errors.New("unexpected TLV length")
	ErrInvalid        = errors.New("invalid TLV value")
	ErrIO             = errors.New("TLV I/O error")
	ErrOther          = errors.New("TLV decode error")
)

// DecodeError is returned by every decoder in this package and the packages built on it.
type DecodeError struct {
	Kind     error
	Type     Type
	Expected int
	Found    int
	Element  *Generic
	Reason   string
	Err      error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	switch e.Kind {
	case ErrTypeMismatch:
		fmt.Fprintf(&sb, ": expected %s (%s)", e.Type, e.Type.Name())
		if e.Element != nil {
			fmt.Fprintf(&sb, ", found %s (%s)", e.Element.Type(), e.Element.Type().Name())
		}
	case ErrLengthMismatch:
		fmt.Fprintf(&sb, ": %s expected %d octets, found %d", e.Type.Name(), e.Expected, e.Found)
	default:
		if e.Type != Unassigned {
			sb.WriteString(" in " + e.Type.Name())
		}
	}
	if e.Reason != "" {
		sb.WriteString(": " + e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": " + e.Err.Error())
	}
	return sb.String()
}

// Is matches the kind of the error.
func (e *DecodeError) Is(target error) bool {
	return e.Kind == target
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TypeMismatch reports an element of the wrong type where expected was required.
func TypeMismatch(expected Type, found *Generic) error {
	return &DecodeError{Kind: ErrTypeMismatch, Type: expected, Element: found}
}

// LengthMismatch reports an element whose length is not the expected one.
func LengthMismatch(expected int, found *Generic) error {
	return &DecodeError{Kind: ErrLengthMismatch, Type: found.Type(), Expected: expected, Found: found.Length(), Element: found}
}

// Invalidf reports a malformed value of type t.
func Invalidf(t Type, format string, args ...interface{}) error {
	return &DecodeError{Kind: ErrInvalid, Type: t, Reason: fmt.Sprintf(format, args...)}
}

// InvalidElement reports a malformed or unacceptable element nested in parent.
func InvalidElement(parent Type, elem *Generic, reason string) error {
	return &DecodeError{Kind: ErrInvalid, Type: parent, Element: elem, Reason: reason}
}

// WrapIO wraps an error of the underlying reader.
func WrapIO(err error, reason string) error {
	return &DecodeError{Kind: ErrIO, Reason: reason, Err: err}
}

// Errorf reports a decode failure that fits no other kind.
func Errorf(format string, args ...interface{}) error {
	return &DecodeError{Kind: ErrOther, Reason: fmt.Sprintf(format, args...)}
}
