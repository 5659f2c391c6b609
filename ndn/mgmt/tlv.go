/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package mgmt contains the structures of the NFD Management Protocol.
package mgmt

import (
	"time"
	"unicode/utf8"

	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/tlv"
)

// wrapped holds a single nested element, such as the Name inside a Strategy.
type wrapped struct {
	t     tlv.Type
	inner tlv.Element
}

func (w wrapped) Type() tlv.Type {
	return w.t
}

func (w wrapped) Length() int {
	return tlv.Size(w.inner)
}

func (w wrapped) AppendValue(dst []byte) []byte {
	return tlv.Append(dst, w.inner)
}

// encoder collects the sub-elements of a management structure.
type encoder []tlv.Element

func (e *encoder) add(elem tlv.Element) {
	if elem != nil {
		*e = append(*e, elem)
	}
}

func optNumber[K tlv.Kind](v *uint64) tlv.Element {
	if v == nil {
		return nil
	}
	return tlv.Number[K](*v)
}

func optText[K tlv.Kind](s *string) tlv.Element {
	if s == nil {
		return nil
	}
	return tlv.String[K](*s)
}

func timestamp[K tlv.Kind](v time.Time) tlv.Element {
	return tlv.Number[K](v.UnixMilli())
}

func optDuration[K tlv.Kind](v *time.Duration) tlv.Element {
	if v == nil {
		return nil
	}
	return tlv.Number[K](v.Milliseconds())
}

func (e encoder) length() int {
	return tlv.SizeAll(e...)
}

func (e encoder) appendTo(dst []byte) []byte {
	for _, elem := range e {
		dst = tlv.Append(dst, elem)
	}
	return dst
}

// fields maps the types a management structure knows to their handlers.
type fields map[tlv.Type]func(elem *tlv.Generic) error

// decodeFields dispatches each sub-element of value to its handler and returns the set of types
// seen. Known elements may appear in any order but only once, unless listed as repeatable.
func decodeFields(parent tlv.Type, value []byte, handlers fields, repeatable ...tlv.Type) (map[tlv.Type]bool, error) {
	seen := make(map[tlv.Type]bool, len(handlers))
	r := tlv.NewReader(value)
	for !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}

		handle, ok := handlers[elem.Type()]
		if !ok {
			if err := tlv.Unrecognized(parent, elem); err != nil {
				return nil, err
			}
			continue
		}
		if seen[elem.Type()] && !isRepeatable(elem.Type(), repeatable) {
			return nil, tlv.Duplicate(parent, elem)
		}
		seen[elem.Type()] = true
		if err := handle(elem); err != nil {
			return nil, err
		}
	}
	return seen, nil
}

func isRepeatable(t tlv.Type, repeatable []tlv.Type) bool {
	for _, r := range repeatable {
		if r == t {
			return true
		}
	}
	return false
}

func requireFields(parent tlv.Type, present map[tlv.Type]bool, required ...tlv.Type) error {
	for _, t := range required {
		if !present[t] {
			return tlv.Invalidf(parent, "missing required element %s", t.Name())
		}
	}
	return nil
}

func nniField(dst *uint64) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		n, err := tlv.DecodeNonNegativeNumber(elem.Value())
		if err != nil {
			return tlv.InvalidElement(elem.Type(), elem, err.Error())
		}
		*dst = uint64(n)
		return nil
	}
}

func optNNIField(dst **uint64) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		*dst = new(uint64)
		return nniField(*dst)(elem)
	}
}

func textField(dst *string) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		if !utf8.Valid(elem.Value()) {
			return tlv.Invalidf(elem.Type(), "invalid UTF-8 text")
		}
		*dst = string(elem.Value())
		return nil
	}
}

func optTextField(dst **string) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		*dst = new(string)
		return textField(*dst)(elem)
	}
}

func nameField(dst **ndn.Name) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		name, err := ndn.DecodeName(elem.Type(), elem.Value())
		*dst = name
		return err
	}
}

func timestampField(dst *time.Time) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		var ms uint64
		if err := nniField(&ms)(elem); err != nil {
			return err
		}
		*dst = time.UnixMilli(int64(ms))
		return nil
	}
}

func durationField(dst **time.Duration) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		var ms uint64
		if err := nniField(&ms)(elem); err != nil {
			return err
		}
		*dst = new(time.Duration)
		**dst = time.Duration(ms) * time.Millisecond
		return nil
	}
}
