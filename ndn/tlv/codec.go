/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"github.com/named-data/ndntlv/core"
	"github.com/named-data/ndntlv/utils/optional"
)

// Element is a value that encodes as a single TLV element.
type Element interface {
	// Type returns the TLV-TYPE.
	Type() Type
	// Length returns the length of the TLV-VALUE.
	Length() int
	// AppendValue appends exactly Length() octets of TLV-VALUE to dst.
	AppendValue(dst []byte) []byte
}

// DecodeFunc reconstructs a value from the type and the delimited TLV-VALUE of an element.
type DecodeFunc[T any] func(tlvType Type, value []byte) (T, error)

///////////
// Encoding
///////////

// Size returns the length of the encoding of e, including its header.
func Size(e Element) int {
	length := e.Length()
	return VarNumber(e.Type()).Len() + VarNumber(length).Len() + length
}

// Append appends the encoding of e to dst.
func Append(dst []byte, e Element) []byte {
	dst = VarNumber(e.Type()).Append(dst)
	dst = VarNumber(e.Length()).Append(dst)
	return e.AppendValue(dst)
}

// Encode returns the encoding of e.
func Encode(e Element) []byte {
	return Append(make([]byte, 0, Size(e)), e)
}

// SizeAll returns the total length of the encodings of elems.
func SizeAll(elems ...Element) int {
	size := 0
	for _, e := range elems {
		size += Size(e)
	}
	return size
}

// EncodeAll returns the concatenated encodings of elems.
func EncodeAll(elems ...Element) []byte {
	wire := make([]byte, 0, SizeAll(elems...))
	for _, e := range elems {
		wire = Append(wire, e)
	}
	return wire
}

// SizeOptional returns the length of the encoding of o, or zero if it is absent.
func SizeOptional[T Element](o optional.Optional[T]) int {
	if v, ok := o.Get(); ok {
		return Size(v)
	}
	return 0
}

// AppendOptional appends the encoding of o to dst if it is present.
func AppendOptional[T Element](dst []byte, o optional.Optional[T]) []byte {
	if v, ok := o.Get(); ok {
		return Append(dst, v)
	}
	return dst
}

///////////
// Decoding
///////////

// Decode consumes the next element, which must be of the expected type.
func Decode[T any](r *Reader, expected Type, decode DecodeFunc[T]) (T, error) {
	var zero T
	g, err := r.ReadElement()
	if err != nil {
		return zero, err
	}
	if g.Type() != expected {
		return zero, TypeMismatch(expected, g)
	}
	v, err := decode(g.Type(), g.Value())
	if err != nil {
		return zero, withParent(err, expected)
	}
	return v, nil
}

// DecodeBytes decodes a buffer holding exactly one element of the expected type.
func DecodeBytes[T any](wire []byte, expected Type, decode DecodeFunc[T]) (T, error) {
	r := NewReader(wire)
	v, err := Decode(r, expected, decode)
	if err != nil {
		return v, err
	}
	if !r.Empty() {
		var zero T
		return zero, Invalidf(expected, "%d trailing octets", r.Remaining())
	}
	return v, nil
}

// DecodeOptional decodes the next element if it is of the expected type.
// Otherwise nothing is consumed and an absent Optional is returned.
func DecodeOptional[T any](r *Reader, expected Type, decode DecodeFunc[T]) (optional.Optional[T], error) {
	if r.Empty() {
		return optional.None[T](), nil
	}
	t, err := r.PeekType()
	if err != nil {
		return optional.None[T](), err
	}
	if t != expected {
		return optional.None[T](), nil
	}
	v, err := Decode(r, expected, decode)
	if err != nil {
		return optional.None[T](), err
	}
	return optional.Some(v), nil
}

// DecodeRepeated decodes elements of the expected type until r is exhausted.
func DecodeRepeated[T any](r *Reader, expected Type, decode DecodeFunc[T]) ([]T, error) {
	var values []T
	for !r.Empty() {
		v, err := Decode(r, expected, decode)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

/////////
// Policy
/////////

// Unrecognized handles an element that the decoder of parent does not know.
// Non-critical elements are skipped, critical ones are an error.
func Unrecognized(parent Type, g *Generic) error {
	if g.Type().IsCritical() {
		return InvalidElement(parent, g, "unrecognized critical element "+g.Type().Name())
	}
	core.LogDebug("TLV", "Skipping unrecognized non-critical element ", g.Type().Name(), " in ", parent.Name())
	return nil
}

// Duplicate reports a second occurrence of a non-repeatable element in parent.
func Duplicate(parent Type, g *Generic) error {
	return InvalidElement(parent, g, "duplicate element "+g.Type().Name())
}

// OutOfOrder reports an element that appears after elements it must precede.
func OutOfOrder(parent Type, g *Generic) error {
	return InvalidElement(parent, g, "element "+g.Type().Name()+" out of order")
}
