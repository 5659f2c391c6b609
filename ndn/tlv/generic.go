/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"fmt"
)

// Generic is a TLV element whose value has not been interpreted yet.
// A Generic is never modified after creation; its value may share storage
// with the buffer it was decoded from.
type Generic struct {
	tlvType Type
	value   []byte
}

///////////////
// Constructors
///////////////

// NewGeneric creates an element of the specified type holding value. The value is not copied.
func NewGeneric(tlvType Type, value []byte) *Generic {
	return &Generic{tlvType: tlvType, value: value}
}

// FromElement converts an encodable value into a Generic holding its encoded value.
func FromElement(e Element) *Generic {
	if g, ok := e.(*Generic); ok {
		return g
	}
	return &Generic{tlvType: e.Type(), value: e.AppendValue(make([]byte, 0, e.Length()))}
}

// DecodeGeneric frames the element at the front of buf and returns it with the
// number of bytes it occupied. If buf does not hold the entire element yet,
// DecodeGeneric returns a nil element and a nil error without consuming anything.
// The returned value shares storage with buf.
func DecodeGeneric(buf []byte) (*Generic, int, error) {
	tlvType, typeLen, err := DecodeVarNumber(buf)
	if err == ErrIncomplete {
		return nil, 0, nil
	} else if err != nil {
		return nil, 0, err
	}

	length, lengthLen, err := DecodeVarNumber(buf[typeLen:])
	if err == ErrIncomplete {
		return nil, 0, nil
	} else if err != nil {
		return nil, 0, err
	}

	start := typeLen + lengthLen
	if uint64(len(buf)-start) < uint64(length) {
		return nil, 0, nil
	}
	end := start + int(length)
	return &Generic{tlvType: Type(tlvType), value: buf[start:end:end]}, end, nil
}

//////////
// Getters
//////////

// Type returns the TLV-TYPE of the element.
func (g *Generic) Type() Type {
	return g.tlvType
}

// Length returns the TLV-LENGTH of the element.
func (g *Generic) Length() int {
	return len(g.value)
}

// Value returns the TLV-VALUE of the element. It must not be modified.
func (g *Generic) Value() []byte {
	return g.value
}

// AppendValue appends the TLV-VALUE of the element to dst.
func (g *Generic) AppendValue(dst []byte) []byte {
	return append(dst, g.value...)
}

// Wire returns the encoding of the whole element.
func (g *Generic) Wire() []byte {
	return Encode(g)
}

func (g *Generic) String() string {
	return fmt.Sprintf("Generic(Type=%s, Length=%d)", g.tlvType.Name(), len(g.value))
}

// Items parses the value of the element as a sequence of nested elements.
func (g *Generic) Items() ([]*Generic, error) {
	items := make([]*Generic, 0, 4)
	r := NewReader(g.value)
	for !r.Empty() {
		item, err := r.ReadElement()
		if err != nil {
			return nil, withParent(err, g.tlvType)
		}
		items = append(items, item)
	}
	return items, nil
}

/////////////
// Validation
/////////////

// CheckType returns the element itself if it has the specified type.
func (g *Generic) CheckType(expected Type) (*Generic, error) {
	if g.tlvType != expected {
		return nil, TypeMismatch(expected, g)
	}
	return g, nil
}

// CheckLength returns the element itself if its value is exactly expected octets long.
func (g *Generic) CheckLength(expected int) (*Generic, error) {
	if len(g.value) != expected {
		return nil, LengthMismatch(expected, g)
	}
	return g, nil
}

// withParent attributes an error without a type to the element being decoded.
func withParent(err error, t Type) error {
	if de, ok := err.(*DecodeError); ok && de.Type == Unassigned && de.Kind != ErrTypeMismatch {
		copied := *de
		copied.Type = t
		return &copied
	}
	return err
}
