/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Reader walks a buffer holding a sequence of TLV elements. Elements returned
// by a Reader share storage with its buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Empty returns whether every byte has been consumed.
func (r *Reader) Empty() bool {
	return r.pos >= len(r.buf)
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Rest returns the unconsumed bytes.
func (r *Reader) Rest() []byte {
	return r.buf[r.pos:]
}

// ReadVarNumber consumes a VarNumber. Nothing is consumed on failure.
func (r *Reader) ReadVarNumber() (VarNumber, error) {
	v, n, err := DecodeVarNumber(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// PeekVarNumber decodes a VarNumber without consuming it.
func (r *Reader) PeekVarNumber() (VarNumber, error) {
	v, _, err := DecodeVarNumber(r.buf[r.pos:])
	return v, err
}

// PeekType returns the type of the next element without consuming it.
func (r *Reader) PeekType() (Type, error) {
	v, err := r.PeekVarNumber()
	return Type(v), err
}

// ReadElement consumes the next element. The buffer of a Reader is already
// delimited, so an element running past its end is invalid rather than incomplete.
func (r *Reader) ReadElement() (*Generic, error) {
	g, n, err := DecodeGeneric(r.buf[r.pos:])
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, Invalidf(Unassigned, "element truncated at offset %d", r.pos)
	}
	r.pos += n
	return g, nil
}

// SkipUnrecognized consumes the elements at the front of r that known does not
// accept, applying Unrecognized to each. It stops at the first known element.
func (r *Reader) SkipUnrecognized(parent Type, known func(Type) bool) error {
	for !r.Empty() {
		t, err := r.PeekType()
		if err != nil {
			return withParent(err, parent)
		}
		if known(t) {
			return nil
		}
		g, err := r.ReadElement()
		if err != nil {
			return withParent(err, parent)
		}
		if err := Unrecognized(parent, g); err != nil {
			return err
		}
	}
	return nil
}
