/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/utils/comparison"
)

// Name represents an NDN name. A Name is never modified after creation:
// operations that change a name return a new one.
type Name struct {
	components []NameComponent
}

// NewName creates a name from the specified components.
func NewName(components ...NameComponent) *Name {
	n := new(Name)
	n.components = make([]NameComponent, len(components))
	copy(n.components, components)
	return n
}

// NameFromString decodes a name from its URI representation.
// Empty segments, such as those left by leading and trailing slashes, are ignored.
func NameFromString(str string) (*Name, error) {
	n := new(Name)
	for _, segment := range strings.Split(strings.TrimPrefix(str, "ndn:"), "/") {
		if segment == "" {
			continue
		}
		c, err := NameComponentFromString(segment)
		if err != nil {
			return nil, err
		}
		n.components = append(n.components, c)
	}
	return n, nil
}

// MustNameFromString is like NameFromString but panics if str cannot be parsed.
func MustNameFromString(str string) *Name {
	n, err := NameFromString(str)
	if err != nil {
		panic(err)
	}
	return n
}

// DecodeName decodes a name from the value of a Name element.
func DecodeName(tlvType tlv.Type, value []byte) (*Name, error) {
	n := new(Name)
	r := tlv.NewReader(value)
	for !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		c, err := DecodeNameComponent(elem.Type(), elem.Value())
		if err != nil {
			return nil, err
		}
		n.components = append(n.components, c)
	}
	return n, nil
}

func (n *Name) String() string {
	if len(n.components) == 0 {
		return "/"
	}

	var out strings.Builder
	for _, component := range n.components {
		out.WriteByte('/')
		out.WriteString(component.String())
	}
	return out.String()
}

// Type returns the TLV type of a name.
func (n *Name) Type() tlv.Type {
	return tlv.Name
}

// Length returns the length of the encoded components.
func (n *Name) Length() int {
	length := 0
	for _, component := range n.components {
		length += tlv.Size(component)
	}
	return length
}

// AppendValue appends the encoded components to dst.
func (n *Name) AppendValue(dst []byte) []byte {
	for _, component := range n.components {
		dst = tlv.Append(dst, component)
	}
	return dst
}

// Append returns a new name with the specified components added to the end.
func (n *Name) Append(components ...NameComponent) *Name {
	name := new(Name)
	name.components = make([]NameComponent, 0, len(n.components)+len(components))
	name.components = append(name.components, n.components...)
	name.components = append(name.components, components...)
	return name
}

// At returns the name component at the specified index, counting from the end if negative. If out of range, nil is returned.
func (n *Name) At(index int) NameComponent {
	if index < -len(n.components) || index >= len(n.components) {
		return nil
	}

	if index < 0 {
		return n.components[len(n.components)+index]
	}
	return n.components[index]
}

// Components returns a copy of the components of the name.
func (n *Name) Components() []NameComponent {
	components := make([]NameComponent, len(n.components))
	copy(components, n.components)
	return components
}

// Compare returns the canonical order of this name against the specified other name.
func (n *Name) Compare(other *Name) int {
	for i := 0; i < comparison.Min(n.Size(), other.Size()); i++ {
		a, b := n.components[i], other.components[i]
		switch {
		case a.Type() < b.Type():
			return -1
		case a.Type() > b.Type():
			return 1
		case len(a.Value()) < len(b.Value()):
			return -1
		case len(a.Value()) > len(b.Value()):
			return 1
		}
		if cmp := bytes.Compare(a.Value(), b.Value()); cmp != 0 {
			return cmp
		}
	}

	switch {
	case n.Size() < other.Size():
		return -1
	case n.Size() > other.Size():
		return 1
	default:
		return 0
	}
}

// Equals returns whether the specified name is equal to this name.
func (n *Name) Equals(other *Name) bool {
	return other != nil && n.Size() == other.Size() && n.PrefixOf(other)
}

// Find returns the first name component with the specified type, as well as its index.
func (n *Name) Find(tlvType tlv.Type) (int, NameComponent) {
	for i, component := range n.components {
		if component.Type() == tlvType {
			return i, component
		}
	}

	return -1, nil
}

// Prefix returns a name prefix of the specified number of components. A negative size
// removes that many components from the end. Sizes beyond the name return a copy of it.
func (n *Name) Prefix(size int) *Name {
	if size < 0 {
		size += len(n.components)
	}
	size = comparison.Clamp(size, 0, len(n.components))
	return NewName(n.components[:size]...)
}

// PrefixOf returns whether this name is a prefix of the specified name.
func (n *Name) PrefixOf(other *Name) bool {
	if other == nil || n.Size() > other.Size() {
		return false
	}

	for i := 0; i < n.Size(); i++ {
		if !n.components[i].Equals(other.components[i]) {
			return false
		}
	}

	return true
}

// Size returns the number of components in the name.
func (n *Name) Size() int {
	return len(n.components)
}

// Hash returns a hash of the encoded name, for use as a table key.
func (n *Name) Hash() uint64 {
	return xxhash.Sum64(n.AppendValue(make([]byte, 0, n.Length())))
}

// PrefixHashes returns the hashes of every prefix of the name, from the empty prefix to the name itself.
func (n *Name) PrefixHashes() []uint64 {
	hashes := make([]uint64, 0, len(n.components)+1)
	wire := make([]byte, 0, n.Length())
	hashes = append(hashes, xxhash.Sum64(wire))
	for _, component := range n.components {
		wire = tlv.Append(wire, component)
		hashes = append(hashes, xxhash.Sum64(wire))
	}
	return hashes
}
