/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/ndn/util"
	"github.com/pkg/errors"
)

// NameComponent represents an NDN name component.
type NameComponent interface {
	tlv.Element
	// String returns the URI representation of the component, without the leading slash.
	String() string
	// Value returns the TLV-VALUE of the component. It must not be modified.
	Value() []byte
	Equals(other NameComponent) bool
}

// DecodeNameComponent decodes a name component from its TLV type and value.
// Types without a specialized representation become an OtherNameComponent.
func DecodeNameComponent(tlvType tlv.Type, value []byte) (NameComponent, error) {
	switch tlvType {
	case tlv.ImplicitSha256DigestComponent:
		if len(value) != 32 {
			return nil, tlv.LengthMismatch(32, tlv.NewGeneric(tlvType, value))
		}
		return &ImplicitSha256DigestComponent{baseComponent{tlvType, value}}, nil
	case tlv.ParametersSha256DigestComponent:
		if len(value) != 32 {
			return nil, tlv.LengthMismatch(32, tlv.NewGeneric(tlvType, value))
		}
		return &ParametersSha256DigestComponent{baseComponent{tlvType, value}}, nil
	case tlv.GenericNameComponent:
		return &GenericNameComponent{baseComponent{tlvType, value}}, nil
	case tlv.KeywordNameComponent:
		return &KeywordNameComponent{baseComponent{tlvType, value}}, nil
	case tlv.SegmentNameComponent:
		c, err := decodeNumberComponent(tlvType, value)
		if err != nil {
			return nil, err
		}
		return &SegmentNameComponent{c}, nil
	case tlv.ByteOffsetNameComponent:
		c, err := decodeNumberComponent(tlvType, value)
		if err != nil {
			return nil, err
		}
		return &ByteOffsetNameComponent{c}, nil
	case tlv.VersionNameComponent:
		c, err := decodeNumberComponent(tlvType, value)
		if err != nil {
			return nil, err
		}
		return &VersionNameComponent{c}, nil
	case tlv.TimestampNameComponent:
		c, err := decodeNumberComponent(tlvType, value)
		if err != nil {
			return nil, err
		}
		return &TimestampNameComponent{c}, nil
	case tlv.SequenceNumNameComponent:
		c, err := decodeNumberComponent(tlvType, value)
		if err != nil {
			return nil, err
		}
		return &SequenceNumNameComponent{c}, nil
	default:
		return &OtherNameComponent{baseComponent{tlvType, value}}, nil
	}
}

////////////////
// baseComponent
////////////////

type baseComponent struct {
	tlvType tlv.Type
	value   []byte
}

// Type returns the TLV type of the name component.
func (n *baseComponent) Type() tlv.Type {
	return n.tlvType
}

// Length returns the length of the TLV value of the name component.
func (n *baseComponent) Length() int {
	return len(n.value)
}

// AppendValue appends the TLV value of the name component to dst.
func (n *baseComponent) AppendValue(dst []byte) []byte {
	return append(dst, n.value...)
}

// Value returns the TLV value of the name component.
func (n *baseComponent) Value() []byte {
	return n.value
}

// Equals returns whether the two name components match.
func (n *baseComponent) Equals(other NameComponent) bool {
	return other != nil && n.tlvType == other.Type() && bytes.Equal(n.value, other.Value())
}

/////////////////////
// OtherNameComponent
/////////////////////

// OtherNameComponent is a name component of a type without a specialized representation.
// It keeps the type and value as received.
type OtherNameComponent struct {
	baseComponent
}

// NewOtherNameComponent creates a name component of an arbitrary type.
func NewOtherNameComponent(tlvType tlv.Type, value []byte) *OtherNameComponent {
	return &OtherNameComponent{baseComponent{tlvType, value}}
}

func (n *OtherNameComponent) String() string {
	return n.tlvType.String() + "=" + escapeComponent(n.value)
}

////////////////////////////////
// ImplicitSha256DigestComponent
////////////////////////////////

// ImplicitSha256DigestComponent represents an implicit SHA-256 digest component.
type ImplicitSha256DigestComponent struct {
	baseComponent
}

// NewImplicitSha256DigestComponent creates a new ImplicitSha256DigestComponent. The digest must be 32 octets.
func NewImplicitSha256DigestComponent(digest []byte) (*ImplicitSha256DigestComponent, error) {
	if len(digest) != 32 {
		return nil, util.ErrOutOfRange
	}
	return &ImplicitSha256DigestComponent{baseComponent{tlv.ImplicitSha256DigestComponent, digest}}, nil
}

func (n *ImplicitSha256DigestComponent) String() string {
	return "sha256digest=" + hex.EncodeToString(n.value)
}

//////////////////////////////////
// ParametersSha256DigestComponent
//////////////////////////////////

// ParametersSha256DigestComponent represents a component containing the SHA-256 digest of the Interest parameters.
type ParametersSha256DigestComponent struct {
	baseComponent
}

// NewParametersSha256DigestComponent creates a new ParametersSha256DigestComponent. The digest must be 32 octets.
func NewParametersSha256DigestComponent(digest []byte) (*ParametersSha256DigestComponent, error) {
	if len(digest) != 32 {
		return nil, util.ErrOutOfRange
	}
	return &ParametersSha256DigestComponent{baseComponent{tlv.ParametersSha256DigestComponent, digest}}, nil
}

func (n *ParametersSha256DigestComponent) String() string {
	return "params-sha256=" + hex.EncodeToString(n.value)
}

///////////////////////
// GenericNameComponent
///////////////////////

// GenericNameComponent represents a generic NDN name component.
type GenericNameComponent struct {
	baseComponent
}

// NewGenericNameComponent creates a new GenericNameComponent.
func NewGenericNameComponent(value []byte) *GenericNameComponent {
	return &GenericNameComponent{baseComponent{tlv.GenericNameComponent, value}}
}

// NewStringNameComponent creates a GenericNameComponent holding text.
func NewStringNameComponent(value string) *GenericNameComponent {
	return NewGenericNameComponent([]byte(value))
}

func (n *GenericNameComponent) String() string {
	return escapeComponent(n.value)
}

///////////////////////
// KeywordNameComponent
///////////////////////

// KeywordNameComponent is a component containing a well-known keyword.
type KeywordNameComponent struct {
	baseComponent
}

// NewKeywordNameComponent creates a new KeywordNameComponent.
func NewKeywordNameComponent(value []byte) *KeywordNameComponent {
	return &KeywordNameComponent{baseComponent{tlv.KeywordNameComponent, value}}
}

func (n *KeywordNameComponent) String() string {
	return n.tlvType.String() + "=" + escapeComponent(n.value)
}

//////////////////////
// Numeric components
//////////////////////

type numberComponent struct {
	baseComponent
	number uint64
}

func makeNumberComponent(tlvType tlv.Type, number uint64) numberComponent {
	return numberComponent{baseComponent{tlvType, tlv.NonNegativeNumber(number).Bytes()}, number}
}

func decodeNumberComponent(tlvType tlv.Type, value []byte) (numberComponent, error) {
	number, err := tlv.DecodeNonNegativeNumber(value)
	if err != nil {
		return numberComponent{}, tlv.InvalidElement(tlv.Name, tlv.NewGeneric(tlvType, value), err.Error())
	}
	return numberComponent{baseComponent{tlvType, value}, uint64(number)}, nil
}

// Number returns the number held by the component.
func (n *numberComponent) Number() uint64 {
	return n.number
}

// SegmentNameComponent is a component containing a segment number.
type SegmentNameComponent struct {
	numberComponent
}

// NewSegmentNameComponent creates a new SegmentNameComponent.
func NewSegmentNameComponent(value uint64) *SegmentNameComponent {
	return &SegmentNameComponent{makeNumberComponent(tlv.SegmentNameComponent, value)}
}

func (n *SegmentNameComponent) String() string {
	return "seg=" + strconv.FormatUint(n.number, 10)
}

// ByteOffsetNameComponent is a component containing a byte offset.
type ByteOffsetNameComponent struct {
	numberComponent
}

// NewByteOffsetNameComponent creates a new ByteOffsetNameComponent.
func NewByteOffsetNameComponent(value uint64) *ByteOffsetNameComponent {
	return &ByteOffsetNameComponent{makeNumberComponent(tlv.ByteOffsetNameComponent, value)}
}

func (n *ByteOffsetNameComponent) String() string {
	return "off=" + strconv.FormatUint(n.number, 10)
}

// VersionNameComponent is a component containing a version number.
type VersionNameComponent struct {
	numberComponent
}

// NewVersionNameComponent creates a new VersionNameComponent.
func NewVersionNameComponent(value uint64) *VersionNameComponent {
	return &VersionNameComponent{makeNumberComponent(tlv.VersionNameComponent, value)}
}

func (n *VersionNameComponent) String() string {
	return "v=" + strconv.FormatUint(n.number, 10)
}

// TimestampNameComponent is a component containing a timestamp in microseconds since the Unix epoch.
type TimestampNameComponent struct {
	numberComponent
}

// NewTimestampNameComponent creates a new TimestampNameComponent.
func NewTimestampNameComponent(value uint64) *TimestampNameComponent {
	return &TimestampNameComponent{makeNumberComponent(tlv.TimestampNameComponent, value)}
}

func (n *TimestampNameComponent) String() string {
	return "t=" + strconv.FormatUint(n.number, 10)
}

// SequenceNumNameComponent is a component containing a sequence number.
type SequenceNumNameComponent struct {
	numberComponent
}

// NewSequenceNumNameComponent creates a new SequenceNumNameComponent.
func NewSequenceNumNameComponent(value uint64) *SequenceNumNameComponent {
	return &SequenceNumNameComponent{makeNumberComponent(tlv.SequenceNumNameComponent, value)}
}

func (n *SequenceNumNameComponent) String() string {
	return "seq=" + strconv.FormatUint(n.number, 10)
}

///////
// Text
///////

// NameComponentFromString parses the URI representation of a name component.
func NameComponentFromString(str string) (NameComponent, error) {
	prefix, text, typed := strings.Cut(str, "=")
	if !typed {
		value, err := unescapeComponent(str)
		if err != nil {
			return nil, err
		}
		return NewGenericNameComponent(value), nil
	}

	value, err := unescapeComponent(text)
	if err != nil {
		return nil, err
	}

	switch prefix {
	case "sha256digest", "1":
		digest, err := hex.DecodeString(string(value))
		if err != nil || len(digest) != 32 {
			return nil, errors.Wrap(util.ErrDecodeNameComponent, "ImplicitSha256DigestComponent is not a 32-octet hex string")
		}
		return &ImplicitSha256DigestComponent{baseComponent{tlv.ImplicitSha256DigestComponent, digest}}, nil
	case "params-sha256", "2":
		digest, err := hex.DecodeString(string(value))
		if err != nil || len(digest) != 32 {
			return nil, errors.Wrap(util.ErrDecodeNameComponent, "ParametersSha256DigestComponent is not a 32-octet hex string")
		}
		return &ParametersSha256DigestComponent{baseComponent{tlv.ParametersSha256DigestComponent, digest}}, nil
	case "seg", "off", "v", "t", "seq":
		number, err := strconv.ParseUint(string(value), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(util.ErrDecodeNameComponent, "%q is not a decimal number", text)
		}
		switch prefix {
		case "seg":
			return NewSegmentNameComponent(number), nil
		case "off":
			return NewByteOffsetNameComponent(number), nil
		case "v":
			return NewVersionNameComponent(number), nil
		case "t":
			return NewTimestampNameComponent(number), nil
		default:
			return NewSequenceNumNameComponent(number), nil
		}
	default:
		tlvType, err := strconv.ParseUint(prefix, 10, 16)
		if err != nil {
			return nil, errors.Wrapf(util.ErrDecodeNameComponent, "unknown component type %q", prefix)
		}
		c, err := DecodeNameComponent(tlv.Type(tlvType), value)
		if err != nil {
			return nil, errors.Wrap(util.ErrDecodeNameComponent, err.Error())
		}
		return c, nil
	}
}

func escapeComponent(in []byte) string {
	out := make([]byte, 0, 3*len(in)) // Capacity of 3 * len is worst case if every character has to be escaped
	nPeriods := 0
	for _, b := range in {
		switch {
		case b == '.':
			nPeriods++
			fallthrough
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-' || b == '_' || b == '~':
			out = append(out, b)
		default:
			out = append(out, '%', 0, 0)
			hex.Encode(out[len(out)-2:], []byte{b})
		}
	}
	// A value made only of periods (including the empty value) gets three more.
	if nPeriods == len(in) {
		out = append(out, '.', '.', '.')
	}
	return string(out)
}

func unescapeComponent(in string) ([]byte, error) {
	if strings.Trim(in, ".") == "" {
		if len(in) < 3 {
			return nil, errors.Wrapf(util.ErrDecodeNameComponent, "%q is not a valid component", in)
		}
		return []byte(in[3:]), nil
	}

	out := make([]byte, 0, len(in)) // Capacity is worst case if nothing to be unescaped
	for i := 0; i < len(in); i++ {
		if in[i] == '%' {
			if len(in) <= i+2 {
				return nil, errors.Wrap(util.ErrDecodeNameComponent, "incomplete escape sequence")
			}
			unescaped, err := hex.DecodeString(in[i+1 : i+3])
			if err != nil {
				return nil, errors.Wrap(util.ErrDecodeNameComponent, "could not decode escape sequence")
			}
			out = append(out, unescaped...)
			i += 2
		} else {
			out = append(out, in[i])
		}
	}
	return out, nil
}
