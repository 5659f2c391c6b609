/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"strconv"

	"github.com/named-data/ndntlv/ndn/security"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/utils/optional"
)

type contentKind struct{}

func (contentKind) TLVType() tlv.Type { return tlv.Content }

type signatureValueKind struct{}

func (signatureValueKind) TLVType() tlv.Type { return tlv.SignatureValue }

// Data represents an NDN Data packet.
type Data struct {
	name      *Name
	metaInfo  *MetaInfo
	content   optional.Optional[tlv.Bytes[contentKind]]
	signature *DataSignature

	// Set on decoded packets and cleared by any change.
	value         []byte
	signedPortion []byte
}

// NewData creates a new Data packet with the given name and content and a placeholder DigestSha256 signature.
// A nil content leaves the Content element out.
func NewData(name *Name, content []byte) *Data {
	d := new(Data)
	d.name = name
	if content != nil {
		d.content = optional.Some(tlv.Bytes[contentKind](content))
	}
	d.signature = PlaceholderSignature()
	return d
}

// DecodeData decodes the value of a Data element. The Name must come first. MetaInfo, Content,
// SignatureInfo and SignatureValue may then appear in any order, at most once each.
func DecodeData(tlvType tlv.Type, value []byte) (*Data, error) {
	d := new(Data)
	r := tlv.NewReader(value)

	var err error
	if d.name, err = tlv.Decode(r, tlv.Name, DecodeName); err != nil {
		return nil, err
	}

	var signatureInfo *SignatureInfo
	var signatureValue []byte
	hasSignatureValue := false
	signatureValueStart, signatureValueEnd := 0, 0
	for !r.Empty() {
		start := len(value) - r.Remaining()
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}

		switch elem.Type() {
		case tlv.MetaInfo:
			if d.metaInfo != nil {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			if d.metaInfo, err = DecodeMetaInfo(elem.Type(), elem.Value()); err != nil {
				return nil, err
			}
		case tlv.Content:
			if d.content.IsSet() {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			d.content = optional.Some(tlv.Bytes[contentKind](elem.Value()))
		case tlv.SignatureInfo:
			if signatureInfo != nil {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			if signatureInfo, err = DecodeSignatureInfo(elem.Type(), elem.Value()); err != nil {
				return nil, err
			}
			end := len(value) - r.Remaining()
			if hasSignatureValue {
				// SignatureValue is not signed even when it precedes SignatureInfo
				d.signedPortion = append(append([]byte{}, value[:signatureValueStart]...), value[signatureValueEnd:end]...)
			} else {
				d.signedPortion = value[:end]
			}
		case tlv.SignatureValue:
			if hasSignatureValue {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			hasSignatureValue = true
			signatureValue = elem.Value()
			signatureValueStart, signatureValueEnd = start, len(value)-r.Remaining()
		case tlv.Name:
			return nil, tlv.Duplicate(tlvType, elem)
		default:
			if err := tlv.Unrecognized(tlvType, elem); err != nil {
				return nil, err
			}
		}
	}

	switch {
	case signatureInfo == nil && !hasSignatureValue:
		return nil, tlv.Invalidf(tlvType, "Data is missing SignatureInfo and SignatureValue")
	case signatureInfo == nil:
		return nil, tlv.Invalidf(tlvType, "SignatureValue without SignatureInfo")
	case !hasSignatureValue:
		return nil, tlv.Invalidf(tlvType, "SignatureInfo without SignatureValue")
	}
	d.signature = NewDataSignature(signatureInfo, signatureValue)
	d.value = value
	return d, nil
}

// DecodeContent decodes the Content of a Data packet as a single embedded element of the expected type.
func DecodeContent[T any](d *Data, expected tlv.Type, decode tlv.DecodeFunc[T]) (T, error) {
	content, ok := d.content.Get()
	if !ok {
		var zero T
		return zero, tlv.Invalidf(tlv.Content, "Data %s has no Content", d.name)
	}
	return tlv.DecodeBytes(content, expected, decode)
}

func (d *Data) String() string {
	str := "Data(" + d.name.String()
	if d.metaInfo != nil {
		str += ", " + d.metaInfo.String()
	}
	content, _ := d.content.Get()
	str += ", ContentLen=" + strconv.FormatInt(int64(len(content)), 10) + ")"
	return str
}

func (d *Data) clone() *Data {
	copyD := *d
	copyD.value = nil
	copyD.signedPortion = nil
	return &copyD
}

// Name returns the name of the Data packet.
func (d *Data) Name() *Name {
	return d.name
}

// WithName returns a copy of the Data packet with the specified name.
func (d *Data) WithName(name *Name) *Data {
	copyD := d.clone()
	copyD.name = name
	return copyD
}

// MetaInfo returns the MetaInfo of the Data packet, or nil if it has none.
func (d *Data) MetaInfo() *MetaInfo {
	return d.metaInfo
}

// WithMetaInfo returns a copy of the Data packet with the specified MetaInfo. A nil MetaInfo removes it.
func (d *Data) WithMetaInfo(metaInfo *MetaInfo) *Data {
	copyD := d.clone()
	copyD.metaInfo = metaInfo
	return copyD
}

// Content returns the payload of the Data packet, if it has a Content element.
func (d *Data) Content() ([]byte, bool) {
	content, ok := d.content.Get()
	return content, ok
}

// ContentItems decodes the Content as a sequence of elements of any type.
func (d *Data) ContentItems() ([]*tlv.Generic, error) {
	content, _ := d.content.Get()
	return tlv.NewGeneric(tlv.Content, content).Items()
}

// WithContent returns a copy of the Data packet with the specified content.
func (d *Data) WithContent(content []byte) *Data {
	copyD := d.clone()
	copyD.content = optional.Some(tlv.Bytes[contentKind](content))
	return copyD
}

// Signature returns the signature of the Data packet.
func (d *Data) Signature() *DataSignature {
	return d.signature
}

// WithSignature returns a copy of the Data packet with the specified signature.
func (d *Data) WithSignature(signature *DataSignature) *Data {
	copyD := d.clone()
	copyD.signature = signature
	return copyD
}

// SignedPortion returns the octets covered by the signature, from the Name through the SignatureInfo.
func (d *Data) SignedPortion() []byte {
	if d.signedPortion != nil {
		return d.signedPortion
	}
	wire := make([]byte, 0, d.Length())
	wire = d.appendUnsigned(wire)
	return tlv.Append(wire, d.signature.info)
}

// FullName returns the name of the Data packet with its ImplicitSha256DigestComponent appended.
func (d *Data) FullName() *Name {
	var wire []byte
	if d.value != nil {
		wire = tlv.Encode(tlv.NewGeneric(tlv.Data, d.value))
	} else {
		wire = tlv.Encode(d)
	}
	digest, _ := NewImplicitSha256DigestComponent(security.DigestSha256(wire))
	return d.name.Append(digest)
}

func (d *Data) appendUnsigned(dst []byte) []byte {
	dst = tlv.Append(dst, d.name)
	if d.metaInfo != nil {
		dst = tlv.Append(dst, d.metaInfo)
	}
	return tlv.AppendOptional(dst, d.content)
}

// Type returns the TLV type of a Data packet.
func (d *Data) Type() tlv.Type {
	return tlv.Data
}

// Length returns the length of the encoded value.
func (d *Data) Length() int {
	if d.value != nil {
		return len(d.value)
	}
	length := tlv.Size(d.name)
	if d.metaInfo != nil {
		length += tlv.Size(d.metaInfo)
	}
	length += tlv.SizeOptional(d.content)
	length += tlv.Size(d.signature.info)
	return length + tlv.Size(tlv.Bytes[signatureValueKind](d.signature.value))
}

// AppendValue appends the encoded value to dst. A decoded packet is re-emitted unchanged.
func (d *Data) AppendValue(dst []byte) []byte {
	if d.value != nil {
		return append(dst, d.value...)
	}
	dst = d.appendUnsigned(dst)
	dst = tlv.Append(dst, d.signature.info)
	return tlv.Append(dst, tlv.Bytes[signatureValueKind](d.signature.value))
}
