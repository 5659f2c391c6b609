/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"strconv"
	"strings"
	"time"

	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/utils/optional"
)

// ContentType indicates how the Content of a Data packet is to be interpreted.
type ContentType uint64

// Content types assigned by the NDN packet format.
const (
	ContentTypeBlob ContentType = 0
	ContentTypeLink ContentType = 1
	ContentTypeKey  ContentType = 2
	ContentTypeNack ContentType = 3

	ContentTypePrefixAnnouncement ContentType = 5
)

// DecodeContentType decodes the value of a ContentType element. Unassigned values are kept as-is.
func DecodeContentType(tlvType tlv.Type, value []byte) (ContentType, error) {
	n, err := tlv.DecodeNumber[contentTypeKind](tlvType, value)
	return ContentType(n), err
}

// Type returns the TLV type of a ContentType.
func (c ContentType) Type() tlv.Type {
	return tlv.ContentType
}

// Length returns the length of the encoded value.
func (c ContentType) Length() int {
	return tlv.NonNegativeNumber(c).Len()
}

// AppendValue appends the encoded value to dst.
func (c ContentType) AppendValue(dst []byte) []byte {
	return tlv.NonNegativeNumber(c).Append(dst)
}

func (c ContentType) String() string {
	switch c {
	case ContentTypeBlob:
		return "Blob"
	case ContentTypeLink:
		return "Link"
	case ContentTypeKey:
		return "Key"
	case ContentTypeNack:
		return "Nack"
	case ContentTypePrefixAnnouncement:
		return "PrefixAnnouncement"
	default:
		return strconv.FormatUint(uint64(c), 10)
	}
}

type contentTypeKind struct{}

func (contentTypeKind) TLVType() tlv.Type { return tlv.ContentType }

type freshnessPeriodKind struct{ tlv.Milliseconds }

func (freshnessPeriodKind) TLVType() tlv.Type { return tlv.FreshnessPeriod }

// finalBlockID wraps the single name component carried by a FinalBlockId element.
type finalBlockID struct {
	NameComponent
}

func (f finalBlockID) Type() tlv.Type {
	return tlv.FinalBlockID
}

func (f finalBlockID) Length() int {
	return tlv.Size(f.NameComponent)
}

func (f finalBlockID) AppendValue(dst []byte) []byte {
	return tlv.Append(dst, f.NameComponent)
}

func decodeFinalBlockID(tlvType tlv.Type, value []byte) (finalBlockID, error) {
	r := tlv.NewReader(value)
	if r.Empty() {
		return finalBlockID{}, tlv.Invalidf(tlvType, "FinalBlockId must hold a name component")
	}
	elem, err := r.ReadElement()
	if err != nil {
		return finalBlockID{}, err
	}
	if !r.Empty() {
		return finalBlockID{}, tlv.Invalidf(tlvType, "%d trailing octets after name component", r.Remaining())
	}
	component, err := DecodeNameComponent(elem.Type(), elem.Value())
	if err != nil {
		return finalBlockID{}, err
	}
	return finalBlockID{component}, nil
}

// MetaInfo contains the metadata of a Data packet.
type MetaInfo struct {
	contentType     optional.Optional[ContentType]
	freshnessPeriod optional.Optional[tlv.Number[freshnessPeriodKind]]
	finalBlockID    optional.Optional[finalBlockID]
}

// NewMetaInfo creates an empty MetaInfo.
func NewMetaInfo() *MetaInfo {
	return new(MetaInfo)
}

// DecodeMetaInfo decodes the value of a MetaInfo element. Sub-elements may appear in any order, but only once each.
func DecodeMetaInfo(tlvType tlv.Type, value []byte) (*MetaInfo, error) {
	m := new(MetaInfo)
	r := tlv.NewReader(value)
	for !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}

		switch elem.Type() {
		case tlv.ContentType:
			if m.contentType.IsSet() {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			contentType, err := DecodeContentType(elem.Type(), elem.Value())
			if err != nil {
				return nil, err
			}
			m.contentType = optional.Some(contentType)
		case tlv.FreshnessPeriod:
			if m.freshnessPeriod.IsSet() {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			freshnessPeriod, err := tlv.DecodeNumber[freshnessPeriodKind](elem.Type(), elem.Value())
			if err != nil {
				return nil, err
			}
			m.freshnessPeriod = optional.Some(freshnessPeriod)
		case tlv.FinalBlockID:
			if m.finalBlockID.IsSet() {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			finalBlockID, err := decodeFinalBlockID(elem.Type(), elem.Value())
			if err != nil {
				return nil, err
			}
			m.finalBlockID = optional.Some(finalBlockID)
		default:
			if err := tlv.Unrecognized(tlvType, elem); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *MetaInfo) String() string {
	var fields []string
	if contentType, ok := m.contentType.Get(); ok {
		fields = append(fields, "ContentType="+contentType.String())
	}
	if freshnessPeriod, ok := m.freshnessPeriod.Get(); ok {
		fields = append(fields, "FreshnessPeriod="+freshnessPeriod.String())
	}
	if finalBlockID, ok := m.finalBlockID.Get(); ok {
		fields = append(fields, "FinalBlockId="+finalBlockID.NameComponent.String())
	}
	return "MetaInfo(" + strings.Join(fields, ", ") + ")"
}

// ContentType returns the ContentType, if set.
func (m *MetaInfo) ContentType() (ContentType, bool) {
	return m.contentType.Get()
}

// WithContentType returns a copy of the MetaInfo with the specified ContentType.
func (m *MetaInfo) WithContentType(contentType ContentType) *MetaInfo {
	copyM := *m
	copyM.contentType = optional.Some(contentType)
	return &copyM
}

// FreshnessPeriod returns the FreshnessPeriod, if set.
func (m *MetaInfo) FreshnessPeriod() (time.Duration, bool) {
	freshnessPeriod, ok := m.freshnessPeriod.Get()
	return freshnessPeriod.Duration(), ok
}

// WithFreshnessPeriod returns a copy of the MetaInfo with the specified FreshnessPeriod, truncated to milliseconds.
func (m *MetaInfo) WithFreshnessPeriod(freshnessPeriod time.Duration) *MetaInfo {
	copyM := *m
	copyM.freshnessPeriod = optional.Some(tlv.Number[freshnessPeriodKind](freshnessPeriod.Milliseconds()))
	return &copyM
}

// FinalBlockID returns the FinalBlockId, or nil if unset.
func (m *MetaInfo) FinalBlockID() NameComponent {
	if finalBlockID, ok := m.finalBlockID.Get(); ok {
		return finalBlockID.NameComponent
	}
	return nil
}

// WithFinalBlockID returns a copy of the MetaInfo with the specified FinalBlockId.
func (m *MetaInfo) WithFinalBlockID(component NameComponent) *MetaInfo {
	copyM := *m
	copyM.finalBlockID = optional.Some(finalBlockID{component})
	return &copyM
}

// Type returns the TLV type of a MetaInfo.
func (m *MetaInfo) Type() tlv.Type {
	return tlv.MetaInfo
}

// Length returns the length of the encoded value.
func (m *MetaInfo) Length() int {
	return tlv.SizeOptional(m.contentType) + tlv.SizeOptional(m.freshnessPeriod) + tlv.SizeOptional(m.finalBlockID)
}

// AppendValue appends the encoded value to dst.
func (m *MetaInfo) AppendValue(dst []byte) []byte {
	dst = tlv.AppendOptional(dst, m.contentType)
	dst = tlv.AppendOptional(dst, m.freshnessPeriod)
	return tlv.AppendOptional(dst, m.finalBlockID)
}
