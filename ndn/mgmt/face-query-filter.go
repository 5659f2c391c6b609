/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"strings"

	"github.com/named-data/ndntlv/ndn/tlv"
)

// FaceQueryFilter is a filter used to retrieve a subset of faces matching the filter.
type FaceQueryFilter struct {
	FaceID          *uint64
	URIScheme       *string
	URI             *string
	LocalURI        *string
	FaceScope       *FaceScope
	FacePersistency *FacePersistency
	LinkType        *LinkType
}

// MakeFaceQueryFilter creates an empty FaceQueryFilter.
func MakeFaceQueryFilter() *FaceQueryFilter {
	f := new(FaceQueryFilter)
	return f
}

// DecodeFaceQueryFilter decodes the value of a FaceQueryFilter element.
func DecodeFaceQueryFilter(tlvType tlv.Type, value []byte) (*FaceQueryFilter, error) {
	f := new(FaceQueryFilter)
	_, err := decodeFields(tlvType, value, fields{
		tlv.FaceID:    optNNIField(&f.FaceID),
		tlv.URIScheme: optTextField(&f.URIScheme),
		tlv.URI:       optTextField(&f.URI),
		tlv.LocalURI:  optTextField(&f.LocalURI),
		tlv.FaceScope: func(elem *tlv.Generic) error {
			f.FaceScope = new(FaceScope)
			return enumField(f.FaceScope, DecodeFaceScope)(elem)
		},
		tlv.FacePersistency: func(elem *tlv.Generic) error {
			f.FacePersistency = new(FacePersistency)
			return enumField(f.FacePersistency, DecodeFacePersistency)(elem)
		},
		tlv.LinkType: func(elem *tlv.Generic) error {
			f.LinkType = new(LinkType)
			return enumField(f.LinkType, DecodeLinkType)(elem)
		},
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Matches returns whether the face described by status satisfies every criterion of the filter.
func (f *FaceQueryFilter) Matches(status *FaceStatus) bool {
	switch {
	case f.FaceID != nil && *f.FaceID != status.FaceID:
		return false
	case f.URIScheme != nil && !strings.HasPrefix(status.URI, *f.URIScheme+"://") && !strings.HasPrefix(status.LocalURI, *f.URIScheme+"://"):
		return false
	case f.URI != nil && *f.URI != status.URI:
		return false
	case f.LocalURI != nil && *f.LocalURI != status.LocalURI:
		return false
	case f.FaceScope != nil && *f.FaceScope != status.FaceScope:
		return false
	case f.FacePersistency != nil && *f.FacePersistency != status.FacePersistency:
		return false
	case f.LinkType != nil && *f.LinkType != status.LinkType:
		return false
	}
	return true
}

func (f *FaceQueryFilter) elements() encoder {
	var e encoder
	e.add(optNumber[faceIDKind](f.FaceID))
	e.add(optText[uriSchemeKind](f.URIScheme))
	e.add(optText[uriKind](f.URI))
	e.add(optText[localURIKind](f.LocalURI))
	if f.FaceScope != nil {
		e.add(*f.FaceScope)
	}
	if f.FacePersistency != nil {
		e.add(*f.FacePersistency)
	}
	if f.LinkType != nil {
		e.add(*f.LinkType)
	}
	return e
}

// Type returns the TLV type of a FaceQueryFilter.
func (f *FaceQueryFilter) Type() tlv.Type {
	return tlv.FaceQueryFilter
}

// Length returns the length of the encoded value.
func (f *FaceQueryFilter) Length() int {
	return f.elements().length()
}

// AppendValue appends the encoded value to dst.
func (f *FaceQueryFilter) AppendValue(dst []byte) []byte {
	return f.elements().appendTo(dst)
}
