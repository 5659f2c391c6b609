/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"time"

	"github.com/named-data/ndntlv/ndn/tlv"
)

// FaceStatus contains status information about a face.
type FaceStatus struct {
	FaceID                        uint64
	URI                           string
	LocalURI                      string
	ExpirationPeriod              *time.Duration
	FaceScope                     FaceScope
	FacePersistency               FacePersistency
	LinkType                      LinkType
	BaseCongestionMarkingInterval *uint64
	DefaultCongestionThreshold    *uint64
	MTU                           *uint64
	NInInterests                  uint64
	NInData                       uint64
	NInNacks                      uint64
	NOutInterests                 uint64
	NOutData                      uint64
	NOutNacks                     uint64
	NInBytes                      uint64
	NOutBytes                     uint64
	Flags                         uint64
}

// MakeFaceStatus creates an empty FaceStatus.
func MakeFaceStatus() *FaceStatus {
	f := new(FaceStatus)
	return f
}

// DecodeFaceStatus decodes the value of a FaceStatus element.
func DecodeFaceStatus(tlvType tlv.Type, value []byte) (*FaceStatus, error) {
	f := new(FaceStatus)
	seen, err := decodeFields(tlvType, value, fields{
		tlv.FaceID:                        nniField(&f.FaceID),
		tlv.URI:                           textField(&f.URI),
		tlv.LocalURI:                      textField(&f.LocalURI),
		tlv.ExpirationPeriod:              durationField(&f.ExpirationPeriod),
		tlv.FaceScope:                     enumField(&f.FaceScope, DecodeFaceScope),
		tlv.FacePersistency:               enumField(&f.FacePersistency, DecodeFacePersistency),
		tlv.LinkType:                      enumField(&f.LinkType, DecodeLinkType),
		tlv.BaseCongestionMarkingInterval: optNNIField(&f.BaseCongestionMarkingInterval),
		tlv.DefaultCongestionThreshold:    optNNIField(&f.DefaultCongestionThreshold),
		tlv.MTU:                           optNNIField(&f.MTU),
		tlv.NInInterests:                  nniField(&f.NInInterests),
		tlv.NInData:                       nniField(&f.NInData),
		tlv.NInNacks:                      nniField(&f.NInNacks),
		tlv.NOutInterests:                 nniField(&f.NOutInterests),
		tlv.NOutData:                      nniField(&f.NOutData),
		tlv.NOutNacks:                     nniField(&f.NOutNacks),
		tlv.NInBytes:                      nniField(&f.NInBytes),
		tlv.NOutBytes:                     nniField(&f.NOutBytes),
		tlv.Flags:                         nniField(&f.Flags),
	})
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.FaceID, tlv.URI, tlv.LocalURI,
		tlv.FaceScope, tlv.FacePersistency, tlv.LinkType); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FaceStatus) elements() encoder {
	var e encoder
	e.add(tlv.Number[faceIDKind](f.FaceID))
	e.add(tlv.String[uriKind](f.URI))
	e.add(tlv.String[localURIKind](f.LocalURI))
	e.add(optDuration[expirationPeriodKind](f.ExpirationPeriod))
	e.add(f.FaceScope)
	e.add(f.FacePersistency)
	e.add(f.LinkType)
	e.add(optNumber[baseCongestionMarkingIntervalKind](f.BaseCongestionMarkingInterval))
	e.add(optNumber[defaultCongestionThresholdKind](f.DefaultCongestionThreshold))
	e.add(optNumber[mtuKind](f.MTU))
	e.add(tlv.Number[nInInterestsKind](f.NInInterests))
	e.add(tlv.Number[nInDataKind](f.NInData))
	e.add(tlv.Number[nInNacksKind](f.NInNacks))
	e.add(tlv.Number[nOutInterestsKind](f.NOutInterests))
	e.add(tlv.Number[nOutDataKind](f.NOutData))
	e.add(tlv.Number[nOutNacksKind](f.NOutNacks))
	e.add(tlv.Number[nInBytesKind](f.NInBytes))
	e.add(tlv.Number[nOutBytesKind](f.NOutBytes))
	e.add(tlv.Number[flagsKind](f.Flags))
	return e
}

// Type returns the TLV type of a FaceStatus.
func (f *FaceStatus) Type() tlv.Type {
	return tlv.FaceStatus
}

// Length returns the length of the encoded value.
func (f *FaceStatus) Length() int {
	return f.elements().length()
}

// AppendValue appends the encoded value to dst.
func (f *FaceStatus) AppendValue(dst []byte) []byte {
	return f.elements().appendTo(dst)
}
