/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/named-data/ndntlv/ndn/tlv"
)

func decodeEnum(tlvType tlv.Type, value []byte, max uint64) (uint64, error) {
	n, err := tlv.DecodeNonNegativeNumber(value)
	if err != nil {
		return 0, tlv.InvalidElement(tlvType, tlv.NewGeneric(tlvType, value), err.Error())
	}
	if uint64(n) > max {
		return 0, tlv.Invalidf(tlvType, "value %d out of range", n)
	}
	return uint64(n), nil
}

/////////////////////
// FacePersistency
/////////////////////

// FacePersistency indicates how long a face stays up.
type FacePersistency uint64

const (
	// PersistencyPersistent faces remain open until explicitly destroyed or a transport failure occurs.
	PersistencyPersistent FacePersistency = 0
	// PersistencyOnDemand faces close when idle for too long.
	PersistencyOnDemand FacePersistency = 1
	// PersistencyPermanent faces remain open until explicitly destroyed and recover from transport failures.
	PersistencyPermanent FacePersistency = 2
)

// DecodeFacePersistency decodes the value of a FacePersistency element.
func DecodeFacePersistency(tlvType tlv.Type, value []byte) (FacePersistency, error) {
	n, err := decodeEnum(tlvType, value, uint64(PersistencyPermanent))
	return FacePersistency(n), err
}

// Type returns the TLV type of a FacePersistency.
func (p FacePersistency) Type() tlv.Type {
	return tlv.FacePersistency
}

// Length returns the length of the encoded value.
func (p FacePersistency) Length() int {
	return tlv.NonNegativeNumber(p).Len()
}

// AppendValue appends the encoded value to dst.
func (p FacePersistency) AppendValue(dst []byte) []byte {
	return tlv.NonNegativeNumber(p).Append(dst)
}

func (p FacePersistency) String() string {
	switch p {
	case PersistencyPersistent:
		return "persistent"
	case PersistencyOnDemand:
		return "on-demand"
	case PersistencyPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

/////////////
// FaceScope
/////////////

// FaceScope indicates whether a face is local for scope control purposes.
type FaceScope uint64

const (
	// ScopeNonLocal is the scope of faces to remote hosts.
	ScopeNonLocal FaceScope = 0
	// ScopeLocal is the scope of faces to applications on the same host.
	ScopeLocal FaceScope = 1
)

// DecodeFaceScope decodes the value of a FaceScope element.
func DecodeFaceScope(tlvType tlv.Type, value []byte) (FaceScope, error) {
	n, err := decodeEnum(tlvType, value, uint64(ScopeLocal))
	return FaceScope(n), err
}

// Type returns the TLV type of a FaceScope.
func (s FaceScope) Type() tlv.Type {
	return tlv.FaceScope
}

// Length returns the length of the encoded value.
func (s FaceScope) Length() int {
	return tlv.NonNegativeNumber(s).Len()
}

// AppendValue appends the encoded value to dst.
func (s FaceScope) AppendValue(dst []byte) []byte {
	return tlv.NonNegativeNumber(s).Append(dst)
}

func (s FaceScope) String() string {
	switch s {
	case ScopeNonLocal:
		return "non-local"
	case ScopeLocal:
		return "local"
	default:
		return "unknown"
	}
}

///////////
// LinkType
///////////

// LinkType indicates the type of communication link of a face.
type LinkType uint64

const (
	// LinkPointToPoint links connect exactly two hosts.
	LinkPointToPoint LinkType = 0
	// LinkMultiAccess links reach multiple hosts with each transmission.
	LinkMultiAccess LinkType = 1
	// LinkAdHoc links are wireless ad hoc networks.
	LinkAdHoc LinkType = 2
)

// DecodeLinkType decodes the value of a LinkType element.
func DecodeLinkType(tlvType tlv.Type, value []byte) (LinkType, error) {
	n, err := decodeEnum(tlvType, value, uint64(LinkAdHoc))
	return LinkType(n), err
}

// Type returns the TLV type of a LinkType.
func (l LinkType) Type() tlv.Type {
	return tlv.LinkType
}

// Length returns the length of the encoded value.
func (l LinkType) Length() int {
	return tlv.NonNegativeNumber(l).Len()
}

// AppendValue appends the encoded value to dst.
func (l LinkType) AppendValue(dst []byte) []byte {
	return tlv.NonNegativeNumber(l).Append(dst)
}

func (l LinkType) String() string {
	switch l {
	case LinkPointToPoint:
		return "point-to-point"
	case LinkMultiAccess:
		return "multi-access"
	case LinkAdHoc:
		return "ad-hoc"
	default:
		return "unknown"
	}
}

func enumField[T any](dst *T, decode tlv.DecodeFunc[T]) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		v, err := decode(elem.Type(), elem.Value())
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
