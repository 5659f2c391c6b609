/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// TLV types for NDNLPv2.
const (
	Fragment           Type = 0x50
	Sequence           Type = 0x51
	FragIndex          Type = 0x52
	FragCount          Type = 0x53
	HopCount           Type = 0x54
	GeoTag             Type = 0x55
	PitToken           Type = 0x62
	LpPacket           Type = 0x64
	Nack               Type = 0x0320
	NackReason         Type = 0x0321
	NextHopFaceID      Type = 0x0330
	IncomingFaceID     Type = 0x0331
	CachePolicy        Type = 0x0334
	CachePolicyType    Type = 0x0335
	CongestionMark     Type = 0x0340
	Ack                Type = 0x0344
	TxSequence         Type = 0x0348
	NonDiscovery       Type = 0x034C
	PrefixAnnouncement Type = 0x0350
)

// IsLpCritical returns whether an unrecognized NDNLPv2 header field of this type must not be ignored.
// Types in [800, 959] whose two least significant bits are zero may be ignored.
func (t Type) IsLpCritical() bool {
	if t >= 800 && t <= 959 {
		return t&0x3 != 0
	}
	return true
}

// IsLpHeaderField returns whether t is a known NDNLPv2 header field.
func (t Type) IsLpHeaderField() bool {
	switch t {
	case Sequence, FragIndex, FragCount, HopCount, GeoTag, PitToken, Nack, NextHopFaceID, IncomingFaceID,
		CachePolicy, CongestionMark, Ack, TxSequence, NonDiscovery, PrefixAnnouncement:
		return true
	default:
		return false
	}
}

func init() {
	for _, entry := range []struct {
		t    Type
		name string
	}{
		{Fragment, "Fragment"},
		{Sequence, "Sequence"},
		{FragIndex, "FragIndex"},
		{FragCount, "FragCount"},
		{HopCount, "HopCount"},
		{GeoTag, "GeoTag"},
		{PitToken, "PitToken"},
		{LpPacket, "LpPacket"},
		{Nack, "Nack"},
		{NackReason, "NackReason"},
		{NextHopFaceID, "NextHopFaceId"},
		{IncomingFaceID, "IncomingFaceId"},
		{CachePolicy, "CachePolicy"},
		{CachePolicyType, "CachePolicyType"},
		{CongestionMark, "CongestionMark"},
		{Ack, "Ack"},
		{TxSequence, "TxSequence"},
		{NonDiscovery, "NonDiscovery"},
		{PrefixAnnouncement, "PrefixAnnouncement"},
	} {
		RegisterTypeName(entry.t, entry.name)
	}
}
