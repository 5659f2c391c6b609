/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// TLV types for Management.
const (
	// Core
	ControlParameters             Type = 0x68
	FaceID                        Type = 0x69
	URI                           Type = 0x72
	LocalURI                      Type = 0x81
	Origin                        Type = 0x6F
	Cost                          Type = 0x6A
	Capacity                      Type = 0x83
	Count                         Type = 0x84
	BaseCongestionMarkingInterval Type = 0x87
	DefaultCongestionThreshold    Type = 0x88
	MTU                           Type = 0x89
	Flags                         Type = 0x6C
	Mask                          Type = 0x70
	Strategy                      Type = 0x6B
	ExpirationPeriod              Type = 0x6D
	ControlResponse               Type = 0x65
	StatusCode                    Type = 0x66
	StatusText                    Type = 0x67

	// ForwarderStatus
	NfdVersion            Type = 0x80
	StartTimestamp        Type = 0x81
	CurrentTimestamp      Type = 0x82
	NNameTreeEntries      Type = 0x83
	NFibEntries           Type = 0x84
	NPitEntries           Type = 0x85
	NMeasurementEntries   Type = 0x86
	NCsEntries            Type = 0x87
	NInInterests          Type = 0x90
	NInData               Type = 0x91
	NInNacks              Type = 0x97
	NOutInterests         Type = 0x92
	NOutData              Type = 0x93
	NOutNacks             Type = 0x98
	NSatisfiedInterests   Type = 0x99
	NUnsatisfiedInterests Type = 0x9A

	// FaceMgmt
	FaceStatus            Type = 0x80
	ChannelStatus         Type = 0x82
	URIScheme             Type = 0x83
	FaceScope             Type = 0x84
	FacePersistency       Type = 0x85
	LinkType              Type = 0x86
	NInBytes              Type = 0x94
	NOutBytes             Type = 0x95
	FaceQueryFilter       Type = 0x96
	FaceEventNotification Type = 0xC0
	FaceEventKind         Type = 0xC1

	// FibMgmt
	FibEntry      Type = 0x80
	NextHopRecord Type = 0x81

	// CsMgmt
	CsInfo  Type = 0x80
	NHits   Type = 0x81
	NMisses Type = 0x82

	// StrategyMgmt
	StrategyChoice Type = 0x80

	// MeasurementStatus
	MeasurementEntry Type = 0x80
	StrategyInfo     Type = 0x81

	// RibMgmt
	RibEntry Type = 0x80
	Route    Type = 0x81
)

func init() {
	// Registration order decides the display name of shared numbers.
	for _, entry := range []struct {
		t    Type
		name string
	}{
		{ControlParameters, "ControlParameters"},
		{FaceID, "FaceId"},
		{URI, "Uri"},
		{Origin, "Origin"},
		{Cost, "Cost"},
		{Flags, "Flags"},
		{Mask, "Mask"},
		{Strategy, "Strategy"},
		{ExpirationPeriod, "ExpirationPeriod"},
		{ControlResponse, "ControlResponse"},
		{StatusCode, "StatusCode"},
		{StatusText, "StatusText"},
		{FaceStatus, "FaceStatus"},
		{LocalURI, "LocalUri"},
		{ChannelStatus, "ChannelStatus"},
		{URIScheme, "UriScheme"},
		{FaceScope, "FaceScope"},
		{FacePersistency, "FacePersistency"},
		{LinkType, "LinkType"},
		{BaseCongestionMarkingInterval, "BaseCongestionMarkingInterval"},
		{DefaultCongestionThreshold, "DefaultCongestionThreshold"},
		{MTU, "Mtu"},
		{NInInterests, "NInInterests"},
		{NInData, "NInData"},
		{NInNacks, "NInNacks"},
		{NOutInterests, "NOutInterests"},
		{NOutData, "NOutData"},
		{NOutNacks, "NOutNacks"},
		{NSatisfiedInterests, "NSatisfiedInterests"},
		{NUnsatisfiedInterests, "NUnsatisfiedInterests"},
		{NInBytes, "NInBytes"},
		{NOutBytes, "NOutBytes"},
		{FaceQueryFilter, "FaceQueryFilter"},
		{FaceEventNotification, "FaceEventNotification"},
		{FaceEventKind, "FaceEventKind"},
	} {
		RegisterTypeName(entry.t, entry.name)
	}
}
