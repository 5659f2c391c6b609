/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"strconv"

	"github.com/cornelk/hashmap"
)

// Type is a TLV-TYPE number.
type Type uint64

// Packet and name component types.
const (
	Unassigned                      Type = 0x00
	ImplicitSha256DigestComponent   Type = 0x01
	ParametersSha256DigestComponent Type = 0x02
	Interest                        Type = 0x05
	Data                            Type = 0x06
	Name                            Type = 0x07
	GenericNameComponent            Type = 0x08
	KeywordNameComponent            Type = 0x20
	SegmentNameComponent            Type = 0x32
	ByteOffsetNameComponent         Type = 0x34
	VersionNameComponent            Type = 0x36
	TimestampNameComponent          Type = 0x38
	SequenceNumNameComponent        Type = 0x3A
)

// Interest and Data elements.
const (
	CanBePrefix            Type = 0x21
	MustBeFresh            Type = 0x12
	ForwardingHint         Type = 0x1E
	Nonce                  Type = 0x0A
	InterestLifetime       Type = 0x0C
	HopLimit               Type = 0x22
	ApplicationParameters  Type = 0x24
	InterestSignatureInfo  Type = 0x2C
	InterestSignatureValue Type = 0x2E
	MetaInfo               Type = 0x14
	Content                Type = 0x15
	SignatureInfo          Type = 0x16
	SignatureValue         Type = 0x17
	ContentType            Type = 0x18
	FreshnessPeriod        Type = 0x19
	FinalBlockID           Type = 0x1A
	SignatureType          Type = 0x1B
	KeyLocator             Type = 0x1C
	KeyDigest              Type = 0x1D
	SignatureNonce         Type = 0x26
	SignatureTime          Type = 0x28
	SignatureSeqNum        Type = 0x2A

	// Obsolete, only recognized so that older packets can be reported precisely.
	Selectors           Type = 0x09
	MinSuffixComponents Type = 0x0D
	MaxSuffixComponents Type = 0x0E
	Delegation          Type = 0x1F
)

// Certificate elements.
const (
	ValidityPeriod        Type = 0xFD
	NotBefore             Type = 0xFE
	NotAfter              Type = 0xFF
	AdditionalDescription Type = 0x0102
	DescriptionEntry      Type = 0x0200
	DescriptionKey        Type = 0x0201
	DescriptionValue      Type = 0x0202
)

// IsCritical returns whether the TLV type is critical, i.e. whether a decoder
// that does not recognize it must fail instead of skipping it.
func (t Type) IsCritical() bool {
	return t < 0x20 || t&1 == 1
}

func (t Type) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// Name returns the registered name of the type, or its decimal number if it has none.
// Management types share numbers across datasets, so the first registration wins.
func (t Type) Name() string {
	if name, ok := typeNames.Get(uintptr(t)); ok {
		return name.(string)
	}
	return t.String()
}

// RegisterTypeName associates a display name with a TLV type. It returns false
// if the type already had a name.
func RegisterTypeName(t Type, name string) bool {
	_, loaded := typeNames.GetOrInsert(uintptr(t), name)
	return !loaded
}

var typeNames = hashmap.New(128)

func init() {
	for t, name := range map[Type]string{
		ImplicitSha256DigestComponent:   "ImplicitSha256DigestComponent",
		ParametersSha256DigestComponent: "ParametersSha256DigestComponent",
		Interest:                        "Interest",
		Data:                            "Data",
		Name:                            "Name",
		GenericNameComponent:            "GenericNameComponent",
		KeywordNameComponent:            "KeywordNameComponent",
		SegmentNameComponent:            "SegmentNameComponent",
		ByteOffsetNameComponent:         "ByteOffsetNameComponent",
		VersionNameComponent:            "VersionNameComponent",
		TimestampNameComponent:          "TimestampNameComponent",
		SequenceNumNameComponent:        "SequenceNumNameComponent",
		CanBePrefix:                     "CanBePrefix",
		MustBeFresh:                     "MustBeFresh",
		ForwardingHint:                  "ForwardingHint",
		Nonce:                           "Nonce",
		InterestLifetime:                "InterestLifetime",
		HopLimit:                        "HopLimit",
		ApplicationParameters:           "ApplicationParameters",
		InterestSignatureInfo:           "InterestSignatureInfo",
		InterestSignatureValue:          "InterestSignatureValue",
		MetaInfo:                        "MetaInfo",
		Content:                         "Content",
		SignatureInfo:                   "SignatureInfo",
		SignatureValue:                  "SignatureValue",
		ContentType:                     "ContentType",
		FreshnessPeriod:                 "FreshnessPeriod",
		FinalBlockID:                    "FinalBlockId",
		SignatureType:                   "SignatureType",
		KeyLocator:                      "KeyLocator",
		KeyDigest:                       "KeyDigest",
		SignatureNonce:                  "SignatureNonce",
		SignatureTime:                   "SignatureTime",
		SignatureSeqNum:                 "SignatureSeqNum",
		Selectors:                       "Selectors",
		MinSuffixComponents:             "MinSuffixComponents",
		MaxSuffixComponents:             "MaxSuffixComponents",
		Delegation:                      "Delegation",
		ValidityPeriod:                  "ValidityPeriod",
		NotBefore:                       "NotBefore",
		NotAfter:                        "NotAfter",
		AdditionalDescription:           "AdditionalDescription",
		DescriptionEntry:                "DescriptionEntry",
		DescriptionKey:                  "DescriptionKey",
		DescriptionValue:                "DescriptionValue",
	} {
		RegisterTypeName(t, name)
	}
}
