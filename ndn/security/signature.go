/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"strconv"

	"github.com/named-data/ndntlv/ndn/tlv"
)

// SignatureType represents the type of a signature.
type SignatureType uint64

// The various possible values of SignatureType.
const (
	DigestSha256Type             SignatureType = 0
	SignatureSha256WithRsaType   SignatureType = 1
	SignatureSha256WithEcdsaType SignatureType = 3
	SignatureHmacWithSha256Type  SignatureType = 4
	SignatureEd25519Type         SignatureType = 5
)

// DecodeSignatureType decodes the value of a SignatureType element.
func DecodeSignatureType(tlvType tlv.Type, value []byte) (SignatureType, error) {
	n, err := tlv.DecodeNonNegativeNumber(value)
	if err != nil {
		return 0, tlv.Invalidf(tlvType, "%v", err)
	}
	s := SignatureType(n)
	switch s {
	case DigestSha256Type, SignatureSha256WithRsaType, SignatureSha256WithEcdsaType,
		SignatureHmacWithSha256Type, SignatureEd25519Type:
		return s, nil
	default:
		return 0, tlv.Invalidf(tlvType, "unknown signature type %d", n)
	}
}

// NeedsKeyLocator returns whether signatures of this type must name their key.
func (s SignatureType) NeedsKeyLocator() bool {
	return s != DigestSha256Type
}

// Type returns the TLV type of a SignatureType element.
func (s SignatureType) Type() tlv.Type {
	return tlv.SignatureType
}

// Length returns the length of the encoded value.
func (s SignatureType) Length() int {
	return tlv.NonNegativeNumber(s).Len()
}

// AppendValue appends the encoded value to dst.
func (s SignatureType) AppendValue(dst []byte) []byte {
	return tlv.NonNegativeNumber(s).Append(dst)
}

func (s SignatureType) String() string {
	switch s {
	case DigestSha256Type:
		return "DigestSha256"
	case SignatureSha256WithRsaType:
		return "SignatureSha256WithRsa"
	case SignatureSha256WithEcdsaType:
		return "SignatureSha256WithEcdsa"
	case SignatureHmacWithSha256Type:
		return "SignatureHmacWithSha256"
	case SignatureEd25519Type:
		return "SignatureEd25519"
	default:
		return strconv.FormatUint(uint64(s), 10)
	}
}
