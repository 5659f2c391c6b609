/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/named-data/ndntlv/ndn/security"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/utils/optional"
)

type keyDigestKind struct{}

func (keyDigestKind) TLVType() tlv.Type { return tlv.KeyDigest }

type signatureNonceKind struct{}

func (signatureNonceKind) TLVType() tlv.Type { return tlv.SignatureNonce }

type signatureTimeKind struct{ tlv.Timestamp }

func (signatureTimeKind) TLVType() tlv.Type { return tlv.SignatureTime }

type signatureSeqNumKind struct{}

func (signatureSeqNumKind) TLVType() tlv.Type { return tlv.SignatureSeqNum }

/////////////
// KeyLocator
/////////////

// KeyLocator names the key that produced a signature, either by name or by digest.
type KeyLocator struct {
	name   *Name
	digest tlv.Bytes[keyDigestKind]
}

// NewKeyLocatorName creates a KeyLocator holding a key name.
func NewKeyLocatorName(name *Name) *KeyLocator {
	return &KeyLocator{name: name}
}

// NewKeyLocatorDigest creates a KeyLocator holding a key digest.
func NewKeyLocatorDigest(digest []byte) *KeyLocator {
	return &KeyLocator{digest: digest}
}

// DecodeKeyLocator decodes the value of a KeyLocator element.
func DecodeKeyLocator(tlvType tlv.Type, value []byte) (*KeyLocator, error) {
	r := tlv.NewReader(value)
	if r.Empty() {
		return nil, tlv.Invalidf(tlvType, "KeyLocator is empty")
	}
	k := new(KeyLocator)
	t, err := r.PeekType()
	if err != nil {
		return nil, err
	}
	switch t {
	case tlv.Name:
		if k.name, err = tlv.Decode(r, tlv.Name, DecodeName); err != nil {
			return nil, err
		}
	case tlv.KeyDigest:
		if k.digest, err = tlv.Decode(r, tlv.KeyDigest, tlv.DecodeBytesValue[keyDigestKind]); err != nil {
			return nil, err
		}
	default:
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		return nil, tlv.InvalidElement(tlvType, elem, "KeyLocator must hold a Name or a KeyDigest")
	}

	for !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		if elem.Type() == tlv.Name || elem.Type() == tlv.KeyDigest {
			return nil, tlv.Duplicate(tlvType, elem)
		}
		if err := tlv.Unrecognized(tlvType, elem); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Name returns the key name, or nil if the KeyLocator holds a digest.
func (k *KeyLocator) Name() *Name {
	return k.name
}

// KeyDigest returns the key digest, or nil if the KeyLocator holds a name.
func (k *KeyLocator) KeyDigest() []byte {
	return k.digest
}

func (k *KeyLocator) inner() tlv.Element {
	if k.name != nil {
		return k.name
	}
	return k.digest
}

// Type returns the TLV type of a KeyLocator.
func (k *KeyLocator) Type() tlv.Type {
	return tlv.KeyLocator
}

// Length returns the length of the encoded value.
func (k *KeyLocator) Length() int {
	return tlv.Size(k.inner())
}

// AppendValue appends the encoded value to dst.
func (k *KeyLocator) AppendValue(dst []byte) []byte {
	return tlv.Append(dst, k.inner())
}

func (k *KeyLocator) String() string {
	if k.name != nil {
		return "KeyLocator(Name=" + k.name.String() + ")"
	}
	return "KeyLocator(KeyDigest=" + k.digest.String() + ")"
}

////////////////
// SignatureInfo
////////////////

// SignatureInfo represents either the SignatureInfo (for Data packets) or InterestSignatureInfo blocks.
type SignatureInfo struct {
	signatureType  security.SignatureType
	keyLocator     *KeyLocator
	nonce          optional.Optional[tlv.Bytes[signatureNonceKind]]
	time           optional.Optional[tlv.Number[signatureTimeKind]]
	seqNum         optional.Optional[tlv.Number[signatureSeqNumKind]]
	validityPeriod *tlv.Generic
	isInterest     bool
}

// NewSignatureInfo creates a new SignatureInfo for a Data packet.
// keyLocator may only be nil for signature types that do not need one.
func NewSignatureInfo(signatureType security.SignatureType, keyLocator *KeyLocator) (*SignatureInfo, error) {
	if keyLocator == nil && signatureType.NeedsKeyLocator() {
		return nil, tlv.Invalidf(tlv.SignatureInfo, "%s requires a KeyLocator", signatureType)
	}
	return &SignatureInfo{signatureType: signatureType, keyLocator: keyLocator}, nil
}

// NewInterestSignatureInfo creates a new InterestSignatureInfo.
func NewInterestSignatureInfo(signatureType security.SignatureType, keyLocator *KeyLocator) (*SignatureInfo, error) {
	s, err := NewSignatureInfo(signatureType, keyLocator)
	if err != nil {
		return nil, err
	}
	s.isInterest = true
	return s, nil
}

// DecodeSignatureInfo decodes the value of a SignatureInfo or InterestSignatureInfo element.
func DecodeSignatureInfo(tlvType tlv.Type, value []byte) (*SignatureInfo, error) {
	if tlvType != tlv.SignatureInfo && tlvType != tlv.InterestSignatureInfo {
		return nil, tlv.Invalidf(tlvType, "block must be SignatureInfo or InterestSignatureInfo")
	}

	s := new(SignatureInfo)
	s.isInterest = tlvType == tlv.InterestSignatureInfo
	r := tlv.NewReader(value)

	var err error
	if s.signatureType, err = tlv.Decode(r, tlv.SignatureType, security.DecodeSignatureType); err != nil {
		return nil, err
	}

	if s.signatureType.NeedsKeyLocator() {
		if s.keyLocator, err = tlv.Decode(r, tlv.KeyLocator, DecodeKeyLocator); err != nil {
			return nil, err
		}
	} else {
		keyLocator, err := tlv.DecodeOptional(r, tlv.KeyLocator, DecodeKeyLocator)
		if err != nil {
			return nil, err
		}
		s.keyLocator = keyLocator.GetOr(nil)
	}

	mostRecentElem := 0
	for !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		switch elem.Type() {
		case tlv.SignatureNonce, tlv.SignatureTime, tlv.SignatureSeqNum:
			if !s.isInterest {
				return nil, tlv.InvalidElement(tlvType, elem, elem.Type().Name()+" cannot be present in SignatureInfo for Data")
			}
		}

		switch elem.Type() {
		case tlv.SignatureNonce:
			if mostRecentElem >= 1 {
				return nil, tlv.OutOfOrder(tlvType, elem)
			}
			mostRecentElem = 1
			s.nonce = optional.Some(tlv.Bytes[signatureNonceKind](elem.Value()))
		case tlv.SignatureTime:
			if mostRecentElem >= 2 {
				return nil, tlv.OutOfOrder(tlvType, elem)
			}
			mostRecentElem = 2
			t, err := tlv.DecodeNumber[signatureTimeKind](elem.Type(), elem.Value())
			if err != nil {
				return nil, err
			}
			s.time = optional.Some(t)
		case tlv.SignatureSeqNum:
			if mostRecentElem >= 3 {
				return nil, tlv.OutOfOrder(tlvType, elem)
			}
			mostRecentElem = 3
			seqNum, err := tlv.DecodeNumber[signatureSeqNumKind](elem.Type(), elem.Value())
			if err != nil {
				return nil, err
			}
			s.seqNum = optional.Some(seqNum)
		case tlv.ValidityPeriod:
			if s.validityPeriod != nil {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			mostRecentElem = 4
			s.validityPeriod = elem
		case tlv.SignatureType, tlv.KeyLocator:
			return nil, tlv.OutOfOrder(tlvType, elem)
		default:
			if err := tlv.Unrecognized(tlvType, elem); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func (s *SignatureInfo) String() string {
	var str strings.Builder
	if s.isInterest {
		str.WriteString("InterestSignatureInfo(")
	} else {
		str.WriteString("SignatureInfo(")
	}

	str.WriteString("SignatureType=" + strconv.FormatUint(uint64(s.signatureType), 10))

	if s.keyLocator != nil {
		str.WriteString(", " + s.keyLocator.String())
	}
	if nonce, ok := s.nonce.Get(); ok {
		str.WriteString(", SignatureNonce=0x" + hex.EncodeToString(nonce))
	}
	if t, ok := s.time.Get(); ok {
		str.WriteString(", SignatureTime=" + t.String())
	}
	if seqNum, ok := s.seqNum.Get(); ok {
		str.WriteString(", SignatureSeqNum=" + seqNum.String())
	}
	if s.validityPeriod != nil {
		str.WriteString(", ValidityPeriod")
	}

	str.WriteString(")")
	return str.String()
}

func (s *SignatureInfo) clone() *SignatureInfo {
	copyS := *s
	return &copyS
}

// SignatureType returns the type of the signature.
func (s *SignatureInfo) SignatureType() security.SignatureType {
	return s.signatureType
}

// KeyLocator returns the KeyLocator of the signature, or nil if there is none.
func (s *SignatureInfo) KeyLocator() *KeyLocator {
	return s.keyLocator
}

// Nonce returns the SignatureNonce of the signature.
func (s *SignatureInfo) Nonce() ([]byte, bool) {
	nonce, ok := s.nonce.Get()
	return nonce, ok
}

// WithNonce returns a copy of the InterestSignatureInfo with the specified SignatureNonce.
func (s *SignatureInfo) WithNonce(nonce []byte) *SignatureInfo {
	copyS := s.clone()
	copyS.nonce = optional.Some(tlv.Bytes[signatureNonceKind](nonce))
	return copyS
}

// Time returns the SignatureTime of the signature.
func (s *SignatureInfo) Time() (time.Time, bool) {
	t, ok := s.time.Get()
	return t.Time(), ok
}

// WithTime returns a copy of the InterestSignatureInfo with the specified SignatureTime, truncated to milliseconds.
func (s *SignatureInfo) WithTime(t time.Time) *SignatureInfo {
	copyS := s.clone()
	copyS.time = optional.Some(tlv.Number[signatureTimeKind](t.UnixMilli()))
	return copyS
}

// SeqNum returns the SignatureSeqNum of the signature.
func (s *SignatureInfo) SeqNum() (uint64, bool) {
	seqNum, ok := s.seqNum.Get()
	return seqNum.Uint64(), ok
}

// WithSeqNum returns a copy of the InterestSignatureInfo with the specified SignatureSeqNum.
func (s *SignatureInfo) WithSeqNum(seqNum uint64) *SignatureInfo {
	copyS := s.clone()
	copyS.seqNum = optional.Some(tlv.Number[signatureSeqNumKind](seqNum))
	return copyS
}

// ValidityPeriod returns the undecoded ValidityPeriod of a certificate signature, or nil.
func (s *SignatureInfo) ValidityPeriod() *tlv.Generic {
	return s.validityPeriod
}

// Interest returns true if this is an InterestSignatureInfo and false if it is a SignatureInfo (for Data packets).
func (s *SignatureInfo) Interest() bool {
	return s.isInterest
}

// Type returns the TLV type of the block.
func (s *SignatureInfo) Type() tlv.Type {
	if s.isInterest {
		return tlv.InterestSignatureInfo
	}
	return tlv.SignatureInfo
}

// Length returns the length of the encoded value.
func (s *SignatureInfo) Length() int {
	length := tlv.Size(s.signatureType)
	if s.keyLocator != nil {
		length += tlv.Size(s.keyLocator)
	}
	if s.isInterest {
		length += tlv.SizeOptional(s.nonce) + tlv.SizeOptional(s.time) + tlv.SizeOptional(s.seqNum)
	}
	if s.validityPeriod != nil {
		length += tlv.Size(s.validityPeriod)
	}
	return length
}

// AppendValue appends the encoded value to dst.
func (s *SignatureInfo) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, s.signatureType)
	if s.keyLocator != nil {
		dst = tlv.Append(dst, s.keyLocator)
	}
	if s.isInterest {
		dst = tlv.AppendOptional(dst, s.nonce)
		dst = tlv.AppendOptional(dst, s.time)
		dst = tlv.AppendOptional(dst, s.seqNum)
	}
	if s.validityPeriod != nil {
		dst = tlv.Append(dst, s.validityPeriod)
	}
	return dst
}

/////////////
// Signatures
/////////////

// DataSignature is the SignatureInfo and SignatureValue of a Data packet.
type DataSignature struct {
	info  *SignatureInfo
	value []byte
}

// NewDataSignature pairs a SignatureInfo with the signature bits computed by a signer.
func NewDataSignature(info *SignatureInfo, value []byte) *DataSignature {
	return &DataSignature{info: info, value: value}
}

// PlaceholderSignature returns a DigestSha256 signature whose value is all zeros,
// to be replaced once the packet is signed.
func PlaceholderSignature() *DataSignature {
	info, _ := NewSignatureInfo(security.DigestSha256Type, nil)
	return &DataSignature{info: info, value: make([]byte, 32)}
}

// Info returns the SignatureInfo.
func (s *DataSignature) Info() *SignatureInfo {
	return s.info
}

// Value returns the SignatureValue bits.
func (s *DataSignature) Value() []byte {
	return s.value
}

// InterestSignature is the InterestSignatureInfo and InterestSignatureValue of a signed Interest.
type InterestSignature struct {
	info  *SignatureInfo
	value []byte
}

// NewInterestSignature pairs an InterestSignatureInfo with the signature bits computed by a signer.
func NewInterestSignature(info *SignatureInfo, value []byte) *InterestSignature {
	if !info.isInterest {
		info = info.clone()
		info.isInterest = true
	}
	return &InterestSignature{info: info, value: value}
}

// Info returns the InterestSignatureInfo.
func (s *InterestSignature) Info() *SignatureInfo {
	return s.info
}

// Value returns the InterestSignatureValue bits.
func (s *InterestSignature) Value() []byte {
	return s.value
}
