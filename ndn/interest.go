/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/named-data/ndntlv/ndn/security"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/utils/optional"
)

// DefaultInterestLifetime is the lifetime of an Interest that does not carry an InterestLifetime.
const DefaultInterestLifetime = 4000 * time.Millisecond

type canBePrefixKind struct{}

func (canBePrefixKind) TLVType() tlv.Type { return tlv.CanBePrefix }

type mustBeFreshKind struct{}

func (mustBeFreshKind) TLVType() tlv.Type { return tlv.MustBeFresh }

type lifetimeKind struct{ tlv.Milliseconds }

func (lifetimeKind) TLVType() tlv.Type { return tlv.InterestLifetime }

type applicationParametersKind struct{}

func (applicationParametersKind) TLVType() tlv.Type { return tlv.ApplicationParameters }

type interestSignatureValueKind struct{}

func (interestSignatureValueKind) TLVType() tlv.Type { return tlv.InterestSignatureValue }

// Nonce is the random value an Interest carries for loop detection.
type Nonce [4]byte

// NewNonce returns a random Nonce. It is not suitable for cryptographic use.
func NewNonce() Nonce {
	var nonce Nonce
	for pos := range nonce {
		nonce[pos] = byte(rand.Uint32() % 256)
	}
	return nonce
}

// DecodeNonce decodes the value of a Nonce element, which must be exactly 4 octets.
func DecodeNonce(tlvType tlv.Type, value []byte) (Nonce, error) {
	var nonce Nonce
	if len(value) != len(nonce) {
		return nonce, tlv.LengthMismatch(len(nonce), tlv.NewGeneric(tlvType, value))
	}
	copy(nonce[:], value)
	return nonce, nil
}

// Type returns the TLV type of a Nonce.
func (n Nonce) Type() tlv.Type {
	return tlv.Nonce
}

// Length returns the length of the encoded value.
func (n Nonce) Length() int {
	return len(n)
}

// AppendValue appends the encoded value to dst.
func (n Nonce) AppendValue(dst []byte) []byte {
	return append(dst, n[:]...)
}

func (n Nonce) String() string {
	return "0x" + hex.EncodeToString(n[:])
}

type hopLimitValue uint8

func decodeHopLimit(tlvType tlv.Type, value []byte) (hopLimitValue, error) {
	if len(value) != 1 {
		return 0, tlv.LengthMismatch(1, tlv.NewGeneric(tlvType, value))
	}
	return hopLimitValue(value[0]), nil
}

func (h hopLimitValue) Type() tlv.Type {
	return tlv.HopLimit
}

func (h hopLimitValue) Length() int {
	return 1
}

func (h hopLimitValue) AppendValue(dst []byte) []byte {
	return append(dst, byte(h))
}

// forwardingHint is the list of delegation names in a ForwardingHint element.
type forwardingHint []*Name

func decodeForwardingHint(tlvType tlv.Type, value []byte) (forwardingHint, error) {
	names, err := tlv.DecodeRepeated(tlv.NewReader(value), tlv.Name, DecodeName)
	if err != nil {
		return nil, err
	}
	return append(forwardingHint{}, names...), nil
}

func (f forwardingHint) Type() tlv.Type {
	return tlv.ForwardingHint
}

func (f forwardingHint) Length() int {
	length := 0
	for _, name := range f {
		length += tlv.Size(name)
	}
	return length
}

func (f forwardingHint) AppendValue(dst []byte) []byte {
	for _, name := range f {
		dst = tlv.Append(dst, name)
	}
	return dst
}

func isInterestElement(t tlv.Type) bool {
	switch t {
	case tlv.Name, tlv.CanBePrefix, tlv.MustBeFresh, tlv.ForwardingHint, tlv.Nonce, tlv.InterestLifetime,
		tlv.HopLimit, tlv.ApplicationParameters, tlv.InterestSignatureInfo, tlv.InterestSignatureValue:
		return true
	default:
		return false
	}
}

// Interest represents an NDN Interest packet.
type Interest struct {
	name           *Name
	canBePrefix    bool
	mustBeFresh    bool
	forwardingHint optional.Optional[forwardingHint]
	nonce          optional.Optional[Nonce]
	lifetime       optional.Optional[tlv.Number[lifetimeKind]]
	hopLimit       optional.Optional[hopLimitValue]
	parameters     optional.Optional[tlv.Bytes[applicationParametersKind]]
	signature      *InterestSignature

	// Decoded octets from ApplicationParameters to the end, unrecognized elements included.
	// Cleared when the parameters or the signature change.
	parametersArea []byte
}

// NewInterest creates a new Interest with the specified name and a random Nonce.
func NewInterest(name *Name) *Interest {
	i := new(Interest)
	i.name = name
	i.nonce = optional.Some(NewNonce())
	return i
}

// NewInterestFromString creates a new Interest with a name parsed from its text form.
func NewInterestFromString(name string) (*Interest, error) {
	n, err := NameFromString(name)
	if err != nil {
		return nil, err
	}
	return NewInterest(n), nil
}

// DecodeInterest decodes the value of an Interest element.
func DecodeInterest(tlvType tlv.Type, value []byte) (*Interest, error) {
	i := new(Interest)
	r := tlv.NewReader(value)

	var err error
	if i.name, err = tlv.Decode(r, tlv.Name, DecodeName); err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	canBePrefix, err := tlv.DecodeOptional(r, tlv.CanBePrefix, tlv.DecodeFlag[canBePrefixKind])
	if err != nil {
		return nil, err
	}
	i.canBePrefix = canBePrefix.IsSet()

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	mustBeFresh, err := tlv.DecodeOptional(r, tlv.MustBeFresh, tlv.DecodeFlag[mustBeFreshKind])
	if err != nil {
		return nil, err
	}
	i.mustBeFresh = mustBeFresh.IsSet()

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	if i.forwardingHint, err = tlv.DecodeOptional(r, tlv.ForwardingHint, decodeForwardingHint); err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	if i.nonce, err = tlv.DecodeOptional(r, tlv.Nonce, DecodeNonce); err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	if i.lifetime, err = tlv.DecodeOptional(r, tlv.InterestLifetime, tlv.DecodeNumber[lifetimeKind]); err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	if i.hopLimit, err = tlv.DecodeOptional(r, tlv.HopLimit, decodeHopLimit); err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	parametersStart := len(value) - r.Remaining()
	if i.parameters, err = tlv.DecodeOptional(r, tlv.ApplicationParameters, tlv.DecodeBytesValue[applicationParametersKind]); err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	signatureInfo, err := tlv.DecodeOptional(r, tlv.InterestSignatureInfo, DecodeSignatureInfo)
	if err != nil {
		return nil, err
	}
	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	signatureValue, err := tlv.DecodeOptional(r, tlv.InterestSignatureValue, tlv.DecodeBytesValue[interestSignatureValueKind])
	if err != nil {
		return nil, err
	}

	if err := r.SkipUnrecognized(tlvType, isInterestElement); err != nil {
		return nil, err
	}
	if !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		return nil, tlv.OutOfOrder(tlvType, elem)
	}

	switch {
	case signatureInfo.IsSet() && signatureValue.IsSet():
		if !i.parameters.IsSet() {
			return nil, tlv.Invalidf(tlvType, "signed Interest must have ApplicationParameters")
		}
		i.signature = NewInterestSignature(signatureInfo.Unwrap(), signatureValue.Unwrap())
	case signatureInfo.IsSet():
		return nil, tlv.Invalidf(tlvType, "InterestSignatureInfo without InterestSignatureValue")
	case signatureValue.IsSet():
		return nil, tlv.Invalidf(tlvType, "InterestSignatureValue without InterestSignatureInfo")
	}

	if err := i.validateParametersDigest(value[parametersStart:]); err != nil {
		return nil, err
	}
	if i.parameters.IsSet() {
		i.parametersArea = value[parametersStart:]
	}
	return i, nil
}

func (i *Interest) validateParametersDigest(parametersWire []byte) error {
	digestCount := 0
	var digest NameComponent
	for _, component := range i.name.components {
		if component.Type() == tlv.ParametersSha256DigestComponent {
			digestCount++
			digest = component
		}
	}

	if !i.parameters.IsSet() {
		if digestCount != 0 {
			return tlv.Invalidf(tlv.Interest, "ParametersSha256DigestComponent without ApplicationParameters")
		}
		return nil
	}
	if digestCount != 1 {
		return tlv.Invalidf(tlv.Interest, "ApplicationParameters require exactly one ParametersSha256DigestComponent, found %d", digestCount)
	}
	if !security.ValidateDigestSha256(digest.Value(), parametersWire) {
		return tlv.Invalidf(tlv.Interest, "ParametersSha256DigestComponent does not match ApplicationParameters")
	}
	return nil
}

func (i *Interest) String() string {
	var str strings.Builder
	str.WriteString("Interest(Name=" + i.name.String())
	if i.canBePrefix {
		str.WriteString(", CanBePrefix")
	}
	if i.mustBeFresh {
		str.WriteString(", MustBeFresh")
	}
	if hint, ok := i.forwardingHint.Get(); ok {
		str.WriteString(", ForwardingHint(")
		for idx, name := range hint {
			if idx > 0 {
				str.WriteString(", ")
			}
			str.WriteString(name.String())
		}
		str.WriteString(")")
	}
	if nonce, ok := i.nonce.Get(); ok {
		str.WriteString(", Nonce=" + nonce.String())
	}
	if lifetime, ok := i.lifetime.Get(); ok {
		str.WriteString(", Lifetime=" + lifetime.String())
	}
	if hopLimit, ok := i.hopLimit.Get(); ok {
		str.WriteString(", HopLimit=" + strconv.FormatUint(uint64(hopLimit), 10))
	}
	if i.parameters.IsSet() {
		str.WriteString(", ApplicationParameters")
	}
	if i.signature != nil {
		str.WriteString(", " + i.signature.info.String())
	}
	str.WriteString(")")
	return str.String()
}

func (i *Interest) clone() *Interest {
	copyI := *i
	return &copyI
}

// Name returns the name of the Interest.
func (i *Interest) Name() *Name {
	return i.name
}

// WithName returns a copy of the Interest with the specified name. The ParametersSha256DigestComponent
// is restored if the Interest has ApplicationParameters.
func (i *Interest) WithName(name *Name) *Interest {
	copyI := i.clone()
	copyI.name = name
	if copyI.parameters.IsSet() {
		copyI.recomputeParametersDigestComponent()
	}
	return copyI
}

// CanBePrefix returns whether the Interest can be satisfied by Data whose name it is a prefix of.
func (i *Interest) CanBePrefix() bool {
	return i.canBePrefix
}

// WithCanBePrefix returns a copy of the Interest with the CanBePrefix flag set as specified.
func (i *Interest) WithCanBePrefix(canBePrefix bool) *Interest {
	copyI := i.clone()
	copyI.canBePrefix = canBePrefix
	return copyI
}

// MustBeFresh returns whether the Interest requires fresh Data.
func (i *Interest) MustBeFresh() bool {
	return i.mustBeFresh
}

// WithMustBeFresh returns a copy of the Interest with the MustBeFresh flag set as specified.
func (i *Interest) WithMustBeFresh(mustBeFresh bool) *Interest {
	copyI := i.clone()
	copyI.mustBeFresh = mustBeFresh
	return copyI
}

// ForwardingHint returns the delegation names of the ForwardingHint, if present.
func (i *Interest) ForwardingHint() ([]*Name, bool) {
	hint, ok := i.forwardingHint.Get()
	return append([]*Name(nil), hint...), ok
}

// WithForwardingHint returns a copy of the Interest with the specified ForwardingHint delegations.
// Calling it without names removes the ForwardingHint.
func (i *Interest) WithForwardingHint(names ...*Name) *Interest {
	copyI := i.clone()
	if len(names) == 0 {
		copyI.forwardingHint = optional.None[forwardingHint]()
	} else {
		copyI.forwardingHint = optional.Some(append(forwardingHint{}, names...))
	}
	return copyI
}

// Nonce returns the Nonce of the Interest, if present.
func (i *Interest) Nonce() (Nonce, bool) {
	return i.nonce.Get()
}

// WithNonce returns a copy of the Interest with the specified Nonce.
func (i *Interest) WithNonce(nonce Nonce) *Interest {
	copyI := i.clone()
	copyI.nonce = optional.Some(nonce)
	return copyI
}

// Lifetime returns the InterestLifetime, if present.
func (i *Interest) Lifetime() (time.Duration, bool) {
	lifetime, ok := i.lifetime.Get()
	return lifetime.Duration(), ok
}

// LifetimeOrDefault returns the InterestLifetime, or DefaultInterestLifetime if there is none.
func (i *Interest) LifetimeOrDefault() time.Duration {
	if lifetime, ok := i.Lifetime(); ok {
		return lifetime
	}
	return DefaultInterestLifetime
}

// WithLifetime returns a copy of the Interest with the specified InterestLifetime, truncated to milliseconds.
func (i *Interest) WithLifetime(lifetime time.Duration) *Interest {
	copyI := i.clone()
	copyI.lifetime = optional.Some(tlv.Number[lifetimeKind](lifetime.Milliseconds()))
	return copyI
}

// HopLimit returns the HopLimit, if present.
func (i *Interest) HopLimit() (uint8, bool) {
	hopLimit, ok := i.hopLimit.Get()
	return uint8(hopLimit), ok
}

// WithHopLimit returns a copy of the Interest with the specified HopLimit.
func (i *Interest) WithHopLimit(hopLimit uint8) *Interest {
	copyI := i.clone()
	copyI.hopLimit = optional.Some(hopLimitValue(hopLimit))
	return copyI
}

// ApplicationParameters returns the value of the ApplicationParameters, if present.
func (i *Interest) ApplicationParameters() ([]byte, bool) {
	parameters, ok := i.parameters.Get()
	return parameters, ok
}

// WithApplicationParameters returns a copy of the Interest with the specified ApplicationParameters.
// The ParametersSha256DigestComponent of the name is replaced, or appended if the name has none.
func (i *Interest) WithApplicationParameters(parameters []byte) *Interest {
	copyI := i.clone()
	copyI.parameters = optional.Some(tlv.Bytes[applicationParametersKind](parameters))
	copyI.parametersArea = nil
	copyI.recomputeParametersDigestComponent()
	return copyI
}

// Signature returns the InterestSignature, or nil if the Interest is not signed.
func (i *Interest) Signature() *InterestSignature {
	return i.signature
}

// WithSignature returns a copy of the Interest carrying the specified signature. Empty
// ApplicationParameters are added if the Interest has none.
func (i *Interest) WithSignature(signature *InterestSignature) *Interest {
	copyI := i.clone()
	copyI.signature = signature
	copyI.parametersArea = nil
	if !copyI.parameters.IsSet() {
		copyI.parameters = optional.Some(tlv.Bytes[applicationParametersKind]{})
	}
	copyI.recomputeParametersDigestComponent()
	return copyI
}

// SignedPortion returns the octets covered by an InterestSignature: the name components except the
// ParametersSha256DigestComponent, followed by the elements from ApplicationParameters through InterestSignatureInfo.
func (i *Interest) SignedPortion() []byte {
	var wire []byte
	for _, component := range i.name.components {
		if component.Type() != tlv.ParametersSha256DigestComponent {
			wire = tlv.Append(wire, component)
		}
	}
	wire = tlv.AppendOptional(wire, i.parameters)
	if i.signature != nil {
		wire = tlv.Append(wire, i.signature.info)
	}
	return wire
}

func (i *Interest) parametersWire() []byte {
	if i.parametersArea != nil {
		return i.parametersArea
	}
	wire := tlv.AppendOptional(nil, i.parameters)
	if i.signature != nil {
		wire = tlv.Append(wire, i.signature.info)
		wire = tlv.Append(wire, tlv.Bytes[interestSignatureValueKind](i.signature.value))
	}
	return wire
}

func (i *Interest) recomputeParametersDigestComponent() {
	digest, _ := NewParametersSha256DigestComponent(security.DigestSha256(i.parametersWire()))

	components := make([]NameComponent, 0, i.name.Size()+1)
	replaced := false
	for _, component := range i.name.components {
		if component.Type() == tlv.ParametersSha256DigestComponent {
			if !replaced {
				components = append(components, digest)
				replaced = true
			}
			continue
		}
		components = append(components, component)
	}
	if !replaced {
		components = append(components, digest)
	}
	i.name = NewName(components...)
}

// MatchesData returns whether the Data can satisfy the Interest by name. A name ending in an
// ImplicitSha256DigestComponent is compared with the full name of the Data.
func (i *Interest) MatchesData(d *Data) bool {
	dataName := d.Name()
	if last := i.name.At(-1); last != nil && last.Type() == tlv.ImplicitSha256DigestComponent {
		return i.name.Size() == dataName.Size()+1 && i.name.Equals(d.FullName())
	}
	if i.canBePrefix {
		return i.name.PrefixOf(dataName)
	}
	return i.name.Equals(dataName)
}

// Type returns the TLV type of an Interest.
func (i *Interest) Type() tlv.Type {
	return tlv.Interest
}

// Length returns the length of the encoded value.
func (i *Interest) Length() int {
	length := tlv.Size(i.name)
	if i.canBePrefix {
		length += tlv.Size(tlv.Flag[canBePrefixKind]{})
	}
	if i.mustBeFresh {
		length += tlv.Size(tlv.Flag[mustBeFreshKind]{})
	}
	length += tlv.SizeOptional(i.forwardingHint)
	length += tlv.SizeOptional(i.nonce)
	length += tlv.SizeOptional(i.lifetime)
	length += tlv.SizeOptional(i.hopLimit)
	return length + len(i.parametersWire())
}

// AppendValue appends the encoded value to dst.
func (i *Interest) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, i.name)
	if i.canBePrefix {
		dst = tlv.Append(dst, tlv.Flag[canBePrefixKind]{})
	}
	if i.mustBeFresh {
		dst = tlv.Append(dst, tlv.Flag[mustBeFreshKind]{})
	}
	dst = tlv.AppendOptional(dst, i.forwardingHint)
	dst = tlv.AppendOptional(dst, i.nonce)
	dst = tlv.AppendOptional(dst, i.lifetime)
	dst = tlv.AppendOptional(dst, i.hopLimit)
	return append(dst, i.parametersWire()...)
}
