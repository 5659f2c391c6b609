/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"crypto/sha256"
	"testing"
	"time"

	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/security"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestNew(t *testing.T) {
	i, err := ndn.NewInterestFromString("/go/ndn")
	require.NoError(t, err)
	assert.Equal(t, "/go/ndn", i.Name().String())
	assert.False(t, i.CanBePrefix())
	assert.False(t, i.MustBeFresh())
	_, ok := i.ForwardingHint()
	assert.False(t, ok)
	_, ok = i.Nonce()
	assert.True(t, ok)
	_, ok = i.Lifetime()
	assert.False(t, ok)
	assert.Equal(t, ndn.DefaultInterestLifetime, i.LifetimeOrDefault())
	_, ok = i.HopLimit()
	assert.False(t, ok)
	_, ok = i.ApplicationParameters()
	assert.False(t, ok)
	assert.Nil(t, i.Signature())

	_, err = ndn.NewInterestFromString("/go/unknown=ndn")
	assert.Error(t, err)
}

func TestInterestFlagsRoundTrip(t *testing.T) {
	i, err := ndn.NewInterestFromString("/a/b")
	require.NoError(t, err)
	i = i.WithMustBeFresh(true).WithCanBePrefix(true).WithNonce(ndn.Nonce{0x01, 0x02, 0x03, 0x04})

	wire := tlv.Encode(i)
	assert.Equal(t, []byte{0x05, 0x12,
		0x07, 0x06, 0x08, 0x01, 0x61, 0x08, 0x01, 0x62,
		0x21, 0x00,
		0x12, 0x00,
		0x0a, 0x04, 0x01, 0x02, 0x03, 0x04}, wire)

	decoded, err := tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)
	assert.Equal(t, "/a/b", decoded.Name().String())
	assert.True(t, decoded.CanBePrefix())
	assert.True(t, decoded.MustBeFresh())
	nonce, ok := decoded.Nonce()
	assert.True(t, ok)
	assert.Equal(t, ndn.Nonce{0x01, 0x02, 0x03, 0x04}, nonce)
	assert.Equal(t, wire, tlv.Encode(decoded))
	assert.Equal(t, "Interest(Name=/a/b, CanBePrefix, MustBeFresh, Nonce=0x01020304)", decoded.String())
}

func TestInterestImmutable(t *testing.T) {
	i := ndn.NewInterest(ndn.MustNameFromString("/a"))
	fresh := i.WithMustBeFresh(true).WithHopLimit(8)
	assert.False(t, i.MustBeFresh())
	_, ok := i.HopLimit()
	assert.False(t, ok)
	assert.True(t, fresh.MustBeFresh())
	hopLimit, ok := fresh.HopLimit()
	assert.True(t, ok)
	assert.Equal(t, uint8(8), hopLimit)
}

func TestInterestDecode(t *testing.T) {
	wire := []byte{0x05, 0x00,
		0x07, 0x03, 0x08, 0x01, 0x61,
		0x1e, 0x0a, 0x07, 0x03, 0x08, 0x01, 0x62, 0x07, 0x03, 0x08, 0x01, 0x63,
		0x0a, 0x04, 0xde, 0xad, 0xbe, 0xef,
		0x0c, 0x02, 0x07, 0xd0,
		0x22, 0x01, 0x05}
	wire[1] = byte(len(wire) - 2)
	i, err := tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)

	assert.Equal(t, "/a", i.Name().String())
	hint, ok := i.ForwardingHint()
	assert.True(t, ok)
	require.Len(t, hint, 2)
	assert.Equal(t, "/b", hint[0].String())
	assert.Equal(t, "/c", hint[1].String())
	nonce, _ := i.Nonce()
	assert.Equal(t, ndn.Nonce{0xde, 0xad, 0xbe, 0xef}, nonce)
	lifetime, ok := i.Lifetime()
	assert.True(t, ok)
	assert.Equal(t, 2*time.Second, lifetime)
	hopLimit, ok := i.HopLimit()
	assert.True(t, ok)
	assert.Equal(t, uint8(5), hopLimit)
	assert.Equal(t, wire, tlv.Encode(i))
	assert.Equal(t, "Interest(Name=/a, ForwardingHint(/b, /c), Nonce=0xdeadbeef, Lifetime=2000ms, HopLimit=5)", i.String())
}

func TestInterestDecodeErrors(t *testing.T) {
	// Name missing
	_, err := tlv.DecodeBytes([]byte{0x05, 0x02, 0x21, 0x00}, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrTypeMismatch)

	// MustBeFresh before CanBePrefix
	wire := []byte{0x05, 0x09, 0x07, 0x03, 0x08, 0x01, 0x61, 0x12, 0x00, 0x21, 0x00}
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrInvalid)

	// Duplicate Nonce
	wire = []byte{0x05, 0x11, 0x07, 0x03, 0x08, 0x01, 0x61,
		0x0a, 0x04, 0x01, 0x02, 0x03, 0x04,
		0x0a, 0x04, 0x01, 0x02, 0x03, 0x04}
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrInvalid)

	// Short Nonce
	wire = []byte{0x05, 0x08, 0x07, 0x03, 0x08, 0x01, 0x61, 0x0a, 0x01, 0x01}
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrLengthMismatch)

	// Two-octet HopLimit
	wire = []byte{0x05, 0x09, 0x07, 0x03, 0x08, 0x01, 0x61, 0x22, 0x02, 0x00, 0x01}
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrLengthMismatch)
}

func TestInterestDecodeUnrecognized(t *testing.T) {
	wire := []byte{0x05, 0x0d,
		0x07, 0x03, 0x08, 0x01, 0x61,
		0xfc, 0x02, 0xaa, 0xbb,
		0x12, 0x00}
	wire[1] = byte(len(wire) - 2)
	i, err := tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)
	assert.True(t, i.MustBeFresh())
	_, ok := i.Nonce()
	assert.False(t, ok)

	wire[7] = 0xfd
	wire[8] = 0x01
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.Error(t, err)

	wire = []byte{0x05, 0x00,
		0x07, 0x03, 0x08, 0x01, 0x61,
		0xf1, 0x00,
		0x12, 0x00}
	wire[1] = byte(len(wire) - 2)
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrInvalid)
}

func TestInterestUnrecognizedAfterParameters(t *testing.T) {
	parametersArea := []byte{0x24, 0x03, 0x01, 0x02, 0x03, 0xc8, 0x01, 0x00}
	digest := sha256.Sum256(parametersArea)
	wire := []byte{0x05, 0x00,
		0x07, 0x25, 0x08, 0x01, 0x61, 0x02, 0x20}
	wire = append(wire, digest[:]...)
	wire = append(wire, 0x0a, 0x04, 0x01, 0x02, 0x03, 0x04)
	wire = append(wire, parametersArea...)
	wire[1] = byte(len(wire) - 2)

	i, err := tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)
	params, ok := i.ApplicationParameters()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, params)

	// The skipped element stays under the digest
	assert.Equal(t, wire, tlv.Encode(i))
	assert.Equal(t, len(wire), tlv.Size(i))
	again, err := tlv.DecodeBytes(tlv.Encode(i), tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)
	assert.True(t, i.Name().Equals(again.Name()))

	renamed := i.WithName(ndn.MustNameFromString("/b"))
	assert.Equal(t, digest[:], renamed.Name().At(-1).Value())
	_, err = tlv.DecodeBytes(tlv.Encode(renamed), tlv.Interest, ndn.DecodeInterest)
	assert.NoError(t, err)

	// New parameters drop it
	replaced := i.WithApplicationParameters([]byte{0x04})
	replacedWire := tlv.Encode(replaced)
	assert.Equal(t, []byte{0x24, 0x01, 0x04}, replacedWire[len(replacedWire)-3:])
	_, err = tlv.DecodeBytes(replacedWire, tlv.Interest, ndn.DecodeInterest)
	assert.NoError(t, err)
}

func TestInterestApplicationParameters(t *testing.T) {
	i := ndn.NewInterest(ndn.MustNameFromString("/a")).WithNonce(ndn.Nonce{})
	withParams := i.WithApplicationParameters([]byte{0x01, 0x02, 0x03})

	assert.Equal(t, 1, i.Name().Size())
	require.Equal(t, 2, withParams.Name().Size())
	digest := sha256.Sum256([]byte{0x24, 0x03, 0x01, 0x02, 0x03})
	assert.Equal(t, tlv.ParametersSha256DigestComponent, withParams.Name().At(1).Type())
	assert.Equal(t, digest[:], withParams.Name().At(1).Value())

	// Replacing the parameters replaces the digest
	replaced := withParams.WithApplicationParameters([]byte{0x04})
	require.Equal(t, 2, replaced.Name().Size())
	digest = sha256.Sum256([]byte{0x24, 0x01, 0x04})
	assert.Equal(t, digest[:], replaced.Name().At(1).Value())

	wire := tlv.Encode(withParams)
	decoded, err := tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)
	params, ok := decoded.ApplicationParameters()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, params)
	assert.True(t, withParams.Name().Equals(decoded.Name()))

	// Tampered parameters no longer match the digest
	wire[len(wire)-1] = 0xff
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrInvalid)

	// Parameters without a digest component
	wire = []byte{0x05, 0x08, 0x07, 0x03, 0x08, 0x01, 0x61, 0x24, 0x01, 0x00}
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrInvalid)
}

func TestInterestSigned(t *testing.T) {
	info, err := ndn.NewInterestSignatureInfo(security.DigestSha256Type, nil)
	require.NoError(t, err)
	info = info.WithNonce([]byte{0x0a, 0x0b}).WithTime(time.UnixMilli(1700000000000)).WithSeqNum(7)

	i := ndn.NewInterest(ndn.MustNameFromString("/a/b"))
	unsigned := i.WithSignature(ndn.NewInterestSignature(info, nil))
	signature := security.DigestSha256(unsigned.SignedPortion())
	signed := i.WithSignature(ndn.NewInterestSignature(info, signature))

	params, ok := signed.ApplicationParameters()
	assert.True(t, ok)
	assert.Empty(t, params)
	assert.Equal(t, tlv.ParametersSha256DigestComponent, signed.Name().At(-1).Type())

	decoded, err := tlv.DecodeBytes(tlv.Encode(signed), tlv.Interest, ndn.DecodeInterest)
	require.NoError(t, err)
	require.NotNil(t, decoded.Signature())
	decodedInfo := decoded.Signature().Info()
	assert.True(t, decodedInfo.Interest())
	assert.Equal(t, security.DigestSha256Type, decodedInfo.SignatureType())
	nonce, ok := decodedInfo.Nonce()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x0a, 0x0b}, nonce)
	sigTime, ok := decodedInfo.Time()
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000000), sigTime.UnixMilli())
	seqNum, ok := decodedInfo.SeqNum()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), seqNum)

	assert.Equal(t, signed.SignedPortion(), decoded.SignedPortion())
	assert.True(t, security.ValidateDigestSha256(decoded.Signature().Value(), decoded.SignedPortion()))

	// Signature info without value
	wire := []byte{0x05, 0x00,
		0x07, 0x03, 0x08, 0x01, 0x61,
		0x2c, 0x03, 0x1b, 0x01, 0x00}
	wire[1] = byte(len(wire) - 2)
	_, err = tlv.DecodeBytes(wire, tlv.Interest, ndn.DecodeInterest)
	assert.ErrorIs(t, err, tlv.ErrInvalid)
}

func TestInterestMatchesData(t *testing.T) {
	d := ndn.NewData(ndn.MustNameFromString("/a/b"), []byte{0x01})

	exact := ndn.NewInterest(ndn.MustNameFromString("/a/b"))
	assert.True(t, exact.MatchesData(d))

	prefix := ndn.NewInterest(ndn.MustNameFromString("/a"))
	assert.False(t, prefix.MatchesData(d))
	assert.True(t, prefix.WithCanBePrefix(true).MatchesData(d))

	other := ndn.NewInterest(ndn.MustNameFromString("/a/c")).WithCanBePrefix(true)
	assert.False(t, other.MatchesData(d))

	full := ndn.NewInterest(d.FullName())
	assert.True(t, full.MatchesData(d))
	assert.False(t, full.MatchesData(d.WithContent([]byte{0x02})))
}
