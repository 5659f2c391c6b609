/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security_test

import (
	"encoding/hex"
	"testing"

	"github.com/named-data/ndntlv/ndn/security"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestSha256(t *testing.T) {
	// https://www.di-mgt.com.au/sha_testvectors.html
	buf := []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq")
	ref, _ := hex.DecodeString("248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1")
	assert.Equal(t, ref, security.DigestSha256(buf))
	assert.Equal(t, ref, security.DigestSha256(buf[:10], buf[10:]))
}

func TestValidateDigestSha256(t *testing.T) {
	// https://www.di-mgt.com.au/sha_testvectors.html
	ref, _ := hex.DecodeString("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	wrongA := ref[1:]
	wrongB := append([]byte{0x00}, ref...)
	wrongC := append([]byte{}, ref...)
	wrongC[4] ^= 0x01

	assert.True(t, security.ValidateDigestSha256(ref))
	assert.True(t, security.ValidateDigestSha256(ref, []byte{}))
	assert.False(t, security.ValidateDigestSha256(wrongA))
	assert.False(t, security.ValidateDigestSha256(wrongB))
	assert.False(t, security.ValidateDigestSha256(wrongC))
}

func TestSignatureType(t *testing.T) {
	assert.False(t, security.DigestSha256Type.NeedsKeyLocator())
	assert.True(t, security.SignatureSha256WithRsaType.NeedsKeyLocator())
	assert.True(t, security.SignatureSha256WithEcdsaType.NeedsKeyLocator())
	assert.True(t, security.SignatureHmacWithSha256Type.NeedsKeyLocator())
	assert.True(t, security.SignatureEd25519Type.NeedsKeyLocator())

	assert.Equal(t, []byte{0x1B, 0x01, 0x03}, tlv.Encode(security.SignatureSha256WithEcdsaType))
	assert.Equal(t, "SignatureEd25519", security.SignatureEd25519Type.String())
	assert.Equal(t, "2", security.SignatureType(2).String())

	s, err := tlv.DecodeBytes([]byte{0x1B, 0x01, 0x05}, tlv.SignatureType, security.DecodeSignatureType)
	require.NoError(t, err)
	assert.Equal(t, security.SignatureEd25519Type, s)

	_, err = tlv.DecodeBytes([]byte{0x1B, 0x01, 0x02}, tlv.SignatureType, security.DecodeSignatureType)
	assert.ErrorIs(t, err, tlv.ErrInvalid)
	_, err = tlv.DecodeBytes([]byte{0x1B, 0x03, 0x00, 0x00, 0x01}, tlv.SignatureType, security.DecodeSignatureType)
	assert.ErrorIs(t, err, tlv.ErrInvalid)
}
