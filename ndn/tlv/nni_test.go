/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"math"
	"testing"

	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonNegativeNumberWidths(t *testing.T) {
	assert.Equal(t, []byte{0x00}, tlv.NonNegativeNumber(0).Bytes())
	assert.Equal(t, []byte{0x01}, tlv.NonNegativeNumber(1).Bytes())
	assert.Equal(t, []byte{0xFF}, tlv.NonNegativeNumber(255).Bytes())
	assert.Equal(t, []byte{0x01, 0x00}, tlv.NonNegativeNumber(256).Bytes())
	assert.Equal(t, []byte{0x03, 0xE8}, tlv.NonNegativeNumber(1000).Bytes())
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x00}, tlv.NonNegativeNumber(65536).Bytes())
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, tlv.NonNegativeNumber(math.MaxUint32).Bytes())
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x8C, 0x43, 0x2E, 0x70, 0x08}, tlv.NonNegativeNumber(0x18C432E7008).Bytes())

	for _, v := range []uint64{0, 255, 256, 65535, 65536, math.MaxUint32, math.MaxUint32 + 1, math.MaxUint64} {
		n := tlv.NonNegativeNumber(v)
		assert.Contains(t, []int{1, 2, 4, 8}, n.Len())
		decoded, err := tlv.DecodeNonNegativeNumber(n.Bytes())
		require.NoError(t, err)
		assert.Equal(t, n, decoded)
	}
}

func TestNonNegativeNumberDecodeLength(t *testing.T) {
	for _, wire := range [][]byte{
		{},
		{0x01, 0x02, 0x03},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09},
	} {
		_, err := tlv.DecodeNonNegativeNumber(wire)
		assert.ErrorIs(t, err, tlv.ErrInvalid, "length %d", len(wire))
		assert.NotErrorIs(t, err, tlv.ErrIncomplete)
	}
}

func TestNonNegativeNumberDecodeNonCanonical(t *testing.T) {
	_, err := tlv.DecodeNonNegativeNumber([]byte{0x00, 0x04})
	assert.ErrorIs(t, err, tlv.ErrInvalid)
	_, err = tlv.DecodeNonNegativeNumber([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04})
	assert.ErrorIs(t, err, tlv.ErrInvalid)
}
