/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt_test

import (
	"errors"
	"testing"
	"time"

	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/mgmt"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Content of /localhost/nfd/status/general/v=1701934166024/seg=0.
var generalStatusContent = []byte{
	0x15, 85,
	128, 18, 50, 50, 46, 49, 50, 45, 51, 51, 45, 103, 101, 50, 55, 55, 102, 56, 98, 57,
	129, 8, 0, 0, 1, 140, 51, 165, 241, 48,
	130, 8, 0, 0, 1, 140, 67, 46, 112, 8,
	131, 1, 11, 132, 1, 2, 133, 1, 2, 134, 1, 0, 135, 1, 2,
	144, 2, 20, 191, 145, 2, 3, 230, 151, 1, 0,
	146, 2, 20, 191, 147, 2, 3, 211, 152, 1, 0,
	153, 2, 3, 211, 154, 2, 16, 230,
}

func TestGeneralStatusDecode(t *testing.T) {
	g, err := tlv.DecodeBytes(generalStatusContent, tlv.Content, mgmt.DecodeGeneralStatus)
	require.NoError(t, err)

	assert.Equal(t, "22.12-33-ge277f8b9", g.NfdVersion)
	assert.Equal(t, int64(0x18C33A5F130), g.StartTimestamp.UnixMilli())
	assert.Equal(t, int64(0x18C432E7008), g.CurrentTimestamp.UnixMilli())
	assert.Equal(t, uint64(11), g.NNameTreeEntries)
	assert.Equal(t, uint64(2), g.NFibEntries)
	assert.Equal(t, uint64(2), g.NPitEntries)
	assert.Equal(t, uint64(0), g.NMeasurementEntries)
	assert.Equal(t, uint64(2), g.NCsEntries)
	assert.Equal(t, uint64(5311), g.NInInterests)
	assert.Equal(t, uint64(998), g.NInData)
	assert.Equal(t, uint64(0), g.NInNacks)
	assert.Equal(t, uint64(5311), g.NOutInterests)
	assert.Equal(t, uint64(979), g.NOutData)
	assert.Equal(t, uint64(0), g.NOutNacks)
	assert.Equal(t, uint64(979), g.NSatisfiedInterests)
	assert.Equal(t, uint64(4326), g.NUnsatisfiedInterests)

	assert.Equal(t, generalStatusContent, tlv.Encode(g))
	assert.Equal(t, "GeneralStatus(version=22.12-33-ge277f8b9, startTime=2023-12-04T07:06:02.416Z, "+
		"currentTime=2023-12-07T07:29:26.024Z, nNameTreeEntries=11, nFibEntries=2, nPitEntries=2, "+
		"nMeasurementEntries=0, nCsEntries=2, nInInterests=5311, nInData=998, nInNacks=0, nOutInterests=5311, "+
		"nOutData=979, nOutNacks=0, nSatisfiedInterests=979, nUnsatisfiedInterests=4326)", g.String())
}

func TestGeneralStatusInData(t *testing.T) {
	g := mgmt.MakeGeneralStatus()
	g.NfdVersion = "0.1.0"
	g.StartTimestamp = time.UnixMilli(1600000000000)
	g.CurrentTimestamp = time.UnixMilli(1600000060000)
	g.NPitEntries = 7

	name := ndn.MustNameFromString("/localhost/nfd/status/general")
	segments := mgmt.MakeStatusDataset(name, 1, g.AppendValue(nil))
	require.Len(t, segments, 1)

	content, ok := segments[0].Content()
	require.True(t, ok)
	decoded, err := mgmt.DecodeGeneralStatus(tlv.Content, content)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", decoded.NfdVersion)
	assert.True(t, g.StartTimestamp.Equal(decoded.StartTimestamp))
	assert.True(t, g.CurrentTimestamp.Equal(decoded.CurrentTimestamp))
	assert.Equal(t, uint64(7), decoded.NPitEntries)
}

func TestGeneralStatusDecodeErrors(t *testing.T) {
	// Missing NfdVersion
	_, err := mgmt.DecodeGeneralStatus(tlv.Content, generalStatusContent[22:])
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Duplicate NNameTreeEntries
	value := append([]byte{}, generalStatusContent[2:]...)
	value = append(value, 131, 1, 12)
	_, err = mgmt.DecodeGeneralStatus(tlv.Content, value)
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Non-canonical counter
	value = append([]byte{}, generalStatusContent[2:42]...)
	value = append(value, 133, 2, 0, 2)
	_, err = mgmt.DecodeGeneralStatus(tlv.Content, value)
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Unrecognized elements
	value = append([]byte{}, generalStatusContent[2:42]...)
	value = append(value, 0x9C, 1, 0)
	_, err = mgmt.DecodeGeneralStatus(tlv.Content, value)
	assert.NoError(t, err)
	value = append([]byte{}, generalStatusContent[2:42]...)
	value = append(value, 0x9B, 1, 0)
	_, err = mgmt.DecodeGeneralStatus(tlv.Content, value)
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
}
