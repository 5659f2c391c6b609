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

	"github.com/named-data/ndntlv/ndn/mgmt"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFaceStatus(faceID uint64, uri string, localURI string) *mgmt.FaceStatus {
	f := mgmt.MakeFaceStatus()
	f.FaceID = faceID
	f.URI = uri
	f.LocalURI = localURI
	f.FacePersistency = mgmt.PersistencyOnDemand
	f.NInInterests = 12
	f.NOutBytes = 70000
	return f
}

func TestFaceStatusRoundTrip(t *testing.T) {
	f := makeFaceStatus(259, "udp4://192.0.2.1:6363", "udp4://192.0.2.2:6363")
	expiration := 30 * time.Second
	f.ExpirationPeriod = &expiration
	mtu := uint64(8800)
	f.MTU = &mtu

	wire := tlv.Encode(f)
	decoded, err := tlv.DecodeBytes(wire, tlv.FaceStatus, mgmt.DecodeFaceStatus)
	require.NoError(t, err)
	assert.Equal(t, uint64(259), decoded.FaceID)
	assert.Equal(t, "udp4://192.0.2.1:6363", decoded.URI)
	assert.Equal(t, "udp4://192.0.2.2:6363", decoded.LocalURI)
	require.NotNil(t, decoded.ExpirationPeriod)
	assert.Equal(t, 30*time.Second, *decoded.ExpirationPeriod)
	assert.Equal(t, mgmt.ScopeNonLocal, decoded.FaceScope)
	assert.Equal(t, mgmt.PersistencyOnDemand, decoded.FacePersistency)
	assert.Equal(t, mgmt.LinkPointToPoint, decoded.LinkType)
	assert.Nil(t, decoded.BaseCongestionMarkingInterval)
	require.NotNil(t, decoded.MTU)
	assert.Equal(t, uint64(8800), *decoded.MTU)
	assert.Equal(t, uint64(12), decoded.NInInterests)
	assert.Equal(t, uint64(70000), decoded.NOutBytes)
	assert.Equal(t, wire, tlv.Encode(decoded))
}

func TestFaceStatusMissingRequired(t *testing.T) {
	// FaceId, Uri and LocalUri without FaceScope, FacePersistency or LinkType
	value := []byte{0x69, 0x01, 0x01, 0x72, 0x01, 0x61, 0x81, 0x01, 0x62}
	_, err := mgmt.DecodeFaceStatus(tlv.FaceStatus, value)
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	value = append(value, 0x84, 0x01, 0x00, 0x85, 0x01, 0x00, 0x86, 0x01, 0x00)
	f, err := mgmt.DecodeFaceStatus(tlv.FaceStatus, value)
	require.NoError(t, err)
	assert.Equal(t, "a", f.URI)
	assert.Equal(t, "b", f.LocalURI)
	assert.Nil(t, f.ExpirationPeriod)
}

func TestFaceQueryFilter(t *testing.T) {
	udp := makeFaceStatus(300, "udp4://192.0.2.1:6363", "udp4://192.0.2.2:6363")
	tcp := makeFaceStatus(301, "tcp4://192.0.2.3:6363", "tcp4://192.0.2.2:6363")
	tcp.FacePersistency = mgmt.PersistencyPermanent

	empty := mgmt.MakeFaceQueryFilter()
	assert.True(t, empty.Matches(udp))
	assert.True(t, empty.Matches(tcp))

	filter := mgmt.MakeFaceQueryFilter()
	scheme := "udp4"
	filter.URIScheme = &scheme
	assert.True(t, filter.Matches(udp))
	assert.False(t, filter.Matches(tcp))

	filter = mgmt.MakeFaceQueryFilter()
	persistency := mgmt.PersistencyPermanent
	filter.FacePersistency = &persistency
	faceID := uint64(301)
	filter.FaceID = &faceID
	assert.False(t, filter.Matches(udp))
	assert.True(t, filter.Matches(tcp))

	wire := tlv.Encode(filter)
	decoded, err := tlv.DecodeBytes(wire, tlv.FaceQueryFilter, mgmt.DecodeFaceQueryFilter)
	require.NoError(t, err)
	require.NotNil(t, decoded.FaceID)
	assert.Equal(t, uint64(301), *decoded.FaceID)
	require.NotNil(t, decoded.FacePersistency)
	assert.Equal(t, mgmt.PersistencyPermanent, *decoded.FacePersistency)
	assert.Nil(t, decoded.URIScheme)
	assert.True(t, decoded.Matches(tcp))
}

func TestChannelStatus(t *testing.T) {
	wire := tlv.Encode(mgmt.MakeChannelStatus("udp4://0.0.0.0:6363"))
	c, err := tlv.DecodeBytes(wire, tlv.ChannelStatus, mgmt.DecodeChannelStatus)
	require.NoError(t, err)
	assert.Equal(t, "udp4://0.0.0.0:6363", c.LocalURI)

	_, err = mgmt.DecodeChannelStatus(tlv.ChannelStatus, []byte{})
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Invalid UTF-8
	_, err = mgmt.DecodeChannelStatus(tlv.ChannelStatus, []byte{0x81, 0x02, 0xC3, 0x28})
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
}
