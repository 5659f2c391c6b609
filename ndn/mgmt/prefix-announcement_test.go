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

func TestPrefixAnnouncement(t *testing.T) {
	pa := mgmt.MakePrefixAnnouncement(ndn.MustNameFromString("/ndn/edu/ucla"), 3, time.Hour)
	assert.Equal(t, "/ndn/edu/ucla", pa.Prefix().String())

	d, err := tlv.DecodeBytes(tlv.Encode(pa.Data()), tlv.Data, ndn.DecodeData)
	require.NoError(t, err)
	contentType, ok := d.MetaInfo().ContentType()
	assert.True(t, ok)
	assert.Equal(t, ndn.ContentTypePrefixAnnouncement, contentType)

	decoded, err := mgmt.NewPrefixAnnouncement(d)
	require.NoError(t, err)
	assert.True(t, decoded.Prefix().Equals(pa.Prefix()))
	assert.Equal(t, time.Hour, decoded.ExpirationPeriod())
	notBefore, notAfter := decoded.ValidityPeriod()
	assert.True(t, notBefore.IsZero())
	assert.True(t, notAfter.IsZero())
}

func TestPrefixAnnouncementValidityPeriod(t *testing.T) {
	pa := mgmt.MakePrefixAnnouncement(ndn.MustNameFromString("/ndn"), 1, time.Hour)
	validity := tlv.Encode(tlv.NewGeneric(tlv.NotBefore, []byte("20200101T000000")))
	validity = append(validity, tlv.Encode(tlv.NewGeneric(tlv.NotAfter, []byte("20300101T120000")))...)
	content := tlv.Encode(tlv.NewGeneric(tlv.ExpirationPeriod, []byte{0x00, 0x36, 0xEE, 0x80}))
	content = append(content, tlv.Encode(tlv.NewGeneric(tlv.ValidityPeriod, validity))...)

	decoded, err := mgmt.NewPrefixAnnouncement(pa.Data().WithContent(content))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, decoded.ExpirationPeriod())
	notBefore, notAfter := decoded.ValidityPeriod()
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), notBefore)
	assert.Equal(t, time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC), notAfter)

	// Missing ExpirationPeriod
	_, err = mgmt.NewPrefixAnnouncement(pa.Data().WithContent(tlv.Encode(tlv.NewGeneric(tlv.ValidityPeriod, validity))))
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Malformed NotBefore
	bad := tlv.Encode(tlv.NewGeneric(tlv.NotBefore, []byte("2020-01-01")))
	bad = append(bad, tlv.Encode(tlv.NewGeneric(tlv.NotAfter, []byte("20300101T120000")))...)
	content = tlv.Encode(tlv.NewGeneric(tlv.ExpirationPeriod, []byte{0x00, 0x36, 0xEE, 0x80}))
	content = append(content, tlv.Encode(tlv.NewGeneric(tlv.ValidityPeriod, bad))...)
	_, err = mgmt.NewPrefixAnnouncement(pa.Data().WithContent(content))
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
}

func TestPrefixAnnouncementInvalid(t *testing.T) {
	pa := mgmt.MakePrefixAnnouncement(ndn.MustNameFromString("/ndn"), 1, time.Minute)

	// Not a PA name
	_, err := mgmt.NewPrefixAnnouncement(pa.Data().WithName(ndn.MustNameFromString("/ndn/v=1/seg=0")))
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Not segment 0
	name := pa.Data().Name().Prefix(-1).Append(ndn.NewSegmentNameComponent(1))
	_, err = mgmt.NewPrefixAnnouncement(pa.Data().WithName(name))
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	// Blob content type
	_, err = mgmt.NewPrefixAnnouncement(pa.Data().WithMetaInfo(ndn.NewMetaInfo()))
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
	_, err = mgmt.NewPrefixAnnouncement(pa.Data().WithMetaInfo(nil))
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
}
