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

	"github.com/named-data/ndntlv/ndn/mgmt"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacePersistency(t *testing.T) {
	assert.Equal(t, []byte{0x85, 0x01, 0x01}, tlv.Encode(mgmt.PersistencyOnDemand))
	assert.Equal(t, "on-demand", mgmt.PersistencyOnDemand.String())

	p, err := mgmt.DecodeFacePersistency(tlv.FacePersistency, []byte{0x02})
	require.NoError(t, err)
	assert.Equal(t, mgmt.PersistencyPermanent, p)
	assert.Equal(t, "permanent", p.String())

	_, err = mgmt.DecodeFacePersistency(tlv.FacePersistency, []byte{0x03})
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
	_, err = mgmt.DecodeFacePersistency(tlv.FacePersistency, []byte{0x00, 0x01})
	assert.True(t, errors.Is(err, tlv.ErrInvalid))
	assert.Equal(t, "unknown", mgmt.FacePersistency(9).String())
}

func TestFaceScopeAndLinkType(t *testing.T) {
	s, err := mgmt.DecodeFaceScope(tlv.FaceScope, []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, mgmt.ScopeLocal, s)
	assert.Equal(t, "local", s.String())
	_, err = mgmt.DecodeFaceScope(tlv.FaceScope, []byte{0x02})
	assert.True(t, errors.Is(err, tlv.ErrInvalid))

	l, err := mgmt.DecodeLinkType(tlv.LinkType, []byte{0x02})
	require.NoError(t, err)
	assert.Equal(t, mgmt.LinkAdHoc, l)
	assert.Equal(t, []byte{0x86, 0x01, 0x01}, tlv.Encode(mgmt.LinkMultiAccess))
}
