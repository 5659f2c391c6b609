/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/named-data/ndntlv/ndn/tlv"
)

// ChannelStatus contains status information about a channel.
type ChannelStatus struct {
	LocalURI string
}

// MakeChannelStatus creates a ChannelStatus.
func MakeChannelStatus(localURI string) *ChannelStatus {
	c := new(ChannelStatus)
	c.LocalURI = localURI
	return c
}

// DecodeChannelStatus decodes the value of a ChannelStatus element.
func DecodeChannelStatus(tlvType tlv.Type, value []byte) (*ChannelStatus, error) {
	c := new(ChannelStatus)
	seen, err := decodeFields(tlvType, value, fields{
		tlv.LocalURI: textField(&c.LocalURI),
	})
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.LocalURI); err != nil {
		return nil, err
	}
	return c, nil
}

// Type returns the TLV type of a ChannelStatus.
func (c *ChannelStatus) Type() tlv.Type {
	return tlv.ChannelStatus
}

// Length returns the length of the encoded value.
func (c *ChannelStatus) Length() int {
	return tlv.Size(tlv.String[localURIKind](c.LocalURI))
}

// AppendValue appends the encoded value to dst.
func (c *ChannelStatus) AppendValue(dst []byte) []byte {
	return tlv.Append(dst, tlv.String[localURIKind](c.LocalURI))
}
