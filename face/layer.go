/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/named-data/ndntlv/core"
	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/pkg/errors"
)

// NDNPort is the UDP port assigned to NDN.
const NDNPort = 6363

// Application-specific gopacket layer types live in [1000, 2000).
const layerTypeNumber = 1636

// LayerTypeNDN is the gopacket layer type of NDN packets.
var LayerTypeNDN = gopacket.RegisterLayerType(layerTypeNumber, gopacket.LayerTypeMetadata{
	Name:    "NDN",
	Decoder: gopacket.DecodeFunc(decodeNDN),
})

func init() {
	layers.RegisterUDPPortLayerType(NDNPort, LayerTypeNDN)
}

// RegisterConfiguredPort makes UDP decoding recognize NDN on the port at face.udp.port, in addition
// to NDNPort, and returns that port.
func RegisterConfiguredPort() uint16 {
	port := core.GetConfigUint16Default("face.udp.port", NDNPort)
	if port != NDNPort {
		layers.RegisterUDPPortLayerType(layers.UDPPort(port), LayerTypeNDN)
		core.LogInfo("NDN", "Decoding UDP port ", port, " as NDN")
	}
	return port
}

// NDN is a gopacket layer holding one NDN network packet, optionally carried in an NDNLPv2 fragment.
// Exactly one of Interest and Data is set after a successful decode.
type NDN struct {
	layers.BaseLayer
	Interest *ndn.Interest
	Data     *ndn.Data
	// Lp holds the NDNLPv2 header fields when the packet was carried in an LpPacket.
	Lp []*tlv.Generic
}

// LayerType returns LayerTypeNDN.
func (n *NDN) LayerType() gopacket.LayerType {
	return LayerTypeNDN
}

// CanDecode returns LayerTypeNDN.
func (n *NDN) CanDecode() gopacket.LayerClass {
	return LayerTypeNDN
}

// NextLayerType returns the type of the bytes following the NDN packet.
func (n *NDN) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// Payload returns the encoded NDN packet.
func (n *NDN) Payload() []byte {
	return n.Contents
}

// DecodeFromBytes decodes the NDN packet at the front of data.
func (n *NDN) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	n.Interest = nil
	n.Data = nil
	n.Lp = nil

	elem, size, err := tlv.DecodeGeneric(data)
	if err != nil {
		return err
	} else if elem == nil {
		df.SetTruncated()
		return errors.New("truncated NDN packet")
	}
	n.BaseLayer = layers.BaseLayer{Contents: data[:size], Payload: data[size:]}

	if elem.Type() == tlv.LpPacket {
		if elem, err = n.unwrapLpPacket(elem); err != nil {
			return err
		}
	}

	switch elem.Type() {
	case tlv.Interest:
		n.Interest, err = ndn.DecodeInterest(elem.Type(), elem.Value())
	case tlv.Data:
		n.Data, err = ndn.DecodeData(elem.Type(), elem.Value())
	default:
		err = tlv.InvalidElement(tlv.Unassigned, elem, "not an NDN network packet")
	}
	return err
}

// unwrapLpPacket returns the network packet in the Fragment of an LpPacket and records its header fields.
func (n *NDN) unwrapLpPacket(lp *tlv.Generic) (*tlv.Generic, error) {
	items, err := lp.Items()
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		if item.Type() != tlv.Fragment {
			switch {
			case item.Type().IsLpHeaderField():
				n.Lp = append(n.Lp, item)
			case item.Type().IsLpCritical():
				return nil, tlv.InvalidElement(tlv.LpPacket, item, "unrecognized NDNLPv2 header field "+item.Type().Name())
			default:
				core.LogDebug("NDN", "Ignoring unrecognized NDNLPv2 header field ", item.Type().Name())
			}
			continue
		}
		if i != len(items)-1 {
			return nil, tlv.OutOfOrder(tlv.LpPacket, items[i+1])
		}
		fragment, size, err := tlv.DecodeGeneric(item.Value())
		if err != nil {
			return nil, err
		} else if fragment == nil || size != len(item.Value()) {
			return nil, tlv.InvalidElement(tlv.LpPacket, item, "Fragment does not hold exactly one packet")
		}
		return fragment, nil
	}
	return nil, tlv.Invalidf(tlv.LpPacket, "LpPacket has no Fragment")
}

func decodeNDN(data []byte, p gopacket.PacketBuilder) error {
	n := new(NDN)
	if err := n.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(n)
	p.SetApplicationLayer(n)
	return nil
}
