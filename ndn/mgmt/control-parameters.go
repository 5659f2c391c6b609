/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/tlv"
)

// ControlParameters represents the parameters of a management command.
type ControlParameters struct {
	Name                          *ndn.Name
	FaceID                        *uint64
	URI                           *string
	LocalURI                      *string
	Origin                        *uint64
	Cost                          *uint64
	Capacity                      *uint64
	Count                         *uint64
	BaseCongestionMarkingInterval *uint64
	DefaultCongestionThreshold    *uint64
	MTU                           *uint64
	Flags                         *uint64
	Mask                          *uint64
	Strategy                      *ndn.Name
	ExpirationPeriod              *uint64
	FacePersistency               *FacePersistency
}

// MakeControlParameters creates an empty ControlParameters.
func MakeControlParameters() *ControlParameters {
	c := new(ControlParameters)
	return c
}

// DecodeControlParameters decodes the value of a ControlParameters element.
func DecodeControlParameters(tlvType tlv.Type, value []byte) (*ControlParameters, error) {
	c := new(ControlParameters)
	_, err := decodeFields(tlvType, value, fields{
		tlv.Name:                          nameField(&c.Name),
		tlv.FaceID:                        optNNIField(&c.FaceID),
		tlv.URI:                           optTextField(&c.URI),
		tlv.LocalURI:                      optTextField(&c.LocalURI),
		tlv.Origin:                        optNNIField(&c.Origin),
		tlv.Cost:                          optNNIField(&c.Cost),
		tlv.Capacity:                      optNNIField(&c.Capacity),
		tlv.Count:                         optNNIField(&c.Count),
		tlv.BaseCongestionMarkingInterval: optNNIField(&c.BaseCongestionMarkingInterval),
		tlv.DefaultCongestionThreshold:    optNNIField(&c.DefaultCongestionThreshold),
		tlv.MTU:                           optNNIField(&c.MTU),
		tlv.Flags:                         optNNIField(&c.Flags),
		tlv.Mask:                          optNNIField(&c.Mask),
		tlv.Strategy:                      strategyField(&c.Strategy),
		tlv.ExpirationPeriod:              optNNIField(&c.ExpirationPeriod),
		tlv.FacePersistency: func(elem *tlv.Generic) error {
			c.FacePersistency = new(FacePersistency)
			return enumField(c.FacePersistency, DecodeFacePersistency)(elem)
		},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func strategyField(dst **ndn.Name) func(elem *tlv.Generic) error {
	return func(elem *tlv.Generic) error {
		name, err := tlv.DecodeBytes(elem.Value(), tlv.Name, ndn.DecodeName)
		if err != nil {
			return err
		}
		*dst = name
		return nil
	}
}

func (c *ControlParameters) elements() encoder {
	var e encoder
	if c.Name != nil {
		e.add(c.Name)
	}
	e.add(optNumber[faceIDKind](c.FaceID))
	e.add(optText[uriKind](c.URI))
	e.add(optText[localURIKind](c.LocalURI))
	e.add(optNumber[originKind](c.Origin))
	e.add(optNumber[costKind](c.Cost))
	e.add(optNumber[capacityKind](c.Capacity))
	e.add(optNumber[countKind](c.Count))
	e.add(optNumber[baseCongestionMarkingIntervalKind](c.BaseCongestionMarkingInterval))
	e.add(optNumber[defaultCongestionThresholdKind](c.DefaultCongestionThreshold))
	e.add(optNumber[mtuKind](c.MTU))
	e.add(optNumber[flagsKind](c.Flags))
	e.add(optNumber[maskKind](c.Mask))
	if c.Strategy != nil {
		e.add(wrapped{tlv.Strategy, c.Strategy})
	}
	e.add(optNumber[expirationPeriodKind](c.ExpirationPeriod))
	if c.FacePersistency != nil {
		e.add(*c.FacePersistency)
	}
	return e
}

// Type returns the TLV type of ControlParameters.
func (c *ControlParameters) Type() tlv.Type {
	return tlv.ControlParameters
}

// Length returns the length of the encoded value.
func (c *ControlParameters) Length() int {
	return c.elements().length()
}

// AppendValue appends the encoded value to dst.
func (c *ControlParameters) AppendValue(dst []byte) []byte {
	return c.elements().appendTo(dst)
}
