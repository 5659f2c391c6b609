/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"time"

	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/tlv"
)

// RibEntry contains status information about a RIB entry.
type RibEntry struct {
	Name   *ndn.Name
	Routes []Route
}

// Route represents a route record in a RibEntry.
type Route struct {
	FaceID           uint64
	Origin           uint64
	Cost             uint64
	Flags            uint64
	ExpirationPeriod *time.Duration
}

// MakeRibEntry creates an empty RibEntry.
func MakeRibEntry(name *ndn.Name) *RibEntry {
	f := new(RibEntry)
	f.Name = name
	f.Routes = make([]Route, 0)
	return f
}

// DecodeRibEntry decodes the value of a RibEntry element.
func DecodeRibEntry(tlvType tlv.Type, value []byte) (*RibEntry, error) {
	f := new(RibEntry)
	seen, err := decodeFields(tlvType, value, fields{
		tlv.Name: nameField(&f.Name),
		tlv.Route: func(elem *tlv.Generic) error {
			route, err := decodeRoute(elem.Type(), elem.Value())
			if err != nil {
				return err
			}
			f.Routes = append(f.Routes, route)
			return nil
		},
	}, tlv.Route)
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.Name); err != nil {
		return nil, err
	}
	return f, nil
}

func decodeRoute(tlvType tlv.Type, value []byte) (Route, error) {
	var r Route
	seen, err := decodeFields(tlvType, value, fields{
		tlv.FaceID:           nniField(&r.FaceID),
		tlv.Origin:           nniField(&r.Origin),
		tlv.Cost:             nniField(&r.Cost),
		tlv.Flags:            nniField(&r.Flags),
		tlv.ExpirationPeriod: durationField(&r.ExpirationPeriod),
	})
	if err != nil {
		return Route{}, err
	}
	if err := requireFields(tlvType, seen, tlv.FaceID, tlv.Origin, tlv.Cost, tlv.Flags); err != nil {
		return Route{}, err
	}
	return r, nil
}

func (r Route) elements() encoder {
	var e encoder
	e.add(tlv.Number[faceIDKind](r.FaceID))
	e.add(tlv.Number[originKind](r.Origin))
	e.add(tlv.Number[costKind](r.Cost))
	e.add(tlv.Number[flagsKind](r.Flags))
	e.add(optDuration[expirationPeriodKind](r.ExpirationPeriod))
	return e
}

// Type returns the TLV type of a Route.
func (r Route) Type() tlv.Type {
	return tlv.Route
}

// Length returns the length of the encoded value.
func (r Route) Length() int {
	return r.elements().length()
}

// AppendValue appends the encoded value to dst.
func (r Route) AppendValue(dst []byte) []byte {
	return r.elements().appendTo(dst)
}

// Type returns the TLV type of a RibEntry.
func (f *RibEntry) Type() tlv.Type {
	return tlv.RibEntry
}

// Length returns the length of the encoded value.
func (f *RibEntry) Length() int {
	length := tlv.Size(f.Name)
	for _, route := range f.Routes {
		length += tlv.Size(route)
	}
	return length
}

// AppendValue appends the encoded value to dst.
func (f *RibEntry) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, f.Name)
	for _, route := range f.Routes {
		dst = tlv.Append(dst, route)
	}
	return dst
}
