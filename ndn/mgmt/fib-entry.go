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

// FibEntry contains status information about a FIB entry.
type FibEntry struct {
	Name     *ndn.Name
	Nexthops []NextHopRecord
}

// NextHopRecord represents a next hop record in a FibEntry.
type NextHopRecord struct {
	FaceID uint64
	Cost   uint64
}

// MakeFibEntry creates an empty FibEntry.
func MakeFibEntry(name *ndn.Name) *FibEntry {
	f := new(FibEntry)
	f.Name = name
	f.Nexthops = make([]NextHopRecord, 0)
	return f
}

// DecodeFibEntry decodes the value of a FibEntry element.
func DecodeFibEntry(tlvType tlv.Type, value []byte) (*FibEntry, error) {
	f := new(FibEntry)
	seen, err := decodeFields(tlvType, value, fields{
		tlv.Name: nameField(&f.Name),
		tlv.NextHopRecord: func(elem *tlv.Generic) error {
			var record NextHopRecord
			seen, err := decodeFields(elem.Type(), elem.Value(), fields{
				tlv.FaceID: nniField(&record.FaceID),
				tlv.Cost:   nniField(&record.Cost),
			})
			if err != nil {
				return err
			}
			if err := requireFields(elem.Type(), seen, tlv.FaceID, tlv.Cost); err != nil {
				return err
			}
			f.Nexthops = append(f.Nexthops, record)
			return nil
		},
	}, tlv.NextHopRecord)
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.Name); err != nil {
		return nil, err
	}
	return f, nil
}

// Type returns the TLV type of a NextHopRecord.
func (r NextHopRecord) Type() tlv.Type {
	return tlv.NextHopRecord
}

// Length returns the length of the encoded value.
func (r NextHopRecord) Length() int {
	return tlv.SizeAll(tlv.Number[faceIDKind](r.FaceID), tlv.Number[costKind](r.Cost))
}

// AppendValue appends the encoded value to dst.
func (r NextHopRecord) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, tlv.Number[faceIDKind](r.FaceID))
	return tlv.Append(dst, tlv.Number[costKind](r.Cost))
}

// Type returns the TLV type of a FibEntry.
func (f *FibEntry) Type() tlv.Type {
	return tlv.FibEntry
}

// Length returns the length of the encoded value.
func (f *FibEntry) Length() int {
	length := tlv.Size(f.Name)
	for _, record := range f.Nexthops {
		length += tlv.Size(record)
	}
	return length
}

// AppendValue appends the encoded value to dst.
func (f *FibEntry) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, f.Name)
	for _, record := range f.Nexthops {
		dst = tlv.Append(dst, record)
	}
	return dst
}
