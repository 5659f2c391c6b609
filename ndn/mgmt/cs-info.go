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

// CsFlag indicates a ContentStore status flag.
type CsFlag uint64

const (
	CsFlagEnableAdmit CsFlag = 1 << iota
	CsFlagEnableServe
)

// CsInfo contains status information about the Content Store.
type CsInfo struct {
	Capacity   uint64
	Flags      CsFlag
	NCsEntries uint64
	NHits      uint64
	NMisses    uint64
}

// DecodeCsInfo decodes the value of a CsInfo element.
func DecodeCsInfo(tlvType tlv.Type, value []byte) (*CsInfo, error) {
	s := new(CsInfo)
	var flags uint64
	seen, err := decodeFields(tlvType, value, fields{
		tlv.Capacity:   nniField(&s.Capacity),
		tlv.Flags:      nniField(&flags),
		tlv.NCsEntries: nniField(&s.NCsEntries),
		tlv.NHits:      nniField(&s.NHits),
		tlv.NMisses:    nniField(&s.NMisses),
	})
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.Capacity, tlv.Flags, tlv.NCsEntries, tlv.NHits, tlv.NMisses); err != nil {
		return nil, err
	}
	s.Flags = CsFlag(flags)
	return s, nil
}

func (s *CsInfo) elements() encoder {
	var e encoder
	e.add(tlv.Number[capacityKind](s.Capacity))
	e.add(tlv.Number[flagsKind](uint64(s.Flags)))
	e.add(tlv.Number[nCsEntriesKind](s.NCsEntries))
	e.add(tlv.Number[nHitsKind](s.NHits))
	e.add(tlv.Number[nMissesKind](s.NMisses))
	return e
}

// Type returns the TLV type of a CsInfo.
func (s *CsInfo) Type() tlv.Type {
	return tlv.CsInfo
}

// Length returns the length of the encoded value.
func (s *CsInfo) Length() int {
	return s.elements().length()
}

// AppendValue appends the encoded value to dst.
func (s *CsInfo) AppendValue(dst []byte) []byte {
	return s.elements().appendTo(dst)
}
