/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/named-data/ndntlv/ndn/tlv"
)

// GeneralStatus contains status information about the forwarder's overall status. It is
// carried unwrapped as the Content of /localhost/nfd/status/general.
type GeneralStatus struct {
	NfdVersion            string
	StartTimestamp        time.Time
	CurrentTimestamp      time.Time
	NNameTreeEntries      uint64
	NFibEntries           uint64
	NPitEntries           uint64
	NMeasurementEntries   uint64
	NCsEntries            uint64
	NInInterests          uint64
	NInData               uint64
	NInNacks              uint64
	NOutInterests         uint64
	NOutData              uint64
	NOutNacks             uint64
	NSatisfiedInterests   uint64
	NUnsatisfiedInterests uint64
}

// MakeGeneralStatus creates an empty GeneralStatus.
func MakeGeneralStatus() *GeneralStatus {
	g := new(GeneralStatus)
	return g
}

// DecodeGeneralStatus decodes a GeneralStatus from the value of a Content element.
func DecodeGeneralStatus(tlvType tlv.Type, value []byte) (*GeneralStatus, error) {
	g := new(GeneralStatus)
	seen, err := decodeFields(tlvType, value, fields{
		tlv.NfdVersion:            textField(&g.NfdVersion),
		tlv.StartTimestamp:        timestampField(&g.StartTimestamp),
		tlv.CurrentTimestamp:      timestampField(&g.CurrentTimestamp),
		tlv.NNameTreeEntries:      nniField(&g.NNameTreeEntries),
		tlv.NFibEntries:           nniField(&g.NFibEntries),
		tlv.NPitEntries:           nniField(&g.NPitEntries),
		tlv.NMeasurementEntries:   nniField(&g.NMeasurementEntries),
		tlv.NCsEntries:            nniField(&g.NCsEntries),
		tlv.NInInterests:          nniField(&g.NInInterests),
		tlv.NInData:               nniField(&g.NInData),
		tlv.NInNacks:              nniField(&g.NInNacks),
		tlv.NOutInterests:         nniField(&g.NOutInterests),
		tlv.NOutData:              nniField(&g.NOutData),
		tlv.NOutNacks:             nniField(&g.NOutNacks),
		tlv.NSatisfiedInterests:   nniField(&g.NSatisfiedInterests),
		tlv.NUnsatisfiedInterests: nniField(&g.NUnsatisfiedInterests),
	})
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.NfdVersion, tlv.StartTimestamp, tlv.CurrentTimestamp); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GeneralStatus) elements() encoder {
	var e encoder
	e.add(tlv.String[nfdVersionKind](g.NfdVersion))
	e.add(timestamp[startTimestampKind](g.StartTimestamp))
	e.add(timestamp[currentTimestampKind](g.CurrentTimestamp))
	e.add(tlv.Number[nNameTreeEntriesKind](g.NNameTreeEntries))
	e.add(tlv.Number[nFibEntriesKind](g.NFibEntries))
	e.add(tlv.Number[nPitEntriesKind](g.NPitEntries))
	e.add(tlv.Number[nMeasurementEntriesKind](g.NMeasurementEntries))
	e.add(tlv.Number[nCsEntriesKind](g.NCsEntries))
	e.add(tlv.Number[nInInterestsKind](g.NInInterests))
	e.add(tlv.Number[nInDataKind](g.NInData))
	e.add(tlv.Number[nInNacksKind](g.NInNacks))
	e.add(tlv.Number[nOutInterestsKind](g.NOutInterests))
	e.add(tlv.Number[nOutDataKind](g.NOutData))
	e.add(tlv.Number[nOutNacksKind](g.NOutNacks))
	e.add(tlv.Number[nSatisfiedInterestsKind](g.NSatisfiedInterests))
	e.add(tlv.Number[nUnsatisfiedInterestsKind](g.NUnsatisfiedInterests))
	return e
}

// Field labels in the order of elements().
var generalStatusLabels = []string{
	"version", "startTime", "currentTime", "nNameTreeEntries", "nFibEntries", "nPitEntries",
	"nMeasurementEntries", "nCsEntries", "nInInterests", "nInData", "nInNacks", "nOutInterests",
	"nOutData", "nOutNacks", "nSatisfiedInterests", "nUnsatisfiedInterests",
}

func (g *GeneralStatus) String() string {
	var str strings.Builder
	str.WriteString("GeneralStatus(")
	for idx, elem := range g.elements() {
		if idx > 0 {
			str.WriteString(", ")
		}
		str.WriteString(generalStatusLabels[idx] + "=" + fmt.Sprint(elem))
	}
	str.WriteString(")")
	return str.String()
}

// Type returns Content, the element a GeneralStatus is carried in.
func (g *GeneralStatus) Type() tlv.Type {
	return tlv.Content
}

// Length returns the length of the encoded value.
func (g *GeneralStatus) Length() int {
	return g.elements().length()
}

// AppendValue appends the encoded value to dst.
func (g *GeneralStatus) AppendValue(dst []byte) []byte {
	return g.elements().appendTo(dst)
}
