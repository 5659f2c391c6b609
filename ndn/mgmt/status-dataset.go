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

// DatasetSegmentSize is the largest payload carried by one status dataset segment.
const DatasetSegmentSize = 8000

// DatasetFreshnessPeriod is the FreshnessPeriod of status dataset segments.
const DatasetFreshnessPeriod = 1000 * time.Millisecond

// MakeStatusDataset creates a set of status dataset packets based upon the specified prefix, version, and dataset information.
// An empty dataset is published as a single empty segment.
func MakeStatusDataset(name *ndn.Name, version uint64, dataset []byte) []*ndn.Data {
	nSegments := (len(dataset) + DatasetSegmentSize - 1) / DatasetSegmentSize
	if nSegments == 0 {
		nSegments = 1
	}

	metaInfo := ndn.NewMetaInfo().
		WithFreshnessPeriod(DatasetFreshnessPeriod).
		WithFinalBlockID(ndn.NewSegmentNameComponent(uint64(nSegments - 1)))
	versioned := name.Append(ndn.NewVersionNameComponent(version))

	segments := make([]*ndn.Data, nSegments)
	for segment := 0; segment < nSegments; segment++ {
		end := (segment + 1) * DatasetSegmentSize
		if end > len(dataset) {
			end = len(dataset)
		}
		content := dataset[segment*DatasetSegmentSize : end]
		if content == nil {
			content = []byte{}
		}
		segmentName := versioned.Append(ndn.NewSegmentNameComponent(uint64(segment)))
		segments[segment] = ndn.NewData(segmentName, content).WithMetaInfo(metaInfo)
	}
	return segments
}

// AssembleStatusDataset concatenates the payloads of the segments of a status dataset. The
// segments must be complete and in order.
func AssembleStatusDataset(segments []*ndn.Data) ([]byte, error) {
	if len(segments) == 0 {
		return nil, tlv.Invalidf(tlv.Data, "status dataset has no segments")
	}

	prefix := segments[0].Name().Prefix(-1)
	var dataset []byte
	for i, d := range segments {
		segment, ok := d.Name().At(-1).(*ndn.SegmentNameComponent)
		if !ok || segment.Number() != uint64(i) || !prefix.PrefixOf(d.Name()) || d.Name().Size() != prefix.Size()+1 {
			return nil, tlv.Invalidf(tlv.Data, "%s is not segment %d of %s", d.Name(), i, prefix)
		}
		content, _ := d.Content()
		dataset = append(dataset, content...)
	}

	last := segments[len(segments)-1]
	if last.MetaInfo() == nil || last.MetaInfo().FinalBlockID() == nil ||
		!last.MetaInfo().FinalBlockID().Equals(last.Name().At(-1)) {
		return nil, tlv.Invalidf(tlv.Data, "status dataset %s is incomplete", prefix)
	}
	return dataset, nil
}

// EncodeDataset concatenates the encodings of the entries of a status dataset.
func EncodeDataset(entries ...tlv.Element) []byte {
	return tlv.EncodeAll(entries...)
}

// DecodeDataset decodes a status dataset payload made of entries of the expected type.
func DecodeDataset[T any](dataset []byte, expected tlv.Type, decode tlv.DecodeFunc[T]) ([]T, error) {
	return tlv.DecodeRepeated(tlv.NewReader(dataset), expected, decode)
}
