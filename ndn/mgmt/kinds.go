/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import "github.com/named-data/ndntlv/ndn/tlv"

// Kinds of the numbers and strings in management structures.

type baseCongestionMarkingIntervalKind struct{}

func (baseCongestionMarkingIntervalKind) TLVType() tlv.Type { return tlv.BaseCongestionMarkingInterval }

type capacityKind struct{}

func (capacityKind) TLVType() tlv.Type { return tlv.Capacity }

type costKind struct{}

func (costKind) TLVType() tlv.Type { return tlv.Cost }

type countKind struct{}

func (countKind) TLVType() tlv.Type { return tlv.Count }

type currentTimestampKind struct{ tlv.Timestamp }

func (currentTimestampKind) TLVType() tlv.Type { return tlv.CurrentTimestamp }

type defaultCongestionThresholdKind struct{}

func (defaultCongestionThresholdKind) TLVType() tlv.Type { return tlv.DefaultCongestionThreshold }

type expirationPeriodKind struct{ tlv.Milliseconds }

func (expirationPeriodKind) TLVType() tlv.Type { return tlv.ExpirationPeriod }

type faceIDKind struct{}

func (faceIDKind) TLVType() tlv.Type { return tlv.FaceID }

type flagsKind struct{}

func (flagsKind) TLVType() tlv.Type { return tlv.Flags }

type localURIKind struct{}

func (localURIKind) TLVType() tlv.Type { return tlv.LocalURI }

type maskKind struct{}

func (maskKind) TLVType() tlv.Type { return tlv.Mask }

type mtuKind struct{}

func (mtuKind) TLVType() tlv.Type { return tlv.MTU }

type nCsEntriesKind struct{}

func (nCsEntriesKind) TLVType() tlv.Type { return tlv.NCsEntries }

type nFibEntriesKind struct{}

func (nFibEntriesKind) TLVType() tlv.Type { return tlv.NFibEntries }

type nHitsKind struct{}

func (nHitsKind) TLVType() tlv.Type { return tlv.NHits }

type nInBytesKind struct{}

func (nInBytesKind) TLVType() tlv.Type { return tlv.NInBytes }

type nInDataKind struct{}

func (nInDataKind) TLVType() tlv.Type { return tlv.NInData }

type nInInterestsKind struct{}

func (nInInterestsKind) TLVType() tlv.Type { return tlv.NInInterests }

type nInNacksKind struct{}

func (nInNacksKind) TLVType() tlv.Type { return tlv.NInNacks }

type nMeasurementEntriesKind struct{}

func (nMeasurementEntriesKind) TLVType() tlv.Type { return tlv.NMeasurementEntries }

type nMissesKind struct{}

func (nMissesKind) TLVType() tlv.Type { return tlv.NMisses }

type nNameTreeEntriesKind struct{}

func (nNameTreeEntriesKind) TLVType() tlv.Type { return tlv.NNameTreeEntries }

type nOutBytesKind struct{}

func (nOutBytesKind) TLVType() tlv.Type { return tlv.NOutBytes }

type nOutDataKind struct{}

func (nOutDataKind) TLVType() tlv.Type { return tlv.NOutData }

type nOutInterestsKind struct{}

func (nOutInterestsKind) TLVType() tlv.Type { return tlv.NOutInterests }

type nOutNacksKind struct{}

func (nOutNacksKind) TLVType() tlv.Type { return tlv.NOutNacks }

type nPitEntriesKind struct{}

func (nPitEntriesKind) TLVType() tlv.Type { return tlv.NPitEntries }

type nSatisfiedInterestsKind struct{}

func (nSatisfiedInterestsKind) TLVType() tlv.Type { return tlv.NSatisfiedInterests }

type nUnsatisfiedInterestsKind struct{}

func (nUnsatisfiedInterestsKind) TLVType() tlv.Type { return tlv.NUnsatisfiedInterests }

type nfdVersionKind struct{}

func (nfdVersionKind) TLVType() tlv.Type { return tlv.NfdVersion }

type originKind struct{}

func (originKind) TLVType() tlv.Type { return tlv.Origin }

type startTimestampKind struct{ tlv.Timestamp }

func (startTimestampKind) TLVType() tlv.Type { return tlv.StartTimestamp }

type statusCodeKind struct{}

func (statusCodeKind) TLVType() tlv.Type { return tlv.StatusCode }

type statusTextKind struct{}

func (statusTextKind) TLVType() tlv.Type { return tlv.StatusText }

type uriKind struct{}

func (uriKind) TLVType() tlv.Type { return tlv.URI }

type uriSchemeKind struct{}

func (uriSchemeKind) TLVType() tlv.Type { return tlv.URIScheme }
