/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"bytes"
	"time"

	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/tlv"
)

const validityPeriodLayout = "20060102T150405"

// PrefixAnnouncement is a specially-formatted Data packet used by applications to announce prefixes they produce.
type PrefixAnnouncement struct {
	data             *ndn.Data
	expirationPeriod time.Duration
	notBefore        time.Time
	notAfter         time.Time
}

// NewPrefixAnnouncement creates a prefix announcement from a data packet.
func NewPrefixAnnouncement(data *ndn.Data) (*PrefixAnnouncement, error) {
	name := data.Name()
	if name.Size() < 3 {
		return nil, tlv.Invalidf(tlv.PrefixAnnouncement, "name %s is too short", name)
	}
	keyword, ok := name.At(-3).(*ndn.KeywordNameComponent)
	if !ok || !bytes.Equal(keyword.Value(), []byte("PA")) {
		return nil, tlv.Invalidf(tlv.PrefixAnnouncement, "name %s lacks the PA keyword", name)
	}
	if _, ok := name.At(-2).(*ndn.VersionNameComponent); !ok {
		return nil, tlv.Invalidf(tlv.PrefixAnnouncement, "name %s lacks a version", name)
	}
	if segment, ok := name.At(-1).(*ndn.SegmentNameComponent); !ok || segment.Number() != 0 {
		return nil, tlv.Invalidf(tlv.PrefixAnnouncement, "name %s does not end with segment 0", name)
	}
	if data.MetaInfo() == nil {
		return nil, tlv.Invalidf(tlv.PrefixAnnouncement, "missing MetaInfo")
	}
	if contentType, ok := data.MetaInfo().ContentType(); !ok || contentType != ndn.ContentTypePrefixAnnouncement {
		return nil, tlv.Invalidf(tlv.PrefixAnnouncement, "ContentType is not PrefixAnnouncement")
	}

	content, _ := data.Content()
	p := &PrefixAnnouncement{data: data}
	var expirationPeriod *time.Duration
	seen, err := decodeFields(tlv.Content, content, fields{
		tlv.ExpirationPeriod: durationField(&expirationPeriod),
		tlv.ValidityPeriod: func(elem *tlv.Generic) (err error) {
			p.notBefore, p.notAfter, err = decodeValidityPeriod(elem)
			return
		},
	})
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlv.Content, seen, tlv.ExpirationPeriod); err != nil {
		return nil, err
	}
	p.expirationPeriod = *expirationPeriod
	return p, nil
}

// MakePrefixAnnouncement creates an unsigned prefix announcement for the specified prefix.
func MakePrefixAnnouncement(prefix *ndn.Name, version uint64, expirationPeriod time.Duration) *PrefixAnnouncement {
	var e encoder
	e.add(optDuration[expirationPeriodKind](&expirationPeriod))
	name := prefix.Append(
		ndn.NewKeywordNameComponent([]byte("PA")),
		ndn.NewVersionNameComponent(version),
		ndn.NewSegmentNameComponent(0))
	data := ndn.NewData(name, e.appendTo(nil)).
		WithMetaInfo(ndn.NewMetaInfo().WithContentType(ndn.ContentTypePrefixAnnouncement))
	return &PrefixAnnouncement{data: data, expirationPeriod: expirationPeriod}
}

func decodeValidityPeriod(elem *tlv.Generic) (notBefore time.Time, notAfter time.Time, err error) {
	var before, after string
	seen, err := decodeFields(elem.Type(), elem.Value(), fields{
		tlv.NotBefore: textField(&before),
		tlv.NotAfter:  textField(&after),
	})
	if err != nil {
		return
	}
	if err = requireFields(elem.Type(), seen, tlv.NotBefore, tlv.NotAfter); err != nil {
		return
	}
	if notBefore, err = time.Parse(validityPeriodLayout, before); err != nil {
		err = tlv.InvalidElement(elem.Type(), elem, err.Error())
		return
	}
	if notAfter, err = time.Parse(validityPeriodLayout, after); err != nil {
		err = tlv.InvalidElement(elem.Type(), elem, err.Error())
	}
	return
}

// Data returns the underlying Data packet.
func (p *PrefixAnnouncement) Data() *ndn.Data {
	return p.data
}

// Prefix returns the prefix announced by the prefix announcement.
func (p *PrefixAnnouncement) Prefix() *ndn.Name {
	return p.data.Name().Prefix(-3)
}

// ExpirationPeriod returns the expiration period contained in the prefix announcement.
func (p *PrefixAnnouncement) ExpirationPeriod() time.Duration {
	return p.expirationPeriod
}

// ValidityPeriod returns the validity period contained in the prefix announcement. If unset, returns zero times for both values.
func (p *PrefixAnnouncement) ValidityPeriod() (time.Time, time.Time) {
	return p.notBefore, p.notAfter
}
