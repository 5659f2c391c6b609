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

// StrategyChoice contains status information about a Strategy Choice table entry.
type StrategyChoice struct {
	Name     *ndn.Name
	Strategy *ndn.Name
}

// MakeStrategyChoice creates a StrategyChoice entry.
func MakeStrategyChoice(name *ndn.Name, strategy *ndn.Name) *StrategyChoice {
	s := new(StrategyChoice)
	s.Name = name
	s.Strategy = strategy
	return s
}

// DecodeStrategyChoice decodes the value of a StrategyChoice element.
func DecodeStrategyChoice(tlvType tlv.Type, value []byte) (*StrategyChoice, error) {
	s := new(StrategyChoice)
	seen, err := decodeFields(tlvType, value, fields{
		tlv.Name:     nameField(&s.Name),
		tlv.Strategy: strategyField(&s.Strategy),
	})
	if err != nil {
		return nil, err
	}
	if err := requireFields(tlvType, seen, tlv.Name, tlv.Strategy); err != nil {
		return nil, err
	}
	return s, nil
}

// Type returns the TLV type of a StrategyChoice.
func (s *StrategyChoice) Type() tlv.Type {
	return tlv.StrategyChoice
}

// Length returns the length of the encoded value.
func (s *StrategyChoice) Length() int {
	return tlv.SizeAll(s.Name, wrapped{tlv.Strategy, s.Strategy})
}

// AppendValue appends the encoded value to dst.
func (s *StrategyChoice) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, s.Name)
	return tlv.Append(dst, wrapped{tlv.Strategy, s.Strategy})
}
