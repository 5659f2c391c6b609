/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"strconv"
)

// VarNumber is a TLV-TYPE or TLV-LENGTH number. It is always encoded in its
// shortest form.
type VarNumber uint64

// Len returns the length of the encoding.
func (v VarNumber) Len() int {
	switch {
	case v <= 0xFC:
		return 1
	case v <= 0xFFFF:
		return 3
	case v <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// Append appends the encoding of v to dst.
func (v VarNumber) Append(dst []byte) []byte {
	switch {
	case v <= 0xFC:
		return append(dst, byte(v))
	case v <= 0xFFFF:
		return binary.BigEndian.AppendUint16(append(dst, 0xFD), uint16(v))
	case v <= 0xFFFFFFFF:
		return binary.BigEndian.AppendUint32(append(dst, 0xFE), uint32(v))
	default:
		return binary.BigEndian.AppendUint64(append(dst, 0xFF), uint64(v))
	}
}

// Bytes returns the encoding of v.
func (v VarNumber) Bytes() []byte {
	return v.Append(make([]byte, 0, v.Len()))
}

// Uint64 returns the numeric value.
func (v VarNumber) Uint64() uint64 {
	return uint64(v)
}

func (v VarNumber) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// DecodeVarNumber decodes a VarNumber from the front of buf and returns it with the
// number of bytes it occupied. It returns ErrIncomplete if buf ends inside the
// encoding, and an ErrInvalid error if the encoding is longer than necessary.
func DecodeVarNumber(buf []byte) (VarNumber, int, error) {
	if len(buf) < 1 {
		return 0, 0, ErrIncomplete
	}

	var v uint64
	var n int
	switch buf[0] {
	case 0xFD:
		if len(buf) < 3 {
			return 0, 0, ErrIncomplete
		}
		v, n = uint64(binary.BigEndian.Uint16(buf[1:3])), 3
	case 0xFE:
		if len(buf) < 5 {
			return 0, 0, ErrIncomplete
		}
		v, n = uint64(binary.BigEndian.Uint32(buf[1:5])), 5
	case 0xFF:
		if len(buf) < 9 {
			return 0, 0, ErrIncomplete
		}
		v, n = binary.BigEndian.Uint64(buf[1:9]), 9
	default:
		return VarNumber(buf[0]), 1, nil
	}

	if VarNumber(v).Len() != n {
		return 0, 0, Invalidf(Unassigned, "non-canonical VAR-NUMBER %d in %d octets", v, n)
	}
	return VarNumber(v), n, nil
}
