/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"math"
	"strconv"
)

// NonNegativeNumber is the payload of a numeric TLV element. It is encoded
// big-endian in the narrowest of 1, 2, 4 or 8 octets.
type NonNegativeNumber uint64

// Len returns the length of the encoding.
func (n NonNegativeNumber) Len() int {
	switch {
	case n <= math.MaxUint8:
		return 1
	case n <= math.MaxUint16:
		return 2
	case n <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// Append appends the encoding of n to dst.
func (n NonNegativeNumber) Append(dst []byte) []byte {
	switch n.Len() {
	case 1:
		return append(dst, byte(n))
	case 2:
		return binary.BigEndian.AppendUint16(dst, uint16(n))
	case 4:
		return binary.BigEndian.AppendUint32(dst, uint32(n))
	default:
		return binary.BigEndian.AppendUint64(dst, uint64(n))
	}
}

// Bytes returns the encoding of n.
func (n NonNegativeNumber) Bytes() []byte {
	return n.Append(make([]byte, 0, n.Len()))
}

func (n NonNegativeNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// DecodeNonNegativeNumber decodes a NonNegativeNumber occupying all of buf.
// buf must be 1, 2, 4 or 8 octets long and no longer than the value requires.
func DecodeNonNegativeNumber(buf []byte) (NonNegativeNumber, error) {
	var n NonNegativeNumber
	switch len(buf) {
	case 1:
		n = NonNegativeNumber(buf[0])
	case 2:
		n = NonNegativeNumber(binary.BigEndian.Uint16(buf))
	case 4:
		n = NonNegativeNumber(binary.BigEndian.Uint32(buf))
	case 8:
		n = NonNegativeNumber(binary.BigEndian.Uint64(buf))
	default:
		return 0, Invalidf(Unassigned, "NonNegativeInteger cannot be %d octets", len(buf))
	}
	if n.Len() != len(buf) {
		return 0, Invalidf(Unassigned, "non-canonical NonNegativeInteger %d in %d octets", n, len(buf))
	}
	return n, nil
}
