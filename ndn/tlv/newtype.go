/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/hex"
	"strconv"
	"time"
	"unicode/utf8"
)

// Kind binds a wrapper type to its TLV-TYPE. Kinds are empty structs.
type Kind interface {
	TLVType() Type
}

// NumberFormatter is implemented by kinds whose numbers display as something other than decimal.
type NumberFormatter interface {
	FormatNumber(v uint64) string
}

func kindType[K Kind]() Type {
	var k K
	return k.TLVType()
}

/////////
// Number
/////////

// Number is an element holding a NonNegativeNumber.
type Number[K Kind] uint64

func (n Number[K]) Type() Type {
	return kindType[K]()
}

func (n Number[K]) Length() int {
	return NonNegativeNumber(n).Len()
}

func (n Number[K]) AppendValue(dst []byte) []byte {
	return NonNegativeNumber(n).Append(dst)
}

// Uint64 returns the numeric value.
func (n Number[K]) Uint64() uint64 {
	return uint64(n)
}

// Duration interprets the number as milliseconds.
func (n Number[K]) Duration() time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Time interprets the number as milliseconds since the Unix epoch.
func (n Number[K]) Time() time.Time {
	return time.UnixMilli(int64(n))
}

func (n Number[K]) String() string {
	var k K
	if f, ok := any(k).(NumberFormatter); ok {
		return f.FormatNumber(uint64(n))
	}
	return strconv.FormatUint(uint64(n), 10)
}

// DecodeNumber is the DecodeFunc of Number[K].
func DecodeNumber[K Kind](tlvType Type, value []byte) (Number[K], error) {
	n, err := DecodeNonNegativeNumber(value)
	if err != nil {
		return 0, withParent(err, tlvType)
	}
	return Number[K](n), nil
}

// Milliseconds displays numbers as durations.
type Milliseconds struct{}

func (Milliseconds) FormatNumber(v uint64) string {
	return strconv.FormatUint(v, 10) + "ms"
}

// Timestamp displays numbers as UTC calendar times.
type Timestamp struct{}

func (Timestamp) FormatNumber(v uint64) string {
	return time.UnixMilli(int64(v)).UTC().Format(time.RFC3339Nano)
}

/////////
// String
/////////

// String is an element holding UTF-8 text.
type String[K Kind] string

func (s String[K]) Type() Type {
	return kindType[K]()
}

func (s String[K]) Length() int {
	return len(s)
}

func (s String[K]) AppendValue(dst []byte) []byte {
	return append(dst, s...)
}

func (s String[K]) String() string {
	return string(s)
}

// DecodeString is the DecodeFunc of String[K].
func DecodeString[K Kind](tlvType Type, value []byte) (String[K], error) {
	if !utf8.Valid(value) {
		return "", Invalidf(tlvType, "invalid UTF-8 text")
	}
	return String[K](value), nil
}

////////
// Bytes
////////

// Bytes is an element holding opaque octets.
type Bytes[K Kind] []byte

func (b Bytes[K]) Type() Type {
	return kindType[K]()
}

func (b Bytes[K]) Length() int {
	return len(b)
}

func (b Bytes[K]) AppendValue(dst []byte) []byte {
	return append(dst, b...)
}

func (b Bytes[K]) String() string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeBytesValue is the DecodeFunc of Bytes[K]. The result shares storage with value.
func DecodeBytesValue[K Kind](_ Type, value []byte) (Bytes[K], error) {
	return Bytes[K](value), nil
}

///////
// Flag
///////

// Flag is an element whose presence is its meaning.
type Flag[K Kind] struct{}

func (Flag[K]) Type() Type {
	return kindType[K]()
}

func (Flag[K]) Length() int {
	return 0
}

func (Flag[K]) AppendValue(dst []byte) []byte {
	return dst
}

// DecodeFlag is the DecodeFunc of Flag[K]. Any value is ignored.
func DecodeFlag[K Kind](Type, []byte) (Flag[K], error) {
	return Flag[K]{}, nil
}
