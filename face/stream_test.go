/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/named-data/ndntlv/face"
	"github.com/named-data/ndntlv/ndn"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStream(t *testing.T) ([]byte, []byte, []byte) {
	interest, err := ndn.NewInterestFromString("/ndn/edu/ucla/ping")
	require.NoError(t, err)
	interestWire := tlv.Encode(interest)
	dataWire := tlv.Encode(ndn.NewData(ndn.MustNameFromString("/ndn/edu/ucla/ping"), make([]byte, 1000)))
	return interestWire, dataWire, append(append([]byte{}, interestWire...), dataWire...)
}

func TestStreamScannerOneByteReads(t *testing.T) {
	interestWire, dataWire, stream := makeStream(t)

	scanner := face.NewStreamScanner(iotest.OneByteReader(bytes.NewReader(stream)))
	defer scanner.Close()
	assert.Equal(t, face.DefaultMaxPacketSize, scanner.MaxPacketSize())

	elem, err := scanner.Next()
	require.NoError(t, err)
	assert.Equal(t, tlv.Interest, elem.Type())
	assert.Equal(t, interestWire, elem.Wire())

	elem, err = scanner.Next()
	require.NoError(t, err)
	assert.Equal(t, tlv.Data, elem.Type())
	assert.Equal(t, dataWire, elem.Wire())

	_, err = scanner.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, uint64(2), scanner.Frames())
}

func TestStreamScannerManyFrames(t *testing.T) {
	_, dataWire, _ := makeStream(t)
	var stream []byte
	for i := 0; i < 50; i++ {
		stream = append(stream, dataWire...)
	}

	var frames []*tlv.Generic
	err := face.ReadStream(iotest.HalfReader(bytes.NewReader(stream)), func(elem *tlv.Generic) {
		frames = append(frames, elem)
	})
	require.NoError(t, err)
	require.Len(t, frames, 50)
	for _, frame := range frames {
		d, err := ndn.DecodeData(frame.Type(), frame.Value())
		require.NoError(t, err)
		assert.Equal(t, "/ndn/edu/ucla/ping", d.Name().String())
	}
}

func TestStreamScannerPartialFrame(t *testing.T) {
	interestWire, _, _ := makeStream(t)
	stream := append(append([]byte{}, interestWire...), interestWire[:5]...)

	scanner := face.NewStreamScanner(bytes.NewReader(stream))
	defer scanner.Close()
	_, err := scanner.Next()
	require.NoError(t, err)
	_, err = scanner.Next()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestStreamScannerOversize(t *testing.T) {
	// Data announcing 10000 octets
	stream := []byte{0x06, 0xFD, 0x27, 0x10, 0x07, 0x00}
	scanner := face.NewStreamScanner(bytes.NewReader(stream))
	defer scanner.Close()
	_, err := scanner.Next()
	assert.True(t, errors.Is(err, face.ErrFrameTooLarge))

	// A frame of exactly the maximum size is accepted
	value := make([]byte, face.DefaultMaxPacketSize-4)
	stream = append([]byte{0x15, 0xFD, byte(len(value) >> 8), byte(len(value))}, value...)
	scanner = face.NewStreamScanner(iotest.HalfReader(bytes.NewReader(stream)))
	defer scanner.Close()
	elem, err := scanner.Next()
	require.NoError(t, err)
	assert.Equal(t, len(value), elem.Length())
}

func TestStreamScannerReadError(t *testing.T) {
	interestWire, _, _ := makeStream(t)
	failure := errors.New("connection reset")

	scanner := face.NewStreamScanner(iotest.TimeoutReader(bytes.NewReader(interestWire[:3])))
	defer scanner.Close()
	_, err := scanner.Next()
	assert.True(t, errors.Is(err, iotest.ErrTimeout))

	err = face.ReadStream(io.MultiReader(bytes.NewReader(interestWire), iotest.ErrReader(failure)), func(*tlv.Generic) {})
	assert.True(t, errors.Is(err, failure))
}

func TestStreamScannerClosed(t *testing.T) {
	scanner := face.NewStreamScanner(bytes.NewReader(nil))
	require.NoError(t, scanner.Close())
	require.NoError(t, scanner.Close())
	_, err := scanner.Next()
	assert.Error(t, err)
}
