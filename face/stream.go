/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package face contains the helpers that sit between the packet codec and the transports of a face.
package face

import (
	"io"
	"sync"

	"github.com/named-data/ndntlv/core"
	"github.com/named-data/ndntlv/ndn/tlv"
	"github.com/named-data/ndntlv/utils/comparison"
	"github.com/pkg/errors"
	"github.com/Link512/stealthpool"
)

// DefaultMaxPacketSize is the largest frame accepted from a stream unless configured otherwise.
const DefaultMaxPacketSize = 8800

const defaultPoolBlocks = 16

// ErrFrameTooLarge is returned when a stream announces a frame longer than the maximum packet size.
var ErrFrameTooLarge = errors.New("frame exceeds maximum packet size")

var (
	poolOnce   sync.Once
	bufferPool *stealthpool.Pool
	blockSize  int
)

// receiveBufferPool returns the pool shared by all stream scanners. Blocks are sized for the
// configured maximum packet size when the pool is first used.
func receiveBufferPool() (*stealthpool.Pool, int) {
	poolOnce.Do(func() {
		blockSize = comparison.Max(core.GetConfigIntDefault("tlv.max_packet_size", DefaultMaxPacketSize), 64)
		blocks := comparison.Max(core.GetConfigIntDefault("tlv.pool_blocks", defaultPoolBlocks), 1)
		pool, err := stealthpool.New(blocks, stealthpool.WithBlockSize(blockSize))
		if err != nil {
			core.LogError("StreamScanner", "Failed to allocate stealthpool: ", err)
			return
		}
		bufferPool = pool
	})
	return bufferPool, blockSize
}

// StreamScanner splits the byte stream of a stream-oriented transport into TLV elements.
type StreamScanner struct {
	reader     io.Reader
	buf        []byte
	block      []byte
	start      int
	end        int
	maxPacket  int
	totalFrame uint64
}

// NewStreamScanner creates a scanner reading from reader. The receive buffer is taken from a
// shared pool and must be given back with Close.
func NewStreamScanner(reader io.Reader) *StreamScanner {
	s := new(StreamScanner)
	s.reader = reader

	pool, size := receiveBufferPool()
	s.maxPacket = size
	if pool != nil {
		if block, err := pool.Get(); err == nil {
			s.block = block
			s.buf = block[:size]
		}
	}
	if s.buf == nil {
		core.LogDebug(s, "Receive buffer pool exhausted, allocating")
		s.buf = make([]byte, size)
	}
	return s
}

func (s *StreamScanner) String() string {
	return "StreamScanner"
}

// MaxPacketSize returns the largest frame the scanner accepts.
func (s *StreamScanner) MaxPacketSize() int {
	return s.maxPacket
}

// Next returns the next element of the stream. The element does not share storage with the
// receive buffer. Next returns io.EOF once the stream ends on a frame boundary; a stream
// ending inside a frame yields io.ErrUnexpectedEOF.
func (s *StreamScanner) Next() (*tlv.Generic, error) {
	for {
		if s.buf == nil {
			return nil, errors.New("stream scanner is closed")
		}

		elem, size, err := tlv.DecodeGeneric(s.buf[s.start:s.end])
		if err != nil {
			core.LogWarn(s, "Received malformed TLV header: ", err)
			return nil, errors.Wrap(err, "unable to frame stream")
		}
		if elem != nil {
			s.start += size
			s.totalFrame++
			return tlv.NewGeneric(elem.Type(), append([]byte(nil), elem.Value()...)), nil
		}

		if frame, ok := s.announcedSize(); ok && frame > uint64(s.maxPacket) {
			core.LogWarn(s, "Received frame of ", frame, " octets, exceeding maximum of ", s.maxPacket)
			return nil, errors.Wrapf(ErrFrameTooLarge, "announced %d octets", frame)
		}

		// Make room for the rest of the frame
		if s.end == len(s.buf) {
			copy(s.buf, s.buf[s.start:s.end])
			s.end -= s.start
			s.start = 0
		}

		n, err := s.reader.Read(s.buf[s.end:])
		s.end += n
		if err == io.EOF {
			if n > 0 {
				continue
			}
			if s.start == s.end {
				return nil, io.EOF
			}
			return nil, errors.Wrapf(io.ErrUnexpectedEOF, "stream ended with %d octets of partial frame", s.end-s.start)
		} else if err != nil {
			return nil, errors.Wrap(err, "unable to read stream")
		}
	}
}

// announcedSize returns the total size of the frame at the front of the buffer, if its header is complete.
func (s *StreamScanner) announcedSize() (uint64, bool) {
	buf := s.buf[s.start:s.end]
	_, typeLen, err := tlv.DecodeVarNumber(buf)
	if err != nil {
		return 0, false
	}
	length, lengthLen, err := tlv.DecodeVarNumber(buf[typeLen:])
	if err != nil {
		return 0, false
	}
	if length.Uint64() > uint64(s.maxPacket) {
		return length.Uint64(), true
	}
	return uint64(typeLen+lengthLen) + length.Uint64(), true
}

// Frames returns the number of elements returned so far.
func (s *StreamScanner) Frames() uint64 {
	return s.totalFrame
}

// Close gives the receive buffer back to the pool.
func (s *StreamScanner) Close() error {
	if s.buf == nil {
		return nil
	}
	block := s.block
	s.buf = nil
	s.block = nil
	if block == nil {
		return nil
	}
	pool, _ := receiveBufferPool()
	return pool.Return(block)
}

// ReadStream passes every element read from reader to frameCb until the stream ends. A stream
// ending on a frame boundary is not an error.
func ReadStream(reader io.Reader, frameCb func(*tlv.Generic)) error {
	scanner := NewStreamScanner(reader)
	defer scanner.Close()

	for {
		elem, err := scanner.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		frameCb(elem)
	}
}
