// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package combines Go's encoding/binary ByteOrder and AppendByteOrder
// interfaces into a unified EndianEngine interface so codecs can take a single
// value for both fixed-offset writes and append-style writes.
//
// The CryptoAPI key blob layout and the snapshot container are both defined as
// little-endian, so most callers use GetLittleEndianEngine():
//
//	engine := endian.GetLittleEndianEngine()
//	exponent := engine.Uint32(data[14:18])
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library. The returned engines are immutable and stateless, and
// safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
