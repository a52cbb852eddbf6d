// Package snapshot implements a compressed, checksummed container for decoded
// metadata payloads.
//
// Rewriting a large image takes multiple passes; re-decoding heaps, parameter
// tables, and key material on every pass is wasteful. A snapshot freezes one
// decoded payload into a self-describing blob: a fixed 16-byte header followed
// by the (optionally compressed) payload.
package snapshot

import (
	"github.com/arloliu/cilmeta/endian"
	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/format"
)

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 16

	// Bit masks for the packed Options field.
	ReservedBitsMask = 0x000F // bits 0-3 reserved, must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15 magic number

	// MagicSnapshotV1Opt is the version 1 magic number for the snapshot format.
	MagicSnapshotV1Opt = 0xEC10
)

// wire is the fixed byte order of the snapshot layout.
var wire = endian.GetLittleEndianEngine()

// Header is the fixed-size header at the start of a snapshot blob.
type Header struct {
	// Options is a packed field: bits 4-15 carry the magic number, bits 0-3
	// are reserved. byte offset 0-1
	Options uint16

	// CompressionType is the codec applied to the payload. byte offset 2
	// Byte offset 3 is reserved and written as zero.
	CompressionType uint8

	// RawSize is the payload length before compression. byte offset 4-7
	RawSize uint32

	// Checksum is the xxHash64 of the raw (uncompressed) payload. byte offset 8-15
	Checksum uint64
}

// NewHeader creates a Header for a payload of the given raw size.
func NewHeader(compressionType format.CompressionType, rawSize uint32, checksum uint64) Header {
	return Header{
		Options:         MagicSnapshotV1Opt,
		CompressionType: uint8(compressionType),
		RawSize:         rawSize,
		Checksum:        checksum,
	}
}

// Parse parses the header from a byte slice.
//
// Returns ErrInvalidHeaderSize for short input, ErrInvalidMagicNumber or
// ErrInvalidCompressionType for a malformed header.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = wire.Uint16(data[0:2])
	h.CompressionType = data[2]
	h.RawSize = wire.Uint32(data[4:8])
	h.Checksum = wire.Uint64(data[8:16])

	return h.Validate()
}

// Validate checks the magic bits and the compression type.
func (h Header) Validate() error {
	if h.Options&MagicNumberMask != MagicSnapshotV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	switch format.CompressionType(h.CompressionType) {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return errs.ErrInvalidCompressionType
	}
}

// Compression returns the payload codec recorded in the header.
func (h Header) Compression() format.CompressionType {
	return format.CompressionType(h.CompressionType)
}

// Bytes serializes the header into a HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	wire.PutUint16(b[0:2], h.Options)
	b[2] = h.CompressionType
	b[3] = 0
	wire.PutUint32(b[4:8], h.RawSize)
	wire.PutUint64(b[8:16], h.Checksum)

	return b
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
