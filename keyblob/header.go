// Package keyblob implements a bit-exact codec for CryptoAPI-style key blobs,
// the serialized RSA key structures used to strong-name sign assemblies.
//
// A key blob starts with a common 6-byte header (structure type, version,
// algorithm id) followed by algorithm-specific fields. This package covers the
// public key variant; private key variants share only the header.
package keyblob

import (
	"github.com/arloliu/cilmeta/endian"
	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/format"
)

// wire is the byte order mandated by the CryptoAPI blob layout.
var wire = endian.GetLittleEndianEngine()

// BlobHeader is the common header shared by all key blob variants.
type BlobHeader struct {
	// Type is the structure discriminator. byte offset 0
	Type format.BlobType
	// Version is the blob format version, always 2. byte offset 1
	Version uint8
	// Algorithm is the CryptoAPI algorithm identifier. byte offset 2-5
	Algorithm format.AlgorithmID
}

// Parse parses the header from a byte slice.
//
// Returns ErrTruncatedBlob if data holds fewer than HeaderSize bytes.
func (h *BlobHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrTruncatedBlob
	}

	h.Type = format.BlobType(data[0])
	h.Version = data[1]
	h.Algorithm = format.AlgorithmID(wire.Uint32(data[2:6]))

	return nil
}

// Expect validates the header against the triple the caller requires.
//
// A wrong structure type or version fails with ErrInvalidBlobHeader; a wrong
// algorithm id fails with ErrUnsupportedAlgorithm so callers can distinguish a
// malformed blob from a well-formed blob of an algorithm this codec does not
// handle.
func (h BlobHeader) Expect(blobType format.BlobType, version uint8, alg format.AlgorithmID) error {
	if h.Type != blobType || h.Version != version {
		return errs.ErrInvalidBlobHeader
	}
	if h.Algorithm != alg {
		return errs.ErrUnsupportedAlgorithm
	}

	return nil
}

// Bytes serializes the header into a HeaderSize-byte slice.
func (h BlobHeader) Bytes() []byte {
	var b [HeaderSize]byte
	b[0] = uint8(h.Type)
	b[1] = h.Version
	wire.PutUint32(b[2:6], uint32(h.Algorithm))

	return b[:]
}

// WriteToSlice writes the header into data at offset and returns the next
// write position.
func (h BlobHeader) WriteToSlice(data []byte, offset int) int {
	data[offset] = uint8(h.Type)
	data[offset+1] = h.Version
	wire.PutUint32(data[offset+2:offset+6], uint32(h.Algorithm))

	return offset + HeaderSize
}

// ParseBlobHeader parses a BlobHeader from a byte slice.
func ParseBlobHeader(data []byte) (BlobHeader, error) {
	h := BlobHeader{}
	if err := h.Parse(data); err != nil {
		return BlobHeader{}, err
	}

	return h, nil
}
