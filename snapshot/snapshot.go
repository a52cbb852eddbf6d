package snapshot

import (
	"github.com/arloliu/cilmeta/compress"
	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/format"
	"github.com/arloliu/cilmeta/internal/hash"
	"github.com/arloliu/cilmeta/internal/pool"
)

// Pack freezes a payload into a snapshot blob using the given compression.
//
// The checksum is computed over the raw payload before compression, so Unpack
// detects corruption regardless of which codec framed the payload.
func Pack(payload []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, errs.ErrInvalidCompressionType
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	header := NewHeader(compressionType, uint32(len(payload)), hash.Sum(payload)) //nolint: gosec

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.MustWrite(header.Bytes())
	buf.MustWrite(compressed)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Unpack restores the raw payload from a snapshot blob.
//
// Returns header errors for malformed input, ErrPayloadSizeMismatch when the
// decompressed payload disagrees with the recorded raw size, and
// ErrChecksumMismatch when the payload bytes fail verification.
func Unpack(data []byte) ([]byte, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression())
	if err != nil {
		return nil, errs.ErrInvalidCompressionType
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, err
	}

	if uint32(len(payload)) != header.RawSize { //nolint: gosec
		return nil, errs.ErrPayloadSizeMismatch
	}
	if hash.Sum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}
