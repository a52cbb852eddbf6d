// Package compress provides the compression codecs used by snapshot
// containers.
//
// Decoded metadata payloads (heaps, parameter tables, key material) can be
// large for big images; snapshots cache them between rewrite passes and pick a
// codec per payload:
//   - None: no compression, for payloads already near-incompressible
//   - Zstd: best ratio, for cold snapshots
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, for hot snapshots reopened often
package compress

import (
	"fmt"

	"github.com/arloliu/cilmeta/format"
)

// Compressor compresses a complete snapshot payload.
//
// The returned slice is newly allocated and owned by the caller except where
// an implementation documents pass-through behavior; the input is never
// modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the same
// algorithm. Implementations validate the compressed framing and return an
// error for corrupted or mismatched input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless values
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
