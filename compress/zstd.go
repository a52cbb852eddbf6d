package compress

// ZstdCompressor provides the best compression ratio of the built-in codecs,
// for cold snapshots where decompression is infrequent.
//
// The implementation is selected at build time: cgo builds use gozstd (libzstd
// bindings), pure-Go builds use klauspost/compress/zstd. The two produce
// interchangeable Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
