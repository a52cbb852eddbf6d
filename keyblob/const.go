package keyblob

// Layout constants for CryptoAPI key blobs. All multi-byte fields are
// little-endian on the wire.
const (
	// HeaderSize is the size of the common blob header in bytes:
	// structure type (1) + version (1) + algorithm id (4).
	HeaderSize = 6

	// PublicKeyFixedSize is the size of a public key blob before the modulus:
	// header (6) + magic (4) + bit length (4) + public exponent (4).
	PublicKeyFixedSize = HeaderSize + 12

	// BlobVersion is the CryptoAPI blob format version shared by all variants.
	BlobVersion = 2

	// MagicRSA1 is the magic value of a public-only RSA key ("RSA1" as a
	// little-endian uint32). Public key blobs carry this magic on both read
	// and write.
	MagicRSA1 = 0x31415352

	// MagicRSA2 is the magic value of an RSA key pair ("RSA2"). It belongs to
	// private key blob variants and is never valid in a public key blob.
	MagicRSA2 = 0x32415352

	// TokenSize is the size of a strong-name public key token in bytes.
	TokenSize = 8
)
