package keyblob

import (
	"crypto/sha1"
	"io"
	"os"

	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/format"
)

// PublicKey is an RSA public key blob.
//
// The bit length of the key is not stored; it is always derived from the
// modulus, so the two can never diverge after a modulus mutation.
type PublicKey struct {
	// Algorithm is the CryptoAPI algorithm identifier, AlgRSASign for keys
	// used to sign assemblies.
	Algorithm format.AlgorithmID

	// Exponent is the RSA public exponent, typically 65537.
	Exponent uint32

	// Modulus is the RSA modulus, least-significant byte first as mandated by
	// the blob layout. Never empty for a key produced by this package.
	Modulus []byte
}

// NewPublicKey creates an RSA-signing public key from an exponent and modulus.
//
// Returns ErrEmptyModulus if modulus is empty; a zero-bit key has no valid
// blob encoding.
func NewPublicKey(exponent uint32, modulus []byte) (*PublicKey, error) {
	if len(modulus) == 0 {
		return nil, errs.ErrEmptyModulus
	}

	return &PublicKey{
		Algorithm: format.AlgRSASign,
		Exponent:  exponent,
		Modulus:   modulus,
	}, nil
}

// ParsePublicKey parses a public key blob from a byte slice.
//
// The header must carry (BlobTypePublicKey, version 2, AlgRSASign) and the
// magic must be RSA1. Trailing bytes after the modulus are ignored so a blob
// embedded in a larger buffer can be parsed in place.
//
// Returns:
//   - ErrTruncatedBlob: data ends before the modulus is fully available
//   - ErrInvalidBlobHeader, ErrUnsupportedAlgorithm: header mismatch
//   - ErrInvalidKeyMagic: magic is not RSA1
//   - ErrInvalidBitLength: bit length is zero or not a multiple of 8
func ParsePublicKey(data []byte) (*PublicKey, error) {
	if len(data) < PublicKeyFixedSize {
		return nil, errs.ErrTruncatedBlob
	}

	header, err := ParseBlobHeader(data)
	if err != nil {
		return nil, err
	}
	if err := header.Expect(format.BlobTypePublicKey, BlobVersion, format.AlgRSASign); err != nil {
		return nil, err
	}

	if wire.Uint32(data[6:10]) != MagicRSA1 {
		return nil, errs.ErrInvalidKeyMagic
	}

	bitLength := wire.Uint32(data[10:14])
	if bitLength == 0 || bitLength%8 != 0 {
		return nil, errs.ErrInvalidBitLength
	}

	modulusLen := int(bitLength / 8)
	if len(data) < PublicKeyFixedSize+modulusLen {
		return nil, errs.ErrTruncatedBlob
	}

	modulus := make([]byte, modulusLen)
	copy(modulus, data[PublicKeyFixedSize:PublicKeyFixedSize+modulusLen])

	return &PublicKey{
		Algorithm: header.Algorithm,
		Exponent:  wire.Uint32(data[14:18]),
		Modulus:   modulus,
	}, nil
}

// ReadPublicKey reads a public key blob from a stream.
//
// A stream that ends inside the fixed prefix or inside the modulus fails with
// ErrTruncatedBlob rather than yielding a silently short key.
func ReadPublicKey(r io.Reader) (*PublicKey, error) {
	fixed := make([]byte, PublicKeyFixedSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, truncated(err)
	}

	header, err := ParseBlobHeader(fixed)
	if err != nil {
		return nil, err
	}
	if err := header.Expect(format.BlobTypePublicKey, BlobVersion, format.AlgRSASign); err != nil {
		return nil, err
	}

	if wire.Uint32(fixed[6:10]) != MagicRSA1 {
		return nil, errs.ErrInvalidKeyMagic
	}

	bitLength := wire.Uint32(fixed[10:14])
	if bitLength == 0 || bitLength%8 != 0 {
		return nil, errs.ErrInvalidBitLength
	}

	modulus := make([]byte, bitLength/8)
	if _, err := io.ReadFull(r, modulus); err != nil {
		return nil, truncated(err)
	}

	return &PublicKey{
		Algorithm: header.Algorithm,
		Exponent:  wire.Uint32(fixed[14:18]),
		Modulus:   modulus,
	}, nil
}

// ReadPublicKeyFile reads a public key blob from a file, e.g. the .snk output
// of a strong-name tool.
func ReadPublicKeyFile(path string) (*PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParsePublicKey(data)
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errs.ErrTruncatedBlob
	}

	return err
}

// BitLength returns the key size in bits, derived from the modulus length.
func (k *PublicKey) BitLength() uint32 {
	return uint32(len(k.Modulus)) * 8 //nolint: gosec
}

// Header returns the common blob header this key serializes with.
func (k *PublicKey) Header() BlobHeader {
	return BlobHeader{
		Type:      format.BlobTypePublicKey,
		Version:   BlobVersion,
		Algorithm: k.Algorithm,
	}
}

// Size returns the exact number of bytes Bytes and WriteTo produce.
func (k *PublicKey) Size() int {
	return PublicKeyFixedSize + len(k.Modulus)
}

// Bytes serializes the key into a public key blob.
//
// The output always carries the RSA1 magic; parsing it back yields an equal
// key, and parsing then serializing any valid blob reproduces it byte for byte.
func (k *PublicKey) Bytes() []byte {
	b := make([]byte, k.Size())
	offset := k.Header().WriteToSlice(b, 0)
	wire.PutUint32(b[offset:offset+4], MagicRSA1)
	wire.PutUint32(b[offset+4:offset+8], k.BitLength())
	wire.PutUint32(b[offset+8:offset+12], k.Exponent)
	copy(b[offset+12:], k.Modulus)

	return b
}

// WriteTo writes the serialized blob to w. It implements io.WriterTo.
func (k *PublicKey) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(k.Bytes())

	return int64(n), err
}

// Token computes the strong-name public key token: the last TokenSize bytes of
// the SHA-1 hash of the serialized blob, in reverse order. SHA-1 is fixed by
// the strong-name format, not a security choice of this package.
func (k *PublicKey) Token() []byte {
	sum := sha1.Sum(k.Bytes())

	token := make([]byte, TokenSize)
	for i := range token {
		token[i] = sum[len(sum)-1-i]
	}

	return token
}
