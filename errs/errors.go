// Package errs defines the sentinel errors returned by cilmeta.
//
// All errors are plain sentinel values intended to be matched with errors.Is,
// even when wrapped with additional call-site context.
package errs

import "errors"

// Parameter view errors.
var (
	// ErrNilSignature is returned when a parameter set is created without a method signature.
	ErrNilSignature = errors.New("method signature is nil")
	// ErrNilOwner is returned when a parameter entry is created without an owning set.
	ErrNilOwner = errors.New("parameter entry requires an owning set")
	// ErrPositionOutOfRange is returned for positional access outside the live entry range.
	ErrPositionOutOfRange = errors.New("parameter position out of range")
	// ErrSlotOutOfRange is returned for access outside the signature's parameter-type list.
	ErrSlotOutOfRange = errors.New("signature slot out of range")
)

// Key blob errors.
var (
	// ErrInvalidBlobHeader is returned when a key blob header's structure type
	// or version disagrees with the expected values.
	ErrInvalidBlobHeader = errors.New("key blob header mismatch")
	// ErrUnsupportedAlgorithm is returned when a key blob header carries an
	// algorithm identifier other than the one the codec supports.
	ErrUnsupportedAlgorithm = errors.New("unsupported key algorithm")
	// ErrInvalidKeyMagic is returned when an RSA key blob's magic field is not RSA1.
	ErrInvalidKeyMagic = errors.New("invalid RSA key magic")
	// ErrInvalidBitLength is returned when a key's bit length is zero or not a
	// multiple of 8.
	ErrInvalidBitLength = errors.New("invalid key bit length")
	// ErrEmptyModulus is returned when constructing a key with a zero-length modulus.
	ErrEmptyModulus = errors.New("modulus must not be empty")
	// ErrTruncatedBlob is returned when the input ends before a key blob is fully read.
	ErrTruncatedBlob = errors.New("key blob truncated")
)

// Snapshot container errors.
var (
	// ErrInvalidHeaderSize is returned when a snapshot header is not exactly 16 bytes.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")
	// ErrInvalidMagicNumber is returned when a snapshot header's magic bits are wrong.
	ErrInvalidMagicNumber = errors.New("invalid snapshot magic number")
	// ErrInvalidCompressionType is returned for an unknown compression type value.
	ErrInvalidCompressionType = errors.New("invalid compression type")
	// ErrChecksumMismatch is returned when a snapshot payload fails checksum verification.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	// ErrPayloadSizeMismatch is returned when a decompressed payload does not match
	// the recorded raw size.
	ErrPayloadSizeMismatch = errors.New("snapshot payload size mismatch")
)
