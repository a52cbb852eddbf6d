// Package cilmeta models and rewrites the metadata of managed (ECMA-335 style)
// assembly images.
//
// The library keeps a convenient object graph perfectly consistent with the
// byte-exact, offset-addressed binary encodings underneath it. Two subsystems
// carry most of that weight:
//
//   - params: a bidirectional synchronization layer between the high-level,
//     mutable view of a method's formal parameters and the positional
//     parameter-type list embedded in the method's binary signature.
//   - keyblob: a bit-exact codec for the CryptoAPI-style RSA public key blobs
//     used to strong-name sign assemblies.
//
// Supporting packages: sig models decoded method signatures, snapshot caches
// decoded metadata payloads between rewrite passes, compress provides the
// snapshot codecs, and errs defines the sentinel errors.
//
// # Basic Usage
//
// Editing a parameter's type through the synchronized view:
//
//	method := sig.NewMethodSig(
//	    sig.Primitive{Kind: sig.KindVoid},
//	    sig.Primitive{Kind: sig.KindInt32},
//	)
//	set, _ := cilmeta.NewParameterSet(method, defs)
//	entry, _ := set.Get(0)
//	entry.SetType(sig.Primitive{Kind: sig.KindInt64}) // signature slot 0 updated too
//
// Parsing a public key blob:
//
//	key, err := cilmeta.ParsePublicKey(blobBytes)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d-bit key, token %x\n", key.BitLength(), key.Token())
//
// This package provides convenient top-level wrappers around the subpackages.
// For fine-grained control, use the subpackages directly.
package cilmeta

import (
	"io"

	"github.com/arloliu/cilmeta/format"
	"github.com/arloliu/cilmeta/keyblob"
	"github.com/arloliu/cilmeta/params"
	"github.com/arloliu/cilmeta/sig"
	"github.com/arloliu/cilmeta/snapshot"
)

// NewParameterSet builds the synchronized parameter view for a method
// signature. defs may be nil when the method has no named parameters.
//
// Returns errs.ErrNilSignature if method is nil.
func NewParameterSet(method *sig.MethodSig, defs params.DefinitionTable) (*params.Set, error) {
	return params.NewSet(method, defs)
}

// ParsePublicKey parses an RSA public key blob from a byte slice.
func ParsePublicKey(data []byte) (*keyblob.PublicKey, error) {
	return keyblob.ParsePublicKey(data)
}

// ReadPublicKey reads an RSA public key blob from a stream.
func ReadPublicKey(r io.Reader) (*keyblob.PublicKey, error) {
	return keyblob.ReadPublicKey(r)
}

// ReadPublicKeyFile reads an RSA public key blob from a file.
func ReadPublicKeyFile(path string) (*keyblob.PublicKey, error) {
	return keyblob.ReadPublicKeyFile(path)
}

// PackSnapshot freezes a decoded metadata payload into a snapshot blob.
func PackSnapshot(payload []byte, compressionType format.CompressionType) ([]byte, error) {
	return snapshot.Pack(payload, compressionType)
}

// UnpackSnapshot restores a payload from a snapshot blob.
func UnpackSnapshot(data []byte) ([]byte, error) {
	return snapshot.Unpack(data)
}
