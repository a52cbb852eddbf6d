package cilmeta

import (
	"bytes"
	"testing"

	"github.com/arloliu/cilmeta/errs"
	"github.com/arloliu/cilmeta/format"
	"github.com/arloliu/cilmeta/params"
	"github.com/arloliu/cilmeta/sig"
	"github.com/stretchr/testify/require"
)

func TestNewParameterSet(t *testing.T) {
	method := sig.NewMethodSig(
		sig.Primitive{Kind: sig.KindVoid},
		sig.Primitive{Kind: sig.KindInt32},
		sig.Primitive{Kind: sig.KindString},
	)
	defs := params.NewDefinitionMap(
		params.Definition{Name: "count", Sequence: 1},
	)

	set, err := NewParameterSet(method, defs)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	entry, err := set.Get(0)
	require.NoError(t, err)
	require.Equal(t, "System.Int32 count", entry.String())

	entry.SetType(sig.Primitive{Kind: sig.KindInt64})
	slotType, err := method.ParamType(0)
	require.NoError(t, err)
	require.Equal(t, "System.Int64", slotType.Name())

	_, err = NewParameterSet(nil, nil)
	require.ErrorIs(t, err, errs.ErrNilSignature)
}

func TestPublicKeyWrappers(t *testing.T) {
	// 2048-bit blob: header + "RSA1" magic + bit length + exponent + modulus.
	blob := []byte{0x06, 0x02, 0x00, 0x24, 0x00, 0x00, 0x52, 0x53, 0x41, 0x31}
	blob = append(blob, 0x00, 0x08, 0x00, 0x00) // 2048 bits
	blob = append(blob, 0x01, 0x00, 0x01, 0x00) // 65537
	blob = append(blob, make([]byte, 256)...)

	key, err := ParsePublicKey(blob)
	require.NoError(t, err)
	require.Equal(t, uint32(2048), key.BitLength())
	require.Equal(t, 274, key.Size())
	require.Equal(t, blob, key.Bytes())

	streamed, err := ReadPublicKey(bytes.NewReader(blob))
	require.NoError(t, err)
	require.Equal(t, key.Bytes(), streamed.Bytes())
}

func TestSnapshotWrappers(t *testing.T) {
	payload := bytes.Repeat([]byte("#Strings heap "), 512)

	blob, err := PackSnapshot(payload, format.CompressionS2)
	require.NoError(t, err)

	restored, err := UnpackSnapshot(blob)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}
