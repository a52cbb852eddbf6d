package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, cap(bb.B))

	bb.MustWrite([]byte{0x01, 0x02, 0x03})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{0x01, 0x02, 0x03}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, cap(bb.B))
}

func TestSnapshotBufferPool(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("payload"))
	PutSnapshotBuffer(bb)

	again := GetSnapshotBuffer()
	require.Equal(t, 0, again.Len())
	PutSnapshotBuffer(again)
}

func TestPutSnapshotBuffer_DropsOversized(t *testing.T) {
	bb := NewByteBuffer(SnapshotBufferMaxThreshold + 1)

	// Must not panic; the buffer is simply dropped.
	PutSnapshotBuffer(bb)
}
