// Package pool provides pooled byte buffers for snapshot encoding.
package pool

import "sync"

// SnapshotBufferDefaultSize is the default capacity of a pooled buffer;
// buffers that grew past SnapshotBufferMaxThreshold are not returned to the
// pool so a single huge payload cannot pin memory.
const (
	SnapshotBufferDefaultSize  = 1024 * 16  // 16KiB
	SnapshotBufferMaxThreshold = 1024 * 512 // 512KiB
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var snapshotBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(SnapshotBufferDefaultSize)
	},
}

// GetSnapshotBuffer obtains a reset ByteBuffer from the pool.
func GetSnapshotBuffer() *ByteBuffer {
	bb, _ := snapshotBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutSnapshotBuffer returns the buffer to the pool unless it grew past the
// retention threshold.
func PutSnapshotBuffer(bb *ByteBuffer) {
	if cap(bb.B) > SnapshotBufferMaxThreshold {
		return
	}

	snapshotBufferPool.Put(bb)
}
