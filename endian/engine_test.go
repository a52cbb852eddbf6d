package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(engine))

	b := make([]byte, 4)
	engine.PutUint32(b, 0x31415352)
	require.Equal(t, []byte{0x52, 0x53, 0x41, 0x31}, b) // "RSA1" on the wire
	require.Equal(t, uint32(0x31415352), engine.Uint32(b))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.ByteOrder(binary.BigEndian), binary.ByteOrder(engine))

	b := make([]byte, 2)
	engine.PutUint16(b, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, b)
}

func TestAppendOperations(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint16(nil, 0x2233)
	buf = engine.AppendUint32(buf, 0x44556677)
	require.Equal(t, []byte{0x33, 0x22, 0x77, 0x66, 0x55, 0x44}, buf)
}
