package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(le))
	require.Equal(t, binary.ByteOrder(binary.BigEndian), binary.ByteOrder(be))
}

func TestLittleEndianEngine_RoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	b := make([]byte, 8)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b[:4])
	require.Equal(t, uint32(0x01020304), engine.Uint32(b))

	engine.PutUint64(b, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(b))

	appended := engine.AppendUint32(nil, 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), engine.Uint32(appended))
}

func TestCheckEndianness_Consistent(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)
	require.Equal(t, order == binary.LittleEndian, IsNativeLittleEndian())
	require.Equal(t, order == binary.BigEndian, IsNativeBigEndian())
}
