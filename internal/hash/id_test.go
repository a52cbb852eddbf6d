package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("value"), ID("value"))
	require.NotEqual(t, ID("value"), ID("Value"))
	require.Equal(t, ID(""), ID(""))
}

func TestSum(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	require.Equal(t, xxhash.Sum64(data), Sum(data))
	require.Equal(t, ID("abc"), Sum([]byte("abc")))
}
