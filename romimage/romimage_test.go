package romimage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsNilNotError(t *testing.T) {
	data, err := Load(filepath.Join(t.TempDir(), "does-not-exist.rom"))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestLoadShortFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "short.rom")
	require.NoError(t, os.WriteFile(p, []byte{0x01, 0x02, 0x03}, 0o644))

	data, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, data)
}

func TestLoadTruncatesOversizedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "big.rom")
	big := make([]byte, Size+100)
	for i := range big {
		big[i] = 0xEE
	}
	require.NoError(t, os.WriteFile(p, big, 0o644))

	data, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, data, Size)
}

func TestLoadExactSizeFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "exact.rom")
	exact := make([]byte, Size)
	exact[0] = 0x4C
	require.NoError(t, os.WriteFile(p, exact, 0o644))

	data, err := Load(p)
	require.NoError(t, err)
	require.Len(t, data, Size)
	assert.Equal(t, uint8(0x4C), data[0])
}
