package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/32bitkid/mode13/cxpm"
)

func TestBuiltinImagesAreWellFormed(t *testing.T) {
	for _, fid := range Builtin().FIDs() {
		img := Builtin().Lookup(fid)
		t.Run(fid.String(), func(t *testing.T) {
			require.NotNil(t, img)
			require.Len(t, img.Lines, img.Height)

			m, err := img.Paletted()
			require.NoError(t, err)
			assert.Equal(t, img.Width, m.Bounds().Dx())
		})
	}
}

func TestBuiltinHSCPanel(t *testing.T) {
	m, err := Builtin().Lookup(FIDHSC).Paletted()
	require.NoError(t, err)

	assert.Equal(t, uint8(0), m.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), m.ColorIndexAt(2, 1))
	assert.Equal(t, uint8(1), m.ColorIndexAt(13, 6))
	assert.Equal(t, uint8(0), m.ColorIndexAt(14, 6))
}

func TestLookupMissing(t *testing.T) {
	assert.Nil(t, Builtin().Lookup(FID(99)))
	assert.Nil(t, Table(nil).Lookup(FIDHSC))
}

func TestMerge(t *testing.T) {
	extra := &cxpm.Image{Width: 1, Height: 1}
	m := Builtin().Merge(Table{FIDHSC: extra, FID(7): extra})

	assert.Equal(t, []FID{FIDHSC, FIDPrism, FID(7)}, m.FIDs())
	assert.True(t, m.Lookup(FIDHSC) == extra)
	assert.False(t, Builtin().Lookup(FIDHSC) == extra)
}
