package exif_test

import (
	"testing"

	"github.com/fwojciec/recipecrawl/exif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiffWithCamera is a little-endian TIFF block whose IFD0 holds
// Make="Canon" and Model="5D".
var tiffWithCamera = []byte{
	'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00,
	0x02, 0x00,
	0x0F, 0x01, 0x02, 0x00, 0x06, 0x00, 0x00, 0x00, 0x26, 0x00, 0x00, 0x00,
	0x10, 0x01, 0x02, 0x00, 0x03, 0x00, 0x00, 0x00, '5', 'D', 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	'C', 'a', 'n', 'o', 'n', 0x00,
}

func TestCaptioner_Caption(t *testing.T) {
	t.Parallel()

	t.Run("joins camera make and model", func(t *testing.T) {
		t.Parallel()

		caption, err := exif.NewCaptioner().Caption(tiffWithCamera)

		require.NoError(t, err)
		assert.Equal(t, "Canon 5D", caption)
	})

	t.Run("no exif yields empty caption", func(t *testing.T) {
		t.Parallel()

		caption, err := exif.NewCaptioner().Caption([]byte("plain bytes without metadata"))

		require.NoError(t, err)
		assert.Empty(t, caption)
	})
}

func TestTags(t *testing.T) {
	t.Parallel()

	tags, err := exif.Tags(tiffWithCamera)

	require.NoError(t, err)
	assert.Equal(t, "Canon", tags["Make"])
	assert.Equal(t, "5D", tags["Model"])
}
