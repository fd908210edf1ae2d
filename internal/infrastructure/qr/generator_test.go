package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	out, err := NewGenerator().PNG("http://localhost:3000/menu?restaurante=r1&mesa=3", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestPNG_ClampsSize(t *testing.T) {
	out, err := NewGenerator().PNG("mesa-1", 10)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, minSize, img.Bounds().Dx())
}

func TestPNG_EmptyContent(t *testing.T) {
	_, err := NewGenerator().PNG("  ", 256)
	assert.Error(t, err)
}
