package testutil

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// GradientImage returns a w×h opaque image that compresses well.
func GradientImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

// EncodePNG encodes img without compression, leaving room for the engine to
// shrink it.
func EncodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.NoCompression}
	require.NoError(t, enc.Encode(&buf, img))
	return buf.Bytes()
}

// WritePNG writes an uncompressed gradient image of the given size to path
// and returns its bytes.
func WritePNG(t *testing.T, path string, w, h int) []byte {
	t.Helper()

	data := EncodePNG(t, GradientImage(w, h))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return data
}

// InsertChunk returns data with a chunk of the given type inserted right
// after IHDR. The chunk CRC is computed.
func InsertChunk(t *testing.T, data []byte, typ string, payload []byte) []byte {
	t.Helper()
	require.Len(t, typ, 4)

	const ihdrEnd = 8 + 12 + 13
	require.GreaterOrEqual(t, len(data), ihdrEnd)

	chunk := make([]byte, 0, 12+len(payload))
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(payload)))
	chunk = append(chunk, typ...)
	chunk = append(chunk, payload...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, data[ihdrEnd:]...)
}

// TextChunk builds a tEXt payload.
func TextChunk(keyword, text string) []byte {
	return []byte(keyword + "\x00" + text)
}
