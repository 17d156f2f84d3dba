package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/models"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 10, 10, 255})
		}
	}
	return img
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(w, h), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h)))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		data         func(t *testing.T) []byte
		declared     string
		wantW, wantH int
	}{
		{
			name:     "small jpeg kept in size",
			data:     func(t *testing.T) []byte { return encodeJPEG(t, 100, 80) },
			declared: "image/jpeg",
			wantW:    100, wantH: 80,
		},
		{
			name:     "png re-encoded as jpeg",
			data:     func(t *testing.T) []byte { return encodePNG(t, 64, 64) },
			declared: "image/png",
			wantW:    64, wantH: 64,
		},
		{
			name:     "wide image downscaled keeping ratio",
			data:     func(t *testing.T) []byte { return encodeJPEG(t, 2048, 1024) },
			declared: "image/jpeg",
			wantW:    1024, wantH: 512,
		},
		{
			name:     "tall image downscaled keeping ratio",
			data:     func(t *testing.T) []byte { return encodePNG(t, 500, 2000) },
			declared: "image/png",
			wantW:    256, wantH: 1024,
		},
		{
			name:     "declared type is ignored",
			data:     func(t *testing.T) []byte { return encodePNG(t, 10, 10) },
			declared: "application/octet-stream",
			wantW:    10, wantH: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(models.ImageUpload{Data: tt.data(t), ContentType: tt.declared})
			require.NoError(t, err)
			assert.Equal(t, OutputMIME, out.ContentType)

			w, h := decodedSize(t, out.Data)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: ErrEmptyImage},
		{name: "text", data: []byte("definitely not an image"), wantErr: ErrUnsupportedImage},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"), wantErr: ErrUnsupportedImage},
		{name: "truncated jpeg", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), wantErr: ErrUnsupportedImage},
		{name: "too large", data: make([]byte, MaxUploadSize+1), wantErr: ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(models.ImageUpload{Data: tt.data, ContentType: "image/jpeg"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
