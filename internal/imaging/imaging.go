// Package imaging normalizes inventory images before they reach blob
// storage: the format is sniffed from the bytes, oversized images are
// downscaled and everything is re-encoded as JPEG.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"

	"github.com/MKhiriev/go-inventory-hub/models"
)

const (
	// MaxDimension is the maximum width or height of a stored image.
	MaxDimension = 1024
	// JPEGQuality is the compression quality of the re-encoded image.
	JPEGQuality = 85
	// MaxUploadSize caps the accepted raw upload.
	MaxUploadSize = 10 << 20
	// OutputMIME is the content type of every normalized image.
	OutputMIME = "image/jpeg"
)

var (
	// ErrUnsupportedImage is returned for anything but JPEG or PNG.
	ErrUnsupportedImage = errors.New("unsupported image format (only JPEG and PNG accepted)")
	// ErrImageTooLarge is returned when the upload exceeds MaxUploadSize.
	ErrImageTooLarge = errors.New("image too large")
	// ErrEmptyImage is returned for an empty upload.
	ErrEmptyImage = errors.New("image is empty")
)

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Normalize validates upload by sniffing its bytes (the declared content
// type is ignored), downscales it to MaxDimension and re-encodes it as JPEG.
func Normalize(upload models.ImageUpload) (models.ImageUpload, error) {
	if len(upload.Data) == 0 {
		return models.ImageUpload{}, ErrEmptyImage
	}
	if len(upload.Data) > MaxUploadSize {
		return models.ImageUpload{}, ErrImageTooLarge
	}

	detected := http.DetectContentType(upload.Data)
	if !allowedMIME[detected] {
		return models.ImageUpload{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("%w: decoding: %w", ErrUnsupportedImage, err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return models.ImageUpload{}, fmt.Errorf("encoding JPEG: %w", err)
	}

	return models.ImageUpload{
		Data:        buf.Bytes(),
		ContentType: OutputMIME,
	}, nil
}

// downscale resizes img so neither side exceeds maxDim, keeping the aspect
// ratio. Smaller images are returned as is.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
