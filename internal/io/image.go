package ioutils

import (
	"bytes"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService decodes downloaded image bytes and re-encodes them as JPEG.
//
// Decoding doubles as payload validation: a response body that is not a
// parseable image fails here rather than being cached as a broken file.
// Saved files are always JPEG regardless of the remote encoding.
//
// Example:
//
//	svc := ioutils.NewImageService(90)
//	jpg, err := svc.ToJPEG(body)        // validate + re-encode
//	jpg, err = svc.ResizeToJPEG(body, 1000) // same, capped at 1000px
type ImageService struct {
	quality int
}

// NewImageService creates an ImageService encoding at the given JPEG
// quality (1-100).
func NewImageService(quality int) *ImageService {
	return &ImageService{quality: quality}
}

// ToJPEG decodes data (JPEG, PNG, or GIF) and re-encodes it as JPEG.
func (s *ImageService) ToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return s.encode(img)
}

// ResizeToJPEG decodes data, scales it down to fit within maxSize pixels
// on its longer side while preserving aspect ratio, and re-encodes it as
// JPEG. Images already within bounds are only re-encoded.
func (s *ImageService) ResizeToJPEG(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxSize || height > maxSize {
		if width >= height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		// Catmull-Rom for quality over speed; these are one-off batch runs.
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	return s.encode(img)
}

func (s *ImageService) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
