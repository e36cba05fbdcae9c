package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestImageService_ToJPEG(t *testing.T) {
	svc := NewImageService(90)

	out, err := svc.ToJPEG(encodePNG(t, 10, 8))
	if err != nil {
		t.Fatalf("ToJPEG: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("output format = %q, want jpeg", format)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 8 {
		t.Errorf("dimensions changed: %v", img.Bounds())
	}
}

func TestImageService_ToJPEG_RejectsNonImage(t *testing.T) {
	svc := NewImageService(90)
	if _, err := svc.ToJPEG([]byte("<html>not found</html>")); err == nil {
		t.Error("expected decode error for non-image payload")
	}
}

func TestImageService_ResizeToJPEG(t *testing.T) {
	svc := NewImageService(90)

	tests := []struct {
		name         string
		w, h         int
		maxSize      int
		wantW, wantH int
	}{
		{"landscape over limit", 200, 100, 50, 50, 25},
		{"portrait over limit", 100, 200, 50, 25, 50},
		{"already within limit", 30, 20, 50, 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ResizeToJPEG(encodePNG(t, tt.w, tt.h), tt.maxSize)
			if err != nil {
				t.Fatalf("ResizeToJPEG: %v", err)
			}
			img, _, err := image.Decode(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d",
					img.Bounds().Dx(), img.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestImageService_AcceptsJPEGInput(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := NewImageService(75).ToJPEG(buf.Bytes()); err != nil {
		t.Errorf("ToJPEG on JPEG input: %v", err)
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
