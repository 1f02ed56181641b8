package surface

import (
	"bytes"
	"image/png"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	g, err := New(16, 8, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.ApplyNoise(defaultLayer(42))

	var buf bytes.Buffer
	if err := g.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 8 {
		t.Errorf("PNG bounds = %dx%d, want 16x8", bounds.Dx(), bounds.Dy())
	}
}

func TestEncodePNGFlatSurface(t *testing.T) {
	g, err := New(4, 4, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	if err := g.EncodePNG(&buf); err != nil {
		t.Errorf("EncodePNG on flat surface error: %v", err)
	}
}

func TestWriteRaw(t *testing.T) {
	g, err := New(8, 4, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	if err := g.WriteRaw(&buf); err != nil {
		t.Fatalf("WriteRaw error: %v", err)
	}
	if got, want := buf.Len(), 8*4*8; got != want {
		t.Errorf("raw dump is %d bytes, want %d", got, want)
	}
}
