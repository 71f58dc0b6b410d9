package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func testImageBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcessProducesDisplayAndThumbnail(t *testing.T) {
	data := testImageBytes(t, 2000, 1200)

	variants, err := Process(data)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}

	display := variants[0]
	if display.ContentType != "image/jpeg" {
		t.Fatalf("display content type = %q", display.ContentType)
	}
	img, _, err := image.Decode(bytes.NewReader(display.Data))
	if err != nil {
		t.Fatalf("display variant does not decode: %v", err)
	}
	if img.Bounds().Dx() != DisplaySize {
		t.Fatalf("display width = %d, want %d", img.Bounds().Dx(), DisplaySize)
	}

	thumb := variants[1]
	if thumb.Suffix != "_thumb" || thumb.ContentType != "image/webp" {
		t.Fatalf("unexpected thumbnail variant: %+v", thumb)
	}
	if len(thumb.Data) == 0 {
		t.Fatal("thumbnail variant is empty")
	}
}

func TestProcessNeverUpscales(t *testing.T) {
	data := testImageBytes(t, 400, 300)

	variants, err := Process(data)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(variants[0].Data))
	if err != nil {
		t.Fatalf("display variant does not decode: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Fatalf("display width = %d, want original 400", img.Bounds().Dx())
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	if _, err := Process([]byte("not an image")); err == nil {
		t.Fatal("expected error for non-image input")
	}
}
