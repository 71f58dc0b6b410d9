package imageprocessor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Catalog image sizes
const (
	ThumbnailSize = 320
	DisplaySize   = 1024
	webpQuality   = 85
)

// Variant is one processed rendition of an uploaded image.
type Variant struct {
	Suffix      string
	ContentType string
	Data        []byte
}

// Process decodes an uploaded image and produces the renditions the catalog
// serves: a bounded display image and a WebP thumbnail for product grids.
func Process(data []byte) ([]Variant, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	display := fitWidth(img, DisplaySize)
	displayData, err := encodeJPEG(display)
	if err != nil {
		return nil, err
	}

	thumb := fitWidth(img, ThumbnailSize)
	thumbData, err := encodeWebP(thumb)
	if err != nil {
		return nil, err
	}

	return []Variant{
		{Suffix: "", ContentType: "image/jpeg", Data: displayData},
		{Suffix: "_thumb", ContentType: "image/webp", Data: thumbData},
	}, nil
}

// fitWidth downscales to the target width, never upscales.
func fitWidth(img image.Image, width int) image.Image {
	if img.Bounds().Dx() <= width {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(88)); err != nil {
		return nil, fmt.Errorf("error encoding JPEG image: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image) ([]byte, error) {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, webpQuality)
	if err != nil {
		return nil, fmt.Errorf("error creating encoder options: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		return nil, fmt.Errorf("error encoding WebP image: %w", err)
	}
	return buf.Bytes(), nil
}
