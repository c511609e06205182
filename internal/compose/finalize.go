package compose

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

// Target output dimensions for every composite.
const (
	TargetWidth  = 2560
	TargetHeight = 1408
)

// Letterbox scales the composed canvas to fit the fixed target size,
// preserving aspect ratio, and centers it on an opaque white background.
// A canvas already at target size passes through untouched.
func Letterbox(canvas *image.NRGBA) *image.NRGBA {
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()
	if w == TargetWidth && h == TargetHeight {
		return canvas
	}

	scale := math.Min(float64(TargetWidth)/float64(w), float64(TargetHeight)/float64(h))
	scaledW := min(max(int(float64(w)*scale), 1), TargetWidth)
	scaledH := min(max(int(float64(h)*scale), 1), TargetHeight)
	scaled := imaging.Resize(canvas, scaledW, scaledH, imaging.Lanczos)

	out := imaging.New(TargetWidth, TargetHeight, color.White)
	return imaging.Paste(out, scaled, image.Pt((TargetWidth-scaledW)/2, (TargetHeight-scaledH)/2))
}

// EncodePNG losslessly encodes img, balancing speed against size.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
