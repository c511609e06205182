package compose

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// truetype faces are not safe for concurrent use, so measuring and
// drawing happen under a package lock. Captions are tiny relative to
// the rest of the pipeline, so contention is negligible.
var captionMu sync.Mutex

// RenderCaption rasterizes text into a tightly cropped transparent
// bitmap with the glyphs drawn in solid black. A caption that is empty
// after trimming yields a 1x1 fully transparent placeholder.
func RenderCaption(text string) *image.NRGBA {
	return renderCaption(text, CaptionFace())
}

func renderCaption(text string, face font.Face) *image.NRGBA {
	text = strings.TrimSpace(text)
	if text == "" {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	captionMu.Lock()
	defer captionMu.Unlock()

	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		// Shift the dot so the tight bounding box lands on the origin.
		Dot: fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(text)
	return dst
}
