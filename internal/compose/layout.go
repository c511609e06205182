package compose

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Layout constants. Cells share one uniform size derived from the
// largest block so the grid stays regular.
const (
	cellPadding     = 24
	captionImageGap = 8
	borderWidth     = 2
)

// gridShape returns the column/row counts for n blocks: 1 -> 1x1,
// 2 -> 2x1, 3 or 4 -> 2x2.
func gridShape(n int) (cols, rows int) {
	switch {
	case n <= 1:
		return 1, 1
	case n == 2:
		return 2, 1
	default:
		return 2, 2
	}
}

// LayoutBlocks arranges blocks into a uniform grid on a white canvas.
// Each block's own bounding box is centered in its cell, the caption
// sits cellPadding below the box top with the image captionImageGap
// below it, and every occupied cell gets a black border. Blocks must be
// non-empty (the validator guarantees 1 to 4).
func LayoutBlocks(blocks []Block) *image.NRGBA {
	var maxContentWidth, maxImageHeight, maxCaptionHeight int
	for _, b := range blocks {
		maxContentWidth = max(maxContentWidth, max(b.Image.Bounds().Dx(), b.Caption.Bounds().Dx()))
		maxImageHeight = max(maxImageHeight, b.Image.Bounds().Dy())
		maxCaptionHeight = max(maxCaptionHeight, b.Caption.Bounds().Dy())
	}

	cellWidth := maxContentWidth + 2*cellPadding
	cellHeight := maxImageHeight + maxCaptionHeight + captionImageGap + 2*cellPadding

	cols, rows := gridShape(len(blocks))
	canvas := imaging.New(cellWidth*cols, cellHeight*rows, color.White)

	for i, b := range blocks {
		cellX := (i % 2) * cellWidth
		cellY := (i / 2) * cellHeight

		imgW, imgH := b.Image.Bounds().Dx(), b.Image.Bounds().Dy()
		capW, capH := b.Caption.Bounds().Dx(), b.Caption.Bounds().Dy()

		blockWidth := max(imgW, capW) + 2*cellPadding
		blockHeight := capH + captionImageGap + imgH + 2*cellPadding
		blockLeft := cellX + (cellWidth-blockWidth)/2
		blockTop := cellY + (cellHeight-blockHeight)/2

		capX := blockLeft + (blockWidth-capW)/2
		capY := blockTop + cellPadding
		canvas = imaging.Overlay(canvas, b.Caption, image.Pt(capX, capY), 1.0)

		imgX := blockLeft + (blockWidth-imgW)/2
		imgY := capY + capH + captionImageGap
		canvas = imaging.Overlay(canvas, b.Image, image.Pt(imgX, imgY), 1.0)

		drawCellBorder(canvas, cellX, cellY, cellWidth, cellHeight)
	}

	return canvas
}

// drawCellBorder strokes borderWidth concentric 1-px black outlines
// inset progressively from the cell's outer edge.
func drawCellBorder(canvas *image.NRGBA, x, y, w, h int) {
	for i := 0; i < borderWidth; i++ {
		outlineRect(canvas, x+i, y+i, x+w-1-i, y+h-1-i)
	}
}

// outlineRect strokes the 1-px rectangle with inclusive corners
// (x0,y0) and (x1,y1).
func outlineRect(canvas *image.NRGBA, x0, y0, x1, y1 int) {
	black := image.NewUniform(color.Black)
	draw.Draw(canvas, image.Rect(x0, y0, x1+1, y0+1), black, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(x0, y1, x1+1, y1+1), black, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(x0, y0, x0+1, y1+1), black, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(x1, y0, x1+1, y1+1), black, image.Point{}, draw.Src)
}
