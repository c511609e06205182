// Package compose implements the image-combination pipeline: fetch up to
// four remote images, render their captions, arrange the captioned
// blocks into a grid, and letterbox the result onto a fixed-size PNG.
//
// The pipeline is a straight line: validate -> fetch -> caption ->
// layout -> letterbox -> encode. All state is request-local; a Pipeline
// itself is immutable and safe for concurrent use.
package compose

import (
	"context"
	"image"
)

// Item is one image/caption pair supplied by the caller.
type Item struct {
	ImageURL string `json:"imageUrl"`
	Text     string `json:"text"`
}

// Block pairs one downscaled source image with its rendered caption.
type Block struct {
	Image   *image.NRGBA
	Caption *image.NRGBA
}

// Pipeline turns a list of items into a composite PNG.
type Pipeline struct {
	fetcher *Fetcher
}

// NewPipeline builds a pipeline that downloads source images with f.
func NewPipeline(f *Fetcher) *Pipeline {
	return &Pipeline{fetcher: f}
}

// Combine runs the full pipeline for one request and returns the encoded
// 2560x1408 PNG. Any item failing to download or decode aborts the whole
// batch; the returned error carries a Code for every request-caused
// failure.
func (p *Pipeline) Combine(ctx context.Context, items []Item) ([]byte, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	urls := make([]string, len(items))
	for i, item := range items {
		urls[i] = item.ImageURL
	}
	images, err := p.fetcher.FetchAll(ctx, urls)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, len(items))
	for i, item := range items {
		blocks[i] = Block{Image: images[i], Caption: RenderCaption(item.Text)}
	}

	return EncodePNG(Letterbox(LayoutBlocks(blocks)))
}
