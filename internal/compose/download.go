package compose

import (
	"bytes"
	"context"
	"image"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxEdge caps the longer edge of downloaded images. Sources
// within the cap are left at their original size.
const DefaultMaxEdge = 1024

// Fetcher downloads source images and decodes them into NRGBA bitmaps.
// A Fetcher is safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	maxEdge int
}

// NewFetcher builds a fetcher whose connection establishment is bounded
// by connect and whose whole request, body read included, is bounded by
// total. maxEdge <= 0 falls back to DefaultMaxEdge.
func NewFetcher(connect, total time.Duration, maxEdge int) *Fetcher {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}
	dialer := &net.Dialer{Timeout: connect}
	return &Fetcher{
		client: &http.Client{
			Timeout: total,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: connect,
			},
		},
		maxEdge: maxEdge,
	}
}

// Fetch downloads one image, decodes it, and proportionally downscales
// it so neither edge exceeds the cap. The result is always NRGBA;
// sources without an alpha channel come back fully opaque. Scaling
// never enlarges the source.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*image.NRGBA, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, wrapError(CodeDownload, err, "failed to download image: %s", rawURL)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, wrapError(CodeDownload, err, "failed to download image: %s", rawURL)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(CodeDownload, "failed to download image: %s (status %d)", rawURL, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(CodeDownload, err, "failed to download image: %s", rawURL)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, wrapError(CodeDecode, err, "invalid image content at: %s", rawURL)
	}
	// Fit never upscales and always returns a fresh NRGBA copy.
	return imaging.Fit(img, f.maxEdge, f.maxEdge, imaging.Lanczos), nil
}

// FetchAll resolves all URLs concurrently. Results keep their input
// positions, so completion order cannot affect the caller. The first
// failure cancels the remaining downloads and becomes the batch error.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]*image.NRGBA, error) {
	images := make([]*image.NRGBA, len(urls))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, u := range urls {
		i, u := i, u
		eg.Go(func() error {
			img, err := f.Fetch(egCtx, u)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
