package compose

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/disintegration/imaging"
)

func TestLetterboxPassthrough(t *testing.T) {
	canvas := imaging.New(TargetWidth, TargetHeight, red)
	got := Letterbox(canvas)
	if got != canvas {
		t.Error("canvas already at target size was not passed through")
	}
}

func TestLetterboxAlwaysTargetSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"small landscape", 248, 157},
		{"small portrait", 157, 248},
		{"wider than target", 5000, 300},
		{"taller than target", 300, 5000},
		{"larger both ways", 4000, 4000},
		{"degenerate sliver", 1, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Letterbox(imaging.New(tt.w, tt.h, red))
			if got.Bounds().Dx() != TargetWidth || got.Bounds().Dy() != TargetHeight {
				t.Errorf("letterboxed = %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), TargetWidth, TargetHeight)
			}
		})
	}
}

func TestLetterboxCentersWithEqualMargins(t *testing.T) {
	const w, h = 248, 157
	out := Letterbox(imaging.New(w, h, red))

	scale := math.Min(float64(TargetWidth)/w, float64(TargetHeight)/h)
	wantW := min(max(int(w*scale), 1), TargetWidth)
	wantH := min(max(int(h*scale), 1), TargetHeight)

	// Scan the middle row and column for the red content extents.
	left, right := -1, -1
	for x := 0; x < TargetWidth; x++ {
		if out.NRGBAAt(x, TargetHeight/2) != white {
			if left < 0 {
				left = x
			}
			right = x
		}
	}
	top, bottom := -1, -1
	for y := 0; y < TargetHeight; y++ {
		if out.NRGBAAt(TargetWidth/2, y) != white {
			if top < 0 {
				top = y
			}
			bottom = y
		}
	}

	if left < 0 || top < 0 {
		t.Fatal("no content found on the letterboxed canvas")
	}
	if gotW := right - left + 1; gotW != wantW {
		t.Errorf("content width = %d, want %d", gotW, wantW)
	}
	if gotH := bottom - top + 1; gotH != wantH {
		t.Errorf("content height = %d, want %d", gotH, wantH)
	}
	if diff := left - (TargetWidth - 1 - right); diff < -1 || diff > 1 {
		t.Errorf("horizontal margins %d and %d differ by more than 1", left, TargetWidth-1-right)
	}
	if diff := top - (TargetHeight - 1 - bottom); diff < -1 || diff > 1 {
		t.Errorf("vertical margins %d and %d differ by more than 1", top, TargetHeight-1-bottom)
	}
}

func TestEncodePNGRoundTrips(t *testing.T) {
	data, err := EncodePNG(imaging.New(TargetWidth, TargetHeight, red))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output does not decode as PNG: %v", err)
	}
	if decoded.Bounds().Dx() != TargetWidth || decoded.Bounds().Dy() != TargetHeight {
		t.Errorf("decoded = %dx%d, want %dx%d",
			decoded.Bounds().Dx(), decoded.Bounds().Dy(), TargetWidth, TargetHeight)
	}
}
