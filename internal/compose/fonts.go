package compose

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Captions are drawn at a fixed large size so the text stays crisp
// after the final downscale.
const captionFontSize = 60

// bundledFontDir is the optional on-disk font location, relative to the
// working directory. Missing files are skipped, not errors.
const bundledFontDir = "fonts"

var fontCandidates = []string{"DejaVuSans-Bold.ttf", "DejaVuSans.ttf"}

var (
	captionFaceOnce sync.Once
	captionFace     font.Face
)

// CaptionFace returns the process-wide caption face. Font assets are
// immutable for the process lifetime, so the fallback chain is walked
// once: bundled bold, bundled regular, the same names on the system
// font search path, the embedded Go fonts, then a bitmap face as the
// last resort.
func CaptionFace() font.Face {
	captionFaceOnce.Do(func() {
		captionFace = loadFace(captionFontSize)
	})
	return captionFace
}

func loadFace(size float64) font.Face {
	for _, name := range fontCandidates {
		if face := faceFromFile(filepath.Join(bundledFontDir, name), size); face != nil {
			return face
		}
	}
	for _, name := range fontCandidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		if face := faceFromFile(path, size); face != nil {
			return face
		}
	}
	for _, ttf := range [][]byte{gobold.TTF, goregular.TTF} {
		if face := faceFromBytes(ttf, size); face != nil {
			return face
		}
	}
	return basicfont.Face7x13
}

func faceFromFile(path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return faceFromBytes(data, size)
}

func faceFromBytes(data []byte, size float64) font.Face {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}
