package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/AlexWSP/cs50-ai/crossword"
	"github.com/AlexWSP/cs50-ai/solver"
)

const (
	cellSize   = 100
	cellBorder = 2
	fontSize   = 80
)

// SaveImage writes the grid as a PNG, one 100-pixel tile per cell:
// black canvas, white open cells, letters centered in black.
func SaveImage(cw *crossword.Crossword, a solver.Assignment, path string) error {
	face, err := opentype.NewFace(mustFont(), &opentype.FaceOptions{
		Size: fontSize, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render font: %w", err)
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, cw.Width*cellSize, cw.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	letters := letterGrid(cw, a)
	drawer := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	metrics := face.Metrics()
	for r := 0; r < cw.Height; r++ {
		for c := 0; c < cw.Width; c++ {
			if !cw.Fillable(r, c) {
				continue
			}
			tile := image.Rect(
				c*cellSize+cellBorder, r*cellSize+cellBorder,
				(c+1)*cellSize-cellBorder, (r+1)*cellSize-cellBorder)
			draw.Draw(img, tile, image.White, image.Point{}, draw.Src)
			if letters[r][c] == 0 {
				continue
			}
			s := string(rune(letters[r][c]))
			width := drawer.MeasureString(s)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(tile.Min.X+tile.Dx()/2) - width/2,
				Y: fixed.I(tile.Min.Y+tile.Dy()/2) + (metrics.Ascent-metrics.Descent)/2,
			}
			drawer.DrawString(s)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render image: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render image: %w", err)
	}
	return nil
}

// mustFont parses the embedded Go Regular face. The bytes ship with the
// module, so a parse failure is a programming error.
func mustFont() *sfnt.Font {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return fnt
}
