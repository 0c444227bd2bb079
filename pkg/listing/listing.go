// Package listing draws plain-text compiler listings (tokens, IR, symbols)
// onto an RGBA image so they can be saved as PNG snapshots.
package listing

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Margin is the blank border around the text, in pixels.
	Margin = 8
	// MinWidth keeps very short listings readable.
	MinWidth = 128
)

var (
	Background = color.RGBA{0x1E, 0x1E, 0x1E, 0xFF}
	Foreground = color.RGBA{0xD4, 0xD4, 0xD4, 0xFF}
)

// face is the fixed 7x13 bitmap font; every glyph advances by the same width.
var face = basicfont.Face7x13

func advance() int {
	return face.Advance
}

func lineHeight() int {
	return face.Height
}

// Size returns the image dimensions needed to draw lines.
func Size(lines []string) (width, height int) {
	cols := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > cols {
			cols = n
		}
	}
	width = cols*advance() + 2*Margin
	if width < MinWidth {
		width = MinWidth
	}
	height = len(lines)*lineHeight() + 2*Margin
	return width, height
}

// Lines splits a listing on newlines, dropping one trailing empty line.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Render draws lines, top to bottom, onto a new image. Tabs are expanded to
// four spaces.
func Render(lines []string) *image.RGBA {
	w, h := Size(expandTabs(lines))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Foreground),
		Face: face,
	}
	for i, l := range expandTabs(lines) {
		baseline := Margin + i*lineHeight() + face.Ascent
		d.Dot = fixed.P(Margin, baseline)
		d.DrawString(l)
	}
	return img
}

func expandTabs(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.ReplaceAll(l, "\t", "    ")
	}
	return out
}

// SavePNG renders lines and writes the image to filename.
func SavePNG(filename string, lines []string) error {
	img := Render(lines)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
