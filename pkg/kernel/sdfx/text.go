package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/golang/freetype/truetype"

	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// Outline2 wraps an sdf.SDF2 planar shape to implement kernel.Outline.
type Outline2 struct {
	s sdf.SDF2
}

var _ kernel.Outline = (*Outline2)(nil)

// BoundingBox returns the outline's axis-aligned bounds.
func (o *Outline2) BoundingBox() (min, max [2]float64) {
	bb := o.s.BoundingBox()
	return [2]float64{bb.Min.X, bb.Min.Y}, [2]float64{bb.Max.X, bb.Max.Y}
}

// FontProvider renders text labels into planar outlines using a TrueType
// font loaded through sdfx. Glyphs are laid out left to right at the
// requested height; closed glyph contours arrive already filled, so the
// result extrudes directly.
type FontProvider struct {
	font *truetype.Font
	path string
}

// LoadFontProvider parses the TTF/OTF font file at path.
func LoadFontProvider(path string) (*FontProvider, error) {
	f, err := sdf.LoadFont(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return &FontProvider{font: f, path: path}, nil
}

// FontPath returns the path the provider's font was loaded from.
func (p *FontProvider) FontPath() string {
	return p.path
}

// Outline renders text at the given height. Rendering fails when the
// font cannot produce the requested glyphs; the failure is surfaced,
// never retried.
func (p *FontProvider) Outline(text string, size float64) (kernel.Outline, error) {
	s2, err := sdf.Text2D(p.font, sdf.NewText(text), size)
	if err != nil {
		return nil, fmt.Errorf("render %q with %s: %w", text, p.path, err)
	}
	return &Outline2{s: s2}, nil
}

// BoxOutline returns a filled w×h rectangle centered at the local
// origin. It is a font-free stand-in for a text outline, used by tests
// and dry-run previews.
func BoxOutline(w, h float64) kernel.Outline {
	s2 := sdf.Box2D(v2.Vec{X: w, Y: h}, 0)
	return &Outline2{s: s2}
}
