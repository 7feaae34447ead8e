package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// lineHeight is the vertical advance between label lines, in pixels.
const lineHeight = 16

// outlineWidth is the stroke width of shape outlines, in pixels.
const outlineWidth = 1

// ImageSurface draws world-coordinate primitives onto an ebiten image.
// Every label is drawn in basicfont.Face7x13; the label font name is ignored.
type ImageSurface struct {
	dst  *ebiten.Image
	view core.Viewport
	face font.Face
}

// NewImageSurface maps a world of the given size onto the whole image.
func NewImageSurface(dst *ebiten.Image, worldW, worldH float64) *ImageSurface {
	b := dst.Bounds()
	return &ImageSurface{
		dst:  dst,
		view: core.NewViewport(worldW, worldH, float64(b.Dx()), float64(b.Dy())),
		face: basicfont.Face7x13,
	}
}

// FillRect fills the shape and strokes its outline unless line is ColorDefault.
func (s *ImageSurface) FillRect(sh core.Shape, fill, line core.Color) {
	x, y, w, h := s.view.Box(sh)
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), RGBA(fill), false)
	if line != core.ColorDefault {
		vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), outlineWidth, RGBA(line), false)
	}
}

// FillEllipse draws the circle inscribed in the shape's smaller side.
func (s *ImageSurface) FillEllipse(sh core.Shape, fill, line core.Color) {
	cx, cy := s.view.Point(sh.X, sh.Y)
	r := float32(min(sh.W*s.view.ScaleX(), sh.H*s.view.ScaleY()) / 2)
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), r, RGBA(fill), true)
	if line != core.ColorDefault {
		vector.StrokeCircle(s.dst, float32(cx), float32(cy), r, outlineWidth, RGBA(line), true)
	}
}

// DrawLabel draws each line of the label, the first line's vertical middle
// at the label's anchor.
func (s *ImageSurface) DrawLabel(l core.Label) {
	x, y := s.view.Point(l.X, l.Y)
	ascent := s.face.Metrics().Ascent.Ceil()
	baseline := int(y) + ascent/2
	for i, line := range strings.Split(l.Text, "\n") {
		left := int(x)
		if l.Align == core.AlignCenter {
			left -= font.MeasureString(s.face, line).Ceil() / 2
		}
		text.Draw(s.dst, line, s.face, left, baseline+i*lineHeight, RGBA(l.Color))
	}
}
