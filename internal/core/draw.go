package core

// Surface is a render target that understands world coordinates.
// Hosts implement it over a terminal cell buffer or a window image.
type Surface interface {
	FillRect(s Shape, fill, line Color)
	FillEllipse(s Shape, fill, line Color)
	DrawLabel(l Label)
}

// Align controls how a label is positioned relative to its anchor.
type Align int

const (
	AlignCenter Align = iota // X is the horizontal center of each line
	AlignLeft                // X is the left edge of each line
)

// Rectangle is a filled, outlined rectangle primitive.
type Rectangle struct {
	Shape
	Fill Color
	Line Color
}

// Render draws the rectangle onto dst.
func (r Rectangle) Render(dst Surface) {
	dst.FillRect(r.Shape, r.Fill, r.Line)
}

// Ellipse is a filled, outlined ellipse inscribed in its shape.
type Ellipse struct {
	Shape
	Fill Color
	Line Color
}

// Render draws the ellipse onto dst.
func (e Ellipse) Render(dst Surface) {
	dst.FillEllipse(e.Shape, e.Fill, e.Line)
}

// Label is a text primitive. Text may span several lines separated by '\n';
// Y is the world y of the first line and later lines stack downward.
type Label struct {
	Text  string
	X, Y  float64
	Color Color
	Font  string
	Align Align
}

// Render draws the label onto dst. Empty labels draw nothing.
func (l Label) Render(dst Surface) {
	if l.Text == "" {
		return
	}
	dst.DrawLabel(l)
}
