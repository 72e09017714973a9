package pathdata

// Point is an x,y coordinate in viewport units.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Command is one parsed path-data drawing command. It is a closed set:
// the only implementations are the command structs in this package.
// Relative commands carry offsets from the current cursor; absolute
// ones carry final coordinates. Either way a command fully determines
// the next cursor state given the running interpretation state.
type Command interface {
	command()
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P   Point
	Rel bool
}

// LineTo draws a straight line to P.
type LineTo struct {
	P   Point
	Rel bool
}

// HLineTo draws a horizontal line to (or by) X.
type HLineTo struct {
	X   float64
	Rel bool
}

// VLineTo draws a vertical line to (or by) Y.
type VLineTo struct {
	Y   float64
	Rel bool
}

// CurveTo draws a cubic Bezier with control points C1, C2 ending at P.
type CurveTo struct {
	C1, C2, P Point
	Rel       bool
}

// SmoothCurveTo draws a cubic Bezier whose first control point is the
// reflection of the previous curve's second control point.
type SmoothCurveTo struct {
	C2, P Point
	Rel   bool
}

// QuadTo draws a quadratic Bezier with control point C ending at P.
type QuadTo struct {
	C, P Point
	Rel  bool
}

// SmoothQuadTo draws a quadratic Bezier whose control point is the
// reflection of the previous quadratic's control point.
type SmoothQuadTo struct {
	P   Point
	Rel bool
}

// ArcTo draws an elliptical arc from the current point to P with radii
// R, the ellipse rotated by XRot degrees. LargeArc and Sweep select the
// arc branch per the SVG arc flag table.
type ArcTo struct {
	R        Point
	XRot     float64
	LargeArc bool
	Sweep    bool
	P        Point
	Rel      bool
}

// ClosePath closes the current subpath.
type ClosePath struct{}

func (MoveTo) command()        {}
func (LineTo) command()        {}
func (HLineTo) command()       {}
func (VLineTo) command()       {}
func (CurveTo) command()       {}
func (SmoothCurveTo) command() {}
func (QuadTo) command()        {}
func (SmoothQuadTo) command()  {}
func (ArcTo) command()         {}
func (ClosePath) command()     {}
