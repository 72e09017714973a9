package pathdata

// Builder is the path-builder abstraction the interpreter emits into.
// All coordinates handed to a Builder are absolute and already scaled.
// A Builder must be owned by a single interpretation pass; interpreting
// several paths concurrently requires one Builder each.
type Builder interface {
	MoveTo(p Point)
	LineTo(p Point)
	CubeTo(c1, c2, p Point)
	Close()
}

// CtrlKind records which command family produced the stored control
// point, so only a matching smooth command may reflect it.
type CtrlKind int

const (
	CtrlNone CtrlKind = iota
	CtrlCubic
	CtrlQuad
)

// Cursor is the running interpretation state threaded between commands:
// the current point, the start of the current subpath, and after a
// curve command the implied control point for a following smooth
// command. It is a plain value; interpretation never touches shared
// state.
type Cursor struct {
	At    Point
	Start Point
	Ctrl  Point
	Kind  CtrlKind
}

// ctrlFor returns the implicit first control point for a smooth command
// of kind k: the stored reflected control point if the previous command
// matches, otherwise the current point.
func (c Cursor) ctrlFor(k CtrlKind) Point {
	if c.Kind == k {
		return c.Ctrl
	}
	return c.At
}

// reflect returns control reflected through end, which is the implied
// continuation control point stored for the next smooth command.
func reflect(end, control Point) Point {
	return Point{2*end.X - control.X, 2*end.Y - control.Y}
}

// Interpret replays cmds in order against cur, emitting absolute
// geometry into b and returning the final cursor. Commands hold raw
// viewport units; scale is applied only at emission, so the returned
// cursor stays in viewport units.
func Interpret(cmds []Command, cur Cursor, scale float64, b Builder) Cursor {
	for _, cmd := range cmds {
		cur = apply(cmd, cur, scale, b)
	}
	return cur
}

func apply(cmd Command, cur Cursor, scale float64, b Builder) Cursor {
	switch c := cmd.(type) {
	case MoveTo:
		p := c.P
		if c.Rel {
			p = cur.At.Add(p)
		}
		b.MoveTo(p.Mul(scale))
		return Cursor{At: p, Start: p}

	case LineTo:
		p := c.P
		if c.Rel {
			p = cur.At.Add(p)
		}
		b.LineTo(p.Mul(scale))
		return Cursor{At: p, Start: cur.Start}

	case HLineTo:
		p := Point{c.X, cur.At.Y}
		if c.Rel {
			p.X = cur.At.X + c.X
		}
		b.LineTo(p.Mul(scale))
		return Cursor{At: p, Start: cur.Start}

	case VLineTo:
		p := Point{cur.At.X, c.Y}
		if c.Rel {
			p.Y = cur.At.Y + c.Y
		}
		b.LineTo(p.Mul(scale))
		return Cursor{At: p, Start: cur.Start}

	case CurveTo:
		c1, c2, p := c.C1, c.C2, c.P
		if c.Rel {
			c1 = cur.At.Add(c1)
			c2 = cur.At.Add(c2)
			p = cur.At.Add(p)
		}
		return emitCubic(cur, c1, c2, p, scale, b)

	case SmoothCurveTo:
		c2, p := c.C2, c.P
		if c.Rel {
			c2 = cur.At.Add(c2)
			p = cur.At.Add(p)
		}
		return emitCubic(cur, cur.ctrlFor(CtrlCubic), c2, p, scale, b)

	case QuadTo:
		q, p := c.C, c.P
		if c.Rel {
			q = cur.At.Add(q)
			p = cur.At.Add(p)
		}
		return emitQuad(cur, q, p, scale, b)

	case SmoothQuadTo:
		p := c.P
		if c.Rel {
			p = cur.At.Add(p)
		}
		return emitQuad(cur, cur.ctrlFor(CtrlQuad), p, scale, b)

	case ArcTo:
		p := c.P
		if c.Rel {
			p = cur.At.Add(p)
		}
		if c.R.X == 0 || c.R.Y == 0 {
			// zero radius degenerates to a straight line
			b.LineTo(p.Mul(scale))
			return Cursor{At: p, Start: cur.Start}
		}
		for _, seg := range arcToCubics(cur.At, p, c.R, c.XRot, c.LargeArc, c.Sweep) {
			b.CubeTo(seg.C1.Mul(scale), seg.C2.Mul(scale), seg.P.Mul(scale))
		}
		return Cursor{At: p, Start: cur.Start}

	case ClosePath:
		b.Close()
		return Cursor{At: cur.Start, Start: cur.Start}
	}
	return cur
}

// emitCubic draws the cubic and stores the reflected second control
// point for a following smooth curve.
func emitCubic(cur Cursor, c1, c2, p Point, scale float64, b Builder) Cursor {
	b.CubeTo(c1.Mul(scale), c2.Mul(scale), p.Mul(scale))
	return Cursor{At: p, Start: cur.Start, Ctrl: reflect(p, c2), Kind: CtrlCubic}
}

// emitQuad degree-elevates the quadratic to a cubic for the builder and
// stores the reflected quadratic control point.
func emitQuad(cur Cursor, q, p Point, scale float64, b Builder) Cursor {
	c1 := cur.At.Add(q.Sub(cur.At).Mul(2.0 / 3.0))
	c2 := p.Add(q.Sub(p).Mul(2.0 / 3.0))
	b.CubeTo(c1.Mul(scale), c2.Mul(scale), p.Mul(scale))
	return Cursor{At: p, Start: cur.Start, Ctrl: reflect(p, q), Kind: CtrlQuad}
}
