package pathdata

import "math"

// Elliptical arc conversion per the W3C endpoint-to-center
// parameterization (SVG implementation notes F.6.5/F.6.6), followed by
// cubic Bezier subdivision of the angular span.

// ellipticArc is the center parameterization of one arc command,
// derived per command and discarded after subdivision.
type ellipticArc struct {
	Center Point
	Radius Point
	XAngle float64 // radians
}

// point evaluates the parametric ellipse at angle theta.
func (e ellipticArc) point(theta float64) Point {
	sinp, cosp := math.Sincos(e.XAngle)
	x := e.Radius.X * math.Cos(theta)
	y := e.Radius.Y * math.Sin(theta)
	return Point{
		X: cosp*x - sinp*y + e.Center.X,
		Y: sinp*x + cosp*y + e.Center.Y,
	}
}

// derivative evaluates d/dtheta of the parametric ellipse at theta.
func (e ellipticArc) derivative(theta float64) Point {
	sinp, cosp := math.Sincos(e.XAngle)
	x := -e.Radius.X * math.Sin(theta)
	y := e.Radius.Y * math.Cos(theta)
	return Point{
		X: cosp*x - sinp*y,
		Y: sinp*x + cosp*y,
	}
}

// arcSegment is one cubic Bezier piece of a subdivided arc.
type arcSegment struct {
	C1, C2, P Point
}

// arcSegments bounds the per-segment curvature error of the cubic
// approximation.
const arcSegments = 6

// arcToCubics converts the arc from 'from' to 'to' into cubic segments.
// Callers must reject zero radii first; coincident endpoints yield no
// segments.
func arcToCubics(from, to, radius Point, xRotDeg float64, largeArc, sweep bool) []arcSegment {
	rx := math.Abs(radius.X)
	ry := math.Abs(radius.Y)

	sinp, cosp := math.Sincos(xRotDeg * math.Pi / 180)

	// midpoint of the chord in the rotated frame
	hx := (from.X - to.X) / 2
	hy := (from.Y - to.Y) / 2
	x1p := cosp*hx + sinp*hy
	y1p := -sinp*hx + cosp*hy

	if x1p == 0 && y1p == 0 {
		return nil
	}

	// scale the radii up uniformly if the endpoints are out of reach
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxsq := rx * rx
	rysq := ry * ry
	radicand := rxsq*rysq - rxsq*y1p*y1p - rysq*x1p*x1p
	if radicand < 0 {
		// floating error can push the discriminant slightly negative
		radicand = 0
	} else {
		radicand /= rxsq*y1p*y1p + rysq*x1p*x1p
	}
	coef := math.Sqrt(radicand)
	if largeArc == sweep {
		coef = -coef
	}

	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	center := Point{
		X: cosp*cxp - sinp*cyp + (from.X+to.X)/2,
		Y: sinp*cxp + cosp*cyp + (from.Y+to.Y)/2,
	}

	vx1 := (x1p - cxp) / rx
	vy1 := (y1p - cyp) / ry
	vx2 := (-x1p - cxp) / rx
	vy2 := (-y1p - cyp) / ry

	theta1 := vectorAngle(1, 0, vx1, vy1)
	delta := vectorAngle(vx1, vy1, vx2, vy2)

	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	e := ellipticArc{
		Center: center,
		Radius: Point{rx, ry},
		XAngle: xRotDeg * math.Pi / 180,
	}

	d := delta / arcSegments
	t := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*t*t) - 1) / 3

	segs := make([]arcSegment, 0, arcSegments)
	theta := theta1
	for i := 0; i < arcSegments; i++ {
		p0 := e.point(theta)
		p1 := e.point(theta + d)
		segs = append(segs, arcSegment{
			C1: p0.Add(e.derivative(theta).Mul(alpha)),
			C2: p1.Sub(e.derivative(theta + d).Mul(alpha)),
			P:  p1,
		})
		theta += d
	}

	// land exactly on the commanded endpoint
	segs[len(segs)-1].P = to
	return segs
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1.0
	}
	dot := ux*vx + uy*vy
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return sign * math.Acos(dot)
}
