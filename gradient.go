package vectoricon

import (
	"strconv"
	"strings"
)

// GradientKind distinguishes the two gradient element flavors.
type GradientKind int

const (
	LinearGradient GradientKind = iota
	RadialGradient
)

// Gradient is a linearGradient or radialGradient definition from the
// document's defs section. Coordinate attributes are kept as written;
// interpreting them is the renderer's business.
type Gradient struct {
	ID   string `xml:"id,attr"`
	Kind GradientKind

	// linear endpoints
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`

	// radial center and radius
	Cx string `xml:"cx,attr"`
	Cy string `xml:"cy,attr"`
	R  string `xml:"r,attr"`

	Stops []Stop `xml:"stop"`
}

// Stop is one gradient color stop.
type Stop struct {
	Offset  string `xml:"offset,attr"`
	Color   string `xml:"stop-color,attr"`
	Opacity string `xml:"stop-opacity,attr"`
}

// OffsetFraction returns the stop offset as a fraction in [0,1],
// accepting both "0.25" and "25%" spellings.
func (s Stop) OffsetFraction() (float64, error) {
	v := strings.TrimSpace(s.Offset)
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		return f / 100, err
	}
	return strconv.ParseFloat(v, 64)
}

// defs collects the gradient definitions of a defs element.
type defs struct {
	Linear []Gradient `xml:"linearGradient"`
	Radial []Gradient `xml:"radialGradient"`
}

// gradientRef extracts the id from a url(#id) paint reference.
func gradientRef(paint string) (string, bool) {
	paint = strings.TrimSpace(paint)
	if !strings.HasPrefix(paint, "url(#") || !strings.HasSuffix(paint, ")") {
		return "", false
	}
	return paint[len("url(#") : len(paint)-1], true
}
