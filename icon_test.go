package vectoricon

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testIcon = `<?xml version="1.0" encoding="utf-8"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" width="24px" height="24px" viewBox="0 0 24 24">
<title>warning badge</title>
<defs>
  <linearGradient id="sky" x1="0" y1="0" x2="0" y2="1">
    <stop offset="0" stop-color="#29b6f6"/>
    <stop offset="100%" stop-color="#0288d1" stop-opacity="0.9"/>
  </linearGradient>
  <radialGradient id="glow" cx="12" cy="12" r="10">
    <stop offset="0" stop-color="#ffffff"/>
    <stop offset="1" stop-color="#fbc02d"/>
  </radialGradient>
</defs>
<g id="badge" transform="translate(2,2)">
  <path id="outline" d="M10 0 L20 20 L0 20 Z" fill="url(#sky)" stroke="#000000" stroke-width="1"/>
  <path id="dot" d="M9 14 h2 v2 h-2 z" fill="#000000"/>
</g>
</svg>`

func TestParseIconDocument(t *testing.T) {
	is := is.New(t)

	icon, err := ParseIcon(testIcon, "warning", 0)
	is.NoErr(err)
	is.NotNil(icon)
	is.Equal(icon.Title, "warning badge")
	is.Equal(icon.ViewBox, ViewBox{0, 0, 24, 24})
	is.Equal(len(icon.Groups), 1)
	is.Equal(icon.Groups[0].ID, "badge")
	is.Equal(len(icon.Groups[0].Elements), 2)

	icon, err = ParseIconFromReader(strings.NewReader(testIcon), "warning", 0)
	is.NoErr(err)
	is.NotNil(icon)
}

func TestGradientLookup(t *testing.T) {
	is := is.New(t)

	icon, err := ParseIcon(testIcon, "warning", 0)
	is.NoErr(err)

	sky := icon.Gradient("sky")
	is.NotNil(sky)
	is.Equal(sky.Kind, LinearGradient)
	is.Equal(len(sky.Stops), 2)
	is.Equal(sky.Stops[0].Color, "#29b6f6")

	frac, err := sky.Stops[1].OffsetFraction()
	is.NoErr(err)
	is.Equal(frac, 1.0)

	glow := icon.Gradient("glow")
	is.NotNil(glow)
	is.Equal(glow.Kind, RadialGradient)

	is.Nil(icon.Gradient("missing"))
}

func TestFillGradientResolution(t *testing.T) {
	is := is.New(t)

	icon, err := ParseIcon(testIcon, "warning", 0)
	is.NoErr(err)

	var outline, dot *Path
	for _, e := range icon.Groups[0].Elements {
		p, ok := e.(*Path)
		if !ok {
			continue
		}
		switch p.ID {
		case "outline":
			outline = p
		case "dot":
			dot = p
		}
	}
	is.NotNil(outline)
	is.NotNil(dot)

	g := outline.FillGradient()
	is.NotNil(g)
	is.Equal(g.ID, "sky")

	is.Nil(dot.FillGradient())
}
