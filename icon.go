package vectoricon

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
)

// InstructionSource allows getting drawing instructions from an icon
// element. All drawable icon elements implement this interface.
type InstructionSource interface {
	ParseDrawingInstructions() (chan *DrawingInstruction, chan error)
}

// ViewBox is the coordinate window of an icon document.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Icon represents one vector-icon document: a viewport, gradient
// definitions and a tree of groups and path elements.
type Icon struct {
	Title     string
	Name      string
	ViewBox   ViewBox
	Groups    []Group
	Elements  []InstructionSource
	Transform *mt.Transform
	scale     float64
	gradients map[string]*Gradient
}

// Group represents a named group of icon elements sharing style and an
// affine transform.
type Group struct {
	ID              string
	Stroke          string
	StrokeWidth     float64
	Fill            string
	FillRule        string
	Elements        []InstructionSource
	TransformString string
	Transform       *mt.Transform // row, column
	Parent          *Group
	Owner           *Icon
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			sw, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return err
			}
			g.StrokeWidth = sw
		case "fill":
			g.Fill = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			g.Transform = &t
		}
	}
	if g.Transform == nil {
		g.Transform = mt.NewTransform()
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var elementStruct InstructionSource

			switch tok.Name.Local {
			case "g":
				elementStruct = &Group{Parent: g, Owner: g.Owner}
			case "path":
				elementStruct = &Path{group: g, StrokeWidth: g.StrokeWidth, Stroke: g.Stroke, Fill: g.Fill}
			default:
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(elementStruct, &tok); err != nil {
				return fmt.Errorf("error decoding element of group %q: %w", g.ID, err)
			}
			g.Elements = append(g.Elements, elementStruct)

		case xml.EndElement:
			return nil
		}
	}
}

// ParseDrawingInstructions implements the InstructionSource interface
// by draining each child element in document order.
func (g *Group) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	instructions := make(chan *DrawingInstruction, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(instructions)
		defer close(errs)
		for _, e := range g.Elements {
			drain(e, instructions, errs)
		}
	}()

	return instructions, errs
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Icon) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "viewBox":
			var vb ViewBox
			if _, err := fmt.Sscan(attr.Value, &vb.MinX, &vb.MinY, &vb.Width, &vb.Height); err != nil {
				return fmt.Errorf("error parsing viewBox %q: %w", attr.Value, err)
			}
			s.ViewBox = vb
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "title":
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return fmt.Errorf("error decoding icon title: %w", err)
				}
			case "defs":
				var d defs
				if err := decoder.DecodeElement(&d, &tok); err != nil {
					return fmt.Errorf("error decoding defs element: %w", err)
				}
				s.registerGradients(&d)
			case "g":
				g := &Group{Owner: s}
				if err := decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within icon: %w", err)
				}
				s.Groups = append(s.Groups, *g)
			case "path":
				p := &Path{}
				if err := decoder.DecodeElement(p, &tok); err != nil {
					return fmt.Errorf("error decoding path element within icon: %w", err)
				}
				s.Elements = append(s.Elements, p)
			default:
				if err := decoder.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// ParseDrawingInstructions implements the InstructionSource interface
// for the whole document.
func (s *Icon) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	instructions := make(chan *DrawingInstruction, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(instructions)
		defer close(errs)
		for _, e := range s.Elements {
			drain(e, instructions, errs)
		}
		for i := range s.Groups {
			drain(&s.Groups[i], instructions, errs)
		}
	}()

	return instructions, errs
}

func drain(e InstructionSource, instructions chan *DrawingInstruction, errs chan error) {
	is, es := e.ParseDrawingInstructions()
	for is != nil || es != nil {
		select {
		case i, ok := <-is:
			if !ok {
				is = nil
				continue
			}
			instructions <- i
		case err, ok := <-es:
			if !ok {
				es = nil
				continue
			}
			if err != nil {
				select {
				case errs <- err:
				default:
				}
			}
		}
	}
}

// Paths returns every path element of the document in document order.
func (s *Icon) Paths() []*Path {
	var out []*Path
	for _, e := range s.Elements {
		if p, ok := e.(*Path); ok {
			out = append(out, p)
		}
	}
	for i := range s.Groups {
		out = append(out, s.Groups[i].paths()...)
	}
	return out
}

func (g *Group) paths() []*Path {
	var out []*Path
	for _, e := range g.Elements {
		switch el := e.(type) {
		case *Path:
			out = append(out, el)
		case *Group:
			out = append(out, el.paths()...)
		}
	}
	return out
}

// Gradient returns the gradient definition with the given id, or nil.
func (s *Icon) Gradient(id string) *Gradient {
	return s.gradients[id]
}

func (s *Icon) registerGradients(d *defs) {
	if s.gradients == nil {
		s.gradients = make(map[string]*Gradient)
	}
	for i := range d.Linear {
		d.Linear[i].Kind = LinearGradient
		s.gradients[d.Linear[i].ID] = &d.Linear[i]
	}
	for i := range d.Radial {
		d.Radial[i].Kind = RadialGradient
		s.gradients[d.Radial[i].ID] = &d.Radial[i]
	}
}

// ParseIcon parses an icon document string into an Icon. A positive
// scale multiplies all coordinates, a negative scale divides by its
// magnitude.
func ParseIcon(str string, name string, scale float64) (*Icon, error) {
	var icon Icon
	icon.Name = name
	icon.applyScale(scale)

	if err := xml.Unmarshal([]byte(str), &icon); err != nil {
		return nil, fmt.Errorf("ParseIcon error: %w", err)
	}
	icon.adoptGroups()
	return &icon, nil
}

// ParseIconFromReader parses an icon document from an io.Reader.
func ParseIconFromReader(r io.Reader, name string, scale float64) (*Icon, error) {
	var icon Icon
	icon.Name = name
	icon.applyScale(scale)

	if err := xml.NewDecoder(r).Decode(&icon); err != nil {
		return nil, fmt.Errorf("ParseIcon error: %w", err)
	}
	icon.adoptGroups()
	return &icon, nil
}

func (s *Icon) applyScale(scale float64) {
	s.Transform = mt.NewTransform()
	if scale > 0 {
		s.Transform.Scale(scale, scale)
		s.scale = scale
	}
	if scale < 0 {
		s.Transform.Scale(1.0/-scale, 1.0/-scale)
		s.scale = 1.0 / -scale
	}
	if scale == 0 {
		s.scale = 1
	}
}

func (s *Icon) adoptGroups() {
	for i := range s.Groups {
		s.Groups[i].SetOwner(s)
		if s.Groups[i].Transform == nil {
			s.Groups[i].Transform = mt.NewTransform()
		}
	}
	for _, e := range s.Elements {
		if p, ok := e.(*Path); ok && p.group == nil {
			p.group = &Group{Owner: s, Transform: mt.NewTransform()}
		}
	}
}

// SetOwner sets the owning icon of a group and its descendants
func (g *Group) SetOwner(icon *Icon) {
	g.Owner = icon
	for _, gn := range g.Elements {
		switch e := gn.(type) {
		case *Group:
			e.SetOwner(icon)
		case *Path:
			e.group = g
		}
	}
}
