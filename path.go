package vectoricon

import (
	"fmt"
	"sync"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/vectoricon/pathdata"
)

// Path is an icon path element. Its geometry lives in the pathData
// mini-language of the d attribute and is parsed exactly once, into an
// immutable command list owned by the element.
type Path struct {
	ID              string  `xml:"id,attr"`
	D               string  `xml:"d,attr"`
	Style           string  `xml:"style,attr"`
	TransformString string  `xml:"transform,attr"`
	StrokeWidth     float64 `xml:"stroke-width,attr"`
	Fill            string  `xml:"fill,attr"`
	Stroke          string  `xml:"stroke,attr"`
	properties      map[string]string
	group           *Group

	parseOnce sync.Once
	commands  []pathdata.Command
	parseErr  error
}

// Commands parses the path's d attribute into drawing commands. The
// result is cached; repeated calls return the same list.
func (p *Path) Commands() ([]pathdata.Command, error) {
	p.parseOnce.Do(func() {
		p.commands, p.parseErr = pathdata.Parse(p.D)
		if p.parseErr != nil {
			p.parseErr = fmt.Errorf("path %q: %w", p.ID, p.parseErr)
		}
	})
	return p.commands, p.parseErr
}

// FillGradient resolves a url(#id) fill reference against the owning
// icon's gradient definitions. It returns nil for plain color fills.
func (p *Path) FillGradient() *Gradient {
	if p.group == nil || p.group.Owner == nil {
		return nil
	}
	id, ok := gradientRef(p.Fill)
	if !ok {
		return nil
	}
	return p.group.Owner.Gradient(id)
}

// ParseDrawingInstructions interprets the path's commands under the
// composed group transform and streams the resulting instructions. The
// second channel reports a parse failure; both channels are closed when
// the path is done.
func (p *Path) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	p.parseStyle()

	instructions := make(chan *DrawingInstruction, 100)
	errs := make(chan error, 1)

	if p.group == nil {
		p.group = &Group{Transform: mt.NewTransform()}
	}
	if p.StrokeWidth == 0 {
		p.StrokeWidth = 1
	}

	transform := p.composedTransform()
	cmds, err := p.Commands()

	go func() {
		defer close(instructions)
		defer close(errs)

		if err != nil {
			errs <- err
			return
		}

		b := &instructionBuilder{instructions: instructions, transform: transform}
		pathdata.Interpret(cmds, pathdata.Cursor{}, 1, b)

		scaledWidth := p.StrokeWidth * p.ownerScale()
		instructions <- &DrawingInstruction{
			Kind:        PaintInstruction,
			StrokeWidth: &scaledWidth,
			Stroke:      &p.Stroke,
			Fill:        &p.Fill,
		}
	}()

	return instructions, errs
}

// composedTransform multiplies the icon scale, the group chain and the
// path's own transform attribute, outermost first.
func (p *Path) composedTransform() mt.Transform {
	t := mt.Identity()
	if p.group.Owner != nil && p.group.Owner.Transform != nil {
		t = mt.MultiplyTransforms(t, *p.group.Owner.Transform)
	}
	for _, g := range p.groupChain() {
		if g.Transform != nil {
			t = mt.MultiplyTransforms(t, *g.Transform)
		}
	}
	if p.TransformString != "" {
		if pt, err := parseTransform(p.TransformString); err == nil {
			t = mt.MultiplyTransforms(t, pt)
		}
	}
	return t
}

// groupChain returns the enclosing groups from the outermost in.
func (p *Path) groupChain() []*Group {
	var chain []*Group
	for g := p.group; g != nil; g = g.Parent {
		chain = append([]*Group{g}, chain...)
	}
	return chain
}

func (p *Path) ownerScale() float64 {
	if p.group != nil && p.group.Owner != nil && p.group.Owner.scale != 0 {
		return p.group.Owner.scale
	}
	return 1
}

func (p *Path) parseStyle() {
	p.properties = splitStyle(p.Style)
	for key, val := range p.properties {
		switch key {
		case "stroke-width":
			if sw, err := parseFloatProperty(val); err == nil {
				p.StrokeWidth = sw
			}
		case "stroke":
			p.Stroke = val
		case "fill":
			p.Fill = val
		}
	}
}

// instructionBuilder adapts the instruction channel to the
// pathdata.Builder contract, applying the composed affine transform to
// every emitted point.
type instructionBuilder struct {
	instructions chan<- *DrawingInstruction
	transform    mt.Transform
}

func (b *instructionBuilder) point(p pathdata.Point) *Tuple {
	x, y := b.transform.Apply(p.X, p.Y)
	return &Tuple{x, y}
}

func (b *instructionBuilder) MoveTo(p pathdata.Point) {
	b.instructions <- &DrawingInstruction{Kind: MoveInstruction, M: b.point(p)}
}

func (b *instructionBuilder) LineTo(p pathdata.Point) {
	b.instructions <- &DrawingInstruction{Kind: LineInstruction, M: b.point(p)}
}

func (b *instructionBuilder) CubeTo(c1, c2, p pathdata.Point) {
	b.instructions <- &DrawingInstruction{
		Kind: CurveInstruction,
		C1:   b.point(c1),
		C2:   b.point(c2),
		T:    b.point(p),
	}
}

func (b *instructionBuilder) Close() {
	b.instructions <- &DrawingInstruction{Kind: CloseInstruction}
}
