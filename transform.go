package vectoricon

import (
	"fmt"
	"math"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// parseTransform parses a transform attribute value, a whitespace
// separated list of matrix(a b c d e f), translate(x[,y]),
// scale(x[,y]) and rotate(a[,cx,cy]) operations, into a single affine
// transform composed left to right.
func parseTransform(tstring string) (mt.Transform, error) {
	t := mt.Identity()
	l, _ := gl.Lex("tlexer", tstring)

	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return t, nil
		case gl.ItemError:
			return t, fmt.Errorf("error lexing transform %q: %s", tstring, i.Value)
		case gl.ItemWord:
			op, err := parseTransformOp(i.Value, l)
			if err != nil {
				return t, err
			}
			t = mt.MultiplyTransforms(t, op)
		}
	}
}

func parseTransformOp(name string, l *gl.Lexer) (mt.Transform, error) {
	args, err := parseTransformArgs(l)
	if err != nil {
		return mt.Identity(), fmt.Errorf("transform %s: %w", name, err)
	}

	switch name {
	case "matrix":
		if len(args) != 6 {
			return mt.Identity(), fmt.Errorf("transform matrix: expected 6 arguments, got %d", len(args))
		}
		t := mt.Identity()
		t[0][0] = args[0]
		t[1][0] = args[1]
		t[0][1] = args[2]
		t[1][1] = args[3]
		t[0][2] = args[4]
		t[1][2] = args[5]
		return t, nil

	case "translate":
		x, y, err := oneOrTwo(args, 0)
		if err != nil {
			return mt.Identity(), fmt.Errorf("transform translate: %w", err)
		}
		return translation(x, y), nil

	case "scale":
		if len(args) == 0 {
			return mt.Identity(), fmt.Errorf("transform scale: expected 1 or 2 arguments, got 0")
		}
		x, y, err := oneOrTwo(args, args[0])
		if err != nil {
			return mt.Identity(), fmt.Errorf("transform scale: %w", err)
		}
		t := mt.Identity()
		t.Scale(x, y)
		return t, nil

	case "rotate":
		switch len(args) {
		case 1:
			return rotation(args[0]), nil
		case 3:
			t := mt.MultiplyTransforms(translation(args[1], args[2]), rotation(args[0]))
			return mt.MultiplyTransforms(t, translation(-args[1], -args[2])), nil
		default:
			return mt.Identity(), fmt.Errorf("transform rotate: expected 1 or 3 arguments, got %d", len(args))
		}

	default:
		return mt.Identity(), fmt.Errorf("unsupported transform %q", name)
	}
}

func oneOrTwo(args []float64, second float64) (float64, float64, error) {
	switch len(args) {
	case 1:
		return args[0], second, nil
	case 2:
		return args[0], args[1], nil
	default:
		return 0, 0, fmt.Errorf("expected 1 or 2 arguments, got %d", len(args))
	}
}

// translation builds a translation by x,y.
func translation(x, y float64) mt.Transform {
	t := mt.Identity()
	t[0][2] = x
	t[1][2] = y
	return t
}

// rotation builds a rotation by deg degrees about the origin.
func rotation(deg float64) mt.Transform {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	t := mt.Identity()
	t[0][0] = cos
	t[0][1] = -sin
	t[1][0] = sin
	t[1][1] = cos
	return t
}

// parseTransformArgs consumes a parenthesized, comma or whitespace
// separated number list.
func parseTransformArgs(l *gl.Lexer) ([]float64, error) {
	i := l.NextItem()
	if i.Type != gl.ItemParan {
		return nil, fmt.Errorf("expected opening parenthesis, got %q", i.Value)
	}

	var args []float64
	for {
		l.ConsumeWhiteSpace()
		if l.PeekItem().Type == gl.ItemParan {
			l.NextItem()
			return args, nil
		}
		n, err := parseNumber(l.NextItem())
		if err != nil {
			return nil, err
		}
		args = append(args, n)
		l.ConsumeComma()
	}
}

// parseNumber converts a lexer number item into a float
func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected a number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing number %q: %w", i.Value, err)
	}
	return n, nil
}
