package pathdata

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type GrammarTest struct {
	Description string
	Data        string
	Commands    []Command
}

var grammarTests = []GrammarTest{
	{
		"absolute move and lines",
		"M0 0 L100 0 100 100 L0 100 Z",
		[]Command{
			MoveTo{P: Point{0, 0}},
			LineTo{P: Point{100, 0}},
			LineTo{P: Point{100, 100}},
			LineTo{P: Point{0, 100}},
			ClosePath{},
		},
	},
	{
		"relative lines",
		"m1,2 l3,4 5,6",
		[]Command{
			MoveTo{P: Point{1, 2}, Rel: true},
			LineTo{P: Point{3, 4}, Rel: true},
			LineTo{P: Point{5, 6}, Rel: true},
		},
	},
	{
		"horizontal and vertical runs",
		"M0 0 h100 50 V100 50",
		[]Command{
			MoveTo{P: Point{0, 0}},
			HLineTo{X: 100, Rel: true},
			HLineTo{X: 50, Rel: true},
			VLineTo{Y: 100},
			VLineTo{Y: 50},
		},
	},
	{
		"relative cubic",
		"c2,2 3,2 8,2",
		[]Command{
			CurveTo{C1: Point{2, 2}, C2: Point{3, 2}, P: Point{8, 2}, Rel: true},
		},
	},
	{
		"smooth and quadratic",
		"S1 2 3 4 Q5 6 7 8 t-1,-2",
		[]Command{
			SmoothCurveTo{C2: Point{1, 2}, P: Point{3, 4}},
			QuadTo{C: Point{5, 6}, P: Point{7, 8}},
			SmoothQuadTo{P: Point{-1, -2}, Rel: true},
		},
	},
	{
		"arc with flags and exponent",
		"A25,25 -30 0,1 5e1,-25",
		[]Command{
			ArcTo{R: Point{25, 25}, XRot: -30, Sweep: true, P: Point{50, -25}},
		},
	},
	{
		"repeated cubic groups",
		"c1 1 2 2 3 3 4 4 5 5 6 6",
		[]Command{
			CurveTo{C1: Point{1, 1}, C2: Point{2, 2}, P: Point{3, 3}, Rel: true},
			CurveTo{C1: Point{4, 4}, C2: Point{5, 5}, P: Point{6, 6}, Rel: true},
		},
	},
	{
		"empty input",
		"  \n ",
		nil,
	},
}

func TestParse(t *testing.T) {
	for _, test := range grammarTests {
		cmds, err := Parse(test.Data)
		require.NoError(t, err, test.Description)
		if diff := cmp.Diff(test.Commands, cmds); diff != "" {
			t.Fatalf("%s: command mismatch (-want +got):\n%s", test.Description, diff)
		}
	}
}

func TestParseUnknownLetter(t *testing.T) {
	_, err := Parse("m 1 2 P")
	require.Error(t, err)

	var unknown *UnknownCommandError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, byte('P'), unknown.Char)
	require.Equal(t, 6, unknown.Offset)
}

func TestParseTooFewNumbers(t *testing.T) {
	_, err := Parse("l 1 2 m 3 ")
	require.Error(t, err)

	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	require.Equal(t, 2, arity.Expected)
	require.Equal(t, 1, arity.Found)
	require.Equal(t, 9, arity.Offset)
}

func TestParseTrailingPartialGroup(t *testing.T) {
	_, err := Parse("l 1 2 3")
	require.Error(t, err)

	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	require.Equal(t, 2, arity.Expected)
	require.Equal(t, 1, arity.Found)
}

func TestParseIdempotent(t *testing.T) {
	const data = "M0 0 c2,2 3,2 8,2 A5 5 0 0 1 20 20 z"

	first, err := Parse(data)
	require.NoError(t, err)
	second, err := Parse(data)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-parse differs (-first +second):\n%s", diff)
	}
}
