package pathdata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type builderOp struct {
	Op  string
	Pts []Point
}

// recorder captures builder calls so interpretation can be checked
// without a real path backend.
type recorder struct {
	ops []builderOp
}

func (r *recorder) MoveTo(p Point) { r.ops = append(r.ops, builderOp{"move", []Point{p}}) }
func (r *recorder) LineTo(p Point) { r.ops = append(r.ops, builderOp{"line", []Point{p}}) }
func (r *recorder) CubeTo(c1, c2, p Point) {
	r.ops = append(r.ops, builderOp{"cube", []Point{c1, c2, p}})
}
func (r *recorder) Close() { r.ops = append(r.ops, builderOp{"close", nil}) }

func interpret(t *testing.T, data string, cur Cursor) (Cursor, *recorder) {
	t.Helper()
	cmds, err := Parse(data)
	require.NoError(t, err)
	rec := &recorder{}
	return Interpret(cmds, cur, 1, rec), rec
}

func TestAbsoluteMoveIgnoresPrior(t *testing.T) {
	priors := []Cursor{
		{},
		{At: Point{7, -3}},
		{At: Point{1, 1}, Ctrl: Point{9, 9}, Kind: CtrlCubic},
	}
	for _, prior := range priors {
		cur, _ := interpret(t, "M3,4", prior)
		require.Equal(t, Point{3, 4}, cur.At)
		require.Equal(t, Point{3, 4}, cur.Start)
	}
}

func TestRelativeLine(t *testing.T) {
	cur, rec := interpret(t, "l5,6", Cursor{At: Point{1, 1}, Start: Point{1, 1}})
	require.Equal(t, Point{6, 7}, cur.At)
	require.Equal(t, []builderOp{{"line", []Point{{6, 7}}}}, rec.ops)
}

func TestRelativeCubic(t *testing.T) {
	_, rec := interpret(t, "c2,2 3,2 8,2", Cursor{At: Point{6, 2}, Start: Point{6, 2}})

	want := []builderOp{
		{"cube", []Point{{8, 4}, {9, 4}, {14, 4}}},
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Fatalf("cubic geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestSmoothCurveReflection(t *testing.T) {
	_, rec := interpret(t, "M0 0 C1 2 3 4 5 6 S9 9 10 10", Cursor{})

	require.Len(t, rec.ops, 3)
	smooth := rec.ops[2]
	require.Equal(t, "cube", smooth.Op)
	// reflection of control2 (3,4) through the end point (5,6)
	require.Equal(t, Point{7, 8}, smooth.Pts[0])
}

func TestSmoothCurveAfterLine(t *testing.T) {
	_, rec := interpret(t, "M0 0 L1 1 S4 4 5 5", Cursor{})

	smooth := rec.ops[2]
	require.Equal(t, "cube", smooth.Op)
	// no prior curve: the implicit control point is the current point
	require.Equal(t, Point{1, 1}, smooth.Pts[0])
}

func TestSmoothQuadIgnoresCubicControl(t *testing.T) {
	_, rec := interpret(t, "M0 0 C1 2 3 4 5 6 T10 10", Cursor{})

	smooth := rec.ops[2]
	require.Equal(t, "cube", smooth.Op)
	// the cubic's control point must not leak into a smooth quadratic:
	// its control defaults to the current point, so the elevated
	// cubic's first control point is the current point itself
	require.Equal(t, Point{5, 6}, smooth.Pts[0])
}

func TestQuadElevation(t *testing.T) {
	_, rec := interpret(t, "M0 0 Q3 0 6 0", Cursor{})

	want := builderOp{"cube", []Point{{2, 0}, {4, 0}, {6, 0}}}
	require.Equal(t, want, rec.ops[1])
}

func TestCloseResetsToSubpathStart(t *testing.T) {
	cur, rec := interpret(t, "M1 1 L2 2 Z l1 0", Cursor{})

	require.Equal(t, Point{2, 1}, cur.At)
	require.Equal(t, builderOp{"close", nil}, rec.ops[2])
	require.Equal(t, builderOp{"line", []Point{{2, 1}}}, rec.ops[3])
}

func TestZeroRadiusArcIsLine(t *testing.T) {
	cur, rec := interpret(t, "M0 0 A0 5 0 0 1 10 0", Cursor{})

	require.Equal(t, Point{10, 0}, cur.At)
	require.Equal(t, builderOp{"line", []Point{{10, 0}}}, rec.ops[1])
}

func TestArcEmitsCubics(t *testing.T) {
	cur, rec := interpret(t, "M5 0 A5 5 0 0 1 -5 0", Cursor{})

	require.Equal(t, Point{-5, 0}, cur.At)
	require.Equal(t, CtrlNone, cur.Kind)
	require.Len(t, rec.ops, 1+arcSegments)
	for _, op := range rec.ops[1:] {
		require.Equal(t, "cube", op.Op)
	}
	last := rec.ops[len(rec.ops)-1]
	require.Equal(t, Point{-5, 0}, last.Pts[2])
}

func TestScaleAppliedAtEmission(t *testing.T) {
	cmds, err := Parse("M1 2 l1 0")
	require.NoError(t, err)

	rec := &recorder{}
	cur := Interpret(cmds, Cursor{}, 10, rec)

	// emitted geometry is scaled, the cursor stays in viewport units
	require.Equal(t, Point{2, 2}, cur.At)
	require.Equal(t, []builderOp{
		{"move", []Point{{10, 20}}},
		{"line", []Point{{20, 20}}},
	}, rec.ops)
}
