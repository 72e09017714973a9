package vectoricon

// InstructionType tells the consuming path drawing library which
// primitive it has to call
type InstructionType int

// These are the instruction types emitted while replaying a path
// element's command list
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CurveInstruction
	CloseInstruction
	PaintInstruction
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shapes contained in an icon document. Curve
// instructions carry cubic control points; the paint instruction ends a
// path element and carries its resolved style.
type DrawingInstruction struct {
	Kind        InstructionType
	M           *Tuple
	C1          *Tuple
	C2          *Tuple
	T           *Tuple
	StrokeWidth *float64
	Stroke      *string
	Fill        *string
}
