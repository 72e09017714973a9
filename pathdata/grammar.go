package pathdata

// One parsing rule per command letter. Every rule consumes its letter
// followed by one-or-more repetitions of the command's fixed-arity
// coordinate group, and expands each repetition into its own command
// value. Lowercase letters produce relative commands.

// coordGroups parses one-or-more groups of exactly arity numbers. A
// trailing run of numbers that stops short of a full group is an arity
// failure, not a successful parse with leftovers.
func coordGroups(arity int) Parser[[][]float64] {
	number := Parser[float64](Number)
	groups := OneOrMore(Times(arity, number))
	return func(in []byte, pos int) ([][]float64, int, error) {
		out, next, err := groups(in, pos)
		if err != nil {
			return nil, pos, err
		}
		if _, _, err := Number(in, next); err == nil {
			_, _, aerr := Times(arity, number)(in, next)
			return nil, pos, aerr
		}
		return out, next, nil
	}
}

// cmdParser builds the parser for one command letter: the literal
// letter, then repeated coordinate groups, each mapped to a command.
func cmdParser(letter string, arity int, build func(g []float64) Command) Parser[[]Command] {
	return Seq2(Literal(letter), coordGroups(arity), func(_ string, groups [][]float64) []Command {
		out := make([]Command, len(groups))
		for i, g := range groups {
			out[i] = build(g)
		}
		return out
	})
}

// closeParser builds the parser for z/Z, which takes no arguments.
func closeParser(letter string) Parser[[]Command] {
	lit := Literal(letter)
	return func(in []byte, pos int) ([]Command, int, error) {
		_, next, err := lit(in, pos)
		if err != nil {
			return nil, pos, err
		}
		return []Command{ClosePath{}}, next, nil
	}
}

func moveBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command { return MoveTo{P: Point{g[0], g[1]}, Rel: rel} }
}

func lineBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command { return LineTo{P: Point{g[0], g[1]}, Rel: rel} }
}

func hlineBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command { return HLineTo{X: g[0], Rel: rel} }
}

func vlineBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command { return VLineTo{Y: g[0], Rel: rel} }
}

func curveBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command {
		return CurveTo{
			C1:  Point{g[0], g[1]},
			C2:  Point{g[2], g[3]},
			P:   Point{g[4], g[5]},
			Rel: rel,
		}
	}
}

func smoothCurveBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command {
		return SmoothCurveTo{
			C2:  Point{g[0], g[1]},
			P:   Point{g[2], g[3]},
			Rel: rel,
		}
	}
}

func quadBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command {
		return QuadTo{
			C:   Point{g[0], g[1]},
			P:   Point{g[2], g[3]},
			Rel: rel,
		}
	}
}

func smoothQuadBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command { return SmoothQuadTo{P: Point{g[0], g[1]}, Rel: rel} }
}

func arcBuild(rel bool) func([]float64) Command {
	return func(g []float64) Command {
		return ArcTo{
			R:        Point{g[0], g[1]},
			XRot:     g[2],
			LargeArc: g[3] != 0,
			Sweep:    g[4] != 0,
			P:        Point{g[5], g[6]},
			Rel:      rel,
		}
	}
}

// commandParsers lists every command rule. Command letters are unique,
// so order does not matter for correctness.
func commandParsers() []Parser[[]Command] {
	return []Parser[[]Command]{
		cmdParser("M", 2, moveBuild(false)),
		cmdParser("m", 2, moveBuild(true)),
		cmdParser("L", 2, lineBuild(false)),
		cmdParser("l", 2, lineBuild(true)),
		cmdParser("H", 1, hlineBuild(false)),
		cmdParser("h", 1, hlineBuild(true)),
		cmdParser("V", 1, vlineBuild(false)),
		cmdParser("v", 1, vlineBuild(true)),
		cmdParser("C", 6, curveBuild(false)),
		cmdParser("c", 6, curveBuild(true)),
		cmdParser("S", 4, smoothCurveBuild(false)),
		cmdParser("s", 4, smoothCurveBuild(true)),
		cmdParser("Q", 4, quadBuild(false)),
		cmdParser("q", 4, quadBuild(true)),
		cmdParser("T", 2, smoothQuadBuild(false)),
		cmdParser("t", 2, smoothQuadBuild(true)),
		cmdParser("A", 7, arcBuild(false)),
		cmdParser("a", 7, arcBuild(true)),
		closeParser("Z"),
		closeParser("z"),
	}
}

// Parse parses one path element's complete path-data string into its
// command list. The whole input must be consumed; anything left over is
// reported as a failure at the offending offset.
func Parse(data string) ([]Command, error) {
	return consumeAll([]byte(data), commandParsers())
}

// consumeAll is the top-level driver: skip trivia, try each candidate
// command parser at the current position, append the commands of the
// first that succeeds, and repeat until end of input. When no candidate
// succeeds it distinguishes an unrecognized command letter from a
// recognized letter with a malformed argument list; the latter carries
// every candidate's diagnostic.
func consumeAll(in []byte, parsers []Parser[[]Command]) ([]Command, error) {
	var cmds []Command
	pos := 0
	for {
		pos = skipTrivia(in, pos)
		if pos == len(in) {
			return cmds, nil
		}

		var causes []error
		matched := false
		for _, p := range parsers {
			v, next, err := p(in, pos)
			if err == nil {
				cmds = append(cmds, v...)
				pos = next
				matched = true
				break
			}
			// A bare literal failure means the letter itself did not
			// match; anything else means the letter matched but its
			// arguments did not.
			if _, miss := err.(*LiteralError); !miss {
				causes = append(causes, err)
			}
		}
		if matched {
			continue
		}
		if len(causes) == 0 {
			return nil, &UnknownCommandError{Char: in[pos], Offset: pos}
		}
		return nil, &CommandError{Offset: pos, Causes: causes}
	}
}
