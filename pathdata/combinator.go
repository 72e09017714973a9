// Package pathdata parses the SVG path-data mini-language into typed
// drawing commands and interprets them as absolute geometry.
//
// Parsing is split into small composable parsers over a (input,
// position) pair. A parser never mutates shared state, so distinct
// parses may run concurrently, and re-parsing the same input always
// yields the same commands.
package pathdata

// Parser is the uniform contract of every parsing function: given an
// input buffer and a position it either succeeds with a value and the
// next position, or fails with a typed error. On failure the returned
// position is the caller's original one.
type Parser[T any] func(in []byte, pos int) (T, int, error)

// OneOrMore applies p repeatedly until it fails, succeeding with the
// accumulated values if p matched at least once. A zero-match run fails
// with a NoMatchError wrapping p's first failure.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(in []byte, pos int) ([]T, int, error) {
		var out []T
		for {
			v, next, err := p(in, pos)
			if err != nil {
				if len(out) == 0 {
					return nil, pos, &NoMatchError{Offset: pos, Cause: err}
				}
				return out, pos, nil
			}
			out = append(out, v)
			pos = next
		}
	}
}

// Times applies p exactly n times. Fewer than n successes fail with an
// ArityError carrying the expected and found counts.
func Times[T any](n int, p Parser[T]) Parser[[]T] {
	return func(in []byte, pos int) ([]T, int, error) {
		out := make([]T, 0, n)
		cur := pos
		for i := 0; i < n; i++ {
			v, next, err := p(in, cur)
			if err != nil {
				return nil, pos, &ArityError{Expected: n, Found: i, Offset: cur, Cause: err}
			}
			out = append(out, v)
			cur = next
		}
		return out, cur, nil
	}
}

// Seq2 applies pa then pb, threading the position, and joins their
// results. The first failure short-circuits.
func Seq2[A, B, R any](pa Parser[A], pb Parser[B], join func(A, B) R) Parser[R] {
	return func(in []byte, pos int) (R, int, error) {
		var zero R
		a, next, err := pa(in, pos)
		if err != nil {
			return zero, pos, err
		}
		b, next, err := pb(in, next)
		if err != nil {
			return zero, pos, err
		}
		return join(a, b), next, nil
	}
}

// Seq3 applies pa, pb and pc in order and joins their results.
func Seq3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C], join func(A, B, C) R) Parser[R] {
	return func(in []byte, pos int) (R, int, error) {
		var zero R
		a, next, err := pa(in, pos)
		if err != nil {
			return zero, pos, err
		}
		b, next, err := pb(in, next)
		if err != nil {
			return zero, pos, err
		}
		c, next, err := pc(in, next)
		if err != nil {
			return zero, pos, err
		}
		return join(a, b, c), next, nil
	}
}
