package pathdata

import "math"

// Lexical primitives. All of them are pure functions over an immutable
// byte slice and an integer position; none of them ever mutates the
// input or shares state between calls.

// isTrivia reports whether c is one of the separators the path grammar
// allows between any two tokens.
func isTrivia(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

// skipTrivia advances pos past any run of whitespace and commas.
func skipTrivia(in []byte, pos int) int {
	for pos < len(in) && isTrivia(in[pos]) {
		pos++
	}
	return pos
}

// Literal returns a parser matching the exact byte sequence text.
func Literal(text string) Parser[string] {
	return func(in []byte, pos int) (string, int, error) {
		i := skipTrivia(in, pos)
		if i+len(text) > len(in) || string(in[i:i+len(text)]) != text {
			return "", pos, &LiteralError{Literal: text, Offset: i, Snippet: snippet(in, i)}
		}
		return text, i + len(text), nil
	}
}

// Number parses a signed decimal literal with optional fraction and
// exponent:
//
//	'-'? (digit+ ('.' digit+)? | '.' digit+) (('e'|'E') '-'? digit+)?
//
// The value is assembled by accumulation: the integer digits scale up by
// ten, the fraction digits divide down by powers of ten, and the
// exponent applies a final power of ten. At least one digit group must
// be present.
func Number(in []byte, pos int) (float64, int, error) {
	i := skipTrivia(in, pos)
	start := i

	sign := 1.0
	if i < len(in) && in[i] == '-' {
		sign = -1.0
		i++
	}

	intPart, n := digitRun(in, i)
	i += n
	sawDigits := n > 0

	frac := 0.0
	if i < len(in) && in[i] == '.' {
		i++
		d, n := digitRun(in, i)
		if n == 0 {
			if sawDigits {
				// "1." is a committed but broken literal
				return 0, pos, &MalformedNumberError{Offset: i, Snippet: snippet(in, i)}
			}
			return 0, pos, &NoNumberError{Offset: start, Snippet: snippet(in, start)}
		}
		i += n
		div := 1.0
		for k := 0; k < n; k++ {
			div *= 10
		}
		frac = d / div
		sawDigits = true
	}

	if !sawDigits {
		return 0, pos, &NoNumberError{Offset: start, Snippet: snippet(in, start)}
	}

	value := sign * (intPart + frac)

	if i < len(in) && (in[i] == 'e' || in[i] == 'E') {
		i++
		esign := 1.0
		if i < len(in) && in[i] == '-' {
			esign = -1.0
			i++
		}
		e, n := digitRun(in, i)
		if n == 0 {
			return 0, pos, &MalformedNumberError{Offset: i, Snippet: snippet(in, i)}
		}
		i += n
		scale := math.Pow10(int(e))
		if esign < 0 {
			value /= scale
		} else {
			value *= scale
		}
	}

	return value, i, nil
}

// digitRun accumulates a run of decimal digits starting at pos,
// returning the accumulated value and the number of digits consumed.
func digitRun(in []byte, pos int) (float64, int) {
	v := 0.0
	n := 0
	for pos+n < len(in) && in[pos+n] >= '0' && in[pos+n] <= '9' {
		v = v*10 + float64(in[pos+n]-'0')
		n++
	}
	return v, n
}
