package pathdata

import (
	"fmt"
	"strings"
)

// Parse failures are plain values. Nothing in this package panics on bad
// input; every combinator hands its failure back to the caller, and
// higher-level parsers wrap it with more context instead of discarding it.

// LiteralError reports that an expected token was absent at an offset.
type LiteralError struct {
	Literal string
	Offset  int
	Snippet string
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("expected %q at offset %d near %q", e.Literal, e.Offset, e.Snippet)
}

// NoNumberError reports that neither an integer nor a fractional digit
// run was found where a number was required.
type NoNumberError struct {
	Offset  int
	Snippet string
}

func (e *NoNumberError) Error() string {
	return fmt.Sprintf("expected a number at offset %d near %q", e.Offset, e.Snippet)
}

// MalformedNumberError reports a digit run that started like a number
// but broke off, such as "1." without fraction digits or "2e" without
// an exponent.
type MalformedNumberError struct {
	Offset  int
	Snippet string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number at offset %d near %q", e.Offset, e.Snippet)
}

// ArityError reports a repeated coordinate group that stopped short of
// the command's arity.
type ArityError struct {
	Expected int
	Found    int
	Offset   int
	Cause    error
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %d numbers but found %d at offset %d", e.Expected, e.Found, e.Offset)
}

func (e *ArityError) Unwrap() error { return e.Cause }

// NoMatchError reports that a one-or-more repetition matched zero times.
type NoMatchError struct {
	Offset int
	Cause  error
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matches at offset %d: %v", e.Offset, e.Cause)
}

func (e *NoMatchError) Unwrap() error { return e.Cause }

// UnknownCommandError reports a character that is not a path command
// letter where one was required.
type UnknownCommandError struct {
	Char   byte
	Offset int
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown path command %q at offset %d", string(e.Char), e.Offset)
}

// CommandError reports that a command letter was recognized but its
// argument list could not be parsed. Causes holds the failure of every
// candidate parser tried at the offset.
type CommandError struct {
	Offset int
	Causes []error
}

func (e *CommandError) Error() string {
	msgs := make([]string, 0, len(e.Causes))
	for _, c := range e.Causes {
		msgs = append(msgs, c.Error())
	}
	return fmt.Sprintf("malformed path command at offset %d: %s", e.Offset, strings.Join(msgs, "; "))
}

// Unwrap exposes the most specific cause so that callers can match the
// underlying failure with errors.As.
func (e *CommandError) Unwrap() error {
	if len(e.Causes) == 0 {
		return nil
	}
	return e.Causes[0]
}

// snippet returns a short window of the input around pos for
// diagnostics.
func snippet(in []byte, pos int) string {
	lo := pos - 8
	if lo < 0 {
		lo = 0
	}
	hi := pos + 8
	if hi > len(in) {
		hi = len(in)
	}
	return string(in[lo:hi])
}
