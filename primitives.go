package parsec

import (
	"strings"
	"unicode"
)

// Literal matches s exactly, character for character. On mismatch it does
// not unget what it read: restoration is solely the enclosing checkpoint's
// responsibility (spec §9 open question).
func Literal(s string) Parser[string] {
	n := len([]rune(s))
	return Parser[string]{Label: quote(s), Body: func(ctx *Context) (string, error) {
		got := ctx.Input.Read(n)
		if got == s {
			return got, nil
		}
		actual := quote(got)
		if got == "" {
			actual = "<eof>"
		}
		return "", NewFailure(quote(s), actual, ctx.Input.Pos())
	}}
}

// LiteralFold is Literal, case-insensitively.
func LiteralFold(s string) Parser[string] {
	n := len([]rune(s))
	label := quote(s) + " (any case)"
	return Parser[string]{Label: label, Body: func(ctx *Context) (string, error) {
		got := ctx.Input.Read(n)
		if strings.EqualFold(got, s) {
			return got, nil
		}
		actual := quote(got)
		if got == "" {
			actual = "<eof>"
		}
		return "", NewFailure(label, actual, ctx.Input.Pos())
	}}
}

// AnyChar reads and succeeds with one character, failing only at EOF.
func AnyChar() Parser[rune] {
	return Parser[rune]{Label: "<any-char>", Body: func(ctx *Context) (rune, error) {
		s := ctx.Input.Read(1)
		if s == "" {
			return 0, NewFailure("<any-char>", "<eof>", ctx.Input.Pos())
		}
		return []rune(s)[0], nil
	}}
}

// CharClass decides whether a rune belongs to it. CharSet and RuneRange
// implement it; CharIn takes any mix of the two.
type CharClass interface {
	Contains(r rune) bool
}

// CharSet is a CharClass matching any rune present in the string.
type CharSet string

func (c CharSet) Contains(r rune) bool { return strings.ContainsRune(string(c), r) }

// RuneRange is a CharClass matching any rune in [Lo, Hi] inclusive.
type RuneRange struct {
	Lo, Hi rune
}

func (rr RuneRange) Contains(r rune) bool { return r >= rr.Lo && r <= rr.Hi }

// CharIn reads one character and succeeds iff it lies in the union of the
// given character classes.
func CharIn(classes ...CharClass) Parser[rune] {
	return Parser[rune]{Label: "<char-in>", Body: func(ctx *Context) (rune, error) {
		s := ctx.Input.Read(1)
		if s == "" {
			return 0, NewFailure("<char-in>", "<eof>", ctx.Input.Pos())
		}
		r := []rune(s)[0]
		for _, c := range classes {
			if c.Contains(r) {
				return r, nil
			}
		}
		return 0, NewFailure("<char-in>", quote(s), ctx.Input.Pos())
	}}
}

// CharMatching reads one character and succeeds iff predicate returns true
// for it.
func CharMatching(label string, predicate func(r rune) bool) Parser[rune] {
	return Parser[rune]{Label: label, Body: func(ctx *Context) (rune, error) {
		s := ctx.Input.Read(1)
		if s == "" {
			return 0, NewFailure(label, "<eof>", ctx.Input.Pos())
		}
		r := []rune(s)[0]
		if predicate(r) {
			return r, nil
		}
		return 0, NewFailure(label, quote(s), ctx.Input.Pos())
	}}
}

// EOF succeeds with no result iff input is exhausted; otherwise it fails,
// reporting a peek of the upcoming non-whitespace run as "actual".
func EOF() Parser[Unit] {
	return Parser[Unit]{Label: "<eof>", Body: func(ctx *Context) (Unit, error) {
		if ctx.Input.Eof() {
			return Unit{}, nil
		}
		peek, _ := peekCheckpoint(ctx, func() (string, error) {
			var b strings.Builder
			for !ctx.Input.Eof() && b.Len() < 20 {
				s := ctx.Input.Read(1)
				if s == "" {
					break
				}
				r := []rune(s)[0]
				if unicode.IsSpace(r) {
					break
				}
				b.WriteRune(r)
			}
			return b.String(), nil
		})
		return Unit{}, NewFailure("<eof>", quote(peek), ctx.Input.Pos())
	}}
}

// Pure succeeds consuming nothing and yields v.
func Pure[T any](v T) Parser[T] {
	return Parser[T]{Label: "pure", Body: func(ctx *Context) (T, error) {
		return v, nil
	}}
}

// Unparseable always fails without consuming; the identity of alternation.
func Unparseable[T any]() Parser[T] {
	return Parser[T]{Label: "unparseable", Body: func(ctx *Context) (T, error) {
		var zero T
		return zero, NewFailure("", "", ctx.Input.Pos())
	}}
}
