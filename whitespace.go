package parsec

import "unicode"

// Whitespace is a settable binding slot for whitespace_1 (spec §4.6, §9):
// OneOrMore, Zero and Spaced all dispatch through whichever parser
// SetOneOrMore last installed, read at invocation time rather than at the
// time OneOrMore/Zero/Spaced were called — so a grammar built before a
// SetOneOrMore call still picks up the override.
type Whitespace struct {
	oneOrMore Parser[string]
}

// NewWhitespace builds a Whitespace bound to the default definition: one or
// more Unicode whitespace characters.
func NewWhitespace() *Whitespace {
	return &Whitespace{oneOrMore: defaultWhitespace1()}
}

func defaultWhitespace1() Parser[string] {
	return As(Map(Many1(CharMatching("<whitespace>", unicode.IsSpace)), runesToString), "whitespace_1")
}

func runesToString(rs []rune) string { return string(rs) }

// SetOneOrMore replaces the parser OneOrMore/Zero/Spaced dispatch through,
// e.g. to also accept comments as whitespace.
func (w *Whitespace) SetOneOrMore(p Parser[string]) {
	w.oneOrMore = p
}

// OneOrMore is whitespace_1: it re-reads w's current binding on every
// invocation.
func (w *Whitespace) OneOrMore() Parser[string] {
	return Parser[string]{Label: "whitespace_1", Body: func(ctx *Context) (string, error) {
		return Invoke(ctx, w.oneOrMore)
	}}
}

// Zero is whitespace = whitespace_1 | pure("").
func (w *Whitespace) Zero() Parser[string] {
	return As(Or(w.OneOrMore(), Pure("")), "whitespace")
}

// Spaced wraps p as whitespace > p < whitespace, both ends dispatching
// through w's current binding.
func Spaced[T any](w *Whitespace, p Parser[T]) Parser[T] {
	return As(Between(w.Zero(), w.Zero(), p), "spaced")
}
