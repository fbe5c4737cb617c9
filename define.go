package parsec

import (
	"fmt"
	"strings"
)

// labeled is implemented by every Parser[T]; it's how Define reads a
// call-site-like label back out of an untyped argument without reflection.
type labeled interface {
	LabelText() string
}

func argLabel(v any) string {
	if lv, ok := v.(labeled); ok {
		return lv.LabelText()
	}
	return fmt.Sprintf("%v", v)
}

// Define declares a named combinator: given a name and a body that builds a
// Parser from its arguments, it returns a callable that, when applied,
// returns a Parser whose label reads like source calling the combinator —
// "name(arg1.Label, arg2.Label, ...)" — with literal (non-Parser) arguments
// rendered via fmt.
//
// wrap=true (the default a caller should reach for) introduces a fresh node
// around the body-built parser, so both labels appear in the trace.
// wrap=false overwrites the body-built parser's own label instead, adding no
// extra node.
func Define[T any](name string, wrap bool, build func(args ...any) Parser[T]) func(args ...any) Parser[T] {
	return func(args ...any) Parser[T] {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = argLabel(a)
		}
		label := name + "(" + strings.Join(parts, ", ") + ")"
		inner := build(args...)
		if wrap {
			return Parser[T]{Label: label, Body: func(ctx *Context) (T, error) {
				return Invoke(ctx, inner)
			}}
		}
		return As(inner, label)
	}
}
