package parsec

import "errors"

// Parser is a labeled, invocable descriptor: given a Context it either
// produces a T or fails. The same Parser value may be invoked on any number
// of inputs. Label is a literal rendering of the surface syntax used to
// build it ("foo", "<any-char>") or a short combinator name ("|", "seq",
// "many"); it is empty only for a Parser built directly without one.
type Parser[T any] struct {
	Label string
	Body  func(ctx *Context) (T, error)

	// SpliceStart/SpliceEnd are the optional splice markers of §4.2/§4.7:
	// properties of the parser itself, copied onto the tree node Invoke
	// creates for it.
	SpliceStart bool
	SpliceEnd   bool
}

// LabelText implements the small interface Define and As use to read a
// Parser's label back out of an untyped argument list.
func (p Parser[T]) LabelText() string { return p.Label }

// Invoke is the one path through which any sub-parser is ever run. It
// appends a tree node under ctx.Parent, makes that node the parent for the
// duration of p's body, and on return records the node's outcome and input
// range. On failure, if p has an explicit label, the failure's Expected
// field is overwritten with that label as it propagates upward.
func Invoke[T any](ctx *Context, p Parser[T]) (T, error) {
	start := ctx.Input.Pos()
	node := &Node{Label: p.Label, Start: start, SpliceStart: p.SpliceStart, SpliceEnd: p.SpliceEnd}
	parent := ctx.Parent
	parent.Children = append(parent.Children, node)
	ctx.Parent = node

	val, err := p.Body(ctx)

	ctx.Parent = parent
	node.End = ctx.Input.Pos()

	if err != nil {
		node.Outcome = Failed
		if p.Label != "" {
			var f *Failure
			if errors.As(err, &f) {
				f.Expected = p.Label
			}
		}
		var zero T
		return zero, err
	}
	node.Outcome = Success
	return val, nil
}

// Parse runs p over input from the start, under a synthetic root tree node.
// On failure, the returned error is a *Failure with Tree set to the root of
// the full parse-tree trace.
func (p Parser[T]) Parse(input string) (T, error) {
	src := []rune(input)
	bi := NewBackedInput(NewStringSource(input))
	root := &Node{Label: "<parse>"}
	ctx := &Context{Input: bi, Parent: root, Source: src}

	val, err := Invoke(ctx, p)
	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			f.Tree = root
		}
		var zero T
		return zero, err
	}
	return val, nil
}

// withCheckpoint runs f under a fresh, restore-on-failure checkpoint and
// threads its typed result through BackedInput.WithCheckpoint, which only
// understands a plain func() error.
func withCheckpoint[T any](ctx *Context, f func() (T, error)) (T, error) {
	var result T
	err := ctx.Input.WithCheckpoint(func() error {
		v, e := f()
		result = v
		return e
	})
	return result, err
}

// peekCheckpoint runs f under a checkpoint that always restores, regardless
// of whether f succeeds.
func peekCheckpoint[T any](ctx *Context, f func() (T, error)) (T, error) {
	var result T
	err := ctx.Input.WithAlwaysRestore(func() error {
		v, e := f()
		result = v
		return e
	})
	return result, err
}

// As attaches name to p, replacing its label. This is the label-assignment
// operator of §6 ("a label-assignment operator attaching a name to an
// existing parser").
func As[T any](p Parser[T], name string) Parser[T] {
	p.Label = name
	return p
}
