package parsec

import "sync"

// Lazy defers construction of the inner parser until its first invocation,
// permitting cyclic grammars, and memoizes the result so f runs at most
// once.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	var once sync.Once
	var memo Parser[T]
	return Parser[T]{Label: "lazy", Body: func(ctx *Context) (T, error) {
		once.Do(func() { memo = f() })
		return Invoke(ctx, memo)
	}}
}

// cell holds a Parser built after the value referring to it was already
// handed out — the same self-reference trick an Alias instance/body pair
// uses: a stub is built first, reads the cell at invocation time, and the
// cell is filled in immediately afterward.
type cell[T any] struct {
	p Parser[T]
}

// Recursive constructs the fixpoint of f: f receives a self-reference and
// must return the Parser to run. Because self only reads the cell when
// actually invoked (never during construction), f is free to embed self
// anywhere in the Parser tree it builds.
func Recursive[T any](f func(self Parser[T]) Parser[T]) Parser[T] {
	c := &cell[T]{}
	self := Parser[T]{Label: "recursive", Body: func(ctx *Context) (T, error) {
		return Invoke(ctx, c.p)
	}}
	c.p = f(self)
	return self
}

// Reduce implements left-recursive iteration: parse seed to get L, then
// repeatedly derive a parser from the running result via step and try it
// under a checkpoint; while it succeeds, L becomes its result, and
// iteration continues. Reduce stops — returning the last L — as soon as an
// iteration either fails or succeeds without consuming input, so that
// left-recursive grammar fragments are parsed bottom-up without unbounded
// recursion.
func Reduce[T any](seed Parser[T], step func(left T) Parser[T]) Parser[T] {
	return Parser[T]{Label: "reduce", Body: func(ctx *Context) (T, error) {
		left, err := Invoke(ctx, seed)
		if err != nil {
			var zero T
			return zero, err
		}
		for {
			startPos := ctx.Input.Pos()
			next := step(left)
			v, err := withCheckpoint(ctx, func() (T, error) { return Invoke(ctx, next) })
			if err != nil {
				break
			}
			left = v
			if ctx.Input.Pos() == startPos {
				break
			}
		}
		return left, nil
	}}
}
