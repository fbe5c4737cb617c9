package parsec

import (
	"fmt"
	"strings"
)

// Maybe is the optional(p) result: Ok is false when p failed and was
// restored ("absent"); Value is the zero value of T in that case.
type Maybe[T any] struct {
	Ok    bool
	Value T
}

// Pair is the result of Seq2: both of its operands' results, kept.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Or tries each parser in order under its own checkpoint, left to right,
// stopping at the first success; on total failure it returns the last
// parser's failure. Or with no parsers always fails, matching Unparseable.
func Or[T any](parsers ...Parser[T]) Parser[T] {
	return Parser[T]{Label: "|", Body: func(ctx *Context) (T, error) {
		var zero T
		if len(parsers) == 0 {
			return zero, NewFailure("", "", ctx.Input.Pos())
		}
		var lastErr error
		for _, p := range parsers {
			v, err := withCheckpoint(ctx, func() (T, error) { return Invoke(ctx, p) })
			if err == nil {
				return v, nil
			}
			lastErr = err
		}
		return zero, lastErr
	}}
}

// Choice is unparseable | p1 | ... | pn; an empty choice always fails.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	all := make([]Parser[T], 0, len(parsers)+1)
	all = append(all, Unparseable[T]())
	all = append(all, parsers...)
	return As(Or(all...), "choice")
}

// SeqThen runs p then q, keeping q's result ("p > q"). Neither side is
// checkpointed here; an outer checkpoint is responsible for restoring on
// failure.
func SeqThen[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Parser[B]{Label: "seq", Body: func(ctx *Context) (B, error) {
		var zero B
		if _, err := Invoke(ctx, p); err != nil {
			return zero, err
		}
		return Invoke(ctx, q)
	}}
}

// SeqSkip runs p then q, keeping p's result ("p < q").
func SeqSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Parser[A]{Label: "seq", Body: func(ctx *Context) (A, error) {
		var zero A
		a, err := Invoke(ctx, p)
		if err != nil {
			return zero, err
		}
		if _, err := Invoke(ctx, q); err != nil {
			return zero, err
		}
		return a, nil
	}}
}

// Seq2 runs p then q, keeping both results as a Pair.
func Seq2[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Parser[Pair[A, B]]{Label: "seq", Body: func(ctx *Context) (Pair[A, B], error) {
		var zero Pair[A, B]
		a, err := Invoke(ctx, p)
		if err != nil {
			return zero, err
		}
		b, err := Invoke(ctx, q)
		if err != nil {
			return zero, err
		}
		return Pair[A, B]{First: a, Second: b}, nil
	}}
}

// Group runs every parser in order; its result is the sequence of their
// results. Heterogeneous grammars instantiate this with Parser[any].
func Group[T any](parsers ...Parser[T]) Parser[[]T] {
	return Parser[[]T]{Label: "group", Body: func(ctx *Context) ([]T, error) {
		vals := make([]T, 0, len(parsers))
		for _, p := range parsers {
			v, err := Invoke(ctx, p)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		return vals, nil
	}}
}

// Map runs p and applies f to its result.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Parser[U]{Label: "map", Body: func(ctx *Context) (U, error) {
		var zero U
		v, err := Invoke(ctx, p)
		if err != nil {
			return zero, err
		}
		return f(v), nil
	}}
}

// Join concatenates the sequence of strings p yields.
func Join(p Parser[[]string]) Parser[string] {
	return Parser[string]{Label: "join", Body: func(ctx *Context) (string, error) {
		vs, err := Invoke(ctx, p)
		if err != nil {
			return "", err
		}
		return strings.Join(vs, ""), nil
	}}
}

// Single wraps p's result in a one-element slice.
func Single[T any](p Parser[T]) Parser[[]T] {
	return Parser[[]T]{Label: "single", Body: func(ctx *Context) ([]T, error) {
		v, err := Invoke(ctx, p)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	}}
}

// ConcatSeq runs p then q and concatenates their sequence results.
func ConcatSeq[T any](p, q Parser[[]T]) Parser[[]T] {
	return Parser[[]T]{Label: "concat", Body: func(ctx *Context) ([]T, error) {
		a, err := Invoke(ctx, p)
		if err != nil {
			return nil, err
		}
		b, err := Invoke(ctx, q)
		if err != nil {
			return nil, err
		}
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		return out, nil
	}}
}

// ConcatStr runs p then q and concatenates their string results.
func ConcatStr(p, q Parser[string]) Parser[string] {
	return Parser[string]{Label: "concat", Body: func(ctx *Context) (string, error) {
		a, err := Invoke(ctx, p)
		if err != nil {
			return "", err
		}
		b, err := Invoke(ctx, q)
		if err != nil {
			return "", err
		}
		return a + b, nil
	}}
}

// Optional tries p under a checkpoint; on failure it restores and yields
// Maybe[T]{Ok: false}, "absent".
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return Parser[Maybe[T]]{Label: "optional", Body: func(ctx *Context) (Maybe[T], error) {
		v, err := withCheckpoint(ctx, func() (T, error) { return Invoke(ctx, p) })
		if err != nil {
			return Maybe[T]{}, nil
		}
		return Maybe[T]{Ok: true, Value: v}, nil
	}}
}

// Many repeatedly invokes p under a checkpoint, stopping at the first
// failure or EOF, and yields the ordered slice of successful results. Many
// never fails. If an iteration succeeds without consuming any input, Many
// stops after that iteration, so many(pure(x)) terminates.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Parser[[]T]{Label: "many", Body: func(ctx *Context) ([]T, error) {
		var results []T
		for {
			if ctx.Input.Eof() {
				break
			}
			startPos := ctx.Input.Pos()
			v, err := withCheckpoint(ctx, func() (T, error) { return Invoke(ctx, p) })
			if err != nil {
				break
			}
			results = append(results, v)
			if ctx.Input.Pos() == startPos {
				break
			}
		}
		return results, nil
	}}
}

// Many1 is single(p) + many(p): it fails iff the first attempt fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return As(ConcatSeq(Single(p), Many(p)), "many1")
}

// SepBy1 is single(p) + many(sep > p): one or more p, separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return As(ConcatSeq(Single(p), Many(SeqThen(sep, p))), "sep_by_1")
}

// SepBy is SepBy1, or the empty slice if the first p fails.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Parser[[]T]{Label: "sep_by", Body: func(ctx *Context) ([]T, error) {
		maybe, _ := Invoke(ctx, Optional(SepBy1(p, sep)))
		if maybe.Ok {
			return maybe.Value, nil
		}
		return []T{}, nil
	}}
}

// Between is l > p < r.
func Between[L, T, R any](l Parser[L], r Parser[R], p Parser[T]) Parser[T] {
	return As(SeqSkip(SeqThen(l, p), r), "between")
}

// Peek runs p under a checkpoint that always restores, yielding p's result
// on success or p's failure on failure, either way leaving input untouched.
func Peek[T any](p Parser[T]) Parser[T] {
	return Parser[T]{Label: "peek", Body: func(ctx *Context) (T, error) {
		return peekCheckpoint(ctx, func() (T, error) { return Invoke(ctx, p) })
	}}
}

// ThatFails is p.that_fails(q): a negative look-ahead gate. It tries q
// under a checkpoint that always restores; if q succeeds, ThatFails fails
// (reporting q's result as "actual", "(not q)" as expected); otherwise it
// runs p.
func ThatFails[T, Q any](p Parser[T], q Parser[Q]) Parser[T] {
	return Parser[T]{Label: "that_fails", Body: func(ctx *Context) (T, error) {
		var zero T
		qv, qerr := peekCheckpoint(ctx, func() (Q, error) { return Invoke(ctx, q) })
		if qerr == nil {
			return zero, NewFailure("(not "+q.Label+")", fmt.Sprintf("%v", qv), ctx.Input.Pos())
		}
		return Invoke(ctx, p)
	}}
}

// TakeUntil repeatedly consumes one character via with (AnyChar by default)
// until stop would succeed (checked via Peek, so stop is never itself
// consumed), returning the accumulated string.
func TakeUntil[S any](stop Parser[S], with ...Parser[rune]) Parser[string] {
	withP := AnyChar()
	if len(with) > 0 {
		withP = with[0]
	}
	return Parser[string]{Label: "take_until", Body: func(ctx *Context) (string, error) {
		var b strings.Builder
		for {
			if _, err := peekCheckpoint(ctx, func() (S, error) { return Invoke(ctx, stop) }); err == nil {
				return b.String(), nil
			}
			c, err := Invoke(ctx, withP)
			if err != nil {
				return b.String(), err
			}
			b.WriteRune(c)
		}
	}}
}
