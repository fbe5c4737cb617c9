package parsec

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// diffRender returns a unified diff between want and got, empty if they
// match. Multi-line ASCII diagnostics are awkward to compare with a single
// string-equality assertion; a unified diff is the practical way to read
// what differs.
func diffRender(t *testing.T, want, got string) string {
	t.Helper()
	edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
	return fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits))
}

func TestRenderContainsLabelsAndOutcomes(t *testing.T) {
	// (literal("foo") < eof).parse("foobar") is scenario 6 from §8: a
	// successful span under "foo" and a failure at the character after.
	_, err := SeqSkip(Literal("foo"), EOF()).Parse("foobar")
	assert.Error(t, err)

	f, ok := err.(*Failure)
	assert.True(t, ok)

	rendered := Render(f, "foobar")
	assert.True(t, strings.Contains(rendered, "foobar"), "diagnostic should show the offending input line")
	assert.True(t, strings.Contains(rendered, "failure"), "diagnostic should show the failing node's outcome")
	assert.True(t, strings.Contains(rendered, "<eof>"), "diagnostic should name the failing parser")
	assert.True(t, strings.Contains(rendered, "success"), "the successful literal(\"foo\") span should also be shown")

	if d := diffRender(t, rendered, Render(f, "foobar")); d != "" {
		t.Fatalf("rendering should be deterministic for a given tree, got diff:\n%s", d)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	_, err1 := Literal("foo").Parse("bar")
	_, err2 := Literal("foo").Parse("bar")

	f1 := err1.(*Failure)
	f2 := err2.(*Failure)

	r1 := Render(f1, "bar")
	r2 := Render(f2, "bar")

	if d := diffRender(t, r1, r2); d != "" {
		t.Fatalf("two parses of the same input should render identically, got diff:\n%s", d)
	}
}

func TestSpliceCollapsesIntermediateNodes(t *testing.T) {
	// A choice built as a binary "|" chain: Or(Or(a, b), c). Marking the
	// outermost Or as a splice-start and every leaf as a splice-end hides
	// the intermediate "|" node the chain is built from, per §4.7.
	a := SpliceEnd(Literal("a"))
	b := SpliceEnd(Literal("b"))
	c := SpliceEnd(Literal("c"))
	outer := SpliceStart(Or(Or(a, b), c))

	root := &Node{Label: "<root>"}
	ctx := &Context{Input: NewBackedInput(NewStringSource("b")), Parent: root}
	_, err := Invoke(ctx, outer)
	assert.NoError(t, err)

	collapsed := collapseSplices(root)
	assert.Equal(t, 1, len(collapsed.Children))
	outerNode := collapsed.Children[0]
	assert.True(t, outerNode.SpliceStart)
	// The intermediate inner "|" node is gone: "a" and "b" are reparented
	// directly under the splice-start node.
	assert.Equal(t, 2, len(outerNode.Children))
	assert.Equal(t, a.Label, outerNode.Children[0].Label)
	assert.Equal(t, b.Label, outerNode.Children[1].Label)
}

func TestDumpIncludesLabels(t *testing.T) {
	root := &Node{Label: "<root>", Children: []*Node{
		{Label: "foo", Outcome: Success},
	}}
	dump := Dump(root)
	assert.True(t, strings.Contains(dump, "foo"))
}
