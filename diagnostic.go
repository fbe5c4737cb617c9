package parsec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/repr"
)

// Render formats f as a multi-line diagnostic: the input line containing
// f.Pos at the top (other lines are not shown), then one row per parse-tree
// node touching that line (innermost/leftmost first) with a span marker
// aligned to its [Start,End) range clipped to the line, and the node's
// outcome and label printed past the longest span. The exact ASCII layout
// is not part of the contract beyond being deterministic for a given tree
// (spec §4.8); callers should assert structural properties, not exact
// strings.
func Render(f *Failure, source string) string {
	if f == nil || f.Tree == nil {
		return ""
	}
	src := []rune(source)
	collapsed := collapseSplices(f.Tree)

	lineStart, lineEnd := lineSpan(src, f.Pos)
	loc := locate(src, f.Pos)

	var out strings.Builder
	fmt.Fprintf(&out, "%d | %s\n", loc.Line, string(src[lineStart:lineEnd]))

	prefix := fmt.Sprintf("%d | ", loc.Line)
	indent := len(prefix)

	rows := flattenForDisplay(collapsed, lineStart, lineEnd)
	maxCol := 0
	for _, r := range rows {
		if c := r.end - lineStart; c > maxCol {
			maxCol = c
		}
	}
	labelCol := indent + maxCol + 2

	for _, r := range rows {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", indent))
		line.WriteString(strings.Repeat(" ", r.start-lineStart))
		line.WriteString(marker(r))
		for line.Len() < labelCol {
			line.WriteByte(' ')
		}
		fmt.Fprintf(&line, "%s %s", r.node.Outcome, r.node.Label)
		out.WriteString(line.String())
		out.WriteByte('\n')
	}
	return out.String()
}

type displayRow struct {
	node       *Node
	start, end int
	depth      int
}

// flattenForDisplay walks the (already splice-collapsed) tree and keeps
// only nodes whose range intersects the affected line, with each row's
// range clipped to that line, ordering them innermost/leftmost first:
// deepest nodes first, ties broken by start offset.
func flattenForDisplay(root *Node, lineStart, lineEnd int) []displayRow {
	var rows []displayRow
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n.Start <= lineEnd && n.End >= lineStart {
			start, end := n.Start, n.End
			if start < lineStart {
				start = lineStart
			}
			if end > lineEnd {
				end = lineEnd
			}
			rows = append(rows, displayRow{node: n, start: start, end: end, depth: depth})
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].depth != rows[j].depth {
			return rows[i].depth > rows[j].depth
		}
		return rows[i].start < rows[j].start
	})
	return rows
}

func marker(r displayRow) string {
	width := r.end - r.start
	if r.node.Outcome == Failed {
		return "V"
	}
	switch {
	case width <= 0:
		return "|"
	case width == 1:
		return "-"
	default:
		return "\\" + strings.Repeat("-", width-2) + "/"
	}
}

// Dump renders the parse tree rooted at n with github.com/alecthomas/repr,
// for readable ad-hoc debugging alongside the ASCII diagnostic above.
func Dump(n *Node) string {
	return repr.String(n, repr.Indent("  "))
}
