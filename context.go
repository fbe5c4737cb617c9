package parsec

// Context carries the state threaded through every parser invocation during
// one top-level parse: the backtracking input, the parse-tree node under
// which the next invocation attaches its own node, and the original source
// text (kept around only so a failure can be rendered against it).
type Context struct {
	Input  *BackedInput
	Parent *Node
	Source []rune
}
