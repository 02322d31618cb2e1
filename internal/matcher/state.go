// Package matcher executes a compiled syntax.Node tree against an input
// string. It is a direct recursion over node kinds, using a
// continuation-passing style so that greedy quantifiers can backtrack to
// shorter repetition counts while keeping capture state consistent with
// whichever repetition count is ultimately accepted.
package matcher

import "github.com/grepkit/mygrep/internal/syntax"

// state carries the input and the capture vector through one match
// attempt. It is created fresh per attempt; nothing is shared across
// attempts. The vector is sized to the pattern's own group count: group
// indices are unbounded, only back-reference numbering is capped at 9.
type state struct {
	input    []rune
	captures []string
	captured []bool
}

func newState(input []rune, numGroups int) *state {
	return &state{
		input:    input,
		captures: make([]string, numGroups+1),
		captured: make([]bool, numGroups+1),
	}
}

type captureSnapshot struct {
	captures []string
	captured []bool
}

func (st *state) snapshot() captureSnapshot {
	snap := captureSnapshot{
		captures: make([]string, len(st.captures)),
		captured: make([]bool, len(st.captured)),
	}
	copy(snap.captures, st.captures)
	copy(snap.captured, st.captured)
	return snap
}

func (st *state) restore(s captureSnapshot) {
	copy(st.captures, s.captures)
	copy(st.captured, s.captured)
}

// Captures returns the populated capture groups after a successful match,
// keyed by capture index (1-based).
func (st *state) Captures() map[int]string {
	out := make(map[int]string)
	for i := 1; i < len(st.captured); i++ {
		if st.captured[i] {
			out[i] = st.captures[i]
		}
	}
	return out
}

// maxCaptureIndex returns the largest Group capture index appearing
// anywhere in the tree, so a state's capture vector can be sized once per
// compiled pattern instead of per match attempt.
func maxCaptureIndex(n syntax.Node) int {
	switch x := n.(type) {
	case *syntax.Group:
		m := x.Index
		if c := maxCaptureIndex(x.Child); c > m {
			m = c
		}
		return m
	case *syntax.Sequence:
		return maxOverChildren(x.Children)
	case *syntax.Alternation:
		return maxOverChildren(x.Children)
	case *syntax.Repetition:
		return maxCaptureIndex(x.Child)
	case *syntax.StartAnchor:
		return maxCaptureIndex(x.Child)
	case *syntax.EndAnchor:
		return maxCaptureIndex(x.Child)
	default:
		return 0
	}
}

func maxOverChildren(children []syntax.Node) int {
	m := 0
	for _, c := range children {
		if v := maxCaptureIndex(c); v > m {
			m = v
		}
	}
	return m
}
