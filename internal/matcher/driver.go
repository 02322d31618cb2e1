package matcher

import "github.com/grepkit/mygrep/internal/syntax"

// Compiled pairs a parsed pattern with the prefilter and capture-vector
// size derived from it, so a caller that matches many lines against the
// same pattern (the front-end's line scanner) pays that cost once instead
// of per line.
type Compiled struct {
	root      syntax.Node
	numGroups int
	prefilter *literalPrefilter
}

// Compile wraps an already-parsed pattern for repeated matching.
func Compile(root syntax.Node) *Compiled {
	return &Compiled{
		root:      root,
		numGroups: maxCaptureIndex(root),
		prefilter: buildPrefilter(root),
	}
}

// MatchString reports whether s contains a match of the compiled pattern,
// and if so, the captures observed on the accepting witness.
func (c *Compiled) MatchString(s string) (bool, map[int]string) {
	if c.prefilter != nil && !c.prefilter.mayMatch(s) {
		return false, nil
	}
	return match(c.root, c.numGroups, s)
}

// Match parses no pattern state of its own; it drives root against input
// per the component design: start-anchored patterns are attempted only at
// position 0, everything else is retried at each starting position left to
// right, reporting the first success. Callers matching many lines against
// the same pattern should use Compile instead, to avoid recomputing the
// pattern's capture-group count on every call.
func Match(root syntax.Node, input string) (bool, map[int]string) {
	return match(root, maxCaptureIndex(root), input)
}

func match(root syntax.Node, numGroups int, input string) (bool, map[int]string) {
	runes := []rune(input)

	if startAnchored(root) {
		return tryAt(root, numGroups, runes, 0)
	}
	for s := 0; s <= len(runes); s++ {
		if ok, caps := tryAt(root, numGroups, runes, s); ok {
			return true, caps
		}
	}
	return false, nil
}

func tryAt(root syntax.Node, numGroups int, runes []rune, start int) (bool, map[int]string) {
	st := newState(runes, numGroups)
	if !matchNode(root, st, start, func(int) bool { return true }) {
		return false, nil
	}
	return true, st.Captures()
}

// startAnchored reports whether root must only ever match at position 0,
// unwrapping a possible outer EndAnchor to find an inner StartAnchor.
func startAnchored(n syntax.Node) bool {
	switch x := n.(type) {
	case *syntax.StartAnchor:
		return true
	case *syntax.EndAnchor:
		return startAnchored(x.Child)
	default:
		return false
	}
}
