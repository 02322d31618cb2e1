package matcher

import "github.com/grepkit/mygrep/internal/syntax"

// cont is the continuation invoked once a node has matched: it attempts
// the rest of the enclosing match (sibling nodes, enclosing quantifier
// repetitions, or final success) starting at the given position, and
// reports whether that attempt ultimately succeeded. Nodes with more than
// one admissible match (quantifiers, alternation) try continuations in
// order, most-greedy first, and backtrack when a continuation fails.
type cont func(pos int) bool

// matchNode is the direct recursion over node kinds described by the
// matcher's component design: each case either succeeds immediately and
// hands off to k, or explores several admissible continuations and
// returns the first that makes k succeed.
func matchNode(n syntax.Node, st *state, pos int, k cont) bool {
	switch x := n.(type) {
	case *syntax.Literal:
		return pos < len(st.input) && st.input[pos] == x.Char && k(pos+1)

	case *syntax.AnyChar:
		return pos < len(st.input) && k(pos+1)

	case *syntax.DigitClass:
		return pos < len(st.input) && isASCIIDigit(st.input[pos]) && k(pos+1)

	case *syntax.WordClass:
		return pos < len(st.input) && isASCIIWord(st.input[pos]) && k(pos+1)

	case *syntax.Bracket:
		if pos >= len(st.input) {
			return false
		}
		_, in := x.Set[st.input[pos]]
		if in != x.Negated {
			return k(pos + 1)
		}
		return false

	case *syntax.Sequence:
		return matchSequence(x.Children, 0, st, pos, k)

	case *syntax.Alternation:
		return matchAlternation(x, st, pos, k)

	case *syntax.Repetition:
		return matchRepetition(x, st, pos, 0, k)

	case *syntax.Group:
		return matchGroup(x, st, pos, k)

	case *syntax.Backreference:
		return matchBackreference(x, st, pos, k)

	case *syntax.StartAnchor:
		return pos == 0 && matchNode(x.Child, st, pos, k)

	case *syntax.EndAnchor:
		return matchNode(x.Child, st, pos, func(p2 int) bool {
			return p2 == len(st.input) && k(p2)
		})

	default:
		return false
	}
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isASCIIWord(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isASCIIDigit(c) || c == '_'
}

// matchSequence processes children left to right. Each child's
// continuation resumes the sequence at the next child, so a quantifier
// anywhere in the sequence can retry the whole tail at each admissible
// repetition count.
func matchSequence(children []syntax.Node, idx int, st *state, pos int, k cont) bool {
	if idx == len(children) {
		return k(pos)
	}
	return matchNode(children[idx], st, pos, func(p2 int) bool {
		return matchSequence(children, idx+1, st, p2, k)
	})
}

// matchAlternation tries each branch in declaration order, snapshotting
// and restoring captures around each attempt so a failed branch leaves no
// trace.
func matchAlternation(a *syntax.Alternation, st *state, pos int, k cont) bool {
	for _, child := range a.Children {
		snap := st.snapshot()
		if matchNode(child, st, pos, k) {
			return true
		}
		st.restore(snap)
	}
	return false
}

// matchGroup remembers the group's capture slot, matches the child, and on
// success sets captures[Index] to the span consumed by *this* attempt
// before handing control to k. If k ultimately fails, the capture is rolled
// back and the child is asked for its next admissible match (a longer or
// shorter repetition, another alternative, ...), so the capture always
// reflects the repetition count that was actually accepted.
func matchGroup(g *syntax.Group, st *state, pos int, k cont) bool {
	savedVal := st.captures[g.Index]
	savedSet := st.captured[g.Index]

	ok := matchNode(g.Child, st, pos, func(p2 int) bool {
		prevVal := st.captures[g.Index]
		prevSet := st.captured[g.Index]
		st.captures[g.Index] = string(st.input[pos:p2])
		st.captured[g.Index] = true
		if k(p2) {
			return true
		}
		st.captures[g.Index] = prevVal
		st.captured[g.Index] = prevSet
		return false
	})
	if !ok {
		st.captures[g.Index] = savedVal
		st.captured[g.Index] = savedSet
	}
	return ok
}

func matchBackreference(b *syntax.Backreference, st *state, pos int, k cont) bool {
	if b.Index <= 0 || b.Index >= len(st.captured) || !st.captured[b.Index] {
		return false
	}
	captured := []rune(st.captures[b.Index])
	if pos+len(captured) > len(st.input) {
		return false
	}
	for i, c := range captured {
		if st.input[pos+i] != c {
			return false
		}
	}
	return k(pos + len(captured))
}

// matchRepetition explores repetition counts most-greedy first: it always
// tries to extend by one more repetition of the child before considering
// whether to stop at the current count, so backtracking naturally walks
// the admissible end positions from longest to shortest. A repetition that
// makes no progress is refused, to avoid looping forever on a child that
// can match the empty string.
func matchRepetition(r *syntax.Repetition, st *state, pos int, count int, k cont) bool {
	if r.Max < 0 || count < r.Max {
		extended := matchNode(r.Child, st, pos, func(p2 int) bool {
			if p2 == pos {
				return false
			}
			return matchRepetition(r, st, p2, count+1, k)
		})
		if extended {
			return true
		}
	}
	if count >= r.Min {
		return k(pos)
	}
	return false
}
