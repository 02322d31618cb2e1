package matcher

import (
	"github.com/coregx/ahocorasick"
	"github.com/grepkit/mygrep/internal/syntax"
)

// literalPrefilter rejects lines that cannot possibly match a compiled
// pattern without running the backtracking matcher at all. It is purely an
// optimization: correctness never depends on it, and a pattern this repo
// cannot extract a safe literal from simply gets no prefilter (mayMatch
// always reports true).
//
// The idea is the standard required-literal prescan: pull out the literal
// text every accepted match is guaranteed to contain, and run a
// multi-pattern Aho-Corasick scan for it ahead of the slow engine. A line
// that doesn't contain any required literal cannot match, so the
// backtracking matcher never needs to run on it. Top-level alternation
// (cat|dog, without parentheses) needs one required literal per branch, since at least one
// branch's literal must be present for the alternation to have any chance
// of matching.
type literalPrefilter struct {
	automaton *ahocorasick.Automaton
}

func buildPrefilter(root syntax.Node) *literalPrefilter {
	literals := requiredLiterals(root)
	if len(literals) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &literalPrefilter{automaton: automaton}
}

func (f *literalPrefilter) mayMatch(s string) bool {
	if f == nil || f.automaton == nil {
		return true
	}
	return f.automaton.IsMatch([]byte(s))
}

// requiredLiterals returns the set of literal strings such that any
// matching line must contain at least one of them. For an ordinary
// pattern this is a single mandatory literal run; for a top-level
// alternation it is one literal per branch, since exactly one branch must
// match. If any branch (or the whole pattern) has no extractable mandatory
// literal, prefiltering would be unsafe and an empty slice is returned.
func requiredLiterals(root syntax.Node) []string {
	core := unwrapAnchors(root)

	if alt, ok := core.(*syntax.Alternation); ok {
		literals := make([]string, 0, len(alt.Children))
		for _, branch := range alt.Children {
			lit := longestMandatoryLiteral(branch)
			if lit == "" {
				return nil
			}
			literals = append(literals, lit)
		}
		return literals
	}

	lit := longestMandatoryLiteral(core)
	if lit == "" {
		return nil
	}
	return []string{lit}
}

func unwrapAnchors(n syntax.Node) syntax.Node {
	for {
		switch x := n.(type) {
		case *syntax.StartAnchor:
			n = x.Child
		case *syntax.EndAnchor:
			n = x.Child
		default:
			return n
		}
	}
}

// longestMandatoryLiteral finds the longest run of plain literal
// characters that every match of n is guaranteed to contain contiguously.
func longestMandatoryLiteral(n syntax.Node) string {
	switch x := unwrapAnchors(n).(type) {
	case *syntax.Literal:
		return string(x.Char)
	case *syntax.Group:
		return longestMandatoryLiteral(x.Child)
	case *syntax.Repetition:
		if x.Min >= 1 {
			return longestMandatoryLiteral(x.Child)
		}
		return ""
	case *syntax.Sequence:
		best := ""
		current := ""
		flush := func() {
			if len(current) > len(best) {
				best = current
			}
			current = ""
		}
		for _, child := range x.Children {
			if lit, ok := child.(*syntax.Literal); ok {
				current += string(lit.Char)
				continue
			}
			flush()
		}
		flush()
		return best
	default:
		return ""
	}
}
