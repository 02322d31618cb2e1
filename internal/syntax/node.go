// Package syntax parses the restricted regular-expression dialect into a
// tree of match nodes. It contains no matching logic; see internal/matcher
// for that.
package syntax

// Node is a compiled match node. The concrete type is discovered with a
// type switch in the matcher, mirroring the tagged-variant design of the
// source dialect rather than a dispatch-table.
type Node interface{}

// Literal matches exactly one character.
type Literal struct {
	Char rune
}

// AnyChar matches any single character (the "." atom).
type AnyChar struct{}

// DigitClass matches one ASCII decimal digit.
type DigitClass struct{}

// WordClass matches one ASCII letter, digit, or underscore.
type WordClass struct{}

// Bracket matches membership (or, if Negated, non-membership) of a
// character in Set. No ranges, no escapes: every byte between [ and ] is
// taken literally per the dialect.
type Bracket struct {
	Set     map[rune]bool
	Negated bool
}

// Sequence is an ordered list of nodes that must all match consecutively.
type Sequence struct {
	Children []Node
}

// Alternation tries each child in order at the same position, taking the
// first that succeeds (and, downstream, the first whose continuation also
// succeeds).
type Alternation struct {
	Children []Node
}

// Repetition is a greedy quantifier. Min and Max bound the admissible
// repetition count; Max < 0 means unbounded. ZeroOrOne is {0,1}, OneOrMore
// is {1,-1}, ZeroOrMore is {0,-1}.
type Repetition struct {
	Child Node
	Min   int
	Max   int
}

// Group is a capturing parenthesized group. Index is assigned at the
// moment the opening '(' is parsed, so indices follow source order even
// for nested groups.
type Group struct {
	Index int
	Child Node
}

// Backreference matches the literal text previously captured by group
// Index. Index is 1..9.
type Backreference struct {
	Index int
}

// StartAnchor requires its Child to match starting at position 0 of the
// input.
type StartAnchor struct {
	Child Node
}

// EndAnchor requires its Child to match, and the resulting position to be
// the end of the input.
type EndAnchor struct {
	Child Node
}
