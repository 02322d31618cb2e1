package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpOpts lists every node struct for cmp.AllowUnexported. All node fields
// are currently exported, so the option only matters if a node type later
// gains an unexported field, on which cmp.Diff would otherwise panic.
var cmpOpts = cmp.AllowUnexported(Literal{}, AnyChar{}, DigitClass{}, WordClass{},
	Bracket{}, Sequence{}, Alternation{}, Repetition{}, Group{}, Backreference{},
	StartAnchor{}, EndAnchor{})

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    Node
	}{
		{
			name:    "literal sequence",
			pattern: "cat",
			want:    &Sequence{Children: []Node{&Literal{'c'}, &Literal{'a'}, &Literal{'t'}}},
		},
		{
			name:    "digit class",
			pattern: `\d`,
			want:    &DigitClass{},
		},
		{
			name:    "start anchor",
			pattern: "^log",
			want: &StartAnchor{Child: &Sequence{Children: []Node{
				&Literal{'l'}, &Literal{'o'}, &Literal{'g'},
			}}},
		},
		{
			name:    "end anchor",
			pattern: "cat$",
			want: &EndAnchor{Child: &Sequence{Children: []Node{
				&Literal{'c'}, &Literal{'a'}, &Literal{'t'},
			}}},
		},
		{
			name:    "one or more",
			pattern: "a+",
			want:    &Repetition{Child: &Literal{'a'}, Min: 1, Max: -1},
		},
		{
			name:    "zero or one",
			pattern: "a?",
			want:    &Repetition{Child: &Literal{'a'}, Min: 0, Max: 1},
		},
		{
			name:    "zero or more",
			pattern: "a*",
			want:    &Repetition{Child: &Literal{'a'}, Min: 0, Max: -1},
		},
		{
			name:    "capturing group",
			pattern: "(cat)",
			want: &Group{Index: 1, Child: &Sequence{Children: []Node{
				&Literal{'c'}, &Literal{'a'}, &Literal{'t'},
			}}},
		},
		{
			name:    "alternation inside group",
			pattern: "(cat|dog)",
			want: &Group{Index: 1, Child: &Alternation{Children: []Node{
				&Sequence{Children: []Node{&Literal{'c'}, &Literal{'a'}, &Literal{'t'}}},
				&Sequence{Children: []Node{&Literal{'d'}, &Literal{'o'}, &Literal{'g'}}},
			}}},
		},
		{
			name:    "nested group indices follow open order",
			pattern: "((a)(b))",
			want: &Group{Index: 1, Child: &Sequence{Children: []Node{
				&Group{Index: 2, Child: &Literal{'a'}},
				&Group{Index: 3, Child: &Literal{'b'}},
			}}},
		},
		{
			name:    "backreference",
			pattern: `(a)\1`,
			want: &Sequence{Children: []Node{
				&Group{Index: 1, Child: &Literal{'a'}},
				&Backreference{Index: 1},
			}},
		},
		{
			name:    "bracket class",
			pattern: "[abc]",
			want:    &Bracket{Set: map[rune]bool{'a': true, 'b': true, 'c': true}, Negated: false},
		},
		{
			name:    "negated bracket class",
			pattern: "[^abc]",
			want:    &Bracket{Set: map[rune]bool{'a': true, 'b': true, 'c': true}, Negated: true},
		},
		{
			name:    "escaped metacharacter is literal",
			pattern: `\.`,
			want:    &Literal{'.'},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.pattern, err)
			}
			if diff := cmp.Diff(tc.want, got, cmpOpts); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.pattern, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"(unclosed",
		"[unclosed",
		"[]",
		`\`,
		"a$b",
		"+a",
		"?a",
		"*a",
		"a||", // trailing empty alternative is fine syntactically... see note below
	}

	// "a||" is intentionally not asserted as an error: an empty alternative
	// parses to an empty Sequence, which is valid (it matches the empty
	// string). Only the first eight cases above are true failures.
	for _, pattern := range tests[:len(tests)-1] {
		t.Run(pattern, func(t *testing.T) {
			if _, err := Parse(pattern); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", pattern)
			}
		})
	}
}

func TestParseRejectsQuantifierOnAnchor(t *testing.T) {
	// "$?" is rejected for the same underlying reason as a misplaced "$":
	// the trailing-dollar strip only fires when '$' is the very last rune
	// of the whole pattern, so here '$' surfaces mid-pattern as an atom and
	// is rejected before the '?' is even considered.
	if _, err := Parse("a$?"); err == nil {
		t.Errorf("Parse(%q) succeeded, want error", "a$?")
	}
}
