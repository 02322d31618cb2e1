package syntax

// scanEscape recognizes the atom starting at a backslash. pattern[pos] is
// assumed to be '\\'. It returns the node, the number of pattern runes
// consumed (always 2), or an error if the escape is dangling.
func scanEscape(pattern []rune, pos int) (Node, int, error) {
	if pos+1 >= len(pattern) {
		return nil, 0, errAt(pos, "dangling escape at end of pattern")
	}
	esc := pattern[pos+1]
	switch {
	case esc == 'd':
		return &DigitClass{}, 2, nil
	case esc == 'w':
		return &WordClass{}, 2, nil
	case esc >= '1' && esc <= '9':
		return &Backreference{Index: int(esc - '0')}, 2, nil
	default:
		// Escape of any other character, metacharacter or not, yields
		// that character as a literal.
		return &Literal{Char: esc}, 2, nil
	}
}

// scanBracket recognizes a [...] character class starting at pattern[pos],
// which must be '['. It returns the node and the number of runes consumed
// through the matching ']'.
func scanBracket(pattern []rune, pos int) (Node, int, error) {
	end := pos + 1
	for end < len(pattern) && pattern[end] != ']' {
		end++
	}
	if end >= len(pattern) {
		return nil, 0, errAt(pos, "unterminated character class")
	}
	negated := false
	start := pos + 1
	if start < end && pattern[start] == '^' {
		negated = true
		start++
	}
	if start == end {
		return nil, 0, errAt(pos, "empty character class")
	}
	set := make(map[rune]bool, end-start)
	for _, c := range pattern[start:end] {
		set[c] = true
	}
	return &Bracket{Set: set, Negated: negated}, end - pos + 1, nil
}
