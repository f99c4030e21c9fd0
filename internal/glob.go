package internal

// GlobMatch reports whether s matches pattern, anchored at both ends.
//
// The only metacharacter is '*', which matches any run of zero or more
// characters. Every other pattern character matches itself exactly,
// case-sensitively. The matcher deliberately does not delegate to a
// regex engine: user-supplied patterns and namespaces must never be
// able to inject metacharacters, and the star-only semantics stay
// auditable.
//
// Uses the standard backtracking-free two-pointer technique: remember
// the position of the last '*' and the portion of s it has consumed so
// far, and on a mismatch extend that portion by one character.
func GlobMatch(pattern, s string) bool {
	pi, si := 0, 0
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case pi < len(pattern) && pattern[pi] == s[si]:
			pi++
			si++
		case star >= 0:
			// Let the last '*' swallow one more character.
			mark++
			si = mark
			pi = star + 1
		default:
			return false
		}
	}

	// Trailing stars match the empty tail.
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
