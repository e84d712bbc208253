package jsparse

import "strings"

// JoinChains merges continuation lines of multi-line method chains into
// the line that starts the chain, so single-line regex rules can see the
// whole call. A continuation line is one whose first token is a `.`
// method call.
//
//	cy.get('#btn')
//	  .should('be.visible');
//
// becomes
//
//	cy.get('#btn').should('be.visible');
func JoinChains(source string) string {
	lines := strings.Split(source, "\n")
	var out []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(out) > 0 && strings.HasPrefix(trimmed, ".") {
			prev := out[len(out)-1]
			if strings.TrimSpace(prev) != "" && !strings.HasPrefix(strings.TrimSpace(prev), "//") {
				out[len(out)-1] = strings.TrimRight(prev, " \t") + trimmed
				continue
			}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// SplitChainWidth is the line length beyond which SplitChains re-splits
// emitted chains for readability.
const SplitChainWidth = 100

// SplitChains is the post-pass counterpart of JoinChains: long emitted
// lines are re-split before chained calls. Only chain boundaries outside
// string literals are considered.
func SplitChains(source string) string {
	lines := strings.Split(source, "\n")
	var out []string

	for _, line := range lines {
		if len(line) <= SplitChainWidth {
			out = append(out, line)
			continue
		}
		out = append(out, splitLine(line)...)
	}

	return strings.Join(out, "\n")
}

func splitLine(line string) []string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

	var parts []string
	var quote byte
	escaped := false
	parens := 0
	start := 0

	for i := 0; i < len(line); i++ {
		c := line[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[':
			parens++
		case ')', ']':
			parens--
		case '.':
			// Split only at top-level chain boundaries after a call.
			if parens == 0 && i > start && line[i-1] == ')' {
				parts = append(parts, line[start:i])
				start = i
			}
		}
	}
	parts = append(parts, line[start:])

	if len(parts) == 1 {
		return []string{line}
	}

	result := make([]string, 0, len(parts))
	result = append(result, parts[0])
	for _, p := range parts[1:] {
		result = append(result, indent+"  "+p)
	}
	return result
}
