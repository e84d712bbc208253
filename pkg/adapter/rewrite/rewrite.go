// Package rewrite implements the cascading regex substitution engine the
// emitters are built on. Emitting works directly on the original source
// text rather than reconstructing it from the IR: a substitution pipeline
// preserves formatting, whitespace, and variable names that a codegen
// pass would lose. The IR is consulted for dispatch and scoring, not as
// the source of truth for output.
package rewrite

import (
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/todo"
)

// Rule is a single substitution. When Func is set it takes precedence
// over Replace and receives the submatches.
type Rule struct {
	Pattern *regexp.Regexp
	Replace string
	Func    func(m []string) string
}

// R builds a plain replacement rule.
func R(pattern, replace string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Replace: replace}
}

// RF builds a function-backed rule.
func RF(pattern string, fn func(m []string) string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Func: fn}
}

func (r Rule) apply(line string) string {
	if r.Func != nil {
		return r.Pattern.ReplaceAllStringFunc(line, func(s string) string {
			return r.Func(r.Pattern.FindStringSubmatch(s))
		})
	}
	return r.Pattern.ReplaceAllString(line, r.Replace)
}

// Fallback describes the catch-all for source-framework native calls
// that survived every rule: the line is replaced by a TODO marker block
// preserving the original, so nothing is silently dropped.
type Fallback struct {
	// Pattern matches a native call of the source framework.
	Pattern *regexp.Regexp
	// ID and Action feed the marker block.
	ID     string
	Action string
	// Describe renders the marker description for a matched line.
	Describe func(line string) string
}

// Pipeline is one source-framework-to-target transformation. Stages run
// in the fixed order of the emit contract: strip stale TODO blocks,
// remove source imports/boilerplate, substitution rules (most specific
// first), structure renames, per-line post-processing, catch-all TODO
// fallback, whitespace normalization, import injection.
type Pipeline struct {
	// PreJoin joins multi-line chains before line rules run.
	PreJoin bool

	// StripImports deletes matching source-framework import lines.
	StripImports []*regexp.Regexp

	// Rules are the composite/action conversions, most specific first.
	Rules []Rule

	// Renames convert test-structure keywords (describe/it/hooks).
	Renames []Rule

	// PostLine runs after rules and renames on each line (e.g. await
	// insertion or stripping).
	PostLine func(line string) string

	// Fallbacks catch remaining native calls and degrade them to TODOs.
	Fallbacks []Fallback

	// Imports are lines injected at the top of the output, after any
	// leading license or directive comments.
	Imports []string

	// PostSplit re-splits long emitted chains for readability.
	PostSplit bool
}

// Result is the outcome of applying a pipeline.
type Result struct {
	Output   string
	Todos    []string
	Warnings []string
}

var blankRun = regexp.MustCompile(`\n{3,}`)

// Apply runs the pipeline over source. It never fails; any input
// produces output.
func (p *Pipeline) Apply(source string) Result {
	var res Result

	// Stale markers from a previous conversion must not accumulate.
	src := todo.Strip(source)

	if p.PreJoin {
		src = jsparse.JoinChains(src)
	}

	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	inComment := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		commentLine := inComment || strings.HasPrefix(trimmed, "/*")
		if inComment || !strings.HasPrefix(trimmed, "//") {
			inComment = blockCommentState(inComment, trimmed)
		}

		if trimmed != "" && p.stripImport(trimmed) {
			continue
		}

		converted := line
		for _, rule := range p.Rules {
			converted = rule.apply(converted)
		}
		for _, rename := range p.Renames {
			converted = rename.apply(converted)
		}
		if p.PostLine != nil {
			converted = p.PostLine(converted)
		}

		if !commentLine {
			if marker, desc, ok := p.fallback(converted, line); ok {
				out = append(out, marker)
				res.Todos = append(res.Todos, desc)
				continue
			}
		}

		out = append(out, converted)
	}

	output := strings.Join(out, "\n")
	output = normalizeBlankLines(output)
	output = injectImports(output, p.Imports)

	if p.PostSplit {
		output = jsparse.SplitChains(output)
	}

	res.Output = output
	return res
}

func (p *Pipeline) stripImport(trimmed string) bool {
	for _, re := range p.StripImports {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// fallback checks the converted line for surviving native calls. The
// marker preserves the pre-pipeline line verbatim: rules that fired
// before the fallback must not alter what the reviewer sees as original.
func (p *Pipeline) fallback(converted, original string) (marker, desc string, ok bool) {
	trimmed := strings.TrimSpace(converted)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "*") {
		return "", "", false
	}

	for _, f := range p.Fallbacks {
		if !f.Pattern.MatchString(trimmed) {
			continue
		}

		desc = f.Describe(trimmed)
		indent := original[:len(original)-len(strings.TrimLeft(original, " \t"))]
		marker = todo.FormatIndent(todo.Todo{
			ID:          f.ID,
			Description: desc,
			Original:    strings.TrimSpace(original),
			Action:      f.Action,
		}, indent)
		return marker, desc, true
	}

	return "", "", false
}

// blockCommentState tracks whether the next line starts inside a
// /* ... */ block, scanning open and close pairs left to right.
func blockCommentState(in bool, line string) bool {
	for i := 0; i+1 < len(line); i++ {
		if in {
			if line[i] == '*' && line[i+1] == '/' {
				in = false
				i++
			}
		} else if line[i] == '/' && line[i+1] == '*' {
			in = true
			i++
		}
	}
	return in
}

func normalizeBlankLines(s string) string {
	s = blankRun.ReplaceAllString(s, "\n\n")
	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, " \t\n")
	if s == "" {
		return s
	}
	return s + "\n"
}

// injectImports inserts the import lines at the top of the file, past
// any leading license or directive comment block, skipping imports that
// are already present.
func injectImports(source string, imports []string) string {
	var missing []string
	for _, imp := range imports {
		if !strings.Contains(source, imp) {
			missing = append(missing, imp)
		}
	}
	if len(missing) == 0 {
		return source
	}

	lines := strings.Split(source, "\n")
	insertAt := 0
	inBlock := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inBlock {
			insertAt = i + 1
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
			continue
		}

		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#!") {
			insertAt = i + 1
			continue
		}
		if strings.HasPrefix(trimmed, "/*") {
			insertAt = i + 1
			if !strings.Contains(trimmed, "*/") {
				inBlock = true
			}
			continue
		}

		break
	}

	block := strings.Join(missing, "\n")
	if insertAt >= len(lines) {
		return source + block + "\n"
	}

	var b strings.Builder
	for i, line := range lines {
		if i == insertAt {
			b.WriteString(block)
			b.WriteString("\n")
			if strings.TrimSpace(line) != "" {
				b.WriteString("\n")
			}
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
