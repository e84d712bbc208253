package jsparse

import (
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/ir"
)

// Classifier is one adapter-supplied line rule. Classifiers run after the
// shared structural rules and are tried in order: first match wins, so
// more specific patterns must come before generic catch-alls.
type Classifier struct {
	Pattern *regexp.Regexp
	Build   func(m []string, base ir.Base) ir.Node
}

// Scanner parses JS/TS test source into an IR tree via a single forward
// line scan with brace-depth tracking. It never fails: lines matching
// nothing become RawCode.
type Scanner struct {
	Framework   string
	Classifiers []Classifier
}

var (
	quotedName = `(?:'([^']*)'|"([^"]*)"|` + "`([^`]*)`" + `)`

	importRe = regexp.MustCompile(`^(?:import\s|(?:const|let|var)\s+.*=\s*require\s*\(|require\s*\()`)
	moduleRe = regexp.MustCompile(`['"]([^'"]+)['"]`)

	suiteRe = regexp.MustCompile(`^(?:test\.)?(describe|context|suite)((?:\.(?:only|skip|serial|parallel))*)\s*\(\s*` + quotedName)
	testRe  = regexp.MustCompile(`^(it|test|specify)((?:\.(?:only|skip|todo|fixme|concurrent))*)\s*\(\s*` + quotedName)
	hookRe  = regexp.MustCompile(`^(?:test\.)?(before|beforeAll|beforeEach|suiteSetup|setup|after|afterAll|afterEach|suiteTeardown|teardown)\s*\(`)

	structureOnlyRe = regexp.MustCompile(`^[})\]]+[;,]?$`)
	asyncRe         = regexp.MustCompile(`\basync\b`)
	licenseRe       = regexp.MustCompile(`(?i)copyright|license|spdx|\(c\)`)
	directiveRe     = regexp.MustCompile(`^(?:///|//\s*(?:eslint|@ts-|prettier|jshint|global\s)|/\*\s*(?:eslint|global\s))`)

	tsSyntaxRe = regexp.MustCompile(`(?m)^\s*(?:interface\s+\w+|type\s+\w+\s*=)|:\s*(?:string|number|boolean|void|any)\b|\bas\s+const\b|import\s+type\s`)
)

// DetectFileLanguage guesses JS vs TS from source content. Callers that
// know the filename should prefer extension-based detection.
func DetectFileLanguage(source string) ir.Language {
	if tsSyntaxRe.MatchString(source) {
		return ir.LanguageTypeScript
	}
	return ir.LanguageJavaScript
}

func pickName(groups ...string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}

func parseModifiers(chain string) []ir.Modifier {
	var mods []ir.Modifier
	if strings.Contains(chain, ".only") {
		mods = append(mods, ir.ModifierOnly)
	}
	if strings.Contains(chain, ".skip") || strings.Contains(chain, ".todo") {
		mods = append(mods, ir.ModifierSkip)
	}
	return mods
}

func hookTypeFor(keyword string) ir.HookType {
	switch keyword {
	case "before", "beforeAll", "suiteSetup":
		return ir.HookBeforeAll
	case "beforeEach", "setup":
		return ir.HookBeforeEach
	case "after", "afterAll", "suiteTeardown":
		return ir.HookAfterAll
	default:
		return ir.HookAfterEach
	}
}

// braceDelta counts curly brace balance outside string literals.
func braceDelta(line string) int {
	delta := 0
	var quote byte
	escaped := false

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
		case '{':
			delta++
		case '}':
			delta--
		case '/':
			// Rest of line is a comment.
			if i+1 < len(line) && line[i+1] == '/' {
				return delta
			}
		}
	}

	return delta
}

type openScope struct {
	suite *ir.TestSuite
	test  *ir.TestCase
	hook  *ir.Hook
	// bodyDepth is the brace depth inside the scope's body.
	bodyDepth int
}

// Parse scans source into a TestFile. The returned tree is always valid,
// even for empty input or binary garbage.
func (s *Scanner) Parse(source string) *ir.TestFile {
	file := &ir.TestFile{
		Base:      ir.NewBase(1, 1, ""),
		Framework: s.Framework,
		Language:  DetectFileLanguage(source),
	}

	var stack []openScope
	depth := 0
	inBlockComment := false
	headerZone := true

	appendNode := func(n ir.Node) {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].hook != nil {
				stack[i].hook.Body = append(stack[i].hook.Body, n)
				return
			}
			if stack[i].test != nil {
				stack[i].test.Body = append(stack[i].test.Body, n)
				return
			}
		}
		file.Body = append(file.Body, n)
	}

	currentSuite := func() *ir.TestSuite {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].suite != nil {
				return stack[i].suite
			}
		}
		return nil
	}

	attachStructural := func(n ir.Node) {
		if suite := currentSuite(); suite != nil {
			suite.Tests = append(suite.Tests, n)
			return
		}
		file.Body = append(file.Body, n)
	}

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		column := strings.Index(raw, trimmed) + 1
		base := ir.NewBase(lineNo, column, raw)

		// Block comment continuation.
		if inBlockComment {
			if strings.Contains(trimmed, "*/") {
				inBlockComment = false
			}
			appendNode(&ir.Comment{Base: base, Text: trimmed, CommentKind: commentKind(trimmed, headerZone), PreserveExact: headerZone})
			continue
		}

		// Comments before anything else.
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
			if strings.HasPrefix(trimmed, "/*") && !strings.Contains(trimmed, "*/") {
				inBlockComment = true
			}
			kind := commentKind(trimmed, headerZone)
			appendNode(&ir.Comment{
				Base:          base,
				Text:          trimmed,
				CommentKind:   kind,
				PreserveExact: kind == ir.CommentLicense || kind == ir.CommentDirective,
			})
			continue
		}

		headerZone = false
		delta := braceDelta(trimmed)

		switch {
		case importRe.MatchString(trimmed):
			imp := &ir.Import{Base: base, Module: trimmed, ImportKind: ir.ImportLibrary}
			if m := moduleRe.FindStringSubmatch(trimmed); m != nil {
				imp.Module = m[1]
				if strings.HasPrefix(m[1], ".") {
					imp.ImportKind = ir.ImportRelative
				}
			}
			file.Imports = append(file.Imports, imp)

		case suiteRe.MatchString(trimmed):
			m := suiteRe.FindStringSubmatch(trimmed)
			suite := &ir.TestSuite{
				Base:      base,
				Name:      pickName(m[3], m[4], m[5]),
				Modifiers: parseModifiers(m[2]),
			}
			attachStructural(suite)
			stack = append(stack, openScope{suite: suite, bodyDepth: depth + 1})

		case testRe.MatchString(trimmed):
			m := testRe.FindStringSubmatch(trimmed)
			test := &ir.TestCase{
				Base:      base,
				Name:      pickName(m[3], m[4], m[5]),
				IsAsync:   asyncRe.MatchString(trimmed),
				Modifiers: parseModifiers(m[2]),
			}
			attachStructural(test)
			stack = append(stack, openScope{test: test, bodyDepth: depth + 1})

		case hookRe.MatchString(trimmed):
			m := hookRe.FindStringSubmatch(trimmed)
			hook := &ir.Hook{
				Base:    base,
				Type:    hookTypeFor(m[1]),
				IsAsync: asyncRe.MatchString(trimmed),
			}
			if suite := currentSuite(); suite != nil {
				suite.Hooks = append(suite.Hooks, hook)
			} else {
				file.Body = append(file.Body, hook)
			}
			stack = append(stack, openScope{hook: hook, bodyDepth: depth + 1})

		case structureOnlyRe.MatchString(trimmed):
			// Closing braces are structure, not content.

		default:
			appendNode(s.classify(trimmed, base))
		}

		depth += delta
		if depth < 0 {
			depth = 0
		}
		for len(stack) > 0 && depth < stack[len(stack)-1].bodyDepth {
			stack = stack[:len(stack)-1]
		}
	}

	return file
}

func (s *Scanner) classify(trimmed string, base ir.Base) ir.Node {
	for _, c := range s.Classifiers {
		if m := c.Pattern.FindStringSubmatch(trimmed); m != nil {
			if node := c.Build(m, base); node != nil {
				return node
			}
		}
	}
	return &ir.RawCode{Base: base, Code: trimmed}
}

func commentKind(trimmed string, headerZone bool) ir.CommentKind {
	if directiveRe.MatchString(trimmed) {
		return ir.CommentDirective
	}
	if headerZone && licenseRe.MatchString(trimmed) {
		return ir.CommentLicense
	}
	return ir.CommentInline
}
