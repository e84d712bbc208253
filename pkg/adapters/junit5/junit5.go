// Package junit5 implements the JUnit 5 (Jupiter) adapter. It is the
// one non-JavaScript framework: parsing reads Java test classes, and
// emitting produces a structural Java skeleton with the original test
// bodies preserved as marked comments, since statement-level porting
// across languages is manual work.
package junit5

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
	"github.com/hamlet-dev/hamlet/pkg/todo"
)

const frameworkName = adapter.FrameworkJUnit5

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`org\.junit\.jupiter`, 60),
	adapter.Sig(`@(BeforeEach|AfterEach|BeforeAll|AfterAll|DisplayName|Nested|ParameterizedTest)\b`, 30),
	adapter.Sig(`\bAssertions\.\w+\(|\bassert(Equals|True|False|NotNull|Null|Throws)\(`, 25),
	adapter.Sig(`@Test\b`, 20),
	adapter.Sig(`import\s+org\.junit\.Test;`, -40),
	adapter.Sig(`\b(describe|it)\(`, -30),
}

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Metadata() adapter.Metadata {
	return adapter.Metadata{
		Name:     frameworkName,
		Language: ir.LanguageJava,
		Paradigm: adapter.ParadigmUnit,
		Imports: adapter.ImportSpec{
			Modules: []string{
				`import org.junit.jupiter.api.*;`,
				`import static org.junit.jupiter.api.Assertions.*;`,
			},
		},
	}
}

func (a *Adapter) Detect(source string) int {
	return adapter.ScoreSignatures(source, signatures)
}

var (
	importRe     = regexp.MustCompile(`^import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;`)
	classRe      = regexp.MustCompile(`^(?:public\s+|final\s+|static\s+)*class\s+(\w+)`)
	methodRe     = regexp.MustCompile(`^(?:public\s+|protected\s+|private\s+|static\s+)*void\s+(\w+)\s*\(`)
	annotationRe = regexp.MustCompile(`^@(\w+)(?:\((.*)\))?`)
	displayRe    = regexp.MustCompile(`^"(.*)"$`)
	assertRe     = regexp.MustCompile(`\b(?:Assertions\.)?(assert\w+)\((.*)\)\s*;`)
)

type pending struct {
	isTest      bool
	hook        ir.HookType
	disabled    bool
	displayName string
}

// Parse scans Java source line by line, tracking class and method
// nesting by brace depth. Annotations accumulate until the annotated
// declaration appears.
func (a *Adapter) Parse(source string) *ir.TestFile {
	file := &ir.TestFile{
		Base:      ir.NewBase(1, 1, ""),
		Framework: frameworkName,
		Language:  ir.LanguageJava,
	}

	var (
		suite     *ir.TestSuite
		test      *ir.TestCase
		hook      *ir.Hook
		pend      pending
		depth     int
		bodyDepth int
	)

	appendNode := func(n ir.Node) {
		switch {
		case hook != nil:
			hook.Body = append(hook.Body, n)
		case test != nil:
			test.Body = append(test.Body, n)
		case suite != nil:
			suite.Tests = append(suite.Tests, n)
		default:
			file.Body = append(file.Body, n)
		}
	}

	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		base := ir.NewBase(i+1, indentOf(line)+1, trimmed)

		switch {
		case trimmed == "":

		case strings.HasPrefix(trimmed, "//"):
			appendNode(&ir.Comment{Base: base, Text: trimmed, CommentKind: ir.CommentInline})

		case importRe.MatchString(trimmed):
			m := importRe.FindStringSubmatch(trimmed)
			file.Imports = append(file.Imports, &ir.Import{Base: base, Module: m[1], ImportKind: ir.ImportLibrary})

		case annotationRe.MatchString(trimmed):
			m := annotationRe.FindStringSubmatch(trimmed)
			switch m[1] {
			case "Test", "ParameterizedTest", "RepeatedTest":
				pend.isTest = true
			case "Disabled":
				pend.disabled = true
			case "BeforeAll":
				pend.hook = ir.HookBeforeAll
			case "AfterAll":
				pend.hook = ir.HookAfterAll
			case "BeforeEach":
				pend.hook = ir.HookBeforeEach
			case "AfterEach":
				pend.hook = ir.HookAfterEach
			case "DisplayName":
				if dm := displayRe.FindStringSubmatch(strings.TrimSpace(m[2])); dm != nil {
					pend.displayName = dm[1]
				}
			}

		case classRe.MatchString(trimmed) && suite == nil:
			m := classRe.FindStringSubmatch(trimmed)
			suite = &ir.TestSuite{Base: base, Name: m[1]}
			file.Body = append(file.Body, suite)
			pend = pending{}

		case methodRe.MatchString(trimmed) && (pend.isTest || pend.hook != ""):
			m := methodRe.FindStringSubmatch(trimmed)
			if pend.hook != "" {
				hook = &ir.Hook{Base: base, Type: pend.hook}
			} else {
				name := pend.displayName
				if name == "" {
					name = m[1]
				}
				test = &ir.TestCase{Base: base, Name: name}
				if pend.disabled {
					test.Modifiers = append(test.Modifiers, ir.ModifierSkip)
				}
			}
			bodyDepth = depth + 1
			pend = pending{}

		case assertRe.MatchString(trimmed) && (test != nil || hook != nil):
			m := assertRe.FindStringSubmatch(trimmed)
			appendNode(&ir.Assertion{Base: base, Matcher: m[1], Subject: m[2]})

		default:
			if test != nil || hook != nil {
				appendNode(&ir.RawCode{Base: base, Code: trimmed})
			} else if suite == nil {
				file.Body = append(file.Body, &ir.RawCode{Base: base, Code: trimmed})
			}
		}

		depth += javaBraceDelta(trimmed)
		if (test != nil || hook != nil) && depth < bodyDepth {
			if hook != nil && suite != nil {
				suite.Hooks = append(suite.Hooks, hook)
			} else if test != nil && suite != nil {
				suite.Tests = append(suite.Tests, test)
			} else if test != nil {
				file.Body = append(file.Body, test)
			}
			test, hook = nil, nil
		}
	}

	// Unclosed method at EOF still belongs to its suite.
	if hook != nil && suite != nil {
		suite.Hooks = append(suite.Hooks, hook)
	}
	if test != nil {
		if suite != nil {
			suite.Tests = append(suite.Tests, test)
		} else {
			file.Body = append(file.Body, test)
		}
	}

	return file
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func javaBraceDelta(line string) int {
	delta := 0
	inString, inChar, escaped := false, false, false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"' && !inChar:
			inString = !inString
		case c == '\'' && !inString:
			inChar = !inChar
		case inString || inChar:
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return delta
		case c == '{':
			delta++
		case c == '}':
			delta--
		}
	}
	return delta
}

// Emit renders a JUnit 5 class skeleton from the IR tree. Test and hook
// bodies become marker blocks plus commented original lines: the
// structure converts, the statements do not.
func (a *Adapter) Emit(file *ir.TestFile, source string) adapter.EmitResult {
	var (
		b     strings.Builder
		todos []string
	)

	b.WriteString("import org.junit.jupiter.api.*;\n")
	b.WriteString("import static org.junit.jupiter.api.Assertions.*;\n\n")

	emitClass := func(name string, hooks []*ir.Hook, tests []ir.Node) {
		fmt.Fprintf(&b, "class %s {\n", className(name))
		for _, h := range hooks {
			b.WriteString(hookMethod(h, &todos))
		}
		for _, n := range tests {
			tc, ok := n.(*ir.TestCase)
			if !ok {
				continue
			}
			b.WriteString(testMethod(tc, &todos))
		}
		b.WriteString("}\n")
	}

	var loose []ir.Node
	wroteClass := false
	for _, n := range file.Body {
		if s, ok := n.(*ir.TestSuite); ok {
			emitClass(s.Name, s.Hooks, s.Tests)
			wroteClass = true
			continue
		}
		loose = append(loose, n)
	}
	if hasTests(loose) || !wroteClass {
		emitClass("converted tests", nil, loose)
	}

	var warnings []string
	focused := false
	ir.Walk(file, func(n ir.Node) bool {
		switch node := n.(type) {
		case *ir.TestSuite:
			focused = focused || ir.HasModifier(node.Modifiers, ir.ModifierOnly)
		case *ir.TestCase:
			focused = focused || ir.HasModifier(node.Modifiers, ir.ModifierOnly)
		}
		return true
	})
	if focused {
		warnings = append(warnings, "focused tests have no JUnit 5 equivalent; run the class selectively instead")
	}

	return adapter.EmitResult{
		Output:    b.String(),
		Supported: len(todos) == 0,
		Todos:     todos,
		Warnings:  warnings,
	}
}

func hasTests(nodes []ir.Node) bool {
	for _, n := range nodes {
		if _, ok := n.(*ir.TestCase); ok {
			return true
		}
	}
	return false
}

func hookAnnotation(t ir.HookType) (string, string, bool) {
	switch t {
	case ir.HookBeforeAll:
		return "@BeforeAll", "setUpAll", true
	case ir.HookAfterAll:
		return "@AfterAll", "tearDownAll", true
	case ir.HookBeforeEach:
		return "@BeforeEach", "setUp", false
	case ir.HookAfterEach:
		return "@AfterEach", "tearDown", false
	}
	return "@BeforeEach", "setUp", false
}

func hookMethod(h *ir.Hook, todos *[]string) string {
	annotation, name, static := hookAnnotation(h.Type)
	var b strings.Builder
	fmt.Fprintf(&b, "    %s\n", annotation)
	if static {
		fmt.Fprintf(&b, "    static void %s() {\n", name)
	} else {
		fmt.Fprintf(&b, "    void %s() {\n", name)
	}
	b.WriteString(portedBody(h.Body, h.Source(), todos))
	b.WriteString("    }\n\n")
	return b.String()
}

func testMethod(tc *ir.TestCase, todos *[]string) string {
	var b strings.Builder
	if ir.HasModifier(tc.Modifiers, ir.ModifierSkip) {
		b.WriteString("    @Disabled\n")
	}
	b.WriteString("    @Test\n")
	fmt.Fprintf(&b, "    @DisplayName(%q)\n", tc.Name)
	fmt.Fprintf(&b, "    void %s() {\n", methodName(tc.Name))
	b.WriteString(portedBody(tc.Body, tc.Source(), todos))
	b.WriteString("    }\n\n")
	return b.String()
}

func portedBody(body []ir.Node, origin string, todos *[]string) string {
	desc := "test body requires manual porting to Java"
	marker := todo.FormatIndent(todo.Todo{
		ID:          "JAVA-PORT",
		Description: desc,
		Original:    origin,
		Action:      "translate the statements below into Java",
	}, "        ")
	*todos = append(*todos, desc)

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString("\n")
	for _, n := range body {
		if src := strings.TrimSpace(n.Source()); src != "" {
			fmt.Fprintf(&b, "        // %s\n", src)
		}
	}
	return b.String()
}

var wordRe = regexp.MustCompile(`[A-Za-z0-9]+`)

func className(name string) string {
	words := wordRe.FindAllString(name, -1)
	if len(words) == 0 {
		return "ConvertedTests"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	if !strings.HasSuffix(b.String(), "Test") && !strings.HasSuffix(b.String(), "Tests") {
		b.WriteString("Test")
	}
	return b.String()
}

func methodName(name string) string {
	words := wordRe.FindAllString(name, -1)
	if len(words) == 0 {
		return "unnamedTest"
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w[:1]))
		} else {
			b.WriteString(strings.ToUpper(w[:1]))
		}
		b.WriteString(w[1:])
	}
	out := b.String()
	if out[0] >= '0' && out[0] <= '9' {
		out = "test" + strings.ToUpper(out[:1]) + out[1:]
	}
	return out
}
