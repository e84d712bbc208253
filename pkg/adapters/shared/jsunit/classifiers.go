// Package jsunit provides the line classifiers and rewrite rule tables
// shared by the JavaScript unit-test framework adapters (Jest, Vitest,
// Mocha, Jasmine). Each adapter composes these with its own
// framework-specific rules.
package jsunit

import (
	"regexp"

	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

// Canonical mock-call kinds shared across frameworks.
const (
	MockCreate      = "createMock"
	MockSpyOnMethod = "spyOnMethod"
	MockModule      = "moduleMock"
	MockFakeTimers  = "fakeTimers"
	MockAssertion   = "mockAssertion"
	MockRestore     = "restoreMock"
)

var (
	expectCallRe  = regexp.MustCompile(`^(?:await\s+)?expect\((.*?)\)\.(not\.)?((?:\w+\.)*\w+)\((.*?)\);?\s*$`)
	expectChainRe = regexp.MustCompile(`^expect\((.*?)\)\.((?:\w+\.)+\w+);?\s*$`)

	mockAssertRe = regexp.MustCompile(`toHaveBeenCalled|toHaveBeenCalledWith|toHaveBeenCalledTimes|to\.have\.been\.called|toHaveReturned`)
)

// ExpectAssertion classifies expect(...) call-style assertions, covering
// both Jest-style expect(x).toBe(y) and chai-style expect(x).to.equal(y).
func ExpectAssertion() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: expectCallRe,
		Build: func(m []string, base ir.Base) ir.Node {
			matcher := m[3]
			negated := m[2] != ""
			if rest, ok := trimChaiPrefix(matcher); ok {
				matcher = rest
			}
			if isChaiNegation(m[3]) {
				negated = true
			}
			if mockAssertRe.MatchString(m[3]) {
				return &ir.MockCall{Base: base, Action: MockAssertion, Target: m[1], Args: []string{m[4]}}
			}
			return &ir.Assertion{
				Base:     base,
				Matcher:  matcher,
				Subject:  m[1],
				Expected: m[4],
				Negated:  negated,
			}
		},
	}
}

// ChainAssertion classifies call-less chai chains like
// expect(x).to.be.null.
func ChainAssertion() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: expectChainRe,
		Build: func(m []string, base ir.Base) ir.Node {
			matcher := m[2]
			negated := isChaiNegation(matcher)
			if rest, ok := trimChaiPrefix(matcher); ok {
				matcher = rest
			}
			if mockAssertRe.MatchString(m[2]) {
				return &ir.MockCall{Base: base, Action: MockAssertion, Target: m[1]}
			}
			return &ir.Assertion{Base: base, Matcher: matcher, Subject: m[1], Negated: negated}
		},
	}
}

func trimChaiPrefix(matcher string) (string, bool) {
	prefixes := []string{"to.not.be.", "to.not.", "not.to.", "to.be.", "to.have.", "to.deep.", "to.", "be."}
	for _, p := range prefixes {
		if len(matcher) > len(p) && matcher[:len(p)] == p {
			return matcher[len(p):], true
		}
	}
	return matcher, false
}

func isChaiNegation(matcher string) bool {
	return regexp.MustCompile(`(?:^|\.)not\.`).MatchString(matcher)
}

// mockKinds maps framework mock function names to canonical kinds.
var mockKinds = map[string]string{
	"fn":                  MockCreate,
	"createSpy":           MockCreate,
	"createSpyObj":        MockCreate,
	"stub":                MockCreate,
	"spy":                 MockSpyOnMethod,
	"spyOn":               MockSpyOnMethod,
	"mock":                MockModule,
	"doMock":              MockModule,
	"unmock":              MockModule,
	"useFakeTimers":       MockFakeTimers,
	"useRealTimers":       MockFakeTimers,
	"advanceTimersByTime": MockFakeTimers,
	"runAllTimers":        MockFakeTimers,
	"clearAllMocks":       MockRestore,
	"resetAllMocks":       MockRestore,
	"restoreAllMocks":     MockRestore,
	"restore":             MockRestore,
}

// MockKind maps a framework mock function name to its canonical kind.
// Unknown names map to MockCreate.
func MockKind(name string) string {
	if kind, ok := mockKinds[name]; ok {
		return kind
	}
	return MockCreate
}

// MockClassifier classifies namespace.method(...) mock calls for the
// given namespaces (jest, vi, sinon, jasmine).
func MockClassifier(namespaces ...string) jsparse.Classifier {
	pattern := regexp.MustCompile(`\b(` + joinAlternatives(namespaces) + `)\.(\w+)\(([^)]*)\)`)
	return jsparse.Classifier{
		Pattern: pattern,
		Build: func(m []string, base ir.Base) ir.Node {
			node := &ir.MockCall{Base: base, Action: MockKind(m[2])}
			if m[3] != "" {
				node.Target = m[3]
			}
			return node
		},
	}
}

// SpyOnClassifier classifies Jasmine's bare spyOn(obj, 'method') calls.
func SpyOnClassifier() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: regexp.MustCompile(`^(?:const|let|var)?\s*\w*\s*=?\s*spyOn\(([^)]*)\)`),
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.MockCall{Base: base, Action: MockSpyOnMethod, Target: m[1]}
		},
	}
}

func joinAlternatives(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "|"
		}
		out += regexp.QuoteMeta(n)
	}
	return out
}
