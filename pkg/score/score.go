// Package score estimates how faithfully an emitted file realized its IR
// tree's intent. The scorer checks emitted lines against per-framework
// baseline patterns independently of what the emitter claims, catching
// emitters that silently produced a no-op or comment instead of real
// target code. The result is a signal for human review, not a guarantee.
package score

import (
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
	"github.com/hamlet-dev/hamlet/pkg/todo"
)

// Bucket groups confidence scores for reporting.
type Bucket string

const (
	BucketHigh   Bucket = "high"   // >= 90
	BucketMedium Bucket = "medium" // 70..89
	BucketLow    Bucket = "low"    // < 70
	// BucketFailed is assigned by the orchestrator when a file could not
	// be read or converted at all; the scorer itself never produces it.
	BucketFailed Bucket = "failed"
)

// BucketFor maps a 0..100 confidence to its reporting bucket.
func BucketFor(confidence int) Bucket {
	switch {
	case confidence >= 90:
		return BucketHigh
	case confidence >= 70:
		return BucketMedium
	default:
		return BucketLow
	}
}

// Baseline holds the per-node-kind sanity patterns for one target
// framework: "does this line contain something an Assertion emitted into
// this framework would contain".
type Baseline struct {
	patterns map[ir.NodeKind][]*regexp.Regexp
}

func newBaseline(patterns map[ir.NodeKind][]string) *Baseline {
	compiled := make(map[ir.NodeKind][]*regexp.Regexp, len(patterns))
	for kind, pats := range patterns {
		for _, p := range pats {
			compiled[kind] = append(compiled[kind], regexp.MustCompile(p))
		}
	}
	return &Baseline{patterns: compiled}
}

var (
	jestStyleBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite: {`\bdescribe(\.\w+)?\s*\(`},
		ir.KindTestCase:  {`\b(?:it|test)(\.\w+)?\s*\(`},
		ir.KindHook:      {`\b(?:before|after)(?:All|Each)?\s*\(`},
		ir.KindAssertion: {`\bexpect\s*\(`},
		ir.KindMockCall:  {`\b(?:jest|vi|jasmine|sinon)\.\w+|\bspyOn\s*\(`},
	}

	mochaBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite: {`\bdescribe(\.\w+)?\s*\(`},
		ir.KindTestCase:  {`\b(?:it|specify)(\.\w+)?\s*\(`},
		ir.KindHook:      {`\b(?:before|after)(?:Each)?\s*\(`},
		ir.KindAssertion: {`\bexpect\s*\(.*\)\.to\b|\bassert\.|\.should\.`},
		ir.KindMockCall:  {`\bsinon\.\w+`},
	}

	cypressBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite:  {`\bdescribe(\.\w+)?\s*\(`},
		ir.KindTestCase:   {`\bit(\.\w+)?\s*\(`},
		ir.KindHook:       {`\b(?:before|after)(?:Each)?\s*\(`},
		ir.KindAssertion:  {`\.should\s*\(|\bexpect\s*\(`},
		ir.KindNavigation: {`\bcy\.(?:visit|go|reload)\s*\(`},
		ir.KindMockCall:   {`\bcy\.(?:intercept|stub|spy|clock|tick)\s*\(`},
	}

	playwrightBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite:  {`\btest\.describe(\.\w+)?\s*\(`},
		ir.KindTestCase:   {`\btest(\.\w+)?\s*\(`},
		ir.KindHook:       {`\btest\.(?:before|after)(?:All|Each)\s*\(`},
		ir.KindAssertion:  {`\bexpect\s*\(`},
		ir.KindNavigation: {`\bpage\.(?:goto|goBack|goForward|reload)\s*\(`},
		ir.KindMockCall:   {`\bpage\.route\s*\(|\bpage\.clock\b`},
	}

	webdriverioBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite:  {`\bdescribe(\.\w+)?\s*\(`},
		ir.KindTestCase:   {`\bit(\.\w+)?\s*\(`},
		ir.KindHook:       {`\b(?:before|after)(?:Each)?\s*\(`},
		ir.KindAssertion:  {`\bexpect\s*\(`},
		ir.KindNavigation: {`\bbrowser\.(?:url|back|forward|refresh)\s*\(`},
		ir.KindMockCall:   {`\bbrowser\.mock\s*\(`},
	}

	puppeteerBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite:  {`\bdescribe(\.\w+)?\s*\(`},
		ir.KindTestCase:   {`\b(?:it|test)(\.\w+)?\s*\(`},
		ir.KindHook:       {`\b(?:before|after)(?:All|Each)?\s*\(`},
		ir.KindAssertion:  {`\bexpect\s*\(`},
		ir.KindNavigation: {`\bpage\.(?:goto|goBack|goForward|reload)\s*\(`},
		ir.KindMockCall:   {`\bpage\.setRequestInterception\s*\(|\bjest\.\w+`},
	}

	seleniumBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite:  {`\bdescribe(\.\w+)?\s*\(`},
		ir.KindTestCase:   {`\bit(\.\w+)?\s*\(`},
		ir.KindHook:       {`\b(?:before|after)(?:All|Each)?\s*\(`},
		ir.KindAssertion:  {`\bassert\.|\bexpect\s*\(`},
		ir.KindNavigation: {`\bdriver\.(?:get|navigate)\b`},
	}

	testcafeBaseline = map[ir.NodeKind][]string{
		ir.KindTestSuite:  {`\bfixture\s*(?:\(|` + "`" + `)`},
		ir.KindTestCase:   {`\btest(\.\w+)?\s*\(`},
		ir.KindHook:       {`\.(?:before|after)(?:Each)?\s*\(`},
		ir.KindAssertion:  {`\bt\.expect\b|\.expect\s*\(`},
		ir.KindNavigation: {`\bt\.navigateTo\s*\(`},
	}

	junit5Baseline = map[ir.NodeKind][]string{
		ir.KindTestSuite: {`\bclass\s+\w+`},
		ir.KindTestCase:  {`@Test|@ParameterizedTest`},
		ir.KindHook:      {`@(?:BeforeAll|AfterAll|BeforeEach|AfterEach)\b`},
		ir.KindAssertion: {`\bAssertions\.\w+|\bassert\w+\s*\(`},
		ir.KindMockCall:  {`\bMockito\.\w+|\bmock\s*\(`},
	}

	baselines = map[string]*Baseline{
		adapter.FrameworkJest:        newBaseline(jestStyleBaseline),
		adapter.FrameworkVitest:      newBaseline(jestStyleBaseline),
		adapter.FrameworkJasmine:     newBaseline(jestStyleBaseline),
		adapter.FrameworkMocha:       newBaseline(mochaBaseline),
		adapter.FrameworkCypress:     newBaseline(cypressBaseline),
		adapter.FrameworkPlaywright:  newBaseline(playwrightBaseline),
		adapter.FrameworkWebdriverIO: newBaseline(webdriverioBaseline),
		adapter.FrameworkPuppeteer:   newBaseline(puppeteerBaseline),
		adapter.FrameworkSelenium:    newBaseline(seleniumBaseline),
		adapter.FrameworkTestCafe:    newBaseline(testcafeBaseline),
		adapter.FrameworkJUnit5:      newBaseline(junit5Baseline),
	}
)

// BaselineFor returns the baseline patterns for a target framework.
// Unknown frameworks fall back to the jest-style baseline.
func BaselineFor(target string) *Baseline {
	if b, ok := baselines[target]; ok {
		return b
	}
	return baselines[adapter.FrameworkJest]
}

// Scorable reports whether the baseline has patterns for the node's kind.
// Imports, comments, and raw code are not scored.
func (b *Baseline) Scorable(n ir.Node) bool {
	_, ok := b.patterns[n.Kind()]
	return ok
}

// Matches reports whether the emitted line plausibly realizes the node.
func (b *Baseline) Matches(line string, n ir.Node) bool {
	pats, ok := b.patterns[n.Kind()]
	if !ok {
		return false
	}
	for _, p := range pats {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// File computes the file-level confidence: the share of scorable nodes
// whose emitted output matched the target baseline, as an integer 0..100.
// A file with zero scorable nodes scores 100: nothing was lost.
func File(file *ir.TestFile, output, target string) int {
	baseline := BaselineFor(target)

	var nodes []ir.Node
	ir.Walk(file, func(n ir.Node) bool {
		if baseline.Scorable(n) {
			nodes = append(nodes, n)
		}
		return true
	})

	if len(nodes) == 0 {
		return 100
	}

	// Nodes whose original line survives only inside a TODO marker were
	// not converted, regardless of what else is on the line.
	unconverted := make(map[string]bool)
	for _, original := range todo.Originals(output) {
		unconverted[original] = true
	}

	lines := strings.Split(output, "\n")
	consumed := make([]bool, len(lines))

	matched := 0
	for _, n := range nodes {
		if unconverted[strings.TrimSpace(n.Source())] {
			continue
		}
		for i, line := range lines {
			if consumed[i] || strings.Contains(line, todo.Marker) {
				continue
			}
			if baseline.Matches(line, n) {
				consumed[i] = true
				matched++
				break
			}
		}
	}

	confidence := matched * 100 / len(nodes)
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
