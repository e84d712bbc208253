// Package ir defines the framework-agnostic intermediate representation
// shared by every framework adapter. Adapters parse source text into an
// [TestFile] tree and emitters consume it together with the original source.
package ir

// Language represents the programming language of a test file.
type Language string

// Supported source languages.
const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageJava       Language = "java"
)

// Confidence classifies how certain the parser was about a node.
// It reflects parse-time classification, not emit-time success; emit
// failures surface as TODO markers in the output, never by mutating the IR.
type Confidence string

const (
	// ConfidenceConverted is the default: the construct was recognized.
	ConfidenceConverted Confidence = "converted"
	// ConfidenceWarning marks constructs recognized with caveats.
	ConfidenceWarning Confidence = "warning"
	// ConfidenceUnconvertible marks constructs known to have no mapping.
	ConfidenceUnconvertible Confidence = "unconvertible"
)

// NodeKind identifies the variant of a [Node]. The set is closed: emitters
// and the scorer dispatch on it exhaustively.
type NodeKind string

const (
	KindTestFile   NodeKind = "test_file"
	KindTestSuite  NodeKind = "test_suite"
	KindTestCase   NodeKind = "test_case"
	KindHook       NodeKind = "hook"
	KindAssertion  NodeKind = "assertion"
	KindNavigation NodeKind = "navigation"
	KindMockCall   NodeKind = "mock_call"
	KindImport     NodeKind = "import"
	KindRawCode    NodeKind = "raw_code"
	KindComment    NodeKind = "comment"
)

// Modifier alters test or suite execution (.only, .skip).
type Modifier string

const (
	ModifierOnly Modifier = "only"
	ModifierSkip Modifier = "skip"
)

// HookType identifies a lifecycle hook.
type HookType string

const (
	HookBeforeAll  HookType = "beforeAll"
	HookAfterAll   HookType = "afterAll"
	HookBeforeEach HookType = "beforeEach"
	HookAfterEach  HookType = "afterEach"
)

// NavAction identifies a browser navigation action.
type NavAction string

const (
	NavVisit     NavAction = "visit"
	NavGoBack    NavAction = "goBack"
	NavGoForward NavAction = "goForward"
	NavReload    NavAction = "reload"
)

// ImportKind distinguishes library imports from relative ones.
type ImportKind string

const (
	ImportLibrary  ImportKind = "library"
	ImportRelative ImportKind = "relative"
)

// CommentKind classifies a comment line.
type CommentKind string

const (
	CommentLicense   CommentKind = "license"
	CommentDirective CommentKind = "directive"
	CommentInline    CommentKind = "inline"
)

// Location is a 1-based source position.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Base carries the fields shared by every node variant.
type Base struct {
	// Location is where the construct started in the original source.
	Location Location `json:"location"`
	// OriginalSource is the verbatim source text that produced the node.
	OriginalSource string `json:"originalSource,omitempty"`
	// Confidence is the parse-time classification certainty.
	Confidence Confidence `json:"confidence,omitempty"`
}

// Pos returns the node's source location.
func (b *Base) Pos() Location { return b.Location }

// Source returns the verbatim source text that produced the node.
func (b *Base) Source() string { return b.OriginalSource }

// NewBase builds a Base with the default converted confidence.
func NewBase(line, column int, source string) Base {
	return Base{
		Location:       Location{Line: line, Column: column},
		OriginalSource: source,
		Confidence:     ConfidenceConverted,
	}
}

// Node is the closed union of IR tree nodes.
type Node interface {
	Kind() NodeKind
	Pos() Location
	Source() string
}

// TestFile is the IR root. Built fresh per conversion, consumed once by
// emit, and discarded.
type TestFile struct {
	Base
	// Framework is the source framework the file was parsed as.
	Framework string `json:"framework"`
	// Language is the programming language of the file.
	Language Language `json:"language"`
	// Imports contains the file's import/require statements.
	Imports []*Import `json:"imports,omitempty"`
	// Body holds the ordered top-level nodes, including suites.
	Body []Node `json:"body,omitempty"`
}

// TestSuite groups tests; suites nest through Tests.
type TestSuite struct {
	Base
	Name      string     `json:"name"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
	Hooks     []*Hook    `json:"hooks,omitempty"`
	// Tests holds child suites and test cases in source order.
	Tests []Node `json:"tests,omitempty"`
}

// TestCase is a single test.
type TestCase struct {
	Base
	Name      string     `json:"name"`
	IsAsync   bool       `json:"isAsync,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
	Body      []Node     `json:"body,omitempty"`
}

// Hook is a lifecycle callback (beforeAll, afterEach, ...).
type Hook struct {
	Base
	Type    HookType `json:"hookType"`
	IsAsync bool     `json:"isAsync,omitempty"`
	Body    []Node   `json:"body,omitempty"`
}

// Assertion is a single expectation. Matcher is an open vocabulary
// (equal, deepEqual, be.visible, have.text, throws, ...).
type Assertion struct {
	Base
	Matcher  string `json:"kind"`
	Subject  string `json:"subject,omitempty"`
	Expected string `json:"expected,omitempty"`
	Negated  bool   `json:"isNegated,omitempty"`
}

// Navigation is a browser navigation command.
type Navigation struct {
	Base
	Action NavAction `json:"action"`
	URL    string    `json:"url,omitempty"`
}

// MockCall is a mock/spy/stub related call.
type MockCall struct {
	Base
	Action      string   `json:"kind"`
	Target      string   `json:"target,omitempty"`
	Args        []string `json:"args,omitempty"`
	ReturnValue string   `json:"returnValue,omitempty"`
}

// Import is an import or require statement.
type Import struct {
	Base
	// Module is the module specifier, or the raw line when unextractable.
	Module     string     `json:"source"`
	ImportKind ImportKind `json:"importKind"`
}

// RawCode preserves anything the parser could not classify.
type RawCode struct {
	Base
	Code string `json:"code"`
}

// Comment is a comment line or block opener.
type Comment struct {
	Base
	Text          string      `json:"text"`
	CommentKind   CommentKind `json:"commentKind"`
	PreserveExact bool        `json:"preserveExact,omitempty"`
}

func (*TestFile) Kind() NodeKind   { return KindTestFile }
func (*TestSuite) Kind() NodeKind  { return KindTestSuite }
func (*TestCase) Kind() NodeKind   { return KindTestCase }
func (*Hook) Kind() NodeKind       { return KindHook }
func (*Assertion) Kind() NodeKind  { return KindAssertion }
func (*Navigation) Kind() NodeKind { return KindNavigation }
func (*MockCall) Kind() NodeKind   { return KindMockCall }
func (*Import) Kind() NodeKind     { return KindImport }
func (*RawCode) Kind() NodeKind    { return KindRawCode }
func (*Comment) Kind() NodeKind    { return KindComment }
