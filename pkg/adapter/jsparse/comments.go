// Package jsparse provides the shared line-oriented scanner and source
// text helpers used by the JavaScript/TypeScript framework adapters.
//
// Parsing is deliberately heuristic: a single forward scan with
// brace-depth tracking, not an AST. Tree-sitter is used only to strip
// comments before framework detection, so commented-out framework calls
// do not skew detect scores.
package jsparse

import (
	"bytes"
	"context"
	"regexp"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const maxTreeDepth = 1000

var (
	jsLang   *sitter.Language
	tsLang   *sitter.Language
	javaLang *sitter.Language

	langOnce sync.Once
)

func initLanguages() {
	langOnce.Do(func() {
		jsLang = javascript.GetLanguage()
		tsLang = typescript.GetLanguage()
		javaLang = java.GetLanguage()
	})
}

func sitterLanguage(lang ir.Language) *sitter.Language {
	initLanguages()
	switch lang {
	case ir.LanguageJavaScript:
		return jsLang
	case ir.LanguageJava:
		return javaLang
	default:
		return tsLang
	}
}

// parseTree parses source with a fresh parser. A fresh parser per call
// avoids tree-sitter's sticky cancellation flag on reused parsers.
// Caller must Close the returned tree.
func parseTree(ctx context.Context, lang ir.Language, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(sitterLanguage(lang))

	return parser.ParseCtx(ctx, nil, source)
}

var commentStripRegex = regexp.MustCompile(`//.*|/\*[\s\S]*?\*/`)

// StripComments returns source with comments removed, for detection use.
// Uses tree-sitter to identify comment nodes accurately, avoiding false
// positives from comment-like text inside string literals. Falls back to
// regex stripping when the AST parse fails.
func StripComments(source string, lang ir.Language) string {
	content := []byte(source)

	// Fast path: no comment markers at all.
	if !bytes.Contains(content, []byte("//")) && !bytes.Contains(content, []byte("/*")) {
		return source
	}

	tree, err := parseTree(context.Background(), lang, content)
	if err != nil || tree == nil {
		return string(commentStripRegex.ReplaceAll(content, nil))
	}
	defer tree.Close()

	return string(removeCommentNodes(tree.RootNode(), content))
}

func removeCommentNodes(root *sitter.Node, content []byte) []byte {
	var ranges [][2]uint32
	collectCommentRanges(root, &ranges, 0)

	if len(ranges) == 0 {
		return content
	}

	result := make([]byte, 0, len(content))
	lastEnd := uint32(0)

	for _, r := range ranges {
		if r[0] < lastEnd {
			continue
		}
		if r[0] > lastEnd {
			result = append(result, content[lastEnd:r[0]]...)
		}
		lastEnd = r[1]
	}

	if lastEnd < uint32(len(content)) {
		result = append(result, content[lastEnd:]...)
	}

	return result
}

func collectCommentRanges(node *sitter.Node, ranges *[][2]uint32, depth int) {
	if node == nil || depth > maxTreeDepth {
		return
	}

	nodeType := node.Type()
	if nodeType == "comment" || nodeType == "line_comment" || nodeType == "block_comment" {
		*ranges = append(*ranges, [2]uint32{node.StartByte(), node.EndByte()})
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectCommentRanges(node.Child(i), ranges, depth+1)
	}
}
