package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSampleFile() *TestFile {
	return &TestFile{
		Base:      NewBase(1, 1, ""),
		Framework: "jest",
		Language:  LanguageTypeScript,
		Imports: []*Import{
			{Base: NewBase(1, 1, `import { thing } from './thing';`), Module: "./thing", ImportKind: ImportRelative},
		},
		Body: []Node{
			&TestSuite{
				Base: NewBase(3, 1, "describe('outer', () => {"),
				Name: "outer",
				Hooks: []*Hook{
					{Base: NewBase(4, 3, "beforeEach(() => {"), Type: HookBeforeEach},
				},
				Tests: []Node{
					&TestCase{
						Base: NewBase(7, 3, "it('works', () => {"),
						Name: "works",
						Body: []Node{
							&Assertion{Base: NewBase(8, 5, "expect(x).toBe(1);"), Matcher: "toBe", Subject: "x", Expected: "1"},
						},
					},
					&TestSuite{
						Base: NewBase(11, 3, "describe('inner', () => {"),
						Name: "inner",
						Tests: []Node{
							&TestCase{Base: NewBase(12, 5, "it('nested', () => {"), Name: "nested"},
						},
					},
				},
			},
		},
	}
}

func TestWalkVisitsAllNodes(t *testing.T) {
	file := buildSampleFile()

	var kinds []NodeKind
	Walk(file, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	assert.Equal(t, []NodeKind{
		KindTestFile,
		KindImport,
		KindTestSuite,
		KindHook,
		KindTestCase,
		KindAssertion,
		KindTestSuite,
		KindTestCase,
	}, kinds)
}

func TestImportKindDistinctFromNodeKind(t *testing.T) {
	imp := &Import{Base: NewBase(1, 1, "const chai = require('chai');"), Module: "chai", ImportKind: ImportLibrary}

	assert.Equal(t, KindImport, imp.Kind())
	assert.Equal(t, ImportLibrary, imp.ImportKind)
}

func TestWalkStopsDescent(t *testing.T) {
	file := buildSampleFile()

	count := 0
	Walk(file, func(n Node) bool {
		count++
		return n.Kind() != KindTestSuite
	})

	// Root, import, and the outer suite only: the suite's children are skipped.
	assert.Equal(t, 3, count)
}

func TestCountTests(t *testing.T) {
	file := buildSampleFile()
	assert.Equal(t, 2, file.CountTests())
	assert.Equal(t, 2, file.CountKind(KindTestSuite))
	assert.Equal(t, 1, file.CountKind(KindAssertion))
}

func TestLineNumbersMonotonicAcrossSiblings(t *testing.T) {
	file := buildSampleFile()

	suite, ok := file.Body[0].(*TestSuite)
	assert.True(t, ok)

	prev := 0
	for _, n := range suite.Tests {
		assert.GreaterOrEqual(t, n.Pos().Line, prev)
		prev = n.Pos().Line
	}
}

func TestNewBaseDefaults(t *testing.T) {
	base := NewBase(10, 3, "cy.visit('/')")

	assert.Equal(t, 10, base.Location.Line)
	assert.Equal(t, 3, base.Location.Column)
	assert.Equal(t, ConfidenceConverted, base.Confidence)
	assert.Equal(t, "cy.visit('/')", base.Source())
}

func TestHasModifier(t *testing.T) {
	mods := []Modifier{ModifierSkip}
	assert.True(t, HasModifier(mods, ModifierSkip))
	assert.False(t, HasModifier(mods, ModifierOnly))
	assert.False(t, HasModifier(nil, ModifierOnly))
}
