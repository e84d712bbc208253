package jsunit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
)

// Fallback builds a catch-all for a source framework's surviving native
// calls, describing the call taken from the line itself.
func Fallback(pattern, id, action string) rewrite.Fallback {
	re := regexp.MustCompile(pattern)
	return rewrite.Fallback{
		Pattern: re,
		ID:      id,
		Action:  action,
		Describe: func(line string) string {
			m := re.FindString(line)
			return fmt.Sprintf("no direct equivalent for %q", strings.TrimSuffix(m, "("))
		},
	}
}

// ImportStrips builds strip patterns for import/require lines of the
// given modules.
func ImportStrips(modules ...string) []*regexp.Regexp {
	strips := make([]*regexp.Regexp, 0, len(modules))
	for _, mod := range modules {
		quoted := regexp.QuoteMeta(mod)
		strips = append(strips, regexp.MustCompile(
			`^(?:import\b.*from\s*['"]`+quoted+`['"]|(?:const|let|var)\b.*=\s*require\(['"]`+quoted+`['"]\)|import\s*['"]`+quoted+`['"])`,
		))
	}
	return strips
}

// ChaiToJest converts chai/sinon-chai assertion chains into Jest-style
// matchers. Composite chains come before their generic prefixes.
func ChaiToJest() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\.to\.have\.been\.calledTimes\(`, `.toHaveBeenCalledTimes(`),
		rewrite.R(`\.to\.have\.been\.calledWith\(`, `.toHaveBeenCalledWith(`),
		rewrite.R(`\.to\.have\.been\.calledOnce\b;?`, `.toHaveBeenCalledTimes(1);`),
		rewrite.R(`\.to\.have\.been\.called\b;?`, `.toHaveBeenCalled();`),
		rewrite.R(`\.to\.not\.have\.been\.called\b;?`, `.not.toHaveBeenCalled();`),
		rewrite.R(`\.to\.deep\.equal\(`, `.toEqual(`),
		rewrite.R(`\.to\.not\.deep\.equal\(`, `.not.toEqual(`),
		rewrite.R(`\.to\.not\.equal\(`, `.not.toBe(`),
		rewrite.R(`\.to\.equal\(`, `.toBe(`),
		rewrite.R(`\.to\.eql\(`, `.toEqual(`),
		rewrite.R(`\.to\.have\.lengthOf\(`, `.toHaveLength(`),
		rewrite.R(`\.to\.have\.length\(`, `.toHaveLength(`),
		rewrite.R(`\.to\.have\.property\(`, `.toHaveProperty(`),
		rewrite.R(`\.to\.not\.include\(`, `.not.toContain(`),
		rewrite.R(`\.to\.include\(`, `.toContain(`),
		rewrite.R(`\.to\.contain\(`, `.toContain(`),
		rewrite.R(`\.to\.match\(`, `.toMatch(`),
		rewrite.R(`\.to\.not\.throw\b`, `.not.toThrow`),
		rewrite.R(`\.to\.throw\(`, `.toThrow(`),
		rewrite.R(`\.to\.throw\b;?`, `.toThrow();`),
		rewrite.R(`\.to\.be\.instanceOf\(`, `.toBeInstanceOf(`),
		rewrite.R(`\.to\.be\.null\b;?`, `.toBeNull();`),
		rewrite.R(`\.to\.not\.be\.null\b;?`, `.not.toBeNull();`),
		rewrite.R(`\.to\.be\.undefined\b;?`, `.toBeUndefined();`),
		rewrite.R(`\.to\.be\.true\b;?`, `.toBe(true);`),
		rewrite.R(`\.to\.be\.false\b;?`, `.toBe(false);`),
		rewrite.R(`\.to\.be\.ok\b;?`, `.toBeTruthy();`),
		rewrite.R(`\.to\.not\.exist\b;?`, `.toBeUndefined();`),
		rewrite.R(`\.to\.exist\b;?`, `.toBeDefined();`),
		rewrite.R(`\.to\.be\.greaterThan\(`, `.toBeGreaterThan(`),
		rewrite.R(`\.to\.be\.lessThan\(`, `.toBeLessThan(`),
		rewrite.R(`\.to\.be\.above\(`, `.toBeGreaterThan(`),
		rewrite.R(`\.to\.be\.below\(`, `.toBeLessThan(`),
	}
}

// JestToChai is the reverse table: Jest matchers into chai chains.
func JestToChai() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\.toHaveBeenCalledTimes\(`, `.to.have.been.calledTimes(`),
		rewrite.R(`\.toHaveBeenCalledWith\(`, `.to.have.been.calledWith(`),
		rewrite.R(`\.not\.toHaveBeenCalled\(\);?`, `.to.not.have.been.called;`),
		rewrite.R(`\.toHaveBeenCalled\(\);?`, `.to.have.been.called;`),
		rewrite.R(`\.not\.toEqual\(`, `.to.not.deep.equal(`),
		rewrite.R(`\.toEqual\(`, `.to.deep.equal(`),
		rewrite.R(`\.not\.toBe\(`, `.to.not.equal(`),
		rewrite.R(`\.toStrictEqual\(`, `.to.deep.equal(`),
		rewrite.R(`\.toBeNull\(\);?`, `.to.be.null;`),
		rewrite.R(`\.not\.toBeNull\(\);?`, `.to.not.be.null;`),
		rewrite.R(`\.toBeUndefined\(\);?`, `.to.be.undefined;`),
		rewrite.R(`\.toBeDefined\(\);?`, `.to.exist;`),
		rewrite.R(`\.toBeTruthy\(\);?`, `.to.be.ok;`),
		rewrite.R(`\.toBeFalsy\(\);?`, `.to.not.be.ok;`),
		rewrite.R(`\.toBeInstanceOf\(`, `.to.be.instanceOf(`),
		rewrite.R(`\.toHaveLength\(`, `.to.have.lengthOf(`),
		rewrite.R(`\.toHaveProperty\(`, `.to.have.property(`),
		rewrite.R(`\.not\.toContain\(`, `.to.not.include(`),
		rewrite.R(`\.toContain\(`, `.to.include(`),
		rewrite.R(`\.toMatch\(`, `.to.match(`),
		rewrite.R(`\.not\.toThrow\(`, `.to.not.throw(`),
		rewrite.R(`\.toThrow\(\);?`, `.to.throw;`),
		rewrite.R(`\.toThrow\(`, `.to.throw(`),
		rewrite.R(`\.toBeGreaterThan\(`, `.to.be.greaterThan(`),
		rewrite.R(`\.toBeLessThan\(`, `.to.be.lessThan(`),
		rewrite.R(`\.toBe\(true\);?`, `.to.be.true;`),
		rewrite.R(`\.toBe\(false\);?`, `.to.be.false;`),
		rewrite.R(`\.toBe\(`, `.to.equal(`),
	}
}

// SinonToJest converts sinon stubs/spies/timers into the jest namespace.
func SinonToJest() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bsinon\.stub\(\s*\)`, `jest.fn()`),
		rewrite.R(`\bsinon\.stub\(`, `jest.spyOn(`),
		rewrite.R(`\bsinon\.spy\(\s*\)`, `jest.fn()`),
		rewrite.R(`\bsinon\.spy\(`, `jest.spyOn(`),
		rewrite.R(`\bsinon\.fake\(\s*\)`, `jest.fn()`),
		rewrite.R(`\bsinon\.useFakeTimers\(`, `jest.useFakeTimers(`),
		rewrite.R(`\bsinon\.restore\(\)`, `jest.restoreAllMocks()`),
		rewrite.R(`\.returns\(`, `.mockReturnValue(`),
		rewrite.R(`\.resolves\(`, `.mockResolvedValue(`),
		rewrite.R(`\.rejects\(`, `.mockRejectedValue(`),
		rewrite.R(`\.callsFake\(`, `.mockImplementation(`),
	}
}

// JestToSinon is the reverse table.
func JestToSinon() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bjest\.fn\(\s*\)`, `sinon.stub()`),
		rewrite.R(`\bjest\.spyOn\(`, `sinon.spy(`),
		rewrite.R(`\bjest\.useFakeTimers\(`, `sinon.useFakeTimers(`),
		rewrite.R(`\bjest\.restoreAllMocks\(\)`, `sinon.restore()`),
		rewrite.R(`\bjest\.clearAllMocks\(\)`, `sinon.resetHistory()`),
		rewrite.R(`\.mockReturnValue\(`, `.returns(`),
		rewrite.R(`\.mockResolvedValue\(`, `.resolves(`),
		rewrite.R(`\.mockRejectedValue\(`, `.rejects(`),
		rewrite.R(`\.mockImplementation\(`, `.callsFake(`),
	}
}

// JestToVi renames known jest.* calls into the vi namespace.
func JestToVi() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bjest\.(fn|mock|doMock|unmock|spyOn|useFakeTimers|useRealTimers|advanceTimersByTime|runAllTimers|runOnlyPendingTimers|clearAllMocks|resetAllMocks|restoreAllMocks|resetModules|isolateModules)\(`, `vi.$1(`),
		rewrite.R(`\bjest\.requireActual\(`, `vi.importActual(`),
		rewrite.R(`\bjest\.setTimeout\((\d+)\)`, `vi.setConfig({ testTimeout: $1 })`),
	}
}

// ViToJest renames known vi.* calls into the jest namespace.
func ViToJest() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bvi\.(fn|mock|doMock|unmock|spyOn|useFakeTimers|useRealTimers|advanceTimersByTime|runAllTimers|runOnlyPendingTimers|clearAllMocks|resetAllMocks|restoreAllMocks|resetModules)\(`, `jest.$1(`),
		rewrite.R(`\bvi\.importActual\(`, `jest.requireActual(`),
	}
}

// JasmineToJest converts jasmine spies and the jasmine clock.
func JasmineToJest() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bjasmine\.createSpy\(\s*\)`, `jest.fn()`),
		rewrite.R(`\bjasmine\.createSpy\(([^)]*)\)`, `jest.fn()`),
		rewrite.R(`\bjasmine\.clock\(\)\.install\(\)`, `jest.useFakeTimers()`),
		rewrite.R(`\bjasmine\.clock\(\)\.uninstall\(\)`, `jest.useRealTimers()`),
		rewrite.R(`\bjasmine\.clock\(\)\.tick\(`, `jest.advanceTimersByTime(`),
		rewrite.R(`\bjasmine\.any\(`, `expect.any(`),
		rewrite.R(`\bjasmine\.objectContaining\(`, `expect.objectContaining(`),
		rewrite.R(`\bjasmine\.arrayContaining\(`, `expect.arrayContaining(`),
		rewrite.R(`\bjasmine\.stringMatching\(`, `expect.stringMatching(`),
		rewrite.R(`\bspyOn\(`, `jest.spyOn(`),
		rewrite.R(`\.and\.returnValue\(`, `.mockReturnValue(`),
		rewrite.R(`\.and\.callFake\(`, `.mockImplementation(`),
		rewrite.R(`\.and\.callThrough\(\)`, ``),
		rewrite.R(`\.calls\.reset\(\)`, `.mockClear()`),
		rewrite.R(`\.calls\.count\(\)`, `.mock.calls.length`),
	}
}

// JestToJasmine is the reverse table.
func JestToJasmine() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bjest\.fn\(\s*\)`, `jasmine.createSpy()`),
		rewrite.R(`\bjest\.spyOn\(`, `spyOn(`),
		rewrite.R(`\bjest\.useFakeTimers\(\)`, `jasmine.clock().install()`),
		rewrite.R(`\bjest\.useRealTimers\(\)`, `jasmine.clock().uninstall()`),
		rewrite.R(`\bjest\.advanceTimersByTime\(`, `jasmine.clock().tick(`),
		rewrite.R(`\bexpect\.any\(`, `jasmine.any(`),
		rewrite.R(`\bexpect\.objectContaining\(`, `jasmine.objectContaining(`),
		rewrite.R(`\.mockReturnValue\(`, `.and.returnValue(`),
		rewrite.R(`\.mockImplementation\(`, `.and.callFake(`),
		rewrite.R(`\.mockClear\(\)`, `.calls.reset()`),
	}
}

// MochaHooksToJest renames Mocha/TDD hook keywords to the Jest family.
func MochaHooksToJest() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`^(\s*)before\(`, `${1}beforeAll(`),
		rewrite.R(`^(\s*)after\(`, `${1}afterAll(`),
		rewrite.R(`^(\s*)suiteSetup\(`, `${1}beforeAll(`),
		rewrite.R(`^(\s*)suiteTeardown\(`, `${1}afterAll(`),
		rewrite.R(`^(\s*)setup\(`, `${1}beforeEach(`),
		rewrite.R(`^(\s*)teardown\(`, `${1}afterEach(`),
		rewrite.R(`^(\s*)context\(`, `${1}describe(`),
		rewrite.R(`^(\s*)specify\(`, `${1}it(`),
	}
}

// JasmineStructureToJest renames Jasmine's focused/excluded shorthands.
func JasmineStructureToJest() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`^(\s*)fdescribe\(`, `${1}describe.only(`),
		rewrite.R(`^(\s*)xdescribe\(`, `${1}describe.skip(`),
		rewrite.R(`^(\s*)fit\(`, `${1}it.only(`),
		rewrite.R(`^(\s*)xit\(`, `${1}it.skip(`),
	}
}

// JestStructureToJasmine is the reverse: focus/skip modifiers into
// Jasmine's shorthands.
func JestStructureToJasmine() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`^(\s*)describe\.only\(`, `${1}fdescribe(`),
		rewrite.R(`^(\s*)describe\.skip\(`, `${1}xdescribe(`),
		rewrite.R(`^(\s*)(?:it|test)\.only\(`, `${1}fit(`),
		rewrite.R(`^(\s*)(?:it|test)\.skip\(`, `${1}xit(`),
		rewrite.R(`^(\s*)test\(`, `${1}it(`),
	}
}

// JestHooksToMocha renames Jest hook keywords to Mocha's BDD set.
func JestHooksToMocha() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`^(\s*)beforeAll\(`, `${1}before(`),
		rewrite.R(`^(\s*)afterAll\(`, `${1}after(`),
		rewrite.R(`^(\s*)test\(`, `${1}it(`),
		rewrite.R(`^(\s*)test\.only\(`, `${1}it.only(`),
		rewrite.R(`^(\s*)test\.skip\(`, `${1}it.skip(`),
		rewrite.R(`^(\s*)test\.todo\(`, `${1}it.skip(`),
	}
}
