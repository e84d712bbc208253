package ir

// Visitor receives every node during a walk. Returning false stops
// descending into the node's children.
type Visitor func(Node) bool

// Walk visits file and every node below it in source order.
func Walk(file *TestFile, visit Visitor) {
	if file == nil {
		return
	}
	if !visit(file) {
		return
	}
	for _, imp := range file.Imports {
		visit(imp)
	}
	walkNodes(file.Body, visit)
}

func walkNodes(nodes []Node, visit Visitor) {
	for _, n := range nodes {
		walkNode(n, visit)
	}
}

func walkNode(n Node, visit Visitor) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}

	switch node := n.(type) {
	case *TestSuite:
		for _, h := range node.Hooks {
			walkNode(h, visit)
		}
		walkNodes(node.Tests, visit)
	case *TestCase:
		walkNodes(node.Body, visit)
	case *Hook:
		walkNodes(node.Body, visit)
	case *TestFile, *Assertion, *Navigation, *MockCall, *Import, *RawCode, *Comment:
		// Leaves (TestFile only appears at the root via Walk).
	}
}

// CountTests returns the number of test cases in the file.
func (f *TestFile) CountTests() int {
	count := 0
	Walk(f, func(n Node) bool {
		if n.Kind() == KindTestCase {
			count++
		}
		return true
	})
	return count
}

// CountKind returns the number of nodes of the given kind in the file.
func (f *TestFile) CountKind(kind NodeKind) int {
	count := 0
	Walk(f, func(n Node) bool {
		if n.Kind() == kind {
			count++
		}
		return true
	})
	return count
}

// HasModifier reports whether mods contains m.
func HasModifier(mods []Modifier, m Modifier) bool {
	for _, candidate := range mods {
		if candidate == m {
			return true
		}
	}
	return false
}
