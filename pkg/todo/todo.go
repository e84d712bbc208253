// Package todo renders and strips the HAMLET-TODO marker blocks emitters
// inject for constructs they cannot convert. The marker text is stable:
// round-trip stripping and grep-based review workflows depend on it.
package todo

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker is the fixed tag reviewers search for.
const Marker = "HAMLET-TODO"

// Defaults used when a caller leaves Todo fields empty.
const (
	DefaultID     = "UNSUPPORTED"
	DefaultAction = "port this call to the target framework manually"
)

// Todo describes one unconvertible construct.
type Todo struct {
	// ID is a short rule identifier (e.g. "CY-TASK").
	ID string
	// Description says what could not be converted.
	Description string
	// Original is the source line being preserved.
	Original string
	// Action is the recommended manual follow-up.
	Action string
}

// Format renders the canonical three-line marker block:
//
//	// HAMLET-TODO [<ID>]: <description>
//	// Original: <original source line>
//	// Manual action required: <action>
//
// The indent prefix is applied to every line so the block sits at the
// original construct's depth.
func Format(t Todo) string {
	return FormatIndent(t, "")
}

// FormatIndent renders the marker block with each line prefixed by indent.
func FormatIndent(t Todo, indent string) string {
	id := t.ID
	if id == "" {
		id = DefaultID
	}
	action := t.Action
	if action == "" {
		action = DefaultAction
	}
	original := strings.TrimSpace(t.Original)

	var b strings.Builder
	fmt.Fprintf(&b, "%s// %s [%s]: %s\n", indent, Marker, id, t.Description)
	fmt.Fprintf(&b, "%s// Original: %s\n", indent, original)
	fmt.Fprintf(&b, "%s// Manual action required: %s", indent, action)
	return b.String()
}

var (
	// Canonical three-line form.
	verboseBlock = regexp.MustCompile(`(?m)^[ \t]*// HAMLET-TODO \[[^\]\n]*\]:[^\n]*\n[ \t]*// Original:[^\n]*\n[ \t]*// Manual action required:[^\n]*\n?`)

	// Legacy compact form emitted by earlier versions:
	//   /* HAMLET-TODO: <description> */
	//   // <original source line>
	compactBlock = regexp.MustCompile(`(?m)^[ \t]*/\* HAMLET-TODO:[^\n]*\*/[ \t]*\n(?:[ \t]*//[^\n]*\n?)?`)

	tagLine      = regexp.MustCompile(`// HAMLET-TODO \[([^\]\n]*)\]:[ \t]*([^\n]*)`)
	originalLine = regexp.MustCompile(`(?m)^[ \t]*// Original:[ \t]*([^\n]*)`)
)

// Strip removes every marker block from source. It removes both the
// canonical form and the legacy compact form, so converting A->B->A over
// output produced by any version never accumulates stale markers.
func Strip(source string) string {
	out := verboseBlock.ReplaceAllString(source, "")
	out = compactBlock.ReplaceAllString(out, "")
	return out
}

// Count returns the number of marker blocks in source.
func Count(source string) int {
	return len(verboseBlock.FindAllString(source, -1)) +
		len(compactBlock.FindAllString(source, -1))
}

// Extract returns the description of every marker in source, in order.
func Extract(source string) []string {
	matches := tagLine.FindAllStringSubmatch(source, -1)
	if len(matches) == 0 {
		return nil
	}
	descriptions := make([]string, 0, len(matches))
	for _, m := range matches {
		descriptions = append(descriptions, strings.TrimSpace(m[2]))
	}
	return descriptions
}

// Originals returns the preserved original line of every canonical marker.
func Originals(source string) []string {
	matches := originalLine.FindAllStringSubmatch(source, -1)
	if len(matches) == 0 {
		return nil
	}
	originals := make([]string, 0, len(matches))
	for _, m := range matches {
		originals = append(originals, strings.TrimSpace(m[1]))
	}
	return originals
}
