package rewrite

import "fmt"

// PipelineSet holds a target adapter's pipelines keyed by source
// framework, plus the generic pipeline used when no dedicated one
// exists.
type PipelineSet struct {
	Pipelines map[string]*Pipeline
	Generic   *Pipeline
}

// Emit applies the pipeline for the given source framework. When no
// dedicated pipeline is registered the generic one runs instead and the
// result carries a warning, so callers can surface the reduced fidelity.
func (s *PipelineSet) Emit(sourceFramework, source string) Result {
	p := s.Pipelines[sourceFramework]
	if p != nil {
		return p.Apply(source)
	}

	res := s.Generic.Apply(source)
	res.Warnings = append([]string{
		fmt.Sprintf("no dedicated conversion from %s; generic rules applied", sourceFramework),
	}, res.Warnings...)
	return res
}
