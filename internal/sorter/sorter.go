// Package sorter builds the intra-target data-dependency graph from a set
// of invocations' input/output file sets and orders it, linking
// invocations both explicitly (input_dependencies) and implicitly
// (an input path matching another invocation's declared output),
// specialized to plain file-path sets rather than expression traversals.
package sorter

import (
	"log/slog"

	"github.com/vk/buildexec/internal/graph"
	"github.com/vk/buildexec/internal/invocation"
)

// Sort orders invocations so that every producer of a path precedes every
// consumer of that path. Paths not produced by any invocation in the set
// are silently ignored — they refer to source files or other pre-existing
// state. If two invocations claim the same output path, the later one
// (in slice order) wins the mapping; this is logged at Warn but is
// otherwise not an error, matching the distilled spec's invariant 1.
//
// Returns (false, nil) if the invocation graph has a cycle.
func Sort(logger *slog.Logger, invocations []*invocation.Invocation) (bool, []*invocation.Invocation) {
	if logger == nil {
		logger = slog.Default()
	}

	outputToInvocation := make(map[string]*invocation.Invocation)
	for _, inv := range invocations {
		for _, out := range inv.Outputs.Sorted() {
			if _, exists := outputToInvocation[out]; exists {
				logger.Warn("duplicate output registered while sorting invocations", "output", out)
			}
			outputToInvocation[out] = inv
		}
	}

	g := graph.New[*invocation.Invocation]()
	for _, inv := range invocations {
		g.Insert(inv, nil)

		var preds []*invocation.Invocation
		for _, set := range []invocation.PathSet{inv.Inputs, inv.PhonyInputs, inv.InputDependencies} {
			for _, p := range set.Sorted() {
				if producer, ok := outputToInvocation[p]; ok {
					preds = append(preds, producer)
				}
			}
		}
		if len(preds) > 0 {
			g.Insert(inv, preds)
		}
	}

	return g.Ordered()
}
