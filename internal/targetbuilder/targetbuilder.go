// Package targetbuilder builds a single target: it writes the target's
// auxiliary files, orders its invocations by data dependency, and runs
// them in two passes (product structure, then content), following a
// "prepare, order, run" pipeline shape.
package targetbuilder

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/buildexec/internal/auxfiles"
	"github.com/vk/buildexec/internal/formatter"
	"github.com/vk/buildexec/internal/invocation"
	"github.com/vk/buildexec/internal/registry"
	"github.com/vk/buildexec/internal/runner"
	"github.com/vk/buildexec/internal/sorter"
	"github.com/vk/buildexec/internal/subproc"
)

// Result reports whether the target built successfully and, if not,
// which invocation(s) failed. Cycle is set only when the failure was an
// invocation-graph cycle, which the caller does not treat as a Go error
// (it was already reported to the error stream) unlike every other
// failure this reports.
type Result struct {
	OK      bool
	Failing []*invocation.Invocation
	Cycle   bool
}

// Build writes auxiliary files, orders invocations, and runs the
// structure phase followed by the content phase. It stops at the first
// failing stage. A data-dependency cycle within the target's invocations
// is reported as a failure with no failing invocations named, matching
// the target dependency graph's cycle-reporting asymmetry; the diagnostic
// is written to errWriter before Build returns.
func Build(ctx context.Context, logger *slog.Logger, errWriter io.Writer, fs auxfiles.FS, reg *registry.Registry, sub subproc.Runner, fmtr formatter.Formatter, target *invocation.Target, invocations []*invocation.Invocation, dryRun bool, print func(string)) Result {
	if !auxfiles.Write(fs, fmtr, target, invocations, dryRun, print) {
		return Result{OK: false}
	}

	ok, ordered := sorter.Sort(logger, invocations)
	if !ok {
		fmt.Fprintln(errWriter, "cycle detected building invocation graph")
		return Result{OK: false, Cycle: true}
	}

	print(fmtr.BeginCreateProductStructure(target))
	structureResult := runner.Run(ctx, reg, sub, fmtr, ordered, formatter.ProductStructurePhase, dryRun, print)
	print(fmtr.FinishCreateProductStructure(target))
	if !structureResult.OK {
		return Result{OK: false, Failing: structureResult.Failing}
	}

	contentResult := runner.Run(ctx, reg, sub, fmtr, ordered, formatter.ContentPhase, dryRun, print)
	if !contentResult.OK {
		return Result{OK: false, Failing: contentResult.Failing}
	}

	return Result{OK: true}
}
