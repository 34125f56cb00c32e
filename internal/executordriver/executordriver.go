// Package executordriver is the top-level entry point of the build
// execution core: it orders the target graph, walks it in order, derives
// each target's environment and invocations through a fixture.Deriver,
// and hands each target to internal/targetbuilder.
package executordriver

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/buildexec/internal/auxfiles"
	"github.com/vk/buildexec/internal/buildctx"
	"github.com/vk/buildexec/internal/ctxlog"
	"github.com/vk/buildexec/internal/fixture"
	"github.com/vk/buildexec/internal/formatter"
	"github.com/vk/buildexec/internal/graph"
	"github.com/vk/buildexec/internal/invocation"
	"github.com/vk/buildexec/internal/registry"
	"github.com/vk/buildexec/internal/subproc"
	"github.com/vk/buildexec/internal/targetbuilder"
)

// Driver ties together every core collaborator for one process lifetime:
// a formatter (shared across every build run), a built-in registry
// (immutable after construction), a subprocess runner, and the dry-run
// flag. The logger used for diagnostics comes from ctx via ctxlog, not a
// field on Driver, so callers configure it the same way they configure
// any other context-scoped concern.
type Driver struct {
	Formatter formatter.Formatter
	Registry  *registry.Registry
	Runner    subproc.Runner
	DryRun    bool
	ErrWriter io.Writer
	Print     func(string)

	err error
}

// Err returns the last error Build recorded, or nil. Categories 1-3
// (target-graph cycle, missing target environment, invocation-graph
// cycle) are reported to ErrWriter and do not set Err; categories 4-7
// (auxiliary I/O, output-directory creation, unknown builtin, non-zero
// exit or spawn failure) set Err in addition to emitting a Failure
// formatter event.
func (d *Driver) Err() error {
	return d.err
}

// Build orders targetGraph, walks it in order, and builds every target
// it names via targets and deriver. It returns false as soon as a target
// graph cycle is detected or a target fails to build; a missing target
// environment is not fatal and simply skips that target.
func (d *Driver) Build(ctx context.Context, buildEnvironment fixture.Environment, bc *buildctx.Context, targetGraph *graph.Graph[invocation.TargetID], targets map[invocation.TargetID]*invocation.Target, deriver fixture.Deriver) bool {
	logger := ctxlog.FromContext(ctx)

	fc := bc.Formatter()
	d.print(d.Formatter.Begin(fc))

	ok, order := targetGraph.Ordered()
	if !ok {
		fmt.Fprintln(d.ErrWriter, "cycle detected in target dependencies")
		return false
	}

	for _, id := range order {
		target := targets[id]
		if target == nil {
			continue
		}

		d.print(d.Formatter.BeginTarget(fc, target))

		targetEnv, err := deriver.TargetEnvironment(buildEnvironment, target)
		if err != nil {
			fmt.Fprintf(d.ErrWriter, "couldn't create target environment for %s\n", target.Name)
			logger.Warn("couldn't create target environment", "target", target.Name, "error", err)
			d.print(d.Formatter.FinishTarget(fc, target))
			continue
		}

		d.print(d.Formatter.BeginCheckDependencies(target))
		invocations, err := deriver.Invocations(buildEnvironment, target, targetEnv)
		d.print(d.Formatter.FinishCheckDependencies(target))
		if err != nil {
			logger.Warn("couldn't derive invocations", "target", target.Name, "error", err)
			d.print(d.Formatter.FinishTarget(fc, target))
			continue
		}

		result := targetbuilder.Build(ctx, logger, d.ErrWriter, auxfiles.OSFS{}, d.Registry, d.Runner, d.Formatter, target, invocations, d.DryRun, d.print)
		if !result.OK {
			d.print(d.Formatter.FinishTarget(fc, target))
			if !result.Cycle {
				d.err = fmt.Errorf("target %q failed to build", target.Name)
			}
			d.print(d.Formatter.Failure(fc, result.Failing))
			return false
		}

		d.print(d.Formatter.FinishTarget(fc, target))
	}

	d.print(d.Formatter.Success(fc))
	return true
}

func (d *Driver) print(s string) {
	if d.Print != nil {
		d.Print(s)
	}
}
