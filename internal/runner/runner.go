// Package runner is the invocation runner: given a phase-ordered list of
// invocations, it dispatches each one to the built-in registry or the
// subprocess runner, skipping phonies and invocations from the other
// phase, and reports every dispatch through the formatter. Dispatch
// branches on whether an invocation names a builtin or a subprocess path,
// one invocation at a time in the order it was handed.
package runner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/buildexec/internal/formatter"
	"github.com/vk/buildexec/internal/invocation"
	"github.com/vk/buildexec/internal/registry"
	"github.com/vk/buildexec/internal/subproc"
)

// Result describes what happened running one phase's invocations.
type Result struct {
	OK      bool
	Failing []*invocation.Invocation
}

// Run dispatches every invocation in ordered belonging to phase, in
// order, stopping at the first failure. Phony invocations and
// invocations from the other phase are skipped without emitting begin
// or finish events. dryRun suppresses builtin/subprocess dispatch and
// output-directory creation but not the events themselves.
func Run(ctx context.Context, reg *registry.Registry, sub subproc.Runner, fmtr formatter.Formatter, ordered []*invocation.Invocation, phase formatter.Phase, dryRun bool, print func(string)) Result {
	wantStructure := phase == formatter.ProductStructurePhase

	for _, inv := range ordered {
		if inv.CreatesProductStructure != wantStructure {
			continue
		}
		if inv.Executable.IsPhony() {
			continue
		}

		displayName := inv.Executable.DisplayName
		if displayName == "" {
			displayName = inv.Executable.Builtin
		}

		print(fmtr.BeginInvocation(inv, displayName, phase))

		ok := true
		if !dryRun {
			if err := ensureOutputDirectories(inv); err != nil {
				ok = false
			} else {
				ok = dispatch(ctx, reg, sub, inv)
			}
		}

		print(fmtr.FinishInvocation(inv, displayName, phase))

		if !ok {
			return Result{OK: false, Failing: []*invocation.Invocation{inv}}
		}
	}

	return Result{OK: true}
}

func dispatch(ctx context.Context, reg *registry.Registry, sub subproc.Runner, inv *invocation.Invocation) bool {
	if inv.Executable.IsBuiltin() {
		driver, ok := reg.Lookup(inv.Executable.Builtin)
		if !ok {
			return false
		}
		code, err := driver.Run(ctx, inv.Arguments, inv.Environment, inv.WorkingDirectory)
		return err == nil && code == 0
	}

	ok, _, _, err := sub.Run(ctx, inv.Executable.Path, inv.Arguments, inv.Environment, inv.WorkingDirectory)
	return err == nil && ok
}

func ensureOutputDirectories(inv *invocation.Invocation) error {
	dirs := make(map[string]struct{})
	for _, out := range inv.Outputs.Sorted() {
		dirs[filepath.Dir(out)] = struct{}{}
	}
	for dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
