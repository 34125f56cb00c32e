// Package formatter defines the pluggable event sink the build execution
// core reports progress through, plus a handful of reference
// implementations (text, JSON, and colorized human output). Every event
// method returns a string, possibly empty, that the core writes verbatim
// to the configured writer — the core performs no batching or filtering
// of its own; text vs. JSON vs. color is chosen once, at construction.
package formatter

import (
	"github.com/vk/buildexec/internal/invocation"
)

// Phase distinguishes the two passes the invocation runner makes over a
// target's invocations.
type Phase int

const (
	ProductStructurePhase Phase = iota
	ContentPhase
)

func (p Phase) String() string {
	if p == ProductStructurePhase {
		return "structure"
	}
	return "content"
}

// BuildContext carries the identity of one build run into the build- and
// target-level formatter events; see internal/buildctx.
type BuildContext struct {
	ID   string
	Name string
}

// Formatter is the event-emitting sink the executor driver, target
// builder, auxiliary file writer, and invocation runner report through.
type Formatter interface {
	Begin(ctx BuildContext) string
	Success(ctx BuildContext) string
	Failure(ctx BuildContext, failing []*invocation.Invocation) string

	BeginTarget(ctx BuildContext, target *invocation.Target) string
	FinishTarget(ctx BuildContext, target *invocation.Target) string

	BeginCheckDependencies(target *invocation.Target) string
	FinishCheckDependencies(target *invocation.Target) string

	BeginWriteAuxiliaryFiles(target *invocation.Target) string
	FinishWriteAuxiliaryFiles(target *invocation.Target) string

	CreateAuxiliaryDirectory(path string) string
	WriteAuxiliaryFile(path string) string
	SetAuxiliaryExecutable(path string) string

	BeginCreateProductStructure(target *invocation.Target) string
	FinishCreateProductStructure(target *invocation.Target) string

	BeginInvocation(inv *invocation.Invocation, displayName string, phase Phase) string
	FinishInvocation(inv *invocation.Invocation, displayName string, phase Phase) string
}
