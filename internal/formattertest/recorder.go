// Package formattertest provides a formatter.Formatter recorder used by
// tests across this module to assert on exact event sequences, since
// most observable behavior here is expressed in terms of formatter
// event order.
package formattertest

import (
	"fmt"

	"github.com/vk/buildexec/internal/formatter"
	"github.com/vk/buildexec/internal/invocation"
)

// Recorder is a formatter.Formatter that appends one string per event to
// Events, in call order, and returns that same string to the caller (so
// tests can also assert on what the core would have printed).
type Recorder struct {
	Events []string
}

func (r *Recorder) record(event string) string {
	r.Events = append(r.Events, event)
	return event
}

func (r *Recorder) Begin(ctx formatter.BuildContext) string {
	return r.record("begin")
}

func (r *Recorder) Success(ctx formatter.BuildContext) string {
	return r.record("success")
}

func (r *Recorder) Failure(ctx formatter.BuildContext, failing []*invocation.Invocation) string {
	return r.record(fmt.Sprintf("failure(%d)", len(failing)))
}

func (r *Recorder) BeginTarget(ctx formatter.BuildContext, target *invocation.Target) string {
	return r.record("beginTarget(" + string(target.ID) + ")")
}

func (r *Recorder) FinishTarget(ctx formatter.BuildContext, target *invocation.Target) string {
	return r.record("finishTarget(" + string(target.ID) + ")")
}

func (r *Recorder) BeginCheckDependencies(target *invocation.Target) string {
	return r.record("beginCheckDependencies(" + string(target.ID) + ")")
}

func (r *Recorder) FinishCheckDependencies(target *invocation.Target) string {
	return r.record("finishCheckDependencies(" + string(target.ID) + ")")
}

func (r *Recorder) BeginWriteAuxiliaryFiles(target *invocation.Target) string {
	return r.record("beginWriteAuxiliaryFiles(" + string(target.ID) + ")")
}

func (r *Recorder) FinishWriteAuxiliaryFiles(target *invocation.Target) string {
	return r.record("finishWriteAuxiliaryFiles(" + string(target.ID) + ")")
}

func (r *Recorder) CreateAuxiliaryDirectory(path string) string {
	return r.record("createAuxiliaryDirectory(" + path + ")")
}

func (r *Recorder) WriteAuxiliaryFile(path string) string {
	return r.record("writeAuxiliaryFile(" + path + ")")
}

func (r *Recorder) SetAuxiliaryExecutable(path string) string {
	return r.record("setAuxiliaryExecutable(" + path + ")")
}

func (r *Recorder) BeginCreateProductStructure(target *invocation.Target) string {
	return r.record("beginCreateProductStructure(" + string(target.ID) + ")")
}

func (r *Recorder) FinishCreateProductStructure(target *invocation.Target) string {
	return r.record("finishCreateProductStructure(" + string(target.ID) + ")")
}

func (r *Recorder) BeginInvocation(inv *invocation.Invocation, displayName string, phase formatter.Phase) string {
	return r.record(fmt.Sprintf("beginInvocation(%s,%s)", displayName, phase))
}

func (r *Recorder) FinishInvocation(inv *invocation.Invocation, displayName string, phase formatter.Phase) string {
	return r.record(fmt.Sprintf("finishInvocation(%s,%s)", displayName, phase))
}

var _ formatter.Formatter = (*Recorder)(nil)
