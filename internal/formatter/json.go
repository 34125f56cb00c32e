package formatter

import (
	"encoding/json"

	"github.com/vk/buildexec/internal/invocation"
)

// JSON is a Formatter that emits one JSON object per event, matching the
// teacher's slog.NewJSONHandler option in internal/app/logger.go
// generalized from log records to build events.
type JSON struct{}

type jsonEvent struct {
	Event       string `json:"event"`
	Build       string `json:"build,omitempty"`
	Target      string `json:"target,omitempty"`
	Path        string `json:"path,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Phase       string `json:"phase,omitempty"`
	Failing     int    `json:"failing,omitempty"`
}

func (JSON) encode(e jsonEvent) string {
	b, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (j JSON) Begin(ctx BuildContext) string {
	return j.encode(jsonEvent{Event: "begin", Build: ctx.Name})
}

func (j JSON) Success(ctx BuildContext) string {
	return j.encode(jsonEvent{Event: "success", Build: ctx.Name})
}

func (j JSON) Failure(ctx BuildContext, failing []*invocation.Invocation) string {
	return j.encode(jsonEvent{Event: "failure", Build: ctx.Name, Failing: len(failing)})
}

func (j JSON) BeginTarget(ctx BuildContext, target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "beginTarget", Target: target.Name})
}

func (j JSON) FinishTarget(ctx BuildContext, target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "finishTarget", Target: target.Name})
}

func (j JSON) BeginCheckDependencies(target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "beginCheckDependencies", Target: target.Name})
}

func (j JSON) FinishCheckDependencies(target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "finishCheckDependencies", Target: target.Name})
}

func (j JSON) BeginWriteAuxiliaryFiles(target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "beginWriteAuxiliaryFiles", Target: target.Name})
}

func (j JSON) FinishWriteAuxiliaryFiles(target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "finishWriteAuxiliaryFiles", Target: target.Name})
}

func (j JSON) CreateAuxiliaryDirectory(path string) string {
	return j.encode(jsonEvent{Event: "createAuxiliaryDirectory", Path: path})
}

func (j JSON) WriteAuxiliaryFile(path string) string {
	return j.encode(jsonEvent{Event: "writeAuxiliaryFile", Path: path})
}

func (j JSON) SetAuxiliaryExecutable(path string) string {
	return j.encode(jsonEvent{Event: "setAuxiliaryExecutable", Path: path})
}

func (j JSON) BeginCreateProductStructure(target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "beginCreateProductStructure", Target: target.Name})
}

func (j JSON) FinishCreateProductStructure(target *invocation.Target) string {
	return j.encode(jsonEvent{Event: "finishCreateProductStructure", Target: target.Name})
}

func (j JSON) BeginInvocation(inv *invocation.Invocation, displayName string, phase Phase) string {
	return j.encode(jsonEvent{Event: "beginInvocation", DisplayName: displayName, Phase: phase.String()})
}

func (j JSON) FinishInvocation(inv *invocation.Invocation, displayName string, phase Phase) string {
	return j.encode(jsonEvent{Event: "finishInvocation", DisplayName: displayName, Phase: phase.String()})
}

var _ Formatter = JSON{}
