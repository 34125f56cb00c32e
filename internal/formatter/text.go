package formatter

import (
	"fmt"

	"github.com/vk/buildexec/internal/invocation"
)

// Text is a plain, human-readable Formatter, one line per event. It is
// the default when no format is requested.
type Text struct{}

func (Text) Begin(ctx BuildContext) string {
	return fmt.Sprintf("=== build %s (%s) ===", ctx.Name, ctx.ID)
}

func (Text) Success(ctx BuildContext) string {
	return fmt.Sprintf("=== build %s succeeded ===", ctx.Name)
}

func (Text) Failure(ctx BuildContext, failing []*invocation.Invocation) string {
	return fmt.Sprintf("=== build %s failed (%d failing invocation(s)) ===", ctx.Name, len(failing))
}

func (Text) BeginTarget(ctx BuildContext, target *invocation.Target) string {
	return fmt.Sprintf("=== BUILD TARGET %s ===", target.Name)
}

func (Text) FinishTarget(ctx BuildContext, target *invocation.Target) string {
	return fmt.Sprintf("=== FINISHED TARGET %s ===", target.Name)
}

func (Text) BeginCheckDependencies(target *invocation.Target) string {
	return "Check dependencies"
}

func (Text) FinishCheckDependencies(target *invocation.Target) string {
	return ""
}

func (Text) BeginWriteAuxiliaryFiles(target *invocation.Target) string {
	return "Write auxiliary files"
}

func (Text) FinishWriteAuxiliaryFiles(target *invocation.Target) string {
	return ""
}

func (Text) CreateAuxiliaryDirectory(path string) string {
	return "/bin/mkdir -p " + path
}

func (Text) WriteAuxiliaryFile(path string) string {
	return "write-file " + path
}

func (Text) SetAuxiliaryExecutable(path string) string {
	return "/bin/chmod 0755 " + path
}

func (Text) BeginCreateProductStructure(target *invocation.Target) string {
	return "Create product structure"
}

func (Text) FinishCreateProductStructure(target *invocation.Target) string {
	return ""
}

func (Text) BeginInvocation(inv *invocation.Invocation, displayName string, phase Phase) string {
	return fmt.Sprintf("%s [%s]", displayName, phase)
}

func (Text) FinishInvocation(inv *invocation.Invocation, displayName string, phase Phase) string {
	return ""
}

var _ Formatter = Text{}
