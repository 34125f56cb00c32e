package formatter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/vk/buildexec/internal/invocation"
)

var (
	targetStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Faint(true)

	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
)

// Color is a Formatter for interactive terminals: target headers are
// styled with lipgloss, and the terminal build result line is colored
// with fatih/color. The rendering strategy is picked once, at
// construction, same as Text and JSON.
type Color struct{}

func (Color) Begin(ctx BuildContext) string {
	return dimStyle.Render(fmt.Sprintf("build %s starting (%s)", ctx.Name, ctx.ID))
}

func (Color) Success(ctx BuildContext) string {
	return successColor.Sprintf("** BUILD %s SUCCEEDED **", ctx.Name)
}

func (Color) Failure(ctx BuildContext, failing []*invocation.Invocation) string {
	return failureColor.Sprintf("** BUILD %s FAILED ** (%d failing)", ctx.Name, len(failing))
}

func (Color) BeginTarget(ctx BuildContext, target *invocation.Target) string {
	return targetStyle.Render("=== BUILD TARGET " + target.Name + " ===")
}

func (Color) FinishTarget(ctx BuildContext, target *invocation.Target) string {
	return ""
}

func (Color) BeginCheckDependencies(target *invocation.Target) string {
	return dimStyle.Render("Check dependencies")
}

func (Color) FinishCheckDependencies(target *invocation.Target) string {
	return ""
}

func (Color) BeginWriteAuxiliaryFiles(target *invocation.Target) string {
	return dimStyle.Render("Write auxiliary files")
}

func (Color) FinishWriteAuxiliaryFiles(target *invocation.Target) string {
	return ""
}

func (Color) CreateAuxiliaryDirectory(path string) string {
	return dimStyle.Render("mkdir -p " + path)
}

func (Color) WriteAuxiliaryFile(path string) string {
	return dimStyle.Render("write " + path)
}

func (Color) SetAuxiliaryExecutable(path string) string {
	return dimStyle.Render("chmod +x " + path)
}

func (Color) BeginCreateProductStructure(target *invocation.Target) string {
	return dimStyle.Render("Create product structure")
}

func (Color) FinishCreateProductStructure(target *invocation.Target) string {
	return ""
}

func (Color) BeginInvocation(inv *invocation.Invocation, displayName string, phase Phase) string {
	return fmt.Sprintf("    %s", displayName)
}

func (Color) FinishInvocation(inv *invocation.Invocation, displayName string, phase Phase) string {
	return ""
}

var _ Formatter = Color{}
