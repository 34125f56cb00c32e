// Package fixture is a minimal, HCL-based stand-in for the external
// project-parsing and phase-derivation collaborators the executor driver
// depends on: given a small declarative file describing targets and
// their invocations, it derives the same fixture.Environment,
// fixture.TargetEnvironment, and invocation lists a real Xcode project
// loader would, using hashicorp/hcl/v2's native syntax plus
// zclconf/go-cty for a small top-level variable-substitution facility
// (`${var.name}` in string attributes).
package fixture

import "github.com/hashicorp/hcl/v2"

type variablesBody struct {
	Remain hcl.Body `hcl:",remain"`
}

type rootSchema struct {
	Variables *variablesBody `hcl:"variables,block"`
	Targets   []targetSchema `hcl:"target,block"`
}

type targetSchema struct {
	Name        string             `hcl:",label"`
	DependsOn   []string           `hcl:"depends_on,optional"`
	Invocations []invocationSchema `hcl:"invocation,block"`
}

type invocationSchema struct {
	Builtin     string `hcl:"builtin,optional"`
	Path        string `hcl:"path,optional"`
	DisplayName string `hcl:"display_name,optional"`

	Arguments        []string          `hcl:"arguments,optional"`
	Environment      map[string]string `hcl:"environment,optional"`
	WorkingDirectory string            `hcl:"working_directory,optional"`

	Inputs            []string `hcl:"inputs,optional"`
	Outputs           []string `hcl:"outputs,optional"`
	PhonyInputs       []string `hcl:"phony_inputs,optional"`
	InputDependencies []string `hcl:"input_dependencies,optional"`

	CreatesProductStructure bool `hcl:"creates_product_structure,optional"`
}
