package fixture

import (
	"fmt"
	"path/filepath"

	"github.com/vk/buildexec/internal/invocation"
)

// Deriver is the phase-derivation collaborator the executor driver
// depends on: given a target, it resolves the target's environment and
// then the invocations that build it. This stands in for the much
// larger build-setting-evaluation and phase-derivation machinery a real
// Xcode-compatible build system carries.
type Deriver interface {
	TargetEnvironment(env Environment, target *invocation.Target) (TargetEnvironment, error)
	Invocations(env Environment, target *invocation.Target, targetEnv TargetEnvironment) ([]*invocation.Invocation, error)
}

// HCLDeriver derives target environments and invocations directly from
// an Environment loaded by Load: the fixture format already describes
// invocations in their final, ready-to-run form, so there is no
// additional evaluation to perform.
type HCLDeriver struct{}

func (HCLDeriver) TargetEnvironment(env Environment, target *invocation.Target) (TargetEnvironment, error) {
	if _, ok := env.targets[target.ID]; !ok {
		return TargetEnvironment{}, fmt.Errorf("no fixture declaration for target %q", target.Name)
	}
	return TargetEnvironment{Name: target.Name}, nil
}

func (HCLDeriver) Invocations(env Environment, target *invocation.Target, targetEnv TargetEnvironment) ([]*invocation.Invocation, error) {
	schema, ok := env.targets[target.ID]
	if !ok {
		return nil, fmt.Errorf("no fixture declaration for target %q", target.Name)
	}

	invocations := make([]*invocation.Invocation, 0, len(schema.Invocations))
	for _, inv := range schema.Invocations {
		invocations = append(invocations, &invocation.Invocation{
			Executable: invocation.Executable{
				Builtin:     inv.Builtin,
				Path:        inv.Path,
				DisplayName: inv.DisplayName,
			},
			Arguments:               inv.Arguments,
			Environment:             inv.Environment,
			WorkingDirectory:        resolveDir(env.BaseDir, inv.WorkingDirectory),
			Inputs:                  invocation.NewPathSet(inv.Inputs...),
			Outputs:                 invocation.NewPathSet(inv.Outputs...),
			PhonyInputs:             invocation.NewPathSet(inv.PhonyInputs...),
			InputDependencies:       invocation.NewPathSet(inv.InputDependencies...),
			CreatesProductStructure: inv.CreatesProductStructure,
		})
	}
	return invocations, nil
}

func resolveDir(baseDir, dir string) string {
	if dir == "" {
		return baseDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

var _ Deriver = HCLDeriver{}
