package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildexec/internal/invocation"
)

func TestLoadOrdersTargetsByDependsOn(t *testing.T) {
	env, g, targets, err := Load("../../testdata/fixtures/sample.hcl")
	require.NoError(t, err)
	require.Len(t, targets, 2)

	ok, ordered := g.Ordered()
	require.True(t, ok)

	pos := make(map[invocation.TargetID]int, len(ordered))
	for i, id := range ordered {
		pos[id] = i
	}
	assert.Less(t, pos["Lib"], pos["App"])
	assert.Equal(t, "../../testdata/fixtures", env.BaseDir) // env resolves paths against the fixture's directory
	_ = env
}

func TestDeriverResolvesVariablesAndPaths(t *testing.T) {
	env, _, targets, err := Load("../../testdata/fixtures/sample.hcl")
	require.NoError(t, err)

	d := HCLDeriver{}
	target := targets[invocation.TargetID("Lib")]

	targetEnv, err := d.TargetEnvironment(env, target)
	require.NoError(t, err)
	assert.Equal(t, "Lib", targetEnv.Name)

	invocations, err := d.Invocations(env, target, targetEnv)
	require.NoError(t, err)
	require.Len(t, invocations, 2)

	mkdirInv := invocations[0]
	assert.Equal(t, "mkdir", mkdirInv.Executable.Builtin)
	assert.Equal(t, []string{"out"}, mkdirInv.Arguments)
	assert.True(t, mkdirInv.CreatesProductStructure)

	writeInv := invocations[1]
	assert.Equal(t, "write-file", writeInv.Executable.Builtin)
	assert.Equal(t, []string{"out/lib.txt", "lib contents"}, writeInv.Arguments)
	_, hasDep := writeInv.InputDependencies["out"]
	assert.True(t, hasDep)
}

func TestTargetEnvironmentUnknownTarget(t *testing.T) {
	env, _, _, err := Load("../../testdata/fixtures/sample.hcl")
	require.NoError(t, err)

	d := HCLDeriver{}
	_, err = d.TargetEnvironment(env, &invocation.Target{ID: "Ghost", Name: "Ghost"})
	assert.Error(t, err)
}
