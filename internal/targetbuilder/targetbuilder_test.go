package targetbuilder

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildexec/internal/auxfiles"
	"github.com/vk/buildexec/internal/formattertest"
	"github.com/vk/buildexec/internal/invocation"
	"github.com/vk/buildexec/internal/registry"
	"github.com/vk/buildexec/internal/subproc"
)

func targetOf(id string) *invocation.Target {
	return &invocation.Target{ID: invocation.TargetID(id), Name: id}
}

func TestBuildOrdersStructureBeforeContent(t *testing.T) {
	reg := registry.New()
	var order []string
	reg.Register("structure", registry.DriverFunc(func(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
		order = append(order, "structure")
		return 0, nil
	}))
	reg.Register("content", registry.DriverFunc(func(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
		order = append(order, "content")
		return 0, nil
	}))

	invs := []*invocation.Invocation{
		{Executable: invocation.Executable{Builtin: "content"}, CreatesProductStructure: false},
		{Executable: invocation.Executable{Builtin: "structure"}, CreatesProductStructure: true},
	}

	rec := &formattertest.Recorder{}
	result := Build(context.Background(), nil, io.Discard, auxfiles.OSFS{}, reg, subproc.NewExecRunner(), rec, targetOf("T"), invs, false, func(string) {})

	require.True(t, result.OK)
	assert.Equal(t, []string{"structure", "content"}, order)
}

func TestBuildFailsOnAuxiliaryFileError(t *testing.T) {
	reg := registry.New()
	// A regular file sits where the auxiliary file's parent directory
	// would go, so creating that directory fails for any user.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	inv := &invocation.Invocation{
		AuxiliaryFiles: []invocation.AuxiliaryFile{
			{Path: filepath.Join(blocker, "should-fail", "x"), Contents: []byte("x")},
		},
	}

	rec := &formattertest.Recorder{}
	result := Build(context.Background(), nil, io.Discard, auxfiles.OSFS{}, reg, subproc.NewExecRunner(), rec, targetOf("T"), []*invocation.Invocation{inv}, false, func(string) {})

	assert.False(t, result.OK)
}

func TestBuildFailsOnInvocationCycle(t *testing.T) {
	reg := registry.New()
	invs := []*invocation.Invocation{
		{Inputs: invocation.NewPathSet("b.out"), Outputs: invocation.NewPathSet("a.out")},
		{Inputs: invocation.NewPathSet("a.out"), Outputs: invocation.NewPathSet("b.out")},
	}

	var errOut bytes.Buffer
	rec := &formattertest.Recorder{}
	result := Build(context.Background(), nil, &errOut, auxfiles.OSFS{}, reg, subproc.NewExecRunner(), rec, targetOf("T"), invs, true, func(string) {})

	assert.False(t, result.OK)
	assert.Nil(t, result.Failing)
	assert.True(t, result.Cycle)
	assert.Contains(t, errOut.String(), "cycle detected building invocation graph")
}

func TestBuildStopsAtFirstFailingInvocation(t *testing.T) {
	reg := registry.New()
	reg.Register("fail", registry.DriverFunc(func(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
		return 1, nil
	}))

	inv := &invocation.Invocation{Executable: invocation.Executable{Builtin: "fail"}}

	rec := &formattertest.Recorder{}
	result := Build(context.Background(), nil, io.Discard, auxfiles.OSFS{}, reg, subproc.NewExecRunner(), rec, targetOf("T"), []*invocation.Invocation{inv}, false, func(string) {})

	assert.False(t, result.OK)
	require.Len(t, result.Failing, 1)
}

func TestBuildEndToEndWithRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")

	reg := registry.New()
	registry.RegisterCoreBuiltins(reg)

	inv := &invocation.Invocation{
		Executable:       invocation.Executable{Builtin: "write-file"},
		Arguments:        []string{outPath, "hello"},
		WorkingDirectory: dir,
		Outputs:          invocation.NewPathSet(outPath),
	}

	rec := &formattertest.Recorder{}
	result := Build(context.Background(), nil, io.Discard, auxfiles.OSFS{}, reg, subproc.NewExecRunner(), rec, targetOf("T"), []*invocation.Invocation{inv}, false, func(string) {})

	require.True(t, result.OK)
	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(contents))
}
