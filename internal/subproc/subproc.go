// Package subproc is the subprocess runner source: it launches an
// out-of-process invocation and reports back its exit status. Grounded on
// the exec.Command wrapping in cloudposse-atmos's toolchain.execFunc,
// adapted from a process-replacing "exec" model to a run-and-wait model
// since the invocation runner needs the exit code back, not a process
// takeover.
package subproc

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes an external command and reports whether it succeeded.
type Runner interface {
	Run(ctx context.Context, path string, arguments []string, environment map[string]string, workingDirectory string) (ok bool, exitCode int, stderr []byte, err error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, path string, arguments []string, environment map[string]string, workingDirectory string) (bool, int, []byte, error) {
	cmd := exec.CommandContext(ctx, path, arguments...)
	cmd.Dir = workingDirectory
	cmd.Env = envSlice(environment)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return true, 0, stderr.Bytes(), nil
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		return false, exitErr.ExitCode(), stderr.Bytes(), nil
	}

	return false, -1, stderr.Bytes(), err
}

func envSlice(environment map[string]string) []string {
	if len(environment) == 0 {
		return nil
	}
	out := make([]string, 0, len(environment))
	for k, v := range environment {
		out = append(out, k+"="+v)
	}
	return out
}

var _ Runner = (*ExecRunner)(nil)
