package registry

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RegisterCoreBuiltins populates r with the small set of built-in tools
// this module ships as a working stand-in for Xcode's real built-in tool
// catalogue (copy-files, ditto, mkdir, and so on): "copy", "symlink",
// "write-file", and "mkdir". A real Xcode-compatible driver would register
// dozens more; these four are enough to exercise every path through the
// invocation runner (§4.D) without pulling in the rest of Xcode's
// toolchain.
func RegisterCoreBuiltins(r *Registry) {
	r.Register("copy", DriverFunc(copyBuiltin))
	r.Register("symlink", DriverFunc(symlinkBuiltin))
	r.Register("write-file", DriverFunc(writeFileBuiltin))
	r.Register("mkdir", DriverFunc(mkdirBuiltin))
}

// copyBuiltin implements `copy <src> <dst>`.
func copyBuiltin(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
	if len(arguments) != 2 {
		return 1, fmt.Errorf("copy: expected 2 arguments, got %d", len(arguments))
	}
	src, dst := resolve(workingDirectory, arguments[0]), resolve(workingDirectory, arguments[1])

	in, err := os.Open(src)
	if err != nil {
		return 1, fmt.Errorf("copy: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 1, fmt.Errorf("copy: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return 1, fmt.Errorf("copy: %w", err)
	}
	return 0, nil
}

// symlinkBuiltin implements `symlink <target> <linkPath>`.
func symlinkBuiltin(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
	if len(arguments) != 2 {
		return 1, fmt.Errorf("symlink: expected 2 arguments, got %d", len(arguments))
	}
	target, linkPath := arguments[0], resolve(workingDirectory, arguments[1])

	_ = os.Remove(linkPath)
	if err := os.Symlink(target, linkPath); err != nil {
		return 1, fmt.Errorf("symlink: %w", err)
	}
	return 0, nil
}

// writeFileBuiltin implements `write-file <path> <contents...>`, joining
// any arguments after the path with a single space and a trailing
// newline — a minimal stand-in for tools that synthesize a small text
// file (an Info.plist stub, a version string) as their entire job.
func writeFileBuiltin(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
	if len(arguments) < 1 {
		return 1, fmt.Errorf("write-file: expected at least 1 argument")
	}
	path := resolve(workingDirectory, arguments[0])
	contents := ""
	for i, arg := range arguments[1:] {
		if i > 0 {
			contents += " "
		}
		contents += arg
	}
	contents += "\n"

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return 1, fmt.Errorf("write-file: %w", err)
	}
	return 0, nil
}

// mkdirBuiltin implements `mkdir <path>`.
func mkdirBuiltin(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
	if len(arguments) != 1 {
		return 1, fmt.Errorf("mkdir: expected 1 argument, got %d", len(arguments))
	}
	path := resolve(workingDirectory, arguments[0])
	if err := os.MkdirAll(path, 0o755); err != nil {
		return 1, fmt.Errorf("mkdir: %w", err)
	}
	return 0, nil
}

func resolve(workingDirectory, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workingDirectory, path)
}
