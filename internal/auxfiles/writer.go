// Package auxfiles materialises every invocation's declared auxiliary
// files: response files, link file lists, and other inputs the executor
// itself generates rather than another invocation.
package auxfiles

import (
	"github.com/vk/buildexec/internal/formatter"
	"github.com/vk/buildexec/internal/invocation"
)

// Write emits BeginWriteAuxiliaryFiles / FinishWriteAuxiliaryFiles around
// writing every auxiliary file declared by invocations, in target order.
// Unless dryRun, directories are created, files are written byte-exact,
// and the executable bit is set as declared. Returns false on the first
// I/O error.
func Write(fs FS, fmtr formatter.Formatter, target *invocation.Target, invocations []*invocation.Invocation, dryRun bool, print func(string)) bool {
	print(fmtr.BeginWriteAuxiliaryFiles(target))
	defer func() { print(fmtr.FinishWriteAuxiliaryFiles(target)) }()

	for _, inv := range invocations {
		for _, aux := range inv.AuxiliaryFiles {
			dir := fs.GetDirectoryName(aux.Path)
			if !fs.TestForDirectory(dir) {
				print(fmtr.CreateAuxiliaryDirectory(dir))
				if !dryRun {
					if err := fs.CreateDirectory(dir); err != nil {
						return false
					}
				}
			}

			print(fmtr.WriteAuxiliaryFile(aux.Path))
			if !dryRun {
				if err := fs.WriteFile(aux.Path, aux.Contents); err != nil {
					return false
				}
			}

			if aux.Executable && !fs.TestForExecute(aux.Path) {
				print(fmtr.SetAuxiliaryExecutable(aux.Path))
				if !dryRun {
					if err := fs.Chmod(aux.Path, 0o755); err != nil {
						return false
					}
				}
			}
		}
	}

	return true
}
