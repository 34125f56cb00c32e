package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vk/buildexec/internal/buildctx"
	"github.com/vk/buildexec/internal/ctxlog"
	"github.com/vk/buildexec/internal/executordriver"
	"github.com/vk/buildexec/internal/fixture"
	"github.com/vk/buildexec/internal/formatter"
	"github.com/vk/buildexec/internal/lock"
	"github.com/vk/buildexec/internal/registry"
	"github.com/vk/buildexec/internal/subproc"
)

var (
	fixturePath string
	dryRun      bool
	format      string
	lockDir     string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run every target declared by a fixture file",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&fixturePath, "fixture", "", "Path to an HCL fixture file describing targets and invocations")
	buildCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report every event without touching the filesystem or spawning processes")
	buildCmd.Flags().StringVar(&format, "format", "text", "Event format: text, json, or color")
	buildCmd.Flags().StringVar(&lockDir, "lock-dir", "", "Directory to hold the advisory build lock (defaults to the fixture's directory)")
	_ = buildCmd.MarkFlagRequired("fixture")
}

func runBuild(cmd *cobra.Command, args []string) error {
	fmtr, err := selectFormatter(format)
	if err != nil {
		return err
	}

	dir := lockDir
	if dir == "" {
		dir = filepath.Dir(fixturePath)
	}
	held, err := lock.Acquire(dir)
	if err != nil {
		return err
	}
	defer held.Release()

	env, targetGraph, targets, err := fixture.Load(fixturePath)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	reg := registry.New()
	registry.RegisterCoreBuiltins(reg)

	driver := &executordriver.Driver{
		Formatter: fmtr,
		Registry:  reg,
		Runner:    subproc.NewExecRunner(),
		DryRun:    dryRun,
		ErrWriter: cmd.ErrOrStderr(),
		Print: func(s string) {
			if s != "" {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}

	ctx := ctxlog.WithLogger(context.Background(), slog.Default())
	bc := buildctx.New(filepath.Base(fixturePath))
	ok := driver.Build(ctx, env, &bc, targetGraph, targets, fixture.HCLDeriver{})
	if !ok {
		if err := driver.Err(); err != nil {
			return err
		}
		os.Exit(1)
	}
	return nil
}

func selectFormatter(name string) (formatter.Formatter, error) {
	switch name {
	case "text":
		return formatter.Text{}, nil
	case "json":
		return formatter.JSON{}, nil
	case "color":
		return formatter.Color{}, nil
	default:
		return nil, fmt.Errorf("invalid format %q: must be text, json, or color", name)
	}
}
