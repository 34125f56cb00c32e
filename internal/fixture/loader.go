package fixture

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/buildexec/internal/graph"
	"github.com/vk/buildexec/internal/invocation"
)

// Environment is the parsed content of one fixture file: every declared
// target's raw invocation list, plus the directory relative paths in the
// file resolve against.
type Environment struct {
	BaseDir string
	targets map[invocation.TargetID]targetSchema
}

// TargetEnvironment confirms a target was declared in the fixture. A
// real Xcode target environment carries build settings; this stand-in
// only needs to confirm the target exists before invocations are
// derived for it.
type TargetEnvironment struct {
	Name string
}

// Load parses the HCL file at path into an Environment, together with
// the target dependency graph and target index the executor driver
// needs. A top-level `variables` block, if present, is evaluated first
// and made available to every other attribute in the file as `var.*`.
func Load(path string) (Environment, *graph.Graph[invocation.TargetID], map[invocation.TargetID]*invocation.Target, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Environment{}, nil, nil, diags
	}

	var probe struct {
		Variables *variablesBody `hcl:"variables,block"`
		Remain    hcl.Body       `hcl:",remain"`
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &probe); diags.HasErrors() {
		return Environment{}, nil, nil, diags
	}

	varVals := map[string]cty.Value{}
	if probe.Variables != nil {
		attrs, diags := probe.Variables.Remain.JustAttributes()
		if diags.HasErrors() {
			return Environment{}, nil, nil, diags
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return Environment{}, nil, nil, diags
			}
			varVals[name] = val
		}
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(varVals)},
	}

	var root rootSchema
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
		return Environment{}, nil, nil, diags
	}

	env := Environment{
		BaseDir: filepath.Dir(path),
		targets: make(map[invocation.TargetID]targetSchema, len(root.Targets)),
	}
	targets := make(map[invocation.TargetID]*invocation.Target, len(root.Targets))
	g := graph.New[invocation.TargetID]()

	for _, t := range root.Targets {
		id := invocation.TargetID(t.Name)
		env.targets[id] = t
		targets[id] = &invocation.Target{ID: id, Name: t.Name}

		deps := make([]invocation.TargetID, 0, len(t.DependsOn))
		for _, dep := range t.DependsOn {
			deps = append(deps, invocation.TargetID(dep))
		}
		g.Insert(id, deps)
	}

	return env, g, targets, nil
}

// LoadDir loads every ".hcl" file found under root, recursively, merging
// their targets into a single Environment, graph, and target index. A
// target name declared in more than one file is an error, since two
// declarations for the same target would silently shadow one another.
func LoadDir(root string) (Environment, *graph.Graph[invocation.TargetID], map[invocation.TargetID]*invocation.Target, error) {
	paths, err := findHCLFiles(root)
	if err != nil {
		return Environment{}, nil, nil, fmt.Errorf("scanning %s for fixture files: %w", root, err)
	}
	if len(paths) == 0 {
		return Environment{}, nil, nil, fmt.Errorf("no .hcl fixture files found under %s", root)
	}

	merged := Environment{BaseDir: root, targets: make(map[invocation.TargetID]targetSchema)}
	targets := make(map[invocation.TargetID]*invocation.Target)
	g := graph.New[invocation.TargetID]()

	for _, path := range paths {
		env, fileGraph, fileTargets, err := Load(path)
		if err != nil {
			return Environment{}, nil, nil, err
		}

		for id, schema := range env.targets {
			if _, exists := merged.targets[id]; exists {
				return Environment{}, nil, nil, fmt.Errorf("target %q declared in more than one fixture file under %s", id, root)
			}
			merged.targets[id] = schema
			targets[id] = fileTargets[id]
		}

		if ok, _ := fileGraph.Ordered(); !ok {
			return Environment{}, nil, nil, fmt.Errorf("cycle detected within fixture file %s", path)
		}
		for id, t := range env.targets {
			deps := make([]invocation.TargetID, 0, len(t.DependsOn))
			for _, dep := range t.DependsOn {
				deps = append(deps, invocation.TargetID(dep))
			}
			g.Insert(id, deps)
		}
	}

	return merged, g, targets, nil
}

func findHCLFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
