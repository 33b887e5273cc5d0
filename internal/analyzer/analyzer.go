package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Run analyzes the project at root and returns the fully populated Analysis.
// Stages run in a fixed order; the result is deterministic for an unchanged
// directory tree. A missing manifest degrades detection but never aborts.
func Run(root string, mapper *Mapper) (*Analysis, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	fmt.Fprintf(os.Stderr, "analyze: scanning %s...\n", absRoot)

	manifest, err := LoadManifest(absRoot)
	if err != nil {
		return nil, err
	}
	if manifest == nil {
		fmt.Fprintln(os.Stderr, "analyze: no package.json found, dependency detection skipped")
		manifest = &Manifest{}
	}

	a := &Analysis{
		Components:      []Component{},
		Dependencies:    nonNil(manifest.Dependencies),
		DevDependencies: nonNil(manifest.DevDependencies),
	}

	deps := manifest.merged()
	a.Framework = DetectFramework(deps)
	a.BuildTool = DetectBuildTool(absRoot, deps)

	w := newWalker(absRoot)
	a.FileStructure, a.TotalFiles = AnalyzeStructure(absRoot, w)

	fmt.Fprintf(os.Stderr, "analyze: inventorying %s components...\n", a.Framework.Name)
	if components := InventoryComponents(absRoot, w, a.Framework.Name, mapper); components != nil {
		a.Components = components
	}
	a.ComponentCount = len(a.Components)

	cssFiles, scssFiles := countStyleFiles(absRoot, w)
	a.StylingApproach = DetectStyling(deps, cssFiles, scssFiles)
	a.StateManagement = DetectStateManagement(deps)
	a.Routing = DetectRouting(deps)
	a.ComplexityScore = Score(a)

	return a, nil
}

// Save writes the analysis as indented JSON.
func (a *Analysis) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadAnalysis reads an analysis document written by Save. A missing or
// malformed file is an error: the report stage cannot run without it.
func LoadAnalysis(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}
	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing analysis file %s: %w", path, err)
	}
	return &a, nil
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
