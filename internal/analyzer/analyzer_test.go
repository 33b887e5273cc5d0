package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmptyProject(t *testing.T) {
	dir := t.TempDir()

	a, err := Run(dir, NewMapper())
	require.NoError(t, err)

	assert.Equal(t, FrameworkVanilla, a.Framework.Name)
	assert.Equal(t, "N/A", a.Framework.Version)
	assert.Equal(t, "unknown", a.BuildTool)
	assert.Empty(t, a.Components)
	assert.Equal(t, 0, a.ComponentCount)
	assert.Equal(t, 0, a.TotalFiles)
	assert.Equal(t, []string{"Unknown"}, a.StylingApproach)
	assert.Equal(t, []string{"React built-in (useState, useReducer)"}, a.StateManagement)
	assert.Equal(t, RoutingUnknown, a.Routing)
	assert.Equal(t, 55, a.ComplexityScore)
}

func TestRunNextOnlyManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"dependencies": {"next": "15.0.0"}}`)

	a, err := Run(dir, NewMapper())
	require.NoError(t, err)

	assert.Equal(t, "Next.js", a.Framework.Name)
	assert.Equal(t, "15.0.0", a.Framework.Version)
	assert.Equal(t, "Next.js (built-in)", a.BuildTool)
	assert.Equal(t, "Next.js (built-in)", a.Routing)
	// 5 (Next.js) + 5 (no components) + 10 (unknown styling).
	assert.Equal(t, 20, a.ComplexityScore)
}

func TestRunReactProject(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"dependencies": {
			"react": "^18.2.0",
			"react-router-dom": "^6.22.0",
			"tailwindcss": "^3.4.0"
		},
		"devDependencies": {"vite": "^5.0.0"}
	}`)
	writeFile(t, filepath.Join(dir, "src", "Button.jsx"),
		"export default function Button() {\n  return <button>Click me</button>;\n}\n")
	writeFile(t, filepath.Join(dir, "src", "styles.css"), "body { margin: 0; }\n")

	a, err := Run(dir, NewMapper())
	require.NoError(t, err)

	assert.Equal(t, "React", a.Framework.Name)
	assert.Equal(t, "Vite ^5.0.0", a.BuildTool)
	assert.Equal(t, "React Router ^6.22.0", a.Routing)
	require.Len(t, a.Components, 1)
	assert.Equal(t, 1, a.ComponentCount)
	assert.Equal(t, "Button", a.Components[0].ShadcnEquivalent)
	assert.Contains(t, a.StylingApproach, "Tailwind CSS ^3.4.0")
	assert.Contains(t, a.StylingApproach, "CSS (1 files)")

	// File structure covers src with both files.
	require.Contains(t, a.FileStructure, "src")
	assert.Equal(t, 1, a.FileStructure["src"][".jsx"])
	assert.Equal(t, 1, a.FileStructure["src"][".css"])
	assert.Equal(t, 2, a.TotalFiles)
}

func TestRunInvariants(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"dependencies": {"react": "^18.2.0"}}`)
	for _, name := range []string{"Button", "NavBar", "UserTable", "Widget"} {
		writeFile(t, filepath.Join(dir, "src", name+".jsx"),
			"export default function "+name+"() { return null; }\n")
	}

	a, err := Run(dir, NewMapper())
	require.NoError(t, err)

	assert.Equal(t, len(a.Components), a.ComponentCount)
	assert.GreaterOrEqual(t, a.ComplexityScore, 0)
	assert.LessOrEqual(t, a.ComplexityScore, 100)
	for _, c := range a.Components {
		assert.Contains(t, []string{ComplexitySimple, ComplexityMedium, ComplexityHigh}, c.Complexity)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"dependencies": {"react": "^18.2.0"}}`)
	writeFile(t, filepath.Join(dir, "src", "Button.jsx"),
		"export default function Button() { return null; }\n")
	writeFile(t, filepath.Join(dir, "src", "Card.tsx"),
		"export default function Card() { return null; }\n")

	first, err := Run(dir, NewMapper())
	require.NoError(t, err)
	second, err := Run(dir, NewMapper())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestSaveAndLoadAnalysis(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"dependencies": {"next": "15.0.0"}}`)

	a, err := Run(dir, NewMapper())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, a.Save(path))

	loaded, err := LoadAnalysis(path)
	require.NoError(t, err)
	assert.Equal(t, a.Framework, loaded.Framework)
	assert.Equal(t, a.ComplexityScore, loaded.ComplexityScore)
	assert.Equal(t, a.ComponentCount, loaded.ComponentCount)
}

func TestLoadAnalysisMissingFile(t *testing.T) {
	_, err := LoadAnalysis(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading analysis file")
}

func TestLoadAnalysisMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := LoadAnalysis(path)
	require.Error(t, err)
}

func TestSaveEmitsEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	a, err := Run(dir, NewMapper())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, a.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"components": []`)
	assert.Contains(t, string(data), `"dependencies": {}`)
}
