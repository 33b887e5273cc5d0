package analyzer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventory(t *testing.T, root, framework string) []Component {
	t.Helper()
	return InventoryComponents(root, newWalker(root), framework, NewMapper())
}

func TestInventoryReactFunctionalComponent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "Button.jsx"),
		"export default function Button() {\n  return <button>Click me</button>;\n}\n")

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)

	c := components[0]
	assert.Equal(t, "Button", c.Name)
	assert.Equal(t, "src/Button.jsx", c.Path)
	assert.Equal(t, TypeFunctional, c.Type)
	assert.Equal(t, ComplexitySimple, c.Complexity)
	assert.Equal(t, "Button", c.ShadcnEquivalent)
	require.NotNil(t, c.HardcodedValues)
	assert.Equal(t, 0, c.HardcodedValues.Colors)
}

func TestInventoryReactClassComponent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "UserCard.tsx"),
		"import React from 'react';\n\nclass UserCard extends React.Component {\n  render() { return null; }\n}\n\nexport default UserCard;\n")

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, TypeClass, components[0].Type)
	assert.Equal(t, "Card", components[0].ShadcnEquivalent)
}

func TestInventoryReactSkipsTestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "Button.test.jsx"),
		"export default function Button() { return null; }\n")
	writeFile(t, filepath.Join(dir, "src", "Button.spec.tsx"),
		"export default function Button() { return null; }\n")

	assert.Empty(t, inventory(t, dir, "React"))
}

func TestInventoryReactSkipsNonComponents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "constants.ts"),
		"export const API_URL = 'https://example.com';\n")

	assert.Empty(t, inventory(t, dir, "React"))
}

func TestComplexityEscalatesOnLength(t *testing.T) {
	dir := t.TempDir()

	// Over 1000 characters with no color literals: must be high, never medium.
	body := "export default function Dashboard() {\n" +
		strings.Repeat("  // padding line to inflate the file size\n", 40) +
		"  return null;\n}\n"
	require.Greater(t, len(body), 1000)
	writeFile(t, filepath.Join(dir, "src", "Dashboard.tsx"), body)

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, ComplexityHigh, components[0].Complexity)
}

func TestComplexityEscalatesOnColors(t *testing.T) {
	dir := t.TempDir()

	colors := "const palette = ['#fff', '#000', '#ff0000', '#00ff00', '#0000ff', '#abc123'];\n"
	writeFile(t, filepath.Join(dir, "src", "Palette.jsx"),
		"export default function Palette() { return null; }\n"+colors)

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, ComplexityMedium, components[0].Complexity)
	assert.Equal(t, 6, components[0].HardcodedValues.Colors)
}

func TestComplexityEscalatesOnCSSInJS(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "Hero.jsx"),
		"import styled from 'styled-components';\nconst Wrap = styled.div`color: red;`;\nexport default function Hero() { return <Wrap />; }\n")

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, ComplexityHigh, components[0].Complexity)
	require.NotNil(t, components[0].Styling)
	assert.True(t, components[0].Styling.StyledComponents)
}

func TestInventoryDeduplicatesNestedSearchRoots(t *testing.T) {
	dir := t.TempDir()
	// src/components is covered by both the src and src/components roots.
	writeFile(t, filepath.Join(dir, "src", "components", "Modal.jsx"),
		"export default function Modal() { return null; }\n")

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, "Dialog", components[0].ShadcnEquivalent)
}

func TestInventoryHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "Generated.jsx\n")
	writeFile(t, filepath.Join(dir, "src", "Generated.jsx"),
		"export default function Generated() { return null; }\n")
	writeFile(t, filepath.Join(dir, "src", "Kept.jsx"),
		"export default function Kept() { return null; }\n")

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, "Kept", components[0].Name)
}

func TestInventorySkipsNodeModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "node_modules", "lib", "index.js"),
		"export default function Lib() { return null; }\n")
	writeFile(t, filepath.Join(dir, "src", "App.jsx"),
		"export default function App() { return null; }\n")

	components := inventory(t, dir, "React")
	require.Len(t, components, 1)
	assert.Equal(t, "App", components[0].Name)
}

func TestInventoryVue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "AlertBanner.vue"),
		"<template><div class=\"alert\" style=\"color: #ff0000\">!</div></template>\n")

	components := inventory(t, dir, "Vue")
	require.Len(t, components, 1)

	c := components[0]
	assert.Equal(t, "AlertBanner", c.Name)
	assert.Equal(t, TypeVue, c.Type)
	assert.Equal(t, ComplexitySimple, c.Complexity)
	assert.Equal(t, "Alert", c.ShadcnEquivalent)
	require.NotNil(t, c.HardcodedValues)
	assert.Equal(t, 1, c.HardcodedValues.Colors)
	assert.Nil(t, c.Styling)
}

func TestInventoryAngularSelectorName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "nav", "nav-bar.component.ts"),
		"@Component({\n  selector: 'app-nav-bar',\n  template: '<nav></nav>'\n})\nexport class NavBarComponent {}\n")
	writeFile(t, filepath.Join(dir, "src", "plain.component.ts"),
		"export class PlainComponent {}\n")

	components := inventory(t, dir, "Angular")
	require.Len(t, components, 2)

	byName := map[string]Component{}
	for _, c := range components {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "app-nav-bar")
	assert.Equal(t, TypeAngular, byName["app-nav-bar"].Type)
	assert.Nil(t, byName["app-nav-bar"].HardcodedValues)
	// Falls back to the file stem when there is no selector.
	assert.Contains(t, byName, "plain.component")
}

func TestInventoryVanillaHasNoComponents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "main.js"),
		"export default function main() {}\n")

	assert.Nil(t, inventory(t, dir, FrameworkVanilla))
}
