package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Fallback labels used when detection finds nothing.
const (
	FrameworkVanilla = "Vanilla JavaScript"
	RoutingUnknown   = "Unknown / No routing"
)

// frameworkProbes is evaluated in order; the first dependency present wins.
var frameworkProbes = []struct {
	pkg  string
	name string
}{
	{"react", "React"},
	{"next", "Next.js"},
	{"vue", "Vue"},
	{"@angular/core", "Angular"},
	{"svelte", "Svelte"},
}

// DetectFramework picks the frontend framework from the merged dependency
// map. Falls back to Vanilla JavaScript when no known framework is present.
func DetectFramework(deps map[string]string) Framework {
	for _, p := range frameworkProbes {
		if version, ok := deps[p.pkg]; ok {
			return Framework{Name: p.name, Version: version}
		}
	}
	return Framework{Name: FrameworkVanilla, Version: "N/A"}
}

// DetectBuildTool picks the build tool by dependency priority, then falls
// back to probing for known config files on disk.
func DetectBuildTool(root string, deps map[string]string) string {
	switch {
	case deps["vite"] != "":
		return "Vite " + deps["vite"]
	case deps["webpack"] != "":
		return "Webpack " + deps["webpack"]
	case hasDep(deps, "parcel") || hasDep(deps, "parcel-bundler"):
		return "Parcel"
	case hasDep(deps, "@vitejs/plugin-react"):
		return "Vite"
	case hasDep(deps, "react-scripts"):
		return "Create React App " + deps["react-scripts"]
	case hasDep(deps, "next"):
		return "Next.js (built-in)"
	case hasDep(deps, "@angular/cli"):
		return "Angular CLI"
	}

	if fileExists(filepath.Join(root, "vite.config.js")) || fileExists(filepath.Join(root, "vite.config.ts")) {
		return "Vite"
	}
	if fileExists(filepath.Join(root, "webpack.config.js")) {
		return "Webpack"
	}
	return "unknown"
}

// DetectStyling collects every styling technique in use. Non-exclusive: a
// project may report several at once. cssFiles and scssFiles are counts of
// stylesheet files found under the project root.
func DetectStyling(deps map[string]string, cssFiles, scssFiles int) []string {
	var approaches []string

	if v, ok := deps["styled-components"]; ok {
		approaches = append(approaches, "styled-components "+v)
	}
	if hasDep(deps, "@emotion/react") || hasDep(deps, "@emotion/styled") {
		approaches = append(approaches, "Emotion")
	}
	if v, ok := deps["tailwindcss"]; ok {
		approaches = append(approaches, "Tailwind CSS "+v)
	}
	if hasDep(deps, "sass") || hasDep(deps, "node-sass") {
		approaches = append(approaches, "SASS/SCSS")
	}
	if hasDep(deps, "less") {
		approaches = append(approaches, "LESS")
	}

	if cssFiles > 0 {
		approaches = append(approaches, fmt.Sprintf("CSS (%d files)", cssFiles))
	}
	if scssFiles > 0 {
		approaches = append(approaches, fmt.Sprintf("SCSS (%d files)", scssFiles))
	}

	if len(approaches) == 0 {
		return []string{"Unknown"}
	}
	return approaches
}

// stateProbes is evaluated in order; every match is reported.
var stateProbes = []struct {
	pkgs  []string
	label string
}{
	{[]string{"redux", "@reduxjs/toolkit"}, "Redux"},
	{[]string{"mobx", "mobx-react"}, "MobX"},
	{[]string{"zustand"}, "Zustand"},
	{[]string{"recoil"}, "Recoil"},
	{[]string{"jotai"}, "Jotai"},
	{[]string{"@tanstack/react-query", "react-query"}, "TanStack Query (React Query)"},
	{[]string{"swr"}, "SWR"},
}

// DetectStateManagement collects every known state management library in the
// dependency map. Defaults to React built-ins when none match.
func DetectStateManagement(deps map[string]string) []string {
	var libs []string
	for _, p := range stateProbes {
		for _, pkg := range p.pkgs {
			if hasDep(deps, pkg) {
				libs = append(libs, p.label)
				break
			}
		}
	}
	if len(libs) == 0 {
		return []string{"React built-in (useState, useReducer)"}
	}
	return libs
}

// DetectRouting picks a single routing label by priority order.
func DetectRouting(deps map[string]string) string {
	switch {
	case hasDep(deps, "next"):
		return "Next.js (built-in)"
	case hasDep(deps, "react-router-dom"):
		return "React Router " + deps["react-router-dom"]
	case hasDep(deps, "react-router"):
		return "React Router " + deps["react-router"]
	case hasDep(deps, "vue-router"):
		return "Vue Router " + deps["vue-router"]
	case hasDep(deps, "@angular/router"):
		return "Angular Router"
	}
	return RoutingUnknown
}

// DisplayVersion reduces a manifest version range to a concrete version for
// display: "^18.2.0" becomes "18.2.0". Anything that does not parse as a
// semantic version is returned unchanged.
func DisplayVersion(versionRange string) string {
	trimmed := strings.TrimLeft(versionRange, "^~>=<v ")
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		return versionRange
	}
	return v.String()
}

func hasDep(deps map[string]string, pkg string) bool {
	_, ok := deps[pkg]
	return ok
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
