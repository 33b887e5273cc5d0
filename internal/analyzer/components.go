package analyzer

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// componentSearchDirs are the roots searched for components, in order. Nested
// roots overlap (src covers src/components); files are inventoried once.
var componentSearchDirs = []string{"src", "app", "components", "src/components", "app/components"}

// reactExtensions are inspected in this order within each search root.
var reactExtensions = []string{".tsx", ".jsx", ".ts", ".js"}

var (
	functionalRe  = regexp.MustCompile(`(export\s+(default\s+)?function|const\s+\w+\s*=\s*\([^)]*\)\s*=>)`)
	classRe       = regexp.MustCompile(`class\s+\w+\s+extends\s+(React\.)?Component`)
	colorRe       = regexp.MustCompile(`#[0-9a-fA-F]{3,6}|rgb\(|rgba\(|hsl\(`)
	inlineStyleRe = regexp.MustCompile(`style\s*=\s*\{\{`)
	selectorRe    = regexp.MustCompile(`selector:\s*['"]([^'"]+)['"]`)
)

// InventoryComponents finds UI components under the standard search
// directories using framework-specific rules. Vanilla and unknown frameworks
// have no component structure to inventory.
func InventoryComponents(root string, w *walker, frameworkName string, mapper *Mapper) []Component {
	switch frameworkName {
	case "React", "Next.js":
		return inventoryReact(root, w, mapper)
	case "Vue":
		return inventoryVue(root, w, mapper)
	case "Angular":
		return inventoryAngular(root, w, mapper)
	default:
		return nil
	}
}

// collectFiles walks every search root once and hands each distinct relative
// file path to fn.
func collectFiles(root string, w *walker, fn func(rel string)) {
	seen := make(map[string]bool)
	for _, dir := range componentSearchDirs {
		abs := filepath.Join(root, filepath.FromSlash(dir))
		if !dirExists(abs) {
			continue
		}
		w.walk(abs, func(rel string) {
			if seen[rel] {
				return
			}
			seen[rel] = true
			fn(rel)
		})
	}
}

func inventoryReact(root string, w *walker, mapper *Mapper) []Component {
	// Group by extension so classification order stays extension-major.
	byExt := make(map[string][]string)
	collectFiles(root, w, func(rel string) {
		ext := filepath.Ext(rel)
		byExt[ext] = append(byExt[ext], rel)
	})

	var components []Component
	for _, ext := range reactExtensions {
		for _, rel := range byExt[ext] {
			if c, ok := analyzeReactFile(root, rel, mapper); ok {
				components = append(components, c)
			}
		}
	}
	return components
}

// analyzeReactFile classifies a single React source file. Returns false for
// test files, unreadable files, and files that match neither the functional
// nor the class component pattern.
func analyzeReactFile(root, rel string, mapper *Mapper) (Component, bool) {
	base := path.Base(rel)
	if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") {
		return Component{}, false
	}

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return Component{}, false
	}

	isFunctional := functionalRe.Match(content)
	isClass := classRe.Match(content)
	if !isFunctional && !isClass {
		return Component{}, false
	}

	name := fileStem(base)
	colors := len(colorRe.FindAll(content, -1))
	inlineStyles := len(inlineStyleRe.FindAll(content, -1))
	styled := bytes.Contains(content, []byte("styled.")) || bytes.Contains(content, []byte("styled("))
	emotion := bytes.Contains(content, []byte("@emotion"))

	componentType := TypeFunctional
	if isClass {
		componentType = TypeClass
	}

	complexity := ComplexitySimple
	if colors > 5 || inlineStyles > 3 || len(content) > 500 {
		complexity = ComplexityMedium
	}
	if len(content) > 1000 || styled || emotion {
		complexity = ComplexityHigh
	}

	return Component{
		Name:             name,
		Path:             rel,
		Type:             componentType,
		Complexity:       complexity,
		ShadcnEquivalent: mapper.Equivalent(name),
		HardcodedValues:  &HardcodedValues{Colors: colors, InlineStyles: inlineStyles},
		Styling:          &StylingFlags{StyledComponents: styled, Emotion: emotion},
	}, true
}

// inventoryVue treats every .vue file as a component.
func inventoryVue(root string, w *walker, mapper *Mapper) []Component {
	var components []Component
	collectFiles(root, w, func(rel string) {
		if filepath.Ext(rel) != ".vue" {
			return
		}
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return
		}

		name := fileStem(path.Base(rel))
		complexity := ComplexitySimple
		if len(content) > 500 {
			complexity = ComplexityMedium
		}

		components = append(components, Component{
			Name:             name,
			Path:             rel,
			Type:             TypeVue,
			Complexity:       complexity,
			ShadcnEquivalent: mapper.Equivalent(name),
			HardcodedValues:  &HardcodedValues{Colors: len(colorRe.FindAll(content, -1))},
		})
	})
	return components
}

// inventoryAngular treats every *.component.ts file as a component, taking
// the name from the @Component selector when present.
func inventoryAngular(root string, w *walker, mapper *Mapper) []Component {
	var components []Component
	collectFiles(root, w, func(rel string) {
		if !strings.HasSuffix(rel, ".component.ts") {
			return
		}
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return
		}

		name := fileStem(path.Base(rel))
		if m := selectorRe.FindSubmatch(content); m != nil {
			name = string(m[1])
		}

		complexity := ComplexitySimple
		if len(content) > 500 {
			complexity = ComplexityMedium
		}

		components = append(components, Component{
			Name:             name,
			Path:             rel,
			Type:             TypeAngular,
			Complexity:       complexity,
			ShadcnEquivalent: mapper.Equivalent(name),
		})
	})
	return components
}

func fileStem(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base))
}
