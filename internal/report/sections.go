package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/julianshen/uishift/internal/analyzer"
)

const timestampLayout = "2006-01-02 15:04:05"

// Rendering caps for the mapping tables. Truncation affects display only.
const (
	maxMappableRows = 20
	maxCustomRows   = 15
)

func (g *Generator) writeHeader(b *strings.Builder, now time.Time) {
	b.WriteString("# Frontend Migration Analysis Report\n\n")
	fmt.Fprintf(b, "**Generated:** %s\n", now.Format(timestampLayout))
	fmt.Fprintf(b, "**Migration Type:** %s → Next.js + shadcn/ui\n", g.analysis.Framework.Name)
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeExecutiveSummary(b *strings.Builder) {
	a := g.analysis
	level, marker, _ := complexityLevel(a.ComplexityScore)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(b, "This report analyzes the migration of a **%s %s** application to **Next.js 15+ with shadcn/ui**.\n\n",
		a.Framework.Name, a.Framework.Version)
	b.WriteString("**Key Metrics:**\n\n")
	fmt.Fprintf(b, "- **Framework:** %s %s\n", a.Framework.Name, a.Framework.Version)
	fmt.Fprintf(b, "- **Components:** %d\n", a.ComponentCount)
	fmt.Fprintf(b, "- **Build Tool:** %s\n", a.BuildTool)
	fmt.Fprintf(b, "- **Complexity:** %d/100 (%s) %s\n\n", a.ComplexityScore, level, marker)
	b.WriteString("**Migration Approach:**\n\n")
	b.WriteString("This migration will be executed in **5 phases** using a systematic batch-based approach:\n")
	b.WriteString("1. Codebase Analysis (Complete)\n")
	b.WriteString("2. Migration Planning (This Report)\n")
	b.WriteString("3. Next.js + shadcn Setup\n")
	b.WriteString("4. Component Conversion (Batch by Batch)\n")
	b.WriteString("5. Verification & Cleanup\n")
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeCurrentState(b *strings.Builder) {
	a := g.analysis

	b.WriteString("## Current State Analysis\n\n")
	b.WriteString("### Technology Stack\n\n")
	fmt.Fprintf(b, "- **Framework:** %s %s\n", a.Framework.Name, a.Framework.Version)
	fmt.Fprintf(b, "- **Build Tool:** %s\n", a.BuildTool)
	fmt.Fprintf(b, "- **Styling:** %s\n", strings.Join(a.StylingApproach, ", "))
	fmt.Fprintf(b, "- **State Management:** %s\n", strings.Join(a.StateManagement, ", "))
	fmt.Fprintf(b, "- **Routing:** %s\n\n", a.Routing)

	if len(a.FileStructure) > 0 {
		b.WriteString("### File Structure\n\n")
		b.WriteString("| Directory | File Types |\n")
		b.WriteString("|-----------|------------|\n")
		// Fixed directory order, sorted extensions: deterministic output.
		for _, dir := range analyzer.StructureDirs {
			counts, ok := a.FileStructure[dir]
			if !ok {
				continue
			}
			exts := make([]string, 0, len(counts))
			for ext := range counts {
				exts = append(exts, ext)
			}
			sort.Strings(exts)
			parts := make([]string, 0, len(exts))
			for _, ext := range exts {
				parts = append(parts, fmt.Sprintf("%s (%d)", ext, counts[ext]))
			}
			fmt.Fprintf(b, "| `%s/` | %s |\n", dir, strings.Join(parts, ", "))
		}
		b.WriteString("\n")
	}

	depCount := len(a.Dependencies)
	devDepCount := len(a.DevDependencies)
	b.WriteString("### Dependencies\n\n")
	fmt.Fprintf(b, "- **Production Dependencies:** %d\n", depCount)
	fmt.Fprintf(b, "- **Dev Dependencies:** %d\n", devDepCount)
	fmt.Fprintf(b, "- **Total:** %d\n", depCount+devDepCount)
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeInventory(b *strings.Builder) {
	a := g.analysis

	var simple, medium, high int
	typeCounts := make(map[string]int)
	for _, c := range a.Components {
		switch c.Complexity {
		case analyzer.ComplexitySimple:
			simple++
		case analyzer.ComplexityMedium:
			medium++
		case analyzer.ComplexityHigh:
			high++
		}
		typeCounts[c.Type]++
	}

	b.WriteString("## Component Inventory\n\n")
	fmt.Fprintf(b, "**Total Components:** %d\n\n", len(a.Components))
	b.WriteString("### By Complexity\n\n")
	b.WriteString("| Complexity | Count | Description |\n")
	b.WriteString("|------------|-------|-------------|\n")
	fmt.Fprintf(b, "| ✅ Simple | %d | Direct shadcn mapping, minimal changes needed |\n", simple)
	fmt.Fprintf(b, "| ⚠️ Medium | %d | Requires adaptation, some custom logic |\n", medium)
	fmt.Fprintf(b, "| 🔴 High | %d | Complex components, significant refactoring |\n\n", high)

	b.WriteString("### By Type\n\n")
	types := make([]string, 0, len(typeCounts))
	for t := range typeCounts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(b, "- **%s:** %d components\n", titleCase(t), typeCounts[t])
	}
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeMappingStrategy(b *strings.Builder) {
	a := g.analysis

	var mappable, custom []analyzer.Component
	for _, c := range a.Components {
		if c.ShadcnEquivalent != "" {
			mappable = append(mappable, c)
		} else {
			custom = append(custom, c)
		}
	}

	b.WriteString("## Component Mapping Strategy\n\n")
	fmt.Fprintf(b, "**Direct shadcn Mappings:** %d components\n", len(mappable))
	fmt.Fprintf(b, "**Custom Development Needed:** %d components\n\n", len(custom))

	if len(mappable) > 0 {
		b.WriteString("### Components with shadcn Equivalents\n\n")
		b.WriteString("| Current Component | File | shadcn Equivalent | Complexity |\n")
		b.WriteString("|-------------------|------|-------------------|------------|\n")
		shown := mappable
		if len(shown) > maxMappableRows {
			shown = shown[:maxMappableRows]
		}
		for _, c := range shown {
			fmt.Fprintf(b, "| %s | `%s` | %s | %s %s |\n",
				c.Name, c.Path, c.ShadcnEquivalent, complexityMarker(c.Complexity), c.Complexity)
		}
		if len(mappable) > maxMappableRows {
			fmt.Fprintf(b, "| ... | ... | ... | *%d more* |\n", len(mappable)-maxMappableRows)
		}
		b.WriteString("\n")
	}

	if len(custom) > 0 {
		b.WriteString("### Components Requiring Custom Development\n\n")
		b.WriteString("These components don't have direct shadcn equivalents and will need to be built using shadcn primitives:\n\n")
		shown := custom
		if len(shown) > maxCustomRows {
			shown = shown[:maxCustomRows]
		}
		for _, c := range shown {
			fmt.Fprintf(b, "- **%s** (`%s`) - Complexity: %s\n", c.Name, c.Path, c.Complexity)
		}
		if len(custom) > maxCustomRows {
			fmt.Fprintf(b, "- *... and %d more*\n", len(custom)-maxCustomRows)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
}

func (g *Generator) writeBatchPlan(b *strings.Builder, batches []Batch) {
	b.WriteString("## Batch Organization Plan\n\n")
	fmt.Fprintf(b, "**Total Batches:** %d\n\n", len(batches))
	b.WriteString("Components will be converted in systematic batches of 5-10 components each.\n\n")

	for i, batch := range batches {
		fmt.Fprintf(b, "### Batch %d: %s\n\n", i+1, batch.Name)
		fmt.Fprintf(b, "**Priority:** %s\n", batch.Priority)
		fmt.Fprintf(b, "**Component Count:** %d\n", len(batch.Components))
		fmt.Fprintf(b, "**Estimated Complexity:** %s\n\n", batch.Complexity)
		b.WriteString("**Components:**\n\n")
		for _, c := range batch.Components {
			target := c.ShadcnEquivalent
			if target == "" {
				target = "Custom"
			}
			fmt.Fprintf(b, "- %s → %s\n", c.Name, target)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
}

func (g *Generator) writeComplexityAssessment(b *strings.Builder) {
	a := g.analysis
	level, marker, description := complexityLevel(a.ComplexityScore)

	b.WriteString("## Complexity Assessment\n\n")
	fmt.Fprintf(b, "**Overall Complexity Score:** %d/100 (%s) %s\n\n", a.ComplexityScore, level, marker)
	b.WriteString(description)
	b.WriteString("\n\n### Complexity Factors\n\n")

	switch a.Framework.Name {
	case analyzer.FrameworkVanilla:
		b.WriteString("- **Framework:** Vanilla JavaScript (High complexity - no component structure)\n")
	case "Vue", "Angular":
		fmt.Fprintf(b, "- **Framework:** %s (Medium complexity - different paradigms)\n", a.Framework.Name)
	case "React":
		b.WriteString("- **Framework:** React (Low complexity - similar patterns)\n")
	case "Next.js":
		b.WriteString("- **Framework:** Next.js (Very low - already Next.js)\n")
	}

	switch {
	case a.ComponentCount > 100:
		fmt.Fprintf(b, "- **Component Count:** %d (High - large codebase)\n", a.ComponentCount)
	case a.ComponentCount > 50:
		fmt.Fprintf(b, "- **Component Count:** %d (Medium - moderately sized)\n", a.ComponentCount)
	default:
		fmt.Fprintf(b, "- **Component Count:** %d (Low - small codebase)\n", a.ComponentCount)
	}

	switch {
	case containsAny(a.StylingApproach, "styled-components", "Emotion"):
		b.WriteString("- **Styling:** CSS-in-JS (Higher complexity - needs conversion to Tailwind)\n")
	case containsAny(a.StylingApproach, "Tailwind"):
		b.WriteString("- **Styling:** Tailwind CSS (Low complexity - already compatible)\n")
	default:
		b.WriteString("- **Styling:** Traditional CSS/SCSS (Medium complexity)\n")
	}

	b.WriteString("\n---\n\n")
}

func (g *Generator) writeRoadmap(b *strings.Builder, batches []Batch) {
	b.WriteString("## Migration Roadmap\n\n")
	b.WriteString("### Phase 1: Codebase Analysis ✅\n\n")
	b.WriteString("- [x] Run codebase analysis\n")
	b.WriteString("- [x] Detect hardcoded values\n")
	b.WriteString("- [x] Generate migration report\n\n")
	b.WriteString("### Phase 2: Migration Planning ⏳\n\n")
	b.WriteString("- [x] Component mapping\n")
	b.WriteString("- [x] Batch organization\n")
	b.WriteString("- [ ] Review and approve plan\n")
	b.WriteString("- [ ] Set up project timeline\n\n")
	b.WriteString("### Phase 3: Next.js + shadcn Setup\n\n")
	b.WriteString("- [ ] Initialize Next.js project\n")
	b.WriteString("- [ ] Install shadcn/ui\n")
	b.WriteString("- [ ] Configure CSS variables\n")
	b.WriteString("- [ ] Set up theme provider\n")
	b.WriteString("- [ ] Install essential shadcn components\n\n")
	b.WriteString("### Phase 4: Systematic Conversion\n\n")

	for i, batch := range batches {
		fmt.Fprintf(b, "- [ ] **Batch %d:** %s (%d components)\n", i+1, batch.Name, len(batch.Components))
	}

	b.WriteString("\n### Phase 5: Verification & Cleanup\n\n")
	b.WriteString("- [ ] Run full test suite\n")
	b.WriteString("- [ ] Visual regression testing\n")
	b.WriteString("- [ ] Performance audit (Lighthouse)\n")
	b.WriteString("- [ ] Accessibility audit\n")
	b.WriteString("- [ ] Final hardcoded values check (target: 0 violations)\n")
	b.WriteString("- [ ] Remove old framework code\n")
	b.WriteString("- [ ] Update documentation\n")
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeRecommendations(b *strings.Builder) {
	a := g.analysis

	b.WriteString("## Recommendations\n\n")
	b.WriteString("### Priority Actions\n\n")
	b.WriteString("1. **Review Framework-Specific Patterns**\n\n")

	switch a.Framework.Name {
	case "React":
		b.WriteString("   - Review React to Next.js conversion patterns (hooks, context, SSR boundaries)\n")
	case "Vue":
		b.WriteString("   - Review Vue to Next.js conversion patterns (composition API to hooks, SFC splitting)\n")
	case "Angular":
		b.WriteString("   - Review Angular to Next.js conversion patterns (services to hooks, template rewrites)\n")
	}

	b.WriteString("   - Review the shadcn component mapping for target equivalents\n")
	b.WriteString("   - Review the styling conversion approach (CSS variables + Tailwind)\n\n")
	b.WriteString("2. **Initialize Next.js Project**\n")
	b.WriteString("   ```bash\n")
	b.WriteString("   npx create-next-app@latest my-new-app\n")
	b.WriteString("   npx shadcn@latest init\n")
	b.WriteString("   ```\n\n")
	b.WriteString("3. **Start with High-Priority Batches**\n")
	b.WriteString("   - Begin with Layout & Structure components\n")
	b.WriteString("   - Test thoroughly after each batch\n")
	b.WriteString("   - Ensure functionality preserved\n\n")
	b.WriteString("4. **Use Systematic Conversion Process**\n")
	b.WriteString("   - Convert 5-10 components per batch\n")
	b.WriteString("   - Run tests after each batch\n")
	b.WriteString("   - Remove all hardcoded values\n\n")
	b.WriteString("### Best Practices\n\n")
	b.WriteString("- **No Hardcoded Values:** Use CSS variables for everything\n")
	b.WriteString("- **Standard Components Only:** Use shadcn/ui components exclusively\n")
	b.WriteString("- **Test Continuously:** Run tests after each batch\n")
	b.WriteString("- **Incremental Migration:** Keep old code working during transition\n\n")
	b.WriteString("### Risk Mitigation\n\n")

	if a.ComplexityScore > 60 {
		b.WriteString("- **High Complexity Detected:**\n")
		b.WriteString("  - Consider parallel codebase approach (old + new)\n")
		b.WriteString("  - Allocate extra time for testing\n")
		b.WriteString("  - Plan for potential blockers\n\n")
	}
	if containsAny(a.StylingApproach, "styled-components") {
		b.WriteString("- **CSS-in-JS Migration:**\n")
		b.WriteString("  - Budget extra time for styling conversion\n")
		b.WriteString("  - Create CSS variable mapping document\n")
		b.WriteString("  - Consider automated conversion tools\n\n")
	}
	if a.ComponentCount > 50 {
		b.WriteString("- **Large Component Count:**\n")
		b.WriteString("  - Use batch-based approach strictly\n")
		b.WriteString("  - Set up automated testing\n")
		b.WriteString("  - Consider feature flags for gradual rollout\n\n")
	}

	b.WriteString("---\n\n")
}

func (g *Generator) writeFooter(b *strings.Builder, now time.Time) {
	b.WriteString("## Next Steps\n\n")
	b.WriteString("1. **Review this report** with your team\n")
	b.WriteString("2. **Approve migration plan** and timeline\n")
	b.WriteString("3. **Set up the Next.js project** with shadcn/ui\n")
	b.WriteString("4. **Begin Phase 4** with Batch 1 components\n\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(b, "*Report generated by uishift on %s*\n", now.Format(timestampLayout))
}

func containsAny(values []string, substrs ...string) bool {
	for _, v := range values {
		for _, s := range substrs {
			if strings.Contains(v, s) {
				return true
			}
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
