package analyzer

import "strings"

// frameworkBaseScore is the migration difficulty contribution of the source
// framework. Vanilla JS scores highest: there is no component structure to
// carry over. Next.js scores lowest: the target framework is already in use.
var frameworkBaseScore = map[string]int{
	FrameworkVanilla: 40,
	"Vue":            30,
	"Angular":        35,
	"React":          15,
	"Next.js":        5,
}

// Score computes the overall migration complexity score in [0, 100] from
// independently bucketed sub-scores: framework base, component count,
// styling approach, state management, and hardcoded color totals.
func Score(a *Analysis) int {
	score := frameworkBaseScore[a.Framework.Name]

	switch {
	case a.ComponentCount > 100:
		score += 30
	case a.ComponentCount > 50:
		score += 20
	case a.ComponentCount > 20:
		score += 10
	default:
		score += 5
	}

	// CSS-in-JS needs conversion to Tailwind; existing Tailwind is nearly free.
	switch {
	case anyContains(a.StylingApproach, "styled-components") || anyContains(a.StylingApproach, "Emotion"):
		score += 15
	case anyContains(a.StylingApproach, "Tailwind CSS"):
		score += 5
	default:
		score += 10
	}

	if anyContains(a.StateManagement, "Redux") || anyContains(a.StateManagement, "MobX") {
		score += 10
	}

	totalColors := 0
	for _, c := range a.Components {
		if c.HardcodedValues != nil {
			totalColors += c.HardcodedValues.Colors
		}
	}
	switch {
	case totalColors > 100:
		score += 10
	case totalColors > 50:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
