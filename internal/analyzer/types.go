package analyzer

// Complexity labels assigned to components. Escalation is monotonic: a
// component starts simple and only moves up.
const (
	ComplexitySimple = "simple"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// Component types.
const (
	TypeFunctional = "functional"
	TypeClass      = "class"
	TypeVue        = "vue"
	TypeAngular    = "angular"
)

// Framework identifies the detected frontend framework.
type Framework struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HardcodedValues counts style literals embedded in a component file.
type HardcodedValues struct {
	Colors       int `json:"colors"`
	InlineStyles int `json:"inline_styles"`
}

// StylingFlags records CSS-in-JS library usage inside a React component file.
type StylingFlags struct {
	StyledComponents bool `json:"styled_components"`
	Emotion          bool `json:"emotion"`
}

// Component is a single detected UI component.
type Component struct {
	Name             string           `json:"name"`
	Path             string           `json:"path"`
	Type             string           `json:"type"`
	Complexity       string           `json:"complexity"`
	ShadcnEquivalent string           `json:"shadcn_equivalent,omitempty"`
	HardcodedValues  *HardcodedValues `json:"hardcoded_values,omitempty"`
	Styling          *StylingFlags    `json:"styling,omitempty"`
}

// Analysis is the interchange document produced by "uishift analyze" and
// consumed by "uishift report". It is built once per run and treated as
// read-only afterwards.
type Analysis struct {
	Framework       Framework                 `json:"framework"`
	BuildTool       string                    `json:"build_tool"`
	Components      []Component               `json:"components"`
	FileStructure   map[string]map[string]int `json:"file_structure"`
	Dependencies    map[string]string         `json:"dependencies"`
	DevDependencies map[string]string         `json:"dev_dependencies"`
	StylingApproach []string                  `json:"styling_approach"`
	StateManagement []string                  `json:"state_management"`
	Routing         string                    `json:"routing"`
	TotalFiles      int                       `json:"total_files"`
	ComponentCount  int                       `json:"component_count"`
	ComplexityScore int                       `json:"complexity_score"`
}
