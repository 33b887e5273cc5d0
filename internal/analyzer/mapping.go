package analyzer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MappingEntry pairs a name keyword with the shadcn/ui component it suggests.
type MappingEntry struct {
	Keyword   string `yaml:"keyword"`
	Component string `yaml:"component"`
}

// defaultMappings is the builtin keyword table, evaluated in order: the first
// keyword found as a substring of the lowercased component name wins.
var defaultMappings = []MappingEntry{
	{"button", "Button"},
	{"btn", "Button"},
	{"card", "Card"},
	{"modal", "Dialog"},
	{"dialog", "Dialog"},
	{"input", "Input"},
	{"textfield", "Input"},
	{"select", "Select"},
	{"dropdown", "DropdownMenu"},
	{"table", "Table"},
	{"badge", "Badge"},
	{"tag", "Badge"},
	{"alert", "Alert"},
	{"toast", "Toast"},
	{"notification", "Toast"},
	{"tooltip", "Tooltip"},
	{"popover", "Popover"},
	{"tabs", "Tabs"},
	{"accordion", "Accordion"},
	{"checkbox", "Checkbox"},
	{"radio", "RadioGroup"},
	{"avatar", "Avatar"},
	{"breadcrumb", "Breadcrumb"},
	{"calendar", "Calendar"},
	{"datepicker", "Calendar"},
	{"form", "Form"},
	{"sheet", "Sheet"},
	{"drawer", "Sheet"},
	{"menu", "DropdownMenu"},
}

// Mapper suggests shadcn/ui equivalents for component names.
type Mapper struct {
	entries []MappingEntry
}

// NewMapper returns a Mapper with only the builtin keyword table.
func NewMapper() *Mapper {
	return &Mapper{entries: defaultMappings}
}

// mappingFile is the on-disk shape of a keyword override file.
type mappingFile struct {
	Mappings []MappingEntry `yaml:"mappings"`
}

// LoadMapper builds a Mapper, optionally extended with extra keyword pairs
// from a YAML file. Extra pairs are evaluated before the builtin table so
// they can override its suggestions. An empty path returns the builtin table.
func LoadMapper(path string) (*Mapper, error) {
	if path == "" {
		return NewMapper(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}

	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing mapping file: %w", err)
	}
	for i, e := range file.Mappings {
		if e.Keyword == "" || e.Component == "" {
			return nil, fmt.Errorf("mapping file: entry %d is missing keyword or component", i)
		}
	}

	entries := make([]MappingEntry, 0, len(file.Mappings)+len(defaultMappings))
	entries = append(entries, file.Mappings...)
	entries = append(entries, defaultMappings...)
	return &Mapper{entries: entries}, nil
}

// Equivalent returns the suggested shadcn/ui component for a component name,
// or "" when no keyword matches.
func (m *Mapper) Equivalent(name string) string {
	lower := strings.ToLower(name)
	for _, e := range m.entries {
		if strings.Contains(lower, e.Keyword) {
			return e.Component
		}
	}
	return ""
}
