package domain

// SectionKind classifies a section by the underline below its title.
type SectionKind string

const (
	// SectionRoot is underlined with '=' and marks a top-level quantity.
	SectionRoot SectionKind = "root"
	// SectionRegular is underlined with '-' and marks an intermediate quantity.
	SectionRegular SectionKind = "regular"
)

// Section is the declaration block for one target variable.
type Section struct {
	Target       string        `json:"target" yaml:"target"`
	Kind         SectionKind   `json:"kind" yaml:"kind"`
	Declarations []Declaration `json:"declarations" yaml:"declarations"`

	// Line is the 1-based line number of the section title.
	Line int `json:"line" yaml:"line"`
}

// IsRoot reports whether the section was underlined with '='.
func (s Section) IsRoot() bool {
	return s.Kind == SectionRoot
}

func (s Section) clone() Section {
	out := s
	out.Declarations = append([]Declaration(nil), s.Declarations...)
	return out
}
