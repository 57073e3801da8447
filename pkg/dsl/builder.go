package dsl

import (
	"strings"

	"github.com/aretw0/vardeps/pkg/domain"
)

// UnderlineWidth is the length of rendered section underlines.
const UnderlineWidth = 20

// Builder manages the document construction.
type Builder struct {
	order    []string
	sections map[string]*SectionBuilder
}

// New creates a new document builder.
func New() *Builder {
	return &Builder{
		sections: make(map[string]*SectionBuilder),
	}
}

// Add creates a regular section for target.
// If the section already exists, it returns the existing builder.
func (b *Builder) Add(target string) *SectionBuilder {
	if sb, ok := b.sections[target]; ok {
		return sb
	}
	sb := &SectionBuilder{
		section: domain.Section{Target: target, Kind: domain.SectionRegular},
		builder: b,
	}
	b.sections[target] = sb
	b.order = append(b.order, target)
	return sb
}

// Root adds (or fetches) target and marks it as a root section.
func (b *Builder) Root(target string) *SectionBuilder {
	sb := b.Add(target)
	sb.section.Kind = domain.SectionRoot
	return sb
}

// Regular adds (or fetches) target and marks it as a regular section.
func (b *Builder) Regular(target string) *SectionBuilder {
	sb := b.Add(target)
	sb.section.Kind = domain.SectionRegular
	return sb
}

// Build assembles the sections, in the order they were first added, into a graph.
func (b *Builder) Build() (*domain.Graph, error) {
	asm := domain.NewAssembler()
	for _, target := range b.order {
		if err := asm.Commit(b.sections[target].section); err != nil {
			return nil, err
		}
	}
	return asm.Finalize(), nil
}

// Document renders the sections in the plain-text dependency format.
// Array is the default kind and is left implicit.
func (b *Builder) Document() string {
	var sb strings.Builder
	for i, target := range b.order {
		s := b.sections[target].section
		if i > 0 {
			sb.WriteString("\n")
		}
		underline := "-"
		if s.IsRoot() {
			underline = "="
		}
		sb.WriteString(s.Target + ":\n")
		sb.WriteString(strings.Repeat(underline, UnderlineWidth) + "\n")
		for _, d := range s.Declarations {
			sb.WriteString(d.Name)
			if d.Kind == domain.KindScalar {
				sb.WriteString(" " + string(domain.KindScalar))
			}
			sb.WriteString(" " + d.Origin.Token() + "\n")
		}
	}
	return sb.String()
}

// FromGraph seeds a builder with the sections of g, preserving their order.
func FromGraph(g *domain.Graph) *Builder {
	b := New()
	for _, s := range g.Sections() {
		sb := b.Add(s.Target)
		sb.section.Kind = s.Kind
		for _, d := range s.Declarations {
			d.Line = 0
			sb.section.Declarations = append(sb.section.Declarations, d)
		}
	}
	return b
}
