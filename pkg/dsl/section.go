package dsl

import "github.com/aretw0/vardeps/pkg/domain"

// SectionBuilder provides a fluent API for declaring a section's dependencies.
type SectionBuilder struct {
	section domain.Section
	builder *Builder
}

func (s *SectionBuilder) depend(name string, origin domain.Origin) *SectionBuilder {
	s.section.Declarations = append(s.section.Declarations, domain.Declaration{
		Name:   name,
		Kind:   domain.KindArray,
		Origin: origin,
	})
	return s
}

// Above declares a dependency on name at the layer above.
func (s *SectionBuilder) Above(name string) *SectionBuilder {
	return s.depend(name, domain.OriginAbove)
}

// Below declares a dependency on name at the layer below.
func (s *SectionBuilder) Below(name string) *SectionBuilder {
	return s.depend(name, domain.OriginBelow)
}

// Constant declares a dependency on a constant.
func (s *SectionBuilder) Constant(name string) *SectionBuilder {
	return s.depend(name, domain.OriginConstant)
}

// External declares a dependency on an externally supplied input.
func (s *SectionBuilder) External(name string) *SectionBuilder {
	return s.depend(name, domain.OriginExternal)
}

// Scalar marks the most recent declaration as scalar. It is a no-op on an empty section.
func (s *SectionBuilder) Scalar() *SectionBuilder {
	if n := len(s.section.Declarations); n > 0 {
		s.section.Declarations[n-1].Kind = domain.KindScalar
	}
	return s
}

// Section switches to (or creates) another regular section, for chaining.
func (s *SectionBuilder) Section(target string) *SectionBuilder {
	return s.builder.Add(target)
}
