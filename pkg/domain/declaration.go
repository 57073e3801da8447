package domain

// DependencyKind is the shape of the referenced quantity.
type DependencyKind string

const (
	// KindArray is the default when a declaration carries no kind token.
	KindArray  DependencyKind = "array"
	KindScalar DependencyKind = "scalar"
)

// Origin is the structural source of a dependency.
type Origin string

const (
	// OriginAbove refers to the same-named quantity at the layer above.
	OriginAbove Origin = "above"
	// OriginBelow refers to the same-named quantity at the layer below.
	OriginBelow Origin = "below"
	// OriginConstant has no computed source.
	OriginConstant Origin = "constant"
	// OriginExternal is supplied from outside the modeled system.
	OriginExternal Origin = "external"
)

// IsLayerReference reports whether the origin points at an adjacent layer.
func (o Origin) IsLayerReference() bool {
	return o == OriginAbove || o == OriginBelow
}

// Token returns the origin as it is spelled in a dependency file.
func (o Origin) Token() string {
	if o.IsLayerReference() {
		return "[" + string(o) + "]"
	}
	return string(o)
}

// Declaration states that a section's target depends on another named quantity.
type Declaration struct {
	Name   string         `json:"name" yaml:"name"`
	Kind   DependencyKind `json:"kind" yaml:"kind"`
	Origin Origin         `json:"origin" yaml:"origin"`
	Line   int            `json:"line" yaml:"line"`
}
