package parser

import (
	"fmt"

	"github.com/aretw0/vardeps/internal/lexer"
	"github.com/aretw0/vardeps/pkg/domain"
)

var origins = map[string]domain.Origin{
	"[above]":  domain.OriginAbove,
	"[below]":  domain.OriginBelow,
	"constant": domain.OriginConstant,
	"external": domain.OriginExternal,
}

// NewDeclaration validates the groups captured from a declaration line.
// A missing kind token defaults to array.
func NewDeclaration(l lexer.Line, lineNo int) (domain.Declaration, error) {
	decl := domain.Declaration{Name: l.Name, Line: lineNo}

	switch l.Type {
	case "", string(domain.KindArray):
		decl.Kind = domain.KindArray
	case string(domain.KindScalar):
		decl.Kind = domain.KindScalar
	default:
		return domain.Declaration{}, &domain.LineError{
			Kind:  domain.ErrInvalidDependencyKind,
			Line:  lineNo,
			Text:  l.Text,
			Token: l.Type,
			Msg:   fmt.Sprintf("%q is neither array nor scalar", l.Type),
		}
	}

	origin, ok := origins[l.Origin]
	if !ok {
		return domain.Declaration{}, &domain.LineError{
			Kind:  domain.ErrInvalidDependencyOrigin,
			Line:  lineNo,
			Text:  l.Text,
			Token: l.Origin,
			Msg:   fmt.Sprintf("%q is not one of [above], [below], constant, external", l.Origin),
		}
	}
	decl.Origin = origin

	return decl, nil
}
