package parser

import (
	"testing"

	"github.com/aretw0/vardeps/internal/lexer"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeclaration(t *testing.T) {
	tests := []struct {
		text       string
		wantKind   domain.DependencyKind
		wantOrigin domain.Origin
	}{
		{"beta [above]", domain.KindArray, domain.OriginAbove},
		{"beta array [below]", domain.KindArray, domain.OriginBelow},
		{"soilA scalar constant", domain.KindScalar, domain.OriginConstant},
		{"forcing external", domain.KindArray, domain.OriginExternal},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			decl, err := NewDeclaration(lexer.Classify(tt.text), 5)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, decl.Kind)
			assert.Equal(t, tt.wantOrigin, decl.Origin)
			assert.Equal(t, 5, decl.Line)
		})
	}
}

func TestNewDeclaration_InvalidKind(t *testing.T) {
	_, err := NewDeclaration(lexer.Classify("beta vector [above]"), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDependencyKind)

	var lineErr *domain.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "vector", lineErr.Token)
	assert.Equal(t, 7, lineErr.Line)
	assert.Equal(t, "beta vector [above]", lineErr.Text)
}

func TestNewDeclaration_InvalidOrigin(t *testing.T) {
	for _, text := range []string{"soilA upward", "soilA [ABOVE]", "soilA above", "soilA scalar Constant"} {
		t.Run(text, func(t *testing.T) {
			_, err := NewDeclaration(lexer.Classify(text), 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidDependencyOrigin)
			assert.Contains(t, err.Error(), text)
		})
	}
}

func TestNewDeclaration_KindCheckedBeforeOrigin(t *testing.T) {
	_, err := NewDeclaration(lexer.Classify("beta vector upward"), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDependencyKind)
}
