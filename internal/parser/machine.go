package parser

import (
	"fmt"
	"strings"

	"github.com/aretw0/vardeps/internal/lexer"
	"github.com/aretw0/vardeps/pkg/domain"
)

// State is the position of the machine relative to the current section.
type State int

const (
	// Closed is the initial state and the state between sections.
	Closed State = iota
	// Opening means a title was read and its underline is expected next.
	Opening
	// Open accepts declarations and the closing blank line.
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Machine is the section state machine. It is a value: Step never mutates
// the receiver, so every transition can be exercised in isolation.
type Machine struct {
	state   State
	section domain.Section
}

// State returns the current state tag.
func (m Machine) State() State { return m.state }

// Pending returns the section being accumulated, if any.
func (m Machine) Pending() (domain.Section, bool) {
	if m.state == Closed {
		return domain.Section{}, false
	}
	return m.section, true
}

// Step applies one classified line. When a blank line closes an open section,
// the finalized section is returned alongside the next machine.
func (m Machine) Step(l lexer.Line, lineNo int) (Machine, *domain.Section, error) {
	switch m.state {
	case Closed:
		switch l.Kind {
		case lexer.Blank:
			return m, nil, nil
		case lexer.SectionTitle:
			return Machine{
				state:   Opening,
				section: domain.Section{Target: l.Name, Line: lineNo},
			}, nil, nil
		}
		return m, nil, malformed(l, lineNo, "expected a section title, got %s", l.Kind)

	case Opening:
		if l.Kind != lexer.SectionUnderline {
			return m, nil, malformed(l, lineNo, "expected an underline below title %q, got %s", m.section.Target, l.Kind)
		}
		kind, err := underlineKind(l, lineNo)
		if err != nil {
			return m, nil, err
		}
		next := m
		next.state = Open
		next.section.Kind = kind
		return next, nil, nil

	case Open:
		switch l.Kind {
		case lexer.Blank:
			done := m.section
			return Machine{state: Closed}, &done, nil
		case lexer.DependencyDeclaration:
			decl, err := NewDeclaration(l, lineNo)
			if err != nil {
				return m, nil, err
			}
			next := m
			next.section.Declarations = append(append([]domain.Declaration(nil), m.section.Declarations...), decl)
			return next, nil, nil
		}
		return m, nil, malformed(l, lineNo, "expected a dependency declaration or a blank line in section %q, got %s", m.section.Target, l.Kind)
	}

	return m, nil, malformed(l, lineNo, "machine in unknown state %s", m.state)
}

// Finish handles end of input. An open section is finalized as if a blank
// line followed it; a title without its underline is an error reported
// against the title line.
func (m Machine) Finish() (*domain.Section, error) {
	switch m.state {
	case Open:
		done := m.section
		return &done, nil
	case Opening:
		return nil, &domain.LineError{
			Kind: domain.ErrMalformedDocument,
			Line: m.section.Line,
			Text: m.section.Target + ":",
			Msg:  "input ends before the title's underline",
		}
	}
	return nil, nil
}

func underlineKind(l lexer.Line, lineNo int) (domain.SectionKind, error) {
	u := l.Underline
	if u == "" {
		return "", malformed(l, lineNo, "empty underline")
	}
	if strings.Trim(u, u[:1]) != "" {
		return "", malformed(l, lineNo, "underline mixes '=' and '-'")
	}
	switch u[0] {
	case '=':
		return domain.SectionRoot, nil
	case '-':
		return domain.SectionRegular, nil
	}
	return "", malformed(l, lineNo, "invalid underline character %q", u[0])
}

func malformed(l lexer.Line, lineNo int, format string, args ...any) error {
	return &domain.LineError{
		Kind: domain.ErrMalformedDocument,
		Line: lineNo,
		Text: l.Text,
		Msg:  fmt.Sprintf(format, args...),
	}
}
