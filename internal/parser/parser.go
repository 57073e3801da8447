// Package parser turns a dependency file into a domain.Graph.
//
// Lines are classified by the lexer, fed through the section state machine
// and validated one at a time; each finalized section is committed to a
// domain.Assembler. The first error aborts the parse and no graph is returned.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/vardeps/internal/lexer"
	"github.com/aretw0/vardeps/internal/logging"
	"github.com/aretw0/vardeps/pkg/domain"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 1 << 20

// Parser converts dependency files into graphs. It holds no per-document
// state, so one Parser may be reused and shared.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads r to the end and returns the assembled graph.
func (p *Parser) Parse(r io.Reader) (*domain.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	asm := domain.NewAssembler()
	var m Machine
	lineNo := 0

	commit := func(s *domain.Section) error {
		if s == nil {
			return nil
		}
		if err := asm.Commit(*s); err != nil {
			return err
		}
		p.logger.Debug("Section committed",
			"target", s.Target,
			"kind", s.Kind,
			"declarations", len(s.Declarations),
			"line", s.Line,
		)
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := lexer.Classify(strings.TrimSpace(scanner.Text()))

		next, done, err := m.Step(line, lineNo)
		if err != nil {
			p.logger.Debug("Parse aborted", "line", lineNo, "state", m.State(), "err", err)
			return nil, err
		}
		m = next
		if err := commit(done); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &domain.LineError{
				Kind: domain.ErrMalformedDocument,
				Line: lineNo + 1,
				Msg:  fmt.Sprintf("line exceeds the %d byte limit", MaxLineSize),
			}
		}
		return nil, &domain.UnreadableInputError{Err: err}
	}

	done, err := m.Finish()
	if err != nil {
		return nil, err
	}
	if err := commit(done); err != nil {
		return nil, err
	}

	g := asm.Finalize()
	p.logger.Debug("Parse complete", "lines", lineNo, "variables", g.Len(), "edges", g.EdgeCount())
	return g, nil
}
