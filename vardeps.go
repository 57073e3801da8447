package vardeps

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/vardeps/internal/parser"
	"github.com/aretw0/vardeps/pkg/domain"
)

// Version is the release version, overridden at build time via -ldflags.
var Version = "dev"

type settings struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring a parse.
type Option func(*settings)

// WithLogger sets a structured logger for parse traces (debug level).
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func newParser(opts []Option) *parser.Parser {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return parser.New(parser.WithLogger(s.logger))
}

// Parse reads a dependency document from r and returns its graph.
// Any failure aborts the whole parse; no partial graph is returned.
func Parse(r io.Reader, opts ...Option) (*domain.Graph, error) {
	return newParser(opts).Parse(r)
}

// ParseString is Parse over an in-memory document.
func ParseString(doc string, opts ...Option) (*domain.Graph, error) {
	return Parse(strings.NewReader(doc), opts...)
}

// ParseFile opens path and parses it. Open and read failures are reported
// as *domain.UnreadableInputError carrying the path.
func ParseFile(path string, opts ...Option) (*domain.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.UnreadableInputError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := newParser(opts).Parse(f)
	if err != nil {
		if ue, ok := err.(*domain.UnreadableInputError); ok && ue.Path == "" {
			return nil, &domain.UnreadableInputError{Path: path, Err: ue.Err}
		}
		return nil, err
	}
	return g, nil
}
