// Package lexer classifies single lines of a dependency file.
package lexer

import (
	"regexp"

	"github.com/aretw0/vardeps/pkg/domain"
)

// LineKind is the lexical category of one input line.
type LineKind int

const (
	Unrecognized LineKind = iota
	Blank
	SectionTitle
	SectionUnderline
	DependencyDeclaration
)

var kindNames = map[LineKind]string{
	Unrecognized:          "unrecognized",
	Blank:                 "blank",
	SectionTitle:          "section title",
	SectionUnderline:      "section underline",
	DependencyDeclaration: "dependency declaration",
}

func (k LineKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Line is a classified line together with the groups its pattern captured.
type Line struct {
	Kind LineKind
	Text string

	// Name is the title identifier or the dependency name.
	Name string
	// Underline is the run of '=' / '-' characters.
	Underline string
	// Type is the optional kind token of a declaration; empty when absent.
	Type string
	// Origin is the last token of a declaration.
	Origin string
}

var patterns = struct {
	title      *regexp.Regexp
	underline  *regexp.Regexp
	dependency *regexp.Regexp
}{
	title:      regexp.MustCompile(`^(` + domain.IdentifierPattern + `):$`),
	underline:  regexp.MustCompile(`^([=-]+)$`),
	dependency: regexp.MustCompile(`^(` + domain.IdentifierPattern + `) +(?:(` + domain.IdentifierPattern + `) +)?([^ ]+)$`),
}

// Classify returns the category of text, tested in priority order:
// blank, title, underline, declaration. The caller strips surrounding whitespace.
func Classify(text string) Line {
	l := Line{Text: text}

	if text == "" {
		l.Kind = Blank
		return l
	}
	if m := patterns.title.FindStringSubmatch(text); m != nil {
		l.Kind = SectionTitle
		l.Name = m[1]
		return l
	}
	if m := patterns.underline.FindStringSubmatch(text); m != nil {
		l.Kind = SectionUnderline
		l.Underline = m[1]
		return l
	}
	if m := patterns.dependency.FindStringSubmatch(text); m != nil {
		l.Kind = DependencyDeclaration
		l.Name = m[1]
		l.Type = m[2]
		l.Origin = m[3]
		return l
	}

	l.Kind = Unrecognized
	return l
}
