package idf

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The parse tree mirrors the IDF 3.0 grammar: a document is a run of
// sections, each section a dotted header line, zero or more record lines,
// and the matching .END_ terminator. All semantic interpretation happens
// in the decoders; the tree itself is shape-only.

type idfFile struct {
	Pos lexer.Position

	Sections []*rawSection `parser:"Newline* @@*"`
}

type rawSection struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Header  string       `parser:"@SectionHeader"`
	Args    []*rawValue  `parser:"@@* Newline+"`
	Records []*rawRecord `parser:"@@*"`
	End     string       `parser:"@SectionEnd Newline*"`
}

// name strips the leading dot from the section header token.
func (s *rawSection) name() string {
	return strings.TrimPrefix(s.Header, ".")
}

// endName strips the .END_ prefix from the terminator token.
func (s *rawSection) endName() string {
	return strings.TrimPrefix(s.End, ".END_")
}

type rawRecord struct {
	Pos lexer.Position

	Values []*rawValue `parser:"@@+ Newline+"`
}

type rawValue struct {
	Pos lexer.Position

	Integer *string `parser:"  @Integer"`
	Float   *string `parser:"| @Float"`
	Quoted  *string `parser:"| @Quoted"`
	Bare    *string `parser:"| @Bare"`
}

// text returns the token exactly as it appeared in the input, quotes
// included for quoted strings. Untyped sections store this form so they
// round-trip losslessly.
func (v *rawValue) text() string {
	switch {
	case v.Integer != nil:
		return *v.Integer
	case v.Float != nil:
		return *v.Float
	case v.Quoted != nil:
		return *v.Quoted
	default:
		return *v.Bare
	}
}

// str returns the string form seen by typed decoders: quoted tokens yield
// their inner contents, everything else its literal text. Numeric tokens
// are valid here too; header fields like the "3.0" version literal lex as
// floats but are matched as strings.
func (v *rawValue) str() string {
	if v.Quoted != nil {
		q := *v.Quoted
		return q[1 : len(q)-1]
	}
	return v.text()
}

func (v *rawValue) isNumber() bool {
	return v.Integer != nil || v.Float != nil
}
