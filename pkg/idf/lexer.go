package idf

import (
	"io"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token types produced by the IDF scanner. Section markers are only
// recognized at the start of a line; a dotted token anywhere else is an
// ordinary bare string.
const (
	tokenSectionHeader lexer.TokenType = -(iota + 2)
	tokenSectionEnd
	tokenNewline
	tokenInteger
	tokenFloat
	tokenQuoted
	tokenBare
)

var idfSymbols = map[string]lexer.TokenType{
	"EOF":           lexer.EOF,
	"SectionHeader": tokenSectionHeader,
	"SectionEnd":    tokenSectionEnd,
	"Newline":       tokenNewline,
	"Integer":       tokenInteger,
	"Float":         tokenFloat,
	"Quoted":        tokenQuoted,
	"Bare":          tokenBare,
}

var (
	integerPattern = regexp.MustCompile(`^[-+]?[0-9]+$`)
	floatPattern   = regexp.MustCompile(`^[-+]?[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?$`)
)

// idfDefinition is the lexer.Definition plugged into the participle grammar.
type idfDefinition struct{}

func (idfDefinition) Symbols() map[string]lexer.TokenType {
	return idfSymbols
}

func (idfDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newIdfLexer(filename, string(data)), nil
}

func (idfDefinition) LexString(filename, input string) (lexer.Lexer, error) {
	return newIdfLexer(filename, input), nil
}

// idfLexer scans the whole buffered input. Horizontal whitespace and
// comments (# to end of line) are dropped; newlines are significant
// because IDF records are lines.
type idfLexer struct {
	input     string
	pos       lexer.Position
	lineStart bool
}

func newIdfLexer(filename, input string) *idfLexer {
	return &idfLexer{
		input:     input,
		pos:       lexer.Position{Filename: filename, Line: 1, Column: 1},
		lineStart: true,
	}
}

func (l *idfLexer) Next() (lexer.Token, error) {
	for l.pos.Offset < len(l.input) {
		ch := l.input[l.pos.Offset]
		switch {
		case ch == '\n':
			start := l.pos
			l.advance(1)
			l.pos.Line++
			l.pos.Column = 1
			l.lineStart = true
			return lexer.Token{Type: tokenNewline, Value: "\n", Pos: start}, nil

		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance(1)

		case ch == '#':
			for l.pos.Offset < len(l.input) && l.input[l.pos.Offset] != '\n' {
				l.advance(1)
			}

		case ch == '"':
			return l.scanQuoted()

		default:
			return l.scanBare()
		}
	}
	return lexer.EOFToken(l.pos), nil
}

// scanQuoted reads a "..." token. The contents are literal: no escape
// processing, and the token value keeps its surrounding quotes.
func (l *idfLexer) scanQuoted() (lexer.Token, error) {
	start := l.pos
	l.advance(1)
	for l.pos.Offset < len(l.input) {
		ch := l.input[l.pos.Offset]
		if ch == '\n' {
			break
		}
		l.advance(1)
		if ch == '"' {
			l.lineStart = false
			return lexer.Token{
				Type:  tokenQuoted,
				Value: l.input[start.Offset:l.pos.Offset],
				Pos:   start,
			}, nil
		}
	}
	return lexer.Token{}, &lexer.Error{Msg: "unterminated quoted string", Pos: start}
}

// scanBare reads a maximal run of non-whitespace, non-quote characters and
// classifies it as a section marker, number, or bare string.
func (l *idfLexer) scanBare() (lexer.Token, error) {
	start := l.pos
	for l.pos.Offset < len(l.input) {
		ch := l.input[l.pos.Offset]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '"' {
			break
		}
		l.advance(1)
	}
	value := l.input[start.Offset:l.pos.Offset]
	atLineStart := l.lineStart
	l.lineStart = false
	return lexer.Token{Type: classify(value, atLineStart), Value: value, Pos: start}, nil
}

func classify(value string, atLineStart bool) lexer.TokenType {
	if atLineStart && len(value) > 1 && value[0] == '.' {
		if strings.HasPrefix(value, ".END_") {
			return tokenSectionEnd
		}
		return tokenSectionHeader
	}
	switch {
	case integerPattern.MatchString(value):
		return tokenInteger
	case floatPattern.MatchString(value):
		return tokenFloat
	default:
		return tokenBare
	}
}

func (l *idfLexer) advance(n int) {
	l.pos.Offset += n
	l.pos.Column += n
}
