package idf

import (
	"errors"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
)

func lexAll(t *testing.T, input string) []lexer.Token {
	t.Helper()
	lx, err := idfDefinition{}.LexString("", input)
	if err != nil {
		t.Fatalf("LexString() error: %v", err)
	}
	var tokens []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if tok.EOF() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestTokenClassification(t *testing.T) {
	tests := []struct {
		input string
		want  lexer.TokenType
	}{
		{"42", tokenInteger},
		{"-7", tokenInteger},
		{"+3", tokenInteger},
		{"1.5", tokenFloat},
		{"-0.25", tokenFloat},
		{"1.5e3", tokenFloat},
		{"-1.5E-3", tokenFloat},
		{"TP3", tokenBare},
		{"pn-cc1210", tokenBare},
		{"2023/11/07.16:37:12", tokenBare},
		{"3.0.1", tokenBare},
		{"1N4148", tokenBare},
		{`"hello world"`, tokenQuoted},
		{`""`, tokenQuoted},
		{".HEADER", tokenSectionHeader},
		{".BOARD_OUTLINE", tokenSectionHeader},
		{".END_HEADER", tokenSectionEnd},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.want {
				t.Errorf("token type = %d, want %d", tokens[0].Type, tt.want)
			}
			if tokens[0].Value != tt.input {
				t.Errorf("token value = %q, want %q", tokens[0].Value, tt.input)
			}
		})
	}
}

func TestSectionMarkersOnlyAtLineStart(t *testing.T) {
	tokens := lexAll(t, "x .HEADER\n.HEADER")
	want := []lexer.TokenType{tokenBare, tokenBare, tokenNewline, tokenSectionHeader}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, ty := range want {
		if tokens[i].Type != ty {
			t.Errorf("token %d (%q): type = %d, want %d", i, tokens[i].Value, tokens[i].Type, ty)
		}
	}
}

func TestIndentedSectionMarker(t *testing.T) {
	// Horizontal whitespace before the marker does not hide it.
	tokens := lexAll(t, "  .END_PLACEMENT")
	if len(tokens) != 1 || tokens[0].Type != tokenSectionEnd {
		t.Fatalf("got %v, want a single SectionEnd token", tokens)
	}
}

func TestCommentsAndWhitespaceSkipped(t *testing.T) {
	tokens := lexAll(t, "A # trailing comment\n# full line\nB")
	want := []struct {
		ty    lexer.TokenType
		value string
	}{
		{tokenBare, "A"},
		{tokenNewline, "\n"},
		{tokenNewline, "\n"},
		{tokenBare, "B"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w.ty || tokens[i].Value != w.value {
			t.Errorf("token %d = {%d %q}, want {%d %q}",
				i, tokens[i].Type, tokens[i].Value, w.ty, w.value)
		}
	}
}

func TestQuotedStringKeepsContentsLiteral(t *testing.T) {
	tokens := lexAll(t, `"a\b c"`)
	if len(tokens) != 1 || tokens[0].Type != tokenQuoted {
		t.Fatalf("got %v, want a single Quoted token", tokens)
	}
	// No escape processing: the backslash survives.
	if tokens[0].Value != `"a\b c"` {
		t.Errorf("token value = %q, want %q", tokens[0].Value, `"a\b c"`)
	}
}

func TestUnterminatedQuotedString(t *testing.T) {
	lx, err := idfDefinition{}.LexString("", "ok \"no closing quote\nnext")
	if err != nil {
		t.Fatalf("LexString() error: %v", err)
	}
	if _, err := lx.Next(); err != nil {
		t.Fatalf("first token error: %v", err)
	}
	_, err = lx.Next()
	if err == nil {
		t.Fatal("expected an error for an unterminated quoted string")
	}
	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		t.Fatalf("error %v does not carry a position", err)
	}
	if lerr.Position().Column != 4 {
		t.Errorf("error column = %d, want 4", lerr.Position().Column)
	}
}
