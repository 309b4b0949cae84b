package idf

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser decodes IDF 3.0 documents. It is immutable after construction
// and safe to reuse across files.
type Parser struct {
	parser *participle.Parser[idfFile]
}

// NewParser builds the grammar and returns a ready parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[idfFile](
		participle.Lexer(idfDefinition{}),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse decodes a full IDF 3.0 document from a reader. The whole input is
// buffered before parsing.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, grammarError(err)
	}
	return decodeDocument(file)
}

// ParseString decodes a full IDF 3.0 document from a string.
func (p *Parser) ParseString(input string) (*Document, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, grammarError(err)
	}
	return decodeDocument(file)
}

// ParseFile decodes an IDF 3.0 document from a file path. This is a
// convenience wrapper; the codec itself never touches the filesystem.
func (p *Parser) ParseFile(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
