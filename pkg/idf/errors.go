package idf

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Structural decode failures. All are terminal: a failed decode returns no
// partial document. Match with errors.Is.
var (
	ErrMissingHeader             = errors.New("file does not contain a HEADER section or is empty")
	ErrWrongFileType             = errors.New("expected BOARD_FILE, PANEL_FILE or LIBRARY_FILE")
	ErrUnsupportedVersion        = errors.New("expected version 3.0")
	ErrWrongUnit                 = errors.New("expected MM or THOU")
	ErrMalformedPlacementSection = errors.New("expected 2 records per component, got 1")
	ErrWrongSide                 = errors.New("expected TOP or BOTTOM for board side")
	ErrWrongStatus               = errors.New("expected PLACED, UNPLACED, MCAD or ECAD")
	ErrMalformedRecord           = errors.New("record has unexpected shape")
)

// GrammarError reports input that violates the IDF token grammar. Pos
// points at the offending byte.
type GrammarError struct {
	Pos     lexer.Position
	Message string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// NumericError reports a token that looked numeric but failed native
// conversion, e.g. an out-of-range integer. Unwrap exposes the strconv
// cause.
type NumericError struct {
	Pos   lexer.Position
	Token string
	Err   error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("%s: invalid numeric token %q: %v", e.Pos, e.Token, e.Err)
}

func (e *NumericError) Unwrap() error {
	return e.Err
}

// grammarError converts participle parse and lexer failures into
// GrammarError, keeping the source position they carry.
func grammarError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &GrammarError{Pos: perr.Position(), Message: perr.Message()}
	}
	return err
}
