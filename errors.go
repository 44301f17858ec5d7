// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"strings"
)

// Lexical error conditions reported by Tokenize. A *LexicalError wraps
// exactly one of these; use errors.Is to test for them.
var (
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrInvalidEscape         = errors.New("invalid escape")
	ErrInvalidUnicodeEscape  = errors.New("invalid Unicode escape")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// Syntax error conditions reported by the parser. A *SyntaxError wraps
// exactly one of these; use errors.Is to test for them.
var (
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrInvalidLiteralName = errors.New("invalid literal name")
	ErrTrailingTokens     = errors.New("trailing tokens")

	// ErrNumberRange is reported when the literal of an Int or Float token
	// does not fit its Go type. The tokenizer guarantees the literal is
	// well-formed, so only overflow can cause this.
	ErrNumberRange = errors.New("number out of range")
)

// LexicalError is the concrete type of errors reported by Tokenize.
type LexicalError struct {
	Pos     Pos    // where the offending text was found
	Text    string // the offending text, if any
	Message string

	err error
}

// Error satisfies the error interface.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}

// Unwrap supports error wrapping.
func (e *LexicalError) Unwrap() error { return e.err }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Pos      Pos     // where the error was detected
	Token    *Token  // the offending token, or nil at end of input
	Leftover []Token // for ErrTrailingTokens, the unconsumed tokens
	Message  string

	err error
}

// NewSyntaxError constructs a *SyntaxError wrapping kind, which should be one
// of the syntax error sentinels. If tok != nil, its position is used, and the
// error keeps a copy of the token.
func NewSyntaxError(kind error, pos Pos, tok *Token, msg string, args ...any) *SyntaxError {
	if tok != nil {
		cp := *tok
		tok, pos = &cp, cp.Pos
	}
	return &SyntaxError{
		Pos:     pos,
		Token:   tok,
		Message: fmt.Sprintf(msg, args...),
		err:     kind,
	}
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	if len(e.Leftover) == 0 {
		return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
	}
	ss := make([]string, len(e.Leftover))
	for i, tok := range e.Leftover {
		ss[i] = tok.String()
	}
	return fmt.Sprintf("at %s: %s [%s]", e.Pos, e.Message, strings.Join(ss, ", "))
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }
