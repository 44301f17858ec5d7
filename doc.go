// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a JSON tokenizer. The companion package ast
// parses the resulting tokens into a value tree.
//
// # Tokenizing
//
// Tokenize converts a complete input text into a list of tokens in a single
// forward pass. Each Token records its Kind, its literal text, and the Pos
// (1-based line and column) where it began:
//
//	toks, err := jparse.Tokenize(text)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//	for _, tok := range toks {
//	   log.Printf("Token: %v", tok)
//	}
//
// String escapes are decoded eagerly, so the Text of a String token is the
// final string content without quotes. The Text of an Int or Float token is
// the number exactly as written. Bare identifiers are reported as Name tokens;
// the parser decides whether they are true, false, or null.
//
// The input should use LF line endings. NormalizeNewlines converts CRLF.
//
// # Errors
//
// Tokenize and the parser are fail-fast: the first problem aborts the whole
// call, and no partial result is returned. Errors have concrete type
// *LexicalError or *SyntaxError, and wrap one of the sentinel values
// declared in this package, so they can be tested with errors.Is:
//
//	Error                    | Raised by | Condition
//	------------------------ | --------- | ---------------------------------
//	ErrUnterminatedString    | Tokenize  | newline or end of input in a string
//	ErrInvalidEscape         | Tokenize  | unknown \x escape
//	ErrInvalidUnicodeEscape  | Tokenize  | non-hex digit in \uXXXX
//	ErrInvalidNumber         | Tokenize  | missing digits in a number
//	ErrUnrecognizedCharacter | Tokenize  | a rune that starts no token
//	ErrUnexpectedToken       | ast.Parse | a token out of place
//	ErrUnexpectedEOF         | ast.Parse | input ends inside a value
//	ErrInvalidLiteralName    | ast.Parse | a name other than true/false/null
//	ErrTrailingTokens        | ast.Parse | tokens after the root value
//	ErrNumberRange           | ast.Parse | a number that overflows its type
package jparse
