// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/axololly/jparse/internal/escape"

	"go4.org/mem"
)

// Tokenize splits text into a sequence of tokens. The text should already have
// its line endings normalized to LF (see NormalizeNewlines).
//
// Tokenize either consumes all of text and returns the complete token list,
// or stops at the first lexical error and returns only that error, which has
// concrete type *LexicalError. An input containing only whitespace yields an
// empty list and no error.
func Tokenize(text string) ([]Token, error) {
	s := &scanner{src: text, cur: newRuneCursor(mem.S(text))}
	var toks []Token
	for {
		tok, ok, err := s.next()
		if err != nil {
			return nil, err
		} else if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// A scanner holds the state of a single call to Tokenize.
type scanner struct {
	src string
	cur *runeCursor

	pos  Pos             // start of the current token
	text string          // literal of the current token
	buf  strings.Builder // decoded string contents
	hi   rune            // pending high surrogate from a \u escape, or 0
}

// next scans the next token. It reports false without error at the end of
// the input.
func (s *scanner) next() (Token, bool, error) {
	for {
		ch, ok := s.cur.peek()
		if !ok {
			return Token{}, false, nil
		}
		s.pos = s.cur.Pos()

		// Discard whitespace.
		if isSpace(ch) {
			s.cur.next()
			continue
		}

		var kind Kind
		var err error
		if k, ok := selfDelim(ch); ok {
			s.cur.next()
			kind, s.text = k, string(ch)
		} else if isNumStart(ch) {
			kind, err = s.scanNumber()
		} else if ch == '"' {
			kind, err = s.scanString()
		} else if isNameStart(ch) {
			kind, err = s.scanName()
		} else {
			return Token{}, false, s.fail(ErrUnrecognizedCharacter, s.pos, string(ch),
				"unrecognized character %q", ch)
		}
		if err != nil {
			return Token{}, false, err
		}
		return Token{Kind: kind, Text: s.text, Pos: s.pos}, true, nil
	}
}

func (s *scanner) scanString() (Kind, error) {
	s.cur.next() // the opening quote
	s.buf.Reset()
	s.hi = 0
	for {
		at := s.cur.Pos()
		ch, ok := s.cur.next()
		if !ok {
			return Invalid, s.fail(ErrUnterminatedString, at, s.partial(),
				"end of input in string")
		}
		switch ch {
		case '"':
			s.flush()
			s.text = s.buf.String()
			return String, nil
		case '\n':
			return Invalid, s.fail(ErrUnterminatedString, at, s.partial(),
				"newline in string")
		case '\\':
			if err := s.scanEscape(at); err != nil {
				return Invalid, err
			}
		default:
			s.put(ch)
		}
	}
}

// scanEscape decodes the escape sequence following a backslash at pos.
func (s *scanner) scanEscape(at Pos) error {
	ch, ok := s.cur.next()
	if !ok {
		return s.fail(ErrUnterminatedString, at, `\`, "end of input in escape")
	} else if r, ok := escape.Single(ch); ok {
		s.put(r)
		return nil
	} else if ch != 'u' {
		return s.fail(ErrInvalidEscape, at, `\`+string(ch), "invalid %q after escape", ch)
	}
	r, err := s.readHex4(at)
	if err != nil {
		return err
	}

	// A high surrogate is held until we see whether a low surrogate escape
	// follows it; together they denote one code point.
	if s.hi != 0 {
		hi := s.hi
		s.hi = 0
		if escape.IsLowSurrogate(r) {
			s.buf.WriteRune(escape.Combine(hi, r))
			return nil
		}
		s.buf.WriteRune(utf8.RuneError)
	}
	if escape.IsHighSurrogate(r) {
		s.hi = r
	} else {
		s.buf.WriteRune(escape.Scalar(r))
	}
	return nil
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *scanner) readHex4(at Pos) (rune, error) {
	var digits [4]byte
	for i := range digits {
		ch, ok := s.cur.next()
		if !ok {
			return 0, s.fail(ErrUnterminatedString, at, `\u`+string(digits[:i]),
				"end of input in Unicode escape")
		} else if !escape.IsHexDigit(ch) {
			return 0, s.fail(ErrInvalidUnicodeEscape, at, `\u`+string(digits[:i])+string(ch),
				"not a hex digit: %q", ch)
		}
		digits[i] = byte(ch)
	}
	return escape.ParseHex(mem.B(digits[:]))
}

// put adds r to the decoded string, first resolving any pending unpaired
// high surrogate.
func (s *scanner) put(r rune) {
	s.flush()
	s.buf.WriteRune(r)
}

func (s *scanner) flush() {
	if s.hi != 0 {
		s.buf.WriteRune(utf8.RuneError)
		s.hi = 0
	}
}

// partial returns the decoded contents of an incomplete string, with its
// opening quote, for error reporting.
func (s *scanner) partial() string { return `"` + s.buf.String() }

func (s *scanner) scanNumber() (Kind, error) {
	start := s.cur.Offset()
	if ch, _ := s.cur.peek(); ch == '-' {
		s.cur.next()
	}
	if s.digits() == 0 {
		return Invalid, s.failNumber(start, "want digit")
	}

	kind := Int
	if ch, ok := s.cur.peek(); ok && ch == '.' {
		s.cur.next()
		if s.digits() == 0 {
			return Invalid, s.failNumber(start, "no digits after decimal point")
		}
		kind = Float
	}
	if ch, ok := s.cur.peek(); ok && (ch == 'e' || ch == 'E') {
		s.cur.next()
		if ch, ok := s.cur.peek(); ok && ch == '-' {
			s.cur.next()
		}
		if s.digits() == 0 {
			return Invalid, s.failNumber(start, "missing exponent digits")
		}
		kind = Float
	}
	s.text = s.src[start:s.cur.Offset()]
	return kind, nil
}

// digits consumes a run of decimal digits and reports how many it read.
func (s *scanner) digits() int {
	var nr int
	for {
		ch, ok := s.cur.peek()
		if !ok || !isDigit(ch) {
			return nr
		}
		s.cur.next()
		nr++
	}
}

func (s *scanner) failNumber(start int, msg string) error {
	text := s.src[start:s.cur.Offset()]
	if ch, ok := s.cur.peek(); ok {
		return s.fail(ErrInvalidNumber, s.cur.Pos(), text, "%s, got %q after %q", msg, ch, text)
	}
	return s.fail(ErrInvalidNumber, s.cur.Pos(), text, "%s, got end of input after %q", msg, text)
}

func (s *scanner) scanName() (Kind, error) {
	start := s.cur.Offset()
	s.cur.next()
	for {
		ch, ok := s.cur.peek()
		if !ok || !isNameRune(ch) {
			break
		}
		s.cur.next()
	}
	s.text = s.src[start:s.cur.Offset()]
	return Name, nil
}

func (s *scanner) fail(kind error, at Pos, text, msg string, args ...any) error {
	return &LexicalError{
		Pos:     at,
		Text:    text,
		Message: fmt.Sprintf("%v: %s", kind, fmt.Sprintf(msg, args...)),
		err:     kind,
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
func isNameRune(ch rune) bool { return isNameStart(ch) || isDigit(ch) }
