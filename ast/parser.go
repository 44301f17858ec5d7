// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/axololly/jparse"
)

// Parse parses a complete token list, as produced by jparse.Tokenize, into a
// single value. An empty list yields Empty and no error.
//
// Parse must consume every token. In case of error, no value is returned and
// the error has concrete type *jparse.SyntaxError. The tokens are read but
// not retained.
func Parse(tokens []jparse.Token) (Value, error) {
	if len(tokens) == 0 {
		return Empty, nil
	}
	p := &parser{cur: tokenCursor{toks: tokens}}
	v, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	if rest := p.cur.rest(); len(rest) != 0 {
		serr := jparse.NewSyntaxError(jparse.ErrTrailingTokens, rest[0].Pos, &rest[0],
			"%v: %d after end of value", jparse.ErrTrailingTokens, len(rest))
		serr.Leftover = slices.Clone(rest)
		return nil, serr
	}
	return v, nil
}

// ParseString tokenizes text and parses the result. The error, if any, is
// either a *jparse.LexicalError or a *jparse.SyntaxError.
func ParseString(text string) (Value, error) {
	toks, err := jparse.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// A parser holds the state of a single call to Parse.
type parser struct {
	cur tokenCursor
}

// parseElement consumes a single value of any type.
func (p *parser) parseElement() (Value, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case jparse.LBrace:
		return p.parseMembers()
	case jparse.LSquare:
		return p.parseElements()
	case jparse.Int, jparse.Float, jparse.String, jparse.Name:
		return p.parseSimple(tok)
	default:
		return nil, p.unexpected(tok, "expected value, got %v", tok.Kind)
	}
}

// parseMembers consumes zero or more "key": value object members.
// Precondition: the previous token was LBrace.
// Postcondition: the previous token was RBrace.
func (p *parser) parseMembers() (Value, error) {
	obj := NewObject()
	tok, err := p.advance(jparse.RBrace, jparse.String)
	if err != nil {
		return nil, err
	} else if tok.Kind == jparse.RBrace {
		return obj, nil // end of object
	}
	for {
		// Parse a single member: "key": value
		key := tok.Text
		if _, err := p.advance(jparse.Colon); err != nil {
			return nil, err
		}
		val, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)

		// Check whether we have more members (",") or are done ("}").
		tok, err = p.advance(jparse.RBrace, jparse.Comma)
		if err != nil {
			return nil, err
		} else if tok.Kind == jparse.RBrace {
			return obj, nil // end of object
		}
		tok, err = p.advance(jparse.String) // advance to next key
		if err != nil {
			return nil, err
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: the previous token was LSquare.
// Postcondition: the previous token was RSquare.
func (p *parser) parseElements() (Value, error) {
	arr := Array{}
	if tok, ok := p.cur.peek(); ok && tok.Kind == jparse.RSquare {
		p.cur.next()
		return arr, nil // end of array
	}
	for {
		val, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		tok, err := p.advance(jparse.RSquare, jparse.Comma)
		if err != nil {
			return nil, err
		} else if tok.Kind == jparse.RSquare {
			return arr, nil // end of array
		}
	}
}

// parseSimple converts a single scalar token into a value.
func (p *parser) parseSimple(tok *jparse.Token) (Value, error) {
	switch tok.Kind {
	case jparse.Int:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.numberError(tok, err)
		}
		return Int(v), nil
	case jparse.Float:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.numberError(tok, err)
		}
		return Float(v), nil
	case jparse.String:
		return String(tok.Text), nil
	case jparse.Name:
		switch tok.Text {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		case "null":
			return Null, nil
		}
		return nil, jparse.NewSyntaxError(jparse.ErrInvalidLiteralName, tok.Pos, tok,
			"%v: %q is not true, false, or null", jparse.ErrInvalidLiteralName, tok.Text)
	}
	panic(fmt.Sprintf("parseSimple: unexpected %v", tok.Kind))
}

// advance consumes the next token. If any kinds are given, the token must be
// one of them.
func (p *parser) advance(kinds ...jparse.Kind) (*jparse.Token, error) {
	tok, ok := p.cur.next()
	if !ok {
		return nil, jparse.NewSyntaxError(jparse.ErrUnexpectedEOF, p.cur.last, nil,
			"%v: %s", jparse.ErrUnexpectedEOF, kindLabel(kinds, "end of input"))
	}
	if len(kinds) != 0 && !slices.Contains(kinds, tok.Kind) {
		return nil, p.unexpected(tok, "%s", kindLabel(kinds, tok.Kind))
	}
	return tok, nil
}

func (p *parser) unexpected(tok *jparse.Token, msg string, args ...any) error {
	return jparse.NewSyntaxError(jparse.ErrUnexpectedToken, tok.Pos, tok,
		"%v: %s", jparse.ErrUnexpectedToken, fmt.Sprintf(msg, args...))
}

func (p *parser) numberError(tok *jparse.Token, err error) error {
	return jparse.NewSyntaxError(jparse.ErrNumberRange, tok.Pos, tok,
		"%v: %v %q: %v", jparse.ErrNumberRange, tok.Kind, tok.Text, err)
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []jparse.Kind, got any) string {
	if len(kinds) == 0 {
		return fmt.Sprintf("expected value, got %v", got)
	}
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, last)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
