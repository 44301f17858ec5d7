// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strings"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Int                 // number: integer with no fraction or exponent
	Float               // number with fraction and/or exponent
	String              // quoted string
	Name                // bare identifier: true, false, null, or junk

	// Do not modify the order of these constants without updating the
	// self-delimiting token check below.
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Int:     "integer",
	Float:   "float",
	String:  "string",
	Name:    "name",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input. Tokens are produced by
// Tokenize and are not modified afterward.
type Token struct {
	Kind Kind   // the kind of token
	Text string // the literal: decoded for strings, as written otherwise
	Pos  Pos    // where the token began
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("%v %s at %v", t.Kind, Quote(t.Text), t.Pos)
	case Int, Float, Name:
		return fmt.Sprintf("%v %q at %v", t.Kind, t.Text, t.Pos)
	default:
		return fmt.Sprintf("%v at %v", t.Kind, t.Pos)
	}
}

var selfKinds = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return selfKinds[i], true
	}
	return Invalid, false
}
