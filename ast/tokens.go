// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/axololly/jparse"

// A tokenCursor is a one-token lookahead reader over a token list owned by
// the caller. It does not copy the list.
type tokenCursor struct {
	toks []jparse.Token
	last jparse.Pos // position of the most recently consumed token
}

// peek returns the lookahead token without consuming it. It reports false at
// the end of the input.
func (c *tokenCursor) peek() (*jparse.Token, bool) {
	if len(c.toks) == 0 {
		return nil, false
	}
	return &c.toks[0], true
}

// next consumes and returns the lookahead token. It reports false at the end
// of the input.
func (c *tokenCursor) next() (*jparse.Token, bool) {
	if len(c.toks) == 0 {
		return nil, false
	}
	tok := &c.toks[0]
	c.toks = c.toks[1:]
	c.last = tok.Pos
	return tok, true
}

// rest returns the unconsumed tokens.
func (c *tokenCursor) rest() []jparse.Token { return c.toks }
