// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"strings"

	"go4.org/mem"
)

// A runeCursor is a one-rune lookahead reader over a read-only view of the
// source text. It does not copy the source.
type runeCursor struct {
	src  mem.RO
	off  int  // byte offset of the lookahead rune
	pos  Pos  // location of the lookahead rune
	ch   rune // lookahead rune, valid if ok
	ok   bool
	size int // width in bytes of ch
}

func newRuneCursor(src mem.RO) *runeCursor {
	c := &runeCursor{src: src, pos: startPos}
	c.load()
	return c
}

// load decodes the lookahead rune from the front of c.src.
// Invalid UTF-8 decodes as utf8.RuneError.
func (c *runeCursor) load() {
	if c.src.Len() == 0 {
		c.ch, c.ok, c.size = 0, false, 0
		return
	}
	c.ch, c.size = mem.DecodeRune(c.src)
	if c.size == 0 {
		c.size = 1
	}
	c.ok = true
}

// peek returns the lookahead rune without consuming it. It reports false at
// the end of the input.
func (c *runeCursor) peek() (rune, bool) { return c.ch, c.ok }

// next consumes and returns the lookahead rune. It reports false at the end
// of the input.
func (c *runeCursor) next() (rune, bool) {
	if !c.ok {
		return 0, false
	}
	ch := c.ch
	c.pos.advance(ch)
	c.off += c.size
	c.src = c.src.SliceFrom(c.size)
	c.load()
	return ch, true
}

// Pos returns the location of the lookahead rune.
func (c *runeCursor) Pos() Pos { return c.pos }

// Offset returns the byte offset of the lookahead rune.
func (c *runeCursor) Offset() int { return c.off }

// NormalizeNewlines replaces each CRLF pair in text with a single LF. The
// tokenizer treats LF as the only line terminator, so callers reading text
// from files should apply this before calling Tokenize.
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r\n") {
		return text
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}
