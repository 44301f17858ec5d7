// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// A Pos describes the line number and column of a location in source text.
// Both are 1-based. Columns count runes, not bytes, and are advisory: they
// increase monotonically within a line and reset at each newline.
type Pos struct {
	Line   int // line number, 1-based
	Column int // rune offset of column in line, 1-based
}

// startPos is the position of the first rune of any input.
var startPos = Pos{Line: 1, Column: 1}

// IsValid reports whether p denotes a real location.
func (p Pos) IsValid() bool { return p.Line >= 1 && p.Column >= 1 }

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// advance updates p to account for having consumed ch.
func (p *Pos) advance(ch rune) {
	if ch == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
}
