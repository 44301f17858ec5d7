// Package jpath implements a small subset of JSONPath for selecting a single
// value from a parsed JSON document.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/axololly/jparse/ast"
	"github.com/axololly/jparse/ast/cursor"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = "[" name "]"
  step = "[" INDEX "]"
  name = WORD
  name = "'" QTEXT "'"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

Each step selects exactly one value, so the wildcard, recursive descent,
slice, filter and script forms of full JSONPath are not supported.
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", t, err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse is as Parse, but panics on error.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Path converts e into a path suitable for cursor.Cursor.Down.
func (e Expr) Path() []any {
	path := make([]any, len(e))
	for i, s := range e {
		if s.Op == Index {
			path[i] = s.Index
		} else {
			path[i] = s.Name
		}
	}
	return path
}

// Select evaluates e starting from root and returns the selected value.
func (e Expr) Select(root ast.Value) (ast.Value, error) {
	c := cursor.New(root).Down(e.Path()...)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", e, err)
	}
	return c.Value(), nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		step, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return step, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var step Step
		var u string
		if m := indexRE.FindStringSubmatch(t); m != nil {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return Step{}, s, fmt.Errorf("invalid index: %w", err)
			}
			step, u = Step{Op: Index, Index: v}, t[len(m[0]):]
		} else {
			var err error
			step, u, err = parseName(t)
			if err != nil {
				return Step{}, s, err
			}
			step.Bracket = true
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, s, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (_ Step, rest string, _ error) {
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return Step{Op: Member, Name: m[1]}, s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return Step{Op: Member, Name: m[1], Quoted: true}, s[len(m[0]):], nil
	}
	return Step{}, s, errors.New("invalid name")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // object member lookup
	Index             // array or object offset lookup
)

var opText = map[Op]string{
	Invalid: "invalid",
	Member:  "member",
	Index:   "index",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a path expression.
type Step struct {
	Op      Op
	Name    string // for Member
	Index   int    // for Index
	Quoted  bool   // the name was written in single quotes
	Bracket bool   // the name was written in brackets
}

func (s Step) String() string {
	if s.Op == Index {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	name := s.Name
	if s.Quoted {
		name = "'" + name + "'"
	}
	if s.Bracket {
		return "[" + name + "]"
	}
	return "." + name
}
