// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/axololly/jparse"
	"github.com/google/go-cmp/cmp"
)

func kinds(toks []jparse.Token) []jparse.Kind {
	var out []jparse.Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []jparse.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Names
		{"true false null", []jparse.Kind{jparse.Name, jparse.Name, jparse.Name}},
		{"_x1 Foo bar_9", []jparse.Kind{jparse.Name, jparse.Name, jparse.Name}},

		// Punctuation
		{"{ [ ] } , :", []jparse.Kind{
			jparse.LBrace, jparse.LSquare, jparse.RSquare, jparse.RBrace, jparse.Comma, jparse.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jparse.Kind{jparse.String, jparse.String, jparse.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jparse.Kind{jparse.String}},
		{`"\u0000\u01fc\uAA9c"`, []jparse.Kind{jparse.String}},

		// Numbers
		{`0 -1 5139 0123 2.3 5e9 3.6E-4 -0.001E-100`, []jparse.Kind{
			jparse.Int, jparse.Int, jparse.Int, jparse.Int,
			jparse.Float, jparse.Float, jparse.Float, jparse.Float,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jparse.Kind{
			jparse.LBrace, jparse.Name, jparse.Comma, jparse.String, jparse.Colon,
			jparse.Int, jparse.Name, jparse.LSquare, jparse.RSquare, jparse.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jparse.Kind{
			jparse.LBrace,
			jparse.String, jparse.Colon, jparse.Name, jparse.Comma,
			jparse.String, jparse.Colon,
			jparse.LSquare,
			jparse.Name, jparse.Comma, jparse.Int, jparse.Comma, jparse.Float,
			jparse.RSquare,
			jparse.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jparse.Kind{
			jparse.String, jparse.Comma, jparse.Int, jparse.Comma, jparse.Name,
			jparse.Name, jparse.LSquare, jparse.String, jparse.RSquare,
		}},

		// Tokens need not be separated.
		{`12abc`, []jparse.Kind{jparse.Int, jparse.Name}},
		{`1.5"x"`, []jparse.Kind{jparse.Float, jparse.String}},
	}

	for _, test := range tests {
		toks, err := jparse.Tokenize(test.input)
		if err != nil {
			t.Errorf("Tokenize %#q failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, kinds(toks)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeText(t *testing.T) {
	tests := []struct {
		input string
		kind  jparse.Kind
		want  string
	}{
		{`123`, jparse.Int, "123"},
		{`-15`, jparse.Int, "-15"},
		{`0123`, jparse.Int, "0123"},
		{`1.5e10`, jparse.Float, "1.5e10"},
		{`-0.5E-3`, jparse.Float, "-0.5E-3"},
		{`true`, jparse.Name, "true"},
		{`foo_1`, jparse.Name, "foo_1"},
		{`{`, jparse.LBrace, "{"},
		{`:`, jparse.Colon, ":"},

		{`""`, jparse.String, ""},
		{`"a\nb"`, jparse.String, "a\nb"},
		{`"\u00e9"`, jparse.String, "\u00e9"},
		{`"\u00E9"`, jparse.String, "\u00e9"},
		{`"a\tb c\n"`, jparse.String, "a\tb c\n"},
		{`"\"\\\/\b\f\n\r\t"`, jparse.String, "\"\\/\b\f\n\r\t"},
		{`"a\r\tb"`, jparse.String, "a\r\tb"},
		{"\"tab\there\"", jparse.String, "tab\there"},

		// Surrogate pairs combine; unpaired halves are replaced.
		{`"\ud83d\ude00"`, jparse.String, "\U0001f600"},
		{`"\ud83d\ude00!"`, jparse.String, "\U0001f600!"},
		{`"\ud83d"`, jparse.String, "\ufffd"},
		{`"\ud83dx"`, jparse.String, "\ufffdx"},
		{`"\ud83d\n"`, jparse.String, "\ufffd\n"},
		{`"\ude00\ud83d"`, jparse.String, "\ufffd\ufffd"},
		{`"\ud83d\u0041"`, jparse.String, "\ufffdA"},
	}
	for _, test := range tests {
		toks, err := jparse.Tokenize(test.input)
		if err != nil {
			t.Errorf("Tokenize %#q failed: %v", test.input, err)
			continue
		}
		if len(toks) != 1 {
			t.Errorf("Tokenize %#q: got %d tokens, want 1", test.input, len(toks))
			continue
		}
		if got := toks[0].Kind; got != test.kind {
			t.Errorf("Tokenize %#q: got kind %v, want %v", test.input, got, test.kind)
		}
		if got := toks[0].Text; got != test.want {
			t.Errorf("Tokenize %#q: got text %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	type tokPos struct {
		Kind jparse.Kind
		Pos  string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{{jparse.LBrace, "1:1"}, {jparse.RBrace, "1:3"}}},
		{"[1,\n  2]", []tokPos{
			{jparse.LSquare, "1:1"}, {jparse.Int, "1:2"}, {jparse.Comma, "1:3"},
			{jparse.Int, "2:3"}, {jparse.RSquare, "2:4"},
		}},
		{"true\n false\n", []tokPos{{jparse.Name, "1:1"}, {jparse.Name, "2:2"}}},
		{`"a\u00e9" 1`, []tokPos{{jparse.String, "1:1"}, {jparse.Int, "1:11"}}},
		{"\"\u00e9\" 1", []tokPos{{jparse.String, "1:1"}, {jparse.Int, "1:5"}}},
		{"\t-12.5e3 x", []tokPos{{jparse.Float, "1:2"}, {jparse.Name, "1:10"}}},
		{"\n\n\n  null", []tokPos{{jparse.Name, "4:3"}}},
	}
	for _, tc := range tests {
		toks, err := jparse.Tokenize(tc.input)
		if err != nil {
			t.Errorf("Tokenize %#q failed: %v", tc.input, err)
			continue
		}
		var got []tokPos
		for _, tok := range toks {
			got = append(got, tokPos{tok.Kind, tok.Pos.String()})
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestTokenizePosMonotonic(t *testing.T) {
	const input = `{
  "list": [
    {"x": 1, "y": "AB"},
    {"x": 2.5e-3}
  ],
  "ok": true,   "none": null
}`
	toks, err := jparse.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var prev jparse.Pos
	for i, tok := range toks {
		if !tok.Pos.IsValid() {
			t.Errorf("Token %d (%v): invalid position", i, tok)
		}
		if tok.Pos.Line < prev.Line {
			t.Errorf("Token %d (%v): line went backward from %v", i, tok, prev)
		} else if tok.Pos.Line == prev.Line && tok.Pos.Column <= prev.Column {
			t.Errorf("Token %d (%v): column did not advance from %v", i, tok, prev)
		}
		prev = tok.Pos
	}
	if last := toks[len(toks)-1]; last.Pos.Line != 7 {
		t.Errorf("Last token %v: got line %d, want 7", last, last.Pos.Line)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		pos   string
	}{
		{`"unterminated`, jparse.ErrUnterminatedString, "1:14"},
		{"\"a\nb\"", jparse.ErrUnterminatedString, "1:3"},
		{`"abc\`, jparse.ErrUnterminatedString, "1:5"},
		{`"\u12`, jparse.ErrUnterminatedString, "1:2"},
		{`"\x"`, jparse.ErrInvalidEscape, "1:2"},
		{`"\U0041"`, jparse.ErrInvalidEscape, "1:2"},
		{`"\u12G4"`, jparse.ErrInvalidUnicodeEscape, "1:2"},
		{`"\u00"`, jparse.ErrInvalidUnicodeEscape, "1:2"},

		{`-`, jparse.ErrInvalidNumber, "1:2"},
		{`-x`, jparse.ErrInvalidNumber, "1:2"},
		{`1.`, jparse.ErrInvalidNumber, "1:3"},
		{`1.e5`, jparse.ErrInvalidNumber, "1:3"},
		{`1e`, jparse.ErrInvalidNumber, "1:3"},
		{`1e-`, jparse.ErrInvalidNumber, "1:4"},
		{`1e+5`, jparse.ErrInvalidNumber, "1:3"},
		{`[1, 2.]`, jparse.ErrInvalidNumber, "1:7"},

		{`@`, jparse.ErrUnrecognizedCharacter, "1:1"},
		{`'a'`, jparse.ErrUnrecognizedCharacter, "1:1"},
		{`+1`, jparse.ErrUnrecognizedCharacter, "1:1"},
		{"[1,\n @]", jparse.ErrUnrecognizedCharacter, "2:2"},
		{`// comment`, jparse.ErrUnrecognizedCharacter, "1:1"},
	}
	for _, test := range tests {
		toks, err := jparse.Tokenize(test.input)
		if err == nil {
			t.Errorf("Tokenize %#q: got %v, want error", test.input, toks)
			continue
		}
		if toks != nil {
			t.Errorf("Tokenize %#q: got partial result %v", test.input, toks)
		}
		if !errors.Is(err, test.want) {
			t.Errorf("Tokenize %#q: got error %v, want %v", test.input, err, test.want)
		}
		var lerr *jparse.LexicalError
		if !errors.As(err, &lerr) {
			t.Errorf("Tokenize %#q: got error type %T, want *LexicalError", test.input, err)
		} else if got := lerr.Pos.String(); got != test.pos {
			t.Errorf("Tokenize %#q: got error at %s, want %s", test.input, got, test.pos)
		}
	}
}

func TestLexicalErrorText(t *testing.T) {
	tests := []struct {
		input, text, msg string
	}{
		{`1.`, "1.",
			`at 1:3: invalid number: no digits after decimal point, got end of input after "1."`},
		{`"\q"`, `\q`,
			`at 1:2: invalid escape: invalid 'q' after escape`},
		{`  #`, "#",
			`at 1:3: unrecognized character: unrecognized character '#'`},
	}
	for _, test := range tests {
		_, err := jparse.Tokenize(test.input)
		var lerr *jparse.LexicalError
		if !errors.As(err, &lerr) {
			t.Errorf("Tokenize %#q: got %v, want *LexicalError", test.input, err)
			continue
		}
		if lerr.Text != test.text {
			t.Errorf("Tokenize %#q: got text %#q, want %#q", test.input, lerr.Text, test.text)
		}
		if got := lerr.Error(); got != test.msg {
			t.Errorf("Tokenize %#q: error\n got %s\nwant %s", test.input, got, test.msg)
		}
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"a\nb", "a\nb"},
		{"a\r\nb\r\n", "a\nb\n"},
		{"a\rb", "a\rb"},
		{"\r\r\n\n", "\r\n\n"},
	}
	for _, test := range tests {
		if got := jparse.NormalizeNewlines(test.input); got != test.want {
			t.Errorf("NormalizeNewlines(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}

	toks, err := jparse.Tokenize(jparse.NormalizeNewlines("[1,\r\n2]"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if got := toks[3].Pos.String(); got != "2:1" {
		t.Errorf("Position after CRLF: got %s, want 2:1", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029", `"\u2028 \u2029"`},
		{"café", `"café"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jparse.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}

		// The tokenizer must decode the quoted form back to the input.
		toks, err := jparse.Tokenize(got)
		if err != nil {
			t.Errorf("Tokenize %#q failed: %v", got, err)
		} else if len(toks) != 1 || toks[0].Text != test.input {
			t.Errorf("Tokenize %#q: got %v, want %#q", got, toks, test.input)
		}
	}
}

func TestTokenString(t *testing.T) {
	toks, err := jparse.Tokenize(strings.Join([]string{`{`, `"a\n"`, `12`, `nope`}, " "))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var got []string
	for _, tok := range toks {
		got = append(got, tok.String())
	}
	want := []string{
		`"{" at 1:1`,
		`string "a\n" at 1:3`,
		`integer "12" at 1:9`,
		`name "nope" at 1:12`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Token strings: (-want, +got)\n%s", diff)
	}
}
