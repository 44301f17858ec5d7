// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of JSON string literals.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Single reports the rune denoted by the single-character escape \ch, for
// all escapes other than \u. It reports false if ch is not such an escape.
func Single(ch rune) (rune, bool) {
	switch ch {
	case '"', '\\', '/':
		return ch, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// IsHexDigit reports whether ch is an ASCII hexadecimal digit.
func IsHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// ParseHex decodes data, which must consist entirely of hex digits, as an
// unsigned code unit.
func ParseHex(data mem.RO) (rune, error) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// IsHighSurrogate reports whether r is the first half of a UTF-16 pair.
func IsHighSurrogate(r rune) bool { return r >= 0xd800 && r < 0xdc00 }

// IsLowSurrogate reports whether r is the second half of a UTF-16 pair.
func IsLowSurrogate(r rune) bool { return r >= 0xdc00 && r < 0xe000 }

// Combine merges a UTF-16 surrogate pair into a single code point. If hi and
// lo are not a valid pair, it returns utf8.RuneError.
func Combine(hi, lo rune) rune {
	return utf16.DecodeRune(hi, lo)
}

// Scalar maps a decoded \u code unit to the rune it stands for on its own.
// Unpaired surrogate halves become utf8.RuneError.
func Scalar(r rune) rune {
	if utf16.IsSurrogate(r) {
		return utf8.RuneError
	}
	return r
}
