// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"github.com/axololly/jparse/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added. Tokenize decodes the result back to src,
// provided src is valid UTF-8.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }
