package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/axololly/jparse"
	"github.com/axololly/jparse/ast"
	"github.com/axololly/jparse/jpath"
	"github.com/fatih/color"
	"github.com/tailscale/hujson"
)

// run tokenizes and parses the file at path according to cfg, writing any
// requested output and a summary line to w.
func run(cfg *Config, path string, w io.Writer, log *slog.Logger) error {
	// Check the selection path before doing any work.
	var sel jpath.Expr
	if cfg.Path != "" {
		var err error
		sel, err = jpath.Parse(cfg.Path)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", cfg.Path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if cfg.JWCC {
		data, err = hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("%s: standardize: %w", path, err)
		}
	}
	text := jparse.NormalizeNewlines(string(data))
	log.Debug("read input", "file", path, "bytes", len(text))

	start := time.Now()
	toks, err := jparse.Tokenize(text)
	if err != nil {
		return fmt.Errorf("%s: tokenize: %w", path, err)
	}
	logStage(log, cfg, "tokenize", time.Since(start), slog.Int("tokens", len(toks)))
	if cfg.Tokens {
		for _, tok := range toks {
			fmt.Fprintln(w, tok)
		}
	}

	start = time.Now()
	v, err := ast.Parse(toks)
	if err != nil {
		return fmt.Errorf("%s: parse: %w", path, err)
	}
	logStage(log, cfg, "parse", time.Since(start), slog.String("root", describe(v)))

	if sel != nil {
		v, err = sel.Select(v)
		if err != nil {
			return err
		}
	}
	if cfg.Print && v != ast.Empty {
		fmt.Fprintln(w, v.JSON())
	}
	color.New(color.FgGreen).Fprintf(w, "%s: ok (%s, %d tokens)\n", path, describe(v), len(toks))
	return nil
}

func logStage(log *slog.Logger, cfg *Config, stage string, elapsed time.Duration, attrs ...slog.Attr) {
	level := slog.LevelDebug
	if cfg.Timings {
		level = slog.LevelInfo
	}
	args := []any{slog.String("stage", stage), slog.Duration("elapsed", elapsed)}
	for _, a := range attrs {
		args = append(args, a)
	}
	log.Log(context.Background(), level, "stage complete", args...)
}

// describe summarizes the shape of v for humans.
func describe(v ast.Value) string {
	switch t := v.(type) {
	case *ast.Object:
		return fmt.Sprintf("object with %d members", t.Len())
	case ast.Array:
		return fmt.Sprintf("array of %d values", len(t))
	case ast.Int, ast.Float:
		return "number"
	case ast.String:
		return "string"
	case ast.Bool:
		return "bool"
	}
	if v == ast.Null {
		return "null"
	}
	return "empty document"
}
