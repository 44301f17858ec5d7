// Program jparse tokenizes and parses a JSON file, reporting the outcome and
// the time spent in each stage.
//
// Usage:
//
//	jparse [flags] FILE
//
// Flags may also be set in a TOML file given by --config; flags given on the
// command line take precedence over the file.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
