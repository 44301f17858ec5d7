package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	flagCfg  Config
	flagKeys = []string{"tokens", "print", "path", "jwcc", "timings", "verbose", "color"}
)

var rootCmd = &cobra.Command{
	Use:   "jparse [flags] FILE",
	Short: "Tokenize and parse a JSON file",
	Long: `Tokenize and parse a JSON file, reporting success or the first error.

Line endings are normalized from CRLF to LF before tokenizing. The input is
rejected at the first lexical or syntax error; nothing is recovered.

Examples:
  jparse data.json
  jparse --print --path '$.items[0]' data.json
  jparse --tokens --timings data.json
  jparse --jwcc --print settings.jwcc`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runParse,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "TOML config file")
	f.BoolVar(&flagCfg.Tokens, "tokens", false, "Print the token stream")
	f.BoolVar(&flagCfg.Print, "print", false, "Print the parsed value as compact JSON")
	f.StringVar(&flagCfg.Path, "path", "", "Select a value by path, e.g. $.a[0]")
	f.BoolVar(&flagCfg.JWCC, "jwcc", false, "Accept comments and trailing commas")
	f.BoolVar(&flagCfg.Timings, "timings", false, "Log the time spent in each stage")
	f.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVar(&flagCfg.Color, "color", "auto", "Colorize output: auto, always, or never")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	setColor(cfg.Color)
	log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	return run(cfg, args[0], cmd.OutOrStdout(), log)
}

// resolveConfig merges the config file, if any, with the flags that were set
// explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	if cfgFile == "" {
		cfg := flagCfg
		cfg.applyDefaults()
		return &cfg, cfg.validate()
	}
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	for _, key := range flagKeys {
		if !cmd.Flags().Changed(key) {
			continue
		}
		switch key {
		case "tokens":
			cfg.Tokens = flagCfg.Tokens
		case "print":
			cfg.Print = flagCfg.Print
		case "path":
			cfg.Path = flagCfg.Path
		case "jwcc":
			cfg.JWCC = flagCfg.JWCC
		case "timings":
			cfg.Timings = flagCfg.Timings
		case "verbose":
			cfg.Verbose = flagCfg.Verbose
		case "color":
			cfg.Color = flagCfg.Color
		}
	}
	return cfg, cfg.validate()
}

func setColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fd := os.Stdout.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprintf(w, "jparse: %v\n", err)
}
