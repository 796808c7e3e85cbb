package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/takoeight0821/calc/config"
	"github.com/takoeight0821/calc/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	const (
		inputUsage = "input file path, one formula per line"
		exprUsage  = "formula to evaluate"
	)
	var (
		inputPath  string
		expr       string
		configPath string
		showExpr   bool
		precision  int
		maxDepth   int
	)
	flags := flag.NewFlagSet("calc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&inputPath, "input", "", inputUsage)
	flags.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flags.StringVar(&expr, "expr", "", exprUsage)
	flags.StringVar(&expr, "e", "", exprUsage+" (shorthand)")
	flags.StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	flags.BoolVar(&showExpr, "showexpr", false, "print the parenthesized formula with each result")
	flags.IntVar(&precision, "precision", -1, "digits after the decimal point, -1 for the shortest exact form (overrides the config file)")
	flags.IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth, 0 for no limit (overrides the config file)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// explicit flags win over the config file
	hasExpr := false
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "expr", "e":
			hasExpr = true
		case "showexpr":
			cfg.ShowExpr = showExpr
		case "precision":
			cfg.Precision = precision
		case "max-depth":
			cfg.MaxDepth = maxDepth
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	s := NewSession(cfg, stdout, stderr)

	switch {
	case hasExpr:
		err = s.Eval(expr)
	case inputPath != "":
		err = RunFile(s, inputPath)
	case isTerminal(stdin):
		err = RunPrompt(s, cfg)
	default:
		err = s.EvalLines(stdin)
	}
	if err != nil {
		return 1
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
