package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/takoeight0821/calc/ast"
	"github.com/takoeight0821/calc/config"
	"github.com/takoeight0821/calc/driver"
	"github.com/takoeight0821/calc/eval"
)

// Session evaluates formulas and prints results to out and diagnostics to errOut.
type Session struct {
	runner *driver.Runner
	cfg    config.Config
	out    io.Writer
	errOut io.Writer
}

func NewSession(cfg config.Config, out, errOut io.Writer) *Session {
	return &Session{
		runner: driver.NewRunner(cfg.ParserOptions()...),
		cfg:    cfg,
		out:    out,
		errOut: errOut,
	}
}

// Eval evaluates one formula. The error is also reported on errOut.
func (s *Session) Eval(formula string) error {
	node, err := s.runner.Parse(formula)
	if err == nil {
		var v float64
		v, err = eval.NewEvaluator().Eval(node)
		if err == nil {
			result := eval.Format(v, s.cfg.Precision)
			if s.cfg.ShowExpr {
				fmt.Fprintf(s.out, "%s = %s\n", ast.Infix(node), result)
			} else {
				fmt.Fprintln(s.out, result)
			}
			return nil
		}
		err = fmt.Errorf("eval: %w", err)
	}

	s.report(err)
	return err
}

func (s *Session) report(err error) {
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
	} else {
		fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
}

// EvalLines evaluates every non-blank line of r. It keeps going after a
// failing line and returns all failures joined. Lines may be of any length.
func (s *Session) EvalLines(r io.Reader) error {
	var errs error
	reader := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := reader.ReadString('\n')
		if text = strings.TrimRight(text, "\r\n"); strings.TrimSpace(text) != "" {
			if evalErr := s.Eval(text); evalErr != nil {
				errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, evalErr))
			}
		}
		if errors.Is(err, io.EOF) {
			return errs
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
			s.report(err)
			return errors.Join(errs, err)
		}
	}
}

func RunFile(s *Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.report(err)
		return err
	}
	defer f.Close()

	return s.EvalLines(f)
}

// RunPrompt reads formulas interactively until end of input.
func RunPrompt(s *Session, cfg config.Config) error {
	history := config.HistoryPath()

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if cfg.History {
			if err := saveHistory(line, history); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if cfg.History {
		if f, err := os.Open(history); err == nil {
			defer f.Close()
			if _, err := line.ReadHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			s.report(err)
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		// errors are already printed; the prompt keeps going
		_ = s.Eval(input)
	}
}

func saveHistory(line *liner.State, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = line.WriteHistory(f)
	return errors.Join(err, f.Close())
}
