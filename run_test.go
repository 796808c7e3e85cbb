package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/takoeight0821/calc/config"
)

func newTestSession(cfg config.Config) (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewSession(cfg, &out, &errOut), &out, &errOut
}

func TestSessionEval(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		cfg      func(*config.Config)
		expected string
	}{
		{"2+3*4", nil, "14\n"},
		{"1/3", func(c *config.Config) { c.Precision = 3 }, "0.333\n"},
		{"2+3*4", func(c *config.Config) { c.ShowExpr = true }, "(2 + (3 * 4)) = 14\n"},
		{"-2^2", func(c *config.Config) { c.ShowExpr = true }, "(-(2 ^ 2)) = -4\n"},
	}

	for _, testcase := range testcases {
		cfg := config.Default()
		if testcase.cfg != nil {
			testcase.cfg(&cfg)
		}
		s, out, errOut := newTestSession(cfg)
		if err := s.Eval(testcase.input); err != nil {
			t.Errorf("Eval(%q) returned error: %v", testcase.input, err)
		}
		if diff := cmp.Diff(testcase.expected, out.String()); diff != "" {
			t.Errorf("Eval(%q) output mismatch (-want +got):\n%s", testcase.input, diff)
		}
		if errOut.Len() != 0 {
			t.Errorf("Eval(%q) wrote diagnostics: %q", testcase.input, errOut.String())
		}
	}
}

func TestSessionEvalError(t *testing.T) {
	t.Parallel()

	s, out, errOut := newTestSession(config.Default())
	if err := s.Eval("10/0"); err == nil {
		t.Errorf("Eval(10/0) should fail")
	}
	if out.Len() != 0 {
		t.Errorf("Eval(10/0) printed a result: %q", out.String())
	}
	expected := "Error: eval: at offset 2: division by zero\n"
	if diff := cmp.Diff(expected, errOut.String()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalLines(t *testing.T) {
	t.Parallel()

	s, out, errOut := newTestSession(config.Default())
	err := s.EvalLines(strings.NewReader("1+1\n\n2+\n(2+3)*4\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3: parse:") {
		t.Errorf("EvalLines returned %v, want an error for line 3", err)
	}
	if diff := cmp.Diff("2\n20\n", out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if strings.Count(errOut.String(), "Error:") != 1 {
		t.Errorf("expected one diagnostic, got %q", errOut.String())
	}
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "formulas.calc")
	if err := os.WriteFile(path, []byte("2^10\n7%4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, out, _ := newTestSession(config.Default())
	if err := RunFile(s, path); err != nil {
		t.Errorf("RunFile returned error: %v", err)
	}
	if diff := cmp.Diff("1024\n3\n", out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	if err := RunFile(s, filepath.Join(t.TempDir(), "missing.calc")); err == nil {
		t.Errorf("RunFile should fail for a missing file")
	}
}

func TestEvalLinesLongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("1+", 40000) + "1"
	s, out, errOut := newTestSession(config.Default())
	if err := s.EvalLines(strings.NewReader("1+1\n" + long + "\n2+2")); err != nil {
		t.Errorf("EvalLines returned error: %v", err)
	}
	if diff := cmp.Diff("2\n40001\n4\n", out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", errOut.String())
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	empty := writeConfig(t, "")
	shallow := writeConfig(t, "max_depth: 2\n")

	testcases := []struct {
		args   []string
		status int
		stdout string
		stderr string
	}{
		{[]string{"-config", empty, "-e", "2+3*4"}, 0, "14\n", ""},
		{[]string{"-config", empty, "-e", ""}, 1, "", "Error: parse: at offset 0: no expression\n"},
		{[]string{"-config", empty, "-expr", "  "}, 1, "", "Error: parse: at offset 2: no expression\n"},
		{[]string{"-config", empty, "-showexpr", "-e", "1-2-3"}, 0, "((1 - 2) - 3) = -4\n", ""},
		{[]string{"-config", empty, "-precision", "2", "-e", "1/3"}, 0, "0.33\n", ""},
		{[]string{"-config", shallow, "-e", "((1))"}, 1, "", "Error: parse: at offset 2: expression nested too deeply (limit 2)\n"},
		{[]string{"-config", shallow, "-max-depth", "3", "-e", "((1))"}, 0, "1\n", ""},
	}

	for _, testcase := range testcases {
		var stdout, stderr bytes.Buffer
		status := run(testcase.args, os.Stdin, &stdout, &stderr)
		if status != testcase.status {
			t.Errorf("run(%q) = %d, want %d (stderr: %q)", testcase.args, status, testcase.status, stderr.String())
		}
		if diff := cmp.Diff(testcase.stdout, stdout.String()); diff != "" {
			t.Errorf("run(%q) stdout mismatch (-want +got):\n%s", testcase.args, diff)
		}
		if diff := cmp.Diff(testcase.stderr, stderr.String()); diff != "" {
			t.Errorf("run(%q) stderr mismatch (-want +got):\n%s", testcase.args, diff)
		}
	}
}

func TestRunFlagDefaults(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if status := run([]string{"-h"}, os.Stdin, &stdout, &stderr); status != 2 {
		t.Errorf("run(-h) = %d, want 2", status)
	}
	if !strings.Contains(stderr.String(), "(default 256)") {
		t.Errorf("-max-depth usage should show the default depth:\n%s", stderr.String())
	}
}
