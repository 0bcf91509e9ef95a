package main

// Notes:
// - pumpBatch: exercised against a real orchestrator with a stub converter.
//   Completion order is arbitrary, so multi-file assertions use Contains
//   instead of exact output comparison.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/starsunsurpass/topdf"
)

// stubConverter fails the inputs listed in failWith and succeeds otherwise.
// It never touches the filesystem.
type stubConverter struct {
	failWith map[string]error
}

// Compile-time interface implementation check.
var _ topdf.FileConverter = (*stubConverter)(nil)

func (s *stubConverter) Convert(inputPath, _ string) error {
	return s.failWith[inputPath]
}

// newBatch builds an orchestrator with the given paths queued and a batch
// already started.
func newBatch(t *testing.T, conv *stubConverter, outputDir string, paths ...string) *topdf.Orchestrator {
	t.Helper()
	orc := topdf.NewOrchestrator(conv)
	orc.SetOutputDir(outputDir)
	orc.Add(paths...)
	if !orc.ConvertAll() {
		t.Fatal("expected a batch to start")
	}
	return orc
}

func captureEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestPumpBatch - Result printing
// ---------------------------------------------------------------------------

func TestPumpBatch(t *testing.T) {
	t.Parallel()

	t.Run("prints results and summary", func(t *testing.T) {
		t.Parallel()

		conv := &stubConverter{failWith: map[string]error{"b.md": errors.New("boom")}}
		orc := newBatch(t, conv, "out", "a.md", "b.md", "c.md")
		env, stdout, stderr := captureEnv()

		failed := pumpBatch(orc, false, false, env)

		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if !strings.Contains(stdout.String(), "Created "+topdf.OutputPath("a.md", "out")) {
			t.Errorf("stdout missing a.md result: %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "Created "+topdf.OutputPath("c.md", "out")) {
			t.Errorf("stdout missing c.md result: %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.md: boom") {
			t.Errorf("stderr missing failure line: %q", stderr.String())
		}
		if !strings.Contains(stdout.String(), "\n2 succeeded, 1 failed\n") {
			t.Errorf("stdout missing summary: %q", stdout.String())
		}
	})

	t.Run("quiet shows only failures", func(t *testing.T) {
		t.Parallel()

		conv := &stubConverter{failWith: map[string]error{"b.md": errors.New("boom")}}
		orc := newBatch(t, conv, "", "a.md", "b.md")
		env, stdout, stderr := captureEnv()

		failed := pumpBatch(orc, true, false, env)

		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if stdout.Len() != 0 {
			t.Errorf("expected empty stdout, got %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.md: boom") {
			t.Errorf("stderr missing failure line: %q", stderr.String())
		}
	})

	t.Run("verbose shows timing", func(t *testing.T) {
		t.Parallel()

		orc := newBatch(t, &stubConverter{}, "out", "a.md")
		env, stdout, _ := captureEnv()

		if failed := pumpBatch(orc, false, true, env); failed != 0 {
			t.Errorf("failed = %d, want 0", failed)
		}
		got := stdout.String()
		if !strings.Contains(got, "a.md -> "+topdf.OutputPath("a.md", "out")+" (") {
			t.Errorf("stdout missing verbose line: %q", got)
		}
		if strings.Contains(got, "Created ") {
			t.Errorf("verbose output should not use the short form: %q", got)
		}
	})

	t.Run("single file has no summary", func(t *testing.T) {
		t.Parallel()

		orc := newBatch(t, &stubConverter{}, "", "a.md")
		env, stdout, _ := captureEnv()

		if failed := pumpBatch(orc, false, false, env); failed != 0 {
			t.Errorf("failed = %d, want 0", failed)
		}
		if got, want := stdout.String(), "Created a.pdf\n"; got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
	})
}
