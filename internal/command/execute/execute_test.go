package execute_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"subgrab/internal/command/builder"
	"subgrab/internal/command/execute"
	"subgrab/internal/domain/errs"
	"subgrab/internal/domain/logger"
	"subgrab/internal/models"

	"github.com/google/go-cmp/cmp"
)

// fakeExecutor records invocations instead of starting processes.
type fakeExecutor struct {
	calls [][]string
	code  int
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, argv []string) (int, error) {
	f.calls = append(f.calls, append([]string(nil), argv...))
	return f.code, f.err
}

func found(file string) (string, error) { return "/usr/bin/" + file, nil }

// captureLogs swaps the program logger for one writing into buffers.
func captureLogs(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	prev := logger.Pl
	logger.Pl = logger.NewProgramLogger(stdout, stderr, 0)
	t.Cleanup(func() { logger.Pl = prev })
	return stdout, stderr
}

func newBuilder(t *testing.T) *builder.SubtitleCommandBuilder {
	t.Helper()
	tmp := t.TempDir()
	cookies := filepath.Join(tmp, "youtube.txt")
	if err := os.WriteFile(cookies, []byte("# Netscape HTTP Cookie File\n"), 0o600); err != nil {
		t.Fatalf("failed to write cookie file: %v", err)
	}

	b := builder.NewSubtitleCommandBuilder(&models.Options{
		URLs:        []string{"https://youtu.be/abc"},
		CookiesPath: cookies,
		OutputDir:   filepath.Join(tmp, "out dir"),
		Mode:        models.ModeBoth,
		SubLangs:    "en.*",
		SubFormat:   "best",
		ConvertTo:   "none",
		YtDlpBin:    "yt-dlp",
	})
	b.LookPath = found
	return b
}

var now = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.Local)

// TestRun_DryRun checks that nothing is executed on a dry run ------------------------------------------------------------------
func TestRun_DryRun(t *testing.T) {
	stdout, _ := captureLogs(t)
	b := newBuilder(t)
	b.Opts.DryRun = true
	ex := &fakeExecutor{code: 9}

	if code := execute.Run(context.Background(), b, now, ex); code != 0 {
		t.Fatalf("expected status 0, got %d", code)
	}
	if len(ex.calls) != 0 {
		t.Fatalf("expected zero executions, got %d", len(ex.calls))
	}
	out := stdout.String()
	if !strings.Contains(out, "[info] Running: yt-dlp --skip-download") {
		t.Fatalf("expected printed command, got %q", out)
	}
	// Paths with spaces are quoted for copy-paste
	if !strings.Contains(out, "'"+b.Opts.OutputDir+"'") {
		t.Fatalf("expected quoted output dir in %q", out)
	}
}

// TestRun_Executes checks the command is executed once and its code passed through --------------------------------------------
func TestRun_Executes(t *testing.T) {
	for _, want := range []int{0, 1, 3, 101} {
		captureLogs(t)
		b := newBuilder(t)
		ex := &fakeExecutor{code: want}

		if code := execute.Run(context.Background(), b, now, ex); code != want {
			t.Fatalf("expected status %d, got %d", want, code)
		}
		if len(ex.calls) != 1 {
			t.Fatalf("expected one execution, got %d", len(ex.calls))
		}

		built, err := b.Build(now)
		if err != nil {
			t.Fatalf("unexpected build error: %v", err)
		}
		if diff := cmp.Diff(built, ex.calls[0]); diff != "" {
			t.Fatalf("executed argv mismatch (-want +got):\n%s", diff)
		}
	}
}

// TestRun_LaunchFailure checks the 127 status and install hint ------------------------------------------------------------------
func TestRun_LaunchFailure(t *testing.T) {
	_, stderr := captureLogs(t)
	b := newBuilder(t)
	ex := &fakeExecutor{err: fmt.Errorf("%w: exec: \"yt-dlp\": executable file not found in $PATH", errs.ErrLaunchFailure)}

	if code := execute.Run(context.Background(), b, now, ex); code != 127 {
		t.Fatalf("expected status 127, got %d", code)
	}
	if !strings.Contains(stderr.String(), "pip install -U yt-dlp") {
		t.Fatalf("expected install hint on stderr, got %q", stderr.String())
	}
}

// TestRun_BuildFailure checks the status 2 path and that nothing runs ----------------------------------------------------------
func TestRun_BuildFailure(t *testing.T) {
	_, stderr := captureLogs(t)
	b := newBuilder(t)
	b.Opts.CookiesPath = filepath.Join(t.TempDir(), "missing.txt")
	ex := &fakeExecutor{}

	if code := execute.Run(context.Background(), b, now, ex); code != 2 {
		t.Fatalf("expected status 2, got %d", code)
	}
	if len(ex.calls) != 0 {
		t.Fatalf("expected zero executions, got %d", len(ex.calls))
	}
	if !strings.Contains(stderr.String(), "[error]") || !strings.Contains(stderr.String(), "missing.txt") {
		t.Fatalf("expected error diagnostic naming the cookie path, got %q", stderr.String())
	}
}

func TestRun_BadExtraArg(t *testing.T) {
	captureLogs(t)
	b := newBuilder(t)
	b.Opts.ExtraArgs = []string{`--proxy 'http://x`}
	ex := &fakeExecutor{}

	if code := execute.Run(context.Background(), b, now, ex); code != 2 {
		t.Fatalf("expected status 2, got %d", code)
	}
	if len(ex.calls) != 0 {
		t.Fatalf("expected zero executions, got %d", len(ex.calls))
	}
}

// TestProcessExecutor runs real child processes ---------------------------------------------------------------------------------
func TestProcessExecutor(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	captureLogs(t)

	var out bytes.Buffer
	ex := execute.ProcessExecutor{Stdout: &out, Stderr: &out}

	code, err := ex.Execute(context.Background(), []string{sh, "-c", "echo hello; exit 3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if strings.TrimSpace(out.String()) != "hello" {
		t.Fatalf("expected child output, got %q", out.String())
	}

	code, err = ex.Execute(context.Background(), []string{sh, "-c", "exit 0"})
	if err != nil || code != 0 {
		t.Fatalf("expected clean exit, got code %d err %v", code, err)
	}
}

func TestProcessExecutor_NotLaunchable(t *testing.T) {
	captureLogs(t)
	ex := execute.ProcessExecutor{}

	missing := []string{
		"subgrab-definitely-not-a-real-binary",
		filepath.Join(t.TempDir(), "nope", "yt-dlp"),
	}
	for _, bin := range missing {
		if _, err := ex.Execute(context.Background(), []string{bin, "--version"}); !errors.Is(err, errs.ErrLaunchFailure) {
			t.Fatalf("expected ErrLaunchFailure for %q, got: %v", bin, err)
		}
	}

	if _, err := ex.Execute(context.Background(), nil); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for empty argv, got: %v", err)
	}
}
