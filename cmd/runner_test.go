package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/desertthunder/bottles/internal/shared"
	th "github.com/desertthunder/bottles/internal/testing"
	"github.com/urfave/cli/v3"
)

// run executes one CLI invocation against a fresh runner backed by an
// in-memory database and returns its output.
func run(t *testing.T, args ...string) (*Runner, string, error) {
	t.Helper()

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: shared.NewLogger(&bytes.Buffer{}),
		Output: output,
		DB:     th.NewTestDB(t),
	})

	app := &cli.Command{Name: "bottles", Commands: runner.register()}
	err := app.Run(context.Background(), append([]string{"bottles"}, args...))
	return runner, output.String(), err
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})
	})

	t.Run("resolveRange", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		tc := []struct {
			name       string
			start, end string
			wantStart  uint
			wantEnd    uint
		}{
			{name: "defaults", start: "", end: "", wantStart: 99, wantEnd: 0},
			{name: "plain range", start: "10", end: "3", wantStart: 10, wantEnd: 3},
			{name: "inverted flags", start: "3", end: "10", wantStart: 3, wantEnd: 0},
			{name: "clamped start", start: "150", end: "0", wantStart: 99, wantEnd: 0},
			{name: "garbage start", start: "abc", end: "0", wantStart: 0, wantEnd: 0},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				start, end := runner.resolveRange(tt.start, tt.end)
				if start != tt.wantStart || end != tt.wantEnd {
					t.Errorf("resolveRange(%q, %q) = (%d,%d), want (%d,%d)",
						tt.start, tt.end, start, end, tt.wantStart, tt.wantEnd)
				}
			})
		}
	})
}

func TestSingCommand(t *testing.T) {
	t.Run("sings a range", func(t *testing.T) {
		_, out, err := run(t, "sing", "--start", "2", "--end", "1")
		if err != nil {
			t.Fatalf("sing failed: %v", err)
		}

		if !strings.Contains(out, "2 bottles of beer on the wall") {
			t.Errorf("missing verse 2 in output: %q", out)
		}
		if !strings.Contains(out, "1 bottle of beer on the wall") {
			t.Errorf("missing verse 1 in output: %q", out)
		}
	})

	t.Run("records the performance", func(t *testing.T) {
		runner, _, err := run(t, "sing", "--start", "5", "--end", "3")
		if err != nil {
			t.Fatalf("sing failed: %v", err)
		}

		repo, err := runner.history()
		if err != nil {
			t.Fatalf("history unavailable: %v", err)
		}
		performances, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list history: %v", err)
		}
		if len(performances) != 1 {
			t.Fatalf("expected 1 performance, got %d", len(performances))
		}
		if performances[0].StartVerse != 5 || performances[0].EndVerse != 3 {
			t.Errorf("unexpected recorded range %d..%d", performances[0].StartVerse, performances[0].EndVerse)
		}
	})

	t.Run("no-history skips recording", func(t *testing.T) {
		runner, _, err := run(t, "sing", "--start", "5", "--end", "3", "--no-history")
		if err != nil {
			t.Fatalf("sing failed: %v", err)
		}

		repo, _ := runner.history()
		performances, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list history: %v", err)
		}
		if len(performances) != 0 {
			t.Errorf("expected empty history, got %d entries", len(performances))
		}
	})

	t.Run("json format", func(t *testing.T) {
		_, out, err := run(t, "sing", "--start", "1", "--end", "0", "--format", "json")
		if err != nil {
			t.Fatalf("sing failed: %v", err)
		}
		if !strings.Contains(out, "\"start_verse\": 1") {
			t.Errorf("expected JSON song sheet, got %q", out)
		}
	})

	t.Run("unknown format fails", func(t *testing.T) {
		if _, _, err := run(t, "sing", "--format", "yaml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestVerseCommand(t *testing.T) {
	t.Run("prints a single verse", func(t *testing.T) {
		_, out, err := run(t, "verse", "42")
		if err != nil {
			t.Fatalf("verse failed: %v", err)
		}
		if !strings.Contains(out, "42 bottles of beer on the wall") {
			t.Errorf("missing verse 42: %q", out)
		}
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		if _, _, err := run(t, "verse", "nope"); err == nil {
			t.Error("expected error for non-numeric verse")
		}
	})

	t.Run("requires an argument", func(t *testing.T) {
		if _, _, err := run(t, "verse"); err == nil {
			t.Error("expected error for missing argument")
		}
	})
}

func TestHistoryCommands(t *testing.T) {
	t.Run("list is empty initially", func(t *testing.T) {
		_, out, err := run(t, "history", "list")
		if err != nil {
			t.Fatalf("history list failed: %v", err)
		}
		if !strings.Contains(out, "No performances recorded yet") {
			t.Errorf("expected empty history message, got %q", out)
		}
	})

	t.Run("clear reports removals", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Logger: shared.NewLogger(&bytes.Buffer{}),
			Output: output,
			DB:     th.NewTestDB(t),
		})

		ctx := context.Background()

		sing := &cli.Command{Name: "bottles", Commands: runner.register()}
		if err := sing.Run(ctx, []string{"bottles", "sing", "--start", "1", "--end", "0"}); err != nil {
			t.Fatalf("sing failed: %v", err)
		}
		output.Reset()

		clearCmd := &cli.Command{Name: "bottles", Commands: runner.register()}
		if err := clearCmd.Run(ctx, []string{"bottles", "history", "clear"}); err != nil {
			t.Fatalf("history clear failed: %v", err)
		}
		if !strings.Contains(output.String(), "Removed 1 performances") {
			t.Errorf("expected removal report, got %q", output.String())
		}
	})
}
