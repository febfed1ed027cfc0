package codegen

import (
	"context"
	"errors"
	"testing"

	"deskpilot/pkg/log"
)

type mockCompleter struct {
	reply string
	err   error
}

func (m *mockCompleter) Complete(_ context.Context, _ string) (string, error) {
	return m.reply, m.err
}

type mockRunner struct {
	output string
	err    error
	ran    string
}

func (m *mockRunner) Run(_ context.Context, code string) (string, error) {
	m.ran = code
	return m.output, m.err
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns trimmed code", func(t *testing.T) {
		g := New(&mockCompleter{reply: "  func doIt() {}\ndoIt()  "}, &mockRunner{}, log.NewNop())
		code, err := g.Generate(ctx, "do it")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != "func doIt() {}\ndoIt()" {
			t.Errorf("unexpected code: %q", code)
		}
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		g := New(&mockCompleter{reply: "```python\nprint('hi')\n```"}, &mockRunner{}, log.NewNop())
		code, err := g.Generate(ctx, "say hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != "print('hi')" {
			t.Errorf("unexpected code: %q", code)
		}
	})

	t.Run("service error propagates", func(t *testing.T) {
		g := New(&mockCompleter{err: errors.New("boom")}, &mockRunner{}, log.NewNop())
		if _, err := g.Generate(ctx, "anything"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("empty completion errors", func(t *testing.T) {
		g := New(&mockCompleter{reply: "```\n```"}, &mockRunner{}, log.NewNop())
		if _, err := g.Generate(ctx, "anything"); err == nil {
			t.Error("expected error for empty completion")
		}
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("ok flag follows runner outcome", func(t *testing.T) {
		runner := &mockRunner{output: "done\n"}
		g := New(&mockCompleter{}, runner, log.NewNop())

		output, ok := g.Run(ctx, "code")
		if !ok || output != "done" {
			t.Errorf("unexpected result: %q %v", output, ok)
		}
		if runner.ran != "code" {
			t.Errorf("runner got %q", runner.ran)
		}
	})

	t.Run("runner error means failure even with output", func(t *testing.T) {
		g := New(&mockCompleter{}, &mockRunner{output: "Error: nope", err: errors.New("exit 1")}, log.NewNop())
		if _, ok := g.Run(ctx, "code"); ok {
			t.Error("expected failure")
		}
	})
}

func TestIsReusable(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"one function", "func openThing() {}\nopenThing()", true},
		{"two functions", "def a():\n  pass\ndef b():\n  pass", true},
		{"three functions", "def a():\n  pass\ndef b():\n  pass\ndef c():\n  pass", false},
		{"no functions", "print('hello')", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReusable(tt.code); got != tt.want {
				t.Errorf("IsReusable(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestCapabilityName(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"Open the big spreadsheet", "open_the_big_spreadsheet"},
		{"  what's up?  ", "what_s_up"},
		{"one two three four five six seven", "one_two_three_four_five"},
	}
	for _, tt := range tests {
		if got := CapabilityName(tt.command); got != tt.want {
			t.Errorf("CapabilityName(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}
