package multitask

import (
	"context"
	"strings"
	"testing"

	"deskpilot/internal/goal"
	"deskpilot/pkg/log"
)

type mockPipeline struct {
	ran     []string
	goals   []goal.Goal
	failOn  string
	usesLLM bool
}

func (m *mockPipeline) RunTask(_ context.Context, command string, g goal.Goal) (string, bool, bool) {
	m.ran = append(m.ran, command)
	m.goals = append(m.goals, g)
	if command == m.failOn {
		return "Could not do that.", false, m.usesLLM
	}
	return "Done: " + command, true, m.usesLLM
}

type mockExtractor struct {
	batches [][]string
}

func (m *mockExtractor) ExtractBatch(_ context.Context, commands []string) []goal.Goal {
	m.batches = append(m.batches, commands)
	goals := make([]goal.Goal, len(commands))
	for i, cmd := range commands {
		goals[i] = goal.Goal{Type: goal.Unknown, RawCommand: cmd}
	}
	return goals
}

func TestIsMultiTask(t *testing.T) {
	h := New(&mockPipeline{}, &mockExtractor{}, log.NewNop())

	tests := []struct {
		command string
		want    bool
	}{
		{"open chrome and then search for weather", true},
		{"close notepad then open chrome", true},
		{"mute the volume, take a screenshot", true},
		{"open spotify", false},
		{"what's the weather like", false},
	}
	for _, tt := range tests {
		if got := h.IsMultiTask(tt.command); got != tt.want {
			t.Errorf("IsMultiTask(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	h := New(&mockPipeline{}, &mockExtractor{}, log.NewNop())

	t.Run("sequential and continuation dependencies", func(t *testing.T) {
		tasks := h.Split("open notepad then close notepad and also type hello")
		if len(tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %v", tasks)
		}
		if tasks[0].Command != "open notepad" || tasks[1].Command != "close notepad" || tasks[2].Command != "type hello" {
			t.Fatalf("unexpected split: %v", tasks)
		}
		if len(tasks[1].DependsOn) != 1 || tasks[1].DependsOn[0] != 0 {
			t.Errorf("task 2 should depend on task 1, got %v", tasks[1].DependsOn)
		}
		// "type hello" picks up the sequential dep plus the nearest opener.
		if !containsDep(tasks[2].DependsOn, 1) {
			t.Errorf("task 3 should depend on its predecessor, got %v", tasks[2].DependsOn)
		}
		if !containsDep(tasks[2].DependsOn, 0) {
			t.Errorf("task 3 should depend on the opener task, got %v", tasks[2].DependsOn)
		}
	})

	t.Run("no sequential keyword means no chained deps", func(t *testing.T) {
		tasks := h.Split("mute the volume and take a screenshot")
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %v", tasks)
		}
		if len(tasks[1].DependsOn) != 0 {
			t.Errorf("expected no dependencies, got %v", tasks[1].DependsOn)
		}
	})

	t.Run("continuation verb finds nearest opener", func(t *testing.T) {
		tasks := h.Split("open chrome and search for weather")
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %v", tasks)
		}
		if !containsDep(tasks[1].DependsOn, 0) {
			t.Errorf("search should depend on open, got %v", tasks[1].DependsOn)
		}
	})
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("single commands are not handled", func(t *testing.T) {
		h := New(&mockPipeline{}, &mockExtractor{}, log.NewNop())
		if _, handled := h.Process(ctx, "open spotify"); handled {
			t.Error("expected single command to pass through")
		}
	})

	t.Run("all tasks succeed", func(t *testing.T) {
		pipe := &mockPipeline{}
		ext := &mockExtractor{}
		h := New(pipe, ext, log.NewNop())

		out, handled := h.Process(ctx, "mute the volume and take a screenshot")
		if !handled || !out.Success {
			t.Fatalf("expected handled success, got %+v", out)
		}
		if len(pipe.ran) != 2 {
			t.Errorf("expected 2 tasks run, got %v", pipe.ran)
		}
		if len(ext.batches) != 1 || len(ext.batches[0]) != 2 {
			t.Errorf("expected one batch extraction of both tasks, got %v", ext.batches)
		}
		if len(strings.Split(out.Response, "\n")) != 2 {
			t.Errorf("expected joined results, got %q", out.Response)
		}
	})

	t.Run("failed dependency skips dependents", func(t *testing.T) {
		pipe := &mockPipeline{failOn: "open chrome"}
		h := New(pipe, &mockExtractor{}, log.NewNop())

		out, handled := h.Process(ctx, "open chrome and then search for weather")
		if !handled {
			t.Fatal("expected multi-task handling")
		}
		if out.Success {
			t.Error("expected overall failure")
		}
		if len(pipe.ran) != 1 {
			t.Errorf("expected only the first task to run, got %v", pipe.ran)
		}
		if !strings.Contains(out.Response, "Skipped (dependency failed): search for weather") {
			t.Errorf("expected skip notice, got %q", out.Response)
		}
	})

	t.Run("independent task still runs after unrelated failure", func(t *testing.T) {
		pipe := &mockPipeline{failOn: "mute the volume"}
		h := New(pipe, &mockExtractor{}, log.NewNop())

		out, handled := h.Process(ctx, "mute the volume and take a screenshot")
		if !handled {
			t.Fatal("expected multi-task handling")
		}
		if out.Success {
			t.Error("expected overall failure from first task")
		}
		if len(pipe.ran) != 2 {
			t.Errorf("expected both tasks attempted, got %v", pipe.ran)
		}
	})

	t.Run("llm usage propagates", func(t *testing.T) {
		pipe := &mockPipeline{usesLLM: true}
		h := New(pipe, &mockExtractor{}, log.NewNop())

		out, _ := h.Process(ctx, "mute the volume and take a screenshot")
		if !out.UsedLLM {
			t.Error("expected UsedLLM to propagate")
		}
	})
}

func containsDep(deps []int, n int) bool {
	for _, d := range deps {
		if d == n {
			return true
		}
	}
	return false
}
