package multitask

import (
	"context"
	"fmt"
	"strings"

	"deskpilot/internal/goal"
	"deskpilot/pkg/log"
)

// Pipeline runs one sub-command through the standalone routing tiers.
// The bridge satisfies this. The goal is pre-extracted by the batch
// call so per-task routing does not pay another extraction round trip.
type Pipeline interface {
	RunTask(ctx context.Context, command string, g goal.Goal) (response string, success bool, usedLLM bool)
}

// BatchExtractor turns all sub-commands into goals in one call.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, commands []string) []goal.Goal
}

// Handler splits compound commands into dependency-ordered tasks and
// runs each through the pipeline.
type Handler struct {
	pipeline  Pipeline
	extractor BatchExtractor
	l         log.Logger
}

func New(pipeline Pipeline, extractor BatchExtractor, l log.Logger) *Handler {
	return &Handler{pipeline: pipeline, extractor: extractor, l: l}
}

// IsMultiTask reports whether the command contains a task separator.
func (h *Handler) IsMultiTask(command string) bool {
	lower := strings.ToLower(command)
	for _, sep := range separators {
		if sep.MatchString(lower) {
			return true
		}
	}
	return false
}

// Split breaks a compound command into tasks with inferred
// dependencies. Separators apply progressively, most specific first.
func (h *Handler) Split(command string) []Task {
	parts := []string{command}
	for _, sep := range separators {
		var next []string
		for _, part := range parts {
			next = append(next, sep.Split(part, -1)...)
		}
		parts = next
	}

	var cleaned []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}

	lower := strings.ToLower(command)
	sequential := false
	for _, kw := range sequentialKeywords {
		if strings.Contains(lower, kw) {
			sequential = true
			break
		}
	}

	tasks := make([]Task, 0, len(cleaned))
	for i, part := range cleaned {
		task := Task{Command: part, Index: i}

		if sequential && i > 0 {
			task.DependsOn = append(task.DependsOn, i-1)
		}

		// "search X" style tasks also depend on the nearest
		// preceding task that opens something.
		if containsAny(strings.ToLower(part), continuationVerbs) {
			for j := i - 1; j >= 0; j-- {
				if containsAny(strings.ToLower(cleaned[j]), openerVerbs) {
					if !contains(task.DependsOn, j) {
						task.DependsOn = append(task.DependsOn, j)
					}
					break
				}
			}
		}

		tasks = append(tasks, task)
	}
	return tasks
}

// Process runs a compound command. The second return is false when the
// command is not multi-task and normal routing should handle it.
func (h *Handler) Process(ctx context.Context, command string) (Outcome, bool) {
	if !h.IsMultiTask(command) {
		return Outcome{}, false
	}

	tasks := h.Split(command)
	if len(tasks) <= 1 {
		return Outcome{}, false
	}

	h.l.Infof(ctx, "%v split into %d tasks", logPrefix, len(tasks))

	commands := make([]string, len(tasks))
	for i, task := range tasks {
		commands[i] = task.Command
	}
	goals := h.extractor.ExtractBatch(ctx, commands)

	var results []string
	allSuccess := true
	usedLLM := false

	for i := range tasks {
		task := &tasks[i]

		depsMet := true
		for _, dep := range task.DependsOn {
			if !tasks[dep].Executed || !tasks[dep].Success {
				depsMet = false
				break
			}
		}

		if !depsMet {
			task.Result = fmt.Sprintf("Skipped (dependency failed): %s", task.Command)
			task.Executed = true
			task.Success = false
			results = append(results, task.Result)
			allSuccess = false
			continue
		}

		g := goal.Goal{Type: goal.Unknown, RawCommand: task.Command}
		if i < len(goals) {
			g = goals[i]
		}

		response, success, llm := h.pipeline.RunTask(ctx, task.Command, g)
		task.Executed = true
		task.Success = success
		task.Result = response
		if response != "" {
			results = append(results, response)
		}
		if llm {
			usedLLM = true
		}
		if !success {
			allSuccess = false
		}
	}

	return Outcome{
		Response: strings.Join(results, "\n"),
		Success:  allSuccess,
		UsedLLM:  usedLLM,
	}, true
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func contains(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
