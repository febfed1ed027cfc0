package codegen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"deskpilot/pkg/log"
)

const logPrefix = "internal.codegen"

const generatePromptTemplate = `You are a desktop automation assistant. Write a small script that accomplishes this request on the user's machine:

REQUEST: %s

Rules:
- Return ONLY the code, no explanation and no markdown fences.
- Prefer a single short function plus a call to it.
- Print a one-line confirmation of what was done.`

// Completer is the text-completion collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Runner executes generated code and reports the outcome explicitly.
// Sandboxing and the execution environment are owned by the
// implementation.
type Runner interface {
	Run(ctx context.Context, code string) (output string, err error)
}

// Generator synthesizes code for commands no other routing tier could
// handle.
type Generator struct {
	llm    Completer
	runner Runner
	l      log.Logger
}

func New(llm Completer, runner Runner, l log.Logger) *Generator {
	return &Generator{llm: llm, runner: runner, l: l}
}

// Generate asks the completion service for code satisfying the
// command. Markdown fences are stripped from the reply.
func (g *Generator) Generate(ctx context.Context, command string) (string, error) {
	raw, err := g.llm.Complete(ctx, fmt.Sprintf(generatePromptTemplate, command))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	code := stripFences(strings.TrimSpace(raw))
	if code == "" {
		return "", fmt.Errorf("generate code: empty completion")
	}
	return code, nil
}

// Run executes generated code through the runner. The returned ok flag
// is authoritative; output text is never scanned for failure.
func (g *Generator) Run(ctx context.Context, code string) (string, bool) {
	output, err := g.runner.Run(ctx, code)
	if err != nil {
		g.l.Warnf(ctx, "%v run failed: %v", logPrefix, err)
		return "", false
	}
	return strings.TrimSpace(output), true
}

var funcDefRe = regexp.MustCompile(`(?m)^\s*(?:func\s+\w+|def\s+\w+)`)

// IsReusable reports whether generated code is worth saving as a named
// capability: at least one function definition and at most two.
func IsReusable(code string) bool {
	n := len(funcDefRe.FindAllString(code, -1))
	return n >= 1 && n <= 2
}

var nonWordRe = regexp.MustCompile(`[^a-z0-9]+`)

// CapabilityName derives a snake_case capability name from the command
// that produced the code.
func CapabilityName(command string) string {
	name := strings.ToLower(strings.TrimSpace(command))
	name = nonWordRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	words := strings.Split(name, "_")
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, "_")
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
