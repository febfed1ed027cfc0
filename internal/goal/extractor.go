package goal

import (
	"context"
	"fmt"
	"strings"

	"deskpilot/pkg/log"
)

// Completer is the completion-service dependency.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extractor turns free text into Goals with one completion call.
type Extractor struct {
	llm Completer
	l   log.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(llm Completer, l log.Logger) *Extractor {
	return &Extractor{llm: llm, l: l}
}

// Extract maps one command to a Goal. Any failure degrades to an
// Unknown goal carrying the raw command; Extract never errors.
func (e *Extractor) Extract(ctx context.Context, command string) Goal {
	command = cleanCommand(command)

	e.l.Infof(ctx, "%v extracting goal for '%s'", logPrefix, command)

	completion, err := e.llm.Complete(ctx, fmt.Sprintf(extractPromptTemplate, command))
	if err != nil {
		e.l.Errorf(ctx, "%v goal extraction error: %v", logPrefix, err)
		return Goal{Type: Unknown, RawCommand: command, Modifiers: map[string]any{}}
	}

	payload, err := parseGoalPayload(completion)
	if err != nil {
		e.l.Warnf(ctx, "%v could not parse goal from completion: %v", logPrefix, err)
		return Goal{Type: Unknown, RawCommand: command, Modifiers: map[string]any{}}
	}

	g := payloadToGoal(payload, command)
	e.l.Infof(ctx, "%v goal: %s content='%s' pref='%s'", logPrefix, g.Type, g.Content, g.Preference)
	return g
}

// ExtractBatch maps N commands to N goals with a single completion
// call. Items that cannot be parsed degrade to Unknown individually;
// a failed call degrades every item.
func (e *Extractor) ExtractBatch(ctx context.Context, commands []string) []Goal {
	if len(commands) == 0 {
		return nil
	}

	var listing strings.Builder
	for i, cmd := range commands {
		fmt.Fprintf(&listing, "%d. %s\n", i+1, cleanCommand(cmd))
	}

	completion, err := e.llm.Complete(ctx, fmt.Sprintf(batchPromptTemplate, strings.TrimRight(listing.String(), "\n")))
	if err != nil {
		e.l.Errorf(ctx, "%v batch goal extraction error: %v", logPrefix, err)
		return unknownGoals(commands)
	}

	payloads, err := parseGoalBatch(completion)
	if err != nil {
		e.l.Warnf(ctx, "%v could not parse goal batch: %v", logPrefix, err)
		return unknownGoals(commands)
	}

	goals := make([]Goal, len(commands))
	for i, cmd := range commands {
		cmd = cleanCommand(cmd)
		if i < len(payloads) {
			goals[i] = payloadToGoal(payloads[i], cmd)
		} else {
			goals[i] = Goal{Type: Unknown, RawCommand: cmd, Modifiers: map[string]any{}}
		}
	}

	e.l.Infof(ctx, "%v batch extracted %d goals", logPrefix, len(goals))
	return goals
}

func payloadToGoal(p goalPayload, rawCommand string) Goal {
	modifiers := p.Modifiers
	if modifiers == nil {
		modifiers = map[string]any{}
	}
	return Goal{
		Type:       ParseType(p.GoalType),
		Content:    p.Content,
		Preference: p.Preference,
		Modifiers:  modifiers,
		RawCommand: rawCommand,
		Confidence: defaultConfidence,
	}
}

func unknownGoals(commands []string) []Goal {
	goals := make([]Goal, len(commands))
	for i, cmd := range commands {
		goals[i] = Goal{Type: Unknown, RawCommand: cleanCommand(cmd), Modifiers: map[string]any{}}
	}
	return goals
}

// cleanCommand strips surrounding whitespace and matching quotes.
func cleanCommand(command string) string {
	cmd := strings.TrimSpace(command)
	if len(cmd) >= 2 {
		first, last := cmd[0], cmd[len(cmd)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			cmd = strings.TrimSpace(cmd[1 : len(cmd)-1])
		}
	}
	return cmd
}
