package bridge

import (
	"context"
	"strings"

	"deskpilot/internal/catalog"
	"deskpilot/internal/codegen"
	"deskpilot/internal/function"
	"deskpilot/internal/goal"
	"deskpilot/internal/intent"
)

// Process routes one command through the fixed-priority tiers:
// pending confirmation, multi-task, conversation, high-confidence
// capability match, goal-driven planning, low-confidence match, code
// generation. Commands are processed one at a time.
func (b *Bridge) Process(ctx context.Context, command string) Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	command = strings.TrimSpace(command)
	if command == "" {
		return Outcome{}
	}

	b.l.Infof(ctx, "%v processing: %s", logPrefix, command)

	if b.pending != nil {
		return b.handleConfirmation(ctx, command)
	}

	if out, handled := b.multi.Process(ctx, command); handled {
		b.stats.MultiTask++
		return Outcome{Response: out.Response, Success: out.Success, UsedLLM: out.UsedLLM}
	}

	rr := b.classifier.Classify(ctx, command)
	b.l.Infof(ctx, "%v verdict: quality=%s conf=%.2f fn=%s", logPrefix, rr.MatchQuality, rr.Confidence, rr.Function)

	// Conversation precedes every other flag on the verdict.
	if rr.IsConversation {
		b.stats.GeminiChat++
		return b.handleConversation(ctx, command)
	}

	if rr.Function != "" && rr.Confidence >= b.cfg.HighConfidence {
		if rr.Function == draftEmailFunction {
			return b.interceptEmailDraft(ctx, rr)
		}
		if out := b.executeLocal(ctx, rr); out.Success {
			b.stats.LocalCommands++
			b.stats.TokensSaved += tokensSavedLocal
			return out
		}
		b.l.Infof(ctx, "%v local execution failed, trying goal routing", logPrefix)
	}

	response, success, fallback := b.goalRoute(ctx, command, b.extractor.Extract(ctx, command))
	if success {
		b.stats.GoalDriven++
		b.stats.TokensSaved += tokensSavedGoalDriven
		return Outcome{Response: response, Success: true}
	}
	if fallback == fallbackCodegen {
		b.stats.GeminiFull++
		return b.handleCodegen(ctx, command)
	}

	if rr.Function != "" && rr.Confidence >= b.cfg.LowConfidence {
		if out := b.executeLocal(ctx, rr); out.Success {
			b.stats.LocalCommands++
			b.stats.TokensSaved += tokensSavedLocal
			return out
		}
	}

	b.stats.GeminiFull++
	return b.handleCodegen(ctx, command)
}

// RunTask routes one multi-task sub-command through the standalone
// tiers. The goal arrives pre-extracted by the handler's batch call.
// Called with the bridge lock already held.
func (b *Bridge) RunTask(ctx context.Context, command string, g goal.Goal) (string, bool, bool) {
	rr := b.classifier.Classify(ctx, command)

	if rr.Function != "" && rr.Confidence >= b.cfg.HighConfidence {
		if out := b.executeLocal(ctx, rr); out.Success {
			return out.Response, true, false
		}
	}

	response, success, _ := b.goalRoute(ctx, command, g)
	if success {
		return response, true, false
	}

	if rr.Function != "" && rr.Confidence >= b.cfg.LowConfidence {
		if out := b.executeLocal(ctx, rr); out.Success {
			return out.Response, true, false
		}
	}

	out := b.handleCodegen(ctx, command)
	return out.Response, out.Success, out.UsedLLM
}

func (b *Bridge) executeLocal(ctx context.Context, rr intent.RouteResult) Outcome {
	result := b.funcExec.Execute(ctx, rr.Function, function.Args(rr.Args))
	b.store.AddRecentCommand(ctx, rr.RawCommand)
	return Outcome{Response: result.Output, Success: result.OK}
}

// goalRoute plans and executes an extracted goal. The fallback value
// tells the caller which tier to try next when the path did not
// complete.
func (b *Bridge) goalRoute(ctx context.Context, command string, g goal.Goal) (string, bool, goalFallback) {
	if g.Type == goal.Unknown {
		return "", false, fallbackCodegen
	}
	if g.Type == goal.Conversation {
		return "", false, fallbackFunction
	}

	plan, ok := b.planner.Plan(ctx, g)
	if !ok || plan.NeedsFunctionExecutor {
		return "", false, fallbackFunction
	}

	if b.planExec.Execute(ctx, plan) {
		// Preference learning is gated on the execution result.
		if plan.Preference != nil {
			b.store.UpdatePreference(ctx, plan.Preference.Category, plan.Preference.App)
		}
		b.store.AddRecentCommand(ctx, command)
		return "Done: " + plan.Description, true, fallbackNone
	}
	return "Attempted: " + plan.Description, false, fallbackFunction
}

func (b *Bridge) handleCodegen(ctx context.Context, command string) Outcome {
	code, err := b.generator.Generate(ctx, command)
	if err != nil {
		b.l.Errorf(ctx, "%v code generation failed: %v", logPrefix, err)
		return Outcome{Response: "I'm having a momentary difficulty. Could you please repeat that?", UsedLLM: true}
	}

	output, ok := b.generator.Run(ctx, code)
	b.store.AddRecentCommand(ctx, command)

	if !ok {
		return Outcome{Response: "I couldn't complete that.", UsedLLM: true}
	}

	if codegen.IsReusable(code) {
		b.learnCapability(ctx, command, code)
	}

	if output == "" {
		output = "Done."
	}
	return Outcome{Response: output, Success: true, UsedLLM: true}
}

// learnCapability registers successful reusable generated code as a
// named capability for future classifier matching.
func (b *Bridge) learnCapability(ctx context.Context, command, code string) {
	name := codegen.CapabilityName(command)
	if name == "" || b.catalog.Has(name) {
		return
	}

	handler := func(ctx context.Context, _ function.Args) (string, error) {
		output, ok := b.generator.Run(ctx, code)
		if !ok {
			return "", errLearnedExecution
		}
		return output, nil
	}
	if err := b.funcExec.Register(name, handler); err != nil {
		b.l.Warnf(ctx, "%v could not register learned handler: %v", logPrefix, err)
		return
	}
	if err := b.catalog.Register(catalog.Capability{
		Name:        name,
		Description: command,
	}); err != nil {
		b.l.Warnf(ctx, "%v could not register learned capability: %v", logPrefix, err)
		return
	}

	b.stats.CapabilitiesLearned++
	b.l.Infof(ctx, "%v learned capability: %s", logPrefix, name)
}
