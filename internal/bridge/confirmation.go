package bridge

import (
	"context"
	"strings"

	"deskpilot/internal/intent"
)

// interceptEmailDraft prepares a draft and parks it in the pending
// slot instead of executing anything.
func (b *Bridge) interceptEmailDraft(ctx context.Context, rr intent.RouteResult) Outcome {
	instruction, _ := rr.Args["instruction"].(string)
	recipient, _ := rr.Args["recipient"].(string)

	d, err := b.emailer.GenerateDraft(ctx, instruction, recipient)
	if err != nil {
		b.l.Errorf(ctx, "%v email draft failed: %v", logPrefix, err)
		return Outcome{Response: "Failed to draft the email."}
	}

	b.pending = &d
	return Outcome{Response: b.emailer.Preview(d), Success: true}
}

// handleConfirmation resolves the pending slot. An unrecognized reply
// re-prompts and is the only case where the slot survives.
func (b *Bridge) handleConfirmation(ctx context.Context, command string) Outcome {
	lower := strings.ToLower(command)

	for _, w := range affirmativeWords {
		if strings.Contains(lower, w) {
			draft := *b.pending
			// Cleared regardless of how delivery goes.
			b.pending = nil
			msg, ok := b.emailer.Deliver(ctx, draft)
			return Outcome{Response: msg, Success: ok}
		}
	}

	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			b.pending = nil
			return Outcome{Response: "Cancelled. Draft discarded.", Success: true}
		}
	}

	return Outcome{Response: "Please say 'Send' to confirm or 'Cancel' to discard."}
}
