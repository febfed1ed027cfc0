package bridge

import (
	"context"
	"fmt"
	"strings"
)

// handleConversation answers a conversational message with bounded
// memory. The full reply goes into history; very long replies are
// truncated for display.
func (b *Bridge) handleConversation(ctx context.Context, message string) Outcome {
	b.history = append(b.history, exchange{role: "user", content: message})
	if len(b.history) > maxHistory {
		b.history = b.history[len(b.history)-maxHistory:]
	}

	prompt := fmt.Sprintf(conversationPromptTemplate,
		lengthInstruction(message), b.historyContext(), message)

	reply, err := b.chat.Complete(ctx, prompt)
	if err != nil {
		b.l.Errorf(ctx, "%v conversation failed: %v", logPrefix, err)
		return Outcome{
			Response: "I apologize, but I'm experiencing a momentary difficulty. Could you please repeat that?",
			UsedLLM:  true,
		}
	}
	reply = strings.TrimSpace(reply)

	display := reply
	if words := strings.Fields(reply); len(words) > maxResponseWords {
		display = strings.Join(words[:maxResponseWords], " ") + truncationNotice
	}

	b.history = append(b.history, exchange{role: "assistant", content: reply})
	if len(b.history) > maxHistory {
		b.history = b.history[len(b.history)-maxHistory:]
	}

	return Outcome{Response: display, Success: true, UsedLLM: true}
}

func (b *Bridge) historyContext() string {
	window := b.history
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}
	var sb strings.Builder
	for _, e := range window {
		label := "User"
		if e.role == "assistant" {
			label = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, e.content)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func lengthInstruction(message string) string {
	lower := strings.ToLower(message)
	for _, kw := range briefKeywords {
		if strings.Contains(lower, kw) {
			return briefInstruction
		}
	}
	for _, kw := range detailedKeywords {
		if strings.Contains(lower, kw) {
			return detailedInstruction
		}
	}
	return balancedInstruction
}
