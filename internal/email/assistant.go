package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"deskpilot/pkg/log"
)

// Draft is a prepared email awaiting confirmation.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	To      string `json:"to"`
}

// Completer is the text-completion collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sender delivers a confirmed draft. pkg/gmail satisfies this.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Clipboard is the delivery fallback when no sender is configured or
// sending fails.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// Assistant drafts emails through the completion service and delivers
// them once confirmed.
type Assistant struct {
	llm       Completer
	sender    Sender
	clipboard Clipboard
	draftsDir string
	l         log.Logger
}

// New creates an Assistant. sender may be nil; delivery then always
// goes to the clipboard.
func New(llm Completer, sender Sender, clipboard Clipboard, draftsDir string, l log.Logger) *Assistant {
	return &Assistant{
		llm:       llm,
		sender:    sender,
		clipboard: clipboard,
		draftsDir: draftsDir,
		l:         l,
	}
}

// GenerateDraft asks the completion service for a strict-JSON draft.
// The draft is saved to the drafts directory for reference.
func (a *Assistant) GenerateDraft(ctx context.Context, instruction, recipient string) (Draft, error) {
	rcpt := recipient
	if rcpt == "" {
		rcpt = "Not specified"
	}
	prompt := fmt.Sprintf(draftPromptTemplate, instruction, rcpt, "professional", recipient)

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Draft{}, fmt.Errorf("draft email: %w", err)
	}

	var d Draft
	if err := json.Unmarshal([]byte(stripFences(strings.TrimSpace(raw))), &d); err != nil {
		return Draft{}, fmt.Errorf("draft email: parse response: %w", err)
	}
	if d.To == "" {
		d.To = recipient
	}
	if d.Subject == "" && d.Body == "" {
		return Draft{}, fmt.Errorf("draft email: empty draft")
	}

	a.saveDraft(ctx, d)
	return d, nil
}

// Preview renders the confirmation message shown to the user. The body
// is clipped for display; the full draft stays in the pending slot.
func (a *Assistant) Preview(d Draft) string {
	body := d.Body
	if len(body) > previewBodyLimit {
		body = body[:previewBodyLimit] + "..."
	}
	return fmt.Sprintf("Draft ready:\n\nSubject: %s\nBody: %s\n\nSay 'Send' to confirm or 'Cancel' to discard.", d.Subject, body)
}

// Deliver sends a confirmed draft. When the sender is missing or
// fails, the draft falls back to the clipboard.
func (a *Assistant) Deliver(ctx context.Context, d Draft) (string, bool) {
	if a.sender != nil {
		err := a.sender.Send(ctx, d.To, d.Subject, d.Body)
		if err == nil {
			return fmt.Sprintf("Email sent to %s.", d.To), true
		}
		a.l.Warnf(ctx, "%v send failed, falling back to clipboard: %v", logPrefix, err)
		msg, ok := a.copyOut(ctx, d)
		return "Sending failed. " + msg, ok
	}
	return a.copyOut(ctx, d)
}

func (a *Assistant) copyOut(ctx context.Context, d Draft) (string, bool) {
	full := fmt.Sprintf("Subject: %s\n\n%s", d.Subject, d.Body)
	if err := a.clipboard.Copy(ctx, full); err != nil {
		a.l.Warnf(ctx, "%v clipboard failed: %v", logPrefix, err)
		return fmt.Sprintf("Email drafted but delivery failed. Subject: %s", d.Subject), false
	}
	return fmt.Sprintf("Email copied to clipboard. Subject: %s", d.Subject), true
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9 \-_]+`)

func (a *Assistant) saveDraft(ctx context.Context, d Draft) {
	if a.draftsDir == "" {
		return
	}
	subject := d.Subject
	if len(subject) > 30 {
		subject = subject[:30]
	}
	safe := unsafeNameRe.ReplaceAllString(subject, "_")
	name := fmt.Sprintf("%s_%s.txt", time.Now().Format("20060102_150405"), safe)

	content := fmt.Sprintf("To: %s\nSubject: %s\nDate: %s\n\n%s\n\n%s",
		d.To, d.Subject, time.Now().Format("2006-01-02 15:04"), strings.Repeat("-", 40), d.Body)

	if err := os.MkdirAll(a.draftsDir, 0o755); err != nil {
		a.l.Warnf(ctx, "%v drafts dir: %v", logPrefix, err)
		return
	}
	path := filepath.Join(a.draftsDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		a.l.Warnf(ctx, "%v save draft: %v", logPrefix, err)
		return
	}
	a.l.Infof(ctx, "%v draft saved: %s", logPrefix, path)
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
