package email

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"deskpilot/pkg/log"
)

type mockCompleter struct {
	reply  string
	err    error
	prompt string
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.reply, m.err
}

type mockSender struct {
	sent []string
	err  error
}

func (m *mockSender) Send(_ context.Context, to, subject, _ string) error {
	m.sent = append(m.sent, to+"|"+subject)
	return m.err
}

type mockClipboard struct {
	copied string
	err    error
}

func (m *mockClipboard) Copy(_ context.Context, text string) error {
	m.copied = text
	return m.err
}

func TestGenerateDraft(t *testing.T) {
	ctx := context.Background()
	draftsDir := filepath.Join(t.TempDir(), "drafts")

	t.Run("parses strict json", func(t *testing.T) {
		llm := &mockCompleter{reply: `{"subject": "Day off", "body": "Dear manager,\n\nRequesting tomorrow off.", "to": "boss@example.com"}`}
		a := New(llm, nil, &mockClipboard{}, draftsDir, log.NewNop())

		d, err := a.GenerateDraft(ctx, "ask for a day off", "boss@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Subject != "Day off" || d.To != "boss@example.com" {
			t.Errorf("unexpected draft: %+v", d)
		}
		if !strings.Contains(llm.prompt, "ask for a day off") {
			t.Error("expected instruction in prompt")
		}
	})

	t.Run("strips fences and defaults recipient", func(t *testing.T) {
		llm := &mockCompleter{reply: "```json\n{\"subject\": \"Hi\", \"body\": \"Hello.\", \"to\": \"\"}\n```"}
		a := New(llm, nil, &mockClipboard{}, draftsDir, log.NewNop())

		d, err := a.GenerateDraft(ctx, "say hi", "friend@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.To != "friend@example.com" {
			t.Errorf("expected recipient default, got %q", d.To)
		}
	})

	t.Run("malformed json errors", func(t *testing.T) {
		a := New(&mockCompleter{reply: "Sure! Here is your email."}, nil, &mockClipboard{}, draftsDir, log.NewNop())
		if _, err := a.GenerateDraft(ctx, "anything", ""); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("service error propagates", func(t *testing.T) {
		a := New(&mockCompleter{err: errors.New("boom")}, nil, &mockClipboard{}, draftsDir, log.NewNop())
		if _, err := a.GenerateDraft(ctx, "anything", ""); err == nil {
			t.Error("expected error")
		}
	})
}

func TestPreview(t *testing.T) {
	a := New(&mockCompleter{}, nil, &mockClipboard{}, "", log.NewNop())

	t.Run("clips long bodies", func(t *testing.T) {
		d := Draft{Subject: "Long one", Body: strings.Repeat("a", 150)}
		p := a.Preview(d)
		if !strings.Contains(p, strings.Repeat("a", 100)+"...") {
			t.Error("expected clipped body with ellipsis")
		}
		if strings.Contains(p, strings.Repeat("a", 101)) {
			t.Error("body not clipped to limit")
		}
	})

	t.Run("short bodies pass through", func(t *testing.T) {
		p := a.Preview(Draft{Subject: "S", Body: "short"})
		if !strings.Contains(p, "Body: short\n") {
			t.Errorf("unexpected preview: %q", p)
		}
		if !strings.Contains(p, "Say 'Send' to confirm") {
			t.Error("expected confirmation instruction")
		}
	})
}

func TestDeliver(t *testing.T) {
	ctx := context.Background()
	d := Draft{Subject: "S", Body: "B", To: "x@example.com"}

	t.Run("sender delivers", func(t *testing.T) {
		sender := &mockSender{}
		a := New(&mockCompleter{}, sender, &mockClipboard{}, "", log.NewNop())

		msg, ok := a.Deliver(ctx, d)
		if !ok || !strings.Contains(msg, "x@example.com") {
			t.Errorf("unexpected result: %q %v", msg, ok)
		}
		if len(sender.sent) != 1 {
			t.Errorf("expected one send, got %v", sender.sent)
		}
	})

	t.Run("send failure falls back to clipboard", func(t *testing.T) {
		clip := &mockClipboard{}
		a := New(&mockCompleter{}, &mockSender{err: errors.New("smtp down")}, clip, "", log.NewNop())

		msg, ok := a.Deliver(ctx, d)
		if !ok {
			t.Fatalf("expected clipboard fallback to succeed: %q", msg)
		}
		if !strings.Contains(msg, "Sending failed") || !strings.Contains(msg, "clipboard") {
			t.Errorf("unexpected message: %q", msg)
		}
		if !strings.Contains(clip.copied, "Subject: S") {
			t.Errorf("unexpected clipboard content: %q", clip.copied)
		}
	})

	t.Run("no sender goes straight to clipboard", func(t *testing.T) {
		clip := &mockClipboard{}
		a := New(&mockCompleter{}, nil, clip, "", log.NewNop())

		msg, ok := a.Deliver(ctx, d)
		if !ok || clip.copied == "" {
			t.Errorf("expected clipboard delivery, got %q", msg)
		}
	})

	t.Run("clipboard failure reports failure", func(t *testing.T) {
		a := New(&mockCompleter{}, nil, &mockClipboard{err: errors.New("no clip")}, "", log.NewNop())
		if _, ok := a.Deliver(ctx, d); ok {
			t.Error("expected failure")
		}
	})
}
