package goal

import (
	"context"
	"errors"
	"testing"

	"deskpilot/pkg/log"
)

// mockCompleter implements Completer for testing
type mockCompleter struct {
	response string
	err      error
	prompts  []string
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("clean JSON", func(t *testing.T) {
		llm := &mockCompleter{response: `{"goal_type": "PLAY_MEDIA", "content": "jazz", "preference": "", "modifiers": {}}`}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, "play some jazz")
		if g.Type != PlayMedia {
			t.Errorf("expected PLAY_MEDIA, got %s", g.Type)
		}
		if g.Content != "jazz" {
			t.Errorf("expected content jazz, got %q", g.Content)
		}
		if g.RawCommand != "play some jazz" {
			t.Errorf("raw command not preserved: %q", g.RawCommand)
		}
	})

	t.Run("strips surrounding quotes", func(t *testing.T) {
		llm := &mockCompleter{response: `{"goal_type": "OPEN_APP", "content": "chrome", "preference": "", "modifiers": {}}`}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, `"open chrome"`)
		if g.RawCommand != "open chrome" {
			t.Errorf("expected quotes stripped, got %q", g.RawCommand)
		}
	})

	t.Run("fenced JSON with prose", func(t *testing.T) {
		llm := &mockCompleter{response: "Here you go:\n```json\n{\"goal_type\": \"WEB_SEARCH\", \"content\": \"weather\", \"preference\": \"\", \"modifiers\": {}}\n```"}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, "search for weather")
		if g.Type != WebSearch {
			t.Errorf("expected WEB_SEARCH, got %s", g.Type)
		}
	})

	t.Run("regex recovery from broken JSON", func(t *testing.T) {
		llm := &mockCompleter{response: `The goal is "goal_type": "OPEN_APP", "content": "spotify", trailing garbage`}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, "open spotify")
		if g.Type != OpenApp {
			t.Errorf("expected OPEN_APP via regex recovery, got %s", g.Type)
		}
		if g.Content != "spotify" {
			t.Errorf("expected content spotify, got %q", g.Content)
		}
	})

	t.Run("unparseable degrades to unknown", func(t *testing.T) {
		llm := &mockCompleter{response: "I am unable to assist with that request."}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, "do something")
		if g.Type != Unknown {
			t.Errorf("expected UNKNOWN, got %s", g.Type)
		}
		if g.RawCommand != "do something" {
			t.Errorf("raw command not preserved: %q", g.RawCommand)
		}
	})

	t.Run("LLM error degrades to unknown", func(t *testing.T) {
		llm := &mockCompleter{err: errors.New("boom")}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, "do something")
		if g.Type != Unknown {
			t.Errorf("expected UNKNOWN, got %s", g.Type)
		}
	})

	t.Run("invalid goal type maps to unknown", func(t *testing.T) {
		llm := &mockCompleter{response: `{"goal_type": "MAKE_COFFEE", "content": "", "preference": "", "modifiers": {}}`}
		e := NewExtractor(llm, log.NewNop())

		g := e.Extract(ctx, "make coffee")
		if g.Type != Unknown {
			t.Errorf("expected UNKNOWN for invalid type, got %s", g.Type)
		}
	})
}

func TestExtractBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("array response", func(t *testing.T) {
		llm := &mockCompleter{response: `[
			{"goal_type": "OPEN_APP", "content": "chrome", "preference": "", "modifiers": {}},
			{"goal_type": "WEB_SEARCH", "content": "weather", "preference": "", "modifiers": {}}
		]`}
		e := NewExtractor(llm, log.NewNop())

		goals := e.ExtractBatch(ctx, []string{"open chrome", "search for weather"})
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[0].Type != OpenApp || goals[1].Type != WebSearch {
			t.Errorf("unexpected types: %s, %s", goals[0].Type, goals[1].Type)
		}
		if len(llm.prompts) != 1 {
			t.Errorf("expected a single completion call, got %d", len(llm.prompts))
		}
	})

	t.Run("wrapped goals object", func(t *testing.T) {
		llm := &mockCompleter{response: `{"goals": [{"goal_type": "OPEN_APP", "content": "chrome", "preference": "", "modifiers": {}}]}`}
		e := NewExtractor(llm, log.NewNop())

		goals := e.ExtractBatch(ctx, []string{"open chrome"})
		if len(goals) != 1 || goals[0].Type != OpenApp {
			t.Errorf("expected wrapped array to parse, got %+v", goals)
		}
	})

	t.Run("short array pads with unknown", func(t *testing.T) {
		llm := &mockCompleter{response: `[{"goal_type": "OPEN_APP", "content": "chrome", "preference": "", "modifiers": {}}]`}
		e := NewExtractor(llm, log.NewNop())

		goals := e.ExtractBatch(ctx, []string{"open chrome", "search for weather"})
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[1].Type != Unknown {
			t.Errorf("expected UNKNOWN for missing item, got %s", goals[1].Type)
		}
	})

	t.Run("failed call degrades all items", func(t *testing.T) {
		llm := &mockCompleter{err: errors.New("boom")}
		e := NewExtractor(llm, log.NewNop())

		goals := e.ExtractBatch(ctx, []string{"open chrome", "search for weather"})
		for i, g := range goals {
			if g.Type != Unknown {
				t.Errorf("goal %d: expected UNKNOWN, got %s", i, g.Type)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		e := NewExtractor(&mockCompleter{}, log.NewNop())
		if goals := e.ExtractBatch(ctx, nil); goals != nil {
			t.Errorf("expected nil for empty input, got %v", goals)
		}
	})
}

func TestPlanBuilderFreeze(t *testing.T) {
	g := Goal{Type: OpenApp, Content: "chrome"}
	b := NewPlan("Open chrome", g).
		Hotkey("win").
		Wait(300).
		TypeText("chrome").
		Key("enter")

	plan := b.Build()
	if plan.Len() != 4 {
		t.Fatalf("expected 4 steps, got %d", plan.Len())
	}

	// Appending after Build must not mutate the frozen plan
	b.Key("escape")
	if plan.Len() != 4 {
		t.Errorf("built plan grew after further appends: %d steps", plan.Len())
	}

	steps := plan.Steps()
	if steps[0].Type != StepHotkey || steps[0].Keys[0] != "win" {
		t.Errorf("unexpected first step: %+v", steps[0])
	}
	if steps[1].Type != StepWait || steps[1].WaitMS != 300 {
		t.Errorf("unexpected wait step: %+v", steps[1])
	}
}

func TestPlanTeach(t *testing.T) {
	g := Goal{Type: PlayMedia, Content: "jazz"}
	plan := NewPlan("Play 'jazz' on Spotify", g).
		Hotkey("win").
		Teach("music", "spotify").
		Build()

	if plan.Preference == nil {
		t.Fatal("expected preference hint")
	}
	if plan.Preference.Category != "music" || plan.Preference.App != "spotify" {
		t.Errorf("unexpected hint: %+v", plan.Preference)
	}
}
