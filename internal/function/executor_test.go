package function

import (
	"context"
	"errors"
	"strings"
	"testing"

	"deskpilot/pkg/log"
)

// mockActions records every primitive call
type mockActions struct {
	calls   []string
	failAll bool
}

func (m *mockActions) record(call string) error {
	m.calls = append(m.calls, call)
	if m.failAll {
		return errors.New("action failed")
	}
	return nil
}

func (m *mockActions) SetVolume(_ context.Context, level int) error {
	return m.record("set_volume")
}
func (m *mockActions) ChangeVolume(_ context.Context, delta int) error {
	if delta > 0 {
		return m.record("volume_up")
	}
	return m.record("volume_down")
}
func (m *mockActions) MuteVolume(_ context.Context) error   { return m.record("mute") }
func (m *mockActions) UnmuteVolume(_ context.Context) error { return m.record("unmute") }
func (m *mockActions) SetBrightness(_ context.Context, level int) error {
	return m.record("set_brightness")
}
func (m *mockActions) ChangeBrightness(_ context.Context, delta int) error {
	return m.record("change_brightness")
}
func (m *mockActions) OpenApplication(_ context.Context, name string) error {
	return m.record("open:" + name)
}
func (m *mockActions) CloseApplication(_ context.Context, name string) error {
	return m.record("close:" + name)
}
func (m *mockActions) OpenURL(_ context.Context, url string) error {
	return m.record("url:" + url)
}
func (m *mockActions) PressKey(_ context.Context, key string) error {
	return m.record("key:" + key)
}
func (m *mockActions) Hotkey(_ context.Context, keys ...string) error {
	return m.record("hotkey:" + strings.Join(keys, "+"))
}
func (m *mockActions) TypeText(_ context.Context, text string) error {
	return m.record("type:" + text)
}
func (m *mockActions) Scroll(_ context.Context, clicks int) error { return m.record("scroll") }
func (m *mockActions) TakeScreenshot(_ context.Context) (string, error) {
	return "shot.png", m.record("screenshot")
}
func (m *mockActions) LockWorkstation(_ context.Context) error { return m.record("lock") }
func (m *mockActions) SleepComputer(_ context.Context) error   { return m.record("sleep") }
func (m *mockActions) SystemInfo(_ context.Context) (string, error) {
	return "CPU 12%", m.record("sysinfo")
}
func (m *mockActions) RunCommand(_ context.Context, command string) (string, error) {
	return "ran " + command, m.record("run:" + command)
}

func (m *mockActions) last() string {
	if len(m.calls) == 0 {
		return ""
	}
	return m.calls[len(m.calls)-1]
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown capability fails fast", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		res := e.Execute(ctx, "teleport", nil)
		if res.OK {
			t.Fatal("expected failure for unknown capability")
		}
		if len(actions.calls) != 0 {
			t.Errorf("expected no actions, got %v", actions.calls)
		}
	})

	t.Run("set volume validates level", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		res := e.Execute(ctx, "set_system_volume", Args{"level": float64(50)})
		if !res.OK {
			t.Fatalf("expected success, got %q", res.Output)
		}
		if actions.last() != "set_volume" {
			t.Errorf("expected set_volume call, got %v", actions.calls)
		}

		res = e.Execute(ctx, "set_system_volume", Args{"level": float64(150)})
		if res.OK {
			t.Error("expected out-of-range level to fail")
		}

		res = e.Execute(ctx, "set_system_volume", Args{})
		if res.OK {
			t.Error("expected missing level to fail")
		}
	})

	t.Run("action error surfaces as failed result", func(t *testing.T) {
		actions := &mockActions{failAll: true}
		e := New(actions, log.NewNop())

		res := e.Execute(ctx, "mute_system_volume", nil)
		if res.OK {
			t.Fatal("expected failure when action errors")
		}
		if res.Output == "" {
			t.Error("expected an explanatory output")
		}
	})

	t.Run("youtube search builds escaped url", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		res := e.Execute(ctx, "play_youtube", Args{"query": "lofi beats"})
		if !res.OK {
			t.Fatalf("expected success, got %q", res.Output)
		}
		if actions.last() != "url:https://youtube.com/results?search_query=lofi+beats" {
			t.Errorf("unexpected url call: %v", actions.calls)
		}
	})

	t.Run("open website adds scheme", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		e.Execute(ctx, "open_website", Args{"url": "example.com"})
		if actions.last() != "url:https://example.com" {
			t.Errorf("expected https prefix, got %v", actions.calls)
		}

		e.Execute(ctx, "open_website", Args{"url": "http://plain.example"})
		if actions.last() != "url:http://plain.example" {
			t.Errorf("expected scheme preserved, got %v", actions.calls)
		}
	})

	t.Run("hotkey splits key combo", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		e.Execute(ctx, "hotkey", Args{"keys": "ctrl + shift+esc"})
		if actions.last() != "hotkey:ctrl+shift+esc" {
			t.Errorf("unexpected hotkey call: %v", actions.calls)
		}
	})

	t.Run("media controls press media keys", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		e.Execute(ctx, "next_track", nil)
		if actions.last() != "key:nexttrack" {
			t.Errorf("unexpected call: %v", actions.calls)
		}
		e.Execute(ctx, "pause_media", nil)
		if actions.last() != "key:playpause" {
			t.Errorf("unexpected call: %v", actions.calls)
		}
	})

	t.Run("window shortcuts", func(t *testing.T) {
		actions := &mockActions{}
		e := New(actions, log.NewNop())

		e.Execute(ctx, "minimize_all_windows", nil)
		if actions.last() != "hotkey:win+d" {
			t.Errorf("unexpected call: %v", actions.calls)
		}
		e.Execute(ctx, "close_window", nil)
		if actions.last() != "hotkey:alt+f4" {
			t.Errorf("unexpected call: %v", actions.calls)
		}
	})

	t.Run("system info returns action output", func(t *testing.T) {
		e := New(&mockActions{}, log.NewNop())

		res := e.Execute(ctx, "system_info", nil)
		if !res.OK || res.Output != "CPU 12%" {
			t.Errorf("expected action output, got %+v", res)
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	e := New(&mockActions{}, log.NewNop())

	t.Run("learned handler becomes callable", func(t *testing.T) {
		err := e.Register("say_hello", func(_ context.Context, _ Args) (string, error) {
			return "hello", nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.Has("say_hello") {
			t.Fatal("expected handler to be registered")
		}

		res := e.Execute(ctx, "say_hello", nil)
		if !res.OK || res.Output != "hello" {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		err := e.Register("get_time", func(_ context.Context, _ Args) (string, error) {
			return "", nil
		})
		if err == nil {
			t.Error("expected duplicate registration to fail")
		}
	})

	t.Run("rejects empty name and nil handler", func(t *testing.T) {
		if err := e.Register("", func(_ context.Context, _ Args) (string, error) { return "", nil }); err == nil {
			t.Error("expected empty name to fail")
		}
		if err := e.Register("noop", nil); err == nil {
			t.Error("expected nil handler to fail")
		}
	})
}

func TestArgs(t *testing.T) {
	t.Run("json numbers decode as ints", func(t *testing.T) {
		args := Args{"level": float64(42)}
		n, err := args.RequireInt("level")
		if err != nil || n != 42 {
			t.Errorf("expected 42, got %d err %v", n, err)
		}
	})

	t.Run("fallbacks apply on missing keys", func(t *testing.T) {
		args := Args{}
		if got := args.String("query", "default"); got != "default" {
			t.Errorf("expected default, got %q", got)
		}
		if got := args.Int("clicks", 3); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("mistyped values error", func(t *testing.T) {
		args := Args{"text": float64(7)}
		if _, err := args.RequireString("text"); err == nil {
			t.Error("expected type error")
		}
		args = Args{"level": "loud"}
		if _, err := args.RequireInt("level"); err == nil {
			t.Error("expected type error")
		}
	})
}
