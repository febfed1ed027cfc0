package catalog

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected builtin capabilities")
	}

	cap, ok := c.Get("set_system_volume")
	if !ok {
		t.Fatal("expected set_system_volume to be registered")
	}
	if cap.Params["level"] == "" {
		t.Error("expected level param hint")
	}
}

func TestRegister(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("registers learned capability", func(t *testing.T) {
		err := c.Register(Capability{
			Name:        "toggle_dark_mode",
			Description: "Toggle dark mode",
			Params:      map[string]string{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.Has("toggle_dark_mode") {
			t.Error("expected capability to be registered")
		}
		if c.LearnedCount() != 1 {
			t.Errorf("expected 1 learned capability, got %d", c.LearnedCount())
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		err := c.Register(Capability{Name: "set_system_volume"})
		if err == nil {
			t.Error("expected error for duplicate name")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := c.Register(Capability{})
		if err == nil {
			t.Error("expected error for empty name")
		}
	})
}

func TestPromptList(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := c.PromptList()
	if !strings.Contains(list, "- set_system_volume: Set system volume to a specific level | params: level: int (0-100)") {
		t.Errorf("prompt list missing parameterized entry:\n%s", list)
	}
	if !strings.Contains(list, "- get_time: Get current time | params: none") {
		t.Errorf("prompt list missing parameterless entry:\n%s", list)
	}
	if lines := strings.Split(list, "\n"); len(lines) != c.Len() {
		t.Errorf("expected %d lines, got %d", c.Len(), len(lines))
	}
}
