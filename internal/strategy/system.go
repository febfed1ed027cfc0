package strategy

import (
	"deskpilot/internal/goal"
)

// Volume handles coarse volume control with media keys. Exact levels
// need privileged system calls, so those defer to the function
// executor.
type Volume struct{}

func (Volume) Name() string { return "volume" }

func (Volume) Applicable(g goal.Goal, _ Context) bool {
	if g.Type != goal.SystemControl {
		return false
	}
	switch g.Modifier("control") {
	case "volume", "sound", "audio":
		return true
	}
	return false
}

func (Volume) Plan(g goal.Goal, _ Context) goal.Plan {
	b := goal.NewPlan("Volume control", g)

	switch g.Modifier("action") {
	case "mute":
		b.Key("volumemute")
	case "up":
		for i := 0; i < 5; i++ {
			b.Key("volumeup")
		}
	case "down":
		for i := 0; i < 5; i++ {
			b.Key("volumedown")
		}
	default:
		if _, ok := g.ModifierNumber("level"); ok {
			b.NeedsFunctionExecutor()
		}
	}

	return b.Build()
}

// Brightness cannot be driven by simulated input at all; it always
// defers to the function executor.
type Brightness struct{}

func (Brightness) Name() string { return "brightness" }

func (Brightness) Applicable(g goal.Goal, _ Context) bool {
	if g.Type != goal.SystemControl {
		return false
	}
	switch g.Modifier("control") {
	case "brightness", "screen":
		return true
	}
	return false
}

func (Brightness) Plan(g goal.Goal, _ Context) goal.Plan {
	return goal.NewPlan("Brightness control", g).
		NeedsFunctionExecutor().
		Build()
}
