package strategy

import (
	"fmt"

	"deskpilot/internal/goal"
)

// OpenApp launches any application through the app launcher.
type OpenApp struct{}

func (OpenApp) Name() string { return "open_app" }

func (OpenApp) Applicable(g goal.Goal, _ Context) bool {
	return g.Type == goal.OpenApp
}

func (OpenApp) Plan(g goal.Goal, _ Context) goal.Plan {
	appName := g.Content
	if appName == "" {
		appName = g.Preference
	}

	return goal.NewPlan(fmt.Sprintf("Open %s", appName), g).
		Hotkey("win").
		Wait(300).
		TypeText(appName).
		Wait(300).
		Key("enter").
		Build()
}

// CloseApp closes the focused application window.
type CloseApp struct{}

func (CloseApp) Name() string { return "close_app" }

func (CloseApp) Applicable(g goal.Goal, _ Context) bool {
	return g.Type == goal.CloseApp
}

func (CloseApp) Plan(g goal.Goal, _ Context) goal.Plan {
	return goal.NewPlan(fmt.Sprintf("Close %s", g.Content), g).
		Hotkey("alt", "f4").
		Build()
}
