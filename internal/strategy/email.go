package strategy

import (
	"strings"

	"deskpilot/internal/goal"
)

// Gmail opens the Gmail inbox in the browser.
type Gmail struct{}

func (Gmail) Name() string { return "gmail" }

func (Gmail) Applicable(g goal.Goal, ctx Context) bool {
	if g.Type != goal.CheckEmail && g.Type != goal.SendEmail {
		return false
	}
	pref := strings.ToLower(g.Preference)
	if pref == "gmail" || pref == "google" {
		return true
	}
	return pref == "" && ctx.Preference("email") == "gmail"
}

func (Gmail) Plan(g goal.Goal, ctx Context) goal.Plan {
	b := goal.NewPlan("Open Gmail", g)

	openBrowser(b, ctx)
	b.Hotkey("ctrl", "l").
		Wait(200).
		TypeText("mail.google.com").
		Key("enter")

	return b.Teach("email", "gmail").Build()
}
