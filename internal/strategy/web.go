package strategy

import (
	"fmt"
	"strings"

	"deskpilot/internal/goal"
)

// WebSearch searches the web in the browser.
type WebSearch struct{}

func (WebSearch) Name() string { return "web_search" }

func (WebSearch) Applicable(g goal.Goal, _ Context) bool {
	return g.Type == goal.WebSearch
}

func (WebSearch) Plan(g goal.Goal, ctx Context) goal.Plan {
	b := goal.NewPlan(fmt.Sprintf("Search: %s", g.Content), g)

	openBrowser(b, ctx)
	b.Hotkey("ctrl", "l").
		Wait(200).
		TypeText("google.com/search?q=" + strings.ReplaceAll(g.Content, " ", "+")).
		Key("enter")

	return b.Build()
}

// OpenWebsite navigates to a specific URL.
type OpenWebsite struct{}

func (OpenWebsite) Name() string { return "open_website" }

func (OpenWebsite) Applicable(g goal.Goal, _ Context) bool {
	return g.Type == goal.OpenWebsite
}

func (OpenWebsite) Plan(g goal.Goal, ctx Context) goal.Plan {
	url := g.Content
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}

	b := goal.NewPlan(fmt.Sprintf("Open %s", url), g)

	openBrowser(b, ctx)
	b.Hotkey("ctrl", "l").
		Wait(200).
		TypeText(url).
		Key("enter")

	return b.Build()
}
