package strategy

import (
	"fmt"
	"strings"

	"deskpilot/internal/goal"
)

// mediaKeys maps control actions to OS media keys.
var mediaKeys = map[string]string{
	"play":       "playpause",
	"pause":      "playpause",
	"play_pause": "playpause",
	"next":       "nexttrack",
	"previous":   "prevtrack",
	"prev":       "prevtrack",
	"stop":       "stop",
	"mute":       "volumemute",
}

// MediaKey handles play/pause/next/prev with OS-level media keys.
// Fastest path, so it is registered first.
type MediaKey struct{}

func (MediaKey) Name() string { return "media_key" }

func (MediaKey) Applicable(g goal.Goal, _ Context) bool {
	if g.Type != goal.ControlMedia {
		return false
	}
	_, ok := mediaKeys[strings.ToLower(g.Modifier("action"))]
	return ok
}

func (MediaKey) Plan(g goal.Goal, _ Context) goal.Plan {
	action := strings.ToLower(g.Modifier("action"))
	if action == "" {
		action = "play_pause"
	}
	key, ok := mediaKeys[action]
	if !ok {
		key = "playpause"
	}

	return goal.NewPlan(fmt.Sprintf("Media control: %s", action), g).
		Key(key).
		Build()
}

// Spotify opens Spotify and plays the requested content.
type Spotify struct{}

func (Spotify) Name() string { return "spotify" }

func (Spotify) Applicable(g goal.Goal, ctx Context) bool {
	if g.Type != goal.PlayMedia {
		return false
	}
	pref := strings.ToLower(g.Preference)
	if pref == "spotify" {
		return true
	}
	return pref == "" && ctx.Preference("music") == "spotify"
}

func (Spotify) Plan(g goal.Goal, _ Context) goal.Plan {
	b := goal.NewPlan(fmt.Sprintf("Play '%s' on Spotify", g.Content), g)

	// Launch via the app launcher
	b.Hotkey("win").
		Wait(300).
		TypeText("spotify").
		Wait(200).
		Key("enter").
		Wait(3000)

	if g.Content != "" {
		// In-app search and play first result
		b.Hotkey("ctrl", "l").
			Wait(200).
			TypeText(g.Content).
			Wait(300).
			Key("enter").
			Wait(1000).
			Key("enter")
	}

	return b.Teach("music", "spotify").Build()
}

// YouTube plays content through the browser.
type YouTube struct{}

func (YouTube) Name() string { return "youtube" }

func (YouTube) Applicable(g goal.Goal, _ Context) bool {
	if g.Type != goal.PlayMedia {
		return false
	}
	pref := strings.ToLower(g.Preference)
	if pref == "youtube" || pref == "yt" {
		return true
	}
	return strings.Contains(g.Modifier("type"), "video")
}

func (YouTube) Plan(g goal.Goal, ctx Context) goal.Plan {
	b := goal.NewPlan(fmt.Sprintf("Play '%s' on YouTube", g.Content), g)

	openBrowser(b, ctx)
	b.Hotkey("ctrl", "l").Wait(200)

	if g.Content != "" {
		b.TypeText("youtube.com/results?search_query=" + strings.ReplaceAll(g.Content, " ", "+"))
	} else {
		b.TypeText("youtube.com")
	}
	b.Key("enter").Wait(2000)

	if g.Content != "" {
		// Select the first result
		b.Key("tab").
			Wait(200).
			Key("enter")
	}

	return b.Teach("video", "youtube").Build()
}

// Netflix opens Netflix search in the browser.
type Netflix struct{}

func (Netflix) Name() string { return "netflix" }

func (Netflix) Applicable(g goal.Goal, _ Context) bool {
	return g.Type == goal.PlayMedia && strings.ToLower(g.Preference) == "netflix"
}

func (Netflix) Plan(g goal.Goal, ctx Context) goal.Plan {
	b := goal.NewPlan(fmt.Sprintf("Play '%s' on Netflix", g.Content), g)

	openBrowser(b, ctx)
	b.Hotkey("ctrl", "l").Wait(200)

	if g.Content != "" {
		b.TypeText("netflix.com/search?q=" + strings.ReplaceAll(g.Content, " ", "%20"))
	} else {
		b.TypeText("netflix.com")
	}
	b.Key("enter")

	return b.Teach("streaming", "netflix").Build()
}

// openBrowser appends the launch sequence for the user's browser.
func openBrowser(b *goal.PlanBuilder, ctx Context) {
	browser := ctx.Preference("browser")
	if browser == "" {
		browser = "chrome"
	}
	b.Hotkey("win").
		Wait(300).
		TypeText(browser).
		Wait(200).
		Key("enter").
		Wait(2000)
}
