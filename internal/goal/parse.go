package goal

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// goalPayload is the JSON shape the extractor asks the LLM for.
type goalPayload struct {
	GoalType   string         `json:"goal_type"`
	Content    string         `json:"content"`
	Preference string         `json:"preference"`
	Modifiers  map[string]any `json:"modifiers"`
}

var (
	goalTypeRe   = regexp.MustCompile(`"goal_type"\s*:\s*"([^"]+)"`)
	contentRe    = regexp.MustCompile(`"content"\s*:\s*"([^"]*)"`)
	preferenceRe = regexp.MustCompile(`"preference"\s*:\s*"([^"]*)"`)
)

// stripFences removes markdown code fences around a completion.
func stripFences(text string) string {
	if strings.Contains(text, "```json") {
		parts := strings.SplitN(text, "```json", 2)
		text = strings.SplitN(parts[1], "```", 2)[0]
	} else if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) >= 2 {
			text = parts[1]
			if strings.HasPrefix(strings.ToLower(text), "json") {
				text = text[4:]
			}
		}
	}
	return strings.TrimSpace(text)
}

// parseGoalPayload decodes one goal object. Fences are stripped, then
// the outermost brace span is tried, then individual fields are
// recovered by regex. Returns an error only when nothing at all can
// be salvaged.
func parseGoalPayload(raw string) (goalPayload, error) {
	text := stripFences(raw)

	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		text = text[start : end+1]
	}

	var payload goalPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return payload, nil
	}

	// Regex recovery against the unmodified completion
	if m := goalTypeRe.FindStringSubmatch(raw); m != nil {
		payload = goalPayload{GoalType: m[1], Modifiers: map[string]any{}}
		if cm := contentRe.FindStringSubmatch(raw); cm != nil {
			payload.Content = cm[1]
		}
		if pm := preferenceRe.FindStringSubmatch(raw); pm != nil {
			payload.Preference = pm[1]
		}
		return payload, nil
	}

	return goalPayload{}, fmt.Errorf("no goal object in completion")
}

// parseGoalBatch decodes a JSON array of goal objects. A response
// wrapped in {"goals": [...]} is also accepted.
func parseGoalBatch(raw string) ([]goalPayload, error) {
	text := stripFences(raw)

	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		text = text[start : end+1]
	}

	var payloads []goalPayload
	if err := json.Unmarshal([]byte(text), &payloads); err == nil {
		return payloads, nil
	}

	var wrapped struct {
		Goals []goalPayload `json:"goals"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &wrapped); err == nil && wrapped.Goals != nil {
		return wrapped.Goals, nil
	}

	return nil, fmt.Errorf("no goal array in completion")
}
