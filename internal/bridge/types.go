package bridge

// Outcome is what the bridge returns for one processed command.
// Response is always natural language, never a raw error.
type Outcome struct {
	Response string
	Success  bool
	UsedLLM  bool
}

// Stats are cumulative routing counters. They never affect control
// flow.
type Stats struct {
	LocalCommands       int `json:"local_commands"`
	MultiTask           int `json:"multi_task"`
	GoalDriven          int `json:"goal_driven"`
	GeminiFull          int `json:"gemini_full"`
	GeminiChat          int `json:"gemini_chat"`
	TokensSaved         int `json:"tokens_saved"`
	CapabilitiesLearned int `json:"capabilities_learned"`
}

type exchange struct {
	role    string
	content string
}

type goalFallback int

const (
	fallbackNone goalFallback = iota
	fallbackFunction
	fallbackCodegen
)
