package goal

// GoalType is the fixed enumeration of semantic intents.
type GoalType string

const (
	// Media
	PlayMedia    GoalType = "PLAY_MEDIA"
	ControlMedia GoalType = "CONTROL_MEDIA"

	// Communication
	CheckEmail  GoalType = "CHECK_EMAIL"
	SendEmail   GoalType = "SEND_EMAIL"
	SendMessage GoalType = "SEND_MESSAGE"

	// Applications
	OpenApp  GoalType = "OPEN_APP"
	CloseApp GoalType = "CLOSE_APP"

	// System
	SystemControl GoalType = "SYSTEM_CONTROL"
	FileOperation GoalType = "FILE_OPERATION"

	// Web
	WebSearch   GoalType = "WEB_SEARCH"
	OpenWebsite GoalType = "OPEN_WEBSITE"

	// Productivity
	CreateContent GoalType = "CREATE_CONTENT"

	// No action needed
	Conversation GoalType = "CONVERSATION"

	// Needs code generation
	Unknown GoalType = "UNKNOWN"
)

var validTypes = map[GoalType]bool{
	PlayMedia: true, ControlMedia: true,
	CheckEmail: true, SendEmail: true, SendMessage: true,
	OpenApp: true, CloseApp: true,
	SystemControl: true, FileOperation: true,
	WebSearch: true, OpenWebsite: true,
	CreateContent: true, Conversation: true, Unknown: true,
}

// ParseType maps a string to a GoalType, defaulting to Unknown.
func ParseType(s string) GoalType {
	t := GoalType(s)
	if validTypes[t] {
		return t
	}
	return Unknown
}

// Goal is the app-agnostic semantic intent behind an utterance. It
// says what the user wants, never how to achieve it. Immutable after
// construction.
type Goal struct {
	Type       GoalType
	Content    string         // what to play/search/send
	Preference string         // which app/service, if the user named one
	Modifiers  map[string]any // action verbs, numeric levels
	RawCommand string
	Confidence float64
}

// Modifier returns the named modifier as a string, or "" if absent.
func (g Goal) Modifier(key string) string {
	v, ok := g.Modifiers[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// ModifierNumber returns the named modifier as a number.
func (g Goal) ModifierNumber(key string) (float64, bool) {
	v, ok := g.Modifiers[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// StepType tags one atomic UI action.
type StepType string

const (
	StepKey      StepType = "KEY"
	StepHotkey   StepType = "HOTKEY"
	StepTypeText StepType = "TYPE"
	StepWait     StepType = "WAIT"
	StepClick    StepType = "CLICK"
	StepScroll   StepType = "SCROLL"
)

// ActionStep is one atomic UI action. Immutable value object; only
// the fields relevant to the step's type are meaningful.
type ActionStep struct {
	Type StepType

	// KEY and HOTKEY
	Keys []string

	// TYPE
	Text string

	// WAIT
	WaitMS int

	// CLICK; negative X/Y means "at the current pointer position"
	X      int
	Y      int
	Button string

	// SCROLL; positive scrolls up, negative down
	Clicks int
}

// PreferenceHint names the preference a successful execution of a
// plan should teach the context store. Committed by the caller only
// after the plan actually succeeds.
type PreferenceHint struct {
	Category string
	App      string
}
