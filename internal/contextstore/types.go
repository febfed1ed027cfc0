package contextstore

// State is the persisted record of what the assistant remembers
// about the user's machine and habits. Unknown keys in the file are
// ignored on load; missing keys keep their defaults.
type State struct {
	// Current state
	ActiveApp   string   `json:"active_app"`
	RunningApps []string `json:"running_apps"`

	// Last-used app per category
	LastMediaApp    string `json:"last_media_app"`
	LastVideoApp    string `json:"last_video_app"`
	LastEmailSource string `json:"last_email_source"`
	LastBrowser     string `json:"last_browser"`

	// Learned preferences
	PreferredMusicApp     string `json:"preferred_music_app"`
	PreferredVideoApp     string `json:"preferred_video_app"`
	PreferredStreamingApp string `json:"preferred_streaming_app"`
	PreferredEmailApp     string `json:"preferred_email_app"`

	// Installed apps cache, name -> path
	InstalledApps map[string]string `json:"installed_apps"`

	// Bounded most-recent command list
	RecentCommands []string `json:"recent_commands"`

	LastUpdated string `json:"last_updated"`
}

// maxRecentCommands bounds the recent-commands list.
const maxRecentCommands = 20

// defaultState returns the state used before anything is learned.
func defaultState() State {
	return State{
		LastMediaApp:          "spotify",
		LastVideoApp:          "youtube",
		LastEmailSource:       "gmail",
		LastBrowser:           "chrome",
		PreferredMusicApp:     "spotify",
		PreferredVideoApp:     "youtube",
		PreferredStreamingApp: "netflix",
		PreferredEmailApp:     "gmail",
		InstalledApps:         map[string]string{},
	}
}
