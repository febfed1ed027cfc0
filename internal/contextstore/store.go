package contextstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"deskpilot/pkg/log"
)

const logPrefix = "internal.contextstore"

// Store owns the persisted State. Every mutation is written to disk
// immediately; a crash loses at most the latest update.
type Store struct {
	mu    sync.Mutex
	path  string
	state State
	l     log.Logger
}

// New loads the store from path, falling back to defaults when the
// file is missing or unreadable.
func New(path string, l log.Logger) *Store {
	s := &Store{path: path, state: defaultState(), l: l}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.Warnf(context.Background(), "%v could not load context: %v", logPrefix, err)
		}
		return s
	}

	// Unmarshal over the defaults so missing keys keep them.
	if err := json.Unmarshal(data, &s.state); err != nil {
		l.Warnf(context.Background(), "%v could not parse context file: %v", logPrefix, err)
		s.state = defaultState()
	}
	if s.state.InstalledApps == nil {
		s.state.InstalledApps = map[string]string{}
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.RunningApps = append([]string(nil), s.state.RunningApps...)
	state.RecentCommands = append([]string(nil), s.state.RecentCommands...)
	state.InstalledApps = make(map[string]string, len(s.state.InstalledApps))
	for k, v := range s.state.InstalledApps {
		state.InstalledApps[k] = v
	}
	return state
}

// Preference returns the learned preference for a category.
func (s *Store) Preference(category string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch category {
	case "music":
		return s.state.PreferredMusicApp
	case "video":
		return s.state.PreferredVideoApp
	case "streaming":
		return s.state.PreferredStreamingApp
	case "email":
		return s.state.PreferredEmailApp
	case "browser":
		return s.state.LastBrowser
	}
	return ""
}

// UpdatePreference records a preference after a successful use. The
// caller gates this on actual execution success.
func (s *Store) UpdatePreference(ctx context.Context, category, app string) {
	s.mu.Lock()

	switch category {
	case "music":
		s.state.PreferredMusicApp = app
		s.state.LastMediaApp = app
	case "video":
		s.state.PreferredVideoApp = app
		s.state.LastVideoApp = app
	case "streaming":
		s.state.PreferredStreamingApp = app
	case "email":
		s.state.PreferredEmailApp = app
		s.state.LastEmailSource = app
	case "browser":
		s.state.LastBrowser = app
	default:
		s.mu.Unlock()
		s.l.Warnf(ctx, "%v unknown preference category: %s", logPrefix, category)
		return
	}

	s.state.LastUpdated = time.Now().Format(time.RFC3339)
	s.mu.Unlock()

	s.save(ctx)
}

// AddRecentCommand appends to the bounded recent-commands list.
func (s *Store) AddRecentCommand(ctx context.Context, command string) {
	s.mu.Lock()
	s.state.RecentCommands = append(s.state.RecentCommands, command)
	if n := len(s.state.RecentCommands); n > maxRecentCommands {
		s.state.RecentCommands = s.state.RecentCommands[n-maxRecentCommands:]
	}
	s.mu.Unlock()

	s.save(ctx)
}

// SetInstalledApps replaces the installed-apps cache.
func (s *Store) SetInstalledApps(ctx context.Context, apps map[string]string) {
	s.mu.Lock()
	s.state.InstalledApps = make(map[string]string, len(apps))
	for k, v := range apps {
		s.state.InstalledApps[k] = v
	}
	s.mu.Unlock()

	s.save(ctx)
}

// IsInstalled reports whether an app is in the installed cache.
func (s *Store) IsInstalled(appName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.InstalledApps[appName]
	return ok
}

func (s *Store) save(ctx context.Context) {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.Unlock()
	if err != nil {
		s.l.Errorf(ctx, "%v could not marshal context: %v", logPrefix, err)
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.l.Errorf(ctx, "%v could not create context dir: %v", logPrefix, err)
			return
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.l.Errorf(ctx, "%v could not save context: %v", logPrefix, err)
	}
}

// Path returns the on-disk location, mainly for diagnostics.
func (s *Store) Path() string {
	return s.path
}
