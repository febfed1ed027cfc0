package function

import (
	"context"
	"fmt"
)

// Result is the explicit success contract for capability execution.
// OK is authoritative; Output is never scanned to infer failure.
type Result struct {
	OK     bool
	Output string
}

// Actions is the OS-primitive collaborator behind the builtin
// capabilities. Implementations are platform-specific and out of
// scope here.
type Actions interface {
	SetVolume(ctx context.Context, level int) error
	ChangeVolume(ctx context.Context, delta int) error
	MuteVolume(ctx context.Context) error
	UnmuteVolume(ctx context.Context) error

	SetBrightness(ctx context.Context, level int) error
	ChangeBrightness(ctx context.Context, delta int) error

	OpenApplication(ctx context.Context, name string) error
	CloseApplication(ctx context.Context, name string) error
	OpenURL(ctx context.Context, url string) error

	PressKey(ctx context.Context, key string) error
	Hotkey(ctx context.Context, keys ...string) error
	TypeText(ctx context.Context, text string) error
	Scroll(ctx context.Context, clicks int) error

	TakeScreenshot(ctx context.Context) (string, error)
	LockWorkstation(ctx context.Context) error
	SleepComputer(ctx context.Context) error
	SystemInfo(ctx context.Context) (string, error)
	RunCommand(ctx context.Context, command string) (string, error)
}

// Handler executes one capability with validated arguments.
type Handler func(ctx context.Context, args Args) (string, error)

// Args wraps the classifier's loosely-typed argument map with typed
// accessors so mismatches fail at the boundary.
type Args map[string]any

// String returns the named argument as a string, or fallback.
func (a Args) String(key, fallback string) string {
	v, ok := a[key]
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// Int returns the named argument as an int, or fallback. JSON numbers
// arrive as float64 and are accepted.
func (a Args) Int(key string, fallback int) int {
	v, ok := a[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return fallback
}

// RequireString returns the named argument or an error when missing
// or mistyped.
func (a Args) RequireString(key string) (string, error) {
	v, ok := a[key]
	if !ok {
		return "", fmt.Errorf("missing argument: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %s must be a string", key)
	}
	return s, nil
}

// RequireInt returns the named argument or an error when missing or
// mistyped.
func (a Args) RequireInt(key string) (int, error) {
	v, ok := a[key]
	if !ok {
		return 0, fmt.Errorf("missing argument: %s", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("argument %s must be a number", key)
}
