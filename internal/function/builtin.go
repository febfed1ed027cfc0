package function

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// registerBuiltins wires the builtin capability names to their typed
// handlers over the Actions collaborator.
func (e *Executor) registerBuiltins() {
	a := e.actions

	// Volume
	e.handlers["set_system_volume"] = func(ctx context.Context, args Args) (string, error) {
		level, err := args.RequireInt("level")
		if err != nil {
			return "", err
		}
		if level < 0 || level > 100 {
			return "", fmt.Errorf("level must be between 0 and 100")
		}
		if err := a.SetVolume(ctx, level); err != nil {
			return "", err
		}
		return fmt.Sprintf("Volume set to %d%%.", level), nil
	}
	e.handlers["mute_system_volume"] = func(ctx context.Context, _ Args) (string, error) {
		return "Muted.", a.MuteVolume(ctx)
	}
	e.handlers["unmute_system_volume"] = func(ctx context.Context, _ Args) (string, error) {
		return "Unmuted.", a.UnmuteVolume(ctx)
	}
	e.handlers["increase_volume"] = func(ctx context.Context, args Args) (string, error) {
		return "Volume up.", a.ChangeVolume(ctx, args.Int("change", 10))
	}
	e.handlers["decrease_volume"] = func(ctx context.Context, args Args) (string, error) {
		return "Volume down.", a.ChangeVolume(ctx, args.Int("change", -10))
	}

	// Brightness
	e.handlers["set_brightness"] = func(ctx context.Context, args Args) (string, error) {
		level, err := args.RequireInt("level")
		if err != nil {
			return "", err
		}
		if level < 0 || level > 100 {
			return "", fmt.Errorf("level must be between 0 and 100")
		}
		if err := a.SetBrightness(ctx, level); err != nil {
			return "", err
		}
		return fmt.Sprintf("Brightness set to %d%%.", level), nil
	}
	e.handlers["increase_brightness"] = func(ctx context.Context, args Args) (string, error) {
		return "Brightness up.", a.ChangeBrightness(ctx, args.Int("change", 20))
	}
	e.handlers["decrease_brightness"] = func(ctx context.Context, args Args) (string, error) {
		return "Brightness down.", a.ChangeBrightness(ctx, args.Int("change", -20))
	}

	// Media services
	e.handlers["play_youtube"] = func(ctx context.Context, args Args) (string, error) {
		query := args.String("query", "")
		target := "https://youtube.com"
		if query != "" {
			target = "https://youtube.com/results?search_query=" + url.QueryEscape(query)
		}
		if err := a.OpenURL(ctx, target); err != nil {
			return "", err
		}
		if query == "" {
			return "Opened YouTube.", nil
		}
		return fmt.Sprintf("Searching YouTube for %s.", query), nil
	}
	e.handlers["play_spotify"] = func(ctx context.Context, args Args) (string, error) {
		query := args.String("query", "")
		target := "https://open.spotify.com"
		if query != "" {
			target = "https://open.spotify.com/search/" + url.PathEscape(query)
		}
		if err := a.OpenURL(ctx, target); err != nil {
			return "", err
		}
		return "Opened Spotify.", nil
	}

	// Email
	e.handlers["open_email"] = func(ctx context.Context, _ Args) (string, error) {
		return "Opened your inbox.", a.OpenURL(ctx, "https://mail.google.com")
	}

	// Applications
	e.handlers["open_application"] = func(ctx context.Context, args Args) (string, error) {
		name, err := args.RequireString("app_name")
		if err != nil {
			return "", err
		}
		if err := a.OpenApplication(ctx, name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Opened %s.", name), nil
	}
	e.handlers["close_application"] = func(ctx context.Context, args Args) (string, error) {
		name, err := args.RequireString("app_name")
		if err != nil {
			return "", err
		}
		if err := a.CloseApplication(ctx, name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Closed %s.", name), nil
	}

	// Files
	e.handlers["open_file_explorer"] = func(ctx context.Context, _ Args) (string, error) {
		return "Opened file explorer.", a.OpenApplication(ctx, "explorer")
	}
	e.handlers["create_folder"] = func(ctx context.Context, args Args) (string, error) {
		name, err := args.RequireString("name")
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(name, 0o755); err != nil {
			return "", err
		}
		return fmt.Sprintf("Created folder %s.", name), nil
	}
	e.handlers["create_file"] = func(ctx context.Context, args Args) (string, error) {
		name, err := args.RequireString("file_name")
		if err != nil {
			return "", err
		}
		content := args.String("content", "")
		if dir := filepath.Dir(name); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", err
			}
		}
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			return "", err
		}
		return fmt.Sprintf("Created file %s.", name), nil
	}

	// System
	e.handlers["take_screenshot"] = func(ctx context.Context, _ Args) (string, error) {
		path, err := a.TakeScreenshot(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Screenshot saved to %s.", path), nil
	}
	e.handlers["lock_workstation"] = func(ctx context.Context, _ Args) (string, error) {
		return "Locked.", a.LockWorkstation(ctx)
	}
	e.handlers["system_info"] = func(ctx context.Context, _ Args) (string, error) {
		return a.SystemInfo(ctx)
	}
	e.handlers["sleep_computer"] = func(ctx context.Context, _ Args) (string, error) {
		return "Going to sleep.", a.SleepComputer(ctx)
	}

	// Time/date
	e.handlers["get_time"] = func(_ context.Context, _ Args) (string, error) {
		return time.Now().Format("It's 3:04 PM."), nil
	}
	e.handlers["get_date"] = func(_ context.Context, _ Args) (string, error) {
		return time.Now().Format("Today is Monday, January 2, 2006."), nil
	}

	// Web
	e.handlers["google_search"] = func(ctx context.Context, args Args) (string, error) {
		query, err := args.RequireString("query")
		if err != nil {
			return "", err
		}
		if err := a.OpenURL(ctx, "https://google.com/search?q="+url.QueryEscape(query)); err != nil {
			return "", err
		}
		return fmt.Sprintf("Searching for %s.", query), nil
	}
	e.handlers["open_website"] = func(ctx context.Context, args Args) (string, error) {
		target, err := args.RequireString("url")
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(target, "http") {
			target = "https://" + target
		}
		if err := a.OpenURL(ctx, target); err != nil {
			return "", err
		}
		return fmt.Sprintf("Opened %s.", target), nil
	}
	e.handlers["get_weather"] = func(ctx context.Context, args Args) (string, error) {
		query := "weather"
		if loc := args.String("location", ""); loc != "" {
			query = "weather " + loc
		}
		if err := a.OpenURL(ctx, "https://google.com/search?q="+url.QueryEscape(query)); err != nil {
			return "", err
		}
		return "Here's the weather.", nil
	}

	// Media control
	e.handlers["play_media"] = mediaKeyHandler(a, "playpause", "Playing.")
	e.handlers["pause_media"] = mediaKeyHandler(a, "playpause", "Paused.")
	e.handlers["stop_media"] = mediaKeyHandler(a, "stop", "Stopped.")
	e.handlers["next_track"] = mediaKeyHandler(a, "nexttrack", "Next track.")
	e.handlers["previous_track"] = mediaKeyHandler(a, "prevtrack", "Previous track.")

	// Keyboard/mouse
	e.handlers["type_text"] = func(ctx context.Context, args Args) (string, error) {
		text, err := args.RequireString("text")
		if err != nil {
			return "", err
		}
		return "Typed.", a.TypeText(ctx, text)
	}
	e.handlers["press_key"] = func(ctx context.Context, args Args) (string, error) {
		key, err := args.RequireString("key")
		if err != nil {
			return "", err
		}
		return "Done.", a.PressKey(ctx, key)
	}
	e.handlers["hotkey"] = func(ctx context.Context, args Args) (string, error) {
		keys, err := args.RequireString("keys")
		if err != nil {
			return "", err
		}
		parts := strings.Split(keys, "+")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return "Done.", a.Hotkey(ctx, parts...)
	}
	e.handlers["scroll"] = func(ctx context.Context, args Args) (string, error) {
		return "Scrolled.", a.Scroll(ctx, args.Int("clicks", 3))
	}

	// Windows
	e.handlers["minimize_all_windows"] = func(ctx context.Context, _ Args) (string, error) {
		return "Showing desktop.", a.Hotkey(ctx, "win", "d")
	}
	e.handlers["switch_window"] = func(ctx context.Context, _ Args) (string, error) {
		return "Switched.", a.Hotkey(ctx, "alt", "tab")
	}
	e.handlers["close_window"] = func(ctx context.Context, _ Args) (string, error) {
		return "Closed.", a.Hotkey(ctx, "alt", "f4")
	}

	// Terminal
	e.handlers["open_terminal"] = func(ctx context.Context, _ Args) (string, error) {
		return "Opened terminal.", a.OpenApplication(ctx, "terminal")
	}
	e.handlers["run_terminal_command"] = func(ctx context.Context, args Args) (string, error) {
		command, err := args.RequireString("command")
		if err != nil {
			return "", err
		}
		return a.RunCommand(ctx, command)
	}

	// Calculator
	e.handlers["open_calculator"] = func(ctx context.Context, _ Args) (string, error) {
		return "Opened calculator.", a.OpenApplication(ctx, "calculator")
	}
}

func mediaKeyHandler(a Actions, key, confirmation string) Handler {
	return func(ctx context.Context, _ Args) (string, error) {
		if err := a.PressKey(ctx, key); err != nil {
			return "", err
		}
		return confirmation, nil
	}
}
