// Package desktop ships a dry-run implementation of the OS-primitive
// collaborators. Real platform backends replace it at composition
// time; this one logs every primitive so the pipeline can run
// end to end without touching the host.
package desktop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"deskpilot/pkg/log"
)

const logPrefix = "internal.desktop"

type Simulator struct {
	l log.Logger
}

func NewSimulator(l log.Logger) *Simulator {
	return &Simulator{l: l}
}

func (s *Simulator) trace(ctx context.Context, format string, args ...any) {
	s.l.Infof(ctx, "%v "+format, append([]any{logPrefix}, args...)...)
}

// Input primitives for the plan executor.

func (s *Simulator) PressKey(ctx context.Context, key string) error {
	s.trace(ctx, "press key: %s", key)
	return nil
}

func (s *Simulator) Hotkey(ctx context.Context, keys ...string) error {
	s.trace(ctx, "hotkey: %s", strings.Join(keys, "+"))
	return nil
}

func (s *Simulator) TypeText(ctx context.Context, text string) error {
	s.trace(ctx, "type: %s", text)
	return nil
}

func (s *Simulator) Click(ctx context.Context, x, y int, button string) error {
	s.trace(ctx, "click %s at (%d, %d)", button, x, y)
	return nil
}

func (s *Simulator) Scroll(ctx context.Context, clicks int) error {
	s.trace(ctx, "scroll: %d", clicks)
	return nil
}

// System actions for the function executor.

func (s *Simulator) SetVolume(ctx context.Context, level int) error {
	s.trace(ctx, "set volume: %d", level)
	return nil
}

func (s *Simulator) ChangeVolume(ctx context.Context, delta int) error {
	s.trace(ctx, "change volume: %+d", delta)
	return nil
}

func (s *Simulator) MuteVolume(ctx context.Context) error {
	s.trace(ctx, "mute volume")
	return nil
}

func (s *Simulator) UnmuteVolume(ctx context.Context) error {
	s.trace(ctx, "unmute volume")
	return nil
}

func (s *Simulator) SetBrightness(ctx context.Context, level int) error {
	s.trace(ctx, "set brightness: %d", level)
	return nil
}

func (s *Simulator) ChangeBrightness(ctx context.Context, delta int) error {
	s.trace(ctx, "change brightness: %+d", delta)
	return nil
}

func (s *Simulator) OpenApplication(ctx context.Context, name string) error {
	s.trace(ctx, "open application: %s", name)
	return nil
}

func (s *Simulator) CloseApplication(ctx context.Context, name string) error {
	s.trace(ctx, "close application: %s", name)
	return nil
}

func (s *Simulator) OpenURL(ctx context.Context, url string) error {
	s.trace(ctx, "open url: %s", url)
	return nil
}

func (s *Simulator) TakeScreenshot(ctx context.Context) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405")))
	s.trace(ctx, "screenshot: %s", path)
	return path, nil
}

func (s *Simulator) LockWorkstation(ctx context.Context) error {
	s.trace(ctx, "lock workstation")
	return nil
}

func (s *Simulator) SleepComputer(ctx context.Context) error {
	s.trace(ctx, "sleep computer")
	return nil
}

func (s *Simulator) SystemInfo(ctx context.Context) (string, error) {
	s.trace(ctx, "system info")
	return fmt.Sprintf("OS: %s/%s, CPUs: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU()), nil
}

func (s *Simulator) RunCommand(ctx context.Context, command string) (string, error) {
	s.trace(ctx, "run command: %s", command)
	return fmt.Sprintf("Ran: %s", command), nil
}

// Clipboard fallback for the email assistant.

func (s *Simulator) Copy(ctx context.Context, text string) error {
	s.trace(ctx, "clipboard: %d bytes", len(text))
	return nil
}

// Run satisfies the code-generation runner. Generated code is logged,
// not executed.
func (s *Simulator) Run(ctx context.Context, code string) (string, error) {
	s.trace(ctx, "simulated code run (%d bytes)", len(code))
	return "Simulated execution only.", nil
}

// InstalledApps is the probe backing the context store's
// installed-app cache. The simulator reports a fixed set.
func (s *Simulator) InstalledApps(ctx context.Context) map[string]string {
	s.trace(ctx, "probing installed applications")
	return map[string]string{
		"chrome":     "chrome",
		"spotify":    "spotify",
		"notepad":    "notepad",
		"calculator": "calculator",
		"terminal":   "terminal",
	}
}
