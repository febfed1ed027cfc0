package strategy

import "deskpilot/internal/goal"

// Context is the slice of the context store a strategy may consult.
type Context interface {
	Preference(category string) string
	IsInstalled(appName string) bool
}

// Strategy decides whether it can achieve a goal and, if so, how.
// Plans record preference hints instead of writing them; the caller
// commits a hint only after the plan executes successfully.
type Strategy interface {
	Name() string
	Applicable(g goal.Goal, ctx Context) bool
	Plan(g goal.Goal, ctx Context) goal.Plan
}
