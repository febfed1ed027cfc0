package goal

// Plan is an ordered sequence of ActionSteps achieving one Goal.
// Read-only once built; created per goal, executed once, discarded.
type Plan struct {
	steps       []ActionStep
	Description string
	Goal        Goal

	// Preference is the success-gated learning hint, nil when the
	// plan teaches nothing.
	Preference *PreferenceHint

	// NeedsFunctionExecutor marks a plan whose goal requires
	// privileged operations beyond simulated input; the caller should
	// fall back to the function executor instead of replaying steps.
	NeedsFunctionExecutor bool
}

// Steps returns the plan's steps. Callers must not modify them.
func (p Plan) Steps() []ActionStep {
	return p.steps
}

// Len returns the number of steps.
func (p Plan) Len() int {
	return len(p.steps)
}

// PlanBuilder accumulates steps fluently. Build freezes the result:
// appending to the builder afterwards never mutates an already built
// plan.
type PlanBuilder struct {
	steps       []ActionStep
	description string
	goal        Goal
	preference  *PreferenceHint
	needsFnExec bool
}

// NewPlan starts a builder for the given goal.
func NewPlan(description string, g Goal) *PlanBuilder {
	return &PlanBuilder{description: description, goal: g}
}

// Key appends a key-press step (one press per key, in order).
func (b *PlanBuilder) Key(keys ...string) *PlanBuilder {
	return b.add(ActionStep{Type: StepKey, Keys: keys})
}

// Hotkey appends a key-combination step.
func (b *PlanBuilder) Hotkey(keys ...string) *PlanBuilder {
	return b.add(ActionStep{Type: StepHotkey, Keys: keys})
}

// TypeText appends a typing step.
func (b *PlanBuilder) TypeText(text string) *PlanBuilder {
	return b.add(ActionStep{Type: StepTypeText, Text: text})
}

// Wait appends a timed wait.
func (b *PlanBuilder) Wait(ms int) *PlanBuilder {
	return b.add(ActionStep{Type: StepWait, WaitMS: ms})
}

// Click appends a mouse click. Negative coordinates click at the
// current pointer position.
func (b *PlanBuilder) Click(x, y int, button string) *PlanBuilder {
	return b.add(ActionStep{Type: StepClick, X: x, Y: y, Button: button})
}

// Scroll appends a scroll step.
func (b *PlanBuilder) Scroll(clicks int) *PlanBuilder {
	return b.add(ActionStep{Type: StepScroll, Clicks: clicks})
}

// Teach records the preference a successful execution should commit.
func (b *PlanBuilder) Teach(category, app string) *PlanBuilder {
	b.preference = &PreferenceHint{Category: category, App: app}
	return b
}

// NeedsFunctionExecutor marks the plan for function-executor fallback.
func (b *PlanBuilder) NeedsFunctionExecutor() *PlanBuilder {
	b.needsFnExec = true
	return b
}

// Build freezes the accumulated steps into an immutable Plan.
func (b *PlanBuilder) Build() Plan {
	steps := make([]ActionStep, len(b.steps))
	copy(steps, b.steps)
	return Plan{
		steps:                 steps,
		Description:           b.description,
		Goal:                  b.goal,
		Preference:            b.preference,
		NeedsFunctionExecutor: b.needsFnExec,
	}
}

func (b *PlanBuilder) add(step ActionStep) *PlanBuilder {
	b.steps = append(b.steps, step)
	return b
}
