package executor

import (
	"context"
	"sync/atomic"
	"time"

	"deskpilot/internal/goal"
	"deskpilot/pkg/log"
)

const logPrefix = "internal.executor"

// Input is the OS input-primitive collaborator the executor replays
// steps against.
type Input interface {
	PressKey(ctx context.Context, key string) error
	Hotkey(ctx context.Context, keys ...string) error
	TypeText(ctx context.Context, text string) error
	Click(ctx context.Context, x, y int, button string) error
	Scroll(ctx context.Context, clicks int) error
}

// PlanExecutor replays plans step by step. No decision-making: a
// failed step is logged and execution continues, the only early exit
// is a cooperative interrupt.
type PlanExecutor struct {
	input       Input
	l           log.Logger
	interrupted atomic.Bool
}

// New creates a PlanExecutor.
func New(input Input, l log.Logger) *PlanExecutor {
	return &PlanExecutor{input: input, l: l}
}

// Execute replays the plan. Returns true only when every step was
// attempted; false when interrupted. The interrupt flag is polled
// before each step, never preempted mid-step.
func (e *PlanExecutor) Execute(ctx context.Context, plan goal.Plan) bool {
	e.interrupted.Store(false)
	steps := plan.Steps()

	e.l.Infof(ctx, "%v executing plan: %s (%d steps)", logPrefix, plan.Description, len(steps))

	for i, step := range steps {
		if e.interrupted.Load() || ctx.Err() != nil {
			e.l.Infof(ctx, "%v plan interrupted at step %d/%d", logPrefix, i+1, len(steps))
			return false
		}

		if err := e.executeStep(ctx, step); err != nil {
			e.l.Warnf(ctx, "%v step %d/%d failed: %v", logPrefix, i+1, len(steps), err)
			// Some failures are recoverable; keep going.
		}
	}

	e.l.Infof(ctx, "%v plan completed: %s", logPrefix, plan.Description)
	return true
}

// Interrupt requests a cooperative stop of the in-flight execution.
// Safe to call from another goroutine.
func (e *PlanExecutor) Interrupt() {
	e.interrupted.Store(true)
}

func (e *PlanExecutor) executeStep(ctx context.Context, step goal.ActionStep) error {
	switch step.Type {
	case goal.StepKey:
		for _, key := range step.Keys {
			if err := e.input.PressKey(ctx, key); err != nil {
				return err
			}
		}
		return nil

	case goal.StepHotkey:
		return e.input.Hotkey(ctx, step.Keys...)

	case goal.StepTypeText:
		return e.input.TypeText(ctx, step.Text)

	case goal.StepWait:
		time.Sleep(time.Duration(step.WaitMS) * time.Millisecond)
		return nil

	case goal.StepClick:
		return e.input.Click(ctx, step.X, step.Y, step.Button)

	case goal.StepScroll:
		return e.input.Scroll(ctx, step.Clicks)
	}

	e.l.Warnf(ctx, "%v unknown step type: %s", logPrefix, step.Type)
	return nil
}
