package function

import (
	"context"
	"fmt"
	"sync"

	"deskpilot/pkg/log"
)

const logPrefix = "internal.function"

// Executor dispatches capability invocations through a closed
// registry. Unknown names fail fast; no dynamic lookup.
type Executor struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	actions  Actions
	l        log.Logger
}

// New creates an Executor with the builtin handlers registered.
func New(actions Actions, l log.Logger) *Executor {
	e := &Executor{
		handlers: make(map[string]Handler),
		actions:  actions,
		l:        l,
	}
	e.registerBuiltins()
	return e
}

// Execute invokes a capability by name. The Result's OK flag is the
// sole success signal.
func (e *Executor) Execute(ctx context.Context, name string, args Args) Result {
	e.mu.RLock()
	handler, ok := e.handlers[name]
	e.mu.RUnlock()

	if !ok {
		e.l.Warnf(ctx, "%v unknown capability: %s", logPrefix, name)
		return Result{OK: false, Output: fmt.Sprintf("I don't know how to do '%s' yet.", name)}
	}

	e.l.Infof(ctx, "%v executing: %s args=%v", logPrefix, name, args)

	output, err := handler(ctx, args)
	if err != nil {
		e.l.Warnf(ctx, "%v %s failed: %v", logPrefix, name, err)
		return Result{OK: false, Output: fmt.Sprintf("Couldn't complete '%s': %v", name, err)}
	}
	return Result{OK: true, Output: output}
}

// Has reports whether a capability handler is registered.
func (e *Executor) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.handlers[name]
	return ok
}

// Register adds a handler for a learned capability. The name must not
// collide with an existing handler.
func (e *Executor) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("handler name is required")
	}
	if handler == nil {
		return fmt.Errorf("handler is required")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.handlers[name]; exists {
		return fmt.Errorf("handler already registered: %s", name)
	}
	e.handlers[name] = handler
	return nil
}
