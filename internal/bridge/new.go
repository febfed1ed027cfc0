package bridge

import (
	"context"
	"sync"

	"deskpilot/internal/catalog"
	"deskpilot/internal/email"
	"deskpilot/internal/function"
	"deskpilot/internal/goal"
	"deskpilot/internal/intent"
	"deskpilot/internal/multitask"
	"deskpilot/pkg/log"
)

// Classifier maps free text to a routing verdict.
type Classifier interface {
	Classify(ctx context.Context, command string) intent.RouteResult
}

// Extractor turns commands into semantic Goals, singly or in batch.
type Extractor interface {
	Extract(ctx context.Context, command string) goal.Goal
	ExtractBatch(ctx context.Context, commands []string) []goal.Goal
}

// Planner produces a human action plan for a goal, or reports that no
// strategy applies.
type Planner interface {
	Plan(ctx context.Context, g goal.Goal) (goal.Plan, bool)
}

// PlanRunner replays a plan's steps through simulated input.
type PlanRunner interface {
	Execute(ctx context.Context, plan goal.Plan) bool
}

// FunctionRunner executes named capabilities and accepts learned ones.
type FunctionRunner interface {
	Execute(ctx context.Context, name string, args function.Args) function.Result
	Register(name string, handler function.Handler) error
}

// Store is the learned-preference and history sink.
type Store interface {
	UpdatePreference(ctx context.Context, category, app string)
	AddRecentCommand(ctx context.Context, command string)
}

// Emailer drafts and delivers emails behind the confirmation gate.
type Emailer interface {
	GenerateDraft(ctx context.Context, instruction, recipient string) (email.Draft, error)
	Preview(d email.Draft) string
	Deliver(ctx context.Context, d email.Draft) (string, bool)
}

// CodeGenerator is the last-resort tier.
type CodeGenerator interface {
	Generate(ctx context.Context, command string) (string, error)
	Run(ctx context.Context, code string) (string, bool)
}

// Completer is the chat collaborator for conversational commands.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	HighConfidence float64
	LowConfidence  float64
}

// Bridge is the router: one command in, one Outcome out, decided
// through a fixed-priority tier order.
type Bridge struct {
	mu sync.Mutex

	classifier Classifier
	extractor  Extractor
	planner    Planner
	planExec   PlanRunner
	funcExec   FunctionRunner
	store      Store
	emailer    Emailer
	generator  CodeGenerator
	chat       Completer
	catalog    *catalog.Catalog
	multi      *multitask.Handler
	cfg        Config
	l          log.Logger

	pending *email.Draft
	history []exchange
	stats   Stats
}

func New(
	classifier Classifier,
	extractor Extractor,
	planner Planner,
	planExec PlanRunner,
	funcExec FunctionRunner,
	store Store,
	emailer Emailer,
	generator CodeGenerator,
	chat Completer,
	cat *catalog.Catalog,
	cfg Config,
	l log.Logger,
) *Bridge {
	b := &Bridge{
		classifier: classifier,
		extractor:  extractor,
		planner:    planner,
		planExec:   planExec,
		funcExec:   funcExec,
		store:      store,
		emailer:    emailer,
		generator:  generator,
		chat:       chat,
		catalog:    cat,
		cfg:        cfg,
		l:          l,
	}
	b.multi = multitask.New(b, extractor, l)
	return b
}

// Stats returns a snapshot of the routing counters.
func (b *Bridge) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// ClearHistory drops the conversation memory.
func (b *Bridge) ClearHistory() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = nil
}

// HistoryLen reports the number of stored conversation exchanges.
func (b *Bridge) HistoryLen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.history)
}
