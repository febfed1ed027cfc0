package strategy

import (
	"context"

	"deskpilot/internal/goal"
	"deskpilot/pkg/log"
)

const logPrefix = "internal.strategy"

// Planner routes a goal to the first applicable strategy. The
// registration order encodes priority.
type Planner struct {
	strategies []Strategy
	store      Context
	l          log.Logger
}

// New creates a Planner with the default strategy set: fast media-key
// control first, then named services, then generic app/web handling.
func New(store Context, l log.Logger) *Planner {
	return NewWithStrategies(store, l, []Strategy{
		MediaKey{},

		Spotify{},
		YouTube{},
		Netflix{},

		Gmail{},

		Volume{},
		Brightness{},

		OpenApp{},
		CloseApp{},
		WebSearch{},
		OpenWebsite{},
	})
}

// NewWithStrategies creates a Planner with an explicit strategy list.
func NewWithStrategies(store Context, l log.Logger, strategies []Strategy) *Planner {
	return &Planner{strategies: strategies, store: store, l: l}
}

// Plan returns the first applicable strategy's plan, or false when no
// strategy can handle the goal.
func (p *Planner) Plan(ctx context.Context, g goal.Goal) (goal.Plan, bool) {
	for _, s := range p.strategies {
		if s.Applicable(g, p.store) {
			p.l.Infof(ctx, "%v using strategy: %s", logPrefix, s.Name())
			return s.Plan(g, p.store), true
		}
	}

	p.l.Warnf(ctx, "%v no strategy for goal: %s", logPrefix, g.Type)
	return goal.Plan{}, false
}
