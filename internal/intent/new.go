package intent

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"deskpilot/internal/catalog"
	"deskpilot/pkg/log"
)

// Completer is the completion-service dependency: one prompt in, one
// text completion out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Classifier maps free text to a conversation, capability, or
// code-generation verdict using a single LLM call.
type Classifier struct {
	catalog *catalog.Catalog
	llm     Completer
	cache   *lru.Cache[string, RouteResult]
	l       log.Logger

	toolsPrompt string
}

// New creates a Classifier. cacheSize bounds the verdict cache; zero
// or negative disables caching.
func New(cat *catalog.Catalog, llm Completer, cacheSize int, l log.Logger) (*Classifier, error) {
	c := &Classifier{
		catalog:     cat,
		llm:         llm,
		l:           l,
		toolsPrompt: cat.PromptList(),
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, RouteResult](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create verdict cache: %w", err)
		}
		c.cache = cache
	}
	return c, nil
}
