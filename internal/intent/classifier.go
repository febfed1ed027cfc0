package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Classify maps one utterance to a RouteResult. Conversation is
// detected locally first; everything else costs one completion call.
func (c *Classifier) Classify(ctx context.Context, command string) RouteResult {
	command = strings.TrimSpace(command)

	c.l.Infof(ctx, "%v classifying: '%s'", logPrefix, command)

	if IsConversation(command) {
		c.l.Debug(ctx, logPrefix, " detected conversation intent")
		return NewRouteResult(RouteResult{
			Confidence:     conversationConfidence,
			IsConversation: true,
			MatchType:      "conversation",
			RawCommand:     command,
		})
	}

	cacheKey := strings.ToLower(command)
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			c.l.Debugf(ctx, "%v cache hit for '%s'", logPrefix, command)
			cached.FromCache = true
			return cached
		}
	}

	result, err := c.classifyWithLLM(ctx, command)
	if err != nil {
		c.l.Errorf(ctx, "%v classification error: %v", logPrefix, err)
		return NewRouteResult(RouteResult{
			Confidence:          failureConfidence,
			MatchType:           "none",
			RawCommand:          command,
			NeedsCodeGeneration: true,
		})
	}

	if c.cache != nil {
		c.cache.Add(cacheKey, result)
	}
	return result
}

func (c *Classifier) classifyWithLLM(ctx context.Context, command string) (RouteResult, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, c.toolsPrompt, command)

	completion, err := c.llm.Complete(ctx, prompt)
	if err != nil {
		return RouteResult{}, err
	}

	verdict, err := parseVerdict(completion)
	if err != nil {
		c.l.Warnf(ctx, "%v failed to parse classifier response: %v", logPrefix, err)
		return NewRouteResult(RouteResult{
			Confidence:          failureConfidence,
			MatchType:           "none",
			RawCommand:          command,
			NeedsCodeGeneration: true,
		}), nil
	}

	switch verdict.Action {
	case "CONVERSATION":
		return NewRouteResult(RouteResult{
			Confidence:     conversationConfidence,
			IsConversation: true,
			MatchType:      "llm_conversation",
			RawCommand:     command,
		}), nil

	case "TOOL":
		if verdict.ToolName != "" && c.catalog.Has(verdict.ToolName) {
			c.l.Infof(ctx, "%v matched tool: %s with params: %v", logPrefix, verdict.ToolName, verdict.Params)
			args := verdict.Params
			if args == nil {
				args = map[string]any{}
			}
			return NewRouteResult(RouteResult{
				Confidence:   toolMatchConfidence,
				Function:     verdict.ToolName,
				Args:         args,
				MatchType:    "llm_tool",
				MatchQuality: MatchSpecific,
				RawCommand:   command,
			}), nil
		}
		c.l.Warnf(ctx, "%v suggested unknown tool: %s", logPrefix, verdict.ToolName)
	}

	// GENERATE_CODE and anything unrecognized
	c.l.Info(ctx, logPrefix, " suggests code generation")
	return NewRouteResult(RouteResult{
		Confidence:          failureConfidence,
		MatchType:           "none",
		RawCommand:          command,
		NeedsCodeGeneration: true,
	}), nil
}

// parseVerdict decodes the classifier's JSON, tolerating markdown
// code fences around it.
func parseVerdict(raw string) (classifierVerdict, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			text = parts[1]
			text = strings.TrimPrefix(text, "json")
		}
	}
	text = strings.TrimSpace(text)

	var verdict classifierVerdict
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		return classifierVerdict{}, fmt.Errorf("invalid classifier JSON: %w", err)
	}
	return verdict, nil
}
