package intent

// MatchQuality grades how a capability match was made. Diagnostics
// only, never used for routing decisions.
type MatchQuality int

const (
	MatchFuzzy MatchQuality = iota
	MatchKeyword
	MatchGeneric
	MatchSpecific
	MatchExact
)

func (q MatchQuality) String() string {
	switch q {
	case MatchExact:
		return "exact"
	case MatchSpecific:
		return "specific"
	case MatchGeneric:
		return "generic"
	case MatchKeyword:
		return "keyword"
	default:
		return "fuzzy"
	}
}

// RouteResult is the classifier's verdict for one utterance.
type RouteResult struct {
	Confidence          float64
	Function            string
	Args                map[string]any
	IsConversation      bool
	MatchType           string
	MatchQuality        MatchQuality
	RawCommand          string
	NeedsCodeGeneration bool

	// FromCache marks a verdict served from the local cache without
	// an LLM call.
	FromCache bool
}

// NewRouteResult returns r with its confidence clamped to [0.0, 1.0].
// All verdicts must be constructed through this.
func NewRouteResult(r RouteResult) RouteResult {
	if r.Confidence < 0.0 {
		r.Confidence = 0.0
	} else if r.Confidence > 1.0 {
		r.Confidence = 1.0
	}
	return r
}

// classifierVerdict is the wire shape the LLM is asked to return.
type classifierVerdict struct {
	Action   string         `json:"action"`
	ToolName string         `json:"tool_name"`
	Params   map[string]any `json:"params"`
}
