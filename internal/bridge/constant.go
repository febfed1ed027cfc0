package bridge

const logPrefix = "internal.bridge"

const draftEmailFunction = "draft_email"

// Token estimates for routing that avoided a paid completion call.
// Observability only.
const (
	tokensSavedLocal      = 500
	tokensSavedGoalDriven = 300
)

const (
	maxHistory       = 20
	historyWindow    = 10
	maxResponseWords = 500
)

var affirmativeWords = []string{"yes", "send", "confirm", "send it", "okay", "ok", "go ahead"}

var negativeWords = []string{"no", "cancel", "don't", "discard", "stop"}

var briefKeywords = []string{
	"briefly", "short", "quick", "tl;dr", "in a nutshell",
	"summarize", "one sentence", "keep it short",
}

var detailedKeywords = []string{
	"in detail", "detailed", "explain fully", "elaborate",
	"comprehensive", "thorough", "tell me everything",
}

const briefInstruction = "\n\nRESPONSE LENGTH: The user wants a BRIEF answer. Keep it to 1-3 sentences maximum. Be concise."

const detailedInstruction = "\n\nRESPONSE LENGTH: The user wants a DETAILED answer. Provide comprehensive information with examples if relevant."

const balancedInstruction = "\n\nRESPONSE LENGTH: Provide a balanced response, informative but not overly long. 3-5 sentences for simple questions, more for complex topics."

const truncationNotice = "\n\n[Response truncated - full answer available in conversation history]"

const conversationPromptTemplate = `You are a helpful desktop assistant with these characteristics:

PERSONALITY:
- Polite, attentive, and warm
- Knowledgeable across many topics
- Proactive in offering help and suggestions
- Remembers context from previous messages in the conversation

CONVERSATION STYLE:
- Be conversational and engaging, not robotic
- Provide informative responses when appropriate
- Ask follow-up questions to continue the dialogue when relevant
- Use natural language, avoid being too formal or stiff
%s

MEMORY & CONTEXT:
You remember this conversation:
%s

Current user message: %s

Respond as the assistant. Be informative, engaging, and conversational. Remember what was discussed before.`
