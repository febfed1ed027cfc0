package intent

const logPrefix = "internal.intent"

// Confidence values assigned by the classifier.
const (
	conversationConfidence = 0.95
	toolMatchConfidence    = 0.90
	failureConfidence      = 0.0
)

// conversationStarters open questions that are chat, not action requests.
var conversationStarters = []string{
	"what is", "what are", "what's", "who is", "who are",
	"why is", "why are", "how does", "how do", "can you explain",
	"tell me about", "explain", "describe", "teach me",
	"compare", "difference between", "versus", "vs",
}

// actionExceptions are opener-prefixed phrases that still want an
// action, not a chat answer.
var actionExceptions = []string{
	"what time", "what date", "what's the weather", "what is the time",
}

// longQuestionWords is the word-count bar above which a trailing "?"
// marks the input as conversational.
const longQuestionWords = 5

const classifyPromptTemplate = `You are an intent classifier for a voice assistant. Given a user command, determine which tool to use.

AVAILABLE TOOLS:
%s

USER COMMAND: "%s"

INSTRUCTIONS:
1. If the command matches one of the available tools, respond with the tool name and extracted parameters
2. If the command is a general question or conversation, respond with "CONVERSATION"
3. If no tool matches and it requires generating custom code, respond with "GENERATE_CODE"

Respond ONLY with valid JSON in this exact format:
{"action": "TOOL" or "CONVERSATION" or "GENERATE_CODE", "tool_name": "tool_name_here or null", "params": {"param_name": "value"} or {}}

Examples:
- "set volume to 50" -> {"action": "TOOL", "tool_name": "set_system_volume", "params": {"level": 50}}
- "play despacito on youtube" -> {"action": "TOOL", "tool_name": "play_youtube", "params": {"query": "despacito"}}
- "what is machine learning" -> {"action": "CONVERSATION", "tool_name": null, "params": {}}
- "create a todo app" -> {"action": "GENERATE_CODE", "tool_name": null, "params": {}}

JSON RESPONSE:`
