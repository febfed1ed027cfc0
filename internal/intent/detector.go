package intent

import "strings"

// IsConversation is a cheap pre-filter that recognizes clearly
// conversational input before paying for a classification call.
func IsConversation(command string) bool {
	lower := strings.ToLower(strings.TrimSpace(command))

	for _, starter := range conversationStarters {
		if !strings.HasPrefix(lower, starter) {
			continue
		}
		excepted := false
		for _, exc := range actionExceptions {
			if strings.Contains(lower, exc) {
				excepted = true
				break
			}
		}
		if !excepted {
			return true
		}
	}

	if strings.HasSuffix(lower, "?") && len(strings.Fields(lower)) > longQuestionWords {
		return true
	}

	return false
}
