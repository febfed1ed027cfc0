package goal

const logPrefix = "internal.goal"

const defaultConfidence = 0.9

const extractPromptTemplate = `You are a goal-understanding module for a desktop AI assistant.
Convert the user's command into a GOAL object.

GOAL TYPES:
- PLAY_MEDIA: Play music, video, movie, song, playlist
- CONTROL_MEDIA: Pause, play, next, previous, stop, mute
- CHECK_EMAIL: Open/check email
- SEND_EMAIL: Compose/send email
- OPEN_APP: Open/launch an application
- CLOSE_APP: Close/exit an application
- SYSTEM_CONTROL: Volume, brightness, settings
- WEB_SEARCH: Search Google/web
- OPEN_WEBSITE: Open a specific website
- CREATE_CONTENT: Create an app, document, presentation
- CONVERSATION: Just chatting, questions
- UNKNOWN: Can't determine

RULES:
1. Do NOT mention specific apps unless user explicitly does
2. Infer reasonable preferences from context
3. Output ONLY valid JSON

OUTPUT FORMAT:
{
  "goal_type": "PLAY_MEDIA",
  "content": "what to play/search/do",
  "preference": "app/service if specified (spotify, netflix, gmail, etc)",
  "modifiers": {
    "action": "pause/next/up/down etc for control actions",
    "level": 50
  }
}

EXAMPLES:
User: "play some jazz" -> {"goal_type": "PLAY_MEDIA", "content": "jazz", "preference": "", "modifiers": {}}
User: "pause" -> {"goal_type": "CONTROL_MEDIA", "content": "", "preference": "", "modifiers": {"action": "pause"}}
User: "open netflix and play stranger things" -> {"goal_type": "PLAY_MEDIA", "content": "stranger things", "preference": "netflix", "modifiers": {}}
User: "set volume to 50" -> {"goal_type": "SYSTEM_CONTROL", "content": "", "preference": "", "modifiers": {"control": "volume", "action": "set", "level": 50}}
User: "check my email" -> {"goal_type": "CHECK_EMAIL", "content": "", "preference": "", "modifiers": {}}
User: "what's the weather" -> {"goal_type": "CONVERSATION", "content": "what's the weather", "preference": "", "modifiers": {}}

USER COMMAND: "%s"

JSON RESPONSE:`

const batchPromptTemplate = `You are a goal extraction AI. Extract goals for ALL commands below in ONE response.

GOAL TYPES: PLAY_MEDIA, CONTROL_MEDIA, OPEN_APP, OPEN_WEBSITE, WEB_SEARCH, CHECK_EMAIL, SEND_EMAIL, SYSTEM_CONTROL, CREATE_CONTENT, CONVERSATION, UNKNOWN

OUTPUT: Return a JSON array with one object per command, in the SAME ORDER.

FORMAT:
[
  {"goal_type": "...", "content": "...", "preference": "", "modifiers": {}},
  {"goal_type": "...", "content": "...", "preference": "", "modifiers": {}}
]

COMMANDS:
%s

JSON ARRAY:`
