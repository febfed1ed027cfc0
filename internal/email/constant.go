package email

const logPrefix = "internal.email"

const previewBodyLimit = 100

const draftPromptTemplate = `You are an expert email writer. Draft an email based on this request:

REQUEST: %s
RECIPIENT: %s
TONE: %s

IMPORTANT: Return ONLY a JSON object with these fields:
{
    "subject": "Email subject line",
    "body": "Full email body with proper greeting and signature.",
    "to": "%s"
}

Do NOT include any markdown formatting or explanation. Return ONLY the JSON.`
