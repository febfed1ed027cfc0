package gmail

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestBuildRawMessage(t *testing.T) {
	raw := buildRawMessage("alice@example.com", "Hello", "Meeting at 3pm.")

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("raw message is not valid base64url: %v", err)
	}

	msg := string(decoded)
	if !strings.Contains(msg, "To: alice@example.com\r\n") {
		t.Errorf("missing To header: %q", msg)
	}
	if !strings.Contains(msg, "Subject: Hello\r\n") {
		t.Errorf("missing Subject header: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nMeeting at 3pm.") {
		t.Errorf("body not separated from headers: %q", msg)
	}
}
