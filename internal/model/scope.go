package model

import "github.com/google/uuid"

// Scope identifies one conversational session and the request being
// processed within it. Carried through the pipeline for log correlation.
type Scope struct {
	SessionID string
	RequestID string
}

// NewScope creates a scope for a fresh session.
func NewScope() Scope {
	return Scope{
		SessionID: uuid.NewString(),
		RequestID: uuid.NewString(),
	}
}

// NextRequest returns a copy of the scope with a new request id.
func (s Scope) NextRequest() Scope {
	s.RequestID = uuid.NewString()
	return s
}
