package models

// ChatMessage is one prior turn of a conversation.
type ChatMessage struct {
	Type    string `json:"type"` // "user" or "agent"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message             string        `json:"message"`
	SessionID           string        `json:"sessionId,omitempty"` // server-side history when set
	Profile             Profile       `json:"userProfile"`
	CityContext         string        `json:"cityContext,omitempty"`
	ConversationHistory []ChatMessage `json:"conversationHistory,omitempty"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatContext is the stored conversation for one session.
type ChatContext struct {
	History []ChatMessage `json:"history"`
}
