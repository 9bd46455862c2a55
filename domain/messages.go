package domain

// ChatFrame represents an incoming chat message on the streaming endpoint
type ChatFrame struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

// ReplyFrame represents a completed chat exchange sent back to the client
type ReplyFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Audio     string `json:"audio"` // base64 encoded WAV
}

// ErrorFrame reports a failed exchange without closing the connection
type ErrorFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Error     string `json:"error"`
}
