package api

// TextToSpeechRequest represents the request payload for direct synthesis
type TextToSpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

// ChatRequest represents the request payload for the chat flow
type ChatRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TranscriptionResponse represents the response payload for speech-to-text
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
