package repository

import "context"

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// TranscribeAudio converts audio data to text
	TranscribeAudio(ctx context.Context, audioData []byte, config AudioConfig) (string, error)
}

// TextToSpeech abstracts text-to-speech services
type TextToSpeech interface {
	// SynthesizeAudio converts text to audio data
	SynthesizeAudio(ctx context.Context, text string, config VoiceConfig) ([]byte, error)
}

// AudioConfig represents audio configuration for speech recognition.
// Language carries the provider-facing short code; ContentType is the
// declared MIME type of the uploaded audio, which the provider needs to
// select a decoder.
type AudioConfig struct {
	Language    string `json:"language"`
	ContentType string `json:"content_type"`
}

// VoiceConfig represents voice configuration for speech synthesis.
type VoiceConfig struct {
	Voice    string `json:"voice"`
	Language string `json:"language"`
}
