package speech

import (
	"context"

	"github.com/tariebi/naijatalk/repository"
)

// MockSpeechToText is a canned transcription collaborator for tests.
// Every call is recorded so tests can assert the collaborator was (or
// was not) reached, and with which configuration.
type MockSpeechToText struct {
	Text  string
	Err   error
	Calls []repository.AudioConfig
}

var _ repository.SpeechToText = (*MockSpeechToText)(nil)

// TranscribeAudio implements repository.SpeechToText
func (m *MockSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repository.AudioConfig) (string, error) {
	m.Calls = append(m.Calls, config)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Text != "" {
		return m.Text, nil
	}
	return "wetin you talk?", nil
}

// MockTextToSpeech is a canned synthesis collaborator for tests.
type MockTextToSpeech struct {
	Audio []byte
	Err   error
	Calls []repository.VoiceConfig
	Texts []string
}

var _ repository.TextToSpeech = (*MockTextToSpeech)(nil)

// SynthesizeAudio implements repository.TextToSpeech
func (m *MockTextToSpeech) SynthesizeAudio(ctx context.Context, text string, config repository.VoiceConfig) ([]byte, error) {
	m.Calls = append(m.Calls, config)
	m.Texts = append(m.Texts, text)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Audio != nil {
		return m.Audio, nil
	}
	return []byte("RIFF-mock-wav"), nil
}
