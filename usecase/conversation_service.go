package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tariebi/naijatalk/domain/language"
	"github.com/tariebi/naijatalk/repository"
)

// chatPromptTemplate constrains the model's reply. The wording is
// tunable; the constraints (reply only in the target language, no
// commentary or translation notes) are not.
const chatPromptTemplate = `You are a warm, friendly assistant who chats with people in %[1]s. ` +
	`Reply to the user's message in %[1]s only. Keep the tone informal and explanatory, ` +
	`like talking to a friend. Do not add commentary, translation notes, or text in any ` +
	`other language.

User: %[2]s`

// ConversationService orchestrates transcription, text generation, and
// speech synthesis. All language-tag normalization happens here, right
// before the collaborator calls, so adapters always see the short code.
type ConversationService struct {
	generator    repository.TextGenerator
	speechToText repository.SpeechToText
	textToSpeech repository.TextToSpeech
	logger       *zap.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(
	generator repository.TextGenerator,
	stt repository.SpeechToText,
	tts repository.TextToSpeech,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		generator:    generator,
		speechToText: stt,
		textToSpeech: tts,
		logger:       logger,
	}
}

// Transcribe converts uploaded audio to text. contentType is the
// declared MIME type of the upload; languageTag may be regional
// ("yo-NG") or already short ("yo").
func (s *ConversationService) Transcribe(ctx context.Context, audio []byte, contentType, languageTag string) (string, error) {
	config := repository.AudioConfig{
		Language:    language.ShortCode(languageTag),
		ContentType: contentType,
	}

	text, err := s.speechToText.TranscribeAudio(ctx, audio, config)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	s.logger.Info("Transcription completed",
		zap.String("language", config.Language),
		zap.Int("textLength", len(text)))

	return text, nil
}

// Synthesize converts text to speech audio. Empty language and voice
// fall back to the service defaults.
func (s *ConversationService) Synthesize(ctx context.Context, text, languageTag, voice string) ([]byte, error) {
	if languageTag == "" {
		languageTag = language.DefaultTag
	}
	if voice == "" {
		voice = language.DefaultVoice
	}

	config := repository.VoiceConfig{
		Voice:    voice,
		Language: language.ShortCode(languageTag),
	}

	audio, err := s.textToSpeech.SynthesizeAudio(ctx, text, config)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	return audio, nil
}

// Chat runs the full orchestration: build a language-constrained prompt,
// generate a reply, then render the reply as speech. Synthesis is only
// attempted after generation succeeds. Returns the trimmed reply text
// and the audio bytes.
func (s *ConversationService) Chat(ctx context.Context, text, languageTag string) (string, []byte, error) {
	displayName := language.DisplayName(languageTag)
	prompt := fmt.Sprintf(chatPromptTemplate, displayName, text)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("generation failed: %w", err)
	}
	reply = strings.TrimSpace(reply)

	s.logger.Info("Reply generated",
		zap.String("language", displayName),
		zap.Int("replyLength", len(reply)))

	config := repository.VoiceConfig{
		Voice:    language.Voice(languageTag),
		Language: language.ShortCode(languageTag),
	}

	audio, err := s.textToSpeech.SynthesizeAudio(ctx, reply, config)
	if err != nil {
		return "", nil, fmt.Errorf("synthesis failed: %w", err)
	}

	s.logger.Info("Chat exchange completed",
		zap.String("voice", config.Voice),
		zap.Int("audioSize", len(audio)))

	return reply, audio, nil
}
