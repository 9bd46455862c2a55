package speech

import (
	"context"
	"fmt"

	gspeech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/tariebi/naijatalk/repository"
)

// GoogleSpeechToText implements SpeechToText using Google Cloud
// Speech-to-Text. Selected with SPEECH_PROVIDER=google; synthesis stays
// on Spitch since Google has no Nigerian-language voices we use.
type GoogleSpeechToText struct {
	logger *zap.Logger
}

var _ repository.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a new Google Cloud transcription adapter.
// Credentials come from Application Default Credentials.
func NewGoogleSpeechToText(logger *zap.Logger) *GoogleSpeechToText {
	return &GoogleSpeechToText{logger: logger}
}

// regionalCodes expands provider-facing short codes back to the BCP-47
// form Google expects. Unknown codes fall back to en-NG.
var regionalCodes = map[string]string{
	"yo":  "yo-NG",
	"ha":  "ha-NG",
	"ig":  "ig-NG",
	"en":  "en-NG",
	"pcm": "pcm-NG",
}

// TranscribeAudio converts audio data to text using non-streaming recognition
func (g *GoogleSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repository.AudioConfig) (string, error) {
	client, err := gspeech.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create speech client: %w", err)
	}
	defer client.Close()

	encoding, err := getAudioEncoding(config.ContentType)
	if err != nil {
		return "", err
	}

	languageCode, ok := regionalCodes[config.Language]
	if !ok {
		languageCode = "en-NG"
	}

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:     encoding,
			LanguageCode: languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	})
	if err != nil {
		return "", fmt.Errorf("google transcription failed: %w", err)
	}

	var transcript string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			transcript += result.Alternatives[0].Transcript
		}
	}

	if transcript == "" {
		return "", fmt.Errorf("no speech detected in audio")
	}

	g.logger.Info("Google transcription completed",
		zap.String("language", languageCode),
		zap.Int("textLength", len(transcript)))

	return transcript, nil
}

// getAudioEncoding converts an upload content type to the Google Speech API enum
func getAudioEncoding(contentType string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch contentType {
	case "audio/wav", "audio/x-wav", "audio/l16", "":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "audio/flac":
		return speechpb.RecognitionConfig_FLAC, nil
	case "audio/basic":
		return speechpb.RecognitionConfig_MULAW, nil
	case "audio/amr":
		return speechpb.RecognitionConfig_AMR, nil
	case "audio/amr-wb":
		return speechpb.RecognitionConfig_AMR_WB, nil
	case "audio/ogg":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
