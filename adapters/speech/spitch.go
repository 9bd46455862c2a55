package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tariebi/naijatalk/repository"
)

const (
	defaultAPIBaseURL     = "https://api.spi-tch.com/v1"
	defaultModel          = "mansa_v1" // transcription model
	defaultTimeoutSeconds = 60
)

// SpitchConfig holds configuration for the Spitch speech adapter.
// Required fields:
// - APIKey: Your Spitch API key
// Optional fields with defaults:
// - APIBaseURL: The base URL for the Spitch API (default: "https://api.spi-tch.com/v1")
// - Model: The transcription model to use (default: "mansa_v1")
// - TimeoutSeconds: Per-call deadline (default: 60)
type SpitchConfig struct {
	APIKey         string
	APIBaseURL     string
	Model          string
	TimeoutSeconds int
}

// SpitchClient implements both SpeechToText and TextToSpeech against the
// Spitch REST API.
type SpitchClient struct {
	apiKey     string
	apiBaseURL string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// Ensure SpitchClient implements both speech interfaces
var _ repository.SpeechToText = (*SpitchClient)(nil)
var _ repository.TextToSpeech = (*SpitchClient)(nil)

// spitchSpeechRequest represents the request payload for the Spitch TTS endpoint
type spitchSpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

// ValidateSpitchConfig validates the SpitchConfig
func ValidateSpitchConfig(config SpitchConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("spitch API key is required")
	}

	if config.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be positive, got %d", config.TimeoutSeconds)
	}

	return nil
}

// NewSpitchClient creates a new Spitch speech client
func NewSpitchClient(config SpitchConfig, logger *zap.Logger) (*SpitchClient, error) {
	if err := ValidateSpitchConfig(config); err != nil {
		return nil, err
	}

	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
		logger.Info("Using default API base URL", zap.String("apiBaseURL", apiBaseURL))
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default transcription model", zap.String("model", model))
	}

	timeoutSeconds := config.TimeoutSeconds
	if timeoutSeconds == 0 {
		timeoutSeconds = defaultTimeoutSeconds
		logger.Info("Using default timeoutSeconds", zap.Int("timeoutSeconds", timeoutSeconds))
	}

	return &SpitchClient{
		apiKey:     config.APIKey,
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		model:      model,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// TranscribeAudio converts audio data to text using the Spitch transcription API
func (s *SpitchClient) TranscribeAudio(ctx context.Context, audioData []byte, config repository.AudioConfig) (string, error) {
	if len(audioData) == 0 {
		return "", fmt.Errorf("audio data cannot be empty")
	}

	s.logger.Info("Transcribing audio",
		zap.Int("audioSize", len(audioData)),
		zap.String("language", config.Language),
		zap.String("contentType", config.ContentType))

	requestBody := &bytes.Buffer{}
	writer := multipart.NewWriter(requestBody)

	part, err := writer.CreateFormFile("content", "audio")
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audioData); err != nil {
		return "", fmt.Errorf("failed to write audio data: %w", err)
	}
	_ = writer.WriteField("language", config.Language)
	_ = writer.WriteField("model", s.model)
	if config.ContentType != "" {
		_ = writer.WriteField("content_type", config.ContentType)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := s.apiBaseURL + "/transcriptions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("spitch transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("spitch transcription returned %d: %s", resp.StatusCode, string(errorBody))
	}

	var transcription struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&transcription); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}

	s.logger.Info("Transcription completed", zap.Int("textLength", len(transcription.Text)))

	return transcription.Text, nil
}

// SynthesizeAudio converts text to WAV audio using the Spitch speech API
func (s *SpitchClient) SynthesizeAudio(ctx context.Context, text string, config repository.VoiceConfig) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	s.logger.Info("Synthesizing speech",
		zap.String("voice", config.Voice),
		zap.String("language", config.Language),
		zap.Int("textLength", len(text)))

	request := spitchSpeechRequest{
		Text:     text,
		Language: config.Language,
		Voice:    config.Voice,
	}
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.apiBaseURL + "/speech"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/wav")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("spitch synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("spitch synthesis returned %d: %s", resp.StatusCode, string(errorBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("spitch synthesis returned empty audio")
	}

	s.logger.Info("Synthesis completed", zap.Int("audioSize", len(audio)))

	return audio, nil
}

// NewSpitchConfigFromEnv creates a new SpitchConfig from environment variables
func NewSpitchConfigFromEnv() SpitchConfig {
	config := SpitchConfig{
		APIKey:     os.Getenv("SPITCH_API_KEY"),
		APIBaseURL: os.Getenv("SPITCH_API_BASE_URL"),
		Model:      os.Getenv("SPITCH_MODEL"),
	}

	if timeoutStr := os.Getenv("SPITCH_TIMEOUT_SECONDS"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil && timeout > 0 {
			config.TimeoutSeconds = timeout
		}
	}

	return config
}
