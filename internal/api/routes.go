package api

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tariebi/naijatalk/usecase"
)

// ReplyTextHeader carries the percent-encoded chat reply alongside the
// binary audio body. Header values cannot hold raw Unicode, so clients
// percent-decode it.
const ReplyTextHeader = "X-Reply-Text"

const audioMediaType = "audio/wav"

// defaultUploadLanguage matches the transcription default when the
// client sends no language at all.
const defaultUploadLanguage = "pcm"

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, svc *usecase.ConversationService, logger *zap.Logger) {
	// Liveness probes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "naijatalk",
		})
	})

	e.POST("/speech-to-text/", func(c echo.Context) error {
		return speechToText(c, svc, logger)
	})
	e.POST("/text-to-speech/", func(c echo.Context) error {
		return textToSpeech(c, svc, logger)
	})
	e.POST("/chat/", func(c echo.Context) error {
		return chat(c, svc, logger)
	})
}

// speechToText accepts a multipart audio upload and returns its transcription
func speechToText(c echo.Context, svc *usecase.ConversationService, logger *zap.Logger) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_file",
			Message: "A multipart 'file' field with audio content is required",
		})
	}

	// Reject non-audio uploads before touching the transcription service.
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_content_type",
			Message: "Uploaded file must have an audio/* content type, got '" + contentType + "'",
		})
	}

	languageTag := c.FormValue("language")
	if languageTag == "" {
		languageTag = c.QueryParam("language")
	}
	if languageTag == "" {
		languageTag = defaultUploadLanguage
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upload_read_failed",
			Message: err.Error(),
		})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upload_read_failed",
			Message: err.Error(),
		})
	}

	text, err := svc.Transcribe(c.Request().Context(), audio, contentType, languageTag)
	if err != nil {
		logger.Error("Transcription failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "transcription_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, TranscriptionResponse{Text: text})
}

// textToSpeech accepts JSON and streams back synthesized audio
func textToSpeech(c echo.Context, svc *usecase.ConversationService, logger *zap.Logger) error {
	var req TextToSpeechRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_text",
			Message: "Field 'text' is required",
		})
	}

	audio, err := svc.Synthesize(c.Request().Context(), req.Text, req.Language, req.Voice)
	if err != nil {
		logger.Error("Synthesis failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "synthesis_failed",
			Message: err.Error(),
		})
	}

	return c.Blob(http.StatusOK, audioMediaType, audio)
}

// chat runs the full generate-then-synthesize flow. The audio goes in
// the body; the reply text rides in the ReplyTextHeader.
func chat(c echo.Context, svc *usecase.ConversationService, logger *zap.Logger) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_text",
			Message: "Field 'text' is required",
		})
	}

	reply, audio, err := svc.Chat(c.Request().Context(), req.Text, req.Language)
	if err != nil {
		logger.Error("Chat flow failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "chat_failed",
			Message: err.Error(),
		})
	}

	c.Response().Header().Set(ReplyTextHeader, url.PathEscape(reply))
	return c.Blob(http.StatusOK, audioMediaType, audio)
}
