package websocket

import (
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap/zaptest"

	"github.com/tariebi/naijatalk/adapters/llm"
	"github.com/tariebi/naijatalk/adapters/speech"
	"github.com/tariebi/naijatalk/domain"
	"github.com/tariebi/naijatalk/usecase"
)

func dialTestStreamer(t *testing.T, gen *llm.MockGenerator, tts *speech.MockTextToSpeech) *websocket.Conn {
	t.Helper()
	logger := zaptest.NewLogger(t)
	svc := usecase.NewConversationService(gen, &speech.MockSpeechToText{}, tts, logger)
	streamer := NewStreamer(svc, logger)

	e := echo.New()
	e.GET("/ws", streamer.HandleConversation)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamerChatExchange(t *testing.T) {
	gen := llm.NewMockGenerator("Kedu ka ị mere?")
	tts := &speech.MockTextToSpeech{Audio: []byte("WAVDATA")}
	conn := dialTestStreamer(t, gen, tts)

	err := conn.WriteJSON(domain.ChatFrame{Type: "chat", Text: "How are you?", Language: "ig-NG"})
	if err != nil {
		t.Fatalf("Failed to write frame: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var reply domain.ReplyFrame
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("Failed to read reply: %v", err)
	}

	if reply.Type != "reply" {
		t.Errorf("Expected type 'reply', got %q", reply.Type)
	}
	if reply.SessionID == "" {
		t.Error("Expected a session ID")
	}
	if reply.Text != "Kedu ka ị mere?" {
		t.Errorf("Expected reply text, got %q", reply.Text)
	}

	audio, err := base64.StdEncoding.DecodeString(reply.Audio)
	if err != nil {
		t.Fatalf("Failed to decode audio: %v", err)
	}
	if string(audio) != "WAVDATA" {
		t.Errorf("Expected audio 'WAVDATA', got %q", audio)
	}

	if len(tts.Calls) != 1 || tts.Calls[0].Voice != "ngozi" {
		t.Errorf("Expected one synthesis call with voice 'ngozi', got %+v", tts.Calls)
	}
}

func TestStreamerRejectsMalformedFrames(t *testing.T) {
	gen := llm.NewMockGenerator("reply")
	conn := dialTestStreamer(t, gen, &speech.MockTextToSpeech{})

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not-json")); err != nil {
		t.Fatalf("Failed to write frame: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var errFrame domain.ErrorFrame
	if err := conn.ReadJSON(&errFrame); err != nil {
		t.Fatalf("Failed to read error frame: %v", err)
	}
	if errFrame.Type != "error" {
		t.Errorf("Expected type 'error', got %q", errFrame.Type)
	}

	// The connection survives a bad frame.
	if err := conn.WriteJSON(domain.ChatFrame{Type: "chat", Text: "hello", Language: "en-NG"}); err != nil {
		t.Fatalf("Failed to write frame after error: %v", err)
	}
	var reply domain.ReplyFrame
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("Failed to read reply after error: %v", err)
	}
	if reply.Type != "reply" {
		t.Errorf("Expected type 'reply', got %q", reply.Type)
	}
}
