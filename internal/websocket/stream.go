package websocket

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tariebi/naijatalk/domain"
	"github.com/tariebi/naijatalk/usecase"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 64 * 1024

	// Deadline for one full generate-then-synthesize exchange.
	exchangeTimeout = 90 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Browser origins are already filtered by the CORS allow-list.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Streamer serves conversational exchanges over a WebSocket: one chat
// frame in, one reply frame (text + base64 audio) out. Each connection
// is handled by its own goroutine; there is no shared client registry.
type Streamer struct {
	svc    *usecase.ConversationService
	logger *zap.Logger
}

// NewStreamer creates a new WebSocket conversation streamer
func NewStreamer(svc *usecase.ConversationService, logger *zap.Logger) *Streamer {
	return &Streamer{svc: svc, logger: logger}
}

// HandleConversation upgrades the request and serves chat frames until
// the client disconnects.
func (s *Streamer) HandleConversation(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", zap.Error(err))
		return err
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	conn.SetReadLimit(maxMessageSize)

	s.logger.Info("Conversation session started", zap.String("sessionID", sessionID))

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("Unexpected close", zap.String("sessionID", sessionID), zap.Error(err))
			}
			break
		}

		var frame domain.ChatFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			s.writeError(conn, sessionID, "invalid frame: "+err.Error())
			continue
		}
		if frame.Type != "chat" || frame.Text == "" {
			s.writeError(conn, sessionID, "expected a 'chat' frame with non-empty text")
			continue
		}

		s.serveExchange(conn, sessionID, frame)
	}

	s.logger.Info("Conversation session ended", zap.String("sessionID", sessionID))
	return nil
}

func (s *Streamer) serveExchange(conn *websocket.Conn, sessionID string, frame domain.ChatFrame) {
	ctx, cancel := context.WithTimeout(context.Background(), exchangeTimeout)
	defer cancel()

	reply, audio, err := s.svc.Chat(ctx, frame.Text, frame.Language)
	if err != nil {
		s.logger.Error("Exchange failed",
			zap.String("sessionID", sessionID),
			zap.Error(err))
		s.writeError(conn, sessionID, err.Error())
		return
	}

	s.writeJSON(conn, domain.ReplyFrame{
		Type:      "reply",
		SessionID: sessionID,
		Text:      reply,
		Audio:     base64.StdEncoding.EncodeToString(audio),
	})
}

func (s *Streamer) writeError(conn *websocket.Conn, sessionID, message string) {
	s.writeJSON(conn, domain.ErrorFrame{
		Type:      "error",
		SessionID: sessionID,
		Error:     message,
	})
}

func (s *Streamer) writeJSON(conn *websocket.Conn, v interface{}) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(v); err != nil {
		s.logger.Error("Failed to write frame", zap.Error(err))
	}
}
