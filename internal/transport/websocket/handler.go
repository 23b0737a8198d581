package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

// NewHandler creates a new WebSocket handler with dependencies
func NewHandler(cm *ConnectionManager, sm *game.SessionManager, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				log.Printf("[WS] Rejected origin %q", origin)
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	clientID := uid.GenerateClientID()
	h.ConnManager.AddConnection(clientID, conn)
	log.Printf("[WS] Client %s connected", clientID)

	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Keep-alive pinger
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	// Cleanup on exit
	defer func() {
		close(done)
		log.Printf("[WS] Client %s disconnected", clientID)
		h.SessionManager.TerminateSessionForClient(clientID, h.ConnManager)
		h.ConnManager.RemoveConnection(clientID)
	}()

	// Main Message Loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			break
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.ConnManager.SendMessage(clientID, domain.ServerMessage{Type: "error", Message: "Invalid message format"})
			continue
		}

		h.processMessage(clientID, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(clientID string, msg domain.ClientMessage) {
	switch msg.Type {
	case "start_game":
		h.SessionManager.CreateSession(clientID, msg.Difficulty, msg.EngineFirst, h.ConnManager)

	case "make_move":
		gameSession, exists := h.SessionManager.GetSessionByClientID(clientID)
		if !exists {
			h.ConnManager.SendMessage(clientID, domain.ServerMessage{Type: "error", Message: "Game not found"})
			return
		}

		if err := gameSession.HandleMove(msg.Column, h.ConnManager); err != nil {
			h.ConnManager.SendMessage(clientID, domain.ServerMessage{Type: "error", Message: err.Error()})
		}

	case "abandon_game":
		h.SessionManager.TerminateSessionForClient(clientID, h.ConnManager)

	default:
		h.ConnManager.SendMessage(clientID, domain.ServerMessage{Type: "error", Message: "Unknown message type"})
	}
}
