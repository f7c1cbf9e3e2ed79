package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// WebSocket errors
var (
	ErrConnectionNotFound   = errors.New("connection not found")
	ErrConnectionBufferFull = errors.New("connection buffer full")
)

// Event types pushed to dashboard clients
const (
	EventAnalysisCompleted = "analysis_completed"
	EventAnalysisDeleted   = "analysis_deleted"
)

// WebSocketManager manages dashboard WebSocket connections
type WebSocketManager struct {
	// Map of connection ID to connection
	connections map[string]*WebSocketConnection
	mu          sync.RWMutex
	broadcast   chan BroadcastMessage
}

// WebSocketConnection represents a single WebSocket connection
type WebSocketConnection struct {
	Conn         *websocket.Conn
	ConnectionID string
	UserID       string
	UserEmail    string
	UserName     string
	Send         chan []byte
}

// BroadcastMessage represents a message to broadcast
type BroadcastMessage struct {
	Type string
	Data interface{}
}

// MessagePayload represents the structure of WebSocket messages
type MessagePayload struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

var wsManager *WebSocketManager
var once sync.Once

// GetWebSocketManager returns the singleton WebSocket manager
func GetWebSocketManager() *WebSocketManager {
	once.Do(func() {
		wsManager = &WebSocketManager{
			connections: make(map[string]*WebSocketConnection),
			broadcast:   make(chan BroadcastMessage, 100),
		}
		go wsManager.handleBroadcast()
	})
	return wsManager
}

// RegisterConnection registers a new WebSocket connection
func (m *WebSocketManager) RegisterConnection(conn *WebSocketConnection) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connections[conn.ConnectionID] = conn

	slog.Info("WebSocket connection registered",
		"connectionID", conn.ConnectionID,
		"userID", conn.UserID,
		"totalConnections", len(m.connections))
}

// UnregisterConnection removes a WebSocket connection
func (m *WebSocketManager) UnregisterConnection(connectionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if conn, exists := m.connections[connectionID]; exists {
		close(conn.Send)
		delete(m.connections, connectionID)

		slog.Info("WebSocket connection unregistered",
			"connectionID", connectionID,
			"remainingConnections", len(m.connections))
	}
}

// Broadcast sends a message to every connected dashboard client
func (m *WebSocketManager) Broadcast(message BroadcastMessage) {
	m.broadcast <- message
}

// handleBroadcast processes broadcast messages
func (m *WebSocketManager) handleBroadcast() {
	for message := range m.broadcast {
		payload := MessagePayload{
			Type:      message.Type,
			Data:      message.Data,
			Timestamp: getCurrentTimestamp(),
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			slog.Error("Failed to marshal WebSocket message", "error", err)
			continue
		}

		m.mu.RLock()
		for _, conn := range m.connections {
			select {
			case conn.Send <- jsonData:
				// Message sent successfully
			default:
				// Connection buffer full, skip
				slog.Warn("WebSocket connection buffer full",
					"connectionID", conn.ConnectionID,
					"userID", conn.UserID)
			}
		}
		m.mu.RUnlock()
	}
}

// SendToConnection sends a message to a specific connection
func (m *WebSocketManager) SendToConnection(connectionID string, data []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if conn, exists := m.connections[connectionID]; exists {
		select {
		case conn.Send <- data:
			return nil
		default:
			return ErrConnectionBufferFull
		}
	}
	return ErrConnectionNotFound
}

// GetConnectionCount returns the number of active connections
func (m *WebSocketManager) GetConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.connections)
}

func getCurrentTimestamp() int64 {
	return time.Now().Unix()
}
