package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// reloadMessage is pushed to preview pages.
type reloadMessage struct {
	Type     string `json:"type"` // "hello", "reload" or "error"
	ClientID string `json:"client_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// hub tracks connected preview pages.
type hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

func newHub() *hub {
	return &hub{clients: make(map[string]*websocket.Conn)}
}

// add registers conn and greets it with its id.
func (h *hub) add(conn *websocket.Conn) (string, error) {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(reloadMessage{Type: "hello", ClientID: id}); err != nil {
		return "", err
	}
	h.clients[id] = conn
	return id, nil
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast sends msg to every client, dropping the ones that fail.
func (h *hub) broadcast(msg reloadMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("preview: dropping client %s: %v", id, err)
			conn.Close()
			delete(h.clients, id)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}

func (s *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	id, err := s.hub.add(conn)
	if err != nil {
		log.Printf("preview: websocket greeting: %v", err)
		return
	}
	defer s.hub.remove(id)

	// Clients never send anything; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("preview: websocket read: %v", err)
			}
			return
		}
	}
}
