package websocket

import (
	"log"
	"sync"

	"github.com/ddiazp/LuckySevens/internal/stats"
	"github.com/gorilla/websocket"
)

type RankingMessage struct {
	Type    string               `json:"type"`
	Payload []stats.RankingEntry `json:"payload"`
}

type Client struct {
	PlayerID uint
	Conn     *websocket.Conn
	ConnMu   sync.Mutex
}

func (c *Client) send(msg RankingMessage) error {
	c.ConnMu.Lock()
	defer c.ConnMu.Unlock()
	return c.Conn.WriteJSON(msg)
}

// Hub tracks the connected leaderboard watchers and fans ranking
// snapshots out to them.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) Register(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = true
}

func (h *Hub) Unregister(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) BroadcastRanking(entries []stats.RankingEntry) {
	msg := RankingMessage{Type: "ranking", Payload: entries}

	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if err := c.send(msg); err != nil {
			log.Println("Error sending ranking to", c.PlayerID, ":", err)
		}
	}
}
