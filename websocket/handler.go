package websocket

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/ddiazp/LuckySevens/internal/apperrors"
	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/ddiazp/LuckySevens/internal/stats"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	Feed  *Hub
	Stats *stats.StatsService
)

// LeaderboardHandler upgrades the connection, sends the current ranking
// and keeps the client subscribed to ranking changes until it hangs up.
// The token travels as a query parameter, websocket clients cannot set
// an Authorization header.
func LeaderboardHandler(c echo.Context) error {
	playerID, err := player.ValidateToken(c.QueryParam("token"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	client := &Client{PlayerID: playerID, Conn: ws}
	Feed.Register(client)
	log.Printf("Leaderboard watcher connected: %d", playerID)

	entries, err := Stats.Ranking(context.Background())
	if err == nil {
		if sendErr := client.send(RankingMessage{Type: "ranking", Payload: entries}); sendErr != nil {
			log.Println("Error sending initial ranking:", sendErr)
		}
	} else {
		var appErr *apperrors.AppError
		// An empty player table is fine, the client just waits for rolls.
		if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
			log.Println("Error loading initial ranking:", err)
		}
	}

	go listenUntilClosed(client)
	return nil
}

func listenUntilClosed(client *Client) {
	defer func() {
		log.Printf("Leaderboard watcher disconnected: %d", client.PlayerID)
		Feed.Unregister(client)
		client.Conn.Close()
	}()

	for {
		// The feed is one-way; reads only surface the close.
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
