package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

// ServeWS upgrades an authenticated request to a websocket and streams
// the account's events until either side closes.
func ServeWS(hub *Hub, accountID string, w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	logger := util.GetLogger()
	send := make(chan []byte, sendBufferSize)
	done := make(chan struct{})

	unsubscribe := hub.Subscribe(accountID, func(event Event) {
		data, err := json.Marshal(event)
		if err != nil {
			logger.Error("Failed to marshal realtime event", zap.Error(err))
			return
		}
		select {
		case send <- data:
		case <-done:
		default:
			// Slow consumer, drop rather than block the hub.
		}
	})

	// Read loop: only pongs and the close handshake are expected.
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		unsubscribe()
		conn.Close()
	}()

	for {
		select {
		case data := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-done:
			return nil
		}
	}
}
