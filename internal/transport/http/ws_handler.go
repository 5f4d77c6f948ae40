package http

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"security-funnel-service/internal/app"
	"security-funnel-service/internal/domain"
)

// FeedHandler streams newly created leads to admin dashboard clients.
type FeedHandler struct {
	feed     *app.LeadFeed
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewFeedHandler(feed *app.LeadFeed, log *zap.Logger) *FeedHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FeedHandler{
		feed: feed,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage struct {
	Type    string      `json:"type"`
	Payload domain.Lead `json:"payload"`
}

// ServeFeed upgrades the request and forwards every published lead until
// the client disconnects.
func (h *FeedHandler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, cancel := h.feed.Subscribe()
	defer cancel()

	done := make(chan struct{})

	// Reader only detects disconnects; the feed is one-way.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case lead, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(outboundMessage{Type: "lead", Payload: lead}); err != nil {
				h.log.Debug("ws write error", zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}
