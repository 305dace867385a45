package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	ws "github.com/ottodot/mathpal-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams newly created problem sessions to history views.
type WSHandler struct {
	feed     *ws.Feed
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(feed *ws.Feed, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		feed:     feed,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// SessionFeedStream godoc
// WS /ws/v1/sessions/feed
// Upgrades to WebSocket and pushes a session_created event for every new
// problem. The client only needs to answer pings.
func (h *WSHandler) SessionFeedStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.feed.Register(conn)
	defer h.feed.Unregister(conn)

	h.log.Debug().Int("clients", h.feed.Count()).Msg("feed client connected")

	// Read loop: only ping actions are expected; any read error ends the
	// stream and unregisters the client.
	for {
		var envelope ws.RequestEnvelope
		if err := ws.ReadJSON(conn, &envelope); err != nil {
			return
		}
		switch envelope.Action {
		case ws.ActionPing:
			if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
				return
			}
		default:
			if err := ws.WriteError(conn, "unknown action"); err != nil {
				return
			}
		}
	}
}
