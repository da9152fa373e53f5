package handlers

import (
	"net/http"

	"fitlife-service/internal/pkg/response"
	authservice "fitlife-service/internal/service/auth"
	ws "fitlife-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Auth happens via the token; the browser front-end may live on
		// any origin.
		return true
	},
}

type WSHandler struct {
	hub         *ws.Hub
	authService *authservice.AuthService
	logger      *zap.Logger
}

func NewWSHandler(hub *ws.Hub, authService *authservice.AuthService, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, authService: authService, logger: logger}
}

// Serve upgrades the connection and attaches the client to the hub. The
// token arrives as a query parameter because browsers cannot set headers
// on websocket requests.
func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Unauthorized(c, "No token provided")
		return
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		response.Forbidden(c, "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn, claims.UserID, h.logger)
	client.Start()
}
