package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/service"
	"github.com/accordchat/accord-backend/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler handles WebSocket connections
type WSHandler struct {
	hub            *ws.Hub
	userService    service.UserService
	allowedOrigins []string
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(hub *ws.Hub, userService service.UserService, allowedOrigins string) *WSHandler {
	h := &WSHandler{
		hub:            hub,
		userService:    userService,
		allowedOrigins: parseOrigins(allowedOrigins),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// parseOrigins parses comma-separated origins string
func parseOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// checkOrigin validates the request origin against allowed origins
func (h *WSHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // Same-origin requests don't have Origin header
	}

	// If no allowed origins configured, allow all (development mode)
	if len(h.allowedOrigins) == 0 {
		return true
	}

	for _, allowed := range h.allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	return false
}

// Connect handles GET /ws — WebSocket upgrade for a live session
// @Summary Live chat/DM event stream
// @Tags ws
// @Param username query string true "username"
// @Router /ws [get]
func (h *WSHandler) Connect(c *gin.Context) {
	user, err := h.userService.FindByUsername(c.Query("username"))
	if err != nil {
		common.ErrorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		common.ErrorJSON(c, http.StatusBadRequest, common.ErrUserNotFound.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn, strconv.FormatInt(user.ID, 10))
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
