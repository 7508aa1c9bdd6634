package handlers

import (
	"log"
	"net/http"
	"strconv"

	"petSocial/internal/enums"
	"petSocial/internal/errs"
	"petSocial/internal/hub"
	"petSocial/internal/models"
	"petSocial/internal/msgs"
	"petSocial/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type SocketHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

func NewSocketHandler(h *hub.Hub) *SocketHandler {
	return &SocketHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleSocketRoute upgrades /messaging/ws/:userID. The connection is
// registered under the authenticated user, never the raw path value; a
// token for a different user is rejected.
func (sh *SocketHandler) HandleSocketRoute(ctx *gin.Context) {
	jwtToken := ctx.GetHeader("Authorization")
	if jwtToken == "" {
		jwtToken = ctx.Query("token")
	}
	if jwtToken == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgYouMustLoginFirst,
			Errors:  models.ErrorMessages([]error{errs.ErrUnauthorized}),
		})
		return
	}

	claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
	if err != nil || claims.ID == 0 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgYouMustLoginFirst,
			Errors:  models.ErrorMessages([]error{errs.ErrUnauthorized}),
		})
		return
	}

	pathUserID, err := strconv.Atoi(ctx.Param("userID"))
	if err != nil || uint(pathUserID) != claims.ID {
		ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorMessages([]error{errs.ErrUnauthorized}),
		})
		return
	}

	sh.handleConnection(ctx, claims.ID)
}

func (sh *SocketHandler) handleConnection(ctx *gin.Context, userID uint) {
	ws, err := sh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer func() {
		sh.hub.Unregister(userID, ws)
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}()

	sh.hub.Register(userID, ws)

	// Heartbeat loop: ping in, pong out, until the client goes away.
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			log.Printf("Connection for user %d closed: %v", userID, err)
			break
		}
		if string(data) == enums.SOCKET_HEARTBEAT_PING {
			// Writes go through the hub so pongs never race a push.
			sh.hub.Send(userID, enums.SOCKET_HEARTBEAT_PONG)
		}
	}
}
