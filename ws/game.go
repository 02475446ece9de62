package ws

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-splendor/entities"
	"go-splendor/repository"
	"go-splendor/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ensureAIs 服务重启后 Hub 是空的，房间里的 AI 需要重新挂上虚拟连接
func (h *Hub) ensureAIs(info *entities.RoomInfo) {
	h.mu.Lock()
	present := make(map[string]bool, len(h.rooms[info.RoomID]))
	for _, pc := range h.rooms[info.RoomID] {
		present[pc.PlayerID] = true
	}
	h.mu.Unlock()

	for _, id := range info.Players {
		if service.IsAIPlayer(id) && !present[id] {
			h.JoinAsAI(info.RoomID, id)
		}
	}
}

// HandleWebSocket 入口：/ws?roomID=&token=，token 为 access token
func (h *Hub) HandleWebSocket(c *gin.Context) {
	roomID := c.Query("roomID")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 roomID"})
		return
	}
	claims, err := h.tokens.ParseAccessToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未授权"})
		return
	}
	playerID := claims.UserID

	// 尝试加入房间，已在房间中的玩家直接返回
	info, err := h.svc.JoinRoom(c.Request.Context(), roomID, playerID)
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, repository.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error(), "code": service.ErrorCode(err)})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket 升级失败", zap.Error(err))
		return
	}
	conn := &realConn{Conn: ws}
	defer conn.Close()

	h.join(roomID, playerID, conn)
	h.ensureAIs(info)
	h.Broadcast(roomID)

	// 离开时清理资源
	defer h.cleanupOnDisconnect(roomID, playerID, conn)
	h.listen(conn, roomID, playerID)
}

// listen 持续读取客户端消息，交给对应的处理函数
func (h *Hub) listen(conn ReadWriteConn, roomID, playerID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			h.log.Debug("读取消息失败", zap.String("playerID", playerID), zap.Error(err))
			return
		}
		msgMap := make(map[string]interface{})
		if err := json.Unmarshal(msg, &msgMap); err != nil {
			h.log.Warn("消息解析失败", zap.String("playerID", playerID), zap.Error(err))
			continue
		}
		h.dispatch(h.ctx, conn, roomID, playerID, msgMap)
	}
}

// cleanupOnDisconnect 标记离线并广播；正好轮到该玩家时托管一步，避免整局卡住
func (h *Hub) cleanupOnDisconnect(roomID, playerID string, conn WriteOnlyConn) {
	if !h.markOffline(roomID, playerID, conn) {
		return
	}

	_, played, err := h.svc.AutoPlay(h.ctx, roomID, playerID)
	if err != nil && !errors.Is(err, repository.ErrStateNotFound) {
		h.log.Warn("⚠️ 掉线托管失败", zap.String("roomID", roomID), zap.String("playerID", playerID), zap.Error(err))
	}
	if played {
		h.log.Info("⚠️ 玩家掉线，已托管当前回合", zap.String("roomID", roomID), zap.String("playerID", playerID))
	}
	h.Broadcast(roomID)
}
