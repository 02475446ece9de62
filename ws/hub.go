package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/repository"
	"go-splendor/service"
	"go-splendor/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub 进程内的房间连接表。对局状态都在 Redis，这里只保存连接和在线状态
type Hub struct {
	svc     *service.GameService
	tokens  *utils.TokenManager
	gameLog *GameLogWriter
	log     *zap.Logger
	aiDelay time.Duration

	ctx context.Context

	mu        sync.Mutex
	rooms     map[string][]*PlayerConn
	aiPending map[string]int // roomID -> 已安排 AI 执行的状态版本
}

func NewHub(ctx context.Context, svc *service.GameService, tokens *utils.TokenManager, gameLog *GameLogWriter, aiDelay time.Duration, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		svc:       svc,
		tokens:    tokens,
		gameLog:   gameLog,
		log:       log.Named("ws"),
		aiDelay:   aiDelay,
		ctx:       ctx,
		rooms:     make(map[string][]*PlayerConn),
		aiPending: make(map[string]int),
	}
}

// join 新玩家追加到房间，已在房间中的玩家（包括掉线的）替换连接
func (h *Hub) join(roomID, playerID string, conn WriteOnlyConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, pc := range h.rooms[roomID] {
		if pc.PlayerID == playerID {
			pc.Conn = conn
			pc.Online = true
			h.log.Info("玩家重连成功", zap.String("roomID", roomID), zap.String("playerID", playerID))
			return
		}
	}
	h.rooms[roomID] = append(h.rooms[roomID], &PlayerConn{PlayerID: playerID, Conn: conn, Online: true})
	h.log.Info("玩家加入房间", zap.String("roomID", roomID), zap.String("playerID", playerID))
}

// JoinAsAI AI 玩家使用虚拟连接，一直在线
func (h *Hub) JoinAsAI(roomID, playerID string) {
	h.join(roomID, playerID, &VirtualConn{PlayerID: playerID, RoomID: roomID, hub: h})
}

// markOffline 只有当前连接仍是 conn 时才标记离线，重连后旧连接的退出不影响新连接
func (h *Hub) markOffline(roomID, playerID string, conn WriteOnlyConn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, pc := range h.rooms[roomID] {
		if pc.PlayerID == playerID && pc.Conn == conn {
			pc.Online = false
			pc.Conn = nil
			h.log.Info("玩家标记为离线", zap.String("roomID", roomID), zap.String("playerID", playerID))
			return true
		}
	}
	return false
}

// CloseRoom 房间删除后断开所有连接
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	conns := h.rooms[roomID]
	delete(h.rooms, roomID)
	delete(h.aiPending, roomID)
	h.mu.Unlock()
	h.gameLog.Forget(roomID)

	for _, pc := range conns {
		if pc.Conn != nil {
			pc.Conn.Close()
		}
	}
}

// HasOnlineHuman 房间里是否还有在线的真人玩家
func (h *Hub) HasOnlineHuman(roomID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, pc := range h.rooms[roomID] {
		if pc.Online && !service.IsAIPlayer(pc.PlayerID) {
			return true
		}
	}
	return false
}

// OnlineStatus 房间内每个玩家的在线状态
func (h *Hub) OnlineStatus(roomID string) map[string]bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	online := make(map[string]bool, len(h.rooms[roomID]))
	for _, pc := range h.rooms[roomID] {
		online[pc.PlayerID] = pc.Online
	}
	return online
}

// OnlinePlayers 所有房间在线人数
func (h *Hub) OnlinePlayers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, room := range h.rooms {
		for _, pc := range room {
			if pc.Online && !service.IsAIPlayer(pc.PlayerID) {
				n++
			}
		}
	}
	return n
}

type target struct {
	playerID string
	conn     WriteOnlyConn
}

func (h *Hub) targets(roomID string) []target {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []target
	for _, pc := range h.rooms[roomID] {
		if pc.Online && pc.Conn != nil {
			out = append(out, target{playerID: pc.PlayerID, conn: pc.Conn})
		}
	}
	return out
}

// Broadcast 读取最新状态，给房间内每个在线玩家发送各自视角的同步消息
func (h *Hub) Broadcast(roomID string) {
	ctx := h.ctx
	info, err := h.svc.GetRoom(ctx, roomID)
	if err != nil {
		h.log.Warn("⚠️ 获取房间信息失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	state, err := h.svc.GetState(ctx, roomID)
	if err != nil && !errors.Is(err, repository.ErrStateNotFound) {
		h.log.Error("❌ 获取对局状态失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}

	online := h.OnlineStatus(roomID)
	if state != nil {
		h.gameLog.Write(ctx, roomID, info, state)
		h.maybeAutoPlay(roomID, state, online)
	}

	for _, t := range h.targets(roomID) {
		data, err := json.Marshal(BuildSyncMessage(state, info, t.playerID, online))
		if err != nil {
			h.log.Error("❌ 编码 JSON 失败", zap.Error(err))
			return
		}
		if err := t.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("广播失败，关闭连接", zap.String("roomID", roomID), zap.String("playerID", t.playerID), zap.Error(err))
			t.conn.Close()
		}
	}
}

// ResetAI 重新开局后版本号从 0 开始，清掉旧的安排
func (h *Hub) ResetAI(roomID string) {
	h.mu.Lock()
	delete(h.aiPending, roomID)
	h.mu.Unlock()
}

// sendTo 只发给一个连接
func (h *Hub) sendTo(conn WriteOnlyConn, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.log.Error("❌ 编码 JSON 失败", zap.Error(err))
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.log.Warn("发送消息失败", zap.Error(err))
	}
}

func (h *Hub) sendError(conn WriteOnlyConn, err error) {
	code := service.ErrorCode(err)
	msg := err.Error()
	var ee *engine.EngineError
	if errors.As(err, &ee) && ee.Message != "" {
		msg = ee.Message
	}
	h.sendTo(conn, dto.ErrorMessage{Type: "error", Code: code, Message: msg})
}
