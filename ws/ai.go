package ws

import (
	"encoding/json"
	"time"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/service"

	"go.uber.org/zap"
)

var _ WriteOnlyConn = (*VirtualConn)(nil) // 编译期断言实现

// VirtualConn AI 玩家的连接。收到同步消息时如果轮到自己，延迟后执行一步
type VirtualConn struct {
	PlayerID string
	RoomID   string
	hub      *Hub
}

func (v *VirtualConn) WriteMessage(_ int, data []byte) error {
	v.hub.maybeRunAI(v.RoomID, v.PlayerID, data)
	return nil
}

func (v *VirtualConn) Close() error { return nil }

// maybeRunAI 从同步消息判断是否轮到该 AI
func (h *Hub) maybeRunAI(roomID, playerID string, data []byte) bool {
	var msg dto.SyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.log.Error("❌ AI 消息格式错误", zap.Error(err))
		return false
	}
	if msg.RoomData.CurrentPlayer != playerID || msg.RoomData.RoomInfo == nil {
		return false
	}
	status := msg.RoomData.RoomInfo.GameStatus
	if status != entities.RoomStatusPlaying && status != entities.RoomStatusLastTurn {
		return false
	}
	return h.schedule(roomID, playerID, msg.RoomData.Version, func() (bool, error) {
		_, played, err := h.svc.RunAITurn(h.ctx, roomID, msg.RoomData.Version)
		return played, err
	})
}

// maybeAutoPlay 轮到已掉线的真人玩家时，延迟后托管一步
func (h *Hub) maybeAutoPlay(roomID string, state *engine.GameState, online map[string]bool) bool {
	current := state.CurrentPlayer()
	if state.Finished() || current == nil || service.IsAIPlayer(current.ID) {
		return false
	}
	if isOnline, known := online[current.ID]; !known || isOnline {
		return false
	}
	return h.schedule(roomID, current.ID, state.Version(), func() (bool, error) {
		_, played, err := h.svc.AutoPlay(h.ctx, roomID, current.ID)
		return played, err
	})
}

// schedule 同一房间同一状态版本只安排一次，延迟 aiDelay 后执行，执行成功则广播
func (h *Hub) schedule(roomID, playerID string, version int, run func() (bool, error)) bool {
	h.mu.Lock()
	if v, ok := h.aiPending[roomID]; ok && v == version {
		h.mu.Unlock()
		return false
	}
	h.aiPending[roomID] = version
	h.mu.Unlock()

	h.log.Debug("🤖 准备延迟执行",
		zap.String("roomID", roomID),
		zap.String("playerID", playerID),
		zap.Int("version", version),
		zap.Duration("delay", h.aiDelay))

	go func() {
		select {
		case <-h.ctx.Done():
			return
		case <-time.After(h.aiDelay):
		}

		played, err := run()
		if err != nil {
			h.log.Error("❌ 自动执行失败", zap.String("roomID", roomID), zap.String("playerID", playerID), zap.Error(err))
			h.mu.Lock()
			if h.aiPending[roomID] == version {
				delete(h.aiPending, roomID)
			}
			h.mu.Unlock()
			return
		}
		if played {
			h.Broadcast(roomID)
		}
	}()
	return true
}
