package ws

import (
	"errors"
	"time"

	"go-splendor/repository"

	"go.uber.org/zap"
)

// ScheduleDailyRoomReset 每天 4 点清理没有真人在线的房间
func (h *Hub) ScheduleDailyRoomReset() {
	for {
		duration := durationUntilNext4AM(time.Now())
		h.log.Info("距离下次清理房间", zap.Duration("wait", duration))

		select {
		case <-h.ctx.Done():
			return
		case <-time.After(duration):
		}

		h.log.Info("⏰ 清理房间")
		h.clearRooms()
	}
}

func durationUntilNext4AM(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 4, 0, 0, 0, now.Location())

	// 如果当前时间已过4点，则设置为第二天的4点
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func (h *Hub) clearRooms() {
	removed, err := h.svc.CleanupRooms(h.ctx, h.HasOnlineHuman)
	if err != nil {
		h.log.Error("❌ 清理房间失败", zap.Error(err))
		return
	}

	// Redis 里已经不存在的房间，连接表里也不再保留
	h.mu.Lock()
	roomIDs := make([]string, 0, len(h.rooms))
	for roomID := range h.rooms {
		roomIDs = append(roomIDs, roomID)
	}
	h.mu.Unlock()
	for _, roomID := range roomIDs {
		if _, err := h.svc.GetRoom(h.ctx, roomID); errors.Is(err, repository.ErrRoomNotFound) {
			h.CloseRoom(roomID)
		}
	}
	h.log.Info("✅ 房间清理完成", zap.Int("removed", removed))
}
