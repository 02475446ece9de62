package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-splendor/engine"
	"go-splendor/entities"

	"go.uber.org/zap"
)

// GameLogWriter 每局一个 JSON lines 文件：<dir>/<roomID>_<开局时间>.json，每个状态版本写一行
type GameLogWriter struct {
	dir       string
	startTime func(ctx context.Context, roomID string) (string, error)
	log       *zap.Logger

	mu      sync.Mutex
	written map[string]logMark // roomID -> 已写入的最新版本
}

type logMark struct {
	matchID string
	version int
}

func NewGameLogWriter(dir string, startTime func(ctx context.Context, roomID string) (string, error), log *zap.Logger) *GameLogWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameLogWriter{dir: dir, startTime: startTime, log: log, written: make(map[string]logMark)}
}

type gameLogEntry struct {
	Timestamp string              `json:"timestamp"`
	RoomInfo  *entities.RoomInfo  `json:"roomInfo"`
	Version   int                 `json:"version"`
	Action    *engine.Action      `json:"action,omitempty"`
	Players   []*engine.Player    `json:"players"`
	Bank      entities.GemPool    `json:"bank"`
	Status    entities.RoomStatus `json:"status"`
	Winner    string              `json:"winner,omitempty"`
}

// Write 同一版本只写一次，写文件在协程里完成
func (w *GameLogWriter) Write(ctx context.Context, roomID string, info *entities.RoomInfo, state *engine.GameState) {
	if w == nil || w.dir == "" {
		return
	}
	version := state.Version()

	w.mu.Lock()
	if last, ok := w.written[roomID]; ok && last.matchID == state.MatchID && last.version >= version {
		w.mu.Unlock()
		return
	}
	w.written[roomID] = logMark{matchID: state.MatchID, version: version}
	w.mu.Unlock()

	entry := gameLogEntry{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		RoomInfo:  info,
		Version:   version,
		Players:   state.Players,
		Bank:      state.Bank,
		Status:    state.Status,
		Winner:    state.Winner,
	}
	if version > 0 {
		last := state.Actions[version-1]
		entry.Action = &last
	}
	data, err := json.Marshal(entry)
	if err != nil {
		w.log.Error("❌ 序列化日志 entry 失败", zap.Error(err))
		return
	}

	go func() {
		logPath, err := w.path(ctx, roomID)
		if err != nil {
			w.log.Error("❌ 获取日志路径失败", zap.String("roomID", roomID), zap.Error(err))
			return
		}
		if err := w.append(logPath, data); err != nil {
			w.log.Error("❌ 写入游戏日志失败", zap.String("path", logPath), zap.Error(err))
		}
	}()
}

// Forget 房间删除后清理记录
func (w *GameLogWriter) Forget(roomID string) {
	if w == nil {
		return
	}
	w.mu.Lock()
	delete(w.written, roomID)
	w.mu.Unlock()
}

func (w *GameLogWriter) path(ctx context.Context, roomID string) (string, error) {
	start, err := w.startTime(ctx, roomID)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.json", roomID, start)), nil
}

func (w *GameLogWriter) append(logPath string, line []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("打开游戏日志文件失败: %w", err)
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
