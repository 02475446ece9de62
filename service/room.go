package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-splendor/ai"
	"go-splendor/entities"
	"go-splendor/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aiPrefix = "ai_"

// GameService 房间和对局的会话层。对同一房间的写操作都在房间锁内完成
type GameService struct {
	store   *repository.MatchStore
	history repository.HistoryStore
	decider *ai.Decider
	log     *zap.Logger
	now     func() time.Time
}

func NewGameService(store *repository.MatchStore, history repository.HistoryStore, decider *ai.Decider, log *zap.Logger) *GameService {
	if log == nil {
		log = zap.NewNop()
	}
	if history == nil {
		history = repository.NewMemoryHistory()
	}
	if decider == nil {
		decider = ai.NewDecider(log)
	}
	return &GameService{
		store:   store,
		history: history,
		decider: decider,
		log:     log.Named("service"),
		now:     time.Now,
	}
}

func IsAIPlayer(playerID string) bool {
	return strings.HasPrefix(playerID, aiPrefix)
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// CreateRoom 生成 8 位房间号，房主自动入座
func (s *GameService) CreateRoom(ctx context.Context, ownerID string, maxPlayers int) (*entities.RoomInfo, error) {
	if maxPlayers < 2 || maxPlayers > 4 {
		return nil, ErrInvalidMaxPlayers
	}
	info := &entities.RoomInfo{
		RoomID:     shortID(),
		UserID:     ownerID,
		MaxPlayers: maxPlayers,
		GameStatus: entities.RoomStatusWaiting,
		Players:    []string{ownerID},
	}
	if err := s.store.SaveRoom(ctx, info); err != nil {
		return nil, fmt.Errorf("初始化房间信息失败: %w", err)
	}
	s.log.Info("✅ 房间创建成功", zap.String("roomID", info.RoomID), zap.String("userID", ownerID))
	return info, nil
}

func (s *GameService) GetRoom(ctx context.Context, roomID string) (*entities.RoomInfo, error) {
	return s.store.GetRoom(ctx, roomID)
}

func (s *GameService) ListRooms(ctx context.Context) ([]*entities.RoomInfo, error) {
	return s.store.ListRooms(ctx)
}

// JoinRoom 已在房间中的玩家直接返回，开局后不能再加入
func (s *GameService) JoinRoom(ctx context.Context, roomID, playerID string) (*entities.RoomInfo, error) {
	unlock, err := s.store.Lock(ctx, roomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	info, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if info.HasPlayer(playerID) {
		return info, nil
	}
	if err := s.admit(info, playerID); err != nil {
		return nil, err
	}
	if err := s.store.SaveRoom(ctx, info); err != nil {
		return nil, err
	}
	s.log.Info("玩家加入房间", zap.String("roomID", roomID), zap.String("playerID", playerID))
	return info, nil
}

// AddAIPlayer 只有房主可以添加 AI，返回 AI 的玩家 ID
func (s *GameService) AddAIPlayer(ctx context.Context, roomID, requesterID string) (string, *entities.RoomInfo, error) {
	unlock, err := s.store.Lock(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	defer unlock()

	info, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	if info.UserID != requesterID {
		return "", nil, ErrNotRoomOwner
	}
	aiID := aiPrefix + shortID()
	if err := s.admit(info, aiID); err != nil {
		return "", nil, err
	}
	if err := s.store.SaveRoom(ctx, info); err != nil {
		return "", nil, err
	}
	s.log.Info("🤖 AI 玩家加入房间", zap.String("roomID", roomID), zap.String("playerID", aiID))
	return aiID, info, nil
}

func (s *GameService) admit(info *entities.RoomInfo, playerID string) error {
	if info.GameStatus == entities.RoomStatusPlaying || info.GameStatus == entities.RoomStatusLastTurn {
		return ErrGameInProgress
	}
	if info.IsFull() {
		return ErrRoomFull
	}
	info.Players = append(info.Players, playerID)
	return nil
}

// DeleteRoom 只有房主可以删除
func (s *GameService) DeleteRoom(ctx context.Context, roomID, requesterID string) error {
	info, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if info.UserID != requesterID {
		return ErrNotRoomOwner
	}
	if err := s.store.DeleteRoom(ctx, roomID); err != nil {
		return err
	}
	s.log.Info("房间已删除", zap.String("roomID", roomID))
	return nil
}

// CleanupRooms 删除没有真人在线的房间，返回删除数量
func (s *GameService) CleanupRooms(ctx context.Context, online func(roomID string) bool) (int, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, info := range rooms {
		if online != nil && online(info.RoomID) {
			continue
		}
		if err := s.store.DeleteRoom(ctx, info.RoomID); err != nil && !errors.Is(err, repository.ErrRoomNotFound) {
			s.log.Warn("⚠️ 清理房间失败", zap.String("roomID", info.RoomID), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}
