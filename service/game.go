package service

import (
	"context"
	"errors"
	"fmt"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// maxAutoSteps 托管一个座位时最多连续执行的动作数（拿宝石后可能还要弃宝石）
const maxAutoSteps = 3

// StartMatch 房主开局，也用于结束后重开。座位顺序即入座顺序
func (s *GameService) StartMatch(ctx context.Context, roomID, requesterID string) (*engine.GameState, error) {
	unlock, err := s.store.Lock(ctx, roomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	info, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if info.UserID != requesterID {
		return nil, ErrNotRoomOwner
	}
	if info.GameStatus == entities.RoomStatusPlaying || info.GameStatus == entities.RoomStatusLastTurn {
		return nil, ErrGameInProgress
	}
	if len(info.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	seats := make([]engine.Seat, len(info.Players))
	for i, id := range info.Players {
		seats[i] = engine.Seat{ID: id, Name: id}
	}
	state, err := engine.InitializeMatch(engine.MatchConfig{
		MatchID: uuid.NewString(),
		Seats:   seats,
		Seed:    rand.Uint64(),
	})
	if err != nil {
		return nil, fmt.Errorf("初始化对局失败: %w", err)
	}
	if err := s.store.StartMatch(ctx, roomID, state); err != nil {
		return nil, err
	}

	info.GameStatus = state.Status
	info.MatchID = state.MatchID
	if err := s.store.SaveRoom(ctx, info); err != nil {
		return nil, err
	}
	s.log.Info("✅ 对局开始",
		zap.String("roomID", roomID),
		zap.String("matchID", state.MatchID),
		zap.Uint64("seed", state.Seed),
		zap.Strings("players", info.Players))
	return state, nil
}

// ApplyAction 加锁后读取最新状态执行动作。规则错误原样返回（*engine.EngineError）
func (s *GameService) ApplyAction(ctx context.Context, roomID string, action engine.Action) (*engine.GameState, error) {
	unlock, err := s.store.Lock(ctx, roomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, err := s.store.LoadState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, roomID, state, action)
}

// RunAITurn 轮到 AI 时执行一步。version 与当前状态不一致说明这一步已经有人执行过，直接跳过
func (s *GameService) RunAITurn(ctx context.Context, roomID string, version int) (*engine.GameState, bool, error) {
	unlock, err := s.store.Lock(ctx, roomID)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	state, err := s.store.LoadState(ctx, roomID)
	if err != nil {
		return nil, false, err
	}
	if state.Version() != version || state.Finished() {
		return state, false, nil
	}
	current := state.CurrentPlayer()
	if current == nil || !IsAIPlayer(current.ID) {
		return state, false, nil
	}

	action, err := s.decider.ChooseAction(state, current.ID)
	if err != nil {
		return nil, false, fmt.Errorf("AI 选择动作失败: %w", err)
	}
	s.log.Info("🤖 AI 执行操作",
		zap.String("roomID", roomID),
		zap.String("playerID", current.ID),
		zap.String("action", string(action.Kind)))

	next, err := s.commit(ctx, roomID, state, action)
	if err != nil {
		return nil, false, err
	}
	return next, true, nil
}

// AutoPlay 掉线玩家的托管：只在轮到该玩家时执行，直到回合交出去
func (s *GameService) AutoPlay(ctx context.Context, roomID, playerID string) (*engine.GameState, bool, error) {
	unlock, err := s.store.Lock(ctx, roomID)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	state, err := s.store.LoadState(ctx, roomID)
	if err != nil {
		return nil, false, err
	}

	played := false
	for i := 0; i < maxAutoSteps; i++ {
		current := state.CurrentPlayer()
		if state.Finished() || current == nil || current.ID != playerID {
			break
		}
		action, err := engine.DisconnectedSeatAction(state, playerID)
		if err != nil {
			return nil, played, err
		}
		next, err := s.commit(ctx, roomID, state, action)
		if err != nil {
			return nil, played, err
		}
		s.log.Info("⚠️ 掉线托管", zap.String("roomID", roomID), zap.String("playerID", playerID), zap.String("action", string(action.Kind)))
		state, played = next, true
	}
	return state, played, nil
}

// commit 执行动作并持久化，房间状态跟随对局状态，结束时写入历史
func (s *GameService) commit(ctx context.Context, roomID string, state *engine.GameState, action engine.Action) (*engine.GameState, error) {
	next, err := engine.ApplyAction(state, action)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveState(ctx, roomID, next); err != nil {
		return nil, err
	}

	if next.Status != state.Status {
		info, err := s.store.GetRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}
		info.GameStatus = next.Status
		if err := s.store.SaveRoom(ctx, info); err != nil {
			return nil, err
		}
	}

	if next.Finished() {
		result := repository.ResultOf(roomID, next, s.now())
		if err := s.history.Record(ctx, result); err != nil {
			// 历史记录失败不影响对局
			s.log.Error("❌ 保存历史对局失败", zap.String("roomID", roomID), zap.Error(err))
		}
		s.log.Info("✅ 游戏结束",
			zap.String("roomID", roomID),
			zap.String("winner", next.Winner),
			zap.Strings("tied", next.TiedPlayers))
	}
	return next, nil
}

func (s *GameService) GetState(ctx context.Context, roomID string) (*engine.GameState, error) {
	return s.store.LoadState(ctx, roomID)
}

func (s *GameService) LegalActions(ctx context.Context, roomID, playerID string) (engine.LegalSummary, error) {
	state, err := s.store.LoadState(ctx, roomID)
	if err != nil {
		return engine.LegalSummary{}, err
	}
	return engine.LegalActionsSummary(state, playerID)
}

func (s *GameService) Actions(ctx context.Context, roomID string) ([]engine.Action, error) {
	return s.store.LoadActions(ctx, roomID)
}

// ReplayMatch 用种子和动作日志重建对局，并与保存的快照比对
func (s *GameService) ReplayMatch(ctx context.Context, roomID string) (*engine.GameState, error) {
	state, err := s.store.LoadState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	actions, err := s.store.LoadActions(ctx, roomID)
	if err != nil {
		return nil, err
	}
	replayed, err := engine.Replay(engine.ConfigOf(state), actions)
	if err != nil {
		return nil, err
	}
	if replayed.Version() != state.Version() || replayed.Bank != state.Bank || replayed.CurrentSeat != state.CurrentSeat {
		return nil, errors.New("回放结果与保存的对局状态不一致")
	}
	return replayed, nil
}

func (s *GameService) History(ctx context.Context, limit int) ([]repository.MatchResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.history.Recent(ctx, limit)
}

// SeatOf 玩家是否在房间中，用于 HTTP/ws 层的权限检查
func (s *GameService) SeatOf(ctx context.Context, roomID, playerID string) (*entities.RoomInfo, error) {
	info, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !info.HasPlayer(playerID) {
		return nil, ErrNotInRoom
	}
	return info, nil
}

// GameStartTime 开局时间，用于对局日志文件名
func (s *GameService) GameStartTime(ctx context.Context, roomID string) (string, error) {
	return s.store.GameStartTime(ctx, roomID)
}
