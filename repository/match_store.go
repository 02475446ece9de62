package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var (
	ErrRoomNotFound  = errors.New("房间不存在")
	ErrStateNotFound = errors.New("对局尚未开始")
	ErrRoomBusy      = errors.New("房间正在处理其他操作")
)

const (
	roomSetKey    = "rooms"
	lockRetryStep = 50 * time.Millisecond
)

func roomInfoKey(roomID string) string  { return fmt.Sprintf("room:%s:info", roomID) }
func stateKey(roomID string) string     { return fmt.Sprintf("room:%s:state", roomID) }
func actionsKey(roomID string) string   { return fmt.Sprintf("room:%s:actions", roomID) }
func startTimeKey(roomID string) string { return fmt.Sprintf("room:%s:game_start_time", roomID) }
func lockKey(roomID string) string      { return fmt.Sprintf("lock:room:%s", roomID) }

// MatchStore 房间信息、对局快照和动作日志都存在 Redis
type MatchStore struct {
	rdb     *redis.Client
	lockTTL time.Duration
}

func NewMatchStore(rdb *redis.Client, lockTTL time.Duration) *MatchStore {
	return &MatchStore{rdb: rdb, lockTTL: lockTTL}
}

// SaveRoom 写入房间信息并登记到房间集合
func (s *MatchStore) SaveRoom(ctx context.Context, info *entities.RoomInfo) error {
	players, err := json.Marshal(info.Players)
	if err != nil {
		return fmt.Errorf("玩家列表序列化失败: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, roomInfoKey(info.RoomID), map[string]interface{}{
		"roomID":     info.RoomID,
		"userID":     info.UserID,
		"maxPlayers": info.MaxPlayers,
		"gameStatus": string(info.GameStatus),
		"players":    string(players),
		"matchID":    info.MatchID,
	})
	pipe.SAdd(ctx, roomSetKey, info.RoomID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("保存房间 %s 失败: %w", info.RoomID, err)
	}
	return nil
}

// GetRoom 读取房间信息，不存在返回 ErrRoomNotFound
func (s *MatchStore) GetRoom(ctx context.Context, roomID string) (*entities.RoomInfo, error) {
	fields, err := s.rdb.HGetAll(ctx, roomInfoKey(roomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取房间 %s 失败: %w", roomID, err)
	}
	if len(fields) == 0 {
		return nil, ErrRoomNotFound
	}

	var info entities.RoomInfo
	if err := utils.Decode(fields, &info, utils.JSONStringToSliceHookFunc()); err != nil {
		return nil, fmt.Errorf("房间 %s 数据解析失败: %w", roomID, err)
	}
	return &info, nil
}

// ListRooms 所有登记过的房间，已失效的房间会从集合中移除
func (s *MatchStore) ListRooms(ctx context.Context) ([]*entities.RoomInfo, error) {
	ids, err := s.rdb.SMembers(ctx, roomSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("获取房间列表失败: %w", err)
	}

	rooms := make([]*entities.RoomInfo, 0, len(ids))
	for _, id := range ids {
		info, err := s.GetRoom(ctx, id)
		if errors.Is(err, ErrRoomNotFound) {
			s.rdb.SRem(ctx, roomSetKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, info)
	}
	return rooms, nil
}

// DeleteRoom 用 SCAN 找出 room:{roomID}: 开头的 key 全部删除
func (s *MatchStore) DeleteRoom(ctx context.Context, roomID string) error {
	prefix := fmt.Sprintf("room:%s:", roomID)
	var cursor uint64
	var keys []string
	for {
		batch, cur, err := s.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描房间相关 key 失败: %w", err)
		}
		keys = append(keys, batch...)
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	if len(keys) == 0 {
		return ErrRoomNotFound
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.SRem(ctx, roomSetKey, roomID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("删除房间相关 key 失败: %w", err)
	}
	return nil
}

// StartMatch 保存开局状态，清空旧的动作日志并记录开局时间
func (s *MatchStore) StartMatch(ctx context.Context, roomID string, state *engine.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("对局状态序列化失败: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, stateKey(roomID), data, 0)
	pipe.Del(ctx, actionsKey(roomID))
	pipe.Set(ctx, startTimeKey(roomID), time.Now().Format("20060102_150405"), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("保存开局状态失败: %w", err)
	}
	return nil
}

// SaveState 保存新的快照，并把最新的动作追加到动作日志
func (s *MatchStore) SaveState(ctx context.Context, roomID string, state *engine.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("对局状态序列化失败: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, stateKey(roomID), data, 0)
	if n := len(state.Actions); n > 0 {
		action, err := json.Marshal(state.Actions[n-1])
		if err != nil {
			return fmt.Errorf("动作序列化失败: %w", err)
		}
		pipe.RPush(ctx, actionsKey(roomID), action)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("保存对局状态失败: %w", err)
	}
	return nil
}

// LoadState 读取最新快照，未开局返回 ErrStateNotFound
func (s *MatchStore) LoadState(ctx context.Context, roomID string) (*engine.GameState, error) {
	data, err := s.rdb.Get(ctx, stateKey(roomID)).Bytes()
	if err == redis.Nil {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("获取对局状态失败: %w", err)
	}

	var state engine.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("对局状态解析失败: %w", err)
	}
	return &state, nil
}

// LoadActions 按顺序读取动作日志
func (s *MatchStore) LoadActions(ctx context.Context, roomID string) ([]engine.Action, error) {
	raw, err := s.rdb.LRange(ctx, actionsKey(roomID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("获取动作日志失败: %w", err)
	}
	actions := make([]engine.Action, 0, len(raw))
	for i, item := range raw {
		var a engine.Action
		if err := json.Unmarshal([]byte(item), &a); err != nil {
			return nil, fmt.Errorf("第 %d 个动作解析失败: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// GameStartTime 开局时间，用于生成对局日志文件名
func (s *MatchStore) GameStartTime(ctx context.Context, roomID string) (string, error) {
	v, err := s.rdb.Get(ctx, startTimeKey(roomID)).Result()
	if err == redis.Nil {
		v = time.Now().Format("20060102_150405")
		if err := s.rdb.Set(ctx, startTimeKey(roomID), v, 0).Err(); err != nil {
			return "", err
		}
		return v, nil
	}
	return v, err
}

// Lock 获取房间锁，同一房间同时只有一个写者。在 lockTTL 内重试，超时返回 ErrRoomBusy
func (s *MatchStore) Lock(ctx context.Context, roomID string) (func(), error) {
	key := lockKey(roomID)
	value := uuid.NewString()
	deadline := time.Now().Add(s.lockTTL)

	for {
		locked, err := s.rdb.SetNX(ctx, key, value, s.lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("房间加锁失败: %w", err)
		}
		if locked {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrRoomBusy
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryStep):
		}
	}

	return func() {
		// 只删除自己持有的锁
		bg := context.Background()
		val, err := s.rdb.Get(bg, key).Result()
		if err == nil && val == value {
			s.rdb.Del(bg, key)
		}
	}, nil
}
