package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"go-splendor/engine"

	"github.com/go-sql-driver/mysql"
)

// MatchResult 一局结束后的结果
type MatchResult struct {
	MatchID    string         `json:"matchID"`
	RoomID     string         `json:"roomID"`
	Seed       uint64         `json:"seed"`
	Winner     string         `json:"winner"`
	Tied       []string       `json:"tied,omitempty"`
	Scores     map[string]int `json:"scores"`
	Turns      int            `json:"turns"`
	FinishedAt time.Time      `json:"finishedAt"`
}

// ResultOf 从已结束的对局状态生成结果
func ResultOf(roomID string, s *engine.GameState, at time.Time) MatchResult {
	scores := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		scores[p.ID] = p.Points
	}
	return MatchResult{
		MatchID:    s.MatchID,
		RoomID:     roomID,
		Seed:       s.Seed,
		Winner:     s.Winner,
		Tied:       s.TiedPlayers,
		Scores:     scores,
		Turns:      s.Turn,
		FinishedAt: at,
	}
}

// HistoryStore 历史对局存储
type HistoryStore interface {
	Record(ctx context.Context, r MatchResult) error
	Recent(ctx context.Context, limit int) ([]MatchResult, error)
}

const createHistoryTable = `CREATE TABLE IF NOT EXISTS match_history (
	match_id    VARCHAR(64)  NOT NULL PRIMARY KEY,
	room_id     VARCHAR(32)  NOT NULL,
	seed        BIGINT UNSIGNED NOT NULL,
	winner      VARCHAR(64)  NOT NULL,
	tied        TEXT         NOT NULL,
	scores      TEXT         NOT NULL,
	turns       INT          NOT NULL,
	finished_at DATETIME     NOT NULL
)`

// MySQLHistory 把结束的对局写入 MySQL
type MySQLHistory struct {
	db *sql.DB
}

// OpenMySQL 打开连接并建表。DSN 会强制打开 parseTime
func OpenMySQL(ctx context.Context, dsn string) (*MySQLHistory, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("MySQL DSN 无效: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("创建 MySQL 连接失败: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("MySQL 连接失败: %w", err)
	}
	if _, err := db.ExecContext(ctx, createHistoryTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("创建 match_history 表失败: %w", err)
	}
	return &MySQLHistory{db: db}, nil
}

func (h *MySQLHistory) Close() error {
	return h.db.Close()
}

func (h *MySQLHistory) Record(ctx context.Context, r MatchResult) error {
	tied, err := json.Marshal(r.Tied)
	if err != nil {
		return err
	}
	scores, err := json.Marshal(r.Scores)
	if err != nil {
		return err
	}
	_, err = h.db.ExecContext(ctx,
		`INSERT IGNORE INTO match_history (match_id, room_id, seed, winner, tied, scores, turns, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.RoomID, r.Seed, r.Winner, string(tied), string(scores), r.Turns, r.FinishedAt)
	if err != nil {
		return fmt.Errorf("写入历史对局失败: %w", err)
	}
	return nil
}

func (h *MySQLHistory) Recent(ctx context.Context, limit int) ([]MatchResult, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT match_id, room_id, seed, winner, tied, scores, turns, finished_at
		 FROM match_history ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("查询历史对局失败: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var tied, scores string
		if err := rows.Scan(&r.MatchID, &r.RoomID, &r.Seed, &r.Winner, &tied, &scores, &r.Turns, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("解析历史对局失败: %w", err)
		}
		if err := json.Unmarshal([]byte(tied), &r.Tied); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(scores), &r.Scores); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// MemoryHistory 未配置 MySQL 时使用，只保存在进程内
type MemoryHistory struct {
	mu      sync.Mutex
	results map[string]MatchResult
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{results: make(map[string]MatchResult)}
}

func (h *MemoryHistory) Record(_ context.Context, r MatchResult) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.results[r.MatchID]; !ok {
		h.results[r.MatchID] = r
	}
	return nil
}

func (h *MemoryHistory) Recent(_ context.Context, limit int) ([]MatchResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	results := make([]MatchResult, 0, len(h.results))
	for _, r := range h.results {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].FinishedAt.After(results[j].FinishedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
