package engine

import "fmt"

// ConfigOf 从状态中还原开局参数
func ConfigOf(s *GameState) MatchConfig {
	seats := make([]Seat, len(s.Players))
	for i, p := range s.Players {
		seats[i] = Seat{ID: p.ID, Name: p.Name}
	}
	return MatchConfig{MatchID: s.MatchID, Seats: seats, Seed: s.Seed}
}

// Replay 用相同的种子重新开局，按顺序执行动作日志
func Replay(cfg MatchConfig, actions []Action) (*GameState, error) {
	s, err := InitializeMatch(cfg)
	if err != nil {
		return nil, fmt.Errorf("回放开局失败: %w", err)
	}
	for i, a := range actions {
		s, err = ApplyAction(s, a)
		if err != nil {
			return nil, fmt.Errorf("回放第 %d 个动作失败: %w", i+1, err)
		}
	}
	return s, nil
}
