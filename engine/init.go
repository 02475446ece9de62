package engine

import (
	"go-splendor/const_data"
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

// Seat 开局时的一个座位
type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MatchConfig 开局参数。Seed 决定洗牌结果，与动作日志一起保存即可完整回放
type MatchConfig struct {
	MatchID string `json:"matchId"`
	Seats   []Seat `json:"seats"`
	Seed    uint64 `json:"seed"`
}

// gemsPerColor 每种彩色宝石的数量由人数决定
func gemsPerColor(players int) int {
	switch players {
	case 2:
		return 4
	case 3:
		return 5
	default:
		return 7
	}
}

// InitializeMatch 建立银行、洗牌发牌、抽取 人数+1 张贵族，0 号座位先手
func InitializeMatch(cfg MatchConfig) (*GameState, error) {
	n := len(cfg.Seats)
	if n < 2 || n > 4 {
		return nil, ErrInvalidSeatCount
	}
	seen := make(map[string]bool, n)
	for _, seat := range cfg.Seats {
		if seat.ID == "" || seen[seat.ID] {
			return nil, ErrDuplicateSeat
		}
		seen[seat.ID] = true
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &GameState{
		MatchID:       cfg.MatchID,
		Seed:          cfg.Seed,
		Players:       make([]*Player, 0, n),
		Bank:          entities.NewGemPool(gemsPerColor(n), GoldSupply),
		Status:        entities.RoomStatusPlaying,
		LastRoundSeat: -1,
	}
	s.InitialSupply = s.Bank

	for _, seat := range cfg.Seats {
		name := seat.Name
		if name == "" {
			name = seat.ID
		}
		s.Players = append(s.Players, &Player{ID: seat.ID, Name: name})
	}

	for level := 1; level <= const_data.Levels; level++ {
		deck := const_data.CardsByLevel(level)
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		shown := min(DisplaySlots, len(deck))
		s.Display[level-1] = deck[:shown:shown]
		s.Decks[level-1] = deck[shown:]
	}

	nobles := const_data.Nobles()
	rng.Shuffle(len(nobles), func(i, j int) {
		nobles[i], nobles[j] = nobles[j], nobles[i]
	})
	s.Nobles = nobles[:n+1]

	return s, nil
}
