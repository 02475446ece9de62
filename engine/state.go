package engine

import (
	"go-splendor/const_data"
	"go-splendor/entities"
)

const (
	// GemCap 回合结束时玩家最多持有的宝石数
	GemCap = 10
	// ReserveLimit 最多预留卡牌数
	ReserveLimit = 3
	// DisplaySlots 每个等级翻开的卡牌数
	DisplaySlots = 4
	// PointsToWin 触发最后一轮的分数
	PointsToWin = 15
	// DoubleTakeMinimum 拿两个同色宝石时银行至少要剩的数量
	DoubleTakeMinimum = 4
	// GoldSupply 黄金总数，与人数无关
	GoldSupply = 5
)

// ReservedCard 预留卡。Blind 表示从牌堆顶盲抽，对其他玩家不可见
type ReservedCard struct {
	entities.NormalCard
	Blind bool `json:"blind"`
}

type Player struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Gems     entities.GemPool      `json:"gems"`
	Cards    []entities.NormalCard `json:"cards"`
	Reserved []ReservedCard        `json:"reserved"`
	Nobles   []entities.NobleCard  `json:"nobles"`
	Points   int                   `json:"points"`
}

// Bonuses 玩家已购卡牌提供的永久折扣
func (p *Player) Bonuses() entities.GemPool {
	var b entities.GemPool
	for _, c := range p.Cards {
		b[c.Bonus]++
	}
	return b
}

// ReservedIndex 预留卡下标，不存在返回 -1
func (p *Player) ReservedIndex(cardID int) int {
	for i, r := range p.Reserved {
		if r.ID == cardID {
			return i
		}
	}
	return -1
}

func (p *Player) clone() *Player {
	cp := *p
	cp.Cards = append([]entities.NormalCard(nil), p.Cards...)
	cp.Reserved = append([]ReservedCard(nil), p.Reserved...)
	cp.Nobles = append([]entities.NobleCard(nil), p.Nobles...)
	return &cp
}

// GameState 一局游戏的全部状态，只能通过 ApplyAction 修改
type GameState struct {
	MatchID string `json:"matchId"`
	Seed    uint64 `json:"seed"`

	Players     []*Player `json:"players"` // 座位顺序，开局后固定
	CurrentSeat int       `json:"currentSeat"`

	Bank          entities.GemPool `json:"bank"`
	InitialSupply entities.GemPool `json:"initialSupply"`

	Display [const_data.Levels][]entities.NormalCard `json:"display"` // 下标 = 等级 - 1
	Decks   [const_data.Levels][]entities.NormalCard `json:"decks"`   // 牌堆，下标 0 为牌堆顶
	Nobles  []entities.NobleCard                     `json:"nobles"`

	Status         entities.RoomStatus `json:"status"`
	LastRound      bool                `json:"lastRound"`
	LastRoundSeat  int                 `json:"lastRoundSeat"` // 触发最后一轮的座位，未触发为 -1
	PendingDiscard bool                `json:"pendingDiscard"`

	Winner      string   `json:"winner,omitempty"`
	TiedPlayers []string `json:"tiedPlayers,omitempty"`

	Turn    int      `json:"turn"` // 已完成的回合数
	Actions []Action `json:"actions"`
}

// Version 状态版本号，每次成功的动作加一
func (s *GameState) Version() int {
	return len(s.Actions)
}

func (s *GameState) Finished() bool {
	return s.Status == entities.RoomStatusEnd
}

// CurrentPlayer 当前行动的玩家
func (s *GameState) CurrentPlayer() *Player {
	if s.CurrentSeat < 0 || s.CurrentSeat >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentSeat]
}

// PlayerByID 返回玩家和座位号，不存在返回 nil, -1
func (s *GameState) PlayerByID(id string) (*Player, int) {
	for i, p := range s.Players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// VisibleCards 桌面上翻开的所有卡牌，按等级从低到高
func (s *GameState) VisibleCards() []entities.NormalCard {
	var cards []entities.NormalCard
	for _, row := range s.Display {
		cards = append(cards, row...)
	}
	return cards
}

// findDisplayed 在展示区查找卡牌，返回等级下标和位置
func (s *GameState) findDisplayed(cardID int) (tier, slot int, ok bool) {
	for t, row := range s.Display {
		for i, c := range row {
			if c.ID == cardID {
				return t, i, true
			}
		}
	}
	return 0, 0, false
}

// takeFromDisplay 取走展示区的卡牌，并从同等级牌堆补一张到原位置
func (s *GameState) takeFromDisplay(tier, slot int) entities.NormalCard {
	card := s.Display[tier][slot]
	if len(s.Decks[tier]) > 0 {
		s.Display[tier][slot] = s.Decks[tier][0]
		s.Decks[tier] = s.Decks[tier][1:]
	} else {
		s.Display[tier] = append(s.Display[tier][:slot:slot], s.Display[tier][slot+1:]...)
	}
	return card
}

// Clone 深拷贝，ApplyAction 在副本上修改以保证失败时原状态不变
func (s *GameState) Clone() *GameState {
	cp := *s
	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}
	for t := range s.Display {
		cp.Display[t] = append([]entities.NormalCard(nil), s.Display[t]...)
		cp.Decks[t] = append([]entities.NormalCard(nil), s.Decks[t]...)
	}
	cp.Nobles = append([]entities.NobleCard(nil), s.Nobles...)
	cp.TiedPlayers = append([]string(nil), s.TiedPlayers...)
	cp.Actions = append([]Action(nil), s.Actions...)
	return &cp
}
