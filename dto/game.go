package dto

import (
	"go-splendor/engine"
	"go-splendor/entities"
)

// ActionRequest HTTP 和 ws 共用的动作参数。
// 预留时 cardId 为 0 表示从 tier 等级的牌堆顶盲抽
type ActionRequest struct {
	Kind   engine.ActionKind `json:"kind" binding:"required"`
	Gems   map[string]int    `json:"gems"`
	CardID int               `json:"cardId"`
	Tier   int               `json:"tier"`
}

// GemPayload get_gem / discard_gem 的 payload
type GemPayload struct {
	Gems map[string]int `json:"gems"`
}

// CardPayload buy_card / preserve_card 的 payload
type CardPayload struct {
	CardID int `json:"cardId"`
	Tier   int `json:"tier"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PlayerView 某个玩家在同步消息中的数据。其他玩家盲抽的预留卡只保留等级
type PlayerView struct {
	Name      string                `json:"name"`
	Online    bool                  `json:"online"`
	IsAI      bool                  `json:"isAI"`
	Gem       entities.GemPool      `json:"gem"`
	Bonus     entities.GemPool      `json:"bonus"`
	Card      []entities.NormalCard `json:"card"`
	Reserve   []engine.ReservedCard `json:"reserveCard"`
	NobleCard []entities.NobleCard  `json:"nobleCard"`
	Score     int                   `json:"score"`
}

type RoomData struct {
	Card           map[int][]entities.NormalCard `json:"card"`
	DeckSize       map[int]int                   `json:"deckSize"`
	Gems           entities.GemPool              `json:"gems"`
	Nobles         []entities.NobleCard          `json:"nobles"`
	RoomInfo       *entities.RoomInfo            `json:"roomInfo"`
	CurrentPlayer  string                        `json:"currentPlayer"`
	Version        int                           `json:"version"`
	PendingDiscard bool                          `json:"pendingDiscard"`
	LastRound      bool                          `json:"lastRound"`
	Winner         string                        `json:"winner,omitempty"`
	TiedPlayers    []string                      `json:"tiedPlayers,omitempty"`
}

// SyncMessage 每次状态变化后按玩家分别发送
type SyncMessage struct {
	Type       string                `json:"type"`
	PlayerID   string                `json:"playerId"`
	PlayerData map[string]PlayerView `json:"playerData"`
	RoomData   RoomData              `json:"roomData"`
}

type LegalMessage struct {
	Type  string              `json:"type"`
	Legal engine.LegalSummary `json:"legal"`
}

// Action 转换为引擎动作，宝石颜色名无效时报错
func (r ActionRequest) Action(playerID string) (engine.Action, error) {
	gems, err := entities.ParseGemPool(r.Gems)
	if err != nil {
		return engine.Action{}, err
	}
	return engine.Action{
		Kind:     r.Kind,
		PlayerID: playerID,
		Gems:     gems,
		CardID:   r.CardID,
		Tier:     r.Tier,
	}, nil
}
