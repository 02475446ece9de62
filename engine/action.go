package engine

import "go-splendor/entities"

type ActionKind string

const (
	ActionTakeGems     ActionKind = "take_gems"
	ActionPurchaseCard ActionKind = "purchase_card"
	ActionReserveCard  ActionKind = "reserve_card"
	ActionDiscardGems  ActionKind = "discard_gems"
)

// Action 玩家动作。Gems 用于拿取/弃掉宝石；CardID 用于购买/预留；
// 预留时 CardID 为 0 则从 Tier 对应等级的牌堆顶盲抽
type Action struct {
	Kind     ActionKind       `json:"kind"`
	PlayerID string           `json:"playerId"`
	Gems     entities.GemPool `json:"gems"`
	CardID   int              `json:"cardId,omitempty"`
	Tier     int              `json:"tier,omitempty"`
}

func TakeGems(playerID string, gems entities.GemPool) Action {
	return Action{Kind: ActionTakeGems, PlayerID: playerID, Gems: gems}
}

func PurchaseCard(playerID string, cardID int) Action {
	return Action{Kind: ActionPurchaseCard, PlayerID: playerID, CardID: cardID}
}

func ReserveCard(playerID string, cardID int) Action {
	return Action{Kind: ActionReserveCard, PlayerID: playerID, CardID: cardID}
}

// ReserveFromDeck 从指定等级牌堆盲抽预留
func ReserveFromDeck(playerID string, tier int) Action {
	return Action{Kind: ActionReserveCard, PlayerID: playerID, Tier: tier}
}

func DiscardGems(playerID string, gems entities.GemPool) Action {
	return Action{Kind: ActionDiscardGems, PlayerID: playerID, Gems: gems}
}

// IsBlindReserve 是否为牌堆盲抽预留
func (a Action) IsBlindReserve() bool {
	return a.Kind == ActionReserveCard && a.CardID == 0
}
