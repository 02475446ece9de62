package engine

import (
	"go-splendor/const_data"
	"go-splendor/entities"
)

// PaymentFor 计算购买所需的实际支付：折扣先抵扣，再用同色宝石，不足部分用黄金补。
// 黄金不够时 ok 为 false
func PaymentFor(p *Player, card entities.NormalCard) (pay entities.GemPool, ok bool) {
	bonus := p.Bonuses()
	goldNeeded := 0
	for _, c := range entities.ColoredGems {
		need := max(0, card.Cost[c]-bonus[c])
		use := min(need, p.Gems[c])
		pay[c] = use
		goldNeeded += need - use
	}
	if goldNeeded > p.Gems[entities.Gold] {
		return pay, false
	}
	pay[entities.Gold] = goldNeeded
	return pay, true
}

// CanAfford 玩家是否买得起这张卡
func CanAfford(p *Player, card entities.NormalCard) bool {
	_, ok := PaymentFor(p, card)
	return ok
}

// CandidateCards 玩家可以考虑购买的卡：展示区 + 自己的预留
func CandidateCards(s *GameState, p *Player) []entities.NormalCard {
	cards := s.VisibleCards()
	for _, r := range p.Reserved {
		cards = append(cards, r.NormalCard)
	}
	return cards
}

// PurchasableCards 现在就能买下的卡
func PurchasableCards(s *GameState, p *Player) []entities.NormalCard {
	var cards []entities.NormalCard
	for _, c := range CandidateCards(s, p) {
		if CanAfford(p, c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// BestEffortTake 银行里剩余最多的至多 3 种彩色宝石各拿 1 个；银行空了返回空选择
func BestEffortTake(bank entities.GemPool) entities.GemPool {
	colors := make([]entities.GemColor, 0, len(entities.ColoredGems))
	for _, c := range entities.ColoredGems {
		if bank[c] > 0 {
			colors = append(colors, c)
		}
	}
	// 插入排序，保证数量相同时按固定颜色顺序
	for i := 1; i < len(colors); i++ {
		for j := i; j > 0 && bank[colors[j]] > bank[colors[j-1]]; j-- {
			colors[j], colors[j-1] = colors[j-1], colors[j]
		}
	}

	var take entities.GemPool
	for i := 0; i < len(colors) && i < 3; i++ {
		take[colors[i]] = 1
	}
	return take
}

// LegalSummary 某个座位当前可执行动作的概览，供 AI 和前端提示使用
type LegalSummary struct {
	PlayerID           string              `json:"playerId"`
	IsTurn             bool                `json:"isTurn"`
	Finished           bool                `json:"finished"`
	PendingDiscard     bool                `json:"pendingDiscard"`
	MustDiscard        int                 `json:"mustDiscard"`
	GemsHeld           int                 `json:"gemsHeld"`
	TakeableColors     []entities.GemColor `json:"takeableColors"`
	DoubleTakeColors   []entities.GemColor `json:"doubleTakeColors"`
	CanPass            bool                `json:"canPass"`
	PurchasableCardIDs []int               `json:"purchasableCardIds"`
	ReservableCardIDs  []int               `json:"reservableCardIds"`
	BlindReserveTiers  []int               `json:"blindReserveTiers"`
}

// LegalActionsSummary 只读查询。不是该玩家回合时各列表为空，但仍返回持有信息
func LegalActionsSummary(s *GameState, playerID string) (LegalSummary, error) {
	p, seat := s.PlayerByID(playerID)
	if p == nil {
		return LegalSummary{}, newError(CodePlayerNotFound, playerID, "玩家 %s 不在本局中", playerID)
	}

	sum := LegalSummary{
		PlayerID: playerID,
		IsTurn:   seat == s.CurrentSeat && !s.Finished(),
		Finished: s.Finished(),
		GemsHeld: p.Gems.Total(),
	}
	if !sum.IsTurn {
		return sum, nil
	}

	if s.PendingDiscard {
		sum.PendingDiscard = true
		sum.MustDiscard = p.Gems.Total() - GemCap
		return sum, nil
	}

	for _, c := range entities.ColoredGems {
		if s.Bank[c] > 0 {
			sum.TakeableColors = append(sum.TakeableColors, c)
		}
		if s.Bank[c] >= DoubleTakeMinimum {
			sum.DoubleTakeColors = append(sum.DoubleTakeColors, c)
		}
	}
	sum.CanPass = s.Bank.ColoredTotal() == 0

	for _, c := range PurchasableCards(s, p) {
		sum.PurchasableCardIDs = append(sum.PurchasableCardIDs, c.ID)
	}

	if len(p.Reserved) < ReserveLimit {
		for _, c := range s.VisibleCards() {
			sum.ReservableCardIDs = append(sum.ReservableCardIDs, c.ID)
		}
		for tier := 1; tier <= const_data.Levels; tier++ {
			if len(s.Decks[tier-1]) > 0 {
				sum.BlindReserveTiers = append(sum.BlindReserveTiers, tier)
			}
		}
	}
	return sum, nil
}
