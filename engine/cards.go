package engine

import (
	"go-splendor/const_data"
	"go-splendor/entities"
)

func validatePurchase(s *GameState, p *Player, cardID int) error {
	card, ok := findPurchasable(s, p, cardID)
	if !ok {
		return &EngineError{Code: CodeCardNotFound, PlayerID: p.ID, CardID: cardID, Message: "卡牌不在展示区或自己的预留区"}
	}
	if _, ok := PaymentFor(p, card); !ok {
		return &EngineError{Code: CodeInsufficientResources, PlayerID: p.ID, CardID: cardID, Message: "宝石不足，无法购买该卡牌"}
	}
	return nil
}

// findPurchasable 可购买的卡只在展示区或自己的预留区
func findPurchasable(s *GameState, p *Player, cardID int) (entities.NormalCard, bool) {
	if t, i, ok := s.findDisplayed(cardID); ok {
		return s.Display[t][i], true
	}
	if i := p.ReservedIndex(cardID); i >= 0 {
		return p.Reserved[i].NormalCard, true
	}
	return entities.NormalCard{}, false
}

func (s *GameState) applyPurchase(seat int, cardID int) {
	p := s.Players[seat]

	var card entities.NormalCard
	if i := p.ReservedIndex(cardID); i >= 0 {
		card = p.Reserved[i].NormalCard
		p.Reserved = append(p.Reserved[:i:i], p.Reserved[i+1:]...)
	} else {
		t, slot, _ := s.findDisplayed(cardID)
		card = s.takeFromDisplay(t, slot)
	}

	pay, _ := PaymentFor(p, card)
	p.Gems = p.Gems.Sub(pay)
	s.Bank = s.Bank.Add(pay)

	p.Cards = append(p.Cards, card)
	p.Points += card.Points

	s.awardNobles(p)
	s.finishTurn(seat)
}

// awardNobles 只检查当前玩家，满足条件的贵族全部拜访
func (s *GameState) awardNobles(p *Player) []entities.NobleCard {
	bonus := p.Bonuses()
	var awarded []entities.NobleCard
	remaining := make([]entities.NobleCard, 0, len(s.Nobles))
	for _, n := range s.Nobles {
		if bonus.Covers(n.Cost) {
			awarded = append(awarded, n)
			continue
		}
		remaining = append(remaining, n)
	}
	s.Nobles = remaining
	p.Nobles = append(p.Nobles, awarded...)
	for _, n := range awarded {
		p.Points += n.Points
	}
	return awarded
}

func validateReserve(s *GameState, p *Player, a Action) error {
	if len(p.Reserved) >= ReserveLimit {
		return newError(CodeReserveLimitReached, p.ID, "最多预留 %d 张卡牌", ReserveLimit)
	}
	if a.CardID != 0 {
		if _, _, ok := s.findDisplayed(a.CardID); !ok {
			return &EngineError{Code: CodeCardNotFound, PlayerID: p.ID, CardID: a.CardID, Message: "卡牌不在展示区"}
		}
		return nil
	}
	if a.Tier < 1 || a.Tier > const_data.Levels {
		return newError(CodeSlotUnavailable, p.ID, "无效的牌堆等级 %d", a.Tier)
	}
	if len(s.Decks[a.Tier-1]) == 0 {
		return newError(CodeSlotUnavailable, p.ID, "%d 级牌堆已空", a.Tier)
	}
	return nil
}

func (s *GameState) applyReserve(seat int, a Action) {
	p := s.Players[seat]

	var reserved ReservedCard
	if a.CardID != 0 {
		t, slot, _ := s.findDisplayed(a.CardID)
		reserved = ReservedCard{NormalCard: s.takeFromDisplay(t, slot)}
	} else {
		deck := s.Decks[a.Tier-1]
		reserved = ReservedCard{NormalCard: deck[0], Blind: true}
		s.Decks[a.Tier-1] = deck[1:]
	}
	p.Reserved = append(p.Reserved, reserved)

	if s.Bank[entities.Gold] > 0 {
		s.Bank[entities.Gold]--
		p.Gems[entities.Gold]++
	}
	s.settleGemCap(seat)
}
