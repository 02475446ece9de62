package engine

import "go-splendor/entities"

// validateTakeGems 合法的拿法：1~3 种不同颜色各 1 个；或同色 2 个且银行该色 >= 4。
// 银行没有任何彩色宝石时允许空拿（相当于跳过）
func validateTakeGems(s *GameState, p *Player, gems entities.GemPool) error {
	if gems.HasNegative() {
		return newError(CodeInvalidGemSelection, p.ID, "宝石数量不能为负")
	}
	if gems[entities.Gold] > 0 {
		return newError(CodeInvalidGemSelection, p.ID, "不能直接拿取黄金")
	}

	colors := gems.NonZero()
	switch {
	case len(colors) == 0:
		if s.Bank.ColoredTotal() > 0 {
			return newError(CodeInvalidGemSelection, p.ID, "至少要拿一个宝石")
		}
		return nil

	case len(colors) == 1 && gems[colors[0]] == 2:
		c := colors[0]
		if s.Bank[c] < DoubleTakeMinimum {
			return newError(CodeInsufficientResources, p.ID,
				"%s 只剩 %d 个，至少 %d 个才能拿两个", c, s.Bank[c], DoubleTakeMinimum)
		}
		return nil
	}

	if len(colors) > 3 {
		return newError(CodeInvalidGemSelection, p.ID, "最多拿 3 种不同颜色")
	}
	for _, c := range colors {
		if gems[c] != 1 {
			return newError(CodeInvalidGemSelection, p.ID, "拿不同颜色时每种只能拿 1 个")
		}
	}
	for _, c := range colors {
		if s.Bank[c] < 1 {
			return newError(CodeInsufficientResources, p.ID, "房间宝石不足: %s 已经没有了", c)
		}
	}
	return nil
}

func (s *GameState) applyTakeGems(seat int, gems entities.GemPool) {
	p := s.Players[seat]
	s.Bank = s.Bank.Sub(gems)
	p.Gems = p.Gems.Add(gems)
	s.settleGemCap(seat)
}

// settleGemCap 超过上限时挂起等待弃牌，否则回合结束
func (s *GameState) settleGemCap(seat int) {
	if s.Players[seat].Gems.Total() > GemCap {
		s.PendingDiscard = true
		return
	}
	s.finishTurn(seat)
}

func validateDiscard(s *GameState, p *Player, gems entities.GemPool) error {
	if !s.PendingDiscard {
		return newError(CodeInvalidGemSelection, p.ID, "当前没有需要弃掉的宝石")
	}
	if gems.HasNegative() || gems.IsZero() {
		return newError(CodeInvalidGemSelection, p.ID, "弃牌选择无效")
	}
	if !p.Gems.Covers(gems) {
		return newError(CodeInsufficientResources, p.ID, "弃掉的宝石超过持有数量")
	}
	if remain := p.Gems.Total() - gems.Total(); remain > GemCap {
		return newError(CodeGemCapExceeded, p.ID, "弃牌后仍持有 %d 个宝石", remain)
	}
	return nil
}

func (s *GameState) applyDiscard(seat int, gems entities.GemPool) {
	p := s.Players[seat]
	p.Gems = p.Gems.Sub(gems)
	s.Bank = s.Bank.Add(gems)
	s.PendingDiscard = false
	s.finishTurn(seat)
}
