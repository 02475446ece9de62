package ai

import (
	"sort"

	"go-splendor/engine"
	"go-splendor/entities"
)

// almostThreshold 加上黄金后最多还差几个宝石算"快买得起"
const almostThreshold = 3

// gemPriority 每种彩色宝石的需求权重
type gemPriority [entities.GemKinds]float64

// priorities 由贵族目标和快买得起的卡牌共同决定
func priorities(s *engine.GameState, p *engine.Player, targets []nobleTarget) gemPriority {
	var pri gemPriority
	for _, t := range targets {
		for _, c := range entities.ColoredGems {
			pri[c] += float64(t.needed[c]) * (1 + t.completion)
		}
	}

	bonus := p.Bonuses()
	for _, card := range engine.CandidateCards(s, p) {
		missing, total := missingFor(p, bonus, card)
		if total > p.Gems[entities.Gold]+almostThreshold {
			continue
		}
		for _, c := range entities.ColoredGems {
			pri[c] += float64(missing[c]) * (1 + float64(card.Points)*0.5)
		}
	}
	return pri
}

// byPriority 按权重从高到低排序，权重相同保持固定颜色顺序
func (pri gemPriority) byPriority(colors []entities.GemColor) []entities.GemColor {
	sort.SliceStable(colors, func(i, j int) bool {
		return pri[colors[i]] > pri[colors[j]]
	})
	return colors
}

func bankColors(bank entities.GemPool, minimum int) []entities.GemColor {
	var colors []entities.GemColor
	for _, c := range entities.ColoredGems {
		if bank[c] >= minimum {
			colors = append(colors, c)
		}
	}
	return colors
}

// selectGems 拿宝石的选择，不会让持有数超过上限；拿不了返回空
func selectGems(s *engine.GameState, p *engine.Player, pri gemPriority) entities.GemPool {
	var sel entities.GemPool
	held := p.Gems.Total()
	if held >= engine.GemCap {
		return sel
	}
	maxTake := min(3, engine.GemCap-held)

	if maxTake >= 2 {
		doubles := pri.byPriority(bankColors(s.Bank, engine.DoubleTakeMinimum))
		if len(doubles) > 0 && pri[doubles[0]] > 1 {
			sel[doubles[0]] = 2
			return sel
		}
	}

	available := pri.byPriority(bankColors(s.Bank, 1))
	for i := 0; i < len(available) && i < maxTake; i++ {
		sel[available[i]] = 1
	}
	return sel
}

// gemSelectionValue 与最佳预留比较用的拿宝石价值
func gemSelectionValue(s *engine.GameState, p *engine.Player, targets []nobleTarget, sel entities.GemPool) float64 {
	value := 5.0
	if len(p.Cards) < 2 {
		value += 3
	}
	count := sel.Total()
	value += float64(count) * 0.8

	// 对预留卡的帮助，取最大的一张
	reservedBenefit := 0.0
	for _, r := range p.Reserved {
		reservedBenefit = max(reservedBenefit, selectionBenefit(p, r.NormalCard, sel, 1.2))
	}
	value += reservedBenefit

	for _, t := range targets {
		for _, card := range s.VisibleCards() {
			if t.needed[card.Bonus] > 0 {
				value += selectionBenefit(p, card, sel, t.completion)
			}
		}
	}

	for _, c := range sel.NonZero() {
		if scarcity := 4 - min(4, s.Bank[c]-sel[c]); scarcity > 0 {
			value += float64(scarcity) * 0.4
		}
	}

	value -= float64(max(0, p.Gems.Total()+count-8)) * 2
	return value
}

// selectionBenefit 所选宝石填补卡牌费用缺口的数量乘以权重
func selectionBenefit(p *engine.Player, card entities.NormalCard, sel entities.GemPool, weight float64) float64 {
	benefit := 0.0
	for _, c := range sel.NonZero() {
		if gap := card.Cost[c] - p.Gems[c]; gap > 0 {
			benefit += float64(min(sel[c], gap)) * weight
		}
	}
	return benefit
}

// chooseDiscard 弃掉超出上限的宝石：先弃权重最低的颜色，同权重弃持有多的，黄金最后
func chooseDiscard(p *engine.Player, pri gemPriority) entities.GemPool {
	var discard entities.GemPool
	left := p.Gems
	for left.Total() > engine.GemCap {
		pick := entities.Gold
		for _, c := range entities.ColoredGems {
			if left[c] == 0 {
				continue
			}
			if pick == entities.Gold || pri[c] < pri[pick] || (pri[c] == pri[pick] && left[c] > left[pick]) {
				pick = c
			}
		}
		left[pick]--
		discard[pick]++
	}
	return discard
}
