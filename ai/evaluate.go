package ai

import (
	"go-splendor/engine"
	"go-splendor/entities"
)

// stage 按已购卡牌数划分的对局阶段，两者都不是即为后期
type stage struct {
	early bool
	mid   bool
}

func stageOf(p *engine.Player) stage {
	n := len(p.Cards)
	return stage{early: n < 2, mid: n >= 2 && n < 5}
}

// scoreNobleCard 贵族导向的购买评分
func scoreNobleCard(card entities.NormalCard, targets []nobleTarget) float64 {
	score := float64(card.Points) * 2
	for _, t := range targets {
		if n := t.needed[card.Bonus]; n > 0 {
			score += float64(n) * 3 * t.completion
		}
	}
	return score
}

// scarcityBonus 这种颜色的折扣越少加分越多，最多 3 分
func scarcityBonus(bonus entities.GemPool, c entities.GemColor) float64 {
	return float64(3 - min(3, bonus[c]))
}

// scoreCard 通用购买评分：分数、颜色稀缺、贵族贡献、费用
func scoreCard(s *engine.GameState, p *engine.Player, card entities.NormalCard) float64 {
	bonus := p.Bonuses()
	score := float64(card.Points)*4 + scarcityBonus(bonus, card.Bonus)

	for _, n := range s.Nobles {
		req := n.Cost[card.Bonus]
		if req == 0 {
			continue
		}
		if have := bonus[card.Bonus]; have < req {
			score += float64(n.Points) * float64(have+1) / float64(req) * 0.7
		}
	}

	score += float64(max(0, 10-card.TotalCost())) * 0.3
	if p.ReservedIndex(card.ID) >= 0 {
		score++
	}
	return score
}

// missingFor 每种颜色在折扣和持有宝石之外还差多少，不考虑黄金
func missingFor(p *engine.Player, bonus entities.GemPool, card entities.NormalCard) (missing entities.GemPool, total int) {
	for _, c := range entities.ColoredGems {
		if short := card.Cost[c] - bonus[c] - p.Gems[c]; short > 0 {
			missing[c] = short
			total += short
		}
	}
	return missing, total
}

// estimateTurns 按每回合约 2 个宝石估算还要几回合才能买下
func estimateTurns(p *engine.Player, bonus entities.GemPool, card entities.NormalCard) (turns int, soon bool) {
	_, total := missingFor(p, bonus, card)
	total = max(0, total-p.Gems[entities.Gold])
	turns = (total + 1) / 2
	return turns, turns <= 2
}

// scoreReservation 预留评分
func scoreReservation(s *engine.GameState, p *engine.Player, card entities.NormalCard, strategies []nobleStrategy) float64 {
	bonus := p.Bonuses()
	score := float64(card.Points) * 2

	if len(p.Cards) < 2 {
		score -= 3
	}
	if p.Points >= 10 {
		score += float64(card.Points) * 0.5
	}
	score += scarcityBonus(bonus, card.Bonus)

	for _, st := range strategies {
		if st.priority == priorityLow || st.needed[card.Bonus] == 0 {
			continue
		}
		if st.priority == priorityHigh {
			score += 2 * 1.5
		} else {
			score += 2
		}
	}

	score += blockingScore(s, p, card)

	turns, soon := estimateTurns(p, bonus, card)
	switch {
	case soon:
		score -= float64(max(0, 5-turns))
	case turns > 3:
		score += float64(min(3, card.Points))
	}

	if p.Gems.Total() >= engine.GemCap-1 {
		score -= 2
	}
	return score
}

// blockingScore 对手离某个贵族每种颜色都只差 1 张以内、且这张卡正好补上缺口时加分
func blockingScore(s *engine.GameState, p *engine.Player, card entities.NormalCard) float64 {
	score := 0.0
	for _, other := range s.Players {
		if other.ID == p.ID {
			continue
		}
		ob := other.Bonuses()
		for _, n := range s.Nobles {
			near, critical := true, false
			for _, c := range entities.ColoredGems {
				req := n.Cost[c]
				if req == 0 {
					continue
				}
				if ob[c] < req-1 {
					near = false
					break
				}
				if card.Bonus == c && ob[c] == req-1 {
					critical = true
				}
			}
			if near && critical {
				score += 3
			}
		}
	}
	return score
}
