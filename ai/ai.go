// Package ai 为 AI 座位挑选下一步动作。所有评分都是对当前状态的线性加权，不做搜索，
// 相同状态总是得到相同动作。
package ai

import (
	"errors"
	"sort"

	"go-splendor/engine"
	"go-splendor/entities"

	"go.uber.org/zap"
)

// ErrSeatNotFound 座位不在对局中，属于调用方的使用错误
var ErrSeatNotFound = errors.New("AI玩家未找到")

// blindReserveTier 盲抽预留只考虑三级牌堆
const blindReserveTier = 3

type Decider struct {
	log *zap.Logger
}

func NewDecider(log *zap.Logger) *Decider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decider{log: log.Named("ai")}
}

var defaultDecider = NewDecider(nil)

// ChooseAction 使用不输出日志的默认 Decider
func ChooseAction(s *engine.GameState, playerID string) (engine.Action, error) {
	return defaultDecider.ChooseAction(s, playerID)
}

// ChooseAction 返回一个动作，不修改 state。返回前用 engine.Validate 检查，
// 不合法时退回到尽量拿宝石
func (d *Decider) ChooseAction(s *engine.GameState, playerID string) (engine.Action, error) {
	p, seat := s.PlayerByID(playerID)
	if p == nil {
		return engine.Action{}, ErrSeatNotFound
	}

	var action engine.Action
	if s.PendingDiscard && seat == s.CurrentSeat {
		targets := analyzeNobleTargets(s, p)
		action = engine.DiscardGems(playerID, chooseDiscard(p, priorities(s, p, targets)))
	} else {
		action = d.decide(s, p)
	}

	if err := engine.Validate(s, action); err != nil {
		d.log.Warn("⚠️ AI 动作不合法，改为默认拿宝石",
			zap.String("playerID", playerID),
			zap.String("action", string(action.Kind)),
			zap.Error(err))
		return engine.DisconnectedSeatAction(s, playerID)
	}
	return action, nil
}

func (d *Decider) decide(s *engine.GameState, p *engine.Player) engine.Action {
	st := stageOf(p)
	targets := analyzeNobleTargets(s, p)
	purchasable := engine.PurchasableCards(s, p)

	// 1. 贵族需要的颜色
	if len(targets) > 0 {
		var best *entities.NormalCard
		bestScore := 0.0
		for i, card := range purchasable {
			if !needsColor(targets, card.Bonus) {
				continue
			}
			if score := scoreNobleCard(card, targets); best == nil || score > bestScore {
				best, bestScore = &purchasable[i], score
			}
		}
		if best != nil {
			d.log.Debug("🤖 购买贵族目标卡牌", zap.String("playerID", p.ID), zap.Int("cardID", best.ID), zap.Float64("score", bestScore))
			return engine.PurchaseCard(p.ID, best.ID)
		}
	}

	// 2. 任意可购买的卡
	if len(purchasable) > 0 {
		best, bestScore := purchasable[0], scoreCard(s, p, purchasable[0])
		for _, card := range purchasable[1:] {
			if score := scoreCard(s, p, card); score > bestScore {
				best, bestScore = card, score
			}
		}
		d.log.Debug("🤖 购买卡牌", zap.String("playerID", p.ID), zap.Int("cardID", best.ID), zap.Float64("score", bestScore))
		return engine.PurchaseCard(p.ID, best.ID)
	}

	pri := priorities(s, p, targets)
	sel := selectGems(s, p, pri)
	gemValue := gemSelectionValue(s, p, targets, sel)

	// 3. 预留还是拿宝石
	if len(p.Reserved) < engine.ReserveLimit {
		if action, ok := d.considerReserve(s, p, st, gemValue); ok {
			return action
		}
	}

	// 4. 拿宝石
	if !sel.IsZero() {
		d.log.Debug("🤖 拿宝石", zap.String("playerID", p.ID), zap.Stringer("gems", sel), zap.Float64("value", gemValue))
		return engine.TakeGems(p.ID, sel)
	}
	return engine.TakeGems(p.ID, engine.BestEffortTake(s.Bank))
}

type scoredCard struct {
	card  entities.NormalCard
	score float64
}

func (d *Decider) considerReserve(s *engine.GameState, p *engine.Player, st stage, gemValue float64) (engine.Action, bool) {
	strategies := nobleStrategies(s, p)

	// 高等级优先，同分时保持这个顺序
	var scored []scoredCard
	for tier := len(s.Display) - 1; tier >= 0; tier-- {
		for _, card := range s.Display[tier] {
			scored = append(scored, scoredCard{card: card, score: scoreReservation(s, p, card, strategies)})
		}
	}
	if len(scored) == 0 {
		return engine.Action{}, false
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	best := scored[0]

	threshold := 3.0
	switch {
	case st.early:
		threshold = 8
	case st.mid:
		threshold = 5
	}
	threshold += float64(len(p.Reserved)) * 1.5

	if best.score > gemValue && best.score > threshold {
		d.log.Debug("🤖 预留卡牌",
			zap.String("playerID", p.ID),
			zap.Int("cardID", best.card.ID),
			zap.Float64("score", best.score),
			zap.Float64("gemValue", gemValue),
			zap.Float64("threshold", threshold))
		return engine.ReserveCard(p.ID, best.card.ID), true
	}

	if len(s.Decks[blindReserveTier-1]) > 0 &&
		p.Gems[entities.Gold] < 3 &&
		!st.early &&
		gemValue < 4 &&
		len(p.Reserved) < 2 {
		d.log.Debug("🤖 从牌堆预留", zap.String("playerID", p.ID), zap.Float64("gemValue", gemValue))
		return engine.ReserveFromDeck(p.ID, blindReserveTier), true
	}
	return engine.Action{}, false
}
