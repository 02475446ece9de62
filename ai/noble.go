package ai

import (
	"sort"

	"go-splendor/engine"
	"go-splendor/entities"
)

// nobleTargetThreshold 完成度达到该比例的贵族才作为追求目标
const nobleTargetThreshold = 0.3

// nobleTarget 正在追求的贵族，needed 为每种颜色还差的折扣卡数
type nobleTarget struct {
	noble      entities.NobleCard
	needed     entities.GemPool
	completion float64
}

// completionOf 以已有折扣计算贵族完成度，超出要求的部分不计
func completionOf(noble entities.NobleCard, bonus entities.GemPool) (needed entities.GemPool, completion float64) {
	required, have := 0, 0
	for _, c := range entities.ColoredGems {
		req := noble.Cost[c]
		if req == 0 {
			continue
		}
		required += req
		have += min(req, bonus[c])
		needed[c] = max(0, req-bonus[c])
	}
	if required == 0 {
		return needed, 1
	}
	return needed, float64(have) / float64(required)
}

// analyzeNobleTargets 按完成度从高到低返回可追求的贵族
func analyzeNobleTargets(s *engine.GameState, p *engine.Player) []nobleTarget {
	bonus := p.Bonuses()
	var targets []nobleTarget
	for _, n := range s.Nobles {
		needed, completion := completionOf(n, bonus)
		if completion >= nobleTargetThreshold {
			targets = append(targets, nobleTarget{noble: n, needed: needed, completion: completion})
		}
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].completion > targets[j].completion
	})
	return targets
}

// needsColor 是否有目标贵族还缺这种颜色
func needsColor(targets []nobleTarget, c entities.GemColor) bool {
	for _, t := range targets {
		if t.needed[c] > 0 {
			return true
		}
	}
	return false
}

type noblePriority int

const (
	priorityLow noblePriority = iota
	priorityMedium
	priorityHigh
)

// nobleStrategy 预留评估用的贵族视角，覆盖桌面上所有贵族
type nobleStrategy struct {
	noble      entities.NobleCard
	needed     entities.GemPool
	completion float64
	priority   noblePriority
}

func nobleStrategies(s *engine.GameState, p *engine.Player) []nobleStrategy {
	bonus := p.Bonuses()
	strategies := make([]nobleStrategy, 0, len(s.Nobles))
	for _, n := range s.Nobles {
		needed, completion := completionOf(n, bonus)
		priority := priorityLow
		switch {
		case completion > 0.5:
			priority = priorityHigh
		case completion > 0.3:
			priority = priorityMedium
		}
		strategies = append(strategies, nobleStrategy{noble: n, needed: needed, completion: completion, priority: priority})
	}
	return strategies
}
