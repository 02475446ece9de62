package engine

import "go-splendor/entities"

// DisconnectedSeatAction 掉线座位的托管动作：待弃牌时弃掉最多的宝石，
// 否则尽量拿宝石，银行空了就空拿跳过。是否执行由调用方决定
func DisconnectedSeatAction(s *GameState, playerID string) (Action, error) {
	p, seat := s.PlayerByID(playerID)
	if p == nil {
		return Action{}, newError(CodePlayerNotFound, playerID, "玩家 %s 不在本局中", playerID)
	}
	if seat == s.CurrentSeat && s.PendingDiscard {
		return DiscardGems(playerID, surplusDiscard(p.Gems)), nil
	}
	return TakeGems(playerID, BestEffortTake(s.Bank)), nil
}

// surplusDiscard 每次从持有最多的彩色宝石里弃一个，彩色不够再弃黄金
func surplusDiscard(held entities.GemPool) entities.GemPool {
	var discard entities.GemPool
	for left := held; left.Total() > GemCap; {
		pick := entities.Gold
		for _, c := range entities.ColoredGems {
			if left[c] > 0 && (pick == entities.Gold || left[c] > left[pick]) {
				pick = c
			}
		}
		left[pick]--
		discard[pick]++
	}
	return discard
}
