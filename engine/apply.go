package engine

import "go-splendor/entities"

// ApplyAction 校验并执行一个动作，返回新的状态。
// 入参 state 永远不会被修改：校验失败直接返回错误，成功时在深拷贝上执行
func ApplyAction(state *GameState, action Action) (*GameState, error) {
	if err := Validate(state, action); err != nil {
		return nil, err
	}

	next := state.Clone()
	_, seat := next.PlayerByID(action.PlayerID)

	switch action.Kind {
	case ActionTakeGems:
		next.applyTakeGems(seat, action.Gems)
	case ActionPurchaseCard:
		next.applyPurchase(seat, action.CardID)
	case ActionReserveCard:
		next.applyReserve(seat, action)
	case ActionDiscardGems:
		next.applyDiscard(seat, action.Gems)
	}

	next.Actions = append(next.Actions, action)
	return next, nil
}

// Validate 只读校验，不修改状态
func Validate(state *GameState, action Action) error {
	switch action.Kind {
	case ActionTakeGems, ActionPurchaseCard, ActionReserveCard, ActionDiscardGems:
	default:
		return newError(CodeUnknownActionType, action.PlayerID, "未知的动作类型 %q", action.Kind)
	}

	if state.Finished() {
		return newError(CodeGameAlreadyFinished, action.PlayerID, "游戏已结束")
	}

	player, seat := state.PlayerByID(action.PlayerID)
	if player == nil {
		return newError(CodePlayerNotFound, action.PlayerID, "玩家 %s 不在本局中", action.PlayerID)
	}
	if seat != state.CurrentSeat {
		return newError(CodeNotYourTurn, action.PlayerID, "不是玩家 %s 的回合", action.PlayerID)
	}

	if state.PendingDiscard && action.Kind != ActionDiscardGems {
		return newError(CodeGemCapExceeded, action.PlayerID,
			"持有 %d 个宝石，需要先弃到 %d 个", player.Gems.Total(), GemCap)
	}

	switch action.Kind {
	case ActionTakeGems:
		return validateTakeGems(state, player, action.Gems)
	case ActionPurchaseCard:
		return validatePurchase(state, player, action.CardID)
	case ActionReserveCard:
		return validateReserve(state, player, action)
	default:
		return validateDiscard(state, player, action.Gems)
	}
}

// finishTurn 动作完整结束后：检查是否进入最后一轮，轮到下一个座位，最后一轮绕回触发者时结算
func (s *GameState) finishTurn(seat int) {
	if !s.LastRound && s.Players[seat].Points >= PointsToWin {
		s.LastRound = true
		s.LastRoundSeat = seat
		s.Status = entities.RoomStatusLastTurn
	}

	s.Turn++
	s.CurrentSeat = (seat + 1) % len(s.Players)

	if s.LastRound && s.CurrentSeat == s.LastRoundSeat {
		s.finish()
	}
}

// finish 结算：分数最高者胜，同分时卡牌少者胜，仍然并列则不指定胜者
func (s *GameState) finish() {
	s.Status = entities.RoomStatusEnd

	best := -1
	var leaders []*Player
	for _, p := range s.Players {
		switch {
		case p.Points > best:
			best = p.Points
			leaders = []*Player{p}
		case p.Points == best:
			leaders = append(leaders, p)
		}
	}

	fewest := -1
	var winners []*Player
	for _, p := range leaders {
		switch {
		case fewest < 0 || len(p.Cards) < fewest:
			fewest = len(p.Cards)
			winners = []*Player{p}
		case len(p.Cards) == fewest:
			winners = append(winners, p)
		}
	}

	if len(winners) == 1 {
		s.Winner = winners[0].ID
		return
	}
	s.Winner = ""
	for _, p := range winners {
		s.TiedPlayers = append(s.TiedPlayers, p.ID)
	}
}
