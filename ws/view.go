package ws

import (
	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/service"
)

// BuildSyncMessage 生成发给 viewer 的同步消息。state 为 nil 表示还未开局。
// 其他玩家从牌堆盲抽的预留卡只暴露等级
func BuildSyncMessage(state *engine.GameState, info *entities.RoomInfo, viewer string, online map[string]bool) dto.SyncMessage {
	msg := dto.SyncMessage{
		Type:       "sync",
		PlayerID:   viewer,
		PlayerData: make(map[string]dto.PlayerView),
		RoomData: dto.RoomData{
			Card:     make(map[int][]entities.NormalCard),
			DeckSize: make(map[int]int),
			RoomInfo: info,
		},
	}

	if state == nil {
		for _, id := range info.Players {
			msg.PlayerData[id] = dto.PlayerView{Name: id, Online: online[id], IsAI: service.IsAIPlayer(id)}
		}
		return msg
	}

	for _, p := range state.Players {
		view := dto.PlayerView{
			Name:      p.Name,
			Online:    online[p.ID],
			IsAI:      service.IsAIPlayer(p.ID),
			Gem:       p.Gems,
			Bonus:     p.Bonuses(),
			Card:      p.Cards,
			NobleCard: p.Nobles,
			Score:     p.Points,
		}
		view.Reserve = make([]engine.ReservedCard, len(p.Reserved))
		for i, r := range p.Reserved {
			if r.Blind && p.ID != viewer {
				r = engine.ReservedCard{NormalCard: entities.NormalCard{Level: r.Level}, Blind: true}
			}
			view.Reserve[i] = r
		}
		msg.PlayerData[p.ID] = view
	}

	for tier := range state.Display {
		level := tier + 1
		msg.RoomData.Card[level] = state.Display[tier]
		msg.RoomData.DeckSize[level] = len(state.Decks[tier])
	}
	msg.RoomData.Gems = state.Bank
	msg.RoomData.Nobles = state.Nobles
	if current := state.CurrentPlayer(); current != nil && !state.Finished() {
		msg.RoomData.CurrentPlayer = current.ID
	}
	msg.RoomData.Version = state.Version()
	msg.RoomData.PendingDiscard = state.PendingDiscard
	msg.RoomData.LastRound = state.LastRound
	msg.RoomData.Winner = state.Winner
	msg.RoomData.TiedPlayers = state.TiedPlayers
	return msg
}
