package entities

type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"   // 等待玩家加入房间
	RoomStatusPlaying  RoomStatus = "playing"   // 游戏中
	RoomStatusLastTurn RoomStatus = "last_turn" // 有人达到 15 分，最后一轮
	RoomStatusEnd      RoomStatus = "end"
)

type RoomInfo struct {
	RoomID     string     `json:"roomID"`
	UserID     string     `json:"userID"` // 房主
	MaxPlayers int        `json:"maxPlayers"`
	GameStatus RoomStatus `json:"gameStatus"`
	Players    []string   `json:"players"` // 座位顺序
	MatchID    string     `json:"matchID,omitempty"`
}

// HasPlayer 玩家是否已在房间内
func (r *RoomInfo) HasPlayer(playerID string) bool {
	for _, id := range r.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

// IsFull 房间是否已满
func (r *RoomInfo) IsFull() bool {
	return len(r.Players) >= r.MaxPlayers
}
