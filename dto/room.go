package dto

import "go-splendor/entities"

type CreateRoomRequest struct {
	MaxPlayers int `json:"maxPlayers" binding:"required,min=2,max=4"`
}

type CreateRoomResponse struct {
	RoomID string `json:"roomID"`
}

type RoomPlayer struct {
	PlayerID string `json:"playerID"`
	Online   bool   `json:"online"`
	IsAI     bool   `json:"isAI"`
}

type RoomInfo struct {
	RoomID     string              `json:"roomID"`
	UserID     string              `json:"userID"`
	MaxPlayers int                 `json:"maxPlayers"`
	Status     entities.RoomStatus `json:"status"`
	RoomPlayer []RoomPlayer        `json:"roomPlayer"`
}

type GetRoomList struct {
	Rooms []RoomInfo `json:"rooms"`
}

type AddAIResponse struct {
	PlayerID string `json:"playerID"`
}
