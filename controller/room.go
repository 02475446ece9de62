package controller

import (
	"go-splendor/dto"
	"go-splendor/entities"
	"go-splendor/middleware"
	"go-splendor/service"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) roomInfo(info *entities.RoomInfo) dto.RoomInfo {
	online := ctl.hub.OnlineStatus(info.RoomID)
	players := make([]dto.RoomPlayer, 0, len(info.Players))
	for _, id := range info.Players {
		players = append(players, dto.RoomPlayer{
			PlayerID: id,
			Online:   online[id],
			IsAI:     service.IsAIPlayer(id),
		})
	}
	return dto.RoomInfo{
		RoomID:     info.RoomID,
		UserID:     info.UserID,
		MaxPlayers: info.MaxPlayers,
		Status:     info.GameStatus,
		RoomPlayer: players,
	}
}

func (ctl *Controller) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "缺少必要字段")
		return
	}
	info, err := ctl.svc.CreateRoom(c.Request.Context(), middleware.UserID(c), req.MaxPlayers)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ok(c, "房间创建成功", dto.CreateRoomResponse{RoomID: info.RoomID})
}

func (ctl *Controller) GetRoomList(c *gin.Context) {
	rooms, err := ctl.svc.ListRooms(c.Request.Context())
	if err != nil {
		ctl.fail(c, err)
		return
	}
	list := dto.GetRoomList{Rooms: make([]dto.RoomInfo, 0, len(rooms))}
	for _, info := range rooms {
		list.Rooms = append(list.Rooms, ctl.roomInfo(info))
	}
	ok(c, "获取成功", list)
}

func (ctl *Controller) GetRoomInfo(c *gin.Context) {
	info, err := ctl.svc.GetRoom(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ok(c, "获取成功", ctl.roomInfo(info))
}

func (ctl *Controller) JoinRoom(c *gin.Context) {
	roomID := c.Param("roomID")
	info, err := ctl.svc.JoinRoom(c.Request.Context(), roomID, middleware.UserID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ctl.hub.Broadcast(roomID)
	ok(c, "加入成功", ctl.roomInfo(info))
}

func (ctl *Controller) AddAI(c *gin.Context) {
	roomID := c.Param("roomID")
	aiID, _, err := ctl.svc.AddAIPlayer(c.Request.Context(), roomID, middleware.UserID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ctl.hub.JoinAsAI(roomID, aiID)
	ctl.hub.Broadcast(roomID)
	ok(c, "AI 加入成功", dto.AddAIResponse{PlayerID: aiID})
}

func (ctl *Controller) DeleteRoom(c *gin.Context) {
	roomID := c.Param("roomID")
	if err := ctl.svc.DeleteRoom(c.Request.Context(), roomID, middleware.UserID(c)); err != nil {
		ctl.fail(c, err)
		return
	}
	ctl.hub.CloseRoom(roomID)
	ok(c, "房间删除成功", nil)
}
