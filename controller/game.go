package controller

import (
	"strconv"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/middleware"
	"go-splendor/ws"

	"github.com/gin-gonic/gin"
)

// view 以请求者的视角返回对局
func (ctl *Controller) view(c *gin.Context, roomID string, state *engine.GameState) (dto.SyncMessage, bool) {
	info, err := ctl.svc.SeatOf(c.Request.Context(), roomID, middleware.UserID(c))
	if err != nil {
		ctl.fail(c, err)
		return dto.SyncMessage{}, false
	}
	return ws.BuildSyncMessage(state, info, middleware.UserID(c), ctl.hub.OnlineStatus(roomID)), true
}

func (ctl *Controller) StartGame(c *gin.Context) {
	roomID := c.Param("roomID")
	state, err := ctl.svc.StartMatch(c.Request.Context(), roomID, middleware.UserID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ctl.hub.ResetAI(roomID)
	ctl.hub.Broadcast(roomID)
	if view, found := ctl.view(c, roomID, state); found {
		ok(c, "游戏开始", view)
	}
}

func (ctl *Controller) GetState(c *gin.Context) {
	roomID := c.Param("roomID")
	state, err := ctl.svc.GetState(c.Request.Context(), roomID)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	if view, found := ctl.view(c, roomID, state); found {
		ok(c, "获取成功", view)
	}
}

func (ctl *Controller) GetLegalActions(c *gin.Context) {
	sum, err := ctl.svc.LegalActions(c.Request.Context(), c.Param("roomID"), middleware.UserID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ok(c, "获取成功", sum)
}

// ApplyAction 与 ws 消息走同一条路径，成功后广播给房间
func (ctl *Controller) ApplyAction(c *gin.Context) {
	roomID := c.Param("roomID")
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "缺少必要字段")
		return
	}
	action, err := req.Action(middleware.UserID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	state, err := ctl.svc.ApplyAction(c.Request.Context(), roomID, action)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ctl.hub.Broadcast(roomID)
	if view, found := ctl.view(c, roomID, state); found {
		ok(c, "操作成功", view)
	}
}

func (ctl *Controller) GetActions(c *gin.Context) {
	roomID := c.Param("roomID")
	if _, err := ctl.svc.SeatOf(c.Request.Context(), roomID, middleware.UserID(c)); err != nil {
		ctl.fail(c, err)
		return
	}
	actions, err := ctl.svc.Actions(c.Request.Context(), roomID)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ok(c, "获取成功", actions)
}

// Replay 用种子和动作日志重建当前对局
func (ctl *Controller) Replay(c *gin.Context) {
	roomID := c.Param("roomID")
	state, err := ctl.svc.ReplayMatch(c.Request.Context(), roomID)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	if view, found := ctl.view(c, roomID, state); found {
		ok(c, "回放成功", view)
	}
}

func (ctl *Controller) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	results, err := ctl.svc.History(c.Request.Context(), limit)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ok(c, "获取成功", results)
}

var _ RoomNotifier = (*ws.Hub)(nil)
