package controller

import (
	"net/http"

	"go-splendor/engine"
	"go-splendor/service"
	"go-splendor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomNotifier 状态变化后通知 ws 连接
type RoomNotifier interface {
	Broadcast(roomID string)
	JoinAsAI(roomID, playerID string)
	CloseRoom(roomID string)
	ResetAI(roomID string)
	OnlineStatus(roomID string) map[string]bool
}

type Controller struct {
	svc    *service.GameService
	hub    RoomNotifier
	tokens *utils.TokenManager
	log    *zap.Logger
}

func New(svc *service.GameService, hub RoomNotifier, tokens *utils.TokenManager, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{svc: svc, hub: hub, tokens: tokens, log: log.Named("http")}
}

func ok(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         msg,
		"data":        data,
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status_code": http.StatusBadRequest,
		"code":        service.CodeInvalidRequest,
		"msg":         msg,
	})
}

// fail 按错误码选择 HTTP 状态
func (ctl *Controller) fail(c *gin.Context, err error) {
	code := service.ErrorCode(err)
	status := statusOf(code)
	if status == http.StatusInternalServerError {
		ctl.log.Error("❌ 请求失败", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{
		"status_code": status,
		"code":        code,
		"msg":         err.Error(),
	})
}

func statusOf(code string) int {
	switch code {
	case service.CodeRoomNotFound, service.CodeMatchNotStarted, string(engine.CodeCardNotFound):
		return http.StatusNotFound
	case service.CodeNotRoomOwner, service.CodeNotInRoom, string(engine.CodePlayerNotFound):
		return http.StatusForbidden
	case service.CodeInvalidRequest,
		string(engine.CodeUnknownActionType),
		string(engine.CodeInvalidGemSelection),
		string(engine.CodeSlotUnavailable):
		return http.StatusBadRequest
	case service.CodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusConflict
}
