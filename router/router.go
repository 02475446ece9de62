package router

import (
	"go-splendor/controller"
	"go-splendor/middleware"
	"go-splendor/utils"
	"go-splendor/ws"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine, ctl *controller.Controller, hub *ws.Hub, tokens *utils.TokenManager) {
	auth := r.Group("/auth")
	{
		auth.POST("/guest", ctl.GuestLogin)
		auth.POST("/refresh", ctl.RefreshToken)
	}

	// 房间接口
	room := r.Group("/room", middleware.AuthMiddleware(tokens))
	{
		room.POST("/create", ctl.CreateRoom)
		room.GET("/list", ctl.GetRoomList)
		room.GET("/:roomID", ctl.GetRoomInfo)
		room.POST("/:roomID/join", ctl.JoinRoom)
		room.POST("/:roomID/ai", ctl.AddAI)
		room.POST("/:roomID/start", ctl.StartGame)
		room.DELETE("/:roomID", ctl.DeleteRoom)
	}

	// 对局接口
	game := r.Group("/game", middleware.AuthMiddleware(tokens))
	{
		game.GET("/:roomID/state", ctl.GetState)
		game.GET("/:roomID/legal", ctl.GetLegalActions)
		game.POST("/:roomID/action", ctl.ApplyAction)
		game.GET("/:roomID/actions", ctl.GetActions)
		game.GET("/:roomID/replay", ctl.Replay)
	}

	r.GET("/history", middleware.AuthMiddleware(tokens), ctl.GetHistory)

	// WebSocket 路由，token 通过 query 传入
	r.GET("/ws", hub.HandleWebSocket)
}
