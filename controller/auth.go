package controller

import (
	"net/http"

	"go-splendor/dto"

	"github.com/gin-gonic/gin"
)

// GuestLogin 游客登录，用前端生成的用户 ID 签发 token
func (ctl *Controller) GuestLogin(c *gin.Context) {
	var req dto.GuestLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "缺少必要字段")
		return
	}
	ctl.issueTokens(c, req.UserID)
}

func (ctl *Controller) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "缺少必要字段")
		return
	}
	claims, err := ctl.tokens.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status_code": http.StatusUnauthorized, "msg": "refresh token 无效或已过期"})
		return
	}
	ctl.issueTokens(c, claims.UserID)
}

func (ctl *Controller) issueTokens(c *gin.Context, userID string) {
	access, err := ctl.tokens.GenerateAccessToken(userID)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	refresh, err := ctl.tokens.GenerateRefreshToken(userID)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ok(c, "登录成功", dto.TokenResponse{UserID: userID, AccessToken: access, RefreshToken: refresh})
}
