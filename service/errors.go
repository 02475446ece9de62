package service

import (
	"context"
	"errors"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/repository"
)

var (
	ErrInvalidMaxPlayers = errors.New("房间人数必须在 2 到 4 之间")
	ErrRoomFull          = errors.New("房间已满")
	ErrNotRoomOwner      = errors.New("只有房主可以进行此操作")
	ErrNotEnoughPlayers  = errors.New("至少需要 2 名玩家才能开始")
	ErrGameInProgress    = errors.New("游戏进行中")
	ErrNotInRoom         = errors.New("玩家不在房间中")
	ErrInvalidRequest    = errors.New("请求参数错误")
)

// 会话层错误码，规则错误直接使用 engine.ErrorCode
const (
	CodeRoomNotFound     = "room_not_found"
	CodeMatchNotStarted  = "match_not_started"
	CodeRoomBusy         = "room_busy"
	CodeRoomFull         = "room_full"
	CodeNotRoomOwner     = "not_room_owner"
	CodeNotEnoughPlayers = "not_enough_players"
	CodeGameInProgress   = "game_in_progress"
	CodeNotInRoom        = "not_in_room"
	CodeInvalidRequest   = "invalid_request"
	CodeInternal         = "internal_error"
)

// ErrorCode 把错误转换为返回给客户端的错误码
func ErrorCode(err error) string {
	if code := engine.CodeOf(err); code != "" {
		return string(code)
	}
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return CodeRoomNotFound
	case errors.Is(err, repository.ErrStateNotFound):
		return CodeMatchNotStarted
	case errors.Is(err, repository.ErrRoomBusy), errors.Is(err, context.DeadlineExceeded):
		return CodeRoomBusy
	case errors.Is(err, ErrRoomFull):
		return CodeRoomFull
	case errors.Is(err, ErrNotRoomOwner):
		return CodeNotRoomOwner
	case errors.Is(err, ErrNotEnoughPlayers):
		return CodeNotEnoughPlayers
	case errors.Is(err, ErrGameInProgress):
		return CodeGameInProgress
	case errors.Is(err, ErrNotInRoom):
		return CodeNotInRoom
	case errors.Is(err, ErrInvalidMaxPlayers), errors.Is(err, ErrInvalidRequest), errors.Is(err, entities.ErrUnknownGemColor):
		return CodeInvalidRequest
	}
	return CodeInternal
}
