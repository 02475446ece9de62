package engine

import (
	"errors"
	"fmt"
)

// ErrorCode 规则校验失败的类型，调用方根据它决定重试、拒绝还是提示玩家
type ErrorCode string

const (
	CodeNotYourTurn           ErrorCode = "not_your_turn"
	CodePlayerNotFound        ErrorCode = "player_not_found"
	CodeCardNotFound          ErrorCode = "card_not_found"
	CodeInsufficientResources ErrorCode = "insufficient_resources"
	CodeInvalidGemSelection   ErrorCode = "invalid_gem_selection"
	CodeReserveLimitReached   ErrorCode = "reserve_limit_reached"
	CodeGemCapExceeded        ErrorCode = "gem_cap_exceeded"
	CodeGameAlreadyFinished   ErrorCode = "game_already_finished"
	CodeUnknownActionType     ErrorCode = "unknown_action_type"
	CodeSlotUnavailable       ErrorCode = "slot_unavailable"
)

// EngineError 规则错误。返回它时 GameState 一定没有被修改
type EngineError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	PlayerID string    `json:"playerId,omitempty"`
	CardID   int       `json:"cardId,omitempty"`
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is 按 Code 比较，便于 errors.Is(err, engine.ErrNotYourTurn)
func (e *EngineError) Is(target error) bool {
	t, ok := target.(*EngineError)
	return ok && t.Code == e.Code
}

var (
	ErrNotYourTurn           = &EngineError{Code: CodeNotYourTurn}
	ErrPlayerNotFound        = &EngineError{Code: CodePlayerNotFound}
	ErrCardNotFound          = &EngineError{Code: CodeCardNotFound}
	ErrInsufficientResources = &EngineError{Code: CodeInsufficientResources}
	ErrInvalidGemSelection   = &EngineError{Code: CodeInvalidGemSelection}
	ErrReserveLimitReached   = &EngineError{Code: CodeReserveLimitReached}
	ErrGemCapExceeded        = &EngineError{Code: CodeGemCapExceeded}
	ErrGameAlreadyFinished   = &EngineError{Code: CodeGameAlreadyFinished}
	ErrUnknownActionType     = &EngineError{Code: CodeUnknownActionType}
	ErrSlotUnavailable       = &EngineError{Code: CodeSlotUnavailable}
)

// 开局参数错误，不属于对局规则
var (
	ErrInvalidSeatCount = errors.New("玩家人数必须在 2 到 4 之间")
	ErrDuplicateSeat    = errors.New("玩家 ID 重复")
)

func newError(code ErrorCode, playerID, format string, args ...any) *EngineError {
	return &EngineError{Code: code, PlayerID: playerID, Message: fmt.Sprintf(format, args...)}
}

// CodeOf 取出错误码，非 EngineError 返回空串
func CodeOf(err error) ErrorCode {
	var e *EngineError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
