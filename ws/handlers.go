package ws

import (
	"context"
	"fmt"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/service"
	"go-splendor/utils"

	"go.uber.org/zap"
)

// 消息处理函数类型，返回的错误会以 error 消息回给发送者
type messageHandler func(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error

// 消息处理函数映射
var messageHandlers = map[string]messageHandler{
	"start_game":    handleStartGameMessage,
	"restart_game":  handleStartGameMessage,
	"get_gem":       handleGetGemMessage,
	"buy_card":      handleBuyCardMessage,
	"preserve_card": handleReserveCardMessage,
	"discard_gem":   handleDiscardGemMessage,
	"add_ai":        handleAddAIMessage,
	"legal_actions": handleLegalActionsMessage,
}

// dispatch 按 type 找到处理函数
func (h *Hub) dispatch(ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) {
	msgType, _ := msgMap["type"].(string)
	handler, found := messageHandlers[msgType]
	if !found {
		h.log.Warn("⚠️ 未知的消息类型", zap.String("type", msgType), zap.String("playerID", playerID))
		h.sendTo(conn, dto.ErrorMessage{Type: "error", Code: string(engine.CodeUnknownActionType), Message: fmt.Sprintf("未知的消息类型: %s", msgType)})
		return
	}
	if err := handler(h, ctx, conn, roomID, playerID, msgMap); err != nil {
		h.log.Info("❌ 处理消息失败",
			zap.String("roomID", roomID),
			zap.String("playerID", playerID),
			zap.String("type", msgType),
			zap.Error(err))
		h.sendError(conn, err)
	}
}

// decodePayload msgMap["payload"] 解码到结构体
func decodePayload(msgMap map[string]interface{}, out interface{}) error {
	payload, ok := msgMap["payload"]
	if !ok || payload == nil {
		return fmt.Errorf("%w: 缺少 payload", service.ErrInvalidRequest)
	}
	if err := utils.Decode(payload, out); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidRequest, err)
	}
	return nil
}

func decodeGems(msgMap map[string]interface{}) (entities.GemPool, error) {
	var p dto.GemPayload
	if err := decodePayload(msgMap, &p); err != nil {
		return entities.GemPool{}, err
	}
	return entities.ParseGemPool(p.Gems)
}

func (h *Hub) apply(ctx context.Context, roomID string, action engine.Action) error {
	if _, err := h.svc.ApplyAction(ctx, roomID, action); err != nil {
		return err
	}
	h.Broadcast(roomID)
	return nil
}

func handleStartGameMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	if _, err := h.svc.StartMatch(ctx, roomID, playerID); err != nil {
		return err
	}
	h.ResetAI(roomID)
	h.Broadcast(roomID)
	return nil
}

func handleGetGemMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	gems, err := decodeGems(msgMap)
	if err != nil {
		return err
	}
	return h.apply(ctx, roomID, engine.TakeGems(playerID, gems))
}

func handleDiscardGemMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	gems, err := decodeGems(msgMap)
	if err != nil {
		return err
	}
	return h.apply(ctx, roomID, engine.DiscardGems(playerID, gems))
}

func handleBuyCardMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	var p dto.CardPayload
	if err := decodePayload(msgMap, &p); err != nil {
		return err
	}
	return h.apply(ctx, roomID, engine.PurchaseCard(playerID, p.CardID))
}

// handleReserveCardMessage cardId 为 0 时从 tier 牌堆盲抽
func handleReserveCardMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	var p dto.CardPayload
	if err := decodePayload(msgMap, &p); err != nil {
		return err
	}
	if p.CardID == 0 {
		return h.apply(ctx, roomID, engine.ReserveFromDeck(playerID, p.Tier))
	}
	return h.apply(ctx, roomID, engine.ReserveCard(playerID, p.CardID))
}

func handleAddAIMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	aiID, _, err := h.svc.AddAIPlayer(ctx, roomID, playerID)
	if err != nil {
		return err
	}
	h.JoinAsAI(roomID, aiID)
	h.Broadcast(roomID)
	return nil
}

func handleLegalActionsMessage(h *Hub, ctx context.Context, conn WriteOnlyConn, roomID, playerID string, msgMap map[string]interface{}) error {
	sum, err := h.svc.LegalActions(ctx, roomID, playerID)
	if err != nil {
		return err
	}
	h.sendTo(conn, dto.LegalMessage{Type: "legal_actions", Legal: sum})
	return nil
}
