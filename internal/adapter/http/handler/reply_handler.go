package handler

import (
	"pooled-trading-vault/internal/adapter/http/dto"
	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"
	"pooled-trading-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReplyHandler handles asynchronous confirmation deliveries from the
// venue relay.
type ReplyHandler struct {
	replySvc ports.ReplyService
}

// NewReplyHandler creates a new ReplyHandler.
func NewReplyHandler(replySvc ports.ReplyService) *ReplyHandler {
	return &ReplyHandler{replySvc: replySvc}
}

// HandleReply handles POST /api/v1/callbacks/reply.
func (h *ReplyHandler) HandleReply(c *gin.Context) {
	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.replySvc.Handle(c.Request.Context(), domain.Reply{
		ID:    req.ID,
		Data:  req.Data,
		Error: req.Error,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReplyOutcomeResponse{
		Action:     outcome.Action,
		Attributes: outcome.Attributes,
	})
}
