package handlers

import (
	"net/http"

	"craftlink_backend/internal/services"
	"craftlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	{
		messages.POST("", h.Send)
		messages.GET("/inbox", h.Inbox)
		messages.GET("/sent", h.Sent)
		messages.PUT("/:messageId/read", h.MarkAsRead)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	m, err := h.messageService.Send(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	messages, err := h.messageService.Inbox(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Sent(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	messages, err := h.messageService.Sent(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	if err := h.messageService.MarkAsRead(c.Request.Context(), actor, c.Param("messageId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
