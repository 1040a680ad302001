package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SecondBrainGo/config"
	"SecondBrainGo/models"
	"SecondBrainGo/services"
)

type ChatController struct {
	agent *services.AgentService
}

func NewChatController(agent *services.AgentService) *ChatController {
	return &ChatController{agent: agent}
}

// SendMessage 处理一轮对话请求
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	result, err := cc.agent.Run(c.Request.Context(), req.Message)
	if err != nil {
		config.Logger.Errorw("处理对话失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "处理对话失败"})
		return
	}
	c.JSON(http.StatusOK, result)
}
