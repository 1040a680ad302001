package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SecondBrainGo/config"
	"SecondBrainGo/models"
	"SecondBrainGo/store"
)

// MemoryController 调试用，直接返回原始记忆文档
type MemoryController struct {
	store *store.Store
}

func NewMemoryController(st *store.Store) *MemoryController {
	return &MemoryController{store: st}
}

// GetMemory 返回完整文档内容
func (mc *MemoryController) GetMemory(c *gin.Context) {
	var mem *models.Memory
	err := mc.store.View(func(m *models.Memory) error {
		mem = m
		return nil
	})
	if err != nil {
		config.Logger.Errorw("读取记忆文档失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取记忆文档失败"})
		return
	}
	c.JSON(http.StatusOK, mem)
}
