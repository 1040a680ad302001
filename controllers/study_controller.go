package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"SecondBrainGo/config"
	"SecondBrainGo/models"
	"SecondBrainGo/services"
)

type StudyController struct {
	study *services.StudyService
}

func NewStudyController(study *services.StudyService) *StudyController {
	return &StudyController{study: study}
}

// LogHours 记录学习时长，同一天多次上报会累加
func (sc *StudyController) LogHours(c *gin.Context) {
	req := models.LogHoursRequest{Hours: 1}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.study.LogHours(req.Hours)
	if err != nil {
		config.Logger.Errorw("记录学习时长失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "记录学习时长失败"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateMood 更新心情
func (sc *StudyController) UpdateMood(c *gin.Context) {
	var req models.MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		req.Mood = "neutral"
	}

	result, err := sc.study.UpdateMood(req.Mood)
	if err != nil {
		config.Logger.Errorw("更新心情失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新心情失败"})
		return
	}
	c.JSON(http.StatusOK, result)
}
