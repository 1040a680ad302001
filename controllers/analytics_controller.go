package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SecondBrainGo/config"
	"SecondBrainGo/services"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GetAnalytics 返回统计汇总视图
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	resp, err := ac.analytics.GetAnalytics()
	if err != nil {
		config.Logger.Errorw("获取统计数据失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
