package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"SecondBrainGo/config"
	"SecondBrainGo/models"
	"SecondBrainGo/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

// ListGoals 返回全部目标（附带重算派生字段）
func (gc *GoalController) ListGoals(c *gin.Context) {
	goals, err := gc.goals.GetAllGoals()
	if err != nil {
		config.Logger.Errorw("获取目标列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取目标列表失败"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// CreateGoal 创建目标
func (gc *GoalController) CreateGoal(c *gin.Context) {
	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and deadline are required"})
		return
	}

	goal, err := gc.goals.AddGoal(req.Title, req.Deadline)
	if err != nil {
		config.Logger.Errorw("创建目标失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建目标失败"})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal 部分更新目标，未提供的字段保持不变
func (gc *GoalController) UpdateGoal(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标ID"})
		return
	}

	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.goals.EditGoal(goalID, req.Title, req.Deadline)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		config.Logger.Errorw("更新目标失败", "error", err, "goalID", goalID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新目标失败"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal 删除目标
func (gc *GoalController) DeleteGoal(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标ID"})
		return
	}

	removed, err := gc.goals.DeleteGoal(goalID)
	if err != nil {
		config.Logger.Errorw("删除目标失败", "error", err, "goalID", goalID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除目标失败"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": goalID})
}

// CompleteGoal 标记目标完成，所有子任务一并完成
func (gc *GoalController) CompleteGoal(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标ID"})
		return
	}

	goal, err := gc.goals.CompleteGoal(goalID)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		config.Logger.Errorw("完成目标失败", "error", err, "goalID", goalID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "完成目标失败"})
		return
	}
	c.JSON(http.StatusOK, goal)
}
