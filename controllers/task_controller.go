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

type TaskController struct {
	goals *services.GoalService
}

func NewTaskController(goals *services.GoalService) *TaskController {
	return &TaskController{goals: goals}
}

func parseTaskParams(c *gin.Context) (goalID, taskID int, ok bool) {
	var err error
	goalID, err = strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标ID"})
		return 0, 0, false
	}
	taskID, err = strconv.Atoi(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的任务ID"})
		return 0, 0, false
	}
	return goalID, taskID, true
}

// ListTasks 返回目标下的任务列表，目标不存在时返回空列表
func (tc *TaskController) ListTasks(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标ID"})
		return
	}

	tasks, err := tc.goals.GetTasks(goalID)
	if err != nil {
		config.Logger.Errorw("获取任务列表失败", "error", err, "goalID", goalID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取任务列表失败"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask 在目标下创建任务
func (tc *TaskController) CreateTask(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的目标ID"})
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task text required"})
		return
	}

	task, err := tc.goals.AddTask(goalID, req.Task)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		config.Logger.Errorw("创建任务失败", "error", err, "goalID", goalID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建任务失败"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask 修改任务文本
func (tc *TaskController) UpdateTask(c *gin.Context) {
	goalID, taskID, ok := parseTaskParams(c)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task text required"})
		return
	}

	task, err := tc.goals.EditTask(goalID, taskID, req.Task)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) || errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		config.Logger.Errorw("更新任务失败", "error", err, "goalID", goalID, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新任务失败"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleTask 切换任务状态
func (tc *TaskController) ToggleTask(c *gin.Context) {
	goalID, taskID, ok := parseTaskParams(c)
	if !ok {
		return
	}

	task, err := tc.goals.ToggleTask(goalID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) || errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		config.Logger.Errorw("切换任务状态失败", "error", err, "goalID", goalID, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "切换任务状态失败"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask 删除任务
func (tc *TaskController) DeleteTask(c *gin.Context) {
	goalID, taskID, ok := parseTaskParams(c)
	if !ok {
		return
	}

	removed, err := tc.goals.DeleteTask(goalID, taskID)
	if err != nil {
		config.Logger.Errorw("删除任务失败", "error", err, "goalID", goalID, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除任务失败"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": taskID})
}
