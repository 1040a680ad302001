package routes

import (
	"github.com/gin-gonic/gin"

	"SecondBrainGo/controllers"
	"SecondBrainGo/services"
	"SecondBrainGo/store"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, client *services.GroqClient) {
	goalService := services.NewGoalService(st)
	studyService := services.NewStudyService(st)
	analyticsService := services.NewAnalyticsService(st)
	agentService := services.NewAgentService(st, goalService, studyService, analyticsService, client)

	goalController := controllers.NewGoalController(goalService)
	taskController := controllers.NewTaskController(goalService)
	studyController := controllers.NewStudyController(studyService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)
	chatController := controllers.NewChatController(agentService)
	memoryController := controllers.NewMemoryController(st)

	api := r.Group("/api")
	{
		api.GET("/analytics", analyticsController.GetAnalytics)

		api.GET("/goals", goalController.ListGoals)
		api.POST("/goals", goalController.CreateGoal)
		api.PUT("/goals/:id", goalController.UpdateGoal)
		api.DELETE("/goals/:id", goalController.DeleteGoal)
		api.POST("/goals/:id/complete", goalController.CompleteGoal)

		api.GET("/goals/:id/tasks", taskController.ListTasks)
		api.POST("/goals/:id/tasks", taskController.CreateTask)
		api.PUT("/goals/:id/tasks/:task_id", taskController.UpdateTask)
		api.DELETE("/goals/:id/tasks/:task_id", taskController.DeleteTask)
		api.POST("/goals/:id/tasks/:task_id/toggle", taskController.ToggleTask)

		api.POST("/log-hours", studyController.LogHours)
		api.POST("/mood", studyController.UpdateMood)

		api.POST("/chat", chatController.SendMessage)

		// 调试接口
		api.GET("/memory", memoryController.GetMemory)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
