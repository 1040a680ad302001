package models

// CreateGoalRequest 创建目标请求结构体
type CreateGoalRequest struct {
	Title    string `json:"title" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

// UpdateGoalRequest 编辑目标请求结构体，空字段表示不修改
type UpdateGoalRequest struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
}

// CreateTaskRequest 创建任务请求结构体
type CreateTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

// UpdateTaskRequest 编辑任务请求结构体
type UpdateTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

// LogHoursRequest 学习时长上报请求结构体
type LogHoursRequest struct {
	Hours float64 `json:"hours"`
}

// MoodRequest 心情更新请求结构体
type MoodRequest struct {
	Mood string `json:"mood"`
}

// ChatRequest 对话请求结构体
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
