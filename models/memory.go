package models

// 目标状态
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// 任务状态
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// 优先级标签
const (
	PriorityOverdue  = "OVERDUE"
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

// 日期格式，全文档统一使用
const DateLayout = "2006-01-02"

// Memory 记忆文档，进程内唯一的持久化状态，整体读写
type Memory struct {
	Name      string     `json:"name"`
	Mood      string     `json:"mood"`
	Streak    int        `json:"streak"`
	StudyLogs []StudyLog `json:"study_logs"`
	Goals     []Goal     `json:"goals"`
}

// Goal 目标模型，priority 和 progress 为派生字段，每次读写前重新计算
type Goal struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Tasks    []Task `json:"tasks"`
	Progress int    `json:"progress"`
}

// Task 子任务模型，ID 仅在所属目标内唯一
type Task struct {
	ID     int    `json:"id"`
	Task   string `json:"task"`
	Status string `json:"status"`
}

// StudyLog 学习时长记录，每个日历日至多一条
type StudyLog struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}
