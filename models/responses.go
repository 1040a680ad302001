package models

// StudyLogResult 学习时长上报结果
// 当天首次记录时返回 hours，同一天累加时返回 total_today
type StudyLogResult struct {
	Date       string   `json:"date"`
	Hours      *float64 `json:"hours,omitempty"`
	TotalToday *float64 `json:"total_today,omitempty"`
	Streak     int      `json:"streak"`
}

// MoodResult 心情更新结果
type MoodResult struct {
	Mood string `json:"mood"`
}

// GoalAnalytics 单个目标的统计视图
type GoalAnalytics struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Deadline   string `json:"deadline"`
	Priority   string `json:"priority"`
	DaysLeft   int    `json:"days_left"`
	Progress   int    `json:"progress"`
	Status     string `json:"status"`
	TasksDone  int    `json:"tasks_done"`
	TotalTasks int    `json:"total_tasks"`
}

// LogChartEntry 近7天图表的单日数据
type LogChartEntry struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// AnalyticsResponse 统计汇总视图，每次调用重新计算
type AnalyticsResponse struct {
	Name           string          `json:"name"`
	Mood           string          `json:"mood"`
	Streak         int             `json:"streak"`
	WeekHours      float64         `json:"week_hours"`
	TotalHours     float64         `json:"total_hours"`
	Goals          []GoalAnalytics `json:"goals"`
	MostUrgent     *string         `json:"most_urgent"`
	LogChart       []LogChartEntry `json:"log_chart"`
	ActiveCount    int             `json:"active_count"`
	CompletedCount int             `json:"completed_count"`
}

// GoalSummary 提供给智能体提示词的目标摘要
type GoalSummary struct {
	Title        string   `json:"title"`
	Priority     string   `json:"priority"`
	DaysLeft     int      `json:"days_left"`
	Progress     int      `json:"progress"`
	PendingTasks []string `json:"pending_tasks"`
	Status       string   `json:"status"`
}

// AgentContext 智能体提示词上下文
type AgentContext struct {
	Name       string        `json:"name"`
	Mood       string        `json:"mood"`
	Streak     int           `json:"streak"`
	Goals      []GoalSummary `json:"goals"`
	RecentLogs []StudyLog    `json:"recent_logs"`
}

// ChatResult 对话接口返回结构体
type ChatResult struct {
	Response   string `json:"response"`
	Intent     string `json:"intent"`
	ToolResult any    `json:"tool_result"`
}
