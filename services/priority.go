package services

import (
	"math"
	"time"

	"SecondBrainGo/models"
)

// 截止日期无法解析时的兜底返回值
const malformedDeadlineDays = 999

// CalculatePriority 按当前日期计算目标的优先级标签和剩余天数
func CalculatePriority(goal *models.Goal) (string, int) {
	return calculatePriorityAt(goal, time.Now())
}

// calculatePriorityAt 返回 (优先级标签, 剩余天数)
// 截止日期缺失或格式错误时不报错，静默回退为 MEDIUM/999
func calculatePriorityAt(goal *models.Goal, now time.Time) (string, int) {
	deadline, err := time.Parse(models.DateLayout, goal.Deadline)
	if err != nil {
		return models.PriorityMedium, malformedDeadlineDays
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(deadline.Sub(today).Hours() / 24)

	pending := 0
	for _, t := range goal.Tasks {
		if t.Status == models.TaskStatusPending {
			pending++
		}
	}

	switch {
	case daysLeft < 0:
		return models.PriorityOverdue, daysLeft
	case daysLeft < 7:
		return models.PriorityCritical, daysLeft
	case daysLeft < 15:
		return models.PriorityHigh, daysLeft
	case daysLeft < 30 || pending > 3:
		return models.PriorityMedium, daysLeft
	default:
		return models.PriorityLow, daysLeft
	}
}

// recalcGoalAt 原地重算 progress 和 priority
// 每次变更后以及每次目标级读取前都要调用，保证派生字段跟随日期推移
func recalcGoalAt(goal *models.Goal, now time.Time) {
	if len(goal.Tasks) > 0 {
		done := 0
		for _, t := range goal.Tasks {
			if t.Status == models.TaskStatusCompleted {
				done++
			}
		}
		goal.Progress = int(math.Round(float64(done) / float64(len(goal.Tasks)) * 100))
	} else {
		goal.Progress = 0
	}

	priority, _ := calculatePriorityAt(goal, now)
	goal.Priority = priority
}
