package services

import (
	"time"

	"SecondBrainGo/models"
	"SecondBrainGo/store"
)

// AnalyticsService 只读统计视图，每次调用都基于最新文档重新计算
// 计算前会重算所有目标的派生字段并写回，读取同样带写放大
type AnalyticsService struct {
	store *store.Store
	now   func() time.Time
}

func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st, now: time.Now}
}

// GetAnalytics 汇总学习时长、目标统计与近7天图表
func (as *AnalyticsService) GetAnalytics() (*models.AnalyticsResponse, error) {
	var resp models.AnalyticsResponse
	err := as.store.Update(func(mem *models.Memory) error {
		now := as.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		weekAgo := today.AddDate(0, 0, -7)

		var weekHours, totalHours float64
		for _, log := range mem.StudyLogs {
			totalHours += log.Hours
			if d, err := time.Parse(models.DateLayout, log.Date); err == nil && !d.Before(weekAgo) {
				weekHours += log.Hours
			}
		}

		goalsData := make([]models.GoalAnalytics, 0, len(mem.Goals))
		var mostUrgent *string
		minDays := 0
		activeCount, completedCount := 0, 0

		for i := range mem.Goals {
			g := &mem.Goals[i]
			recalcGoalAt(g, now)
			priority, daysLeft := calculatePriorityAt(g, now)

			done := 0
			for _, t := range g.Tasks {
				if t.Status == models.TaskStatusCompleted {
					done++
				}
			}
			goalsData = append(goalsData, models.GoalAnalytics{
				ID:         g.ID,
				Title:      g.Title,
				Deadline:   g.Deadline,
				Priority:   priority,
				DaysLeft:   daysLeft,
				Progress:   g.Progress,
				Status:     g.Status,
				TasksDone:  done,
				TotalTasks: len(g.Tasks),
			})

			switch g.Status {
			case models.GoalStatusActive:
				activeCount++
				if mostUrgent == nil || daysLeft < minDays {
					minDays = daysLeft
					title := g.Title
					mostUrgent = &title
				}
			case models.GoalStatusCompleted:
				completedCount++
			}
		}

		// 固定7个条目，覆盖 today-6 到 today，没有记录的天补 0
		logChart := make([]models.LogChartEntry, 0, 7)
		for i := 6; i >= 0; i-- {
			d := today.AddDate(0, 0, -i).Format(models.DateLayout)
			var hrs float64
			for _, log := range mem.StudyLogs {
				if log.Date == d {
					hrs = log.Hours
					break
				}
			}
			logChart = append(logChart, models.LogChartEntry{Date: d, Hours: hrs})
		}

		resp = models.AnalyticsResponse{
			Name:           mem.Name,
			Mood:           mem.Mood,
			Streak:         mem.Streak,
			WeekHours:      weekHours,
			TotalHours:     totalHours,
			Goals:          goalsData,
			MostUrgent:     mostUrgent,
			LogChart:       logChart,
			ActiveCount:    activeCount,
			CompletedCount: completedCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAgentContext 构造提供给智能体提示词的上下文摘要
func (as *AnalyticsService) GetAgentContext() (*models.AgentContext, error) {
	var ctx models.AgentContext
	err := as.store.Update(func(mem *models.Memory) error {
		now := as.now()
		summaries := make([]models.GoalSummary, 0, len(mem.Goals))
		for i := range mem.Goals {
			g := &mem.Goals[i]
			recalcGoalAt(g, now)
			_, daysLeft := calculatePriorityAt(g, now)

			pending := []string{}
			for _, t := range g.Tasks {
				if t.Status == models.TaskStatusPending {
					pending = append(pending, t.Task)
				}
			}
			summaries = append(summaries, models.GoalSummary{
				Title:        g.Title,
				Priority:     g.Priority,
				DaysLeft:     daysLeft,
				Progress:     g.Progress,
				PendingTasks: pending,
				Status:       g.Status,
			})
		}

		recent := mem.StudyLogs
		if len(recent) > 7 {
			recent = recent[len(recent)-7:]
		}
		ctx = models.AgentContext{
			Name:       mem.Name,
			Mood:       mem.Mood,
			Streak:     mem.Streak,
			Goals:      summaries,
			RecentLogs: append([]models.StudyLog{}, recent...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ctx, nil
}
