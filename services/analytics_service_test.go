package services

import (
	"testing"
	"time"

	"SecondBrainGo/models"
)

func seedAnalytics(t *testing.T, mutate func(mem *models.Memory)) *AnalyticsService {
	t.Helper()
	st := newTestStore(t)
	if err := st.Update(func(mem *models.Memory) error {
		mutate(mem)
		return nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	as := NewAnalyticsService(st)
	as.now = func() time.Time { return fixedNow }
	return as
}

func TestAnalyticsLogChartAlwaysSevenDays(t *testing.T) {
	as := seedAnalytics(t, func(mem *models.Memory) {
		// 只有两天有记录，其余天应补 0
		mem.StudyLogs = []models.StudyLog{
			{Date: fixedNow.AddDate(0, 0, -2).Format(models.DateLayout), Hours: 2},
			{Date: fixedNow.Format(models.DateLayout), Hours: 1.5},
		}
	})

	resp, err := as.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if len(resp.LogChart) != 7 {
		t.Fatalf("log_chart 长度 = %d, want 7", len(resp.LogChart))
	}
	for i, entry := range resp.LogChart {
		want := fixedNow.AddDate(0, 0, i-6).Format(models.DateLayout)
		if entry.Date != want {
			t.Errorf("log_chart[%d].date = %s, want %s", i, entry.Date, want)
		}
	}
	if resp.LogChart[4].Hours != 2 || resp.LogChart[6].Hours != 1.5 {
		t.Errorf("log_chart hours 错误: %+v", resp.LogChart)
	}
	if resp.LogChart[0].Hours != 0 {
		t.Errorf("无记录的天应为 0: %+v", resp.LogChart[0])
	}
}

func TestAnalyticsHoursRollup(t *testing.T) {
	as := seedAnalytics(t, func(mem *models.Memory) {
		mem.StudyLogs = []models.StudyLog{
			{Date: fixedNow.AddDate(0, 0, -30).Format(models.DateLayout), Hours: 10},
			{Date: fixedNow.AddDate(0, 0, -3).Format(models.DateLayout), Hours: 2},
			{Date: fixedNow.Format(models.DateLayout), Hours: 1},
		}
	})

	resp, err := as.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if resp.WeekHours != 3 {
		t.Errorf("week_hours = %v, want 3", resp.WeekHours)
	}
	if resp.TotalHours != 13 {
		t.Errorf("total_hours = %v, want 13", resp.TotalHours)
	}
}

func TestAnalyticsMostUrgentGoal(t *testing.T) {
	as := seedAnalytics(t, func(mem *models.Memory) {
		mem.Goals = []models.Goal{
			{ID: 1, Title: "completed soon", Deadline: dateOffset(1), Status: models.GoalStatusCompleted},
			{ID: 2, Title: "urgent", Deadline: dateOffset(2), Status: models.GoalStatusActive},
			{ID: 3, Title: "also day 2", Deadline: dateOffset(2), Status: models.GoalStatusActive},
			{ID: 4, Title: "relaxed", Deadline: dateOffset(60), Status: models.GoalStatusActive},
		}
	})

	resp, err := as.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if resp.MostUrgent == nil || *resp.MostUrgent != "urgent" {
		t.Errorf("most_urgent = %v, want urgent（平手时先遇到者优先）", resp.MostUrgent)
	}
	if resp.ActiveCount != 3 || resp.CompletedCount != 1 {
		t.Errorf("counts = %d/%d, want 3/1", resp.ActiveCount, resp.CompletedCount)
	}
}

func TestAnalyticsNoActiveGoals(t *testing.T) {
	as := seedAnalytics(t, func(mem *models.Memory) {
		mem.Goals = []models.Goal{
			{ID: 1, Title: "done", Deadline: dateOffset(1), Status: models.GoalStatusCompleted},
		}
	})

	resp, err := as.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if resp.MostUrgent != nil {
		t.Errorf("most_urgent = %v, want nil", *resp.MostUrgent)
	}
}

func TestAnalyticsPersistsRecalculatedFields(t *testing.T) {
	st := newTestStore(t)
	if err := st.Update(func(mem *models.Memory) error {
		// 落盘的是过期的派生字段
		mem.Goals = []models.Goal{{
			ID: 1, Title: "g", Deadline: dateOffset(2),
			Priority: models.PriorityLow, Status: models.GoalStatusActive,
			Tasks: []models.Task{{ID: 1, Task: "t", Status: models.TaskStatusCompleted}},
		}}
		return nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	as := NewAnalyticsService(st)
	as.now = func() time.Time { return fixedNow }
	if _, err := as.GetAnalytics(); err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}

	mem, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mem.Goals[0].Priority != models.PriorityCritical {
		t.Errorf("读取后未写回重算结果: %s", mem.Goals[0].Priority)
	}
	if mem.Goals[0].Progress != 100 {
		t.Errorf("progress = %d, want 100", mem.Goals[0].Progress)
	}
}

func TestAgentContextShape(t *testing.T) {
	st := newTestStore(t)
	if err := st.Update(func(mem *models.Memory) error {
		mem.Name = "Alex"
		mem.Mood = "focused"
		mem.Streak = 4
		mem.Goals = []models.Goal{{
			ID: 1, Title: "g", Deadline: dateOffset(10), Status: models.GoalStatusActive,
			Tasks: []models.Task{
				{ID: 1, Task: "pending one", Status: models.TaskStatusPending},
				{ID: 2, Task: "done one", Status: models.TaskStatusCompleted},
			},
		}}
		for i := 9; i >= 0; i-- {
			mem.StudyLogs = append(mem.StudyLogs, models.StudyLog{
				Date:  fixedNow.AddDate(0, 0, -i).Format(models.DateLayout),
				Hours: 1,
			})
		}
		return nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	as := NewAnalyticsService(st)
	as.now = func() time.Time { return fixedNow }
	ctx, err := as.GetAgentContext()
	if err != nil {
		t.Fatalf("GetAgentContext: %v", err)
	}
	if ctx.Name != "Alex" || ctx.Mood != "focused" || ctx.Streak != 4 {
		t.Errorf("基础字段错误: %+v", ctx)
	}
	if len(ctx.RecentLogs) != 7 {
		t.Errorf("recent_logs 长度 = %d, want 7", len(ctx.RecentLogs))
	}
	if len(ctx.Goals) != 1 {
		t.Fatalf("goals 长度 = %d", len(ctx.Goals))
	}
	summary := ctx.Goals[0]
	if summary.DaysLeft != 10 || summary.Progress != 50 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.PendingTasks) != 1 || summary.PendingTasks[0] != "pending one" {
		t.Errorf("pending_tasks = %v", summary.PendingTasks)
	}
}
