package services

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"SecondBrainGo/config"
	"SecondBrainGo/models"
	"SecondBrainGo/store"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory.json")
	mem := models.Memory{
		Name:      "Student",
		Mood:      "neutral",
		StudyLogs: []models.StudyLog{},
		Goals:     []models.Goal{},
	}
	data, err := json.MarshalIndent(mem, "", "  ")
	if err != nil {
		t.Fatalf("encode seed: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	st, err := store.New(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func TestAddGoalDefaults(t *testing.T) {
	gs := NewGoalService(newTestStore(t))

	goal, err := gs.AddGoal("  Learn X  ", "2099-01-01")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if goal.ID != 1 {
		t.Errorf("id = %d, want 1", goal.ID)
	}
	if goal.Title != "Learn X" {
		t.Errorf("title = %q, 应去除首尾空白", goal.Title)
	}
	if goal.Status != models.GoalStatusActive {
		t.Errorf("status = %s, want active", goal.Status)
	}
	if goal.Priority != models.PriorityLow {
		t.Errorf("priority = %s, want LOW", goal.Priority)
	}
	if goal.Progress != 0 {
		t.Errorf("progress = %d, want 0", goal.Progress)
	}

	// 立即读回应一致
	goals, err := gs.GetAllGoals()
	if err != nil {
		t.Fatalf("GetAllGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].Priority != models.PriorityLow {
		t.Fatalf("读回结果不一致: %+v", goals)
	}
}

func TestAddGoalIDAssignment(t *testing.T) {
	gs := NewGoalService(newTestStore(t))

	first, _ := gs.AddGoal("a", "2099-01-01")
	second, _ := gs.AddGoal("b", "2099-01-01")
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	// 删除低位ID后新ID仍取最大值加一
	if _, err := gs.DeleteGoal(1); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	third, _ := gs.AddGoal("c", "2099-01-01")
	if third.ID != 3 {
		t.Errorf("id = %d, want 3", third.ID)
	}
}

func TestAddGoalMalformedDeadline(t *testing.T) {
	gs := NewGoalService(newTestStore(t))

	// 截止日期不做校验，坏日期静默回退为 MEDIUM
	goal, err := gs.AddGoal("Broken", "soon")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if goal.Priority != models.PriorityMedium {
		t.Errorf("priority = %s, want MEDIUM", goal.Priority)
	}
}

func TestEditGoalPartialUpdate(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	created, _ := gs.AddGoal("Learn X", "2099-01-01")

	// 只改截止日期，标题不变
	updated, err := gs.EditGoal(created.ID, "", "2099-06-01")
	if err != nil {
		t.Fatalf("EditGoal: %v", err)
	}
	if updated.Title != "Learn X" {
		t.Errorf("title = %q, 不应被修改", updated.Title)
	}
	if updated.Deadline != "2099-06-01" {
		t.Errorf("deadline = %q, want 2099-06-01", updated.Deadline)
	}

	// 两个字段都不传，等于只重算派生字段
	unchanged, err := gs.EditGoal(created.ID, "", "")
	if err != nil {
		t.Fatalf("EditGoal: %v", err)
	}
	if unchanged.Title != "Learn X" || unchanged.Deadline != "2099-06-01" {
		t.Errorf("空更新不应改动字段: %+v", unchanged)
	}

	if _, err := gs.EditGoal(999, "x", ""); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestDeleteGoalIdempotent(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	created, _ := gs.AddGoal("g", "2099-01-01")

	removed, err := gs.DeleteGoal(created.ID)
	if err != nil || !removed {
		t.Fatalf("removed = %v, err = %v", removed, err)
	}
	removed, err = gs.DeleteGoal(created.ID)
	if err != nil {
		t.Fatalf("重复删除不应报错: %v", err)
	}
	if removed {
		t.Error("重复删除应返回 false")
	}
}

func TestCompleteGoalForcesTasks(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	created, _ := gs.AddGoal("g", "2099-01-01")
	gs.AddTask(created.ID, "one")
	gs.AddTask(created.ID, "two")

	goal, err := gs.CompleteGoal(created.ID)
	if err != nil {
		t.Fatalf("CompleteGoal: %v", err)
	}
	if goal.Status != models.GoalStatusCompleted {
		t.Errorf("status = %s, want completed", goal.Status)
	}
	if goal.Progress != 100 {
		t.Errorf("progress = %d, want 100", goal.Progress)
	}
	for _, task := range goal.Tasks {
		if task.Status != models.TaskStatusCompleted {
			t.Errorf("任务 %d 未被强制完成: %s", task.ID, task.Status)
		}
	}

	if _, err := gs.CompleteGoal(999); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestTaskLifecycle(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	goal, _ := gs.AddGoal("g", "2099-01-01")

	task, err := gs.AddTask(goal.ID, "  read chapter 1  ")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.ID != 1 || task.Task != "read chapter 1" || task.Status != models.TaskStatusPending {
		t.Fatalf("task = %+v", task)
	}

	second, _ := gs.AddTask(goal.ID, "chapter 2")
	if second.ID != 2 {
		t.Errorf("id = %d, want 2", second.ID)
	}

	edited, err := gs.EditTask(goal.ID, task.ID, "read chapter 1 twice")
	if err != nil {
		t.Fatalf("EditTask: %v", err)
	}
	if edited.Task != "read chapter 1 twice" {
		t.Errorf("task text = %q", edited.Task)
	}

	toggled, err := gs.ToggleTask(goal.ID, task.ID)
	if err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if toggled.Status != models.TaskStatusCompleted {
		t.Errorf("status = %s, want completed", toggled.Status)
	}

	goals, _ := gs.GetAllGoals()
	if goals[0].Progress != 50 {
		t.Errorf("progress = %d, want 50", goals[0].Progress)
	}

	back, _ := gs.ToggleTask(goal.ID, task.ID)
	if back.Status != models.TaskStatusPending {
		t.Errorf("status = %s, want pending", back.Status)
	}
}

func TestTaskNotFoundDistinctFromGoalNotFound(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	goal, _ := gs.AddGoal("g", "2099-01-01")

	if _, err := gs.AddTask(999, "x"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
	if _, err := gs.ToggleTask(goal.ID, 999); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
	if _, err := gs.EditTask(goal.ID, 999, "x"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTaskRecomputesProgress(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	goal, _ := gs.AddGoal("g", "2099-01-01")
	done, _ := gs.AddTask(goal.ID, "done one")
	pending, _ := gs.AddTask(goal.ID, "pending one")
	gs.ToggleTask(goal.ID, done.ID)

	removed, err := gs.DeleteTask(goal.ID, pending.ID)
	if err != nil || !removed {
		t.Fatalf("removed = %v, err = %v", removed, err)
	}

	goals, _ := gs.GetAllGoals()
	if len(goals[0].Tasks) != 1 {
		t.Fatalf("剩余任务数 = %d, want 1", len(goals[0].Tasks))
	}
	if goals[0].Progress != 100 {
		t.Errorf("progress = %d, want 100", goals[0].Progress)
	}

	removed, err = gs.DeleteTask(goal.ID, 999)
	if err != nil || removed {
		t.Errorf("删除不存在的任务: removed = %v, err = %v", removed, err)
	}
	removed, err = gs.DeleteTask(999, 1)
	if err != nil || removed {
		t.Errorf("目标不存在时: removed = %v, err = %v", removed, err)
	}
}

func TestGetTasksMissingGoalReturnsEmpty(t *testing.T) {
	gs := NewGoalService(newTestStore(t))
	tasks, err := gs.GetTasks(42)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("tasks = %+v, want empty", tasks)
	}
}

func TestMutationsPersist(t *testing.T) {
	st := newTestStore(t)
	gs := NewGoalService(st)
	goal, _ := gs.AddGoal("g", "2099-01-01")
	gs.AddTask(goal.ID, "t")

	mem, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(mem.Goals) != 1 || len(mem.Goals[0].Tasks) != 1 {
		t.Fatalf("文档未持久化: %+v", mem)
	}
}
