package services

import (
	"errors"
	"strings"
	"time"

	"SecondBrainGo/models"
	"SecondBrainGo/store"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrTaskNotFound = errors.New("task not found")
)

// GoalService 目标与任务的增删改查
// 每次变更后整体持久化；目标级读取也会重算派生字段并写回
type GoalService struct {
	store *store.Store
	now   func() time.Time
}

func NewGoalService(st *store.Store) *GoalService {
	return &GoalService{store: st, now: time.Now}
}

func findGoal(mem *models.Memory, goalID int) *models.Goal {
	for i := range mem.Goals {
		if mem.Goals[i].ID == goalID {
			return &mem.Goals[i]
		}
	}
	return nil
}

// GetAllGoals 返回全部目标，返回前重算所有派生字段并写回
// 注意：这是一次带写放大的读取，日期推移导致的过期优先级在这里被纠正
func (gs *GoalService) GetAllGoals() ([]models.Goal, error) {
	var goals []models.Goal
	err := gs.store.Update(func(mem *models.Memory) error {
		for i := range mem.Goals {
			recalcGoalAt(&mem.Goals[i], gs.now())
		}
		goals = append([]models.Goal{}, mem.Goals...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// AddGoal 创建目标，ID 取现有最大值加一
func (gs *GoalService) AddGoal(title, deadline string) (*models.Goal, error) {
	var created models.Goal
	err := gs.store.Update(func(mem *models.Memory) error {
		newID := 0
		for _, g := range mem.Goals {
			if g.ID > newID {
				newID = g.ID
			}
		}
		goal := models.Goal{
			ID:       newID + 1,
			Title:    strings.TrimSpace(title),
			Deadline: deadline,
			Priority: models.PriorityMedium,
			Status:   models.GoalStatusActive,
			Tasks:    []models.Task{},
			Progress: 0,
		}
		recalcGoalAt(&goal, gs.now())
		mem.Goals = append(mem.Goals, goal)
		created = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// EditGoal 部分更新，空字符串表示保持原值
func (gs *GoalService) EditGoal(goalID int, title, deadline string) (*models.Goal, error) {
	var updated models.Goal
	err := gs.store.Update(func(mem *models.Memory) error {
		goal := findGoal(mem, goalID)
		if goal == nil {
			return ErrGoalNotFound
		}
		if title != "" {
			goal.Title = strings.TrimSpace(title)
		}
		if deadline != "" {
			goal.Deadline = deadline
		}
		recalcGoalAt(goal, gs.now())
		updated = *goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGoal 删除目标，目标不存在时返回 false，不视为错误
func (gs *GoalService) DeleteGoal(goalID int) (bool, error) {
	removed := false
	err := gs.store.Update(func(mem *models.Memory) error {
		kept := mem.Goals[:0]
		for _, g := range mem.Goals {
			if g.ID == goalID {
				removed = true
				continue
			}
			kept = append(kept, g)
		}
		mem.Goals = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// CompleteGoal 标记目标完成并强制所有子任务完成，单向操作
func (gs *GoalService) CompleteGoal(goalID int) (*models.Goal, error) {
	var completed models.Goal
	err := gs.store.Update(func(mem *models.Memory) error {
		goal := findGoal(mem, goalID)
		if goal == nil {
			return ErrGoalNotFound
		}
		goal.Status = models.GoalStatusCompleted
		for i := range goal.Tasks {
			goal.Tasks[i].Status = models.TaskStatusCompleted
		}
		recalcGoalAt(goal, gs.now())
		completed = *goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &completed, nil
}

// GetTasks 返回目标下的任务列表，目标不存在时返回空列表
func (gs *GoalService) GetTasks(goalID int) ([]models.Task, error) {
	tasks := []models.Task{}
	err := gs.store.View(func(mem *models.Memory) error {
		if goal := findGoal(mem, goalID); goal != nil {
			tasks = append(tasks, goal.Tasks...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// AddTask 在目标下创建任务，任务 ID 仅在该目标内递增
func (gs *GoalService) AddTask(goalID int, text string) (*models.Task, error) {
	var created models.Task
	err := gs.store.Update(func(mem *models.Memory) error {
		goal := findGoal(mem, goalID)
		if goal == nil {
			return ErrGoalNotFound
		}
		newID := 0
		for _, t := range goal.Tasks {
			if t.ID > newID {
				newID = t.ID
			}
		}
		task := models.Task{
			ID:     newID + 1,
			Task:   strings.TrimSpace(text),
			Status: models.TaskStatusPending,
		}
		goal.Tasks = append(goal.Tasks, task)
		recalcGoalAt(goal, gs.now())
		created = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// EditTask 修改任务文本，不影响进度，无需重算
func (gs *GoalService) EditTask(goalID, taskID int, text string) (*models.Task, error) {
	var updated models.Task
	err := gs.store.Update(func(mem *models.Memory) error {
		goal := findGoal(mem, goalID)
		if goal == nil {
			return ErrGoalNotFound
		}
		for i := range goal.Tasks {
			if goal.Tasks[i].ID == taskID {
				goal.Tasks[i].Task = strings.TrimSpace(text)
				updated = goal.Tasks[i]
				return nil
			}
		}
		return ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleTask 在 pending 和 completed 之间切换，并重算所属目标
func (gs *GoalService) ToggleTask(goalID, taskID int) (*models.Task, error) {
	var toggled models.Task
	err := gs.store.Update(func(mem *models.Memory) error {
		goal := findGoal(mem, goalID)
		if goal == nil {
			return ErrGoalNotFound
		}
		for i := range goal.Tasks {
			if goal.Tasks[i].ID == taskID {
				if goal.Tasks[i].Status == models.TaskStatusPending {
					goal.Tasks[i].Status = models.TaskStatusCompleted
				} else {
					goal.Tasks[i].Status = models.TaskStatusPending
				}
				recalcGoalAt(goal, gs.now())
				toggled = goal.Tasks[i]
				return nil
			}
		}
		return ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// DeleteTask 删除任务并重算所属目标，未删除任何任务时返回 false
func (gs *GoalService) DeleteTask(goalID, taskID int) (bool, error) {
	removed := false
	err := gs.store.Update(func(mem *models.Memory) error {
		goal := findGoal(mem, goalID)
		if goal == nil {
			return ErrGoalNotFound
		}
		kept := goal.Tasks[:0]
		for _, t := range goal.Tasks {
			if t.ID == taskID {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		goal.Tasks = kept
		recalcGoalAt(goal, gs.now())
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return false, nil
		}
		return false, err
	}
	return removed, nil
}
