package services

import (
	"strings"
	"time"

	"SecondBrainGo/models"
	"SecondBrainGo/store"
)

// StudyService 学习时长记录与连续打卡
type StudyService struct {
	store *store.Store
	now   func() time.Time
}

func NewStudyService(st *store.Store) *StudyService {
	return &StudyService{store: st, now: time.Now}
}

// LogHours 记录学习时长
// 当天已有记录时只累加时长，streak 不变；当天首条记录时维护 streak：
// 昨天有记录则加一，否则重置为 1（覆盖首次使用的情况）
func (ss *StudyService) LogHours(hours float64) (*models.StudyLogResult, error) {
	var result models.StudyLogResult
	err := ss.store.Update(func(mem *models.Memory) error {
		now := ss.now()
		today := now.Format(models.DateLayout)
		yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)

		for i := range mem.StudyLogs {
			if mem.StudyLogs[i].Date == today {
				mem.StudyLogs[i].Hours += hours
				total := mem.StudyLogs[i].Hours
				result = models.StudyLogResult{Date: today, TotalToday: &total, Streak: mem.Streak}
				return nil
			}
		}

		yesterdayLogged := false
		for _, log := range mem.StudyLogs {
			if log.Date == yesterday {
				yesterdayLogged = true
				break
			}
		}
		if yesterdayLogged {
			mem.Streak++
		} else {
			mem.Streak = 1
		}

		mem.StudyLogs = append(mem.StudyLogs, models.StudyLog{Date: today, Hours: hours})
		logged := hours
		result = models.StudyLogResult{Date: today, Hours: &logged, Streak: mem.Streak}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateMood 更新心情，统一转为小写并去除首尾空白
func (ss *StudyService) UpdateMood(mood string) (*models.MoodResult, error) {
	var result models.MoodResult
	err := ss.store.Update(func(mem *models.Memory) error {
		mem.Mood = strings.TrimSpace(strings.ToLower(mood))
		result = models.MoodResult{Mood: mem.Mood}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
