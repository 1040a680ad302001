package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"SecondBrainGo/config"
	"SecondBrainGo/models"
	"SecondBrainGo/store"
)

// 意图类型
const (
	IntentAddGoal    = "add_goal"
	IntentAddTask    = "add_task"
	IntentMarkTask   = "mark_task"
	IntentLogHours   = "log_hours"
	IntentUpdateMood = "update_mood"
	IntentQuiz       = "quiz"
	IntentPlanWeek   = "plan_week"
	IntentStudyPlan  = "study_plan"
	IntentReflect    = "reflect"
	IntentSuggest    = "suggest"
	IntentChat       = "chat"
)

// 按顺序匹配，先命中者生效
var intentRules = []struct {
	intent string
	re     *regexp.Regexp
}{
	{IntentAddGoal, regexp.MustCompile(`add.*(goal|target)|new goal`)},
	{IntentAddTask, regexp.MustCompile(`add.*(task|todo)`)},
	{IntentMarkTask, regexp.MustCompile(`mark.*done|complete.*task|finish.*task`)},
	{IntentLogHours, regexp.MustCompile(`\d+\s*(hour|hr)|studied|log.*hour`)},
	{IntentUpdateMood, regexp.MustCompile(`feel|mood|i am|i'm`)},
	{IntentQuiz, regexp.MustCompile(`quiz|test me|practice question`)},
	{IntentPlanWeek, regexp.MustCompile(`plan.*week|week.*plan`)},
	{IntentStudyPlan, regexp.MustCompile(`study.*plan|plan.*study`)},
	{IntentReflect, regexp.MustCompile(`reflect|weekly review`)},
	{IntentSuggest, regexp.MustCompile(`focus|what should|suggest|priority|which goal`)},
}

var (
	hoursPattern     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hour|hr|h)`)
	taskTextPattern  = regexp.MustCompile(`(?i)(?:task|todo)[:\s]+(.+)`)
	taskNoisePattern = regexp.MustCompile(`(?i)add\s+(a\s+)?task(\s+to\s+\w+(\s+\w+)?\s+goal)?:?\s*`)
)

var moodWords = []string{
	"tired", "motivated", "stressed", "happy", "focused",
	"anxious", "energetic", "excited", "bored", "sad",
}

// 目标标题模糊匹配阈值
const goalMatchThreshold = 70

// LLM 调用的超时上限，超时后走兜底回复
const llmTimeout = 30 * time.Second

// AgentService 对话智能体：意图识别、工具分发、提示词组装、LLM 调用
type AgentService struct {
	store     *store.Store
	goals     *GoalService
	study     *StudyService
	analytics *AnalyticsService
	client    *GroqClient
}

func NewAgentService(st *store.Store, goals *GoalService, study *StudyService, analytics *AnalyticsService, client *GroqClient) *AgentService {
	return &AgentService{
		store:     st,
		goals:     goals,
		study:     study,
		analytics: analytics,
		client:    client,
	}
}

// DetectIntent 基于正则规则的意图分类，未命中任何规则时归为 chat
func DetectIntent(text string) string {
	t := strings.ToLower(text)
	for _, rule := range intentRules {
		if rule.re.MatchString(t) {
			return rule.intent
		}
	}
	return IntentChat
}

// parseHours 从文本提取学习时长，缺省 1 小时
func parseHours(text string) float64 {
	m := hoursPattern.FindStringSubmatch(text)
	if m == nil {
		return 1.0
	}
	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 1.0
	}
	return hours
}

// parseMood 从文本识别心情词，未识别时返回 neutral
func parseMood(text string) string {
	t := strings.ToLower(text)
	for _, mood := range moodWords {
		if strings.Contains(t, mood) {
			return mood
		}
	}
	return "neutral"
}

// parseTaskText 提取任务文本：优先取 task:/todo: 之后的内容，否则剥掉指令性前缀
func parseTaskText(text string) string {
	if m := taskTextPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(taskNoisePattern.ReplaceAllString(text, ""))
}

// findGoalID 定位文本中提到的目标：
// 先按标题单词包含匹配，再按标题整体模糊匹配，都未命中时退回最紧迫的活跃目标
func findGoalID(text string, mem *models.Memory, now time.Time) int {
	t := strings.ToLower(text)

	for _, g := range mem.Goals {
		for _, word := range strings.Fields(strings.ToLower(g.Title)) {
			if len(word) > 3 && strings.Contains(t, word) {
				return g.ID
			}
		}
	}

	bestScore := 0
	bestID := 0
	for _, g := range mem.Goals {
		score := fuzzy.PartialRatio(strings.ToLower(g.Title), t)
		if score >= goalMatchThreshold && score > bestScore {
			bestScore = score
			bestID = g.ID
		}
	}
	if bestID != 0 {
		return bestID
	}

	minDays := 0
	for i := range mem.Goals {
		g := &mem.Goals[i]
		if g.Status != models.GoalStatusActive {
			continue
		}
		_, days := calculatePriorityAt(g, now)
		if bestID == 0 || days < minDays {
			minDays = days
			bestID = g.ID
		}
	}
	if bestID != 0 {
		return bestID
	}
	if len(mem.Goals) > 0 {
		return mem.Goals[0].ID
	}
	return 1
}

// buildPrompt 组装主提示词，包含用户状态、目标摘要、近期记录和工具结果
func buildPrompt(userInput string, toolResult any, ctx *models.AgentContext) string {
	var goalLines strings.Builder
	for _, g := range ctx.Goals {
		goalLines.WriteString(fmt.Sprintf(
			"\n  [%s] %s | %dd left | %d%% done | Pending: %v",
			g.Priority, g.Title, g.DaysLeft, g.Progress, g.PendingTasks,
		))
	}

	logs := ctx.RecentLogs
	if len(logs) > 5 {
		logs = logs[len(logs)-5:]
	}
	logParts := make([]string, 0, len(logs))
	for _, l := range logs {
		logParts = append(logParts, fmt.Sprintf("%s: %gh", l.Date, l.Hours))
	}

	ctxJSON := ""
	if toolResult != nil {
		if data, err := json.Marshal(toolResult); err == nil {
			ctxJSON = fmt.Sprintf("\nTool result: %s", data)
		}
	}

	return fmt.Sprintf(`You are an AI Productivity Agent embedded in a professional second-brain application.

User: %s
Mood: %s
Study streak: %d days

Active Goals:%s

Recent study logs: %s
%s

User message: %s

Instructions:
- Think step by step.
- Consider all goals and compare priorities.
- Adapt tone to mood (%s): if tired, suggest lighter work; if motivated, push harder tasks.
- Be direct and professional. No emojis. No filler phrases.
- Always reference the streak positively.

Respond in this exact format, no deviations:

PLAN:
REASON:
ACTION:
FINAL ANSWER:
`, ctx.Name, ctx.Mood, ctx.Streak, goalLines.String(), strings.Join(logParts, ", "), ctxJSON, userInput, ctx.Mood)
}

// Run 处理一轮对话：识别意图、按需调用数据层、组装提示词并请求 LLM
// 不持有文档锁等待网络调用；LLM 不可用或全部失败时返回固定兜底文案
func (a *AgentService) Run(ctx context.Context, userInput string) (*models.ChatResult, error) {
	intent := DetectIntent(userInput)
	var toolResult any

	switch intent {
	case IntentLogHours:
		result, err := a.study.LogHours(parseHours(userInput))
		if err != nil {
			return nil, err
		}
		toolResult = result

	case IntentUpdateMood:
		result, err := a.study.UpdateMood(parseMood(userInput))
		if err != nil {
			return nil, err
		}
		toolResult = result

	case IntentAddGoal:
		toolResult = map[string]string{"note": "Use the Goals panel to add goals with full details."}

	case IntentAddTask:
		var goalID int
		err := a.store.View(func(mem *models.Memory) error {
			goalID = findGoalID(userInput, mem, time.Now())
			return nil
		})
		if err != nil {
			return nil, err
		}
		if text := parseTaskText(userInput); text != "" {
			task, err := a.goals.AddTask(goalID, text)
			if err == nil {
				toolResult = task
			}
		}
	}

	agentCtx, err := a.analytics.GetAgentContext()
	if err != nil {
		return nil, err
	}
	prompt := buildPrompt(userInput, toolResult, agentCtx)

	var response string
	if a.client.Available() {
		callCtx, cancel := context.WithTimeout(ctx, llmTimeout)
		defer cancel()
		response, err = a.client.Chat(callCtx, prompt)
		if err != nil {
			config.Logger.Warnw("LLM 调用失败，使用兜底回复", "error", err)
			response = mockResponse(prompt)
		}
	} else {
		response = mockResponse(prompt)
	}

	if toolResult == nil {
		toolResult = map[string]any{}
	}
	return &models.ChatResult{
		Response:   response,
		Intent:     intent,
		ToolResult: toolResult,
	}, nil
}
