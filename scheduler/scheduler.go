package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/services"
)

// 验证小时和分钟是否有效
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour, "default", 0)
		hour = 0
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute, "default", 0)
		minute = 0
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// 任务类型
type TaskType int

const (
	TaskCartScan TaskType = iota
	TaskRecommendationRefresh
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 任务调度器
type Scheduler struct {
	cfg       *config.Config
	assistant *services.Assistant
	tasks     map[TaskType]*TaskStatus
	mutex     sync.Mutex
}

// 创建新的调度器
func NewScheduler(cfg *config.Config, assistant *services.Assistant) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		assistant: assistant,
		tasks:     make(map[TaskType]*TaskStatus),
	}
}

// 启动调度器
func Start(cfg *config.Config, assistant *services.Assistant) {
	scheduler := NewScheduler(cfg, assistant)

	// 初始化任务
	scheduler.initTasks()

	// 启动主循环
	go scheduler.run()

	checkInterval := cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	logger.Info("调度器已启动", "check_interval_sec", checkInterval)
}

// 初始化任务
func (s *Scheduler) initTasks() {
	now := time.Now()

	if s.cfg.Debug.Enabled {
		// Debug模式：两个任务都按配置的秒数间隔运行，方便联调
		freqSeconds := s.cfg.Debug.TaskFreqSec
		if freqSeconds <= 0 {
			freqSeconds = 300
		}
		interval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskCartScan] = &TaskStatus{
			LastRun:     now.Add(-interval),
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("放弃购物车扫描 (Debug模式: 每%d秒)", freqSeconds),
		}
		s.tasks[TaskRecommendationRefresh] = &TaskStatus{
			LastRun:     now.Add(-interval),
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("推荐缓存刷新 (Debug模式: 每%d秒)", freqSeconds),
		}
		logger.Info("Debug模式已启用", "frequency_seconds", freqSeconds)
	} else {
		// 正常模式：每天在指定时间点各运行一次
		scanHour, scanMin := validateHourMinute(s.cfg.Scheduler.CartScanHour, s.cfg.Scheduler.CartScanMin)
		nextScan := getNextTimePoint(now, scanHour, scanMin)
		s.tasks[TaskCartScan] = &TaskStatus{
			LastRun:     nextScan.Add(-24 * time.Hour),
			NextRun:     nextScan,
			Description: fmt.Sprintf("放弃购物车扫描 (%02d:%02d)", scanHour, scanMin),
		}

		refreshHour, refreshMin := validateHourMinute(s.cfg.Scheduler.RefreshHour, s.cfg.Scheduler.RefreshMin)
		nextRefresh := getNextTimePoint(now, refreshHour, refreshMin)
		s.tasks[TaskRecommendationRefresh] = &TaskStatus{
			LastRun:     nextRefresh.Add(-24 * time.Hour),
			NextRun:     nextRefresh,
			Description: fmt.Sprintf("推荐缓存刷新 (%02d:%02d)", refreshHour, refreshMin),
		}
		logger.Info("正常模式",
			"cart_scan", fmt.Sprintf("%02d:%02d", scanHour, scanMin),
			"recommendation_refresh", fmt.Sprintf("%02d:%02d", refreshHour, refreshMin))
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

// 主循环
func (s *Scheduler) run() {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// 检查任务
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		// 如果任务正在运行，跳过
		if status.IsRunning {
			continue
		}

		// 如果到达或超过下次运行时间，执行任务
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// 计算任务的下次运行时间
func (s *Scheduler) nextRun(taskType TaskType, now time.Time) time.Time {
	if s.cfg.Debug.Enabled {
		freqSeconds := s.cfg.Debug.TaskFreqSec
		if freqSeconds <= 0 {
			freqSeconds = 300
		}
		return now.Add(time.Duration(freqSeconds) * time.Second)
	}

	switch taskType {
	case TaskCartScan:
		hour, minute := validateHourMinute(s.cfg.Scheduler.CartScanHour, s.cfg.Scheduler.CartScanMin)
		return getNextTimePoint(now, hour, minute)
	default:
		hour, minute := validateHourMinute(s.cfg.Scheduler.RefreshHour, s.cfg.Scheduler.RefreshMin)
		return getNextTimePoint(now, hour, minute)
	}
}

// 运行任务
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now
		status.NextRun = s.nextRun(taskType, now)

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	s.mutex.Lock()
	description := s.tasks[taskType].Description
	s.mutex.Unlock()
	logger.Info("开始执行任务", "task", description)

	ctx := context.Background()
	switch taskType {
	case TaskCartScan:
		processed := s.assistant.ScanAbandonedCarts(ctx)
		logger.Info("放弃购物车扫描完成", "recovery_plans", processed)
	case TaskRecommendationRefresh:
		s.assistant.RefreshRecommendations(ctx)
	}
}
