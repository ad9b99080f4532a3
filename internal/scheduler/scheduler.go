// Package scheduler 定时触发各运动赛程同步
package scheduler

import (
	"context"
	"sync"
	"time"

	"SportSync/internal/config"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	allSportsTask     = "all"
	defaultRunTimeout = 5 * time.Minute
)

type task struct {
	name     string
	schedule Every
	job      cron.Job
	entryID  cron.EntryID
}

// Scheduler 仅在 active_environments 内的环境启动
type Scheduler struct {
	cron    *cron.Cron
	syncer  interfaces.ScheduleSyncer
	cfg     config.SyncConfig
	logger  *logrus.Logger
	now     func() time.Time
	mu      sync.Mutex
	tasks   []*task
	started bool
}

// TaskStatus 单个定时任务状态
type TaskStatus struct {
	Name     string    `json:"name"`
	Interval string    `json:"interval"`
	Offset   string    `json:"offset"`
	Next     time.Time `json:"next"`
}

// Status 调度器状态
type Status struct {
	Enabled     bool         `json:"enabled"`
	Environment string       `json:"environment"`
	TotalTasks  int          `json:"total_tasks"`
	Tasks       []TaskStatus `json:"tasks"`
}

func New(cfg config.SyncConfig, syncer interfaces.ScheduleSyncer, logger *logrus.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(logger)
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		syncer: syncer,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Start 注册各运动与每日全量任务并启动；环境未启用时只记录日志
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	if !s.cfg.SyncActive() {
		s.logger.WithFields(logrus.Fields{
			"environment": s.cfg.Environment,
			"active":      s.cfg.ActiveEnvironments,
		}).Info("当前环境未启用定时同步")
		return
	}

	for _, sport := range model.AllSports {
		sc, ok := s.cfg.Schedules[sport.Slug()]
		if !ok || sc.Every <= 0 {
			s.logger.WithField("sport", sport).Warn("未配置同步频率，跳过定时任务")
			continue
		}
		every := Every{Interval: sc.Every, Offset: sc.Offset}
		if !every.Valid() {
			s.logger.WithFields(logrus.Fields{
				"sport": sport,
				"every": sc.Every.String(),
			}).Warn("同步频率须整除24小时，跳过定时任务")
			continue
		}
		s.add(sport.Slug(), every, s.sportJob(sport))
	}
	s.add(allSportsTask, Every{Interval: day, Offset: s.cfg.DailyAt}, s.allJob())

	s.cron.Start()
	s.started = true
	s.logger.WithFields(logrus.Fields{
		"environment": s.cfg.Environment,
		"tasks":       len(s.tasks),
	}).Info("定时同步已启动")
}

func (s *Scheduler) add(name string, schedule Every, job cron.Job) {
	t := &task{name: name, schedule: schedule, job: job}
	t.entryID = s.cron.Schedule(schedule, job)
	s.tasks = append(s.tasks, t)
	s.logger.WithFields(logrus.Fields{
		"task":     name,
		"interval": schedule.Interval.String(),
		"offset":   schedule.Offset.String(),
	}).Info("注册定时同步任务")
}

func (s *Scheduler) runTimeout() time.Duration {
	if s.cfg.RunTimeout <= 0 {
		return defaultRunTimeout
	}
	return s.cfg.RunTimeout
}

func (s *Scheduler) sportJob(sport model.Sport) cron.Job {
	return cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout())
		defer cancel()

		s.logger.WithField("sport", sport).Info("定时同步开始")
		if _, err := s.syncer.SyncSport(ctx, sport); err != nil {
			s.logger.WithError(err).WithField("sport", sport).Error("定时同步失败")
		}
	})
}

func (s *Scheduler) allJob() cron.Job {
	return cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout()*time.Duration(len(model.AllSports)))
		defer cancel()

		s.logger.Info("每日全量同步开始")
		all := s.syncer.SyncAll(ctx)
		s.logger.WithField("total_added", all.Summary.TotalAdded).Info("每日全量同步结束")
	})
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Scheduler) Stop() {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()

	if !started {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("定时同步已停止")
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Enabled:     s.started,
		Environment: s.cfg.Environment,
		TotalTasks:  len(s.tasks),
		Tasks:       make([]TaskStatus, 0, len(s.tasks)),
	}
	now := s.now()
	for _, t := range s.tasks {
		next := s.cron.Entry(t.entryID).Next
		if next.IsZero() {
			next = t.schedule.Next(now)
		}
		st.Tasks = append(st.Tasks, TaskStatus{
			Name:     t.name,
			Interval: t.schedule.Interval.String(),
			Offset:   t.schedule.Offset.String(),
			Next:     next,
		})
	}
	return st
}
