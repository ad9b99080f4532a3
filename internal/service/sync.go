package service

import (
	"context"
	"fmt"
	"time"

	"SportSync/internal/adapter"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"
	"SportSync/internal/normalizer"

	"github.com/sirupsen/logrus"
)

// SyncService 抓取 → 换算时区 → 去重入库，按运动编排
type SyncService struct {
	registry   *adapter.SourceRegistry
	normalizer *normalizer.Normalizer
	upsert     *UpsertService
	publisher  interfaces.SyncPublisher
	logger     *logrus.Logger
}

var _ interfaces.ScheduleSyncer = (*SyncService)(nil)

// NewSyncService publisher 可为 nil
func NewSyncService(
	registry *adapter.SourceRegistry,
	norm *normalizer.Normalizer,
	upsert *UpsertService,
	publisher interfaces.SyncPublisher,
	logger *logrus.Logger,
) *SyncService {
	return &SyncService{
		registry:   registry,
		normalizer: norm,
		upsert:     upsert,
		publisher:  publisher,
		logger:     logger,
	}
}

// SyncSport 同步单个运动；仅运动类型非法时返回错误，其余失败都记录在结果里
func (s *SyncService) SyncSport(ctx context.Context, sport model.Sport) (*model.SyncResult, error) {
	if !sport.Valid() {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedSport, sport)
	}

	result := s.run(ctx, sport)
	result.FinishedAt = time.Now()

	entry := s.logger.WithFields(logrus.Fields{
		"sport":   sport,
		"total":   result.Total,
		"added":   result.Added,
		"skipped": result.Skipped,
		"errors":  result.ErrorCount(),
		"cost":    result.FinishedAt.Sub(result.StartedAt).String(),
	})
	if result.Failed() {
		entry.Error("赛程同步失败: " + result.FetchError)
	} else {
		entry.Info("赛程同步完成")
	}

	s.publish(ctx, result)
	return result, nil
}

// run 适配器异常（含panic）转为运动级错误，不影响其他运动
func (s *SyncService) run(ctx context.Context, sport model.Sport) (result *model.SyncResult) {
	result = model.NewSyncResult(sport)
	defer func() {
		if r := recover(); r != nil {
			result.FetchError = fmt.Sprintf("%s fetch failed: %v", sport, r)
		}
	}()

	src, err := s.registry.GetAdapter(sport)
	if err != nil {
		result.FetchError = fmt.Sprintf("%s fetch failed: %v", sport, err)
		return result
	}

	events := src.Fetch(ctx)
	result.Total = len(events)
	s.logger.WithFields(logrus.Fields{"sport": sport, "count": len(events)}).Info("开始同步赛程")

	for _, raw := range events {
		ev := s.normalizer.Normalize(raw)
		outcome, err := s.upsert.Upsert(ctx, ev)
		if err != nil {
			msg := fmt.Sprintf("Failed to process event %s: %v", ev.Name, err)
			result.Errors = append(result.Errors, msg)
			s.logger.WithError(err).WithField("event", ev.Name).Warn("赛事入库失败")
			continue
		}
		switch outcome {
		case OutcomeCreated:
			result.Added++
		case OutcomeSkipped:
			result.Skipped++
		}
	}
	return result
}

// SyncAll 按固定顺序依次同步已初始化适配器的全部运动，单个运动失败不影响其余
func (s *SyncService) SyncAll(ctx context.Context) *model.AllSyncResult {
	sports := s.registry.ListSports()
	all := &model.AllSyncResult{
		Details: make(map[model.Sport]*model.SyncResult, len(sports)),
		Errors:  []string{},
	}
	for _, sport := range sports {
		result, err := s.SyncSport(ctx, sport)
		if err != nil {
			result = model.NewSyncResult(sport)
			result.FetchError = fmt.Sprintf("%s fetch failed: %v", sport, err)
			result.FinishedAt = time.Now()
		}
		all.Add(result)
	}

	s.logger.WithFields(logrus.Fields{
		"total_events":  all.Summary.TotalEvents,
		"total_added":   all.Summary.TotalAdded,
		"total_skipped": all.Summary.TotalSkipped,
		"total_errors":  all.Summary.TotalErrors,
	}).Info("全量赛程同步完成")
	return all
}

func (s *SyncService) publish(ctx context.Context, result *model.SyncResult) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSyncResult(ctx, result); err != nil {
		s.logger.WithError(err).WithField("sport", result.Sport).Warn("推送同步结果失败")
	}
}
