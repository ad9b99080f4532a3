package service

import (
	"context"
	"sort"
	"time"

	"SportSync/internal/adapter"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"
	"SportSync/internal/normalizer"

	"github.com/sirupsen/logrus"
)

// ScheduleService 看板读接口：实时抓取赛程与已落库赛事
type ScheduleService struct {
	registry   *adapter.SourceRegistry
	normalizer *normalizer.Normalizer
	repo       interfaces.RaceRepository
	now        func() time.Time
	logger     *logrus.Logger
}

func NewScheduleService(registry *adapter.SourceRegistry, norm *normalizer.Normalizer, repo interfaces.RaceRepository, logger *logrus.Logger) *ScheduleService {
	return &ScheduleService{
		registry:   registry,
		normalizer: norm,
		repo:       repo,
		now:        time.Now,
		logger:     logger,
	}
}

// LiveSchedule 实时抓取并换算到展示时区，按日期时间升序
func (s *ScheduleService) LiveSchedule(ctx context.Context, sport model.Sport) ([]*model.NormalizedEvent, error) {
	src, err := s.registry.GetAdapter(sport)
	if err != nil {
		return nil, err
	}
	events := s.normalizer.NormalizeAll(src.Fetch(ctx))
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func (s *ScheduleService) ListRaces(ctx context.Context) ([]*model.Race, error) {
	return s.repo.ListRaces(ctx)
}

// ListUpcoming limit<=0 时使用默认条数
func (s *ScheduleService) ListUpcoming(ctx context.Context, limit int) ([]*model.Race, error) {
	return s.repo.ListUpcoming(ctx, s.now(), limit)
}

func (s *ScheduleService) GetRace(ctx context.Context, id string) (*model.Race, error) {
	return s.repo.GetRaceByID(ctx, id)
}
