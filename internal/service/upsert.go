package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"SportSync/internal/adapter/scrape"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"
	"SportSync/internal/normalizer"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Outcome 单条赛事入库结果
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
)

// UpsertService 按自然键（名称 + 展示时区日历日）去重后入库
type UpsertService struct {
	repo    interfaces.RaceRepository
	display *time.Location
	logger  *logrus.Logger
}

func NewUpsertService(repo interfaces.RaceRepository, display *time.Location, logger *logrus.Logger) *UpsertService {
	return &UpsertService{repo: repo, display: display, logger: logger}
}

// NameKey 名称规范化：压缩空白并转小写
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Exists date 为展示时区下的 YYYY-MM-DD
func (s *UpsertService) Exists(ctx context.Context, name, date string) (bool, error) {
	if _, err := time.Parse(scrape.DateLayout, date); err != nil {
		return false, fmt.Errorf("日期格式错误%q: %w", date, err)
	}
	return s.repo.ExistsByNameAndDay(ctx, NameKey(name), date)
}

func (s *UpsertService) Upsert(ctx context.Context, ev *model.NormalizedEvent) (Outcome, error) {
	if strings.TrimSpace(ev.Name) == "" {
		return "", fmt.Errorf("赛事名称为空")
	}
	at, err := normalizer.Instant(ev.Date, ev.Time, s.display.String())
	if err != nil {
		return "", err
	}

	exists, err := s.Exists(ctx, ev.Name, ev.Date)
	if err != nil {
		return "", err
	}
	if exists {
		s.logger.WithFields(logrus.Fields{"event": ev.Name, "date": ev.Date}).Debug("赛事已存在，跳过")
		return OutcomeSkipped, nil
	}

	series, err := s.repo.FindOrCreateSeries(ctx, seriesDefaults(ev.Sport))
	if err != nil {
		return "", err
	}

	race, err := s.buildRace(ev, at, series.ID)
	if err != nil {
		return "", err
	}
	created, err := s.repo.CreateRace(ctx, race)
	if err != nil {
		return "", err
	}
	if !created {
		// 并发写入时由唯一索引兜底
		return OutcomeSkipped, nil
	}

	s.logger.WithFields(logrus.Fields{
		"event":  ev.Name,
		"date":   ev.Date,
		"series": series.ID,
	}).Info("新增赛事")
	return OutcomeCreated, nil
}

func (s *UpsertService) buildRace(ev *model.NormalizedEvent, at time.Time, seriesID string) (*model.Race, error) {
	circuit := ev.Circuit
	if circuit == "" {
		circuit = ev.Venue
	}
	if circuit == "" {
		circuit = ev.Location
	}
	country := ev.Country
	if country == "" {
		country = model.CountryFromLocation(ev.Location)
	}

	schedule, err := json.Marshal([]model.ScheduleEntry{{Session: "Race", Date: ev.Date, Time: ev.Time}})
	if err != nil {
		return nil, fmt.Errorf("序列化赛程失败: %w", err)
	}
	links, err := json.Marshal(defaultWatchLinks(ev.Sport))
	if err != nil {
		return nil, fmt.Errorf("序列化观看渠道失败: %w", err)
	}

	return &model.Race{
		Name:       ev.Name,
		NameKey:    NameKey(ev.Name),
		RaceDay:    ev.Date,
		Date:       at.UTC(),
		Circuit:    circuit,
		Country:    country,
		SeriesID:   seriesID,
		Schedule:   datatypes.JSON(schedule),
		WatchLinks: datatypes.JSON(links),
	}, nil
}
