package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRaceNotFound 赛事不存在
var ErrRaceNotFound = errors.New("race not found")

const defaultUpcomingLimit = 10

type raceRepository struct {
	db *gorm.DB
}

func NewRaceRepository(db *gorm.DB) interfaces.RaceRepository {
	return &raceRepository{db: db}
}

func (r *raceRepository) ExistsByNameAndDay(ctx context.Context, nameKey, raceDay string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Race{}).
		Where("name_key = ? AND race_day = ?", nameKey, raceDay).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("查询赛事失败: %w", err)
	}
	return count > 0, nil
}

func (r *raceRepository) FindOrCreateSeries(ctx context.Context, defaults *model.Series) (*model.Series, error) {
	if s, err := r.findSeries(ctx, defaults.ID, defaults.Name); err != nil || s != nil {
		return s, err
	}

	// 并发同步时可能同时创建，冲突则忽略后重新读取
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, fmt.Errorf("创建系列%s失败: %w", defaults.ID, err)
	}
	s, err := r.findSeries(ctx, defaults.ID, defaults.Name)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("创建系列%s后仍未找到", defaults.ID)
	}
	return s, nil
}

// findSeries 先按ID再按名称查找，都不存在返回 nil, nil
func (r *raceRepository) findSeries(ctx context.Context, id, name string) (*model.Series, error) {
	var s model.Series
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询系列失败: %w", err)
	}

	err = r.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询系列失败: %w", err)
	}
	return nil, nil
}

func (r *raceRepository) CreateRace(ctx context.Context, race *model.Race) (bool, error) {
	if race.ID == "" {
		race.ID = uuid.NewString()
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Omit("Series").Create(race)
	if res.Error != nil {
		return false, fmt.Errorf("保存赛事失败: %w, name: %s", res.Error, race.Name)
	}
	return res.RowsAffected > 0, nil
}

func (r *raceRepository) ListRaces(ctx context.Context) ([]*model.Race, error) {
	var races []*model.Race
	if err := r.db.WithContext(ctx).Preload("Series").Order("date ASC").Find(&races).Error; err != nil {
		return nil, err
	}
	return races, nil
}

func (r *raceRepository) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*model.Race, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultUpcomingLimit
	}
	var races []*model.Race
	if err := r.db.WithContext(ctx).Preload("Series").
		Where("date > ?", after.UTC()).
		Order("date ASC").Limit(limit).
		Find(&races).Error; err != nil {
		return nil, err
	}
	return races, nil
}

func (r *raceRepository) GetRaceByID(ctx context.Context, id string) (*model.Race, error) {
	var race model.Race
	if err := r.db.WithContext(ctx).Preload("Series").Where("id = ?", id).First(&race).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, err
	}
	return &race, nil
}
