package interfaces

import (
	"context"
	"time"

	"SportSync/internal/model"
)

// RaceRepository 赛事与系列的存取
type RaceRepository interface {
	// ExistsByNameAndDay 按自然键（小写名称 + 日历日）判断是否已存在
	ExistsByNameAndDay(ctx context.Context, nameKey, raceDay string) (bool, error)
	// FindOrCreateSeries 按ID或名称（大小写不敏感）查找系列，不存在时用 defaults 创建
	FindOrCreateSeries(ctx context.Context, defaults *model.Series) (*model.Series, error)
	// CreateRace 冲突时不插入，created=false
	CreateRace(ctx context.Context, race *model.Race) (created bool, err error)

	ListRaces(ctx context.Context) ([]*model.Race, error)
	ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*model.Race, error)
	GetRaceByID(ctx context.Context, id string) (*model.Race, error)
}
