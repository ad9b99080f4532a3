package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"SportSync/internal/database"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) interfaces.RaceRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", logger.Discard)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewRaceRepository(db)
}

func newRace(name, day string, at time.Time, seriesID string) *model.Race {
	return &model.Race{
		Name:       name,
		NameKey:    name,
		RaceDay:    day,
		Date:       at,
		SeriesID:   seriesID,
		Schedule:   datatypes.JSON(`[]`),
		WatchLinks: datatypes.JSON(`[]`),
	}
}

func TestFindOrCreateSeries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.FindOrCreateSeries(ctx, &model.Series{ID: "f1", Name: "Formula 1", Color: "#e10600"})
	require.NoError(t, err)
	assert.Equal(t, "f1", created.ID)

	again, err := repo.FindOrCreateSeries(ctx, &model.Series{ID: "f1", Name: "Formula 1", Color: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, "#e10600", again.Color)

	// 按名称（大小写不敏感）命中已有系列
	byName, err := repo.FindOrCreateSeries(ctx, &model.Series{ID: "formula-one", Name: "FORMULA 1"})
	require.NoError(t, err)
	assert.Equal(t, "f1", byName.ID)
}

func TestCreateRace_NaturalKeyConflict(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := repo.FindOrCreateSeries(ctx, &model.Series{ID: "f1", Name: "Formula 1"})
	require.NoError(t, err)

	at := time.Date(2024, 7, 21, 13, 0, 0, 0, time.UTC)
	ok, err := repo.CreateRace(ctx, newRace("hungarian grand prix", "2024-07-21", at, "f1"))
	require.NoError(t, err)
	assert.True(t, ok)

	exists, err := repo.ExistsByNameAndDay(ctx, "hungarian grand prix", "2024-07-21")
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err = repo.CreateRace(ctx, newRace("hungarian grand prix", "2024-07-21", at.Add(time.Hour), "f1"))
	require.NoError(t, err)
	assert.False(t, ok)

	// 同名不同日为不同赛事
	ok, err = repo.CreateRace(ctx, newRace("hungarian grand prix", "2025-08-03", at.AddDate(1, 0, 13), "f1"))
	require.NoError(t, err)
	assert.True(t, ok)

	races, err := repo.ListRaces(ctx)
	require.NoError(t, err)
	require.Len(t, races, 2)
	assert.True(t, races[0].Date.Before(races[1].Date))
	require.NotNil(t, races[0].Series)
	assert.Equal(t, "Formula 1", races[0].Series.Name)
}

func TestListUpcomingAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := repo.FindOrCreateSeries(ctx, &model.Series{ID: "nascar", Name: "NASCAR"})
	require.NoError(t, err)

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	past := newRace("past", "2024-06-30", now.Add(-24*time.Hour), "nascar")
	soon := newRace("soon", "2024-07-02", now.Add(24*time.Hour), "nascar")
	later := newRace("later", "2024-07-09", now.Add(8*24*time.Hour), "nascar")
	for _, r := range []*model.Race{later, past, soon} {
		_, err := repo.CreateRace(ctx, r)
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
	}

	upcoming, err := repo.ListUpcoming(ctx, now, 1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "soon", upcoming[0].Name)

	upcoming, err = repo.ListUpcoming(ctx, now, 0)
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)

	got, err := repo.GetRaceByID(ctx, later.ID)
	require.NoError(t, err)
	assert.Equal(t, "later", got.Name)
	assert.Equal(t, "NASCAR", got.Series.Name)

	_, err = repo.GetRaceByID(ctx, "missing")
	assert.True(t, errors.Is(err, ErrRaceNotFound))
}
