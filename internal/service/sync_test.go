package service

import (
	"context"
	"errors"
	"testing"

	"SportSync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSport_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	pub := &recordingPublisher{}
	f1 := &stubAdapter{sport: model.SportF1, events: []*model.RawEvent{
		rawEvent(model.SportF1, "Australian Grand Prix", "2024-07-08", "15:30"),
		rawEvent(model.SportF1, "Bahrain Grand Prix", "2024-07-22", "18:00"),
	}}
	svc := newTestSyncService(repo, pub, f1)

	first, err := svc.SyncSport(ctx, model.SportF1)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Total)
	assert.Equal(t, 2, first.Added)
	assert.Equal(t, 0, first.Skipped)
	assert.Empty(t, first.Errors)

	second, err := svc.SyncSport(ctx, model.SportF1)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 2, second.Skipped)

	races, err := repo.ListRaces(ctx)
	require.NoError(t, err)
	assert.Len(t, races, 2)
	assert.Len(t, pub.results, 2)
}

func TestSyncSport_DedupWithinBatch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := newTestSyncService(repo, nil, &stubAdapter{sport: model.SportF1, events: []*model.RawEvent{
		rawEvent(model.SportF1, "Test Grand Prix", "2024-07-21", "15:00"),
		rawEvent(model.SportF1, "Test Grand Prix", "2024-07-21", "18:00"),
	}})

	result, err := svc.SyncSport(ctx, model.SportF1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
}

func TestSyncSport_ErrorIsolation(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{RaceRepository: newTestRepo(t), failOn: 2}
	svc := newTestSyncService(repo, nil, &stubAdapter{sport: model.SportCricket, events: []*model.RawEvent{
		rawEvent(model.SportCricket, "Match One", "2024-07-10", "14:30"),
		rawEvent(model.SportCricket, "Match Two", "2024-07-11", "14:30"),
		rawEvent(model.SportCricket, "Match Three", "2024-07-12", "14:30"),
	}})

	result, err := svc.SyncSport(ctx, model.SportCricket)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to process event Match Two")
	assert.False(t, result.Failed())

	races, err := repo.ListRaces(ctx)
	require.NoError(t, err)
	require.Len(t, races, 2)
	assert.Equal(t, "Match One", races[0].Name)
	assert.Equal(t, "Match Three", races[1].Name)
}

func TestSyncSport_Unsupported(t *testing.T) {
	svc := newTestSyncService(newTestRepo(t), nil)
	_, err := svc.SyncSport(context.Background(), model.Sport("Curling"))
	assert.True(t, errors.Is(err, model.ErrUnsupportedSport))
}

func TestSyncAll_IsolatesFailingSport(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	pub := &recordingPublisher{err: errors.New("redis down")}
	svc := newTestSyncService(repo, pub,
		&stubAdapter{sport: model.SportF1, panicMsg: "selector exploded"},
		&stubAdapter{sport: model.SportNASCAR, events: []*model.RawEvent{rawEvent(model.SportNASCAR, "Daytona 500", "2024-07-04", "02:30")}},
		&stubAdapter{sport: model.SportRally, events: []*model.RawEvent{rawEvent(model.SportRally, "Rally Sweden", "2024-07-11", "15:30")}},
		&stubAdapter{sport: model.SportCricket, events: []*model.RawEvent{rawEvent(model.SportCricket, "India vs Australia", "2024-07-03", "14:30")}},
		&stubAdapter{sport: model.SportFootball, events: []*model.RawEvent{rawEvent(model.SportFootball, "Manchester United vs Liverpool", "2024-07-02", "01:30")}},
	)

	all := svc.SyncAll(ctx)
	require.Len(t, all.Details, 5)

	f1 := all.Details[model.SportF1]
	assert.True(t, f1.Failed())
	assert.Contains(t, f1.FetchError, "F1 fetch failed")
	for _, sport := range []model.Sport{model.SportNASCAR, model.SportRally, model.SportCricket, model.SportFootball} {
		r := all.Details[sport]
		assert.False(t, r.Failed(), sport)
		assert.Equal(t, 1, r.Added, sport)
	}

	assert.Equal(t, 4, all.Summary.TotalEvents)
	assert.Equal(t, 4, all.Summary.TotalAdded)
	assert.Equal(t, 1, all.Summary.TotalErrors)
	require.Len(t, all.Errors, 1)
	// 推送失败只记日志
	assert.Len(t, pub.results, 5)
}

func TestSyncAll_OnlyRegisteredSports(t *testing.T) {
	svc := newTestSyncService(newTestRepo(t), nil,
		&stubAdapter{sport: model.SportCricket, events: []*model.RawEvent{rawEvent(model.SportCricket, "India vs Australia", "2024-07-03", "14:30")}},
		&stubAdapter{sport: model.SportF1, events: []*model.RawEvent{rawEvent(model.SportF1, "British Grand Prix", "2024-07-07", "19:30")}},
	)

	all := svc.SyncAll(context.Background())
	require.Len(t, all.Details, 2)
	assert.Contains(t, all.Details, model.SportF1)
	assert.Contains(t, all.Details, model.SportCricket)
	assert.Equal(t, 2, all.Summary.TotalAdded)
	assert.Empty(t, all.Errors)
}
