package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"SportSync/internal/adapter"
	"SportSync/internal/adapter/scrape"
	"SportSync/internal/database"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"
	"SportSync/internal/normalizer"
	"SportSync/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// 测试公共桩

func newTestRepo(t *testing.T) interfaces.RaceRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", logger.Discard)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return repository.NewRaceRepository(db)
}

type stubAdapter struct {
	sport    model.Sport
	events   []*model.RawEvent
	panicMsg string
}

func (s *stubAdapter) Sport() model.Sport { return s.sport }

func (s *stubAdapter) Fetch(context.Context) []*model.RawEvent {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.events
}

// failingRepo 第 failOn 次 CreateRace 返回错误
type failingRepo struct {
	interfaces.RaceRepository
	mu     sync.Mutex
	calls  int
	failOn int
}

func (f *failingRepo) CreateRace(ctx context.Context, race *model.Race) (bool, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()
	if n == f.failOn {
		return false, errors.New("disk full")
	}
	return f.RaceRepository.CreateRace(ctx, race)
}

type recordingPublisher struct {
	results []*model.SyncResult
	err     error
}

func (p *recordingPublisher) PublishSyncResult(_ context.Context, r *model.SyncResult) error {
	p.results = append(p.results, r)
	return p.err
}

func rawEvent(sport model.Sport, name, date, clock string) *model.RawEvent {
	return &model.RawEvent{
		Sport:      sport,
		Name:       name,
		Date:       date,
		Time:       clock,
		SourceZone: scrape.FallbackZone,
		Location:   "Test Circuit, Testland",
		Status:     model.StatusUpcoming,
	}
}

func newTestSyncService(repo interfaces.RaceRepository, pub interfaces.SyncPublisher, adapters ...interfaces.SourceAdapter) *SyncService {
	log := logrus.New()
	norm := normalizer.New(scrape.FallbackZone, log)
	registry := adapter.NewStaticRegistry(log, adapters...)
	return NewSyncService(registry, norm, NewUpsertService(repo, norm.DisplayZone(), log), pub, log)
}
