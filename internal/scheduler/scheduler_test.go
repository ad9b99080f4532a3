package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"SportSync/internal/config"
	"SportSync/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(h, m int) time.Time {
	return time.Date(2024, 7, 1, h, m, 0, 0, time.UTC)
}

func TestEvery_Next(t *testing.T) {
	cases := []struct {
		name  string
		every Every
		from  time.Time
		want  time.Time
	}{
		{"F1 每6小时", Every{6 * time.Hour, 0}, utc(0, 0), utc(6, 0)},
		{"F1 跨日", Every{6 * time.Hour, 0}, utc(18, 0), utc(0, 0).AddDate(0, 0, 1)},
		{"NASCAR 8h:15", Every{8 * time.Hour, 15 * time.Minute}, utc(8, 14), utc(8, 15)},
		{"NASCAR 整点后", Every{8 * time.Hour, 15 * time.Minute}, utc(8, 15), utc(16, 15)},
		{"Rally 12h:30", Every{12 * time.Hour, 30 * time.Minute}, utc(13, 0), utc(0, 30).AddDate(0, 0, 1)},
		{"Cricket 4h:45", Every{4 * time.Hour, 45 * time.Minute}, utc(9, 0), utc(12, 45)},
		{"每日03:00", Every{24 * time.Hour, 3 * time.Hour}, utc(2, 59), utc(3, 0)},
		{"每日03:00 已过", Every{24 * time.Hour, 3 * time.Hour}, utc(3, 0), utc(3, 0).AddDate(0, 0, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.every.Next(c.from))
		})
	}

	// 非UTC输入按UTC计算
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, utc(6, 0), Every{Interval: 6 * time.Hour}.Next(time.Date(2024, 7, 1, 11, 0, 0, 0, ist)))

	assert.True(t, Every{}.Next(utc(0, 0)).IsZero())
}

func TestEvery_Valid(t *testing.T) {
	for _, d := range []time.Duration{time.Hour, 4 * time.Hour, 8 * time.Hour, 12 * time.Hour, 24 * time.Hour, 90 * time.Minute} {
		assert.True(t, Every{Interval: d}.Valid(), d.String())
	}
	for _, d := range []time.Duration{0, -time.Hour, 7 * time.Hour, 36 * time.Hour, 48 * time.Hour} {
		assert.False(t, Every{Interval: d}.Valid(), d.String())
	}
}

type fakeSyncer struct {
	mu     sync.Mutex
	sports []model.Sport
	all    int
}

func (f *fakeSyncer) SyncSport(_ context.Context, sport model.Sport) (*model.SyncResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sports = append(f.sports, sport)
	return model.NewSyncResult(sport), nil
}

func (f *fakeSyncer) SyncAll(context.Context) *model.AllSyncResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all++
	return &model.AllSyncResult{}
}

func testSyncConfig(env string) config.SyncConfig {
	return config.SyncConfig{
		Environment:        env,
		ActiveEnvironments: []string{"production", "staging"},
		RunTimeout:         time.Second,
		DailyAt:            3 * time.Hour,
		Schedules: map[string]config.ScheduleConfig{
			"f1":       {Every: 6 * time.Hour},
			"nascar":   {Every: 8 * time.Hour, Offset: 15 * time.Minute},
			"rally":    {Every: 12 * time.Hour, Offset: 30 * time.Minute},
			"cricket":  {Every: 4 * time.Hour, Offset: 45 * time.Minute},
			"football": {Every: 6 * time.Hour, Offset: 30 * time.Minute},
		},
	}
}

func TestStart_DisabledEnvironment(t *testing.T) {
	s := New(testSyncConfig("development"), &fakeSyncer{}, logrus.New())
	s.Start()
	defer s.Stop()

	st := s.Status()
	assert.False(t, st.Enabled)
	assert.Equal(t, "development", st.Environment)
	assert.Zero(t, st.TotalTasks)
}

func TestStart_RegistersTasks(t *testing.T) {
	syncer := &fakeSyncer{}
	s := New(testSyncConfig("production"), syncer, logrus.New())
	s.now = func() time.Time { return utc(1, 0) }
	s.Start()
	defer s.Stop()

	st := s.Status()
	assert.True(t, st.Enabled)
	require.Equal(t, 6, st.TotalTasks)

	names := make([]string, 0, len(st.Tasks))
	for _, task := range st.Tasks {
		names = append(names, task.Name)
		assert.False(t, task.Next.IsZero(), task.Name)
	}
	assert.Equal(t, []string{"f1", "nascar", "rally", "cricket", "football", "all"}, names)
	assert.Equal(t, "24h0m0s", st.Tasks[5].Interval)
	assert.Equal(t, "3h0m0s", st.Tasks[5].Offset)

	// 直接执行任务体
	s.tasks[1].job.Run()
	s.tasks[5].job.Run()
	assert.Equal(t, []model.Sport{model.SportNASCAR}, syncer.sports)
	assert.Equal(t, 1, syncer.all)
}

func TestStart_SkipsMissingSchedule(t *testing.T) {
	cfg := testSyncConfig("staging")
	delete(cfg.Schedules, "rally")
	cfg.Schedules["cricket"] = config.ScheduleConfig{}

	s := New(cfg, &fakeSyncer{}, logrus.New())
	s.Start()
	defer s.Stop()

	assert.Equal(t, 4, s.Status().TotalTasks)
}

func TestStart_SkipsIntervalNotDividingDay(t *testing.T) {
	cfg := testSyncConfig("production")
	cfg.Schedules["rally"] = config.ScheduleConfig{Every: 36 * time.Hour}
	cfg.Schedules["cricket"] = config.ScheduleConfig{Every: 7 * time.Hour}

	s := New(cfg, &fakeSyncer{}, logrus.New())
	s.Start()
	defer s.Stop()

	st := s.Status()
	require.Equal(t, 4, st.TotalTasks)
	for _, task := range st.Tasks {
		assert.NotContains(t, []string{"rally", "cricket"}, task.Name)
	}
}
