package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/infra/database"
)

func newStats(store SeedStore) *StatsUseCase {
	uc := NewStatsUseCase(store, testClientID)
	uc.Now = clock
	return uc
}

func TestStats_Dashboard(t *testing.T) {
	store := seededStore(t)
	stats, err := newStats(store).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, stats.TotalConverts)
	assert.Equal(t, 6, stats.ActiveWorkers)
	assert.GreaterOrEqual(t, stats.AverageHealthScore, 0.0)
	assert.LessOrEqual(t, stats.AverageHealthScore, 100.0)

	var converts []entity.Convert
	require.NoError(t, store.Find(context.Background(), entity.CollectionConverts, nil, &converts))
	atRisk, fresh := 0, 0
	for _, c := range converts {
		if *c.HealthScore < entity.AtRiskThreshold {
			atRisk++
		}
		if c.Stage == entity.StageNew {
			fresh++
		}
	}
	assert.Equal(t, atRisk, stats.AtRisk)
	assert.Equal(t, fresh, stats.AwaitingFollowup)
	assert.Equal(t, count(t, store, entity.CollectionAlerts), stats.OpenAlerts+countResolved(t, store))
}

func countResolved(t *testing.T, store SeedStore) int {
	n, err := store.Count(context.Background(), entity.CollectionAlerts,
		entity.ByClient(testClientID, entity.In("status", string(entity.AlertInProgress), string(entity.AlertResolved))))
	require.NoError(t, err)
	return int(n)
}

func TestStats_EmptyTenant(t *testing.T) {
	stats, err := newStats(database.NewMemoryStore()).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalConverts)
	assert.Zero(t, stats.AverageHealthScore)
}

func TestStats_StageDistributionCoversEveryStage(t *testing.T) {
	dist, err := newStats(seededStore(t)).StageDistribution(context.Background())
	require.NoError(t, err)
	assert.Len(t, dist, len(entity.AllStages))
	total := 0
	for _, n := range dist {
		total += n
	}
	assert.Equal(t, 50, total)
}

func TestStats_RecentActivity(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		c := entity.Convert{Base: entity.NewBase(testClientID, fixedNow.Add(time.Duration(i)*time.Hour)), FirstName: "C", LastName: "X", Stage: entity.StageNew}
		require.NoError(t, store.InsertMany(ctx, entity.CollectionConverts, []entity.Record{c}))
		call := entity.VoiceCall{Base: entity.NewBase(testClientID, fixedNow.Add(time.Duration(i)*time.Hour+time.Minute)), ConvertID: c.ID, Status: entity.CallCompleted}
		require.NoError(t, store.InsertMany(ctx, entity.CollectionVoiceCalls, []entity.Record{call}))
	}

	activity, err := newStats(store).RecentActivity(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 10)
	for i := 1; i < len(activity); i++ {
		assert.False(t, activity[i].Timestamp.After(activity[i-1].Timestamp))
	}
	assert.Equal(t, "voice_call", activity[0].Type)
	assert.Equal(t, "Voice call with C - completed", activity[0].Message)
}

func TestStats_ConvertAnalytics(t *testing.T) {
	out, err := newStats(seededStore(t)).ConvertAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, out.Total)
	assert.Len(t, out.MonthlyTrend, 6)
	assert.Contains(t, out.MonthlyTrend, "2025-06")
	assert.Contains(t, out.MonthlyTrend, "2025-01")

	bands := 0
	for _, n := range out.HealthDistribution {
		bands += n
	}
	assert.Equal(t, 50, bands)
	assert.Len(t, out.BySource, len(entity.AllSources))
}

func TestStats_VoiceCallAnalytics(t *testing.T) {
	out, err := newStats(seededStore(t)).VoiceCallAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, out.TotalCalls)
	assert.LessOrEqual(t, out.Completed+out.Failed+out.NoAnswer, 15)
	outcomes := 0
	for _, n := range out.Outcomes {
		outcomes += n
	}
	assert.Equal(t, 15, outcomes)
}

func TestStats_DemoStatsReportsZeroOnError(t *testing.T) {
	store := new(MockSeedStore)
	store.On("Count", mock.Anything, entity.CollectionConverts, mock.Anything).Return(int64(0), errors.New("timeout"))
	store.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil)

	out := newStats(store).DemoStats(context.Background())
	assert.Equal(t, "success", out.Status)
	assert.Zero(t, out.Stats[entity.CollectionConverts])
	assert.Equal(t, 3, out.Stats[entity.CollectionUsers])
	assert.Len(t, out.Stats, len(entity.StatsCollections))
}
