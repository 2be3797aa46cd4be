package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

type DashboardStats struct {
	TotalConverts      int     `json:"total_converts"`
	NewThisMonth       int     `json:"new_this_month"`
	AtRisk             int     `json:"at_risk"`
	AwaitingFollowup   int     `json:"awaiting_followup"`
	AverageHealthScore float64 `json:"average_health_score"`
	ActiveWorkers      int     `json:"active_workers"`
	UpcomingServices   int     `json:"upcoming_services"`
	OpenAlerts         int     `json:"open_alerts"`
}

type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ConvertAnalytics struct {
	Total              int            `json:"total"`
	ByStage            map[string]int `json:"by_stage"`
	BySource           map[string]int `json:"by_source"`
	MonthlyTrend       map[string]int `json:"monthly_trend"`
	HealthDistribution map[string]int `json:"health_distribution"`
}

type VoiceCallAnalytics struct {
	TotalCalls             int            `json:"total_calls"`
	Completed              int            `json:"completed"`
	Failed                 int            `json:"failed"`
	NoAnswer               int            `json:"no_answer"`
	AverageDurationSeconds float64        `json:"average_duration_seconds"`
	Outcomes               map[string]int `json:"outcomes"`
	SuccessRate            float64        `json:"success_rate"`
}

type DemoStats struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Stats     map[string]int `json:"stats"`
}

const (
	recentPerKind = 5
	recentTotal   = 10
	trendMonths   = 6
)

// StatsUseCase aggregates read-side numbers over stored records.
type StatsUseCase struct {
	Store    SeedStore
	ClientID string
	Now      func() time.Time
}

func NewStatsUseCase(store SeedStore, clientID string) *StatsUseCase {
	return &StatsUseCase{Store: store, ClientID: clientID, Now: time.Now}
}

func (uc *StatsUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now().UTC()
	}
	return uc.Now().UTC()
}

func (uc *StatsUseCase) converts(ctx context.Context) ([]entity.Convert, error) {
	converts, err := findAll[entity.Convert](ctx, uc.Store, entity.CollectionConverts, entity.ByClient(uc.ClientID))
	if err != nil {
		return nil, storageFailure("failed to load converts", err)
	}
	return converts, nil
}

func (uc *StatsUseCase) count(ctx context.Context, collection string, filter entity.Filter) (int, error) {
	n, err := uc.Store.Count(ctx, collection, filter)
	if err != nil {
		return 0, storageFailure(fmt.Sprintf("failed to count %s", collection), err)
	}
	return int(n), nil
}

// healthOf falls back to the neutral middle for converts without a snapshot.
func healthOf(c entity.Convert) int {
	if c.HealthScore == nil {
		return 50
	}
	return *c.HealthScore
}

func (uc *StatsUseCase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	converts, err := uc.converts(ctx)
	if err != nil {
		return nil, err
	}
	monthAgo := uc.now().AddDate(0, 0, -30)

	stats := &DashboardStats{TotalConverts: len(converts)}
	sum := 0
	for _, c := range converts {
		if c.CreatedAt.After(monthAgo) {
			stats.NewThisMonth++
		}
		score := healthOf(c)
		if c.HealthScore != nil && score < entity.AtRiskThreshold {
			stats.AtRisk++
		}
		if c.Stage == entity.StageNew {
			stats.AwaitingFollowup++
		}
		sum += score
	}
	if len(converts) > 0 {
		stats.AverageHealthScore = round1(float64(sum) / float64(len(converts)))
	}

	if stats.ActiveWorkers, err = uc.count(ctx, entity.CollectionUsers, entity.ByClient(uc.ClientID, entity.Eq("is_active", true))); err != nil {
		return nil, err
	}
	if stats.UpcomingServices, err = uc.count(ctx, entity.CollectionServiceInstances,
		entity.ByClient(uc.ClientID, entity.Gt("date", monthAgo.Format("2006-01-02")))); err != nil {
		return nil, err
	}
	if stats.OpenAlerts, err = uc.count(ctx, entity.CollectionAlerts,
		entity.ByClient(uc.ClientID, entity.In("status", string(entity.AlertOpen), string(entity.AlertAcknowledged)))); err != nil {
		return nil, err
	}
	return stats, nil
}

func (uc *StatsUseCase) StageDistribution(ctx context.Context) (map[string]int, error) {
	converts, err := uc.converts(ctx)
	if err != nil {
		return nil, err
	}
	return stageCounts(converts), nil
}

func stageCounts(converts []entity.Convert) map[string]int {
	out := make(map[string]int, len(entity.AllStages))
	for _, s := range entity.AllStages {
		out[string(s)] = 0
	}
	for _, c := range converts {
		out[string(c.Stage)]++
	}
	return out
}

// RecentActivity merges the latest converts and voice calls, newest first.
func (uc *StatsUseCase) RecentActivity(ctx context.Context) ([]Activity, error) {
	converts, err := uc.converts(ctx)
	if err != nil {
		return nil, err
	}
	calls, err := findAll[entity.VoiceCall](ctx, uc.Store, entity.CollectionVoiceCalls, entity.ByClient(uc.ClientID))
	if err != nil {
		return nil, storageFailure("failed to load voice calls", err)
	}

	sort.SliceStable(converts, func(i, j int) bool { return converts[i].CreatedAt.After(converts[j].CreatedAt) })
	sort.SliceStable(calls, func(i, j int) bool { return calls[i].CreatedAt.After(calls[j].CreatedAt) })

	names := make(map[string]string, len(converts))
	for _, c := range converts {
		names[c.ID] = c.FirstName
	}

	activities := make([]Activity, 0, recentTotal)
	for i, c := range converts {
		if i == recentPerKind {
			break
		}
		activities = append(activities, Activity{
			Type:      "convert_created",
			Message:   "New convert: " + c.FullName(),
			Timestamp: c.CreatedAt,
		})
	}
	for i, call := range calls {
		if i == recentPerKind {
			break
		}
		name, ok := names[call.ConvertID]
		if !ok {
			name = "Unknown"
		}
		activities = append(activities, Activity{
			Type:      "voice_call",
			Message:   fmt.Sprintf("Voice call with %s - %s", name, call.Status),
			Timestamp: call.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool { return activities[i].Timestamp.After(activities[j].Timestamp) })
	if len(activities) > recentTotal {
		activities = activities[:recentTotal]
	}
	return activities, nil
}

func (uc *StatsUseCase) ConvertAnalytics(ctx context.Context) (*ConvertAnalytics, error) {
	converts, err := uc.converts(ctx)
	if err != nil {
		return nil, err
	}

	out := &ConvertAnalytics{
		Total:              len(converts),
		ByStage:            stageCounts(converts),
		BySource:           make(map[string]int, len(entity.AllSources)),
		MonthlyTrend:       make(map[string]int, trendMonths),
		HealthDistribution: map[string]int{"excellent": 0, "good": 0, "fair": 0, "poor": 0},
	}
	for _, s := range entity.AllSources {
		out.BySource[string(s)] = 0
	}

	now := uc.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < trendMonths; i++ {
		out.MonthlyTrend[firstOfMonth.AddDate(0, -i, 0).Format("2006-01")] = 0
	}

	for _, c := range converts {
		out.BySource[string(c.Source)]++
		out.HealthDistribution[entity.HealthBand(healthOf(c))]++
		month := c.CreatedAt.UTC().Format("2006-01")
		if _, ok := out.MonthlyTrend[month]; ok {
			out.MonthlyTrend[month]++
		}
	}
	return out, nil
}

func (uc *StatsUseCase) VoiceCallAnalytics(ctx context.Context) (*VoiceCallAnalytics, error) {
	calls, err := findAll[entity.VoiceCall](ctx, uc.Store, entity.CollectionVoiceCalls, entity.ByClient(uc.ClientID))
	if err != nil {
		return nil, storageFailure("failed to load voice calls", err)
	}

	out := &VoiceCallAnalytics{TotalCalls: len(calls), Outcomes: map[string]int{}}
	durations, total := 0, 0
	for _, c := range calls {
		switch c.Status {
		case entity.CallCompleted:
			out.Completed++
		case entity.CallFailed:
			out.Failed++
		case entity.CallNoAnswer:
			out.NoAnswer++
		}
		if c.DurationSeconds != nil && *c.DurationSeconds > 0 {
			durations++
			total += *c.DurationSeconds
		}
		outcome := "unknown"
		if c.Outcome != nil {
			outcome = *c.Outcome
		}
		out.Outcomes[outcome]++
	}
	if durations > 0 {
		out.AverageDurationSeconds = round1(float64(total) / float64(durations))
	}
	if out.TotalCalls > 0 {
		out.SuccessRate = round1(float64(out.Completed) / float64(out.TotalCalls) * 100)
	}
	return out, nil
}

// DemoStats reports per-collection counts. A collection that cannot be counted
// reports 0 instead of failing the whole report.
func (uc *StatsUseCase) DemoStats(ctx context.Context) *DemoStats {
	stats := make(map[string]int, len(entity.StatsCollections))
	for _, collection := range entity.StatsCollections {
		n, err := uc.Store.Count(ctx, collection, entity.ByClient(uc.ClientID))
		if err != nil {
			n = 0
		}
		stats[collection] = int(n)
	}
	return &DemoStats{Status: "success", Timestamp: uc.now(), Stats: stats}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
