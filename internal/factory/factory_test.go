package factory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/locale"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

const testClient = "demo-church-test"

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestFactory(seed int64) *Factory {
	return New(random.NewSource(seed), testClient, func() time.Time { return fixedNow })
}

func seededUsers(f *Factory, workers int) []entity.User {
	users := []entity.User{f.Admin("admin@example.demo", "hash")}
	return append(users, f.Workers(workers, "hash")...)
}

func TestClientUsesTenantID(t *testing.T) {
	f := newTestFactory(1)

	c := f.Client("Grace Evangelical Ministries")
	assert.Equal(t, testClient, c.ID)
	assert.Equal(t, testClient, c.ClientID)
	assert.True(t, c.IsDemo)
	assert.Len(t, c.Branches, 3)
	assert.Regexp(t, `^\d{11}$`, c.Phone)
}

func TestWorkersFollowRoleOrder(t *testing.T) {
	f := newTestFactory(1)

	users := f.Workers(16, "hash")
	require.Len(t, users, 16)
	assert.Equal(t, entity.RoleFollowupLeader, users[0].Role)
	assert.Equal(t, entity.RoleFollowupWorker, users[1].Role)
	assert.Equal(t, "followup_leader1@dependifygospel.demo", users[0].Email)
	// cycles after the role list
	assert.Equal(t, entity.RoleFollowupLeader, users[14].Role)

	emails := map[string]bool{}
	for _, u := range users {
		assert.False(t, emails[u.Email])
		emails[u.Email] = true
		assert.Equal(t, testClient, u.ClientID)
	}
}

func TestConvertsUseClosedEnumerations(t *testing.T) {
	f := newTestFactory(42)
	users := seededUsers(f, 15)
	workerIDs := map[string]bool{}
	for _, u := range users {
		if u.Role.CanTakeConverts() {
			workerIDs[u.ID] = true
		}
	}

	converts := f.Converts(300, users)
	require.Len(t, converts, 300)
	for _, c := range converts {
		assert.True(t, c.Stage.IsValid(), c.Stage)
		assert.True(t, c.Source.IsValid(), c.Source)
		assert.Regexp(t, `^\d{11}$`, c.Phone)
		assert.True(t, locale.IsPhonePrefix(c.Phone[:4]))
		require.NotNil(t, c.AssignedWorkerID)
		assert.True(t, workerIDs[*c.AssignedWorkerID])
		assert.LessOrEqual(t, len(c.Tags), 2)

		_, ok := locale.LookupState(c.State)
		assert.True(t, ok, c.State)

		age := fixedNow.Sub(c.CreatedAt)
		assert.GreaterOrEqual(t, age, 24*time.Hour)
		assert.LessOrEqual(t, age, 365*24*time.Hour)
	}
}

func TestConvertsWithoutWorkersAreUnassigned(t *testing.T) {
	f := newTestFactory(42)
	users := seededUsers(f, 0)

	for _, c := range f.Converts(50, users) {
		assert.Nil(t, c.AssignedWorkerID)
		require.NotNil(t, c.CreatedBy)
		assert.Equal(t, users[0].ID, *c.CreatedBy)
	}
}

func TestHealthScoreFollowsStage(t *testing.T) {
	f := newTestFactory(7)
	converts := f.Converts(1000, seededUsers(f, 15))
	scores := f.HealthScores(converts)
	require.Len(t, scores, len(converts))

	sum := map[entity.ConvertStage]int{}
	count := map[entity.ConvertStage]int{}
	for i, s := range scores {
		c := converts[i]
		assert.Equal(t, c.ID, s.ConvertID)
		assert.Equal(t, *c.HealthScore, s.Score)

		r := stageScores[c.Stage]
		assert.GreaterOrEqual(t, s.Score, r.min)
		assert.LessOrEqual(t, s.Score, r.max)
		sum[c.Stage] += s.Score
		count[c.Stage]++
	}

	require.GreaterOrEqual(t, count[entity.StageNew], 20)
	require.GreaterOrEqual(t, count[entity.StageEstablished], 20)
	meanNew := float64(sum[entity.StageNew]) / float64(count[entity.StageNew])
	meanEstablished := float64(sum[entity.StageEstablished]) / float64(count[entity.StageEstablished])
	assert.Greater(t, meanEstablished, meanNew)
}

func TestAlertsOnePerLowScore(t *testing.T) {
	f := newTestFactory(9)
	users := seededUsers(f, 15)
	converts := f.Converts(400, users)
	scores := f.HealthScores(converts)

	alerts := f.Alerts(scores, users)

	leaders := map[string]bool{}
	for _, u := range users {
		if u.Role == entity.RoleFollowupLeader {
			leaders[u.ID] = true
		}
	}

	low := map[string]int{}
	for _, s := range scores {
		if s.Score < entity.AtRiskThreshold {
			low[s.ConvertID] = s.Score
		}
	}
	require.Len(t, alerts, len(low))

	seen := map[string]bool{}
	for _, a := range alerts {
		score, ok := low[a.ConvertID]
		require.True(t, ok)
		assert.False(t, seen[a.ConvertID])
		seen[a.ConvertID] = true

		if score < 25 {
			assert.Equal(t, entity.SeverityHigh, a.Severity)
		} else {
			assert.Equal(t, entity.SeverityMedium, a.Severity)
		}
		assert.True(t, a.Status.IsValid())
		require.NotNil(t, a.AssignedTo)
		assert.True(t, leaders[*a.AssignedTo])
	}
}

func TestAlertsWithoutLeaderHaveNullAssignee(t *testing.T) {
	f := newTestFactory(9)
	scores := []entity.HealthScore{{ConvertID: "c1", Score: 10}, {ConvertID: "c2", Score: 39}, {ConvertID: "c3", Score: 40}}

	alerts := f.Alerts(scores, seededUsers(f, 0))
	require.Len(t, alerts, 2)
	for _, a := range alerts {
		assert.Nil(t, a.AssignedTo)
	}
}

func TestServicesAndConvertLists(t *testing.T) {
	f := newTestFactory(3)
	services := f.Services(40, seededUsers(f, 5))
	require.Len(t, services, 40)

	withConverts := 0
	for _, s := range services {
		if s.ConvertsCount > 0 {
			withConverts++
			assert.GreaterOrEqual(t, s.ConvertsCount, 5)
			assert.LessOrEqual(t, s.ConvertsCount, 30)
		}
		assert.Contains(t, serviceKinds, s.Type)
		assert.Equal(t, "A blessed "+strings.ToLower(s.Type)+" with powerful ministration", s.Description)
	}

	lists := f.ConvertLists(services)
	assert.Len(t, lists, withConverts)
	for _, l := range lists {
		assert.Len(t, l.Stages, 6)
		assert.Equal(t, "service", l.Source)
	}
}

func TestFollowupsSampleAThirdOfConverts(t *testing.T) {
	f := newTestFactory(5)
	users := seededUsers(f, 15)
	converts := f.Converts(90, users)

	records := f.Followups(converts, users)

	byConvert := map[string]int{}
	for _, r := range records {
		byConvert[r.ConvertID]++
		require.NotNil(t, r.WorkerID)
		assert.Contains(t, followupTypes, r.Type)
	}
	assert.Len(t, byConvert, 30)
	for _, n := range byConvert {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 5)
	}

	assert.Empty(t, f.Followups(converts[:2], users))
}

func TestHouseFellowships(t *testing.T) {
	f := newTestFactory(5)

	fellowships, err := f.HouseFellowships()
	require.NoError(t, err)
	require.Len(t, fellowships, 8)
	assert.Equal(t, "Ikeja House Fellowship 1", fellowships[0].Name)
	assert.Equal(t, "Abeokuta House Fellowship 8", fellowships[7].Name)
}

func TestVoiceCalls(t *testing.T) {
	f := newTestFactory(11)
	converts := f.Converts(5, seededUsers(f, 3))

	calls, messages := f.VoiceCalls(converts, "agent-1")
	assert.Len(t, calls, 5)

	completed := map[string]bool{}
	for _, c := range calls {
		if c.Status == entity.CallCompleted {
			completed[c.ID] = true
		}
		if c.Status == entity.CallCompleted || c.Status == entity.CallVoicemail {
			require.NotNil(t, c.DurationSeconds)
			assert.GreaterOrEqual(t, *c.DurationSeconds, 120)
			assert.LessOrEqual(t, *c.DurationSeconds, 900)
		} else {
			assert.Nil(t, c.DurationSeconds)
		}
	}
	assert.Len(t, messages, 6*len(completed))
	for _, m := range messages {
		assert.True(t, completed[m.CallID])
	}

	calls, _ = f.VoiceCalls(f.Converts(40, nil), "agent-1")
	assert.Len(t, calls, 15)
}

func TestSimulateCall(t *testing.T) {
	f := newTestFactory(11)

	sim := f.SimulateCall("call-1", "Ada")
	assert.Len(t, sim.Messages, 8)
	assert.GreaterOrEqual(t, sim.DurationSeconds, 120)
	assert.LessOrEqual(t, sim.DurationSeconds, 600)
	assert.Equal(t, fixedNow, sim.EndedAt)
	assert.Contains(t, sim.Transcript, "Hello, may I speak with Ada?")
	assert.Nil(t, sim.Messages[0].Sentiment)
	require.NotNil(t, sim.Messages[1].Sentiment)
}

func TestMetadata(t *testing.T) {
	f := newTestFactory(1)

	m := f.Metadata(map[string]int{"users_count": 3})
	assert.Equal(t, entity.DemoMetadataID, m.ID)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, 3, m.DataSummary["users_count"])
}
