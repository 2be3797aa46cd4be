package factory

import (
	"fmt"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

// stageWeights follows entity.AllStages: heavier at the early and middle funnel.
var stageWeights = []float64{0.15, 0.25, 0.20, 0.15, 0.10, 0.05, 0.10}

type scoreRange struct{ min, max int }

var stageScores = map[entity.ConvertStage]scoreRange{
	entity.StageNew:               {20, 40},
	entity.StageInFollowup:        {35, 60},
	entity.StageInClasses:         {50, 75},
	entity.StageInHouseFellowship: {65, 85},
	entity.StageEstablished:       {80, 100},
	entity.StageHandedOver:        {40, 70},
	entity.StageInactive:          {5, 25},
}

var convertTags = []string{"new", "prayer-request", "follow-up-needed", "baptism-candidate"}

// Stage draws a funnel stage using the fixed weights.
func (f *Factory) Stage() entity.ConvertStage {
	return random.Weighted(f.src, entity.AllStages, stageWeights)
}

func (f *Factory) Source() entity.ConvertSource {
	return random.Pick(f.src, entity.AllSources)
}

// StageScore draws a health score from the stage's range.
func (f *Factory) StageScore(stage entity.ConvertStage) int {
	r, ok := stageScores[stage]
	if !ok {
		return 50
	}
	return f.src.IntRange(r.min, r.max)
}

// Converts builds n converts assigned to follow-up capable users. With no such
// users the assignment is null.
func (f *Factory) Converts(n int, users []entity.User) []entity.Convert {
	workers := userIDs(users, entity.UserRole.CanTakeConverts)
	everyone := userIDs(users, nil)
	now := f.now().UTC()

	converts := make([]entity.Convert, 0, n)
	for i := 0; i < n; i++ {
		p := f.gen.Person("")
		stage := f.Stage()
		source := f.Source()

		daysAgo := f.src.IntRange(1, 365)
		createdAt := now.AddDate(0, 0, -daysAgo)

		var notes *string
		if random.Chance(f.src, 0.3) {
			notes = entity.StringPtr(fmt.Sprintf("Convert from %s. Interested in learning more about the church.", source))
		}
		tags := random.Sample(f.src, convertTags, f.src.IntRange(0, 2))

		var salvation *string
		if random.Chance(f.src, 0.7) {
			salvation = entity.StringPtr(now.AddDate(0, 0, -(daysAgo + f.src.IntRange(0, 30))).Format(dateLayout))
		}

		score := f.StageScore(stage)

		converts = append(converts, entity.Convert{
			Base:             f.baseAt(createdAt),
			FirstName:        p.FirstName,
			LastName:         p.LastName,
			Phone:            p.Phone,
			Email:            entity.StringPtr(p.Email),
			Gender:           p.Gender,
			DateOfBirth:      entity.StringPtr(p.DateOfBirth.Format(dateLayout)),
			Address:          p.Address.FullAddress,
			City:             p.Address.City,
			State:            p.Address.State,
			Occupation:       p.Occupation,
			Source:           source,
			SourceDate:       entity.StringPtr(createdAt.Format(dateLayout)),
			Stage:            stage,
			StageUpdatedAt:   createdAt,
			AssignedWorkerID: f.pickID(workers),
			HealthScore:      &score,
			Notes:            notes,
			Tags:             tags,
			SalvationDate:    salvation,
			CreatedBy:        f.pickID(everyone),
		})
	}
	return converts
}

// HealthScores builds one snapshot per convert. The convert's own score is reused
// so both records agree; converts without one get a fresh draw from their stage.
func (f *Factory) HealthScores(converts []entity.Convert) []entity.HealthScore {
	now := f.now().UTC()
	scores := make([]entity.HealthScore, 0, len(converts))
	for _, c := range converts {
		score := f.StageScore(c.Stage)
		if c.HealthScore != nil {
			score = *c.HealthScore
		}
		scores = append(scores, entity.HealthScore{
			Base:         f.base(),
			ConvertID:    c.ID,
			Score:        score,
			Factors:      f.factors(scoreRange{0, 100}, scoreRange{0, 100}, scoreRange{0, 100}, scoreRange{0, 100}, scoreRange{0, 100}),
			CalculatedAt: now,
		})
	}
	return scores
}

// InitialHealthScore is the snapshot given to a convert entered by hand.
func (f *Factory) InitialHealthScore(convertID string) entity.HealthScore {
	return entity.HealthScore{
		Base:         entity.NewBase(f.clientID, f.now()),
		ConvertID:    convertID,
		Score:        f.src.IntRange(30, 50),
		Factors:      f.factors(scoreRange{20, 40}, scoreRange{30, 50}, scoreRange{40, 60}, scoreRange{20, 40}, scoreRange{10, 30}),
		CalculatedAt: f.now().UTC(),
	}
}

// RecalculatedHealthScore replaces a snapshot on demand.
func (f *Factory) RecalculatedHealthScore(convertID string) entity.HealthScore {
	return entity.HealthScore{
		Base:         entity.NewBase(f.clientID, f.now()),
		ConvertID:    convertID,
		Score:        f.src.IntRange(30, 95),
		Factors:      f.factors(scoreRange{0, 100}, scoreRange{0, 100}, scoreRange{0, 100}, scoreRange{0, 100}, scoreRange{0, 100}),
		CalculatedAt: f.now().UTC(),
	}
}

func (f *Factory) factors(attendance, engagement, response, growth, social scoreRange) entity.HealthFactors {
	return entity.HealthFactors{
		AttendanceRate:   f.src.IntRange(attendance.min, attendance.max),
		EngagementLevel:  f.src.IntRange(engagement.min, engagement.max),
		ResponseTime:     f.src.IntRange(response.min, response.max),
		SpiritualGrowth:  f.src.IntRange(growth.min, growth.max),
		SocialConnection: f.src.IntRange(social.min, social.max),
	}
}

type alertKind struct {
	kind, title, description string
}

var alertKinds = []alertKind{
	{"low_engagement", "Low Engagement Alert", "Convert has not attended services for 3 weeks"},
	{"at_risk", "At Risk Alert", "Convert showing signs of disengagement"},
	{"follow_up_overdue", "Follow-up Overdue", "Scheduled follow-up is overdue"},
	{"no_response", "No Response Alert", "Convert not responding to communication"},
}

// open is listed twice so new alerts are mostly unhandled.
var alertStatuses = []entity.AlertStatus{
	entity.AlertOpen, entity.AlertOpen, entity.AlertAcknowledged, entity.AlertInProgress,
}

// Alerts raises exactly one alert for every score under the at-risk threshold.
// Severity is high under 25. The assignee is a follow-up leader, or null when the
// tenant has none.
func (f *Factory) Alerts(scores []entity.HealthScore, users []entity.User) []entity.Alert {
	leaders := userIDs(users, func(r entity.UserRole) bool { return r == entity.RoleFollowupLeader })

	alerts := make([]entity.Alert, 0)
	for _, s := range scores {
		if !s.AtRisk() {
			continue
		}
		kind := random.Pick(f.src, alertKinds)
		severity := entity.SeverityMedium
		if s.Score < 25 {
			severity = entity.SeverityHigh
		}
		alerts = append(alerts, entity.Alert{
			Base:        f.base(),
			ConvertID:   s.ConvertID,
			Type:        kind.kind,
			Title:       kind.title,
			Description: kind.description,
			Severity:    severity,
			Status:      random.Pick(f.src, alertStatuses),
			AssignedTo:  f.pickID(leaders),
		})
	}
	return alerts
}
