package entity

import "time"

// AtRiskThreshold is the score under which a convert raises an alert.
const AtRiskThreshold = 40

type HealthFactors struct {
	AttendanceRate   int `json:"attendance_rate" bson:"attendance_rate"`
	EngagementLevel  int `json:"engagement_level" bson:"engagement_level"`
	ResponseTime     int `json:"response_time" bson:"response_time"`
	SpiritualGrowth  int `json:"spiritual_growth" bson:"spiritual_growth"`
	SocialConnection int `json:"social_connection" bson:"social_connection"`
}

// HealthScore is the current snapshot for one convert. Recalculation replaces it.
type HealthScore struct {
	Base         `bson:",inline"`
	ConvertID    string        `json:"convert_id" bson:"convert_id"`
	Score        int           `json:"score" bson:"score"`
	Factors      HealthFactors `json:"factors" bson:"factors"`
	CalculatedAt time.Time     `json:"calculated_at" bson:"calculated_at"`
}

func (h HealthScore) AtRisk() bool { return h.Score < AtRiskThreshold }

// HealthBand buckets a score for analytics.
func HealthBand(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

func (s AlertSeverity) IsValid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

type AlertStatus string

const (
	AlertOpen         AlertStatus = "open"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertInProgress   AlertStatus = "in_progress"
	AlertResolved     AlertStatus = "resolved"
)

func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertOpen, AlertAcknowledged, AlertInProgress, AlertResolved:
		return true
	}
	return false
}

// Pending reports whether the alert still needs someone's attention.
func (s AlertStatus) Pending() bool {
	return s == AlertOpen || s == AlertAcknowledged
}

// Alert flags an at-risk convert. AssignedTo is a soft user reference and may be null.
type Alert struct {
	Base        `bson:",inline"`
	ConvertID   string        `json:"convert_id" bson:"convert_id"`
	Type        string        `json:"type" bson:"type"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Severity    AlertSeverity `json:"severity" bson:"severity"`
	Status      AlertStatus   `json:"status" bson:"status"`
	AssignedTo  *string       `json:"assigned_to" bson:"assigned_to"`
	Notes       *string       `json:"notes" bson:"notes"`
}
