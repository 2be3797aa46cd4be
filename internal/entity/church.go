package entity

import "time"

type ServiceInstance struct {
	Base          `bson:",inline"`
	Title         string  `json:"title" bson:"title"`
	Type          string  `json:"type" bson:"type"`
	Date          string  `json:"date" bson:"date"`
	Time          string  `json:"time" bson:"time"`
	Venue         string  `json:"venue" bson:"venue"`
	Preacher      *string `json:"preacher" bson:"preacher"`
	Theme         *string `json:"theme" bson:"theme"`
	Attendance    int     `json:"attendance" bson:"attendance"`
	ConvertsCount int     `json:"converts_count" bson:"converts_count"`
	Description   string  `json:"description" bson:"description"`
	CreatedBy     *string `json:"created_by" bson:"created_by"`
}

type MembershipClass struct {
	Base          `bson:",inline"`
	Name          string   `json:"name" bson:"name"`
	Description   string   `json:"description" bson:"description"`
	DurationWeeks int      `json:"duration_weeks" bson:"duration_weeks"`
	Topics        []string `json:"topics" bson:"topics"`
	IsActive      bool     `json:"is_active" bson:"is_active"`
}

type HouseFellowship struct {
	Base        `bson:",inline"`
	Name        string `json:"name" bson:"name"`
	Address     string `json:"address" bson:"address"`
	City        string `json:"city" bson:"city"`
	State       string `json:"state" bson:"state"`
	LeaderName  string `json:"leader_name" bson:"leader_name"`
	LeaderPhone string `json:"leader_phone" bson:"leader_phone"`
	LeaderEmail string `json:"leader_email" bson:"leader_email"`
	MeetingDay  string `json:"meeting_day" bson:"meeting_day"`
	MeetingTime string `json:"meeting_time" bson:"meeting_time"`
	MemberCount int    `json:"member_count" bson:"member_count"`
	IsActive    bool   `json:"is_active" bson:"is_active"`
}

// FollowupRecord logs one contact attempt with a convert. WorkerID is null when
// the tenant has no follow-up staff.
type FollowupRecord struct {
	Base          `bson:",inline"`
	ConvertID     string     `json:"convert_id" bson:"convert_id"`
	WorkerID      *string    `json:"worker_id" bson:"worker_id"`
	Type          string     `json:"type" bson:"type"`
	Status        string     `json:"status" bson:"status"`
	Notes         string     `json:"notes" bson:"notes"`
	ScheduledDate time.Time  `json:"scheduled_date" bson:"scheduled_date"`
	CompletedDate *time.Time `json:"completed_date" bson:"completed_date"`
}
