package entity

import (
	"errors"
	"strings"
	"time"
)

type ConvertStage string

const (
	StageNew               ConvertStage = "new"
	StageInFollowup        ConvertStage = "in_followup"
	StageInClasses         ConvertStage = "in_classes"
	StageInHouseFellowship ConvertStage = "in_house_fellowship"
	StageEstablished       ConvertStage = "established"
	StageHandedOver        ConvertStage = "handed_over"
	StageInactive          ConvertStage = "inactive"
)

// AllStages lists the funnel in order, followed by the side states.
var AllStages = []ConvertStage{
	StageNew, StageInFollowup, StageInClasses, StageInHouseFellowship,
	StageEstablished, StageHandedOver, StageInactive,
}

func (s ConvertStage) IsValid() bool {
	for _, known := range AllStages {
		if s == known {
			return true
		}
	}
	return false
}

type ConvertSource string

const (
	SourceService      ConvertSource = "service"
	SourceOutreach     ConvertSource = "outreach"
	SourceProgramme    ConvertSource = "programme"
	SourcePartner      ConvertSource = "partner"
	SourceReferral     ConvertSource = "referral"
	SourceWalkIn       ConvertSource = "walk_in"
	SourcePhoneInquiry ConvertSource = "phone_inquiry"
	SourceOther        ConvertSource = "other"
)

var AllSources = []ConvertSource{
	SourceService, SourceOutreach, SourceProgramme, SourcePartner,
	SourceReferral, SourceWalkIn, SourcePhoneInquiry, SourceOther,
}

func (s ConvertSource) IsValid() bool {
	for _, known := range AllSources {
		if s == known {
			return true
		}
	}
	return false
}

// Convert is a tracked individual in the follow-up funnel.
// AssignedWorkerID and CreatedBy are soft references to users: copied at creation,
// never re-validated.
type Convert struct {
	Base             `bson:",inline"`
	FirstName        string        `json:"first_name" bson:"first_name"`
	LastName         string        `json:"last_name" bson:"last_name"`
	Phone            string        `json:"phone" bson:"phone"`
	Email            *string       `json:"email" bson:"email"`
	Gender           string        `json:"gender" bson:"gender"`
	DateOfBirth      *string       `json:"date_of_birth" bson:"date_of_birth"`
	Address          string        `json:"address" bson:"address"`
	City             string        `json:"city" bson:"city"`
	State            string        `json:"state" bson:"state"`
	Occupation       string        `json:"occupation" bson:"occupation"`
	Source           ConvertSource `json:"source" bson:"source"`
	SourceDate       *string       `json:"source_date" bson:"source_date"`
	Stage            ConvertStage  `json:"stage" bson:"stage"`
	StageUpdatedAt   time.Time     `json:"stage_updated_at" bson:"stage_updated_at"`
	AssignedWorkerID *string       `json:"assigned_worker_id" bson:"assigned_worker_id"`
	HealthScore      *int          `json:"health_score" bson:"health_score"`
	Notes            *string       `json:"notes" bson:"notes"`
	Tags             []string      `json:"tags" bson:"tags"`
	SalvationDate    *string       `json:"salvation_date" bson:"salvation_date"`
	CreatedBy        *string       `json:"created_by" bson:"created_by"`
}

func (c Convert) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// NewConvert builds a convert entered by hand through the API.
func NewConvert(clientID, firstName, lastName string, source ConvertSource, stage ConvertStage, now time.Time) (*Convert, error) {
	if source == "" {
		source = SourceService
	}
	if stage == "" {
		stage = StageNew
	}
	c := &Convert{
		Base:           NewBase(clientID, now),
		FirstName:      firstName,
		LastName:       lastName,
		Source:         source,
		Stage:          stage,
		StageUpdatedAt: now.UTC(),
		Tags:           []string{},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Convert) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return errors.New("first_name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return errors.New("last_name is required")
	}
	if !c.Stage.IsValid() {
		return errors.New("stage is invalid")
	}
	if !c.Source.IsValid() {
		return errors.New("source is invalid")
	}
	return nil
}

// MoveTo changes stage and stamps the transition.
func (c *Convert) MoveTo(stage ConvertStage, now time.Time) {
	if c.Stage != stage {
		c.Stage = stage
		c.StageUpdatedAt = now.UTC()
	}
	c.Touch(now)
}

type ListStage struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Sequence int    `json:"sequence" bson:"sequence"`
	Color    string `json:"color" bson:"color"`
}

// ConvertList groups the converts produced by one service.
type ConvertList struct {
	Base          `bson:",inline"`
	Name          string      `json:"name" bson:"name"`
	Source        string      `json:"source" bson:"source"`
	SourceID      string      `json:"source_id" bson:"source_id"`
	SourceDate    string      `json:"source_date" bson:"source_date"`
	Stages        []ListStage `json:"stages" bson:"stages"`
	TotalConverts int         `json:"total_converts" bson:"total_converts"`
	IsActive      bool        `json:"is_active" bson:"is_active"`
	CreatedBy     *string     `json:"created_by" bson:"created_by"`
}
