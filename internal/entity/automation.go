package entity

type WorkflowStep struct {
	Step       int    `json:"step" bson:"step"`
	Action     string `json:"action" bson:"action"`
	DelayHours int    `json:"delay_hours" bson:"delay_hours"`
}

type WorkflowDefinition struct {
	Base        `bson:",inline"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	Trigger     string         `json:"trigger" bson:"trigger"`
	Steps       []WorkflowStep `json:"steps" bson:"steps"`
	IsActive    bool           `json:"is_active" bson:"is_active"`
}

type SequenceMessage struct {
	Day     int    `json:"day" bson:"day"`
	Channel string `json:"channel" bson:"channel"`
	Content string `json:"content" bson:"content"`
}

type Sequence struct {
	Base        `bson:",inline"`
	Name        string            `json:"name" bson:"name"`
	Description string            `json:"description" bson:"description"`
	Type        string            `json:"type" bson:"type"`
	Messages    []SequenceMessage `json:"messages" bson:"messages"`
	IsActive    bool              `json:"is_active" bson:"is_active"`
}

type PlaybookStep struct {
	Order       int    `json:"order" bson:"order"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Owner       string `json:"owner" bson:"owner"`
}

type Playbook struct {
	Base            `bson:",inline"`
	Name            string         `json:"name" bson:"name"`
	Description     string         `json:"description" bson:"description"`
	Category        string         `json:"category" bson:"category"`
	Steps           []PlaybookStep `json:"steps" bson:"steps"`
	TargetAudience  string         `json:"target_audience" bson:"target_audience"`
	ExpectedOutcome string         `json:"expected_outcome" bson:"expected_outcome"`
	IsActive        bool           `json:"is_active" bson:"is_active"`
}
