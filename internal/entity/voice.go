package entity

import "time"

type VoiceCallStatus string

const (
	CallScheduled  VoiceCallStatus = "scheduled"
	CallInProgress VoiceCallStatus = "in_progress"
	CallCompleted  VoiceCallStatus = "completed"
	CallFailed     VoiceCallStatus = "failed"
	CallNoAnswer   VoiceCallStatus = "no_answer"
	CallVoicemail  VoiceCallStatus = "voicemail"
)

var AllCallStatuses = []VoiceCallStatus{
	CallScheduled, CallInProgress, CallCompleted, CallFailed, CallNoAnswer, CallVoicemail,
}

const OutcomeInterested = "interested"

type VoiceAgentConfig struct {
	Base             `bson:",inline"`
	Name             string `json:"name" bson:"name"`
	Language         string `json:"language" bson:"language"`
	VoiceType        string `json:"voice_type" bson:"voice_type"`
	GreetingTemplate string `json:"greeting_template" bson:"greeting_template"`
	ScriptTemplate   string `json:"script_template" bson:"script_template"`
	IsActive         bool   `json:"is_active" bson:"is_active"`
}

type CallScript struct {
	Base     `bson:",inline"`
	Name     string `json:"name" bson:"name"`
	Content  string `json:"content" bson:"content"`
	Purpose  string `json:"purpose" bson:"purpose"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

// VoiceCall is one scripted agent call to a convert.
type VoiceCall struct {
	Base            `bson:",inline"`
	ConvertID       string          `json:"convert_id" bson:"convert_id"`
	AgentID         *string         `json:"agent_id" bson:"agent_id"`
	ScriptID        *string         `json:"script_id" bson:"script_id"`
	Status          VoiceCallStatus `json:"status" bson:"status"`
	ScheduledTime   *time.Time      `json:"scheduled_time" bson:"scheduled_time"`
	StartedAt       *time.Time      `json:"started_at" bson:"started_at"`
	EndedAt         *time.Time      `json:"ended_at" bson:"ended_at"`
	DurationSeconds *int            `json:"duration_seconds" bson:"duration_seconds"`
	RecordingURL    *string         `json:"recording_url" bson:"recording_url"`
	Transcript      *string         `json:"transcript" bson:"transcript"`
	Notes           *string         `json:"notes" bson:"notes"`
	Outcome         *string         `json:"outcome" bson:"outcome"`
}

type ConversationMessage struct {
	Base      `bson:",inline"`
	CallID    string    `json:"call_id" bson:"call_id"`
	Speaker   string    `json:"speaker" bson:"speaker"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Sentiment *string   `json:"sentiment" bson:"sentiment"`
}
