package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

const (
	maxSeededCalls = 15

	SpeakerAgent   = "agent"
	SpeakerConvert = "convert"

	sentimentPositive = "positive"
	sentimentNeutral  = "neutral"
)

// DefaultVoiceAgent is returned by the config endpoint before any agent exists.
func DefaultVoiceAgent(clientID string, now time.Time) entity.VoiceAgentConfig {
	return entity.VoiceAgentConfig{
		Base:             entity.NewBase(clientID, now),
		Name:             "Grace Voice Agent",
		Language:         "en-NG",
		VoiceType:        "female",
		GreetingTemplate: "Hello, this is Grace Evangelical Ministries. Am I speaking with {convert_name}?",
		ScriptTemplate: "I'm calling to follow up on your recent visit to our church. " +
			"We wanted to know how you're doing and if you have any prayer requests. " +
			"We also wanted to invite you to our upcoming service this Sunday at 10 AM.",
		IsActive: true,
	}
}

func (f *Factory) VoiceAgent() entity.VoiceAgentConfig {
	agent := DefaultVoiceAgent(f.clientID, f.now())
	agent.IsDemo = true
	return agent
}

func (f *Factory) CallScripts() []entity.CallScript {
	scripts := []struct{ name, content, purpose string }{
		{"Welcome Call", "Hello {name}, welcome to Grace Evangelical! We're thrilled you joined us. How can we support your spiritual journey?", "welcome"},
		{"Follow-up Call", "Hi {name}, this is {caller_name} from Grace Evangelical. Just checking in on you. Do you have any prayer requests?", "followup"},
		{"Service Invitation", "Hello {name}, we'd love to invite you to our special service this Sunday. Pastor will be teaching on faith and miracles.", "invitation"},
		{"Welfare Check", "Hi {name}, we noticed you haven't been around for a while. Is everything okay? We're here to support you.", "welfare"},
	}
	out := make([]entity.CallScript, 0, len(scripts))
	for _, s := range scripts {
		out = append(out, entity.CallScript{
			Base:     f.base(),
			Name:     s.name,
			Content:  s.content,
			Purpose:  s.purpose,
			IsActive: true,
		})
	}
	return out
}

var (
	callNotes    = []string{"Great conversation", "Left voicemail", "No answer", "Will call back", ""}
	callOutcomes = []string{entity.OutcomeInterested, "callback_requested", "not_interested", "voicemail", ""}
	sentiments   = []string{sentimentPositive, sentimentNeutral, sentimentPositive}
)

// VoiceCalls builds up to 15 sample calls on random converts. Completed calls get
// their conversation.
func (f *Factory) VoiceCalls(converts []entity.Convert, agentID string) ([]entity.VoiceCall, []entity.ConversationMessage) {
	n := maxSeededCalls
	if len(converts) < n {
		n = len(converts)
	}
	now := f.now().UTC()

	calls := make([]entity.VoiceCall, 0, n)
	messages := make([]entity.ConversationMessage, 0)
	for i := 0; i < n; i++ {
		c := random.Pick(f.src, converts)
		scheduled := now.Add(time.Duration(f.src.IntRange(-48, 48)) * time.Hour)
		status := random.Pick(f.src, entity.AllCallStatuses)

		call := entity.VoiceCall{
			Base:          f.base(),
			ConvertID:     c.ID,
			AgentID:       entity.StringPtr(agentID),
			Status:        status,
			ScheduledTime: entity.TimePtr(scheduled),
			Notes:         entity.StringPtr(random.Pick(f.src, callNotes)),
			Outcome:       entity.StringPtr(random.Pick(f.src, callOutcomes)),
		}

		if status == entity.CallCompleted || status == entity.CallVoicemail {
			ended := scheduled.Add(time.Duration(f.src.IntRange(2, 15)) * time.Minute)
			call.StartedAt = entity.TimePtr(scheduled)
			call.EndedAt = entity.TimePtr(ended)
			call.DurationSeconds = entity.IntPtr(int(ended.Sub(scheduled).Seconds()))
			call.Transcript = entity.StringPtr(fmt.Sprintf(
				"[AI Generated] Call with %s. They expressed interest in attending next Sunday service.", c.FirstName))
		}

		if status == entity.CallCompleted {
			lines := []struct{ speaker, text string }{
				{SpeakerAgent, fmt.Sprintf("Hello, may I speak with %s?", c.FirstName)},
				{SpeakerConvert, "Yes, this is me."},
				{SpeakerAgent, "This is Grace Evangelical calling. How are you doing today?"},
				{SpeakerConvert, "I'm fine, thank you for calling."},
				{SpeakerAgent, "We'd love to see you at our service this Sunday."},
				{SpeakerConvert, "I'll try to make it. Thank you!"},
			}
			for _, l := range lines {
				messages = append(messages, entity.ConversationMessage{
					Base:      f.base(),
					CallID:    call.ID,
					Speaker:   l.speaker,
					Message:   l.text,
					Timestamp: scheduled.Add(time.Duration(f.src.IntRange(10, 300)) * time.Second),
					Sentiment: entity.StringPtr(random.Pick(f.src, sentiments)),
				})
			}
		}
		calls = append(calls, call)
	}
	return calls, messages
}

// Simulation is a scripted call played out in full.
type Simulation struct {
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	Transcript      string
	Messages        []entity.ConversationMessage
}

type scriptedLine struct {
	speaker string
	text    string
	delay   time.Duration
}

// SimulateCall plays the demo conversation for a call ending at now. firstName may
// be empty when the convert no longer exists.
func (f *Factory) SimulateCall(callID, firstName string) Simulation {
	if firstName == "" {
		firstName = "there"
	}
	now := f.now().UTC()
	duration := f.src.IntRange(120, 600)
	started := now.Add(-time.Duration(duration) * time.Second)

	script := []scriptedLine{
		{SpeakerAgent, fmt.Sprintf("Hello, may I speak with %s?", firstName), 2 * time.Second},
		{SpeakerConvert, "Yes, speaking. Who is this?", 3 * time.Second},
		{SpeakerAgent, "This is Grace Evangelical Ministries. We wanted to check on you and invite you to our service this Sunday.", 8 * time.Second},
		{SpeakerConvert, "Oh, thank you for calling! I've been meaning to come back.", 5 * time.Second},
		{SpeakerAgent, "That's wonderful! We have a special program this Sunday at 10 AM. Would you be able to make it?", 7 * time.Second},
		{SpeakerConvert, "Yes, I'll definitely be there. Thank you for the reminder!", 4 * time.Second},
		{SpeakerAgent, "Great! We look forward to seeing you. Have a blessed day!", 4 * time.Second},
		{SpeakerConvert, "You too. Bye!", 2 * time.Second},
	}

	sim := Simulation{
		StartedAt:       started,
		EndedAt:         now,
		DurationSeconds: duration,
		Messages:        make([]entity.ConversationMessage, 0, len(script)),
	}
	texts := make([]string, 0, len(script))
	at := started
	for _, l := range script {
		at = at.Add(l.delay)
		var sentiment *string
		if l.speaker == SpeakerConvert {
			sentiment = entity.StringPtr(sentimentPositive)
		}
		sim.Messages = append(sim.Messages, entity.ConversationMessage{
			Base:      entity.NewBase(f.clientID, now),
			CallID:    callID,
			Speaker:   l.speaker,
			Message:   l.text,
			Timestamp: at,
			Sentiment: sentiment,
		})
		texts = append(texts, l.text)
	}
	sim.Transcript = strings.Join(texts, " ")
	return sim
}

// QuickCall is the short outcome recorded by the background call worker.
func (f *Factory) QuickCall(firstName string) Simulation {
	if firstName == "" {
		firstName = "convert"
	}
	now := f.now().UTC()
	duration := f.src.IntRange(120, 600)
	return Simulation{
		StartedAt:       now.Add(-time.Duration(duration) * time.Second),
		EndedAt:         now,
		DurationSeconds: duration,
		Transcript:      fmt.Sprintf("Simulated call with %s. Positive response received.", firstName),
	}
}
