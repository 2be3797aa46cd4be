package factory

import "github.com/xavierca1/evangelism-crm/internal/entity"

func (f *Factory) Workflows() []entity.WorkflowDefinition {
	return []entity.WorkflowDefinition{
		{
			Base:        f.base(),
			Name:        "New Convert Onboarding",
			Description: "Automated workflow for welcoming and onboarding new converts",
			Trigger:     "convert_created",
			Steps: []entity.WorkflowStep{
				{Step: 1, Action: "send_welcome_sms", DelayHours: 0},
				{Step: 2, Action: "assign_followup_worker", DelayHours: 2},
				{Step: 3, Action: "send_followup_email", DelayHours: 24},
				{Step: 4, Action: "create_followup_task", DelayHours: 48},
				{Step: 5, Action: "schedule_call", DelayHours: 72},
			},
			IsActive: true,
		},
		{
			Base:        f.base(),
			Name:        "Absent Member Recovery",
			Description: "Workflow for re-engaging absent members",
			Trigger:     "no_attendance_14_days",
			Steps: []entity.WorkflowStep{
				{Step: 1, Action: "send_care_sms", DelayHours: 0},
				{Step: 2, Action: "create_welfare_task", DelayHours: 24},
				{Step: 3, Action: "pastor_call", DelayHours: 72},
				{Step: 4, Action: "home_visit", DelayHours: 168},
			},
			IsActive: true,
		},
		{
			Base:        f.base(),
			Name:        "Baptism Preparation",
			Description: "Workflow to prepare converts for water baptism",
			Trigger:     "baptism_interest",
			Steps: []entity.WorkflowStep{
				{Step: 1, Action: "enroll_baptism_class", DelayHours: 0},
				{Step: 2, Action: "send_class_reminder", DelayHours: 48},
				{Step: 3, Action: "schedule_baptism", DelayHours: 168},
				{Step: 4, Action: "send_confirmation", DelayHours: 336},
			},
			IsActive: true,
		},
	}
}

// WelcomeSequenceName is the onboarding series whose day-1 SMS goes to converts
// entered through the API.
const WelcomeSequenceName = "New Convert Welcome Series"

func (f *Factory) Sequences() []entity.Sequence {
	return []entity.Sequence{
		{
			Base:        f.base(),
			Name:        WelcomeSequenceName,
			Description: "7-day email/SMS series for new converts",
			Type:        "onboarding",
			Messages: []entity.SequenceMessage{
				{Day: 1, Channel: "sms", Content: "Welcome to Dependify Gospel! We're excited to have you. Service is Sunday 9am."},
				{Day: 2, Channel: "email", Content: "Here's a guide to help you get started..."},
				{Day: 3, Channel: "sms", Content: "Join us for midweek service tomorrow at 6pm!"},
				{Day: 7, Channel: "email", Content: "How was your first week? We'd love to hear from you."},
			},
			IsActive: true,
		},
		{
			Base:        f.base(),
			Name:        "Follow-up Reminder Sequence",
			Description: "Reminders for follow-up workers",
			Type:        "internal",
			Messages: []entity.SequenceMessage{
				{Day: 0, Channel: "sms", Content: "New convert assigned to you. Please contact within 24 hours."},
				{Day: 3, Channel: "sms", Content: "Reminder: Follow up on your assigned converts."},
				{Day: 7, Channel: "email", Content: "Weekly follow-up summary..."},
			},
			IsActive: true,
		},
	}
}

func (f *Factory) Playbooks() []entity.Playbook {
	return []entity.Playbook{
		{
			Base:        f.base(),
			Name:        "First Time Visitor Engagement",
			Description: "Strategy for engaging first-time church visitors",
			Category:    "retention",
			Steps: []entity.PlaybookStep{
				{Order: 1, Title: "Immediate Welcome", Description: "Send welcome SMS within 2 hours", Owner: "automation"},
				{Order: 2, Title: "Personal Call", Description: "Follow-up worker calls within 24 hours", Owner: "followup_worker"},
				{Order: 3, Title: "Invite to Fellowship", Description: "Invite to house fellowship meeting", Owner: "followup_worker"},
				{Order: 4, Title: "Sunday Service Reminder", Description: "Send reminder for next Sunday", Owner: "automation"},
				{Order: 5, Title: "Personal Greeting", Description: "Greet personally on next visit", Owner: "usher_team"},
			},
			TargetAudience:  "first_time_visitors",
			ExpectedOutcome: "70% return for second visit",
			IsActive:        true,
		},
		{
			Base:        f.base(),
			Name:        "At-Risk Member Recovery",
			Description: "Strategy for re-engaging members showing signs of disengagement",
			Category:    "recovery",
			Steps: []entity.PlaybookStep{
				{Order: 1, Title: "Identify At-Risk", Description: "System identifies members absent for 2+ weeks", Owner: "system"},
				{Order: 2, Title: "Welfare Check", Description: "Welfare officer makes welfare check call", Owner: "welfare_officer"},
				{Order: 3, Title: "Personal Visit", Description: "If no response, schedule home visit", Owner: "followup_leader"},
				{Order: 4, Title: "Pastoral Care", Description: "Pastor reaches out if still no response", Owner: "pastor"},
				{Order: 5, Title: "Re-engagement Program", Description: "Enroll in special re-engagement program", Owner: "discipleship_team"},
			},
			TargetAudience:  "at_risk_members",
			ExpectedOutcome: "40% re-engagement rate",
			IsActive:        true,
		},
		{
			Base:        f.base(),
			Name:        "New Member Integration",
			Description: "Strategy for integrating new members into the church community",
			Category:    "integration",
			Steps: []entity.PlaybookStep{
				{Order: 1, Title: "Foundation Class", Description: "Enroll in foundation class", Owner: "discipleship_team"},
				{Order: 2, Title: "Department Placement", Description: "Assess and place in appropriate department", Owner: "head_of_departments"},
				{Order: 3, Title: "House Fellowship", Description: "Connect to nearest house fellowship", Owner: "followup_worker"},
				{Order: 4, Title: "Mentor Assignment", Description: "Assign a mature member as mentor", Owner: "mentorship_coordinator"},
				{Order: 5, Title: "Follow-up", Description: "Check-in after 3 months", Owner: "followup_worker"},
			},
			TargetAudience:  "new_members",
			ExpectedOutcome: "80% complete integration within 6 months",
			IsActive:        true,
		},
	}
}

// Metadata is the singleton run summary.
func (f *Factory) Metadata(summary map[string]int) entity.DemoMetadata {
	b := f.base()
	b.ID = entity.DemoMetadataID
	return entity.DemoMetadata{
		Base:        b,
		Version:     entity.DemoMetadataVersion,
		LastReset:   f.now().UTC(),
		DataSummary: summary,
	}
}
