package entity

const (
	CollectionClients             = "clients"
	CollectionUsers               = "users"
	CollectionConverts            = "converts"
	CollectionConvertLists        = "convert_lists"
	CollectionServiceTemplates    = "service_templates"
	CollectionServiceInstances    = "service_instances"
	CollectionProgrammes          = "programmes"
	CollectionOutreaches          = "outreaches"
	CollectionMembershipClasses   = "membership_classes"
	CollectionClassSessions       = "class_sessions"
	CollectionClassEnrollments    = "class_enrollments"
	CollectionHouseFellowships    = "house_fellowships"
	CollectionFollowupRecords     = "followup_records"
	CollectionMentorshipReports   = "mentorship_reports"
	CollectionWorkflowDefinitions = "workflow_definitions"
	CollectionWorkflowExecutions  = "workflow_executions"
	CollectionFollowupTasks       = "followup_tasks"
	CollectionSequenceDefinitions = "sequence_definitions"
	CollectionSequenceExecutions  = "sequence_executions"
	CollectionPlaybooks           = "playbooks"
	CollectionPlaybookExecutions  = "playbook_executions"
	CollectionHealthScores        = "health_scores"
	CollectionAlerts              = "alerts"
	CollectionAlertRules          = "alert_rules"
	CollectionSMSLogs             = "sms_logs"
	CollectionVoiceCalls          = "voice_calls"
	CollectionAuditLogs           = "audit_logs"
	CollectionDemoMetadata        = "demo_metadata"
	CollectionVoiceAgents         = "voice_agents"
	CollectionCallScripts         = "call_scripts"
	CollectionConversations       = "conversations"
)

// DemoCollections is every collection a reset clears, including ones the seeder
// never writes but the full application does.
var DemoCollections = []string{
	CollectionClients, CollectionUsers, CollectionConverts, CollectionConvertLists,
	CollectionServiceTemplates, CollectionServiceInstances, CollectionProgrammes, CollectionOutreaches,
	CollectionMembershipClasses, CollectionClassSessions, CollectionClassEnrollments,
	CollectionHouseFellowships, CollectionFollowupRecords, CollectionMentorshipReports,
	CollectionWorkflowDefinitions, CollectionWorkflowExecutions, CollectionFollowupTasks,
	CollectionSequenceDefinitions, CollectionSequenceExecutions, CollectionPlaybooks, CollectionPlaybookExecutions,
	CollectionHealthScores, CollectionAlerts, CollectionAlertRules,
	CollectionSMSLogs, CollectionVoiceCalls, CollectionAuditLogs, CollectionDemoMetadata,
	CollectionVoiceAgents, CollectionCallScripts, CollectionConversations,
}

// StatsCollections are the collections reported by the demo stats endpoint.
var StatsCollections = []string{
	CollectionUsers, CollectionConverts, CollectionServiceInstances, CollectionHealthScores,
	CollectionAlerts, CollectionVoiceCalls, CollectionVoiceAgents, CollectionCallScripts,
}
