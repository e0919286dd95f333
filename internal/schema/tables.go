package schema

// Tables is the full registry: sales → assessment → delivery → measurement.
// Constructed once, read-only thereafter. The store derives its DDL from it
// and the tool generator derives the entire tool surface from it.
var Tables = []TableSchema{
	// Sales
	companies,
	contacts,
	interactions,
	// Assessment
	audits,
	goNoGoDecisions,
	capacity,
	proposals,
	// Delivery
	engagements,
	claudeLicenses,
	mcps,
	skillsFiles,
	contactTasks,
	surveyResponses,
	trainingLog,
	supportTickets,
	// Measurement
	aiUsage,
}

var companies = TableSchema{
	TableName:   "companies",
	Singular:    "company",
	Plural:      "companies",
	Description: "Top-level record for every business in the pipeline",
	Fields: []Field{
		{Name: "name", Type: TypeString, Required: true, Description: "Company name"},
		{Name: "status", Type: TypeString, Description: "Pipeline status", Enum: []string{
			"lead", "contacted", "meeting_scheduled", "meeting_complete",
			"auditing", "go", "no_go", "proposal_sent",
			"training", "supporting", "paused", "churned",
		}},
		{Name: "industry", Type: TypeString, Description: "Industry (defaults to construction)"},
		{Name: "size", Type: TypeString, Description: "Description of staff count, e.g. '12 office staff'"},
		{Name: "location", Type: TypeString, Description: "Suburb or city"},
		{Name: "website", Type: TypeString, Description: "Company website"},
		{Name: "source", Type: TypeString, Description: "How you found them", Enum: []string{
			"referral", "cold_walk_in", "cold_call", "cold_email", "linkedin", "inbound", "networking_event",
		}},
		{Name: "lost_reason", Type: TypeString, Description: "Why they dropped out of the pipeline"},
		{Name: "notes", Type: TypeString, Description: "General notes"},
	},
}

var contacts = TableSchema{
	TableName:   "contacts",
	Singular:    "contact",
	Plural:      "contacts",
	Description: "People at prospect and client companies",
	Fields: []Field{
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "name", Type: TypeString, Required: true, Description: "Full name"},
		{Name: "role_title", Type: TypeString, Description: "Job title, e.g. 'Senior Estimator'"},
		{Name: "role_description", Type: TypeString, Description: "What they actually do day to day"},
		{Name: "email", Type: TypeString, Description: "Email address"},
		{Name: "has_email", Type: TypeBoolean, Description: "Whether they have an email at all"},
		{Name: "phone", Type: TypeString, Description: "Phone number"},
		{Name: "is_decision_maker", Type: TypeBoolean, Description: "Whether this person signs off on purchases"},
		{Name: "notes", Type: TypeString, Description: "Individual notes"},
	},
}

var interactions = TableSchema{
	TableName:   "interactions",
	Singular:    "interaction",
	Plural:      "interactions",
	Description: "Every touchpoint with a prospect or client — the CRM activity log",
	Fields: []Field{
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "contact_id", Type: TypeUUID, Description: "Links to contacts (optional)"},
		{Name: "interaction_date", Type: TypeTimestamp, Description: "When it happened (defaults to now)"},
		{Name: "type", Type: TypeString, Required: true, Description: "What kind of interaction", Enum: []string{
			"cold_walk_in", "cold_call", "cold_email", "linkedin_message",
			"warm_intro", "meeting", "follow_up_call", "follow_up_email",
			"site_visit", "other",
		}},
		{Name: "summary", Type: TypeString, Description: "What happened in plain language"},
		{Name: "outcome", Type: TypeString, Description: "Result of the interaction", Enum: []string{
			"no_response", "interested", "meeting_booked", "objection_raised",
			"declined", "next_step_agreed", "proposal_requested",
		}},
		{Name: "next_step", Type: TypeString, Description: "What was agreed as the next action"},
		{Name: "follow_up_date", Type: TypeDate, Description: "When to follow up"},
		{Name: "notes", Type: TypeString, Description: "Additional context"},
	},
}

var audits = TableSchema{
	TableName:   "audits",
	Singular:    "audit",
	Plural:      "audits",
	Description: "Company-level assessment derived from the audit survey",
	Fields: []Field{
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "audit_date", Type: TypeDate, Description: "When the audit was initiated"},
		{Name: "org_chart_received", Type: TypeBoolean, Description: "Whether the owner has provided the org chart"},
		{Name: "team_size", Type: TypeInteger, Description: "Number of staff, derived from org chart"},
		{Name: "surveys_sent", Type: TypeInteger, Description: "Number of survey links sent"},
		{Name: "surveys_completed", Type: TypeInteger, Description: "Number of surveys completed"},
		{Name: "digital_maturity", Type: TypeString, Description: "Overall assessment derived from survey data", Enum: []string{"low", "medium", "high"}},
		{Name: "current_tools_summary", Type: TypeString, Description: "Overview of software in use"},
		{Name: "notes", Type: TypeString, Description: "General audit observations"},
	},
}

var goNoGoDecisions = TableSchema{
	TableName:   "go_no_go_decisions",
	Singular:    "go_no_go_decision",
	Plural:      "go_no_go_decisions",
	Description: "Structured decision framework applied after the audit",
	Fields: []Field{
		{Name: "audit_id", Type: TypeUUID, Required: true, Description: "Links to audits"},
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "decision", Type: TypeString, Required: true, Description: "The call", Enum: []string{"go", "no_go", "conditional"}},
		{Name: "decision_date", Type: TypeDate, Description: "When the decision was made"},
		{Name: "decision_maker_engagement", Type: TypeString, Description: "How engaged is the person who signs cheques", Enum: []string{"high", "medium", "low"}},
		{Name: "budget_confirmed", Type: TypeBoolean, Description: "Whether they can afford the engagement"},
		{Name: "team_readiness", Type: TypeString, Description: "Based on audit and survey data", Enum: []string{"high", "medium", "low"}},
		{Name: "champion_strength", Type: TypeString, Description: "How strong the internal champion is", Enum: []string{"strong", "moderate", "weak", "none"}},
		{Name: "technical_feasibility", Type: TypeString, Description: "Can their workflows be AI-integrated", Enum: []string{"high", "medium", "low"}},
		{Name: "timeline_alignment", Type: TypeString, Description: "Are their expectations realistic", Enum: []string{"aligned", "tight", "unrealistic"}},
		{Name: "estimated_roi", Type: TypeString, Description: "Rough estimate of time savings"},
		{Name: "risk_factors", Type: TypeString, Description: "Anything that could derail the engagement"},
		{Name: "decision_rationale", Type: TypeString, Description: "Written explanation of why go or no-go"},
		{Name: "recommended_package", Type: TypeString, Description: "Which pricing tier fits"},
		{Name: "estimated_hours_per_week", Type: TypeNumber, Description: "Calculated from novel MCPs, Skills, and employees"},
		{Name: "estimated_value", Type: TypeNumber, Description: "Estimated engagement value in AUD"},
	},
}

var capacity = TableSchema{
	TableName:   "capacity",
	Singular:    "capacity_record",
	Plural:      "capacity_records",
	Description: "Internal team bandwidth tracking for Go/No-Go decisions",
	Fields: []Field{
		{Name: "team_member", Type: TypeString, Required: true, Description: "Name of internal team member"},
		{Name: "role", Type: TypeString, Description: "Their role at PromptAI"},
		{Name: "total_hours_per_week", Type: TypeNumber, Required: true, Description: "Total available hours per week"},
		{Name: "allocated_hours_per_week", Type: TypeNumber, Description: "Hours already committed to active engagements"},
		{Name: "notes", Type: TypeString, Description: "Context or constraints"},
	},
}

var proposals = TableSchema{
	TableName:   "proposals",
	Singular:    "proposal",
	Plural:      "proposals",
	Description: "Formal proposals sent after a Go decision",
	Fields: []Field{
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "go_no_go_id", Type: TypeUUID, Required: true, Description: "Links to go_no_go_decisions"},
		{Name: "package", Type: TypeString, Description: "Which package or tier"},
		{Name: "value", Type: TypeNumber, Description: "Proposed dollar amount in AUD"},
		{Name: "status", Type: TypeString, Description: "Where the proposal stands", Enum: []string{
			"draft", "sent", "under_review", "accepted", "rejected", "expired",
		}},
		{Name: "sent_date", Type: TypeDate, Description: "When it was sent"},
		{Name: "modifications_requested", Type: TypeString, Description: "Any changes the prospect asked for"},
		{Name: "accepted_date", Type: TypeDate, Description: "When they said yes"},
		{Name: "notes", Type: TypeString, Description: "Additional context"},
	},
}

var engagements = TableSchema{
	TableName:   "engagements",
	Singular:    "engagement",
	Plural:      "engagements",
	Description: "Active client contracts, created when a proposal is accepted",
	Fields: []Field{
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "proposal_id", Type: TypeUUID, Required: true, Description: "Links to proposals"},
		{Name: "status", Type: TypeString, Description: "Delivery stage", Enum: []string{
			"training", "supporting", "paused", "completed", "cancelled",
		}},
		{Name: "package", Type: TypeString, Description: "Package name"},
		{Name: "value", Type: TypeNumber, Description: "Contract value in AUD"},
		{Name: "staff_count", Type: TypeInteger, Description: "Number of staff included"},
		{Name: "training_hours_per_staff", Type: TypeNumber, Description: "Training hours per staff member"},
		{Name: "mcps_to_build", Type: TypeInteger, Description: "Number of MCPs to be built"},
		{Name: "skills_to_build", Type: TypeInteger, Description: "Number of Skills to be built"},
		{Name: "reporting_terms", Type: TypeString, Description: "Terms of monthly reporting"},
		{Name: "support_terms", Type: TypeString, Description: "Terms of support services"},
		{Name: "start_date", Type: TypeDate, Description: "When work begins"},
		{Name: "end_date", Type: TypeDate, Description: "When the contract ends"},
		{Name: "milestone_dates", Type: TypeJSON, Description: "Key milestone dates (JSON)"},
		{Name: "milestone_kpis", Type: TypeJSON, Description: "KPIs tied to each milestone (JSON)"},
		{Name: "claude_workspace_id", Type: TypeString, Description: "Their Claude workspace reference"},
		{Name: "claude_plan_type", Type: TypeString, Description: "Type of Claude plan (e.g. Team, Enterprise)"},
		{Name: "claude_plan_setup", Type: TypeBoolean, Description: "Whether Claude is configured"},
		{Name: "num_licenses", Type: TypeInteger, Description: "Number of Claude licenses"},
		{Name: "notes", Type: TypeString, Description: "General engagement notes"},
	},
}

var claudeLicenses = TableSchema{
	TableName:   "claude_licenses",
	Singular:    "claude_license",
	Plural:      "claude_licenses",
	Description: "Individual Claude licenses assigned to client staff",
	Fields: []Field{
		{Name: "engagement_id", Type: TypeUUID, Required: true, Description: "Links to engagements"},
		{Name: "contact_id", Type: TypeUUID, Description: "Links to contacts"},
		{Name: "email", Type: TypeString, Required: true, Description: "Email address the license is assigned to"},
		{Name: "license_status", Type: TypeString, Description: "Whether the license is active", Enum: []string{"active", "suspended", "revoked"}},
	},
}

var mcps = TableSchema{
	TableName:   "mcps",
	Singular:    "mcp",
	Plural:      "mcps",
	Description: "Registry of all MCP servers built and their deployments",
	Fields: []Field{
		{Name: "name", Type: TypeString, Required: true, Description: "MCP server name"},
		{Name: "description", Type: TypeString, Description: "What this MCP connects to and does"},
		{Name: "engagement_id", Type: TypeUUID, Required: true, Description: "Links to engagements"},
		{Name: "built_date", Type: TypeDate, Description: "When it was built"},
		{Name: "deployed", Type: TypeBoolean, Description: "Whether it is currently deployed"},
		{Name: "deployed_to_accounts", Type: TypeJSON, Description: "Which accounts/workspaces it is deployed to (JSON array)"},
		{Name: "status", Type: TypeString, Description: "Current state", Enum: []string{"in_development", "deployed", "deprecated"}},
		{Name: "notes", Type: TypeString, Description: "Additional context"},
	},
}

var skillsFiles = TableSchema{
	TableName:   "skills_files",
	Singular:    "skills_file",
	Plural:      "skills_files",
	Description: "Registry of all Skills files built and their deployments",
	Fields: []Field{
		{Name: "name", Type: TypeString, Required: true, Description: "Skills file name"},
		{Name: "description", Type: TypeString, Description: "What this Skills file does"},
		{Name: "engagement_id", Type: TypeUUID, Required: true, Description: "Links to engagements"},
		{Name: "built_date", Type: TypeDate, Description: "When it was built"},
		{Name: "deployed", Type: TypeBoolean, Description: "Whether it is currently deployed"},
		{Name: "deployed_to_accounts", Type: TypeJSON, Description: "Which accounts/workspaces it is deployed to (JSON array)"},
		{Name: "status", Type: TypeString, Description: "Current state", Enum: []string{"in_development", "deployed", "deprecated"}},
		{Name: "notes", Type: TypeString, Description: "Additional context"},
	},
}

var contactTasks = TableSchema{
	TableName:   "contact_tasks",
	Singular:    "contact_task",
	Plural:      "contact_tasks",
	Description: "What each person does day to day — baseline for training and ROI measurement",
	Fields: []Field{
		{Name: "contact_id", Type: TypeUUID, Required: true, Description: "Links to contacts — who does this task"},
		{Name: "engagement_id", Type: TypeUUID, Description: "Links to engagements"},
		{Name: "task_name", Type: TypeString, Required: true, Description: "Short name, e.g. 'Prepare cost estimates'"},
		{Name: "task_description", Type: TypeString, Description: "Detailed description of what the task involves"},
		{Name: "software_used", Type: TypeString, Description: "Tools currently used, e.g. 'Excel, Buildsoft, email'"},
		{Name: "frequency", Type: TypeString, Description: "How often they do it", Enum: []string{"daily", "weekly", "monthly", "per_project", "ad_hoc"}},
		{Name: "time_before_ai", Type: TypeInteger, Description: "How long this task currently takes (minutes)"},
		{Name: "time_after_ai", Type: TypeInteger, Description: "How long this task takes after AI (minutes)"},
		{Name: "issues_before_ai", Type: TypeString, Description: "Key issues with the non-AI workflow"},
		{Name: "issues_after_ai", Type: TypeString, Description: "Key issues with the AI-assisted workflow"},
		{Name: "linked_skills", Type: TypeStringArray, Description: "Skills file names relevant to this task"},
		{Name: "linked_mcp_connections", Type: TypeStringArray, Description: "MCP connections relevant to this task"},
		{Name: "notes", Type: TypeString, Description: "Observations and context"},
	},
}

var surveyResponses = TableSchema{
	TableName:   "survey_responses",
	Singular:    "survey_response",
	Plural:      "survey_responses",
	Description: "Audit and pre-training survey answers",
	Fields: []Field{
		{Name: "contact_id", Type: TypeUUID, Description: "Links to contacts"},
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "survey_type", Type: TypeString, Required: true, Description: "Which survey", Enum: []string{"audit", "pre_training"}},
		{Name: "survey_sent", Type: TypeBoolean, Description: "Whether the survey link has been sent"},
		{Name: "survey_sent_date", Type: TypeDate, Description: "When it was sent"},
		{Name: "survey_completed", Type: TypeBoolean, Description: "Whether they have finished it"},
		{Name: "survey_completed_date", Type: TypeDate, Description: "When they completed it"},
		{Name: "question", Type: TypeString, Required: true, Description: "The survey question text"},
		{Name: "answer", Type: TypeString, Description: "Their response"},
	},
}

var trainingLog = TableSchema{
	TableName:   "training_log",
	Singular:    "training_log_entry",
	Plural:      "training_log_entries",
	Description: "Per-person, per-session scheduling and delivery notes",
	Fields: []Field{
		{Name: "engagement_id", Type: TypeUUID, Required: true, Description: "Links to engagements"},
		{Name: "contact_id", Type: TypeUUID, Required: true, Description: "Links to contacts"},
		{Name: "session_number", Type: TypeInteger, Required: true, Description: "Which session in the programme"},
		{Name: "title", Type: TypeString, Description: "Session name, e.g. 'Claude Fundamentals'"},
		{Name: "scheduled_date", Type: TypeDate, Description: "When it is planned"},
		{Name: "completed_date", Type: TypeDate, Description: "When it actually happened"},
		{Name: "status", Type: TypeString, Description: "Where the session stands", Enum: []string{"scheduled", "completed", "cancelled", "rescheduled"}},
		{Name: "delivered_by", Type: TypeString, Description: "Who ran the session"},
		{Name: "location", Type: TypeString, Description: "On-site, virtual, specific address"},
		{Name: "attended", Type: TypeBoolean, Description: "Whether this person attended"},
		{Name: "session_notes", Type: TypeString, Description: "How the session went — progress, struggles, follow-ups"},
	},
}

var supportTickets = TableSchema{
	TableName:   "support_tickets",
	Singular:    "support_ticket",
	Plural:      "support_tickets",
	Description: "Support requests from clients — requests, resolution, and hours",
	Fields: []Field{
		{Name: "engagement_id", Type: TypeUUID, Required: true, Description: "Links to engagements"},
		{Name: "contact_id", Type: TypeUUID, Description: "Links to contacts (who raised the request)"},
		{Name: "request_date", Type: TypeTimestamp, Description: "When the request came in (defaults to now)"},
		{Name: "category", Type: TypeString, Description: "Type of support", Enum: []string{
			"mcp_issue", "skill_issue", "claude_config", "troubleshooting", "training_request", "ad_hoc_support", "other",
		}},
		{Name: "description", Type: TypeString, Description: "What was requested"},
		{Name: "resolution", Type: TypeString, Description: "What was done to resolve it"},
		{Name: "status", Type: TypeString, Description: "Where the ticket stands", Enum: []string{"open", "in_progress", "resolved", "closed"}},
		{Name: "hours_spent", Type: TypeNumber, Description: "Time spent on this ticket"},
		{Name: "handled_by", Type: TypeString, Description: "Who handled it"},
		{Name: "resolved_date", Type: TypeTimestamp, Description: "When it was resolved"},
		{Name: "notes", Type: TypeString, Description: "Additional context"},
	},
}

var aiUsage = TableSchema{
	TableName:   "ai_usage",
	Singular:    "ai_usage_record",
	Plural:      "ai_usage_records",
	Description: "Token usage per person per company — powers monthly reports and trend analysis",
	Fields: []Field{
		{Name: "engagement_id", Type: TypeUUID, Required: true, Description: "Links to engagements"},
		{Name: "company_id", Type: TypeUUID, Required: true, Description: "Links to companies"},
		{Name: "contact_id", Type: TypeUUID, Required: true, Description: "Links to contacts — which individual"},
		{Name: "usage_date", Type: TypeDate, Required: true, Description: "Date of usage record"},
		{Name: "tokens_used", Type: TypeInteger, Required: true, Description: "Number of tokens consumed"},
		{Name: "notes", Type: TypeString, Description: "Context or observations"},
	},
}
