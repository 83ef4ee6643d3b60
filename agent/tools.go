package agent

import "encoding/json"

// Tool names advertised to the completion client.
const (
	ToolRecordEmployerContact = "record_employer_contact"
	ToolRecordUnknownQuestion = "record_unknown_question"
	ToolScheduleInterview     = "schedule_interview"
	ToolDeclineOffer          = "decline_offer"
)

var recordEmployerContactTool = Tool{
	Name:        ToolRecordEmployerContact,
	Description: "Use this when an employer provides their contact information or wants to schedule follow-up",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"email":   {"type": "string", "description": "Employer's email address"},
			"company": {"type": "string", "description": "Company name"},
			"name":    {"type": "string", "description": "Employer's name"},
			"role":    {"type": "string", "description": "Employer's role/position"}
		},
		"required": ["email", "company"]
	}`),
}

var recordUnknownQuestionTool = Tool{
	Name:        ToolRecordUnknownQuestion,
	Description: "ALWAYS use this for questions about: salary negotiation, legal matters, deep technical topics outside your expertise, or when confidence is low",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"question":   {"type": "string", "description": "The question requiring human review"},
			"confidence": {"type": "number", "description": "Confidence level 0-1"}
		},
		"required": ["question"]
	}`),
}

var scheduleInterviewTool = Tool{
	Name:        ToolScheduleInterview,
	Description: "Use this to accept and schedule interview invitations",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"date":        {"type": "string", "description": "Interview date"},
			"time":        {"type": "string", "description": "Interview time"},
			"format":      {"type": "string", "description": "Interview format (phone/video/in-person)"},
			"interviewer": {"type": "string", "description": "Interviewer name if provided"}
		},
		"required": ["date", "time", "format"]
	}`),
}

var declineOfferTool = Tool{
	Name:        ToolDeclineOffer,
	Description: "Use this to politely decline job offers",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"company": {"type": "string", "description": "Company making the offer"},
			"reason":  {"type": "string", "description": "Polite reason for declining"}
		},
		"required": ["company"]
	}`),
}

// Toolset returns the tool schemas advertised on the first generation round.
func Toolset() []Tool {
	return []Tool{
		recordEmployerContactTool,
		recordUnknownQuestionTool,
		scheduleInterviewTool,
		declineOfferTool,
	}
}
