package agent

// Log record shapes, one per logstore category. Field names follow the
// historical log format so existing tooling keeps parsing them.

type evaluationScores struct {
	ProfessionalTone float64 `json:"professional_tone"`
	Clarity          float64 `json:"clarity"`
	Completeness     float64 `json:"completeness"`
	Safety           float64 `json:"safety"`
	Relevance        float64 `json:"relevance"`
	OverallScore     float64 `json:"overall_score"`
}

type evaluationRecord struct {
	Timestamp              string           `json:"timestamp"`
	EmployerName           string           `json:"employer_name"`
	EmployerMessagePreview string           `json:"employer_message_preview"`
	ResponsePreview        string           `json:"response_preview"`
	Scores                 evaluationScores `json:"evaluation_scores"`
	Pass                   bool             `json:"pass"`
	Feedback               string           `json:"feedback"`
	Status                 Status           `json:"status"`
	RevisionCount          int              `json:"revision_count"`
}

type contactRecord struct {
	Timestamp string `json:"timestamp"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

type unknownQuestionRecord struct {
	Timestamp      string  `json:"timestamp"`
	Question       string  `json:"question"`
	Confidence     float64 `json:"confidence"`
	RequiresReview bool    `json:"requires_review"`
}

type interviewRecord struct {
	Timestamp     string `json:"timestamp"`
	InterviewDate string `json:"interview_date"`
	InterviewTime string `json:"interview_time"`
	Format        string `json:"format"`
	Interviewer   string `json:"interviewer"`
}

type declinedOfferRecord struct {
	Timestamp string `json:"timestamp"`
	Company   string `json:"company"`
	Reason    string `json:"reason"`
	Action    string `json:"action"`
}
