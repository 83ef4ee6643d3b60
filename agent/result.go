package agent

import "time"

// Policy constants for the control loop. They are policy decisions, not part
// of the algorithm's shape, and can be overridden per Assistant via options.
const (
	// MaxGenerationIterations caps the agent loop inside one generate call.
	MaxGenerationIterations = 5
	// MaxRevisions caps regenerate-and-re-evaluate cycles per message.
	MaxRevisions = 2
	// PassThreshold is the minimum overall score for an approved response.
	PassThreshold = 7.5
)

// FallbackResponse is returned when the generation loop exhausts its
// iterations without producing a plain-text answer. A degraded but defined
// terminal state, not an error.
const FallbackResponse = "I apologize, but I need more information to respond appropriately. Could you please rephrase your message?"

// Status is the terminal outcome of processing one employer message.
// These are the only two values ProcessMessage ever returns.
type Status string

const (
	StatusApprovedAndSent     Status = "approved_and_sent"
	StatusRequiresHumanReview Status = "requires_human_review"
)

// Evaluation is the rubric verdict for one candidate response. It is produced
// fresh by each evaluator call and never mutated. The model's own
// overall_score and pass are kept as authoritative; see decodeEvaluation.
type Evaluation struct {
	ProfessionalTone      float64 `json:"professional_tone"`
	Clarity               float64 `json:"clarity"`
	Completeness          float64 `json:"completeness"`
	Safety                float64 `json:"safety"`
	Relevance             float64 `json:"relevance"`
	OverallScore          float64 `json:"overall_score"`
	Pass                  bool    `json:"pass"`
	Feedback              string  `json:"feedback"`
	SuggestedImprovements string  `json:"suggested_improvements,omitempty"`
}

// ProcessResult is the terminal artifact of one end-to-end run. Immutable
// once returned.
type ProcessResult struct {
	EmployerMessage string      `json:"employer_message"`
	Response        string      `json:"generated_response"`
	Evaluation      *Evaluation `json:"evaluation"`
	Status          Status      `json:"status"`
	RevisionCount   int         `json:"revision_count"`
	Timestamp       time.Time   `json:"timestamp"`
}
