package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Errors              map[string]string    `json:"errors"`
	Messages            []CalculationMessage `json:"messages"`
	CalculationResult   *CalculationResult   `json:"calculation_result"`
	Formatted           map[string]string    `json:"formatted,omitempty"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
	Cached                 bool   `json:"cached"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
