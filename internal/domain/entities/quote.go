package entities

// QuoteSubmission is the payload asking the service to turn an estimate into
// a firm order. It is only ever constructed with a held estimate and an
// authenticated identity.
type QuoteSubmission struct {
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Estimate EstimateResult `json:"estimate"`
	Notes    string         `json:"notes,omitempty"`
}

// QuoteOutcome is the service's answer to a quote submission.
type QuoteOutcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
