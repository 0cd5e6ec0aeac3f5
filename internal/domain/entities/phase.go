package entities

// EstimatePhase represents the estimate lifecycle of the workflow.
type EstimatePhase string

const (
	// PhaseIdle indicates no estimate has been requested yet.
	PhaseIdle EstimatePhase = "idle"
	// PhaseEstimating indicates a pricing request is in flight.
	PhaseEstimating EstimatePhase = "estimating"
	// PhaseReady indicates the latest pricing request completed with a result.
	PhaseReady EstimatePhase = "ready"
	// PhaseEstimateFailed indicates the latest pricing request failed.
	PhaseEstimateFailed EstimatePhase = "estimate_failed"
)

func (p EstimatePhase) String() string {
	return string(p)
}

// SubmissionPhase is the quote-submission sub-state, orthogonal to the
// estimate phase: a Ready estimate stays Ready whatever happens here.
type SubmissionPhase string

const (
	// SubmissionNone indicates the held estimate has not been submitted.
	SubmissionNone SubmissionPhase = "not_submitted"
	// SubmissionSubmitting indicates a quote request is in flight.
	SubmissionSubmitting SubmissionPhase = "submitting"
	// SubmissionSubmitted indicates the service acknowledged the quote.
	SubmissionSubmitted SubmissionPhase = "submitted"
	// SubmissionFailed indicates the quote request failed.
	SubmissionFailed SubmissionPhase = "submit_failed"
)

func (p SubmissionPhase) String() string {
	return string(p)
}
