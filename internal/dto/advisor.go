package dto

// AdviceRequest carries the operator's free-text question for the advisor.
type AdviceRequest struct {
	Query string `json:"query" binding:"required"`
}

// AdviceResponse is the advisor's answer, returned verbatim (or a fixed
// fallback message when the external service is unavailable).
type AdviceResponse struct {
	Answer string `json:"answer"`
}
