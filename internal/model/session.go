package model

// SelectAnswerRequest is the payload for answering the current question.
// The option index is a pointer so that option 0 survives required
// validation.
type SelectAnswerRequest struct {
	OptionIndex *int `json:"option_index" binding:"required,min=0"`
}

// GoToRequest is the payload for jumping to a question. Out-of-range
// targets are clamped by the session engine, so no upper bound is
// enforced here.
type GoToRequest struct {
	Index *int `json:"index" binding:"required"`
}
