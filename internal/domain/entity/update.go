package entity

// UpdateOutcome is the terminal state of one update attempt.
type UpdateOutcome string

const (
	OutcomeNothingToUpdate UpdateOutcome = "Nothing to update"
	OutcomeSuccess         UpdateOutcome = "Success"
	OutcomeError           UpdateOutcome = "Error"
)

// UpdateResult reports what happened to a single resource.
type UpdateResult struct {
	Sid    string        `json:"sid"`
	Result UpdateOutcome `json:"result"`
	Detail string        `json:"detail,omitempty"`
}

// Failed reports whether the update was rejected by the API.
func (r UpdateResult) Failed() bool {
	return r.Result == OutcomeError
}
