package models

// ReviewVerdict is the reviewer agent's decision for a round.
type ReviewVerdict string

// Review verdicts.
const (
	VerdictApproved        ReviewVerdict = "approved"
	VerdictChangesRequired ReviewVerdict = "changes_required"
)

// ReviewOutcome is the explicit result of one review round. The revision
// loop iterates on this value rather than on error control flow.
type ReviewOutcome struct {
	Verdict ReviewVerdict `json:"verdict"`
	Notes   string        `json:"notes,omitempty"`
}

// Approved reports whether the round passed review.
func (r ReviewOutcome) Approved() bool {
	return r.Verdict == VerdictApproved
}
