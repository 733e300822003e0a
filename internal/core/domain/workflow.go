package domain

// Transition names one of the state-dependent operations on a claim.
// The check-and-apply step itself runs atomically inside the store's named
// procedures; this table is the caller-visible contract: which status a
// claim must hold for the transition to affect a row, and which status it
// holds afterwards.
type Transition string

const (
	TransitionUpdate  Transition = "update"
	TransitionDelete  Transition = "delete"
	TransitionSubmit  Transition = "submit"
	TransitionApprove Transition = "approve"
	TransitionReject  Transition = "reject"
)

// RequiredStatus returns the status a claim must be in for the transition
// to succeed. Update, Delete and Submit act on Draft claims only; Approve
// and Reject act on Submitted claims only.
func (t Transition) RequiredStatus() int {
	switch t {
	case TransitionApprove, TransitionReject:
		return StatusSubmitted
	default:
		return StatusDraft
	}
}

// ResultStatus returns the status a claim holds after the transition.
// Update leaves the status untouched; Delete removes the row so the result
// is reported as the required status.
func (t Transition) ResultStatus() int {
	switch t {
	case TransitionSubmit:
		return StatusSubmitted
	case TransitionApprove:
		return StatusApproved
	case TransitionReject:
		return StatusRejected
	default:
		return t.RequiredStatus()
	}
}

// IsTerminal reports whether a claim in the given status can never
// transition again. Approved and Rejected are terminal; nothing re-enters
// Draft.
func IsTerminal(statusID int) bool {
	return statusID == StatusApproved || statusID == StatusRejected
}
