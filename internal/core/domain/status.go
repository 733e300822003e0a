package domain

// ExpenseStatus is one step of the claim lifecycle. The ids are stable
// ordinals shared with the database seed data; they must not be renumbered.
type ExpenseStatus struct {
	StatusID   int    `json:"statusId"`
	StatusName string `json:"statusName"`
}

const (
	StatusDraft     = 1
	StatusSubmitted = 2
	StatusApproved  = 3
	StatusRejected  = 4
)

// StatusName returns the display name for a status ordinal, or "" when the
// ordinal is unknown.
func StatusName(statusID int) string {
	switch statusID {
	case StatusDraft:
		return "Draft"
	case StatusSubmitted:
		return "Submitted"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return ""
}

// AllStatuses returns the fixed status set in ordinal order.
func AllStatuses() []ExpenseStatus {
	return []ExpenseStatus{
		{StatusID: StatusDraft, StatusName: "Draft"},
		{StatusID: StatusSubmitted, StatusName: "Submitted"},
		{StatusID: StatusApproved, StatusName: "Approved"},
		{StatusID: StatusRejected, StatusName: "Rejected"},
	}
}
